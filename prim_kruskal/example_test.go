package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/kruskal/core"
	"github.com/katalvlaran/kruskal/prim_kruskal"
)

// ExampleKruskal demonstrates Kruskal’s algorithm on a 4-vertex graph.
// Edges: 0-1 (1), 0-2 (3), 1-2 (2), 1-3 (4), 2-3 (5).
// The MST is {0–1, 1–2, 1–3} with total weight = 7.
func ExampleKruskal() {
	// 1. Construct the graph.
	g := core.NewGraph(4)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(0, 2, 3)
	_ = g.AddEdge(1, 2, 2)
	_ = g.AddEdge(1, 3, 4)
	_ = g.AddEdge(2, 3, 5)

	// 2. Run Kruskal’s algorithm.
	res, err := prim_kruskal.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3. Print the total weight and the list of edges in the MST.
	fmt.Printf("Total: %.2f, Edges:", res.Total)
	for _, e := range res.Edges {
		fmt.Printf(" %d-%d", e.From, e.To)
	}
	fmt.Println()
	// Output: Total: 7.00, Edges: 0-1 1-2 1-3
}

// ExampleKruskal_forest shows the spanning forest of a disconnected graph.
func ExampleKruskal_forest() {
	g := core.NewGraph(4)
	_ = g.AddEdge(0, 1, 2.5)

	res, _ := prim_kruskal.Kruskal(g)
	fmt.Println(len(res.Edges), res.Components(), res.Total)
	// Output: 1 3 2.5
}

// ExamplePrim demonstrates Prim’s algorithm on a pentagon.
// Edges: 0–1 (1), 1–2 (2), 2–3 (3), 3–4 (5), 0–4 (12); MST weight = 11.
func ExamplePrim() {
	g := core.NewGraph(5)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(0, 4, 12)
	_ = g.AddEdge(1, 2, 2)
	_ = g.AddEdge(2, 3, 3)
	_ = g.AddEdge(3, 4, 5)

	res, err := prim_kruskal.Prim(g, prim_kruskal.WithRoot(0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %g, Edges:", res.Total)
	for _, e := range res.Edges {
		fmt.Printf(" %d-%d", e.From, e.To)
	}
	fmt.Println()
	// Output: Total: 11, Edges: 0-1 1-2 2-3 3-4
}
