package graphio

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/kruskal/core"
	"github.com/katalvlaran/kruskal/prim_kruskal"
	"github.com/pkg/errors"
)

// printer remembers the first write error so callers can print freely.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) done(what string) error {
	return errors.Wrapf(p.err, "write %s", what)
}

// weightDigits is the number of significant digits of printed weights.
const weightDigits = 6

// FormatWeight renders a weight with up to six significant digits and no
// trailing zeros: "1", "2.5", "2.12346", "1.23457e+06".
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', weightDigits, 64)
}

// WriteAdjacency prints the adjacency list, one vertex per line:
//
//	Lista de Adjacencia do Grafo Lido:
//	0: [-> 1, w: 1] [-> 2, w: 3]
func WriteAdjacency(w io.Writer, g *core.Graph) error {
	p := &printer{w: w}
	p.printf("Lista de Adjacencia do Grafo Lido:\n")
	for u, nbs := range g.AdjacencyList() {
		var line strings.Builder
		for _, nb := range nbs {
			fmt.Fprintf(&line, "[-> %d, w: %s] ", nb.To, FormatWeight(nb.Weight))
		}
		p.printf("%d: %s\n", u, line.String())
	}

	return p.done("adjacency list")
}

// WriteTotals prints the vertex and edge counts after a blank line.
func WriteTotals(w io.Writer, g *core.Graph) error {
	p := &printer{w: w}
	p.printf("\nTotal Vertices: %d\n", g.VertexCount())
	p.printf("Total Arestas: %d\n", g.EdgeCount())

	return p.done("totals")
}

// WriteResult prints the selected edges and the total cost with two decimals.
// method names the algorithm in the header; empty means Kruskal.
func WriteResult(w io.Writer, method string, res prim_kruskal.Result) error {
	p := &printer{w: w}
	p.printf("\n--- Executando Algoritmo de %s ---\n", algorithmName(method))
	p.printf("Arestas da Arvore Geradora Minima (AGM):\n")
	for _, e := range res.Edges {
		p.printf("%d -- %d  (Peso: %s)\n", e.From, e.To, FormatWeight(e.Weight))
	}
	p.printf("Custo total da AGM: %.2f\n", res.Total)

	return p.done("result")
}

// WriteEdgeList prints g back in the input format accepted by Read.
// Weights use the shortest form that parses back to the same value.
// Self-loops are not part of Graph.Edges and are therefore not written.
func WriteEdgeList(w io.Writer, g *core.Graph) error {
	edges := g.Edges()
	p := &printer{w: w}
	p.printf("%d %d\n", g.VertexCount(), len(edges))
	for _, e := range edges {
		p.printf("%d %d %s\n", e.From, e.To, strconv.FormatFloat(e.Weight, 'g', -1, 64))
	}

	return p.done("edge list")
}

func algorithmName(method string) string {
	switch method {
	case prim_kruskal.MethodPrim:
		return "Prim"
	default:
		return "Kruskal"
	}
}
