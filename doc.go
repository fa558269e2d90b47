// Package kruskal computes minimum spanning trees and forests of undirected
// weighted graphs with Kruskal's algorithm over a path-compressing
// union-find.
//
// The module is organized in small packages:
//
//	core/         - thread-safe adjacency-list Graph, Edge and Neighbor types
//	dsu/          - disjoint-set union with iterative path compression
//	prim_kruskal/ - Kruskal (primary) and Prim (cross-check) spanning forests
//	graphio/      - "V M" + edge-triple reader, text and YAML writers
//	builder/      - deterministic graph generators for tests and the CLI
//	cmd/kruskal/  - command-line front end
//
// Quick start:
//
//	g, err := graphio.Read(os.Stdin)
//	if err != nil {
//		log.Fatal(err)
//	}
//	res, _ := prim_kruskal.Kruskal(g)
//	_ = graphio.WriteResult(os.Stdout, prim_kruskal.MethodKruskal, res)
//
// A disconnected graph yields a spanning forest with one tree per component;
// pass prim_kruskal.WithRequireConnected to turn that into an error.
package kruskal
