// Package graphio reads graphs in the "V M" + edge-triple text format and
// prints graphs and spanning forests, either in a human-readable
// layout or as a YAML report.
//
// Input format (whitespace-separated tokens):
//
//	4 5
//	0 1 1.0
//	0 2 3.0
//	1 2 2.0
//	1 3 4.0
//	2 3 5.0
//
// Every failure of Read matches ErrInvalidInput with errors.Is and is an
// *InputError naming the offending edge and field; causes from core
// (ErrVertexOutOfRange, ErrBadWeight, ...) stay reachable through Unwrap.
//
// Text output (WriteAdjacency, WriteTotals, WriteResult):
//
//	Lista de Adjacencia do Grafo Lido:
//	0: [-> 1, w: 1] [-> 2, w: 3]
//	...
//
//	Total Vertices: 4
//	Total Arestas: 5
//
//	--- Executando Algoritmo de Kruskal ---
//	Arestas da Arvore Geradora Minima (AGM):
//	0 -- 1  (Peso: 1)
//	1 -- 2  (Peso: 2)
//	1 -- 3  (Peso: 4)
//	Custo total da AGM: 7.00
package graphio
