package graphio_test

import (
	"bytes"
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/kruskal/core"
	"github.com/katalvlaran/kruskal/graphio"
	"github.com/katalvlaran/kruskal/prim_kruskal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const scenario1 = `4 5
0 1 1.0
0 2 3.0
1 2 2.0
1 3 4.0
2 3 5.0
`

// TestRead_Scenario1 parses the reference input and checks adjacency order.
func TestRead_Scenario1(t *testing.T) {
	g, err := graphio.Read(strings.NewReader(scenario1))
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 5, g.EdgeCount())

	nbs, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor{{To: 0, Weight: 1}, {To: 2, Weight: 2}, {To: 3, Weight: 4}}, nbs)
}

// TestRead_Whitespace accepts any token layout and ignores trailing tokens.
func TestRead_Whitespace(t *testing.T) {
	g, err := graphio.Read(strings.NewReader("3\t2 0 1\n\n  2.5 1 2 -1e0 trailing junk"))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 0, To: 1, Weight: 2.5}, {From: 1, To: 2, Weight: -1}}, g.Edges())
}

// TestRead_Empty covers V=1, M=0 and V=0, M=0.
func TestRead_Empty(t *testing.T) {
	g, err := graphio.Read(strings.NewReader("1 0"))
	require.NoError(t, err)
	assert.Equal(t, 1, g.VertexCount())
	assert.Zero(t, g.EdgeCount())

	g, err = graphio.Read(strings.NewReader("0 0\n"))
	require.NoError(t, err)
	assert.Zero(t, g.VertexCount())
}

// TestRead_InvalidInput checks that every malformed input is reported before use.
func TestRead_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		edge  int
		field string
		cause error
	}{
		{name: "empty", input: "", field: "V"},
		{name: "missing M", input: "3", field: "M"},
		{name: "non-numeric V", input: "x 1", field: "V", cause: strconv.ErrSyntax},
		{name: "V above MaxVertices", input: "9223372036854775807 0\n", field: "V"},
		{name: "V overflows int", input: "99999999999999999999 0\n", field: "V", cause: strconv.ErrRange},
		{name: "negative M", input: "3 -1", field: "M", cause: core.ErrNegativeVertexCount},
		{name: "fewer edges than M", input: "3 2\n0 1 1\n", edge: 2, field: "origin"},
		{name: "truncated triple", input: "3 1\n0 1", edge: 1, field: "weight"},
		{name: "non-numeric weight", input: "3 1\n0 1 heavy", edge: 1, field: "weight", cause: strconv.ErrSyntax},
		{name: "float vertex", input: "3 1\n0.5 1 1", edge: 1, field: "origin", cause: strconv.ErrSyntax},
		{name: "destination out of range", input: "3 2\n0 1 1\n1 3 1", edge: 2, cause: core.ErrVertexOutOfRange},
		{name: "negative origin", input: "3 1\n-1 0 1", edge: 1, cause: core.ErrVertexOutOfRange},
		{name: "NaN weight", input: "2 1\n0 1 NaN", edge: 1, cause: core.ErrBadWeight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := graphio.Read(strings.NewReader(tc.input))
			assert.Nil(t, g)
			require.ErrorIs(t, err, graphio.ErrInvalidInput)

			var ie *graphio.InputError
			require.True(t, errors.As(err, &ie))
			assert.Equal(t, tc.edge, ie.Edge)
			assert.Equal(t, tc.field, ie.Field)
			if tc.cause != nil {
				assert.ErrorIs(t, err, tc.cause)
			}
		})
	}
}

// TestRead_InfiniteWeights accepts "inf" and literals that overflow to ±Inf.
func TestRead_InfiniteWeights(t *testing.T) {
	g, err := graphio.Read(strings.NewReader("3 3\n0 1 inf\n1 2 1e400\n0 2 -1e400\n"))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{From: 0, To: 1, Weight: math.Inf(1)},
		{From: 0, To: 2, Weight: math.Inf(-1)},
		{From: 1, To: 2, Weight: math.Inf(1)},
	}, g.Edges())
}

// TestRead_Simple rejects loops and parallel edges only when asked.
func TestRead_Simple(t *testing.T) {
	in := "2 2\n0 1 1\n1 0 2\n"

	g, err := graphio.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Len(t, g.Edges(), 2)

	_, err = graphio.Read(strings.NewReader(in), core.WithSimple())
	assert.ErrorIs(t, err, graphio.ErrInvalidInput)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	_, err = graphio.Read(strings.NewReader("2 1\n1 1 1\n"), core.WithSimple())
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
}

// TestWrite_TextLayout checks the full text output for the reference input.
func TestWrite_TextLayout(t *testing.T) {
	g, err := graphio.Read(strings.NewReader(scenario1))
	require.NoError(t, err)
	res, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteAdjacency(&buf, g))
	require.NoError(t, graphio.WriteTotals(&buf, g))
	require.NoError(t, graphio.WriteResult(&buf, "", res))

	want := "Lista de Adjacencia do Grafo Lido:\n" +
		"0: [-> 1, w: 1] [-> 2, w: 3] \n" +
		"1: [-> 0, w: 1] [-> 2, w: 2] [-> 3, w: 4] \n" +
		"2: [-> 0, w: 3] [-> 1, w: 2] [-> 3, w: 5] \n" +
		"3: [-> 1, w: 4] [-> 2, w: 5] \n" +
		"\nTotal Vertices: 4\n" +
		"Total Arestas: 5\n" +
		"\n--- Executando Algoritmo de Kruskal ---\n" +
		"Arestas da Arvore Geradora Minima (AGM):\n" +
		"0 -- 1  (Peso: 1)\n" +
		"1 -- 2  (Peso: 2)\n" +
		"1 -- 3  (Peso: 4)\n" +
		"Custo total da AGM: 7.00\n"
	assert.Equal(t, want, buf.String())
}

// TestWrite_SixSignificantDigits checks weights are rounded to six
// significant digits and self-loops are listed once per endpoint.
func TestWrite_SixSignificantDigits(t *testing.T) {
	g, err := graphio.Read(strings.NewReader("3 3\n0 0 1\n0 1 2.1234567\n1 2 1234567\n"))
	require.NoError(t, err)
	res, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteAdjacency(&buf, g))
	require.NoError(t, graphio.WriteResult(&buf, "", res))
	assert.Equal(t, "Lista de Adjacencia do Grafo Lido:\n"+
		"0: [-> 0, w: 1] [-> 0, w: 1] [-> 1, w: 2.12346] \n"+
		"1: [-> 0, w: 2.12346] [-> 2, w: 1.23457e+06] \n"+
		"2: [-> 1, w: 1.23457e+06] \n"+
		"\n--- Executando Algoritmo de Kruskal ---\n"+
		"Arestas da Arvore Geradora Minima (AGM):\n"+
		"0 -- 1  (Peso: 2.12346)\n"+
		"1 -- 2  (Peso: 1.23457e+06)\n"+
		"Custo total da AGM: 1234569.12\n", buf.String())

	assert.Equal(t, "0.3", graphio.FormatWeight(0.1+0.2))
	assert.Equal(t, "-7.5", graphio.FormatWeight(-7.5))
}

// TestWriteResult_Forest checks two-decimal totals and the Prim header.
func TestWriteResult_Forest(t *testing.T) {
	res := prim_kruskal.Result{
		Edges:    []core.Edge{{From: 0, To: 1, Weight: 2.5}},
		Total:    2.5,
		Vertices: 4,
	}
	var buf bytes.Buffer
	require.NoError(t, graphio.WriteResult(&buf, prim_kruskal.MethodPrim, res))
	assert.Equal(t, "\n--- Executando Algoritmo de Prim ---\n"+
		"Arestas da Arvore Geradora Minima (AGM):\n"+
		"0 -- 1  (Peso: 2.5)\n"+
		"Custo total da AGM: 2.50\n", buf.String())

	buf.Reset()
	require.NoError(t, graphio.WriteResult(&buf, "", prim_kruskal.Result{Vertices: 1}))
	assert.True(t, strings.HasSuffix(buf.String(), "(AGM):\nCusto total da AGM: 0.00\n"))
}

// TestWriteEdgeList_RoundTrip writes a graph and reads it back.
func TestWriteEdgeList_RoundTrip(t *testing.T) {
	g, err := graphio.Read(strings.NewReader(scenario1))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteEdgeList(&buf, g))
	assert.True(t, strings.HasPrefix(buf.String(), "4 5\n0 1 1\n0 2 3\n"))

	back, err := graphio.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.Edges(), back.Edges())

	// The edge list keeps full precision even though text output rounds.
	g, err = graphio.Read(strings.NewReader("2 1\n0 1 2.1234567\n"))
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, graphio.WriteEdgeList(&buf, g))
	assert.Equal(t, "2 1\n0 1 2.1234567\n", buf.String())
}

// TestWriteYAML encodes a report and decodes it back as a generic document.
func TestWriteYAML(t *testing.T) {
	g, err := graphio.Read(strings.NewReader("4 1\n0 1 2.5\n"))
	require.NoError(t, err)
	res, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteYAML(&buf, graphio.NewReport("", g, res)))

	var got graphio.Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, graphio.Report{
		Method:     prim_kruskal.MethodKruskal,
		Vertices:   4,
		Edges:      1,
		Components: 3,
		Spanning:   false,
		MST: graphio.MSTReport{
			Edges: []graphio.EdgeReport{{From: 0, To: 1, Weight: 2.5}},
			Total: 2.5,
		},
	}, got)
	assert.True(t, strings.HasPrefix(buf.String(), "method: kruskal\nvertices: 4\n"))
}

// failWriter fails every write.
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

// TestWrite_PropagatesErrors verifies the first write error is returned.
func TestWrite_PropagatesErrors(t *testing.T) {
	g := core.NewGraph(2)
	assert.ErrorContains(t, graphio.WriteAdjacency(failWriter{}, g), "disk full")
	assert.ErrorContains(t, graphio.WriteTotals(failWriter{}, g), "write totals")
	assert.Error(t, graphio.WriteResult(failWriter{}, "", prim_kruskal.Result{}))
	assert.Error(t, graphio.WriteEdgeList(failWriter{}, g))
}
