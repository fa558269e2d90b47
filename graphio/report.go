package graphio

import (
	"io"

	"github.com/katalvlaran/kruskal/core"
	"github.com/katalvlaran/kruskal/prim_kruskal"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Report is the machine-readable form of one run.
type Report struct {
	Method     string    `yaml:"method"`
	Vertices   int       `yaml:"vertices"`
	Edges      int       `yaml:"edges"`
	Components int       `yaml:"components"`
	Spanning   bool      `yaml:"spanning"`
	MST        MSTReport `yaml:"mst"`
}

// MSTReport lists the accepted edges in acceptance order and their total.
type MSTReport struct {
	Edges []EdgeReport `yaml:"edges"`
	Total float64      `yaml:"total"`
}

// EdgeReport is one accepted edge.
type EdgeReport struct {
	From   int     `yaml:"from"`
	To     int     `yaml:"to"`
	Weight float64 `yaml:"weight"`
}

// NewReport summarizes g and the computed forest.
func NewReport(method string, g *core.Graph, res prim_kruskal.Result) Report {
	if method == "" {
		method = prim_kruskal.MethodKruskal
	}
	r := Report{
		Method:     method,
		Vertices:   g.VertexCount(),
		Edges:      g.EdgeCount(),
		Components: res.Components(),
		Spanning:   res.Spanning(),
		MST: MSTReport{
			Edges: make([]EdgeReport, 0, len(res.Edges)),
			Total: res.Total,
		},
	}
	for _, e := range res.Edges {
		r.MST.Edges = append(r.MST.Edges, EdgeReport{From: e.From, To: e.To, Weight: e.Weight})
	}

	return r
}

// WriteYAML encodes r as a YAML document with two-space indentation.
func WriteYAML(w io.Writer, r Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return errors.Wrap(err, "encode report")
	}

	return errors.Wrap(enc.Close(), "encode report")
}
