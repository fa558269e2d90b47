package main

import (
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/kruskal/core"
	"github.com/katalvlaran/kruskal/prim_kruskal"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// Input contains the input for the root command
type Input struct {
	graphFile        string
	output           outputFormat
	method           methodName
	earlyExit        bool
	requireConnected bool
	simple           bool
	quiet            bool
	verbose          bool

	// generate
	seed        int64
	probability float64
	minWeight   int
	maxWeight   int
}

// newInput returns an Input holding the flag defaults.
func newInput() *Input {
	return &Input{
		output:      outputText,
		method:      methodName(prim_kruskal.MethodKruskal),
		seed:        1,
		probability: 0.1,
		minWeight:   1,
		maxWeight:   100,
	}
}

// GraphOptions returns the core options implied by the flags.
func (i *Input) GraphOptions() []core.GraphOption {
	if i.simple {
		return []core.GraphOption{core.WithSimple()}
	}
	return nil
}

// MSTOptions returns the algorithm options implied by the flags.
func (i *Input) MSTOptions() []prim_kruskal.Option {
	opts := []prim_kruskal.Option{
		prim_kruskal.WithMethod(string(i.method)),
		prim_kruskal.WithEarlyExit(i.earlyExit),
	}
	if i.requireConnected {
		opts = append(opts, prim_kruskal.WithRequireConnected())
	}
	return opts
}

// openGraph returns the graph source: the --file path when set, stdin otherwise.
func (i *Input) openGraph(stdin io.Reader) (io.ReadCloser, error) {
	if i.graphFile == "" || i.graphFile == "-" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(i.graphFile)
	if err != nil {
		return nil, errors.Wrap(err, "open graph file")
	}
	return f, nil
}

func checkIfTerminal(r io.Reader) bool {
	switch v := r.(type) {
	case *os.File:
		return isatty.IsTerminal(v.Fd()) || isatty.IsCygwinTerminal(v.Fd())
	default:
		return false
	}
}

var (
	_ pflag.Value = (*outputFormat)(nil)
	_ pflag.Value = (*methodName)(nil)
)

// outputFormat is a pflag.Value restricted to the supported renderers.
type outputFormat string

const (
	outputText outputFormat = "text"
	outputYAML outputFormat = "yaml"
)

func (o *outputFormat) String() string { return string(*o) }

func (o *outputFormat) Set(s string) error {
	switch f := outputFormat(strings.ToLower(s)); f {
	case outputText, outputYAML:
		*o = f
		return nil
	default:
		return errors.Errorf("unsupported output format %q (want text or yaml)", s)
	}
}

func (o *outputFormat) Type() string { return "format" }

// methodName is a pflag.Value restricted to the MST algorithms.
type methodName string

func (m *methodName) String() string { return string(*m) }

func (m *methodName) Set(s string) error {
	switch v := strings.ToLower(s); v {
	case prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim:
		*m = methodName(v)
		return nil
	default:
		return errors.Errorf("unsupported method %q (want kruskal or prim)", s)
	}
}

func (m *methodName) Type() string { return "method" }
