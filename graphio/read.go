package graphio

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/kruskal/core"
	"github.com/pkg/errors"
)

// ErrInvalidInput is matched (errors.Is) by every error Read returns for
// malformed or out-of-range input.
var ErrInvalidInput = errors.New("graphio: invalid input")

// InputError describes the first offending item of the input.
type InputError struct {
	// Edge is the 1-based index of the edge triple, 0 for the "V M" header.
	Edge int
	// Field names the item: "V", "M", "origin", "destination" or "weight".
	Field string
	// Token is the raw token, empty when the input ended early.
	Token string
	// Err is the underlying cause (strconv or core error), may be nil.
	Err error
}

func (e *InputError) Error() string {
	where := "header"
	if e.Edge > 0 {
		where = fmt.Sprintf("edge %d", e.Edge)
	}
	msg := fmt.Sprintf("%s: %s", ErrInvalidInput, where)
	if e.Field != "" {
		msg += " " + e.Field
	}
	if e.Token != "" {
		msg += fmt.Sprintf(" %q", e.Token)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap exposes the underlying cause.
func (e *InputError) Unwrap() error { return e.Err }

// Is makes every InputError match ErrInvalidInput.
func (e *InputError) Is(target error) bool { return target == ErrInvalidInput }

var (
	// errUnexpectedEOF marks input that stops before all declared items were read.
	errUnexpectedEOF = errors.New("unexpected end of input")
	// errTooManyVertices marks a vertex count above MaxVertices.
	errTooManyVertices = errors.New("vertex count too large")
)

// MaxVertices is the largest vertex count Read accepts.
const MaxVertices = math.MaxInt32

// Read parses a graph in the stdin format:
//
//	V M
//	u1 v1 w1
//	...
//	uM vM wM
//
// Tokens are separated by any whitespace; anything after the M-th triple is
// ignored. Every vertex index is checked against [0, V) before it touches the
// adjacency list. opts are passed to core.NewGraph (e.g. core.WithSimple()).
func Read(r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	tr := &tokenReader{sc: sc}
	v, err := tr.count(0, "V")
	if err != nil {
		return nil, err
	}
	if v > MaxVertices {
		return nil, errors.WithStack(&InputError{Field: "V", Token: strconv.Itoa(v), Err: errTooManyVertices})
	}
	m, err := tr.count(0, "M")
	if err != nil {
		return nil, err
	}

	g := core.NewGraph(v, opts...)
	for i := 1; i <= m; i++ {
		from, err := tr.vertex(i, "origin")
		if err != nil {
			return nil, err
		}
		to, err := tr.vertex(i, "destination")
		if err != nil {
			return nil, err
		}
		w, err := tr.weight(i)
		if err != nil {
			return nil, err
		}
		if err := g.AddEdge(from, to, w); err != nil {
			return nil, errors.WithStack(&InputError{Edge: i, Err: err})
		}
	}

	return g, nil
}

// tokenReader pulls whitespace-separated tokens and converts them.
type tokenReader struct {
	sc *bufio.Scanner
}

func (t *tokenReader) next(edge int, field string) (string, error) {
	if t.sc.Scan() {
		return t.sc.Text(), nil
	}
	if err := t.sc.Err(); err != nil {
		return "", errors.Wrapf(err, "read %s", field)
	}

	return "", errors.WithStack(&InputError{Edge: edge, Field: field, Err: errUnexpectedEOF})
}

// count reads a non-negative integer (V or M).
func (t *tokenReader) count(edge int, field string) (int, error) {
	tok, err := t.next(edge, field)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, errors.WithStack(&InputError{Edge: edge, Field: field, Token: tok, Err: err})
	}
	if n < 0 {
		return 0, errors.WithStack(&InputError{Edge: edge, Field: field, Token: tok, Err: core.ErrNegativeVertexCount})
	}

	return n, nil
}

// vertex reads an integer vertex index; range checks happen in core.Graph.AddEdge.
func (t *tokenReader) vertex(edge int, field string) (int, error) {
	tok, err := t.next(edge, field)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, errors.WithStack(&InputError{Edge: edge, Field: field, Token: tok, Err: err})
	}

	return n, nil
}

func (t *tokenReader) weight(edge int) (float64, error) {
	tok, err := t.next(edge, "weight")
	if err != nil {
		return 0, err
	}
	w, err := strconv.ParseFloat(tok, 64)
	if err != nil && errors.Is(err, strconv.ErrRange) && math.IsInf(w, 0) {
		// Overflowing literals such as 1e400 read as ±Inf, like "inf".
		err = nil
	}
	if err != nil {
		return 0, errors.WithStack(&InputError{Edge: edge, Field: "weight", Token: tok, Err: err})
	}

	return w, nil
}
