package edgelist

import (
	"bufio"
	"cmp"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/grough/core"
)

// ErrMalformedEdgeLine is returned for a line that is not "<u> <v> <w>".
var ErrMalformedEdgeLine = errors.New("edgelist: malformed edge line")

// maxLineBytes bounds a single line.
const maxLineBytes = 1 << 20

// Option configures a read.
type Option func(*options)

type options struct {
	graphOpts []core.GraphOption
}

// WithGraphOptions forwards opts to core.NewGraph for the graph being built.
func WithGraphOptions(opts ...core.GraphOption) Option {
	return func(o *options) {
		o.graphOpts = append(o.graphOpts, opts...)
	}
}

// Read parses r line by line into a new graph, inserting edges in line
// order. parseV parses both endpoint columns and parseW the weight column.
func Read[V cmp.Ordered, W any](
	r io.Reader,
	parseV func(string) (V, error),
	parseW func(string) (W, error),
	opts ...Option,
) (*core.Graph[V, W], error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	g := core.NewGraph[V, W](o.graphOpts...)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		fields := strings.Fields(text)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: line %d %q: want 3 fields, got %d",
				ErrMalformedEdgeLine, line, text, len(fields))
		}

		u, err := parseV(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d %q: %w", ErrMalformedEdgeLine, line, text, err)
		}
		v, err := parseV(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d %q: %w", ErrMalformedEdgeLine, line, text, err)
		}
		w, err := parseW(fields[2])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d %q: %w", ErrMalformedEdgeLine, line, text, err)
		}
		g.AddEdge(u, v, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("edgelist: read line %d: %w", line+1, err)
	}

	return g, nil
}

// ReadInts reads the integer form of the format: unsigned decimal vertices
// and weights.
func ReadInts(r io.Reader, opts ...Option) (*core.Graph[int, int64], error) {
	return Read(r, ParseVertex, ParseWeight, opts...)
}

// ReadFile opens path and applies ReadInts.
func ReadFile(path string, opts ...Option) (*core.Graph[int, int64], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edgelist: %w", err)
	}
	defer f.Close()

	g, err := ReadInts(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// ParseVertex accepts unsigned decimal digits that fit an int.
func ParseVertex(s string) (int, error) {
	if !digitsOnly(s) {
		return 0, fmt.Errorf("vertex %q: not an unsigned decimal", s)
	}
	n, err := strconv.ParseInt(s, 10, strconv.IntSize)
	if err != nil {
		return 0, fmt.Errorf("vertex %q: %w", s, err)
	}

	return int(n), nil
}

// ParseWeight accepts unsigned decimal digits that fit an int64.
func ParseWeight(s string) (int64, error) {
	if !digitsOnly(s) {
		return 0, fmt.Errorf("weight %q: not an unsigned decimal", s)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("weight %q: %w", s, err)
	}

	return n, nil
}

func digitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// Write emits g in canonical edge order, one "<u> <v> <w>" line per edge.
// Isolated vertices have no representation and are dropped.
func Write[V cmp.Ordered, W any](w io.Writer, g *core.Graph[V, W]) error {
	bw := bufio.NewWriter(w)
	for e := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "%v %v %v\n", e.From, e.To, e.Weight); err != nil {
			return fmt.Errorf("edgelist: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("edgelist: write: %w", err)
	}

	return nil
}
