// Package plan loads contraction plans: an ordered list of edges to contract,
// the cost combine operation and the base cost, stored as YAML.
//
//	combine: product   # sum | product (default sum)
//	base: 0
//	edges:
//	  - [1, 3]
//	  - [1, 2]
package plan

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/grough/contract"
)

var (
	// ErrUnknownCombine is returned for a combine name other than sum or product.
	ErrUnknownCombine = errors.New("plan: unknown combine")

	// ErrBadPair is returned for an edges entry that is not exactly two vertices.
	ErrBadPair = errors.New("plan: edge must have exactly two endpoints")
)

// Combine names.
const (
	CombineSum     = "sum"
	CombineProduct = "product"
)

// Plan is one contraction order over an integer edge-list graph.
type Plan struct {
	Name        string  `yaml:"name,omitempty"`
	CombineName string  `yaml:"combine"`
	Base        int64   `yaml:"base"`
	Edges       [][]int `yaml:"edges"`
}

// Load decodes and validates a plan from r. Unknown keys are rejected.
func Load(r io.Reader) (*Plan, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading plan: %w", err)
	}

	var p Plan
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing plan: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// LoadFile reads a plan from path.
func LoadFile(path string) (*Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan file: %w", err)
	}
	defer f.Close()

	p, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if p.Name == "" {
		p.Name = path
	}

	return p, nil
}

// Validate normalizes the combine name and checks every edge entry.
func (p *Plan) Validate() error {
	p.CombineName = strings.ToLower(strings.TrimSpace(p.CombineName))
	if p.CombineName == "" {
		p.CombineName = CombineSum
	}
	if _, err := CombineByName(p.CombineName); err != nil {
		return err
	}
	for i, e := range p.Edges {
		if len(e) != 2 {
			return fmt.Errorf("%w: edges[%d] has %d", ErrBadPair, i, len(e))
		}
	}

	return nil
}

// Combine returns the weight operation named by the plan.
func (p *Plan) Combine() (contract.Combine[int64], error) {
	return CombineByName(p.CombineName)
}

// Pairs converts the edge list into contraction pairs, in file order.
func (p *Plan) Pairs() []contract.Pair[int] {
	out := make([]contract.Pair[int], 0, len(p.Edges))
	for _, e := range p.Edges {
		if len(e) == 2 {
			out = append(out, contract.Pair[int]{U: e[0], V: e[1]})
		}
	}

	return out
}

// CombineByName maps "sum" and "product" to their operations.
func CombineByName(name string) (contract.Combine[int64], error) {
	switch name {
	case CombineSum:
		return contract.Sum[int64], nil
	case CombineProduct:
		return contract.Product[int64], nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCombine, name)
	}
}
