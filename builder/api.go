// SPDX-License-Identifier: MIT
//
// api.go: BuildGraph orchestrator and the Constructor type.
package builder

import (
	"fmt"

	"github.com/katalvlaran/grough/core"
)

// Graph is the concrete graph type every constructor produces.
type Graph = core.Graph[int, int64]

// Constructor applies a deterministic mutation to g using the resolved
// config. Constructors validate parameters first and return sentinel errors.
type Constructor func(g *Graph, cfg builderConfig) error

// BuildGraph creates a graph with gopts, resolves bopts, and applies cons in
// order. The first constructor error is wrapped as "BuildGraph: %w" and
// returned; no partial graph is returned.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*Graph, error) {
	g := core.NewGraph[int, int64](gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices inserts ids idFn(0..n-1) in ascending index order.
func addVertices(g *Graph, cfg builderConfig, n int) {
	for i := 0; i < n; i++ {
		g.AddVertex(cfg.idFn(i))
	}
}

// link adds the edge between indices i and j with a freshly drawn weight.
func link(g *Graph, cfg builderConfig, i, j int) {
	g.AddEdge(cfg.idFn(i), cfg.idFn(j), cfg.weightFn(cfg.rng))
}
