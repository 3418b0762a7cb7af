// SPDX-License-Identifier: MIT
//
// topology.go: deterministic classic topologies.
//
// Every constructor adds its vertices in ascending index order first, then
// emits edges in a fixed order documented per constructor.
package builder

import "fmt"

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodComplete = "Complete"
	methodStar     = "Star"
	methodWheel    = "Wheel"
	methodGrid     = "Grid"

	minPathNodes     = 2
	minCycleNodes    = 3
	minCompleteNodes = 1
	minStarNodes     = 2
	minWheelNodes    = 4
	minGridSide      = 1
)

// tooFew formats the shared ErrTooFewVertices context.
func tooFew(method, param string, got, min int) error {
	return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewVertices)
}

// Path builds P_n: edges i–(i+1) for i = 0..n-2.
func Path(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return tooFew(methodPath, "n", n, minPathNodes)
		}
		addVertices(g, cfg, n)
		for i := 0; i+1 < n; i++ {
			link(g, cfg, i, i+1)
		}

		return nil
	}
}

// Cycle builds C_n: edges i–(i+1)%n for i = 0..n-1.
func Cycle(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return tooFew(methodCycle, "n", n, minCycleNodes)
		}
		addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			link(g, cfg, i, (i+1)%n)
		}

		return nil
	}
}

// Complete builds K_n: edges i–j for every i < j, i ascending then j.
func Complete(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return tooFew(methodComplete, "n", n, minCompleteNodes)
		}
		addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				link(g, cfg, i, j)
			}
		}

		return nil
	}
}

// Star builds S_n with hub 0: edges 0–i for i = 1..n-1.
func Star(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return tooFew(methodStar, "n", n, minStarNodes)
		}
		addVertices(g, cfg, n)
		for i := 1; i < n; i++ {
			link(g, cfg, 0, i)
		}

		return nil
	}
}

// Wheel builds W_n: hub 0 joined to a rim cycle on 1..n-1. Rim edges are
// emitted first, then spokes.
func Wheel(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return tooFew(methodWheel, "n", n, minWheelNodes)
		}
		addVertices(g, cfg, n)
		rim := n - 1
		for i := 0; i < rim; i++ {
			link(g, cfg, 1+i, 1+(i+1)%rim)
		}
		for i := 1; i < n; i++ {
			link(g, cfg, 0, i)
		}

		return nil
	}
}

// Grid builds a rows×cols lattice with index r*cols+c. For each cell in
// row-major order the right edge is emitted before the down edge.
func Grid(rows, cols int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if rows < minGridSide {
			return tooFew(methodGrid, "rows", rows, minGridSide)
		}
		if cols < minGridSide {
			return tooFew(methodGrid, "cols", cols, minGridSide)
		}
		addVertices(g, cfg, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := r*cols + c
				if c+1 < cols {
					link(g, cfg, id, id+1)
				}
				if r+1 < rows {
					link(g, cfg, id, id+cols)
				}
			}
		}

		return nil
	}
}
