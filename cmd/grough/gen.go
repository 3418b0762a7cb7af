package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/grough/builder"
	"github.com/katalvlaran/grough/edgelist"
)

func newGenCmd(a *app) *cobra.Command {
	var (
		n, rows, cols int
		p             float64
		seed          int64
		minW, maxW    int64
		offset        int
	)

	cmd := &cobra.Command{
		Use:       "gen path|cycle|complete|star|wheel|grid|random",
		Short:     "Write a generated graph as an edge list",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"path", "cycle", "complete", "star", "wheel", "grid", "random"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if maxW < minW {
				return &ExitError{Code: 2, Message: "--max-weight must not be below --min-weight"}
			}

			var con builder.Constructor
			switch args[0] {
			case "path":
				con = builder.Path(n)
			case "cycle":
				con = builder.Cycle(n)
			case "complete":
				con = builder.Complete(n)
			case "star":
				con = builder.Star(n)
			case "wheel":
				con = builder.Wheel(n)
			case "grid":
				con = builder.Grid(rows, cols)
			case "random":
				con = builder.RandomSparse(n, p)
			default:
				return &ExitError{Code: 2, Message: fmt.Sprintf("unknown topology %q", args[0])}
			}

			g, err := builder.BuildGraph(nil, []builder.BuilderOption{
				builder.WithSeed(seed),
				builder.WithIDOffset(offset),
				builder.WithUniformWeights(minW, maxW),
			}, con)
			if err != nil {
				return &ExitError{Code: 2, Message: err.Error()}
			}
			a.log.Debug("Graph generated.", "topology", args[0], "order", g.Order(), "size", g.Size())

			return edgelist.Write(cmd.OutOrStdout(), g)
		},
	}
	cmd.Flags().IntVar(&n, "n", 5, "Vertex count.")
	cmd.Flags().IntVar(&rows, "rows", 3, "Grid rows.")
	cmd.Flags().IntVar(&cols, "cols", 3, "Grid columns.")
	cmd.Flags().Float64Var(&p, "p", 0.5, "Edge probability for random.")
	cmd.Flags().Int64Var(&seed, "seed", 1, "Seed for random topology and weights.")
	cmd.Flags().Int64Var(&minW, "min-weight", 1, "Smallest edge weight.")
	cmd.Flags().Int64Var(&maxW, "max-weight", 1, "Largest edge weight.")
	cmd.Flags().IntVar(&offset, "offset", 1, "First vertex ID.")

	return cmd
}
