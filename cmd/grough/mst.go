package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/grough/mst"
)

func newMSTCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mst FILE",
		Short: "Print a minimum spanning tree as an edge list and its weight",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(args[0])
			if err != nil {
				return err
			}

			tree, total, err := mst.Kruskal(g)
			if err != nil {
				return &ExitError{Code: 1, Message: err.Error()}
			}
			a.log.Debug("Spanning tree found.", "edges", len(tree), "weight", total)

			out := cmd.OutOrStdout()
			for _, e := range tree {
				fmt.Fprintf(out, "%d %d %d\n", e.From, e.To, e.Weight)
			}
			fmt.Fprintf(out, "weight: %d\n", total)

			return nil
		},
	}
}
