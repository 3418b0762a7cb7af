package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/grough/dfs"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats FILE",
		Short: "Print order, size, degree and component counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(args[0])
			if err != nil {
				return err
			}

			st := g.Stats()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "order:      %d\n", st.Order)
			fmt.Fprintf(out, "size:       %d\n", st.Size)
			fmt.Fprintf(out, "loops:      %d\n", st.Loops)
			fmt.Fprintf(out, "isolated:   %d\n", st.Isolated)
			fmt.Fprintf(out, "max degree: %d\n", st.MaxDegree)
			fmt.Fprintf(out, "components: %d\n", len(dfs.Components(g)))
			fmt.Fprintf(out, "cyclic:     %t\n", dfs.HasCycle(g))

			return nil
		},
	}
}
