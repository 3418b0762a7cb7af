package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/grough/bfs"
	"github.com/katalvlaran/grough/dfs"
)

func newSearchCmd(a *app) *cobra.Command {
	var (
		from, to int
		algo     string
	)

	cmd := &cobra.Command{
		Use:   "search FILE --from U [--to V]",
		Short: "Print the BFS or DFS visitation order from a vertex",
		Long: `Print the visitation order from --from, stopping at --to when given.
Without --to the whole reachable component is listed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			algo = strings.ToLower(algo)
			if algo != "bfs" && algo != "dfs" {
				return &ExitError{Code: 2, Message: "invalid algo: must be 'bfs' or 'dfs'"}
			}

			g, err := a.loadGraph(args[0])
			if err != nil {
				return err
			}
			if !g.HasVertex(from) {
				return &ExitError{Code: 1, Message: fmt.Sprintf("vertex %d not in graph", from)}
			}

			var path []int
			var ok bool
			switch {
			case cmd.Flags().Changed("to") && algo == "bfs":
				path, ok = bfs.Search(g, from, to)
			case cmd.Flags().Changed("to"):
				path, ok = dfs.Search(g, from, to)
			case algo == "bfs":
				for v := range bfs.New(g, from).All() {
					path = append(path, v)
				}
				ok = true
			default:
				path, ok = dfs.Component(g, from)
			}
			if !ok {
				return &ExitError{Code: 1, Message: fmt.Sprintf("vertex %d not reachable from %d", to, from)}
			}
			a.log.Debug("Search finished.", "algo", algo, "visited", len(path))

			return printPath(cmd.OutOrStdout(), path)
		},
	}
	cmd.Flags().IntVar(&from, "from", 0, "Start vertex.")
	cmd.Flags().IntVar(&to, "to", 0, "Target vertex; omit to list the whole component.")
	cmd.Flags().StringVar(&algo, "algo", "bfs", "Traversal: bfs or dfs.")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}

func printPath(w io.Writer, path []int) error {
	parts := make([]string, len(path))
	for i, v := range path {
		parts[i] = fmt.Sprint(v)
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, " "))

	return err
}
