package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/grough/contract"
	"github.com/katalvlaran/grough/plan"
)

func newContractCmd(a *app) *cobra.Command {
	var planPaths []string

	cmd := &cobra.Command{
		Use:   "contract FILE --plan PLAN.yaml [--plan OTHER.yaml ...]",
		Short: "Apply a contraction plan and print its total cost",
		Long: `Apply a YAML contraction plan to the graph in FILE and print the total cost.
With several --plan flags every plan runs on its own copy of the graph and
the cheapest one is reported. Plans compared this way must share combine
and base.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plans := make([]*plan.Plan, 0, len(planPaths))
			for _, path := range planPaths {
				p, err := plan.LoadFile(path)
				if err != nil {
					return &ExitError{Code: 2, Message: err.Error()}
				}
				plans = append(plans, p)
			}

			g, err := a.loadGraph(args[0])
			if err != nil {
				return err
			}

			first := plans[0]
			combine, err := first.Combine()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(plans) == 1 {
				a.log.Info("Contracting.", "plan", first.Name, "steps", len(first.Edges), "combine", first.CombineName)
				total, err := contract.ContractEdges(g, first.Pairs(), first.Base, combine)
				if err != nil {
					return &ExitError{Code: 1, Message: fmt.Sprintf("contraction failed (partial total %d): %v", total, err)}
				}
				fmt.Fprintf(out, "total: %d\n", total)
				fmt.Fprintf(out, "order: %d\n", g.Order())
				fmt.Fprintf(out, "size:  %d\n", g.Size())
				return nil
			}

			orders := make([][]contract.Pair[int], 0, len(plans))
			for _, p := range plans {
				if p.CombineName != first.CombineName || p.Base != first.Base {
					return &ExitError{Code: 2, Message: fmt.Sprintf("plan %s: combine and base must match %s", p.Name, first.Name)}
				}
				orders = append(orders, p.Pairs())
			}
			a.log.Info("Comparing plans.", "count", len(orders), "combine", first.CombineName)
			idx, total, err := contract.Cheapest(g, orders, first.Base, combine)
			if err != nil {
				return &ExitError{Code: 1, Message: err.Error()}
			}
			fmt.Fprintf(out, "best:  %s\n", plans[idx].Name)
			fmt.Fprintf(out, "total: %d\n", total)

			return nil
		},
	}
	cmd.Flags().StringArrayVar(&planPaths, "plan", nil, "Path to a YAML contraction plan (repeatable).")
	_ = cmd.MarkFlagRequired("plan")

	return cmd
}
