package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/grough/contract"
	"github.com/katalvlaran/grough/core"
	"github.com/katalvlaran/grough/plan"
)

func newRandomCmd(a *app) *cobra.Command {
	var (
		seed    int64
		until   int
		trials  int
		combine string
	)

	cmd := &cobra.Command{
		Use:   "random FILE",
		Short: "Contract random edges until few vertices remain",
		Long: `Contract uniformly random edges until at most --until vertices remain or no
edges are left. With --until 2 and sum combine, the weight of the last edge is
a cut of the original graph; --trials keeps the smallest one found.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if until < 1 {
				return &ExitError{Code: 2, Message: "--until must be at least 1"}
			}
			if trials < 1 {
				return &ExitError{Code: 2, Message: "--trials must be at least 1"}
			}
			fn, err := plan.CombineByName(combine)
			if err != nil {
				return &ExitError{Code: 2, Message: err.Error()}
			}

			// One stream drives every trial, so a seed fixes the whole run.
			g, err := a.loadGraph(args[0], core.WithIndexSource(core.NewSeededSource(seed)))
			if err != nil {
				return err
			}

			var best *core.Graph[int, int64]
			var bestCut int64
			var bestTotal int64
			var bestSteps int
			for trial := 0; trial < trials; trial++ {
				work := g.Clone()
				total, steps, err := contract.ContractRandomUntil(work, until, 0, fn, contract.Sum[int64])
				if err != nil {
					return &ExitError{Code: 1, Message: err.Error()}
				}
				var cut int64
				for e := range work.Edges() {
					cut += e.Weight
				}
				a.log.Debug("Trial finished.", "trial", trial, "steps", steps, "total", total, "remaining", cut)
				if best == nil || cut < bestCut {
					best, bestCut, bestTotal, bestSteps = work, cut, total, steps
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "steps:     %d\n", bestSteps)
			fmt.Fprintf(out, "total:     %d\n", bestTotal)
			fmt.Fprintf(out, "order:     %d\n", best.Order())
			fmt.Fprintf(out, "size:      %d\n", best.Size())
			fmt.Fprintf(out, "remaining: %d\n", bestCut)

			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for edge sampling (0 uses the fixed default).")
	cmd.Flags().IntVar(&until, "until", 2, "Stop once at most this many vertices remain.")
	cmd.Flags().IntVar(&trials, "trials", 1, "Independent trials; the smallest remaining weight wins.")
	cmd.Flags().StringVar(&combine, "combine", plan.CombineSum, "Weight combine: sum or product.")

	return cmd
}
