package cmd

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/deepthibiotune-hash/moems-agent/internal/eval"
)

var evalDetail bool

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Run the evaluation harness over the builtin dataset",
	Long: `Eval drives every example of the builtin labeled dataset through the
agent and scores each answer on factual accuracy and context
utilization. It prints per-metric means and flags examples that fall
below the pass threshold.

An agent failure on one example does not abort the run; the example is
reported as failed with zero scores and the remaining examples still
execute.`,
	Args: cobra.NoArgs,
	RunE: runEval,
}

func init() {
	evalCmd.Flags().BoolVar(&evalDetail, "detail", false, "print per-example verdicts")
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := setupApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	dataset := eval.BuiltinDataset()
	report := a.Runner.Run(ctx, dataset, a.Agent)

	printReport(cmd.OutOrStdout(), report)

	if report.FailureCount > 0 {
		return fmt.Errorf("%d of %d examples failed", report.FailureCount, len(report.Results))
	}
	return nil
}

func printReport(w io.Writer, report eval.Report) {
	fmt.Fprintf(w, "Evaluated %d examples (pass threshold %.2f)\n\n",
		len(report.Results), report.PassThreshold)

	metrics := make([]string, 0, len(report.MetricMeans))
	for name := range report.MetricMeans {
		metrics = append(metrics, name)
	}
	sort.Strings(metrics)
	for _, name := range metrics {
		fmt.Fprintf(w, "  %-22s %.3f\n", name, report.MetricMeans[name])
	}

	fmt.Fprintf(w, "\nFlagged: %d  Failed: %d\n", report.FlaggedCount(), report.FailureCount)

	if !evalDetail {
		return
	}

	for i, res := range report.Results {
		fmt.Fprintf(w, "\n%d. %s\n", i+1, res.Example.Query)
		switch {
		case res.Failed:
			fmt.Fprintln(w, "   FAILED: agent produced no answer")
		case res.Flagged:
			fmt.Fprintln(w, "   flagged below threshold")
		}
		for _, v := range res.Verdicts {
			fmt.Fprintf(w, "   %-22s %.3f", v.Metric, v.Score)
			if v.Comment != "" {
				fmt.Fprintf(w, "  (%s)", v.Comment)
			}
			fmt.Fprintln(w)
		}
	}
}
