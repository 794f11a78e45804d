package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// demoQuestions exercise a high-overlap match, a multi-document topic,
// and a rules lookup.
var demoQuestions = []string{
	"What is MOEMS?",
	"What is the structure of a MOEMS contest?",
	"Are calculators allowed in MOEMS contests?",
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the canned demo questions",
	Long: `Demo runs a fixed set of questions through the full pipeline and
prints each answer with its sources and latency. Useful as a smoke
test of the knowledge base, retriever, and model wiring.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := setupApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	for i, question := range demoQuestions {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "Q%d: %s\n", i+1, question)

		resp, err := a.Agent.Answer(ctx, question)
		if err != nil {
			return fmt.Errorf("answering %q: %w", question, err)
		}
		printResponse(out, resp)
	}
	return nil
}
