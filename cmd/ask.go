package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Answer a single question about MOEMS",
	Long: `Ask retrieves the most relevant knowledge-base documents for the
question, generates a grounded answer, and prints it with the sources
that informed it.

Example:
  moems-agent ask "Are calculators allowed in MOEMS contests?"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	question := strings.Join(args, " ")

	a, err := setupApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	resp, err := a.Agent.Answer(ctx, question)
	if err != nil {
		return err
	}

	printResponse(cmd.OutOrStdout(), resp)
	return nil
}
