// Package cmd implements the moems-agent command-line interface.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "moems-agent",
	Short: "Retrieval-augmented Q&A agent for MOEMS math-contest facts",
	Long: `moems-agent answers questions about MOEMS (Mathematical Olympiads for
Elementary and Middle Schools) using a retrieval-augmented pipeline over a
hand-authored knowledge base, and ships an evaluation harness that scores
answer quality on factual accuracy and context utilization.

Commands:
  ask     answer a single question
  demo    run the canned demo questions
  eval    run the evaluation harness over the builtin dataset`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
