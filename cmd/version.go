package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deepthibiotune-hash/moems-agent/internal/agent"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the agent name and version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", agent.Name, agent.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
