// ABOUTME: Interactive command launching the terminal UI
// ABOUTME: Wraps the bubbletea application entry point

package cmd

import (
	"github.com/inferlab/inference-cost-analyzer/internal/tui"
	"github.com/spf13/cobra"
)

var interactiveTokens int

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"tui"},
	Short:   "Launch the interactive terminal UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(interactiveTokens)
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
	interactiveCmd.Flags().IntVar(&interactiveTokens, "tokens", 1000, "Token count used by the comparison sweep")
}
