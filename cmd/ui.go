package cmd

import (
	"github.com/rogersnm/tally/internal/tui"
	"github.com/spf13/cobra"
)

var uiCmd = &cobra.Command{
	Use:   "ui [filter]",
	Short: "Open the interactive list",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			session.Routes.Start(args[0])
		}
		return tui.Run(session.Controller, session.Routes)
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
}
