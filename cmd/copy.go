package cmd

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var writeClipboard = clipboard.WriteAll

var copyCmd = &cobra.Command{
	Use:   "copy [filter]",
	Short: "Copy the visible todos to the clipboard, one per line",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			session.Routes.Navigate(args[0])
		} else {
			session.Controller.Render()
		}
		if len(view.snap.Visible) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing to copy.")
			return nil
		}
		lines := make([]string, len(view.snap.Visible))
		for i, t := range view.snap.Visible {
			lines[i] = t.Text
		}
		if err := writeClipboard(strings.Join(lines, "\n")); err != nil {
			return fmt.Errorf("writing clipboard: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Copied %d todos\n", len(lines))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(copyCmd)
}
