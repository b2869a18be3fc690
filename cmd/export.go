package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rogersnm/tally/internal/markdown"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the list as a markdown checklist",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap := session.Controller.Snapshot()
		meta := markdown.ChecklistMeta{
			Key:        session.Adapter.Key(),
			Total:      snap.Total,
			Remaining:  snap.Remaining,
			ExportedAt: time.Now().UTC().Truncate(time.Second),
		}
		data, err := markdown.ExportChecklist(meta, snap.Tasks)
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			_, err := cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(out, data, 0644); err != nil {
			return fmt.Errorf("writing export: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d todos to %s\n", snap.Total, out)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Append the items of a markdown checklist to the list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		_, items, err := markdown.ParseChecklist(f)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", args[0], err)
		}

		c := session.Controller
		for _, it := range items {
			t, err := c.SubmitNewTask(it.Text)
			if err != nil {
				return err
			}
			if it.Completed {
				if err := c.SetCompleted(t.ID, true); err != nil {
					return err
				}
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d todos\n", len(items))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("out", "o", "", "write to a file instead of stdout")
	rootCmd.AddCommand(exportCmd, importCmd)
}
