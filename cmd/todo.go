package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rogersnm/tally/internal/editor"
	"github.com/rogersnm/tally/internal/id"
	"github.com/rogersnm/tally/internal/markdown"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [text...]",
	Short: "Add a todo",
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		if len(args) == 0 {
			text = readStdin()
		}
		t, err := session.Controller.SubmitNewTask(text)
		if err != nil {
			return warnEmpty(cmd, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s\n", id.Format(t.ID), t.Text)
		return nil
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change the text of a todo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := lookupTask(args[0])
		if err != nil {
			return err
		}
		c := session.Controller
		if err := c.StartEdit(t.ID); err != nil {
			return err
		}

		text, _ := cmd.Flags().GetString("text")
		if !cmd.Flags().Changed("text") {
			text, err = editor.EditText(t.Text)
			if err != nil {
				return errors.Join(err, c.CancelEdit(t.ID))
			}
		}

		if err := c.SubmitEdit(t.ID, text); err != nil {
			return errors.Join(warnEmpty(cmd, err), c.CancelEdit(t.ID))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated %s %s\n", id.Format(t.ID), t.Text)
		return nil
	},
}

func setCompletedCmd(use, short string, completed bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := lookupTask(args[0])
			if err != nil {
				return err
			}
			if err := session.Controller.SetCompleted(t.ID, completed); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), taskLine(*t))
			return nil
		},
	}
}

var (
	doneCmd = setCompletedCmd("done", "Mark a todo completed", true)
	undoCmd = setCompletedCmd("undo", "Mark a todo active", false)
)

var toggleAllCmd = &cobra.Command{
	Use:   "toggle-all",
	Short: "Mark every todo completed (or active, on a second toggle in the same session)",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := session.Controller
		if err := c.ToggleAll(); err != nil {
			return err
		}
		state := "active"
		if c.AllChecked() {
			state = "completed"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Marked %d todos %s\n", view.snap.Total, state)
		return nil
	},
}

var rmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a todo",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := lookupTask(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), taskLine(*t))
		if err := confirm(cmd, "Delete "+id.Format(t.ID)+"?"); err != nil {
			return err
		}
		if err := session.Controller.Destroy(t.ID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id.Format(t.ID))
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every completed todo",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := session.Controller
		n := c.Snapshot().Completed
		if n == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing to clear.")
			return nil
		}
		if err := confirm(cmd, fmt.Sprintf("Delete %d completed todos?", n)); err != nil {
			return err
		}
		removed, err := c.ClearCompleted()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d completed todos\n", removed)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list [filter]",
	Short: "List todos (filter: all, active, completed or a #/ fragment)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			session.Routes.Navigate(args[0])
		} else {
			session.Controller.Render()
		}

		pretty, _ := cmd.Flags().GetBool("pretty")
		if !pretty {
			fmt.Fprintln(cmd.OutOrStdout(), markdown.RenderList(view.snap))
			return nil
		}
		body := "# " + view.snap.Filter.Label() + "\n\n" + markdown.ChecklistBody(view.snap.Visible)
		rendered, err := markdown.RenderMarkdown(body)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		fmt.Fprintln(cmd.OutOrStdout(), markdown.ItemsLeft(view.snap.Remaining))
		return nil
	},
}

func init() {
	editCmd.Flags().String("text", "", "new text (opens $EDITOR when omitted)")
	rmCmd.Flags().BoolP("force", "f", false, "skip confirmation")
	clearCmd.Flags().BoolP("force", "f", false, "skip confirmation")
	listCmd.Flags().Bool("pretty", false, "render as markdown")

	rootCmd.AddCommand(addCmd, editCmd, doneCmd, undoCmd, toggleAllCmd, rmCmd, clearCmd, listCmd)
}
