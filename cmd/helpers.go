package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rogersnm/tally/internal/id"
	"github.com/rogersnm/tally/internal/model"
	"github.com/rogersnm/tally/internal/store"
	"github.com/spf13/cobra"
)

func readStdin() string {
	info, err := os.Stdin.Stat()
	if err != nil {
		return ""
	}
	// Only read if stdin is explicitly a pipe (not a terminal, not a socket)
	if info.Mode()&os.ModeNamedPipe == 0 && info.Size() == 0 {
		return ""
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return ""
	}
	return string(data)
}

// confirm asks before a destructive action unless --force was given.
func confirm(cmd *cobra.Command, title string) error {
	if force, _ := cmd.Flags().GetBool("force"); force {
		return nil
	}
	ok := false
	if err := huh.NewConfirm().
		Title(title).
		Affirmative("Delete").
		Negative("Cancel").
		Value(&ok).
		Run(); err != nil {
		return fmt.Errorf("confirmation cancelled (use --force to skip)")
	}
	if !ok {
		return fmt.Errorf("cancelled")
	}
	return nil
}

// lookupTask parses a task reference and fetches the task from the session.
func lookupTask(ref string) (*model.Task, error) {
	n, err := id.Parse(ref)
	if err != nil {
		return nil, err
	}
	return session.Store.Get(n)
}

// warnEmpty turns an empty-text rejection into a warning, matching how a
// blank submission is ignored in the UI.
func warnEmpty(cmd *cobra.Command, err error) error {
	if errors.Is(err, store.ErrEmptyText) {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v, nothing saved\n", err)
		return nil
	}
	return err
}

func taskLine(t model.Task) string {
	mark := " "
	if t.Completed {
		mark = "x"
	}
	return fmt.Sprintf("[%s] %s %s", mark, id.Format(t.ID), strings.TrimSpace(t.Text))
}
