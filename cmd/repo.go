package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/rogersnm/tally/internal/persist"
	"github.com/rogersnm/tally/internal/repofile"
	"github.com/spf13/cobra"
)

var repoCmd = &cobra.Command{
	Use:   "repo",
	Short: "Manage the list linked to a directory",
}

var repoInitCmd = &cobra.Command{
	Use:   "init [list]",
	Short: "Use a named list inside the current directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var key string
		if len(args) == 1 {
			key = args[0]
		} else {
			if err := huh.NewInput().
				Title("List name").
				Placeholder(persist.DefaultKey).
				Validate(persist.ValidateKey).
				Value(&key).
				Run(); err != nil {
				return fmt.Errorf("input cancelled")
			}
		}
		if err := persist.ValidateKey(key); err != nil {
			return err
		}

		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		if err := repofile.Write(cwd, key); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Linked %s to list %s\n", repofile.FileName, key)
		return nil
	},
}

var repoShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the list linked to this directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		key, dir, err := repofile.Find(cwd)
		if err != nil {
			return err
		}
		if key == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "No list linked. Run: tally repo init")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (from %s/%s)\n", key, dir, repofile.FileName)
		return nil
	},
}

var repoUnlinkCmd = &cobra.Command{
	Use:   "unlink",
	Short: "Remove the list link from this directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		removed, err := repofile.Remove(cwd)
		if err != nil {
			return err
		}
		if !removed {
			fmt.Fprintln(cmd.OutOrStdout(), "No list linked.")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Unlinked list.")
		return nil
	},
}

func init() {
	repoCmd.AddCommand(repoInitCmd)
	repoCmd.AddCommand(repoShowCmd)
	repoCmd.AddCommand(repoUnlinkCmd)
	rootCmd.AddCommand(repoCmd)
}
