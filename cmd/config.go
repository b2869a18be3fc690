package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/rogersnm/tally/internal/config"
	"github.com/rogersnm/tally/internal/markdown"
	"github.com/spf13/cobra"
)

// runSetupPrompt asks which storage backend to use and saves the choice.
func runSetupPrompt(cmd *cobra.Command) error {
	choice := cfg.Backend
	err := huh.NewSelect[string]().
		Title("Where should tally keep your lists?").
		Options(
			huh.NewOption("JSON files in "+dataDir+"/lists", config.BackendFile),
			huh.NewOption("A sqlite database at "+dataDir+"/tally.db", config.BackendSQLite),
		).
		Value(&choice).
		Run()
	if err != nil {
		return fmt.Errorf("run 'tally config set-backend <file|sqlite>' instead")
	}
	return setBackend(cmd, choice)
}

func setBackend(cmd *cobra.Command, backend string) error {
	if err := config.ValidateBackend(backend); err != nil {
		return err
	}
	cfg.Backend = backend
	if err := config.Save(dataDir, cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Backend set to %s\n", backend)
	return nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure tally (storage backend)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetupPrompt(cmd)
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := resolveKey()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, markdown.RenderField("Backend", cfg.Backend))
		fmt.Fprintln(out, markdown.RenderField("List", key))
		fmt.Fprintln(out, markdown.RenderField("Log level", cfg.LogLevel))
		fmt.Fprintln(out, markdown.RenderField("Data", dataDir))
		return nil
	},
}

var configSetBackendCmd = &cobra.Command{
	Use:       "set-backend <file|sqlite>",
	Short:     "Choose where lists are stored",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{config.BackendFile, config.BackendSQLite},
	RunE: func(cmd *cobra.Command, args []string) error {
		return setBackend(cmd, args[0])
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetBackendCmd)
	rootCmd.AddCommand(configCmd)
}
