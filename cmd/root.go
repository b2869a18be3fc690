package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	mtp "github.com/modeltoolsprotocol/go-sdk"
	"github.com/rogersnm/tally/internal/app"
	"github.com/rogersnm/tally/internal/config"
	"github.com/rogersnm/tally/internal/controller"
	"github.com/rogersnm/tally/internal/logging"
	"github.com/rogersnm/tally/internal/persist"
	"github.com/rogersnm/tally/internal/repofile"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	dataDir   string
	keyFlag   string
	ephemeral bool
	cfg       *config.Config
	session   *app.App
	view      = &lastView{}
	closers   []io.Closer
)

// lastView keeps the most recent snapshot so commands can print it after
// the controller has rendered.
type lastView struct {
	snap  controller.Snapshot
	drawn bool
}

func (v *lastView) Render(s controller.Snapshot) {
	v.snap = s
	v.drawn = true
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".tally")
	}
	return filepath.Join(home, ".tally")
}

var rootCmd = &cobra.Command{
	Use:     "tally",
	Short:   "A single-list todo tracker for the terminal",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}

		var err error
		cfg, err = config.Load(dataDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		// Config and repo commands work without opening the list
		if isCommandGroup(cmd, "config") || isCommandGroup(cmd, "repo") {
			return nil
		}
		return openSession(cmd)
	},
	SilenceUsage: true,
}

func isCommandGroup(cmd *cobra.Command, name string) bool {
	return cmd.Name() == name || (cmd.Parent() != nil && cmd.Parent().Name() == name)
}

func openSession(cmd *cobra.Command) error {
	logger, closer, err := logging.New(dataDir, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
		logger = logging.Discard()
	} else {
		closers = append(closers, closer)
	}

	key, err := resolveKey()
	if err != nil {
		return err
	}
	slot, err := openSlot()
	if err != nil {
		return err
	}

	view = &lastView{}
	session, err = app.New(slot, key, view, logger)
	if err != nil {
		var decodeErr *persist.DecodeError
		if errors.As(err, &decodeErr) {
			return fmt.Errorf("list %q is unreadable, refusing to overwrite it: %w", key, err)
		}
		return err
	}
	logger.Debug("session opened", slog.String("key", key), slog.String("backend", cfg.Backend))
	return nil
}

func openSlot() (persist.Slot, error) {
	if ephemeral {
		return persist.NewMemorySlot(), nil
	}
	switch cfg.Backend {
	case config.BackendSQLite:
		s, err := persist.OpenSQLiteSlot(filepath.Join(dataDir, "tally.db"))
		if err != nil {
			return nil, err
		}
		closers = append(closers, s)
		return s, nil
	default:
		return persist.NewFileSlot(filepath.Join(dataDir, "lists")), nil
	}
}

func closeSession() error {
	var errs []error
	for i := len(closers) - 1; i >= 0; i-- {
		errs = append(errs, closers[i].Close())
	}
	closers = nil
	return errors.Join(errs...)
}

// resolveKey returns the slot key from the flag, the repo-local file, or the
// config, in that order.
func resolveKey() (string, error) {
	key := keyFlag
	if key == "" {
		if cwd, err := os.Getwd(); err == nil {
			if k, _, _ := repofile.Find(cwd); k != "" {
				key = k
			}
		}
	}
	if key == "" && cfg != nil {
		key = cfg.Key
	}
	if key == "" {
		key = persist.DefaultKey
	}
	if err := persist.ValidateKey(key); err != nil {
		return "", err
	}
	return key, nil
}

func init() {
	cobra.OnFinalize(func() {
		if err := closeSession(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	})

	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", defaultDataDir(), "data directory path")
	rootCmd.PersistentFlags().StringVar(&keyFlag, "key", "", "list to use (overrides the repo link and config)")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "keep the list in memory only")

	mtpOpts := &mtp.DescribeOptions{
		Commands: map[string]*mtp.CommandAnnotation{
			"add": {
				Stdin: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Todo text, used when no argument is given",
				},
				Examples: []mtp.Example{
					{Description: "Add a todo", Command: "tally add \"buy milk\""},
					{Description: "Add a todo to another list", Command: "tally add \"renew passport\" --key errands"},
				},
			},
			"edit": {
				Examples: []mtp.Example{
					{Description: "Replace the text of a todo", Command: "tally edit 3 --text \"buy oat milk\""},
					{Description: "Edit a todo in $EDITOR", Command: "tally edit 3"},
				},
			},
			"done": {
				Examples: []mtp.Example{
					{Description: "Mark a todo completed", Command: "tally done 3"},
				},
			},
			"undo": {
				Examples: []mtp.Example{
					{Description: "Mark a todo active again", Command: "tally undo 3"},
				},
			},
			"rm": {
				Examples: []mtp.Example{
					{Description: "Delete a todo (interactive confirm)", Command: "tally rm 3"},
					{Description: "Delete a todo (skip confirm)", Command: "tally rm 3 --force"},
				},
			},
			"clear": {
				Examples: []mtp.Example{
					{Description: "Delete every completed todo", Command: "tally clear --force"},
				},
			},
			"list": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Table of visible todos with the items-left count and the filter bar",
				},
				Examples: []mtp.Example{
					{Description: "List active todos", Command: "tally list '#/active'"},
					{Description: "List completed todos", Command: "tally list completed"},
				},
			},
			"export": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/markdown",
					Description: "Markdown checklist with YAML frontmatter",
				},
				Examples: []mtp.Example{
					{Description: "Export to a file", Command: "tally export --out todos.md"},
				},
			},
			"import": {
				Examples: []mtp.Example{
					{Description: "Append todos from a markdown checklist", Command: "tally import todos.md"},
				},
			},
			"copy": {
				Examples: []mtp.Example{
					{Description: "Copy the active todos to the clipboard", Command: "tally copy active"},
				},
			},
			"repo init": {
				Examples: []mtp.Example{
					{Description: "Use the list \"website\" inside this directory", Command: "tally repo init website"},
				},
			},
			"config set-backend": {
				Examples: []mtp.Example{
					{Description: "Store lists in sqlite", Command: "tally config set-backend sqlite"},
				},
			},
		},
	}

	mtp.WithDescribe(rootCmd, mtpOpts)
}

func Execute() error {
	return rootCmd.Execute()
}
