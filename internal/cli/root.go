package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/faizmokh/todo/internal/config"
	"github.com/faizmokh/todo/internal/files"
	"github.com/faizmokh/todo/internal/todo"
	"github.com/faizmokh/todo/internal/ui"
	"github.com/faizmokh/todo/internal/version"
)

// NewRootCommand creates the top-level Cobra command. Run without a
// subcommand it prints the list.
func NewRootCommand(ctx context.Context, store *todo.Store, logger *log.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "todo",
		Short:   "Keep a small todo list in the current directory.",
		Version: version.Info(),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := store.Load(ctx)
			if err != nil {
				return err
			}
			printList(cmd, list)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newAddCommand(ctx, store),
		newSetCommand(ctx, store, logger),
		newRemoveCommand(ctx, store, logger),
		newClearCommand(ctx, store),
		newListCommand(ctx, store),
		newInteractiveCommand(ctx, store),
	)

	return cmd
}

// ExecuteCommand resolves configuration, wires the store and runs the root command.
func ExecuteCommand(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := newLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		return err
	}

	path, err := files.ResolvePath(cfg.File)
	if err != nil {
		return err
	}
	manager, err := files.NewManager(path)
	if err != nil {
		return err
	}
	store := todo.NewStore(manager)
	logger.Debug("using todo file", "path", store.Path())

	return NewRootCommand(ctx, store, logger).Execute()
}

// Main is a helper used by cmd/todo/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func printError(w io.Writer, err error) {
	styles := ui.NewStyles(lipgloss.NewRenderer(w))
	fmt.Fprintf(w, "%s: %v\n", styles.Error.Render("Error while running command"), err)
}

func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "todo",
		Level:  lvl,
	}), nil
}
