package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/faizmokh/todo/internal/todo"
	"github.com/faizmokh/todo/internal/ui"
)

func newListCommand(ctx context.Context, store *todo.Store) *cobra.Command {
	var statusFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the list, optionally only entries with a status.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := parseStatusFlag(cmd, "status", statusFlag)
			if err != nil {
				return err
			}

			list, err := store.Load(ctx)
			if err != nil {
				return err
			}

			if status == nil {
				printList(cmd, list)
				return nil
			}
			printFiltered(cmd, list, *status)
			return nil
		},
	}

	cmd.Flags().StringVarP(&statusFlag, "status", "s", "", "Only show entries with this status")

	return cmd
}

func newInteractiveCommand(ctx context.Context, store *todo.Store) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"tui"},
		Short:   "Browse and edit the list in a terminal UI.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := ui.NewModel(ctx, store, stylesFor(cmd))
			program := tea.NewProgram(m,
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
	}

	return cmd
}
