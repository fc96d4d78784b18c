package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/faizmokh/todo/internal/todo"
)

func newAddCommand(ctx context.Context, store *todo.Store) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <entry>...",
		Short: "Add one or more entries to the list.",
		Long:  "add appends incomplete entries. Separate several entries with spaces or commas; quote entries that contain spaces.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := splitNames(args)
			if len(names) == 0 {
				return errors.New("at least one entry is required")
			}

			var lines []string
			_, err := store.Update(ctx, func(list *todo.List) error {
				for _, name := range names {
					if _, added := list.Add(name); !added {
						lines = append(lines, fmt.Sprintf("%q already exists in the list", name))
						continue
					}
					lines = append(lines, fmt.Sprintf("Added %q", name))
				}
				return nil
			})
			if err != nil {
				return err
			}

			for _, line := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	return cmd
}

func newSetCommand(ctx context.Context, store *todo.Store, logger *log.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <status> <index>...",
		Short: "Mark entries with a status.",
		Long:  "set assigns Incomplete, InProgress, Scrapped or Completed to the entries at the given 1-based indices. Invalid indices are skipped with a notice on stderr.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := todo.ParseStatus(args[0])
			if err != nil {
				return err
			}

			var lines []string
			_, err = store.Update(ctx, func(list *todo.List) error {
				for _, arg := range args[1:] {
					index, err := parseIndex(arg)
					if err != nil {
						reportSkipped(cmd, logger, arg, err)
						continue
					}
					entry, err := list.SetStatus(index, status)
					if err != nil {
						reportSkipped(cmd, logger, arg, err)
						continue
					}
					lines = append(lines, fmt.Sprintf("Marked %d. %s as %s", index+1, entry.Name, status))
				}
				return nil
			})
			if err != nil {
				return err
			}

			for _, line := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	return cmd
}

func newRemoveCommand(ctx context.Context, store *todo.Store, logger *log.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <index>...",
		Short: "Remove entries by index.",
		Long:  "remove deletes the entries at the given 1-based indices in one pass. Invalid indices are skipped with a notice on stderr; repeated indices count once.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				removed []todo.Entry
				indices []int
			)
			_, err := store.Update(ctx, func(list *todo.List) error {
				for _, arg := range args {
					index, err := parseIndex(arg)
					if err != nil {
						reportSkipped(cmd, logger, arg, err)
						continue
					}
					if index >= list.Len() {
						reportSkipped(cmd, logger, arg, fmt.Errorf("%w: %d", todo.ErrInvalidIndex, index+1))
						continue
					}
					indices = append(indices, index)
				}

				var err error
				removed, err = list.RemoveMultiple(indices)
				return err
			})
			if err != nil {
				return err
			}

			// removed follows list order, which matches the sorted unique indices.
			slices.Sort(indices)
			indices = slices.Compact(indices)
			for i, entry := range removed {
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d. %s\n", indices[i]+1, entry.Name)
			}
			return nil
		},
	}

	return cmd
}

func newClearCommand(ctx context.Context, store *todo.Store) *cobra.Command {
	var statusFlag string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear the list, or only the entries with a status.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := parseStatusFlag(cmd, "with-status", statusFlag)
			if err != nil {
				return err
			}

			var cleared int
			_, err = store.Update(ctx, func(list *todo.List) error {
				if status == nil {
					cleared = list.Clear()
				} else {
					cleared = list.ClearWithStatus(*status)
				}
				return nil
			})
			if err != nil {
				return err
			}

			if status == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d %s\n", cleared, plural(cleared))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d %s %s\n", cleared, *status, plural(cleared))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&statusFlag, "with-status", "w", "", "Only clear entries with this status")

	return cmd
}
