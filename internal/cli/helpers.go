package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/faizmokh/todo/internal/todo"
	"github.com/faizmokh/todo/internal/ui"
)

const emptyListNotice = "Todo list is empty."

// stylesFor binds styles to the command's output so colour is only emitted on a terminal.
func stylesFor(cmd *cobra.Command) ui.Styles {
	return ui.NewStyles(lipgloss.NewRenderer(cmd.OutOrStdout()))
}

// splitNames flattens "a,b" "c" into [a b c], dropping blanks.
func splitNames(args []string) []string {
	var names []string
	for _, arg := range args {
		for _, part := range strings.Split(arg, ",") {
			if name := strings.TrimSpace(part); name != "" {
				names = append(names, name)
			}
		}
	}
	return names
}

// parseIndex turns a 1-based index argument into a 0-based position.
func parseIndex(arg string) (int, error) {
	index, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || index <= 0 {
		return 0, fmt.Errorf("index %q must be a positive integer", arg)
	}
	return index - 1, nil
}

// parseStatusFlag returns nil only when the flag was not passed at all. An
// explicit empty value is parsed like any other and rejected.
func parseStatusFlag(cmd *cobra.Command, name, value string) (*todo.Status, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}
	status, err := todo.ParseStatus(value)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func printList(cmd *cobra.Command, list todo.List) {
	out := cmd.OutOrStdout()
	if list.Len() == 0 {
		fmt.Fprintln(out, emptyListNotice)
		return
	}

	styles := stylesFor(cmd)
	for i, entry := range list.Entries {
		fmt.Fprintf(out, "%d. %s\n", i+1, styles.RenderEntry(entry))
	}
}

func printFiltered(cmd *cobra.Command, list todo.List, status todo.Status) {
	out := cmd.OutOrStdout()
	indices := list.Filter(status)
	if len(indices) == 0 {
		fmt.Fprintf(out, "No %s entries.\n", status)
		return
	}

	styles := stylesFor(cmd)
	for _, i := range indices {
		fmt.Fprintf(out, "%d. %s\n", i+1, styles.RenderEntry(list.Entries[i]))
	}
}

// reportSkipped tells the user an index argument was ignored. It goes to the
// command's error stream regardless of log level.
func reportSkipped(cmd *cobra.Command, logger *log.Logger, arg string, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "Skipping index %q: %v\n", arg, err)
	logger.Debug("skipping index", "index", arg, "err", err)
}

func plural(count int) string {
	if count == 1 {
		return "entry"
	}
	return "entries"
}
