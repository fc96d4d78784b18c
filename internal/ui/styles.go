package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/todo/internal/todo"
)

// Styles maps list state to terminal styling. Nothing here feeds back into
// stored data.
type Styles struct {
	Incomplete lipgloss.Style
	InProgress lipgloss.Style
	Scrapped   lipgloss.Style
	Completed  lipgloss.Style

	Error  lipgloss.Style
	Notice lipgloss.Style

	// Interactive browser
	Title      lipgloss.Style
	Cursor     lipgloss.Style
	StatusLine lipgloss.Style
	Help       lipgloss.Style
}

// NewStyles builds styles bound to r, so colour support is detected for the
// writer r was created for. A nil renderer means the default (stdout) one.
func NewStyles(r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	return Styles{
		Incomplete: r.NewStyle(),
		InProgress: r.NewStyle().Foreground(lipgloss.Color("3")),
		Scrapped:   r.NewStyle().Strikethrough(true).Faint(true),
		Completed:  r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true).Underline(true),

		Error:  r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Notice: r.NewStyle().Faint(true),

		Title:      r.NewStyle().Bold(true),
		Cursor:     r.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		StatusLine: r.NewStyle().Foreground(lipgloss.Color("6")),
		Help:       r.NewStyle().Faint(true),
	}
}

// Status returns the style used for entries in the given state.
func (s Styles) Status(status todo.Status) lipgloss.Style {
	switch status {
	case todo.StatusInProgress:
		return s.InProgress
	case todo.StatusScrapped:
		return s.Scrapped
	case todo.StatusCompleted:
		return s.Completed
	default:
		return s.Incomplete
	}
}

// RenderEntry styles the entry's name according to its status.
func (s Styles) RenderEntry(entry todo.Entry) string {
	return s.Status(entry.Status).Render(entry.Name)
}
