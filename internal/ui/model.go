package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/faizmokh/todo/internal/todo"
)

// errDuplicate aborts an add before anything is saved.
var errDuplicate = errors.New("entry already exists")

// Model owns Bubble Tea state for the interactive list browser.
type Model struct {
	ctx    context.Context
	store  *todo.Store
	styles Styles

	list     todo.List
	selected int
	mode     mode
	input    textinput.Model

	loading    bool
	statusLine string
	errorLine  string
}

type mode uint8

const (
	modeNormal mode = iota
	modeAdd
	modeConfirmRemove
)

type listLoadedMsg struct {
	list todo.List
	err  error
}

// updateResultMsg carries the list as saved by one Store.Update.
type updateResultMsg struct {
	list     todo.List
	status   string
	selectAt int
	err      error
}

// NewModel seeds a Bubble Tea model with required collaborators.
func NewModel(ctx context.Context, store *todo.Store, styles Styles) Model {
	input := textinput.New()
	input.Placeholder = "What needs doing?"
	input.Prompt = "> "
	input.CharLimit = 256

	return Model{
		ctx:        ctx,
		store:      store,
		styles:     styles,
		mode:       modeNormal,
		input:      input,
		loading:    true,
		statusLine: "Loading...",
	}
}

// Init loads the list from disk.
func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

// Update wires state transitions from user input and store results.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case listLoadedMsg:
		return m.handleLoaded(msg)
	case updateResultMsg:
		return m.handleUpdateResult(msg)
	default:
		if m.mode == modeAdd {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeAdd:
		return m.handleAddKey(msg)
	case modeConfirmRemove:
		return m.handleConfirmKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "down", "j":
		if m.selected < m.list.Len()-1 {
			m.selected++
			m.statusLine = fmt.Sprintf("Selected entry %d of %d", m.selected+1, m.list.Len())
			m.errorLine = ""
		}
	case "up", "k":
		if m.selected > 0 {
			m.selected--
			m.statusLine = fmt.Sprintf("Selected entry %d of %d", m.selected+1, m.list.Len())
			m.errorLine = ""
		}
	case "r":
		m.loading = true
		m.statusLine = "Reloading..."
		m.errorLine = ""
		return m, m.loadCmd()
	case " ":
		if entry, ok := m.current(); ok {
			return m.setStatus(nextStatus(entry.Status))
		}
	case "i":
		return m.setStatus(todo.StatusIncomplete)
	case "p":
		return m.setStatus(todo.StatusInProgress)
	case "s":
		return m.setStatus(todo.StatusScrapped)
	case "c":
		return m.setStatus(todo.StatusCompleted)
	case "a":
		m.mode = modeAdd
		m.input.SetValue("")
		m.statusLine = ""
		m.errorLine = ""
		return m, m.input.Focus()
	case "d":
		if _, ok := m.current(); ok {
			m.mode = modeConfirmRemove
			m.statusLine = ""
			m.errorLine = ""
		}
	}

	return m, nil
}

func (m Model) handleAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.mode = modeNormal
		m.input.Blur()
		m.statusLine = "Cancelled."
		return m, nil
	case tea.KeyEnter:
		name := strings.TrimSpace(m.input.Value())
		if name == "" {
			m.errorLine = "Entry cannot be empty."
			return m, nil
		}
		m.mode = modeNormal
		m.input.Blur()
		m.input.SetValue("")
		m.statusLine = "Saving entry..."
		m.errorLine = ""
		return m, m.addCmd(name)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "y", "Y":
		m.mode = modeNormal
		m.statusLine = "Removing entry..."
		return m, m.removeCmd(m.selected)
	case "n", "N", "esc":
		m.mode = modeNormal
		m.statusLine = "Cancelled."
	}
	return m, nil
}

func (m Model) setStatus(status todo.Status) (tea.Model, tea.Cmd) {
	if _, ok := m.current(); !ok || m.loading {
		return m, nil
	}
	m.errorLine = ""
	return m, m.setStatusCmd(m.selected, status)
}

func (m Model) handleLoaded(msg listLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		m.errorLine = msg.err.Error()
		m.statusLine = ""
		return m, nil
	}

	m.list = msg.list
	m.selected = clampIndex(m.selected, m.list.Len())
	m.statusLine = fmt.Sprintf("%d %s", m.list.Len(), plural(m.list.Len(), "entry", "entries"))
	return m, nil
}

func (m Model) handleUpdateResult(msg updateResultMsg) (tea.Model, tea.Cmd) {
	if errors.Is(msg.err, errDuplicate) {
		m.statusLine = msg.status
		return m, nil
	}
	if msg.err != nil {
		m.errorLine = msg.err.Error()
		m.statusLine = ""
		return m, nil
	}

	m.list = msg.list
	m.selected = clampIndex(msg.selectAt, m.list.Len())
	m.statusLine = msg.status
	m.errorLine = ""
	return m, nil
}

func (m Model) current() (todo.Entry, bool) {
	if m.selected < 0 || m.selected >= m.list.Len() {
		return todo.Entry{}, false
	}
	return m.list.Entries[m.selected], true
}

func (m Model) loadCmd() tea.Cmd {
	store := m.store
	ctx := m.ctx
	return func() tea.Msg {
		list, err := store.Load(ctx)
		return listLoadedMsg{list: list, err: err}
	}
}

func (m Model) setStatusCmd(index int, status todo.Status) tea.Cmd {
	store := m.store
	ctx := m.ctx
	return func() tea.Msg {
		var updated todo.Entry
		list, err := store.Update(ctx, func(list *todo.List) error {
			var err error
			updated, err = list.SetStatus(index, status)
			return err
		})
		if err != nil {
			return updateResultMsg{err: err}
		}
		return updateResultMsg{
			list:     list,
			status:   fmt.Sprintf("Marked %q as %s", updated.Name, status),
			selectAt: index,
		}
	}
}

func (m Model) addCmd(name string) tea.Cmd {
	store := m.store
	ctx := m.ctx
	return func() tea.Msg {
		list, err := store.Update(ctx, func(list *todo.List) error {
			if _, added := list.Add(name); !added {
				return errDuplicate
			}
			return nil
		})
		if errors.Is(err, errDuplicate) {
			return updateResultMsg{err: err, status: fmt.Sprintf("%q already exists in the list", name)}
		}
		if err != nil {
			return updateResultMsg{err: err}
		}
		return updateResultMsg{
			list:     list,
			status:   fmt.Sprintf("Added %q", name),
			selectAt: list.Len() - 1,
		}
	}
}

func (m Model) removeCmd(index int) tea.Cmd {
	store := m.store
	ctx := m.ctx
	return func() tea.Msg {
		var removed []todo.Entry
		list, err := store.Update(ctx, func(list *todo.List) error {
			var err error
			removed, err = list.RemoveMultiple([]int{index})
			return err
		})
		if err != nil {
			return updateResultMsg{err: err}
		}
		return updateResultMsg{
			list:     list,
			status:   fmt.Sprintf("Removed %q", removed[0].Name),
			selectAt: index,
		}
	}
}

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Todo list"))
	b.WriteByte('\n')
	b.WriteString(m.styles.Help.Render(m.store.Path()))
	b.WriteString("\n\n")

	switch {
	case m.loading && m.list.Len() == 0:
		b.WriteString("Loading...\n")
	case m.list.Len() == 0:
		b.WriteString("Todo list is empty.\n")
	default:
		for i, entry := range m.list.Entries {
			cursor := "  "
			if i == m.selected {
				cursor = m.styles.Cursor.Render(">") + " "
			}
			fmt.Fprintf(&b, "%s%d. %s\n", cursor, i+1, m.styles.RenderEntry(entry))
		}
	}

	if m.errorLine != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render("! " + m.errorLine))
		b.WriteByte('\n')
	} else if m.statusLine != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.StatusLine.Render(m.statusLine))
		b.WriteByte('\n')
	}

	switch m.mode {
	case modeAdd:
		b.WriteString("\nNew entry (Enter to save, Esc to cancel)\n")
		b.WriteString(m.input.View())
		b.WriteByte('\n')
	case modeConfirmRemove:
		fmt.Fprintf(&b, "\nRemove entry %d? (y/n)\n", m.selected+1)
	default:
		b.WriteString("\n")
		b.WriteString(m.styles.Help.Render("j/k move  space cycle  i/p/s/c set status  a add  d remove  r reload  q quit"))
		b.WriteByte('\n')
	}

	return b.String()
}

// nextStatus is the order space walks through: open, working, done, dropped.
func nextStatus(status todo.Status) todo.Status {
	switch status {
	case todo.StatusIncomplete:
		return todo.StatusInProgress
	case todo.StatusInProgress:
		return todo.StatusCompleted
	case todo.StatusCompleted:
		return todo.StatusScrapped
	default:
		return todo.StatusIncomplete
	}
}

func clampIndex(index, length int) int {
	if length == 0 || index < 0 {
		return 0
	}
	if index >= length {
		return length - 1
	}
	return index
}

func plural(count int, one, many string) string {
	if count == 1 {
		return one
	}
	return many
}
