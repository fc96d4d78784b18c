package ui

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faizmokh/todo/internal/files"
	"github.com/faizmokh/todo/internal/todo"
)

func newTestModel(t *testing.T, entries ...todo.Entry) (Model, *todo.Store) {
	t.Helper()
	mgr, err := files.NewManager(filepath.Join(t.TempDir(), "todo.json"))
	require.NoError(t, err)
	store := todo.NewStore(mgr)
	require.NoError(t, store.Save(context.Background(), todo.List{Entries: entries}))

	m := NewModel(context.Background(), store, NewStyles(lipgloss.NewRenderer(&bytes.Buffer{})))
	return drain(t, m, m.Init()), store
}

// drain runs cmd synchronously and feeds its message back into the model.
func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	next, _ := m.Update(cmd())
	return next.(Model)
}

func press(t *testing.T, m Model, key string) Model {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, cmd := m.Update(msg)
	model := next.(Model)
	if model.mode == modeAdd {
		// Focus and blink commands only drive the cursor.
		return model
	}
	return drain(t, model, cmd)
}

func load(t *testing.T, store *todo.Store) todo.List {
	t.Helper()
	list, err := store.Load(context.Background())
	require.NoError(t, err)
	return list
}

func TestModelLoadsListOnInit(t *testing.T) {
	m, _ := newTestModel(t, todo.NewEntry("a"), todo.NewEntry("b"))

	assert.False(t, m.loading)
	assert.Equal(t, 2, m.list.Len())
	assert.Contains(t, m.View(), "1. a")
	assert.Contains(t, m.View(), "2. b")
}

func TestModelEmptyListView(t *testing.T) {
	m, _ := newTestModel(t)

	assert.Contains(t, m.View(), "Todo list is empty.")
}

func TestModelNavigationStaysInBounds(t *testing.T) {
	m, _ := newTestModel(t, todo.NewEntry("a"), todo.NewEntry("b"))

	m = press(t, m, "k")
	assert.Equal(t, 0, m.selected)

	m = press(t, m, "j")
	m = press(t, m, "j")
	assert.Equal(t, 1, m.selected)
}

func TestModelSetStatusPersists(t *testing.T) {
	m, store := newTestModel(t, todo.NewEntry("a"), todo.NewEntry("b"))

	m = press(t, m, "j")
	m = press(t, m, "c")

	assert.Equal(t, todo.StatusCompleted, m.list.Entries[1].Status)
	assert.Equal(t, todo.StatusCompleted, load(t, store).Entries[1].Status)
	assert.Contains(t, m.statusLine, "Completed")
}

func TestModelSpaceCyclesStatus(t *testing.T) {
	m, store := newTestModel(t, todo.NewEntry("a"))

	want := []todo.Status{todo.StatusInProgress, todo.StatusCompleted, todo.StatusScrapped, todo.StatusIncomplete}
	for _, status := range want {
		m = press(t, m, " ")
		require.Equal(t, status, m.list.Entries[0].Status)
	}
	assert.Equal(t, todo.StatusIncomplete, load(t, store).Entries[0].Status)
}

func TestModelAddEntry(t *testing.T) {
	m, store := newTestModel(t, todo.NewEntry("a"))

	m = press(t, m, "a")
	require.Equal(t, modeAdd, m.mode)
	m = press(t, m, "buy milk")
	m = press(t, m, "enter")

	assert.Equal(t, modeNormal, m.mode)
	assert.Equal(t, 1, m.selected)
	assert.Equal(t, []todo.Entry{todo.NewEntry("a"), todo.NewEntry("buy milk")}, load(t, store).Entries)
}

func TestModelAddDuplicateLeavesFileAlone(t *testing.T) {
	m, store := newTestModel(t, todo.NewEntry("a"))
	before, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	m = press(t, m, "a")
	m = press(t, m, "a")
	m = press(t, m, "enter")

	assert.Contains(t, m.statusLine, "already exists")
	assert.Empty(t, m.errorLine)
	after, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestModelAddEmptyShowsError(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, "a")
	m = press(t, m, "enter")

	assert.Equal(t, modeAdd, m.mode)
	assert.Equal(t, "Entry cannot be empty.", m.errorLine)
}

func TestModelAddCancel(t *testing.T) {
	m, store := newTestModel(t)

	m = press(t, m, "a")
	m = press(t, m, "x")
	m = press(t, m, "esc")

	assert.Equal(t, modeNormal, m.mode)
	assert.Equal(t, 0, load(t, store).Len())
}

func TestModelRemoveRequiresConfirmation(t *testing.T) {
	m, store := newTestModel(t, todo.NewEntry("a"), todo.NewEntry("b"))

	m = press(t, m, "d")
	require.Equal(t, modeConfirmRemove, m.mode)
	assert.Contains(t, m.View(), "Remove entry 1?")
	m = press(t, m, "n")
	assert.Equal(t, 2, load(t, store).Len())

	m = press(t, m, "d")
	m = press(t, m, "y")
	assert.Equal(t, []todo.Entry{todo.NewEntry("b")}, load(t, store).Entries)
	assert.Equal(t, 1, m.list.Len())
	assert.Contains(t, m.statusLine, `Removed "a"`)
}

func TestModelShowsStoreErrors(t *testing.T) {
	m, store := newTestModel(t, todo.NewEntry("a"))
	require.NoError(t, os.WriteFile(store.Path(), []byte("not json"), 0o644))

	m = press(t, m, "c")

	assert.NotEmpty(t, m.errorLine)
	assert.Equal(t, todo.StatusIncomplete, m.list.Entries[0].Status)
	assert.Contains(t, m.View(), "! ")
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
