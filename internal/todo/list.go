package todo

import (
	"fmt"
	"slices"
)

// List is the ordered set of entries stored in one todo file. Display index is
// position + 1; every index taken by List methods is 0-based.
type List struct {
	Entries []Entry `json:"entries"`
}

// Len returns the number of entries.
func (l List) Len() int {
	return len(l.Entries)
}

// Contains reports whether an equal entry is already on the list.
func (l List) Contains(entry Entry) bool {
	return slices.ContainsFunc(l.Entries, entry.Equal)
}

// Add appends a new incomplete entry unless an equal one exists. The bool is
// false when the entry was a duplicate and nothing changed.
func (l *List) Add(name string) (Entry, bool) {
	entry := NewEntry(name)
	if l.Contains(entry) {
		return entry, false
	}
	l.Entries = append(l.Entries, entry)
	return entry, true
}

// SetStatus updates the entry at index and returns its new value.
func (l *List) SetStatus(index int, status Status) (Entry, error) {
	if index < 0 || index >= len(l.Entries) {
		return Entry{}, fmt.Errorf("%w: %d", ErrInvalidIndex, index+1)
	}
	l.Entries[index].SetStatus(status)
	return l.Entries[index], nil
}

// RemoveMultiple deletes every entry whose index is listed. Indices may come
// in any order and repeats collapse. If any index is out of range the list is
// left untouched. The removed entries are returned in list order.
func (l *List) RemoveMultiple(indices []int) ([]Entry, error) {
	targets := slices.Clone(indices)
	slices.Sort(targets)
	targets = slices.Compact(targets)

	for _, index := range targets {
		if index < 0 || index >= len(l.Entries) {
			return nil, fmt.Errorf("%w: %d", ErrInvalidIndex, index+1)
		}
	}

	removed := make([]Entry, len(targets))
	// Walk from the back so earlier removals never shift later targets.
	for i := len(targets) - 1; i >= 0; i-- {
		index := targets[i]
		removed[i] = l.Entries[index]
		l.Entries = slices.Delete(l.Entries, index, index+1)
	}
	return removed, nil
}

// Clear removes every entry and returns how many were dropped.
func (l *List) Clear() int {
	n := len(l.Entries)
	l.Entries = l.Entries[:0]
	return n
}

// ClearWithStatus removes the entries carrying status, keeping the rest in
// order, and returns how many were dropped.
func (l *List) ClearWithStatus(status Status) int {
	before := len(l.Entries)
	l.Entries = slices.DeleteFunc(l.Entries, func(e Entry) bool {
		return e.Status == status
	})
	return before - len(l.Entries)
}

// Filter returns the indices of entries carrying status.
func (l List) Filter(status Status) []int {
	var indices []int
	for i, entry := range l.Entries {
		if entry.Status == status {
			indices = append(indices, i)
		}
	}
	return indices
}
