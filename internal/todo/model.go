package todo

import (
	"fmt"
	"strings"
)

// Status is the lifecycle state of an entry. The zero value is StatusIncomplete.
type Status uint8

const (
	// StatusIncomplete marks entries nobody has started.
	StatusIncomplete Status = iota
	// StatusInProgress marks entries being worked on.
	StatusInProgress
	// StatusScrapped marks abandoned entries kept for the record.
	StatusScrapped
	// StatusCompleted marks finished entries.
	StatusCompleted
)

var statusNames = [...]string{
	StatusIncomplete: "Incomplete",
	StatusInProgress: "InProgress",
	StatusScrapped:   "Scrapped",
	StatusCompleted:  "Completed",
}

// Statuses lists every status in declaration order.
func Statuses() []Status {
	return []Status{StatusIncomplete, StatusInProgress, StatusScrapped, StatusCompleted}
}

// Valid reports whether s is one of the declared statuses.
func (s Status) Valid() bool {
	return int(s) < len(statusNames)
}

func (s Status) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
	return statusNames[s]
}

// ParseStatus accepts a status name in any case, ignoring '-', '_' and
// spaces, so "in-progress" and "InProgress" are the same status.
func ParseStatus(value string) (Status, error) {
	key := strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, strings.ToLower(value))

	for i, name := range statusNames {
		if strings.ToLower(name) == key {
			return Status(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q (expected one of %s)", ErrUnknownStatus, value, strings.Join(statusNames[:], ", "))
}

// MarshalText encodes the status as its name.
func (s Status) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStatus, uint8(s))
	}
	return []byte(statusNames[s]), nil
}

// UnmarshalText decodes a status name. Unknown names are rejected.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Entry is a single item on the list.
type Entry struct {
	Name   string `json:"name"`
	Status Status `json:"status"`
}

// NewEntry returns an incomplete entry.
func NewEntry(name string) Entry {
	return Entry{Name: name, Status: StatusIncomplete}
}

// SetStatus replaces the entry's status.
func (e *Entry) SetStatus(status Status) {
	e.Status = status
}

// Equal reports whether both name and status match.
func (e Entry) Equal(other Entry) bool {
	return e.Name == other.Name && e.Status == other.Status
}
