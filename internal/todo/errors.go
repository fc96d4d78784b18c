package todo

import (
	"errors"
	"fmt"
)

// ErrInvalidIndex indicates the caller referenced an entry index outside the list bounds.
var ErrInvalidIndex = errors.New("entry index out of range")

// ErrUnknownStatus is returned for status names or values outside the enumeration.
var ErrUnknownStatus = errors.New("unknown status")

// DeserializationError reports a todo file that exists but does not hold a valid list.
type DeserializationError struct {
	Path     string
	Location string // JSON location of the offending value, when known
	Err      error
}

func (e *DeserializationError) Error() string {
	if e.Location != "" {
		return fmt.Sprintf("decode %s at %s: %s", e.Path, e.Location, e.Err)
	}
	return fmt.Sprintf("decode %s: %s", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *DeserializationError) Unwrap() error {
	return e.Err
}
