package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an operation references a nonexistent item.
var ErrNotFound = errors.New("item not found")

// ValidationError reports creation input rejected before anything is written.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
