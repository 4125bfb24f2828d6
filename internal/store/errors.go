package store

import (
	"errors"
	"fmt"
)

// ErrLastWidget is returned when removing the only remaining widget
var ErrLastWidget = errors.New("cannot remove the last widget")

// ErrWidgetNotFound is returned for ids that are not in the collection
var ErrWidgetNotFound = errors.New("widget not found")

// ErrInvalidWidget is returned by Add and Update for widgets that could not be
// restored from the persisted layout
var ErrInvalidWidget = errors.New("invalid widget")

// PersistError wraps a failed save. The mutation that triggered it was rolled back.
type PersistError struct {
	Op  string
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("%s: failed to persist widgets: %v", e.Op, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}
