package watch

import (
	"errors"
	"fmt"
)

// errEventsClosed is reported when the event source stops delivering events.
var errEventsClosed = errors.New("event channel closed")

// WatcherError reports a failure of the filesystem watch subsystem.
// Op is "init" when the watcher could not be started and "watch" when it
// failed while running.
type WatcherError struct {
	Op  string
	Err error
}

// Error implements the error interface for WatcherError.
func (e *WatcherError) Error() string {
	return fmt.Sprintf("file watcher %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error wrapping support.
func (e *WatcherError) Unwrap() error {
	return e.Err
}
