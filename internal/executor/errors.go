package executor

import (
	"fmt"

	"github.com/harrison/algo/internal/models"
)

// HaltReason explains why verification stopped at an exercise.
type HaltReason int

const (
	// HaltFailed means the exercise did not compile, or its run or tests failed.
	HaltFailed HaltReason = iota
	// HaltPending means the exercise passed but still carries the not-done marker.
	HaltPending
)

// String returns the string representation of HaltReason.
func (r HaltReason) String() string {
	switch r {
	case HaltFailed:
		return "failed"
	case HaltPending:
		return "pending"
	default:
		return "unknown"
	}
}

// HaltError reports the exercise at which verification stopped.
// Later exercises in the sequence were not attempted.
type HaltError struct {
	Exercise models.Exercise
	Reason   HaltReason
	Err      error // Underlying step failure; nil when Reason is HaltPending
}

// Error implements the error interface for HaltError.
func (e *HaltError) Error() string {
	if e.Reason == HaltPending {
		return fmt.Sprintf("%s is not done yet: remove the `I AM NOT DONE` comment to continue", e.Exercise.Name)
	}
	if e.Err != nil {
		return fmt.Sprintf("verification halted at %s: %v", e.Exercise.Name, e.Err)
	}
	return fmt.Sprintf("verification halted at %s", e.Exercise.Name)
}

// Unwrap returns the underlying error for error wrapping support.
func (e *HaltError) Unwrap() error {
	return e.Err
}

// Pending reports whether the halt is a deliberate pause rather than a failure.
func (e *HaltError) Pending() bool {
	return e.Reason == HaltPending
}
