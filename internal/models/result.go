package models

// Outcome is the captured result of a single toolchain or artifact invocation.
// It is produced per invocation and never persisted.
type Outcome struct {
	Success bool   // Process exited with status 0
	Stdout  string // Captured standard output
	Stderr  string // Captured standard error
}

// ContextLine is one source line shown around a not-done marker
type ContextLine struct {
	Text        string // Line content without the trailing newline
	Number      int    // 1-based line number in the source file
	Highlighted bool   // True for the marker line itself
}

// State is the completion state of an exercise, derived from its source text.
// A zero Context means Done; a non-empty Context means Pending.
type State struct {
	Context []ContextLine
}

// Done reports whether the source no longer contains the not-done marker
func (s State) Done() bool {
	return len(s.Context) == 0
}

// MarkerLine returns the line number of the highlighted marker line,
// or 0 when the state is Done
func (s State) MarkerLine() int {
	for _, line := range s.Context {
		if line.Highlighted {
			return line.Number
		}
	}
	return 0
}

// Exercise result status constants
const (
	StatusPassed  = "PASSED"  // Compiled and ran successfully, marker removed
	StatusPending = "PENDING" // Compiled and ran successfully, marker still present
	StatusFailed  = "FAILED"  // Compilation or run failed
)
