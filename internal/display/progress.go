package display

import (
	"fmt"
	"io"
	"sync"
)

// StatusLine shows a transient single-line status such as "Compiling x...".
// It only writes when the target is a terminal.
type StatusLine struct {
	writer  io.Writer
	enabled bool
	active  bool
	mu      sync.Mutex
}

// NewStatusLine creates a status line for w
func NewStatusLine(w io.Writer) *StatusLine {
	return &StatusLine{
		writer:  w,
		enabled: IsTerminal(w),
	}
}

// Set replaces the current status text
func (s *StatusLine) Set(format string, a ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.enabled {
		return
	}
	fmt.Fprintf(s.writer, "\r\x1b[K%s", fmt.Sprintf(format, a...))
	s.active = true
}

// Clear erases the status line
func (s *StatusLine) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.enabled || !s.active {
		return
	}
	fmt.Fprint(s.writer, "\r\x1b[K")
	s.active = false
}
