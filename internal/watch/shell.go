package watch

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/harrison/algo/internal/display"
)

// Greeting is printed when the interactive shell starts
const Greeting = "Type 'hint' to get help or 'clear' to clear the screen"

// Shell reads line-oriented commands while watch mode runs.
// It shares nothing with the watch loop except the HintCell.
type Shell struct {
	in      io.Reader
	printer *display.Printer
	hint    *HintCell
}

// NewShell creates a Shell reading commands from in
func NewShell(in io.Reader, printer *display.Printer, hint *HintCell) *Shell {
	return &Shell{in: in, printer: printer, hint: hint}
}

// Run prints the greeting and handles commands until in is exhausted or ctx
// is cancelled. It never fails the watch session; read errors are printed.
func (s *Shell) Run(ctx context.Context) error {
	s.printer.Println(Greeting)

	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			readErr <- err
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					s.printer.Printf("error reading command: %v\n", err)
				default:
				}
				return nil
			}
			s.Handle(line)
		}
	}
}

// Handle executes one shell command line
func (s *Shell) Handle(line string) {
	switch cmd := strings.TrimSpace(line); cmd {
	case "":
	case "hint":
		if hint := s.hint.Get(); hint != "" {
			s.printer.Println(hint)
		}
	case "clear":
		s.printer.Clear()
	default:
		s.printer.Printf("unknown command: %s\n", cmd)
	}
}
