// Package display provides terminal output for exercise feedback.
//
// All learner-facing text written by the runner goes through a Printer:
// success and warning lines, captured toolchain output, the not-done context
// window and screen clearing. Diagnostics go to the logger package instead.
//
// # Printer
//
//	p := display.NewPrinter(os.Stdout)
//	p.Success("Successfully tested %s", ex)
//	p.ContextWindow(state.Context)
//
// Colors (fatih/color) and terminal control sequences are only emitted when
// the writer is a terminal, so output captured in tests is plain text.
//
// # Status line
//
// StatusLine replaces a spinner: on a terminal it rewrites a single line
// ("Compiling x..."), elsewhere it is silent.
//
// # Warnings
//
//	warning := display.Warning{
//	    Title:      "Could not watch your progress",
//	    Message:    err.Error(),
//	    Suggestion: "Most likely you've run out of disk space or your 'inotify limit' has been reached.",
//	}
//	warning.Display(os.Stderr)
package display
