package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Files      []string // Related files (optional)
	Suggestion string   // Action to take (optional)
}

// Display shows a formatted warning, in yellow on terminals
func (w Warning) Display(out io.Writer) {
	var b strings.Builder

	b.WriteString("Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Files) > 0 {
		b.WriteString("    ")
		if len(w.Files) == 1 {
			b.WriteString("Affected file:\n")
		} else {
			b.WriteString("Affected files:\n")
		}

		for i, file := range w.Files {
			b.WriteString("      ")
			b.WriteString(fmt.Sprintf("%d. %s", i+1, file))
			b.WriteString("\n")
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	text := b.String()
	if IsTerminal(out) {
		yellow := color.New(color.FgYellow)
		yellow.EnableColor()
		text = yellow.Sprint(text)
	}
	fmt.Fprint(out, text)
}

// WarnWatcherFailure creates the warning shown when watch mode cannot start
func WarnWatcherFailure(err error) Warning {
	return Warning{
		Title:      "Could not watch your progress",
		Message:    fmt.Sprintf("Error message was %v", err),
		Suggestion: "Most likely you've run out of disk space or your 'inotify limit' has been reached.",
	}
}

// WarnManifestMissing creates the warning shown when no curriculum manifest is found.
// probed lists the manifest names that were looked for.
func WarnManifestMissing(exe string, probed []string) Warning {
	return Warning{
		Title:      fmt.Sprintf("%s must be run from the algorithms directory", exe),
		Message:    "No curriculum manifest was found in the working directory.",
		Files:      probed,
		Suggestion: "Try `cd algorithms/`!",
	}
}

// WarnToolchainMissing creates the warning shown when the compiler cannot be run
func WarnToolchainMissing(binary string) Warning {
	return Warning{
		Title:      fmt.Sprintf("We cannot find `%s`.", binary),
		Suggestion: fmt.Sprintf("Try running `%s --version` to diagnose your problem.", binary),
	}
}
