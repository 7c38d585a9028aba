package display

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/harrison/algo/internal/models"
)

const separator = "===================="

// Printer writes learner-facing output. It is safe for concurrent use;
// each call writes its text with a single locked write.
type Printer struct {
	w        io.Writer
	terminal bool
	mu       sync.Mutex

	success *color.Color
	warn    *color.Color
	bold    *color.Color
	number  *color.Color
	gutter  *color.Color
}

// NewPrinter creates a Printer. Color and screen control are enabled only when
// w is a terminal file and NO_COLOR is not set.
func NewPrinter(w io.Writer) *Printer {
	p := &Printer{
		w:        w,
		terminal: IsTerminal(w),
		success:  color.New(color.FgGreen),
		warn:     color.New(color.FgRed),
		bold:     color.New(color.Bold),
		number:   color.New(color.FgBlue, color.Bold),
		gutter:   color.New(color.FgBlue),
	}
	for _, c := range []*color.Color{p.success, p.warn, p.bold, p.number, p.gutter} {
		if p.terminal {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// IsTerminal reports whether w is a TTY that should receive colors
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	if color.NoColor && (f == os.Stdout || f == os.Stderr) {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Writer returns the underlying writer
func (p *Printer) Writer() io.Writer {
	return p.w
}

// Terminal reports whether the printer writes to a terminal
func (p *Printer) Terminal() bool {
	return p.terminal
}

func (p *Printer) write(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	io.WriteString(p.w, s)
}

// Println writes a line of plain text
func (p *Printer) Println(a ...interface{}) {
	p.write(fmt.Sprintln(a...))
}

// Printf writes formatted plain text
func (p *Printer) Printf(format string, a ...interface{}) {
	p.write(fmt.Sprintf(format, a...))
}

// Success writes a green "✓ message" line
func (p *Printer) Success(format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	p.write(fmt.Sprintf("%s %s\n", p.success.Sprint("✓"), p.success.Sprint(msg)))
}

// Warn writes a red "! message" line
func (p *Printer) Warn(format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	p.write(fmt.Sprintf("%s %s\n", p.warn.Sprint("!"), p.warn.Sprint(msg)))
}

// Output writes captured process output, ensuring it ends with a newline.
// Empty output writes nothing.
func (p *Printer) Output(text string) {
	if text == "" {
		return
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	p.write(text)
}

// Separator writes the bold separator line framing program output
func (p *Printer) Separator() {
	p.write(p.bold.Sprint(separator) + "\n")
}

// Bold returns s in bold when colors are enabled
func (p *Printer) Bold(s string) string {
	return p.bold.Sprint(s)
}

// ContextWindow writes numbered source lines, the marker line in bold.
// Format: "NN |  text"
func (p *Printer) ContextWindow(lines []models.ContextLine) {
	var sb strings.Builder
	for _, line := range lines {
		text := line.Text
		if line.Highlighted {
			text = p.bold.Sprint(text)
		}
		fmt.Fprintf(&sb, "%s %s  %s\n",
			p.number.Sprintf("%2d", line.Number),
			p.gutter.Sprint("|"),
			text,
		)
	}
	p.write(sb.String())
}

// Clear clears the terminal. It is a no-op when not writing to a terminal.
func (p *Printer) Clear() {
	if !p.terminal {
		return
	}
	p.write("\x1b[2J\x1b[1;1H")
}
