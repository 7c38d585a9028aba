// Package completion decides whether an exercise is Done or still Pending
// by scanning its source for the "I AM NOT DONE" marker.
//
// State is recomputed from disk on every call; nothing is cached because the
// learner edits the file between checks.
package completion

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/harrison/algo/internal/models"
)

// Marker is the literal comment learners remove to advance
const Marker = "I AM NOT DONE"

// ContextLines is the number of lines shown on each side of the marker
const ContextLines = 2

var markerPattern = regexp.MustCompile(`^\s*///?\s*I\s+AM\s+NOT\s+DONE`)

// Gate reads exercise sources relative to a curriculum root
type Gate struct {
	root string
}

// NewGate creates a Gate; relative exercise paths are resolved against root.
func NewGate(root string) *Gate {
	return &Gate{root: root}
}

// State re-reads the exercise source and returns its completion state.
func (g *Gate) State(ex models.Exercise) (models.State, error) {
	path := ex.Path
	if g.root != "" && !filepath.IsAbs(path) {
		path = filepath.Join(g.root, path)
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return models.State{}, fmt.Errorf("read %s: %w", ex, err)
	}
	return StateOf(source), nil
}

// StateOf computes the completion state of source text.
// Lines are split on "\n" with a trailing "\r" dropped; line length is unbounded.
func StateOf(source []byte) models.State {
	text := strings.TrimSuffix(string(source), "\n")
	if text == "" {
		return models.State{}
	}
	lines := strings.Split(text, "\n")

	marker := -1
	for i, line := range lines {
		if markerPattern.MatchString(line) {
			marker = i
			break
		}
	}

	if marker < 0 {
		return models.State{}
	}

	first := max(marker-ContextLines, 0)
	last := min(marker+ContextLines, len(lines)-1)
	context := make([]models.ContextLine, 0, last-first+1)
	for i := first; i <= last; i++ {
		context = append(context, models.ContextLine{
			Text:        strings.TrimSuffix(lines[i], "\r"),
			Number:      i + 1,
			Highlighted: i == marker,
		})
	}
	return models.State{Context: context}
}
