package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMode indicates a mode outside test, compile and lint.
var ErrInvalidMode = errors.New("invalid mode")

// Mode is the execution strategy of an exercise
type Mode string

// Exercise execution modes
const (
	ModeTest    Mode = "test"    // Compiled as a test harness and run
	ModeCompile Mode = "compile" // Compiled and run as a program, output always shown
	ModeLint    Mode = "lint"    // Compiled with lints denied, never executed during verify
)

// ParseMode converts a manifest mode string into a Mode.
// "clippy" is accepted as an alias of lint for manifests written for the original runner.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "test":
		return ModeTest, nil
	case "compile":
		return ModeCompile, nil
	case "lint", "clippy":
		return ModeLint, nil
	default:
		return "", fmt.Errorf("%w %q (want test, compile or lint)", ErrInvalidMode, s)
	}
}

// String returns the manifest spelling of the mode
func (m Mode) String() string {
	return string(m)
}

// Exercise describes one entry of the curriculum.
// Its position in the curriculum is the index in Curriculum.Exercises.
type Exercise struct {
	Name string // Unique name within the curriculum
	Path string // Source file path, relative to the curriculum root
	Mode Mode   // Execution strategy
	Hint string // Static hint shown on request
}

// Validate checks if the exercise has all required fields
func (e *Exercise) Validate() error {
	if e.Name == "" {
		return errors.New("exercise name is required")
	}
	if e.Path == "" {
		return fmt.Errorf("exercise %s: path is required", e.Name)
	}
	switch e.Mode {
	case ModeTest, ModeCompile, ModeLint:
	default:
		return fmt.Errorf("exercise %s: %w %q", e.Name, ErrInvalidMode, e.Mode)
	}
	return nil
}

// String returns the path, which is how exercises are named in user output
func (e Exercise) String() string {
	return e.Path
}
