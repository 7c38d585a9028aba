package toolchain

import (
	"errors"
	"fmt"

	"github.com/harrison/algo/internal/models"
)

// ErrToolchainMissing indicates the compiler binary cannot be executed.
var ErrToolchainMissing = errors.New("toolchain not found")

// ErrRunFailed indicates a compiled artifact exited with non-zero status.
var ErrRunFailed = errors.New("exercise run failed")

// CompileError reports a compilation rejected by the toolchain.
// Output carries the toolchain's captured stdout and stderr.
type CompileError struct {
	Exercise models.Exercise
	Output   models.Outcome
}

// Error implements the error interface for CompileError.
func (e *CompileError) Error() string {
	return fmt.Sprintf("compilation of %s failed", e.Exercise)
}
