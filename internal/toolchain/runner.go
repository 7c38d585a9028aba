package toolchain

import (
	"bytes"
	"context"
	"errors"
	"os/exec"

	"github.com/harrison/algo/internal/models"
)

// CommandRunner abstracts process execution for testability.
// An exit with non-zero status is reported through Outcome.Success, not err;
// err is reserved for processes that could not be started.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (models.Outcome, error)
}

// ExecRunner executes real processes and captures stdout and stderr separately.
type ExecRunner struct {
	WorkDir string // Working directory for processes (empty = current dir)
}

// NewExecRunner creates a CommandRunner that executes real processes.
func NewExecRunner(workDir string) *ExecRunner {
	return &ExecRunner{WorkDir: workDir}
}

// Run starts the process, waits for it and classifies it by exit status.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (models.Outcome, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if r.WorkDir != "" {
		cmd.Dir = r.WorkDir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	outcome := models.Outcome{
		Success: err == nil,
		Stdout:  stdout.String(),
		Stderr:  stderr.String(),
	}

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return outcome, err
	}
	return outcome, nil
}
