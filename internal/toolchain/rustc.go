// Package toolchain invokes the external compiler on one exercise at a time
// and runs the resulting artifact.
//
// Every Compile and Run spawns exactly one process and waits for it; there
// are no retries. Artifacts live in the temp directory under a unique name and
// are removed by Close.
package toolchain

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/google/uuid"

	"github.com/harrison/algo/internal/models"
)

// Compiler compiles a single exercise.
// A rejected compilation is returned as *CompileError.
type Compiler interface {
	Compile(ctx context.Context, ex models.Exercise) (Artifact, error)
}

// Artifact is a compiled exercise ready to run.
type Artifact interface {
	// Run executes the artifact once. A non-zero exit returns the captured
	// outcome together with an error wrapping ErrRunFailed.
	Run(ctx context.Context) (models.Outcome, error)

	// Close removes the artifact from disk.
	Close() error
}

// Options configures a Rustc toolchain
type Options struct {
	Binary     string   // Compiler executable (default "rustc")
	Root       string   // Curriculum root that exercise paths are relative to
	LintArgs   []string // Extra flags for lint-mode exercises
	Color      bool     // Ask the compiler for colored diagnostics
	ShowOutput bool     // Pass --show-output to test harnesses
	TempDir    string   // Artifact directory (default os.TempDir())
}

// Rustc drives rustc-compatible compilers.
type Rustc struct {
	opts   Options
	runner CommandRunner
}

// NewRustc creates a Rustc toolchain. runner may be nil to execute real processes.
func NewRustc(opts Options, runner CommandRunner) *Rustc {
	if opts.Binary == "" {
		opts.Binary = "rustc"
	}
	if opts.TempDir == "" {
		opts.TempDir = os.TempDir()
	}
	if runner == nil {
		runner = NewExecRunner(opts.Root)
	}
	return &Rustc{opts: opts, runner: runner}
}

// CheckInstalled runs `<binary> --version` and reports ErrToolchainMissing on failure.
func (r *Rustc) CheckInstalled(ctx context.Context) error {
	outcome, err := r.runner.Run(ctx, r.opts.Binary, "--version")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrToolchainMissing, r.opts.Binary, err)
	}
	if !outcome.Success {
		return fmt.Errorf("%w: %s --version exited with errors", ErrToolchainMissing, r.opts.Binary)
	}
	return nil
}

// Compile builds the exercise into a temporary artifact.
func (r *Rustc) Compile(ctx context.Context, ex models.Exercise) (Artifact, error) {
	out := r.artifactPath()

	args := r.compileArgs(ex, out)
	outcome, err := r.runner.Run(ctx, r.opts.Binary, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrToolchainMissing, r.opts.Binary, err)
	}
	if !outcome.Success {
		removeArtifact(out)
		return nil, &CompileError{Exercise: ex, Output: outcome}
	}

	var runArgs []string
	if ex.Mode == models.ModeTest && r.opts.ShowOutput {
		runArgs = append(runArgs, "--show-output")
	}

	return &compiledArtifact{
		exercise: ex,
		path:     out,
		args:     runArgs,
		runner:   r.runner,
	}, nil
}

func (r *Rustc) compileArgs(ex models.Exercise, out string) []string {
	var args []string
	switch ex.Mode {
	case models.ModeTest:
		args = append(args, "--test")
	case models.ModeLint:
		args = append(args, r.opts.LintArgs...)
	}
	if r.opts.Color {
		args = append(args, "--color", "always")
	}
	return append(args, r.sourcePath(ex), "-o", out)
}

func (r *Rustc) sourcePath(ex models.Exercise) string {
	if filepath.IsAbs(ex.Path) || r.opts.Root == "" {
		return ex.Path
	}
	return filepath.Join(r.opts.Root, ex.Path)
}

func (r *Rustc) artifactPath() string {
	name := "algo-" + uuid.NewString()
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	return filepath.Join(r.opts.TempDir, name)
}

type compiledArtifact struct {
	exercise models.Exercise
	path     string
	args     []string
	runner   CommandRunner
}

func (a *compiledArtifact) Run(ctx context.Context) (models.Outcome, error) {
	outcome, err := a.runner.Run(ctx, a.path, a.args...)
	if err != nil {
		return outcome, fmt.Errorf("start %s: %w", a.exercise, err)
	}
	if !outcome.Success {
		return outcome, fmt.Errorf("%w: %s", ErrRunFailed, a.exercise)
	}
	return outcome, nil
}

func (a *compiledArtifact) Close() error {
	return removeArtifact(a.path)
}

func removeArtifact(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove artifact %s: %w", path, err)
	}
	return nil
}
