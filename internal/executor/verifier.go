// Package executor verifies exercises one at a time, in curriculum order.
//
// Verification is fail-fast and single-lane: the first exercise that fails,
// or that passes but is still marked as not done, halts the pass and later
// exercises are never compiled.
package executor

import (
	"context"
	"errors"
	"time"

	"github.com/harrison/algo/internal/display"
	"github.com/harrison/algo/internal/models"
	"github.com/harrison/algo/internal/toolchain"
)

// Logger is the diagnostic sink the verifier reports exercise results to.
type Logger interface {
	LogExerciseStart(ex models.Exercise)
	LogExerciseResult(ex models.Exercise, status string, duration time.Duration)
}

// StateChecker reports whether an exercise is still marked as not done.
type StateChecker interface {
	State(ex models.Exercise) (models.State, error)
}

// Verifier compiles, runs and gates exercises, printing learner feedback.
type Verifier struct {
	compiler toolchain.Compiler
	gate     StateChecker
	printer  *display.Printer
	status   *display.StatusLine
	logger   Logger
}

// NewVerifier creates a Verifier. logger may be nil.
func NewVerifier(compiler toolchain.Compiler, gate StateChecker, printer *display.Printer, logger Logger) *Verifier {
	return &Verifier{
		compiler: compiler,
		gate:     gate,
		printer:  printer,
		status:   display.NewStatusLine(printer.Writer()),
		logger:   logger,
	}
}

// Verify checks exercises strictly in order and stops at the first one that
// fails or is still pending. The halt is returned as *HaltError; nil means
// every exercise passed and is done. When verbose is set, test harness output
// is shown even on success.
func (v *Verifier) Verify(ctx context.Context, exercises []models.Exercise, verbose bool) error {
	for _, ex := range exercises {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		start := time.Now()
		v.logStart(ex)

		var (
			advance bool
			err     error
		)
		switch ex.Mode {
		case models.ModeTest:
			advance, err = v.compileAndTest(ctx, ex, true, verbose)
		case models.ModeCompile:
			advance, err = v.compileAndRunInteractively(ctx, ex)
		case models.ModeLint:
			advance, err = v.compileOnly(ctx, ex)
		default:
			err = models.ErrInvalidMode
		}

		switch {
		case err != nil:
			v.logResult(ex, models.StatusFailed, time.Since(start))
			return &HaltError{Exercise: ex, Reason: HaltFailed, Err: err}
		case !advance:
			v.logResult(ex, models.StatusPending, time.Since(start))
			return &HaltError{Exercise: ex, Reason: HaltPending}
		}
		v.logResult(ex, models.StatusPassed, time.Since(start))
	}
	return nil
}

// compileOnly compiles a lint-mode exercise without executing it.
func (v *Verifier) compileOnly(ctx context.Context, ex models.Exercise) (bool, error) {
	v.status.Set("Compiling %s...", ex)
	artifact, err := v.compile(ctx, ex)
	if err != nil {
		return false, err
	}
	artifact.Close()
	v.status.Clear()

	v.printer.Success("Successfully compiled %s!", ex)
	return v.promptForCompletion(ex, nil)
}

// compileAndRunInteractively compiles and runs the exercise, always showing its output.
func (v *Verifier) compileAndRunInteractively(ctx context.Context, ex models.Exercise) (bool, error) {
	v.status.Set("Compiling %s...", ex)
	artifact, err := v.compile(ctx, ex)
	if err != nil {
		return false, err
	}
	defer artifact.Close()

	v.status.Set("Running %s...", ex)
	outcome, err := artifact.Run(ctx)
	v.status.Clear()
	if err != nil {
		v.printer.Warn("Ran %s with errors", ex)
		v.printer.Output(outcome.Stdout)
		v.printer.Output(outcome.Stderr)
		return false, err
	}

	v.printer.Success("Successfully ran %s!", ex)
	return v.promptForCompletion(ex, &outcome)
}

// compileAndTest compiles the exercise as a test harness and runs it.
// The completion gate is only consulted when interactive is set.
func (v *Verifier) compileAndTest(ctx context.Context, ex models.Exercise, interactive, verbose bool) (bool, error) {
	v.status.Set("Testing %s...", ex)
	artifact, err := v.compile(ctx, ex)
	if err != nil {
		return false, err
	}
	defer artifact.Close()

	outcome, err := artifact.Run(ctx)
	v.status.Clear()
	if err != nil {
		v.printer.Warn("Testing of %s failed! Please try again. Here's the output:", ex)
		v.printer.Output(outcome.Stdout)
		v.printer.Output(outcome.Stderr)
		return false, err
	}

	if verbose {
		v.printer.Output(outcome.Stdout)
	}
	v.printer.Success("Successfully tested %s", ex)

	if !interactive {
		return true, nil
	}
	return v.promptForCompletion(ex, nil)
}

// compile invokes the compiler, printing the diagnostics of a rejected build.
func (v *Verifier) compile(ctx context.Context, ex models.Exercise) (toolchain.Artifact, error) {
	artifact, err := v.compiler.Compile(ctx, ex)
	if err == nil {
		return artifact, nil
	}
	v.status.Clear()

	var compileErr *toolchain.CompileError
	if errors.As(err, &compileErr) {
		v.printer.Warn("Compiling of %s failed! Please try again. Here's the output:", ex)
		v.printer.Output(compileErr.Output.Stderr)
	}
	return nil, err
}

func (v *Verifier) logStart(ex models.Exercise) {
	if v.logger != nil {
		v.logger.LogExerciseStart(ex)
	}
}

func (v *Verifier) logResult(ex models.Exercise, status string, d time.Duration) {
	if v.logger != nil {
		v.logger.LogExerciseResult(ex, status, d)
	}
}
