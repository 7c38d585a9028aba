package executor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/harrison/algo/internal/models"
	"github.com/harrison/algo/internal/toolchain"
)

// Run checks a single exercise without consulting the completion gate.
// Test exercises run their harness; the other modes are compiled and run
// with their output shown. A failed step is returned as an error.
func (v *Verifier) Run(ctx context.Context, ex models.Exercise, verbose bool) error {
	start := time.Now()
	v.logStart(ex)

	var err error
	if ex.Mode == models.ModeTest {
		_, err = v.compileAndTest(ctx, ex, false, verbose)
	} else {
		err = v.compileAndRun(ctx, ex)
	}

	if err != nil {
		v.logResult(ex, models.StatusFailed, time.Since(start))
		return fmt.Errorf("run %s: %w", ex.Name, err)
	}
	v.logResult(ex, models.StatusPassed, time.Since(start))
	return nil
}

// compileAndRun compiles the exercise and runs it once, printing stdout on
// success and both streams on failure.
func (v *Verifier) compileAndRun(ctx context.Context, ex models.Exercise) error {
	v.status.Set("Compiling %s...", ex)
	artifact, err := v.compiler.Compile(ctx, ex)
	if err != nil {
		v.status.Clear()
		var compileErr *toolchain.CompileError
		if errors.As(err, &compileErr) {
			v.printer.Warn("Compilation of %s failed! Compiler error message:", ex)
			v.printer.Println()
			v.printer.Output(compileErr.Output.Stderr)
		}
		return err
	}
	defer artifact.Close()

	v.status.Set("Running %s...", ex)
	outcome, err := artifact.Run(ctx)
	v.status.Clear()

	v.printer.Output(outcome.Stdout)
	if err != nil {
		v.printer.Output(outcome.Stderr)
		v.printer.Warn("Ran %s with errors", ex)
		return err
	}

	v.printer.Success("Successfully ran %s", ex)
	return nil
}
