// Package watch implements watch mode: verify the curriculum, then re-verify
// from the edited exercise whenever a source file changes, while an
// interactive shell serves the last failure's hint.
//
// The event loop and the shell run concurrently and communicate only through
// a HintCell. The loop handles one event at a time; verification is never
// run in parallel.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/harrison/algo/internal/display"
	"github.com/harrison/algo/internal/executor"
	"github.com/harrison/algo/internal/models"
)

// Verifier runs a fail-fast verification pass over exercises.
// A halted pass is reported as *executor.HaltError.
type Verifier interface {
	Verify(ctx context.Context, exercises []models.Exercise, verbose bool) error
}

// Curriculum is the ordered exercise sequence watched by the orchestrator.
type Curriculum interface {
	Exercises() []models.Exercise
	From(i int) []models.Exercise
	IndexOfPath(path string) int
}

// Logger is the diagnostic sink for watch mode.
type Logger interface {
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogWatchEvent(path, op string)
}

// SourceFactory opens the filesystem event source.
type SourceFactory func() (EventSource, error)

// Options configures an Orchestrator
type Options struct {
	Verbose    bool      // Show test harness output on success
	Extensions []string  // Recognized source extensions, with leading dot
	Input      io.Reader // Shell input; nil disables the shell
}

// Orchestrator drives the watch state machine
type Orchestrator struct {
	curriculum Curriculum
	verifier   Verifier
	open       SourceFactory
	printer    *display.Printer
	logger     Logger
	hint       *HintCell
	opts       Options
}

// NewOrchestrator creates an Orchestrator. logger may be nil.
func NewOrchestrator(c Curriculum, v Verifier, open SourceFactory, printer *display.Printer, logger Logger, opts Options) *Orchestrator {
	return &Orchestrator{
		curriculum: c,
		verifier:   v,
		open:       open,
		printer:    printer,
		logger:     logger,
		hint:       NewHintCell(),
		opts:       opts,
	}
}

// Hint returns the cell holding the last failure's hint
func (o *Orchestrator) Hint() *HintCell {
	return o.hint
}

// Run verifies the whole curriculum and, unless everything is already done,
// watches for changes until every remaining exercise passes. It returns nil
// when all exercises are done, a *WatcherError when the watcher fails, or
// the context error on cancellation.
func (o *Orchestrator) Run(ctx context.Context) error {
	source, err := o.open()
	if err != nil {
		return &WatcherError{Op: "init", Err: err}
	}
	defer source.Close()

	o.printer.Clear()
	done, err := o.verify(ctx, o.curriculum.Exercises())
	if err != nil || done {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	if o.opts.Input != nil {
		shell := NewShell(o.opts.Input, o.printer, o.hint)
		g.Go(func() error {
			return shell.Run(gctx)
		})
	}
	g.Go(func() error {
		// The session ends with the loop; stop the shell with it
		defer cancel()
		return o.loop(gctx, source)
	})
	return g.Wait()
}

// loop handles events one at a time until all exercises are done
func (o *Orchestrator) loop(ctx context.Context, source EventSource) error {
	errs := source.Errors()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-source.Events():
			if !ok {
				return &WatcherError{Op: "watch", Err: errEventsClosed}
			}
			done, err := o.handle(ctx, event)
			if err != nil || done {
				return err
			}

		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			o.logWarn(fmt.Sprintf("watch error: %v", err))
			o.printer.Warn("watch error: %v", err)
		}
	}
}

// handle re-verifies from the changed exercise. Irrelevant events and files
// that belong to no exercise are ignored.
func (o *Orchestrator) handle(ctx context.Context, event FileEvent) (bool, error) {
	if o.logger != nil {
		o.logger.LogWatchEvent(event.Path, event.Op.String())
	}
	if !o.relevant(event) {
		return false, nil
	}

	i := o.curriculum.IndexOfPath(event.Path)
	if i < 0 {
		if o.logger != nil {
			o.logger.LogDebug("Ignoring change to unlisted file " + event.Path)
		}
		return false, nil
	}

	o.printer.Clear()
	return o.verify(ctx, o.curriculum.From(i))
}

// relevant reports whether the event is a create or write of an existing
// source file with a recognized extension
func (o *Orchestrator) relevant(event FileEvent) bool {
	if event.Op != FileCreated && event.Op != FileWritten {
		return false
	}
	if !HasExtension(event.Path, o.opts.Extensions) {
		return false
	}
	info, err := os.Stat(event.Path)
	return err == nil && !info.IsDir()
}

// verify runs one pass and records the halted exercise's hint.
// It reports true when every exercise passed.
func (o *Orchestrator) verify(ctx context.Context, exercises []models.Exercise) (bool, error) {
	err := o.verifier.Verify(ctx, exercises, o.opts.Verbose)
	if err == nil {
		o.hint.Clear()
		if o.logger != nil {
			o.logger.LogInfo("All exercises completed")
		}
		return true, nil
	}

	var halt *executor.HaltError
	if !errors.As(err, &halt) {
		return false, err
	}
	o.hint.Set(halt.Exercise.Hint)
	if o.logger != nil {
		o.logger.LogInfo(fmt.Sprintf("Waiting on %s (%s)", halt.Exercise.Name, halt.Reason))
	}
	return false, nil
}

func (o *Orchestrator) logWarn(message string) {
	if o.logger != nil {
		o.logger.LogWarn(message)
	}
}
