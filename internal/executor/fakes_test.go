package executor

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/harrison/algo/internal/display"
	"github.com/harrison/algo/internal/models"
	"github.com/harrison/algo/internal/toolchain"
)

// behavior scripts what the fake toolchain does for one exercise
type behavior struct {
	compileFails bool
	runFails     bool
	stdout       string
	stderr       string
}

// fakeCompiler records how often each exercise was compiled and run
type fakeCompiler struct {
	mu        sync.Mutex
	behaviors map[string]behavior
	compiles  map[string]int
	runs      map[string]int
	closed    int
}

func newFakeCompiler(behaviors map[string]behavior) *fakeCompiler {
	return &fakeCompiler{
		behaviors: behaviors,
		compiles:  make(map[string]int),
		runs:      make(map[string]int),
	}
}

func (f *fakeCompiler) Compile(ctx context.Context, ex models.Exercise) (toolchain.Artifact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.compiles[ex.Name]++

	b := f.behaviors[ex.Name]
	if b.compileFails {
		return nil, &toolchain.CompileError{
			Exercise: ex,
			Output:   models.Outcome{Stderr: "error[E0308]: mismatched types in " + ex.Name},
		}
	}
	return &fakeArtifact{compiler: f, ex: ex, b: b}, nil
}

func (f *fakeCompiler) compileCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.compiles[name]
}

func (f *fakeCompiler) runCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.runs[name]
}

type fakeArtifact struct {
	compiler *fakeCompiler
	ex       models.Exercise
	b        behavior
}

func (a *fakeArtifact) Run(ctx context.Context) (models.Outcome, error) {
	a.compiler.mu.Lock()
	a.compiler.runs[a.ex.Name]++
	a.compiler.mu.Unlock()

	outcome := models.Outcome{Success: !a.b.runFails, Stdout: a.b.stdout, Stderr: a.b.stderr}
	if a.b.runFails {
		return outcome, fmt.Errorf("%w: %s", toolchain.ErrRunFailed, a.ex)
	}
	return outcome, nil
}

func (a *fakeArtifact) Close() error {
	a.compiler.mu.Lock()
	defer a.compiler.mu.Unlock()
	a.compiler.closed++
	return nil
}

// fakeGate returns a fixed state per exercise; unknown exercises are Done
type fakeGate struct {
	pending map[string][]models.ContextLine
	calls   int
}

func (g *fakeGate) State(ex models.Exercise) (models.State, error) {
	g.calls++
	return models.State{Context: g.pending[ex.Name]}, nil
}

type loggedResult struct {
	name   string
	status string
}

type recordingLogger struct {
	starts  []string
	results []loggedResult
}

func (l *recordingLogger) LogExerciseStart(ex models.Exercise) {
	l.starts = append(l.starts, ex.Name)
}

func (l *recordingLogger) LogExerciseResult(ex models.Exercise, status string, _ time.Duration) {
	l.results = append(l.results, loggedResult{ex.Name, status})
}

func testExercise(name string, mode models.Mode) models.Exercise {
	return models.Exercise{Name: name, Path: "algorithms/" + name + ".rs", Mode: mode, Hint: "hint for " + name}
}

func newTestVerifier(c toolchain.Compiler, g StateChecker) (*Verifier, *bytes.Buffer, *recordingLogger) {
	out := &bytes.Buffer{}
	log := &recordingLogger{}
	return NewVerifier(c, g, display.NewPrinter(out), log), out, log
}
