package watch

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/harrison/algo/internal/completion"
	"github.com/harrison/algo/internal/curriculum"
	"github.com/harrison/algo/internal/display"
	"github.com/harrison/algo/internal/executor"
	"github.com/harrison/algo/internal/models"
	"github.com/harrison/algo/internal/toolchain"
)

// safeBuffer is a bytes.Buffer that can be read while another goroutine writes
type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// countingCompiler counts compilations per exercise; failing exercises are
// rejected at compile time
type countingCompiler struct {
	mu       sync.Mutex
	failing  map[string]bool
	compiles map[string]int
}

func newCountingCompiler(failing ...string) *countingCompiler {
	c := &countingCompiler{failing: make(map[string]bool), compiles: make(map[string]int)}
	for _, name := range failing {
		c.failing[name] = true
	}
	return c
}

func (c *countingCompiler) Compile(ctx context.Context, ex models.Exercise) (toolchain.Artifact, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.compiles[ex.Name]++
	if c.failing[ex.Name] {
		return nil, &toolchain.CompileError{Exercise: ex, Output: models.Outcome{Stderr: "error in " + ex.Name}}
	}
	return passingArtifact{}, nil
}

func (c *countingCompiler) setFailing(name string, failing bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failing[name] = failing
}

func (c *countingCompiler) counts() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]int, len(c.compiles))
	for k, v := range c.compiles {
		out[k] = v
	}
	return out
}

type passingArtifact struct{}

func (passingArtifact) Run(ctx context.Context) (models.Outcome, error) {
	return models.Outcome{Success: true}, nil
}

func (passingArtifact) Close() error { return nil }

// fakeSource is an EventSource fed directly by tests
type fakeSource struct {
	events chan FileEvent
	errs   chan error
	mu     sync.Mutex
	closed bool
}

func newFakeSource() *fakeSource {
	return &fakeSource{events: make(chan FileEvent), errs: make(chan error)}
}

func (s *fakeSource) Events() <-chan FileEvent { return s.events }
func (s *fakeSource) Errors() <-chan error     { return s.errs }

func (s *fakeSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *fakeSource) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// fixture is a curriculum of test-mode exercises a, b, c on disk
type fixture struct {
	root       string
	curriculum *curriculum.Curriculum
	compiler   *countingCompiler
	source     *fakeSource
	out        *safeBuffer
}

func newFixture(t *testing.T, failing ...string) *fixture {
	t.Helper()
	root := t.TempDir()

	var exercises []models.Exercise
	for _, name := range []string{"a", "b", "c"} {
		path := filepath.Join("algorithms", name+".rs")
		writeFile(t, filepath.Join(root, path), "fn main() {}\n")
		exercises = append(exercises, models.Exercise{Name: name, Path: path, Mode: models.ModeTest, Hint: "hint for " + name})
	}

	return &fixture{
		root:       root,
		curriculum: curriculum.New(root, filepath.Join(root, "info.toml"), exercises),
		compiler:   newCountingCompiler(failing...),
		source:     newFakeSource(),
		out:        &safeBuffer{},
	}
}

func (f *fixture) orchestrator(opts Options) *Orchestrator {
	printer := display.NewPrinter(f.out)
	verifier := executor.NewVerifier(f.compiler, completion.NewGate(f.root), printer, nil)
	if opts.Extensions == nil {
		opts.Extensions = []string{".rs"}
	}
	open := func() (EventSource, error) { return f.source, nil }
	return NewOrchestrator(f.curriculum, verifier, open, printer, nil, opts)
}

func (f *fixture) path(name string) string {
	return filepath.Join(f.root, "algorithms", name+".rs")
}

// send delivers an event and blocks until the loop has received it
func (f *fixture) send(path string, op FileOp) {
	f.source.events <- FileEvent{Path: path, Op: op}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}
