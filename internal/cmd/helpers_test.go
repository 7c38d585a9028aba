package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/harrison/algo/internal/toolchain/toolchaintest"
)

// exerciseFile is one curriculum entry and the shell "source" the fake
// compiler turns into its program
type exerciseFile struct {
	name   string
	mode   string
	hint   string
	source string
}

func (e exerciseFile) path() string {
	return "algorithms/" + e.name + ".rs"
}

// setupCurriculum writes info.toml, the exercise sources, a fake compiler and
// a config pointing at it, then changes into the curriculum directory.
func setupCurriculum(t *testing.T, exercises ...exerciseFile) string {
	t.Helper()
	toolchaintest.SkipUnsupported(t)

	root := t.TempDir()
	binary := toolchaintest.WriteFakeRustc(t, t.TempDir())
	t.Setenv("ALGO_HOME", "")

	var manifest strings.Builder
	for _, ex := range exercises {
		fmt.Fprintf(&manifest, "[[algorithms]]\nname = %q\npath = %q\nmode = %q\nhint = %q\n\n", ex.name, ex.path(), ex.mode, ex.hint)
		toolchaintest.WriteSource(t, filepath.Join(root, filepath.FromSlash(ex.path())), ex.source)
	}
	writeTestFile(t, filepath.Join(root, "info.toml"), manifest.String())
	writeTestFile(t, filepath.Join(root, "default_out.txt"), "Thanks for installing algo!\n")
	writeTestFile(t, filepath.Join(root, ".algo", "config.yaml"),
		fmt.Sprintf("toolchain:\n  binary: %s\nwatch:\n  debounce: 50ms\n", binary))

	t.Chdir(root)
	return root
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// syncBuffer is a bytes.Buffer safe to read while a command is writing to it
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// executeCommand runs the root command with args and returns stdout, stderr and the error
func executeCommand(stdin io.Reader, args ...string) (string, string, error) {
	stdout, stderr := &syncBuffer{}, &syncBuffer{}
	err := executeInto(stdin, stdout, stderr, args...)
	return stdout.String(), stderr.String(), err
}

func executeInto(stdin io.Reader, stdout, stderr io.Writer, args ...string) error {
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if stdin != nil {
		root.SetIn(stdin)
	}
	return root.Execute()
}

var (
	passing = exerciseFile{name: "a", mode: "test", hint: "hint for a", source: "echo a passed\n"}
	failing = exerciseFile{name: "b", mode: "test", hint: "hint for b", source: "echo b assertion failed\nexit 1\n"}
	later   = exerciseFile{name: "c", mode: "test", hint: "hint for c", source: "echo c passed\n"}
)
