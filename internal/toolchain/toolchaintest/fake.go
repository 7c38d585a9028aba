// Package toolchaintest provides a fake rustc for tests that exercise the
// real process plumbing without a Rust installation.
//
// The fake compiler treats exercise sources as shell scripts: it drops every
// line starting with //, prepends a shebang and writes the result to the -o
// path. A source containing COMPILE_ERROR is rejected with a diagnostic on
// stderr. Test harnesses receive their arguments (e.g. --show-output) as $@.
package toolchaintest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const fakeRustc = `#!/bin/sh
if [ "$1" = "--version" ]; then
  echo "rustc 1.0.0 (fake)"
  exit 0
fi
out=""
src=""
while [ $# -gt 0 ]; do
  case "$1" in
    -o) out="$2"; shift 2 ;;
    --color|-D|-W) shift 2 ;;
    --test) shift ;;
    *) src="$1"; shift ;;
  esac
done
if [ ! -f "$src" ]; then
  echo "error: couldn't read $src: No such file or directory" >&2
  exit 1
fi
if grep -q COMPILE_ERROR "$src"; then
  echo "error: expected one of ; found COMPILE_ERROR in $src" >&2
  exit 1
fi
{ echo '#!/bin/sh'; sed '/^[[:space:]]*\/\//d' "$src"; } > "$out"
chmod +x "$out"
`

// SkipUnsupported skips tests that need a POSIX shell.
func SkipUnsupported(t testing.TB) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake toolchain requires a POSIX shell")
	}
}

// WriteFakeRustc writes the fake compiler into dir and returns its path.
func WriteFakeRustc(t testing.TB, dir string) string {
	t.Helper()
	SkipUnsupported(t)

	path := filepath.Join(dir, "fake-rustc")
	if err := os.WriteFile(path, []byte(fakeRustc), 0755); err != nil {
		t.Fatalf("write fake rustc: %v", err)
	}
	return path
}

// WriteSource writes an exercise source file, creating parent directories.
func WriteSource(t testing.TB, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("create source dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write source: %v", err)
	}
}
