package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetAlgoHome_EnvVar(t *testing.T) {
	envHome := filepath.Join(t.TempDir(), "custom-home")
	t.Setenv("ALGO_HOME", envHome)

	home, err := GetAlgoHome(t.TempDir())
	if err != nil {
		t.Fatalf("GetAlgoHome() error = %v", err)
	}
	if home != envHome {
		t.Errorf("GetAlgoHome() = %q, want %q", home, envHome)
	}
	if _, err := os.Stat(envHome); err != nil {
		t.Errorf("home directory should be created: %v", err)
	}
}

func TestGetAlgoHome_CurriculumDir(t *testing.T) {
	t.Setenv("ALGO_HOME", "")
	dir := t.TempDir()

	home, err := GetAlgoHome(dir)
	if err != nil {
		t.Fatalf("GetAlgoHome() error = %v", err)
	}
	want := filepath.Join(dir, ".algo")
	if home != want {
		t.Errorf("GetAlgoHome() = %q, want %q", home, want)
	}

	lockPath, err := GetWatchLockPath(dir)
	if err != nil {
		t.Fatalf("GetWatchLockPath() error = %v", err)
	}
	if lockPath != filepath.Join(want, "watch.lock") {
		t.Errorf("GetWatchLockPath() = %q", lockPath)
	}
}

func TestResolveLogDir(t *testing.T) {
	t.Setenv("ALGO_HOME", "")
	dir := t.TempDir()

	cfg := DefaultConfig()
	got, err := cfg.ResolveLogDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(dir, ".algo", "logs") {
		t.Errorf("default ResolveLogDir() = %q", got)
	}

	cfg.LogDir = "logs"
	got, _ = cfg.ResolveLogDir(dir)
	if got != filepath.Join(dir, "logs") {
		t.Errorf("relative ResolveLogDir() = %q", got)
	}

	cfg.LogDir = "/var/log/algo"
	got, _ = cfg.ResolveLogDir(dir)
	if got != "/var/log/algo" {
		t.Errorf("absolute ResolveLogDir() = %q", got)
	}
}
