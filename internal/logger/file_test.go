package logger

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/harrison/algo/internal/models"
)

func readLog(t *testing.T, fl *FileLogger) string {
	t.Helper()
	data, err := os.ReadFile(fl.Path())
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	return string(data)
}

func TestLogDirectoryCreation(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "nested", "logs")

	fl, err := NewFileLoggerWithDirAndLevel(logDir, "info")
	if err != nil {
		t.Fatalf("NewFileLoggerWithDirAndLevel() error = %v", err)
	}
	defer fl.Close()

	if fl.Path() != filepath.Join(logDir, LogFileName) {
		t.Errorf("Path() = %q", fl.Path())
	}
	if !strings.Contains(readLog(t, fl), "=== algo session started at ") {
		t.Error("expected session header")
	}
}

func TestFileLoggerLevels(t *testing.T) {
	fl, err := NewFileLoggerWithDirAndLevel(t.TempDir(), "info")
	if err != nil {
		t.Fatal(err)
	}
	defer fl.Close()

	fl.LogDebug("hidden debug")
	fl.LogInfo("visible info")
	fl.LogExerciseStart(sampleExercise)
	fl.LogExerciseResult(sampleExercise, models.StatusFailed, 2*time.Second)
	fl.LogWatchEvent("/c/a.rs", "written")

	content := readLog(t, fl)
	if strings.Contains(content, "hidden debug") || strings.Contains(content, "Checking bubble_sort") {
		t.Errorf("debug messages should be filtered:\n%s", content)
	}
	if !strings.Contains(content, "[INFO] visible info") {
		t.Errorf("missing info line:\n%s", content)
	}
	if !strings.Contains(content, "[WARN] Exercise bubble_sort: FAILED (2.00s)") {
		t.Errorf("missing failure line:\n%s", content)
	}
}

func TestFileLoggerAppendsAcrossSessions(t *testing.T) {
	dir := t.TempDir()

	first, err := NewFileLoggerWithDirAndLevel(dir, "info")
	if err != nil {
		t.Fatal(err)
	}
	first.LogInfo("first session")
	first.Close()

	second, err := NewFileLoggerWithDirAndLevel(dir, "info")
	if err != nil {
		t.Fatal(err)
	}
	defer second.Close()
	second.LogInfo("second session")

	content := readLog(t, second)
	if strings.Count(content, "=== algo session started") != 2 {
		t.Errorf("expected two session headers:\n%s", content)
	}
	if !strings.Contains(content, "first session") || !strings.Contains(content, "second session") {
		t.Errorf("expected both sessions in log:\n%s", content)
	}
}

func TestConcurrentLogWrites(t *testing.T) {
	fl, err := NewFileLoggerWithDirAndLevel(t.TempDir(), "info")
	if err != nil {
		t.Fatal(err)
	}
	defer fl.Close()

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				fl.LogInfo("parallel")
			}
		}()
	}
	wg.Wait()

	if got := strings.Count(readLog(t, fl), "[INFO] parallel\n"); got != 100 {
		t.Errorf("got %d lines, want 100", got)
	}
}

func TestNewFileLoggerInvalidPath(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewFileLoggerWithDirAndLevel(filepath.Join(file, "logs"), "info"); err == nil {
		t.Error("expected error when log dir cannot be created")
	}
}
