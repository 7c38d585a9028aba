package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/harrison/algo/internal/models"
)

// LogFileName is the active log file inside the log directory
const LogFileName = "algo.log"

// FileLogger appends diagnostics to <logDir>/algo.log.
// The file is size-rotated by lumberjack, keeping a few compressed backups,
// so long watch sessions cannot grow it without bound.
// It is thread-safe and supports log level filtering.
type FileLogger struct {
	logDir   string
	out      *lumberjack.Logger
	logLevel string
	mu       sync.Mutex
}

// NewFileLogger creates a FileLogger in the default .algo/logs directory with level "info".
func NewFileLogger() (*FileLogger, error) {
	return NewFileLoggerWithDirAndLevel(filepath.Join(".algo", "logs"), "info")
}

// NewFileLoggerWithDirAndLevel creates a FileLogger with a custom log directory and log level.
func NewFileLoggerWithDirAndLevel(logDir string, logLevel string) (*FileLogger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	fl := &FileLogger{
		logDir: logDir,
		out: &lumberjack.Logger{
			Filename:   filepath.Join(logDir, LogFileName),
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		},
		logLevel: normalizeLogLevel(logLevel),
	}

	if err := fl.write(fmt.Sprintf("=== algo session started at %s ===\n", time.Now().Format(time.RFC3339))); err != nil {
		fl.out.Close()
		return nil, fmt.Errorf("failed to write log file: %w", err)
	}

	return fl, nil
}

// Path returns the active log file path
func (fl *FileLogger) Path() string {
	return fl.out.Filename
}

// Close flushes and closes the log file
func (fl *FileLogger) Close() error {
	fl.mu.Lock()
	defer fl.mu.Unlock()
	return fl.out.Close()
}

// shouldLog checks if a message at the given level should be logged.
func (fl *FileLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(fl.logLevel)
}

// LogTrace logs a trace-level message (most verbose).
func (fl *FileLogger) LogTrace(message string) {
	fl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (fl *FileLogger) LogDebug(message string) {
	fl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (fl *FileLogger) LogInfo(message string) {
	fl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (fl *FileLogger) LogWarn(message string) {
	fl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (fl *FileLogger) LogError(message string) {
	fl.logWithLevel("ERROR", message)
}

// LogExerciseStart logs that an exercise is about to be compiled, at DEBUG level.
func (fl *FileLogger) LogExerciseStart(ex models.Exercise) {
	fl.logWithLevel("DEBUG", fmt.Sprintf("Checking %s (%s) at %s", ex.Name, ex.Mode, ex.Path))
}

// LogExerciseResult logs an exercise verdict; failures at WARN, others at INFO.
func (fl *FileLogger) LogExerciseResult(ex models.Exercise, status string, duration time.Duration) {
	level := "INFO"
	if status == models.StatusFailed {
		level = "WARN"
	}
	fl.logWithLevel(level, fmt.Sprintf("Exercise %s: %s (%.2fs)", ex.Name, status, duration.Seconds()))
}

// LogWatchEvent logs a filesystem event seen by watch mode, at DEBUG level.
func (fl *FileLogger) LogWatchEvent(path, op string) {
	fl.logWithLevel("DEBUG", fmt.Sprintf("Watch event: %s %s", op, path))
}

// logWithLevel is a helper that logs a message at the specified level if filtering allows it.
func (fl *FileLogger) logWithLevel(level string, message string) {
	if !fl.shouldLog(strings.ToLower(level)) {
		return
	}

	formatted := fmt.Sprintf("[%s] [%s] %s\n", time.Now().Format(time.RFC3339), level, message)
	fl.write(formatted)
}

func (fl *FileLogger) write(s string) error {
	fl.mu.Lock()
	defer fl.mu.Unlock()
	_, err := fl.out.Write([]byte(s))
	return err
}
