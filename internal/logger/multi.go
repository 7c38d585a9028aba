package logger

import (
	"time"

	"github.com/harrison/algo/internal/models"
)

// Logger is the method set shared by every sink in this package
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogError(message string)
	LogExerciseStart(ex models.Exercise)
	LogExerciseResult(ex models.Exercise, status string, duration time.Duration)
	LogWatchEvent(path, op string)
}

var (
	_ Logger = (*ConsoleLogger)(nil)
	_ Logger = (*FileLogger)(nil)
	_ Logger = (*NoOpLogger)(nil)
	_ Logger = (*MultiLogger)(nil)
)

// MultiLogger fans every message out to several loggers. Nil entries are skipped.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger creates a MultiLogger
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	m := &MultiLogger{}
	for _, l := range loggers {
		if l != nil {
			m.loggers = append(m.loggers, l)
		}
	}
	return m
}

func (m *MultiLogger) LogTrace(message string) {
	for _, l := range m.loggers {
		l.LogTrace(message)
	}
}

func (m *MultiLogger) LogDebug(message string) {
	for _, l := range m.loggers {
		l.LogDebug(message)
	}
}

func (m *MultiLogger) LogInfo(message string) {
	for _, l := range m.loggers {
		l.LogInfo(message)
	}
}

func (m *MultiLogger) LogWarn(message string) {
	for _, l := range m.loggers {
		l.LogWarn(message)
	}
}

func (m *MultiLogger) LogError(message string) {
	for _, l := range m.loggers {
		l.LogError(message)
	}
}

func (m *MultiLogger) LogExerciseStart(ex models.Exercise) {
	for _, l := range m.loggers {
		l.LogExerciseStart(ex)
	}
}

func (m *MultiLogger) LogExerciseResult(ex models.Exercise, status string, duration time.Duration) {
	for _, l := range m.loggers {
		l.LogExerciseResult(ex, status, duration)
	}
}

func (m *MultiLogger) LogWatchEvent(path, op string) {
	for _, l := range m.loggers {
		l.LogWatchEvent(path, op)
	}
}
