package logger

import (
	"bytes"
	"strings"
	"testing"
)

// TestLogLevelFiltering verifies that messages are filtered based on log level
func TestLogLevelFiltering(t *testing.T) {
	levels := []string{"trace", "debug", "info", "warn", "error"}

	for i, configured := range levels {
		for j, message := range levels {
			name := configured + "/" + message
			t.Run(name, func(t *testing.T) {
				buf := &bytes.Buffer{}
				logger := NewConsoleLogger(buf, configured)

				switch message {
				case "trace":
					logger.LogTrace("msg")
				case "debug":
					logger.LogDebug("msg")
				case "info":
					logger.LogInfo("msg")
				case "warn":
					logger.LogWarn("msg")
				case "error":
					logger.LogError("msg")
				}

				shouldAppear := j >= i
				appeared := strings.Contains(buf.String(), "["+strings.ToUpper(message)+"] msg")
				if appeared != shouldAppear {
					t.Errorf("configured %s, message %s: appeared = %v, want %v", configured, message, appeared, shouldAppear)
				}
			})
		}
	}
}

func TestLogLevelEdgeCases(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "info"},
		{"  WARN ", "warn"},
		{"Trace", "trace"},
		{"verbose", "info"},
	}

	for _, tt := range tests {
		if got := normalizeLogLevel(tt.input); got != tt.want {
			t.Errorf("normalizeLogLevel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
