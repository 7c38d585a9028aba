package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/algo/internal/executor"
)

func TestVerify_AllPass(t *testing.T) {
	setupCurriculum(t, passing, later)

	stdout, _, err := executeCommand(nil, "verify")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Successfully tested algorithms/a.rs")
	assert.Contains(t, stdout, "Successfully tested algorithms/c.rs")
}

// TestVerify_HaltsAtFailure covers A(pass), B(fail), C(pass): C is never run
func TestVerify_HaltsAtFailure(t *testing.T) {
	setupCurriculum(t, passing, failing, later)

	stdout, _, err := executeCommand(nil, "v")

	var halt *executor.HaltError
	require.ErrorAs(t, err, &halt)
	assert.Equal(t, "b", halt.Exercise.Name)
	assert.Contains(t, stdout, "Testing of algorithms/b.rs failed! Please try again. Here's the output:")
	assert.Contains(t, stdout, "b assertion failed")
	assert.NotContains(t, stdout, "algorithms/c.rs")
}

func TestVerify_PendingExitsWithError(t *testing.T) {
	pending := exerciseFile{name: "p", mode: "compile", hint: "h", source: "// I AM NOT DONE\necho sorted\n"}
	setupCurriculum(t, passing, pending, later)

	stdout, _, err := executeCommand(nil, "verify")

	var halt *executor.HaltError
	require.ErrorAs(t, err, &halt)
	assert.True(t, halt.Pending())
	assert.Contains(t, stdout, "The code is compiling!")
	assert.Contains(t, stdout, "sorted")
	assert.Contains(t, stdout, " 1 |  // I AM NOT DONE")
	assert.NotContains(t, stdout, "algorithms/c.rs")
}

func TestVerify_Nocapture(t *testing.T) {
	chatty := exerciseFile{name: "chatty", mode: "test", hint: "h", source: "echo harness args:$@\n"}

	tests := []struct {
		name  string
		args  []string
		shown bool
	}{
		{"captured", []string{"verify"}, false},
		{"nocapture", []string{"--nocapture", "verify"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCurriculum(t, chatty)

			stdout, _, err := executeCommand(nil, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.shown, strings.Contains(stdout, "harness args:--show-output"))
		})
	}
}
