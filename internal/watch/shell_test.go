package watch

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/algo/internal/display"
)

func TestShell_Handle(t *testing.T) {
	tests := []struct {
		name  string
		hint  string
		input string
		want  string
	}{
		{"hint prints current hint", "use a swap", "hint", "use a swap\n"},
		{"hint with padding", "use a swap", "  hint \n", "use a swap\n"},
		{"hint when empty prints nothing", "", "hint", ""},
		{"clear is silent off a terminal", "x", "clear", ""},
		{"unknown command", "x", "help me", "unknown command: help me\n"},
		{"blank line ignored", "x", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			hint := NewHintCell()
			hint.Set(tt.hint)

			NewShell(nil, display.NewPrinter(out), hint).Handle(tt.input)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestShell_RunUntilEOF(t *testing.T) {
	out := &bytes.Buffer{}
	hint := NewHintCell()
	hint.Set("compare neighbours")

	in := strings.NewReader("hint\nclear\nsolve\n")
	err := NewShell(in, display.NewPrinter(out), hint).Run(context.Background())
	require.NoError(t, err)

	want := Greeting + "\ncompare neighbours\nunknown command: solve\n"
	assert.Equal(t, want, out.String())
}

func TestShell_ReadError(t *testing.T) {
	out := &bytes.Buffer{}
	in := iotest.ErrReader(errors.New("stdin closed"))

	require.NoError(t, NewShell(in, display.NewPrinter(out), NewHintCell()).Run(context.Background()))
	assert.Contains(t, out.String(), "error reading command: stdin closed")
}

func TestShell_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := strings.NewReader("")
	assert.NoError(t, NewShell(in, display.NewPrinter(&bytes.Buffer{}), NewHintCell()).Run(ctx))
}
