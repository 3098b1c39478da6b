package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func envFrom(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestDetectOutputMode(t *testing.T) {
	tests := []struct {
		name       string
		forcePlain bool
		noColor    bool
		env        terminalEnv
		want       OutputMode
	}{
		{
			name: "interactive terminal",
			env:  terminalEnv{stdoutTTY: true, stdinTTY: true, getenv: envFrom(nil)},
			want: OutputModeInteractive,
		},
		{
			name:       "forced plain",
			forcePlain: true,
			env:        terminalEnv{stdoutTTY: true, stdinTTY: true, getenv: envFrom(nil)},
			want:       OutputModePlain,
		},
		{
			name: "piped stdout",
			env:  terminalEnv{stdoutTTY: false, stdinTTY: true, getenv: envFrom(nil)},
			want: OutputModePlain,
		},
		{
			name:    "no color flag",
			noColor: true,
			env:     terminalEnv{stdoutTTY: true, stdinTTY: true, getenv: envFrom(nil)},
			want:    OutputModePlain,
		},
		{
			name: "NO_COLOR env",
			env:  terminalEnv{stdoutTTY: true, stdinTTY: true, getenv: envFrom(map[string]string{"NO_COLOR": "1"})},
			want: OutputModePlain,
		},
		{
			name: "dumb terminal",
			env:  terminalEnv{stdoutTTY: true, stdinTTY: true, getenv: envFrom(map[string]string{"TERM": "dumb"})},
			want: OutputModePlain,
		},
		{
			name: "CI",
			env:  terminalEnv{stdoutTTY: true, stdinTTY: true, getenv: envFrom(map[string]string{"CI": "true"})},
			want: OutputModeStyled,
		},
		{
			name: "stdin not a terminal",
			env:  terminalEnv{stdoutTTY: true, stdinTTY: false, getenv: envFrom(nil)},
			want: OutputModeStyled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detectOutputMode(tt.forcePlain, tt.noColor, tt.env))
		})
	}
}

func TestOutputMode_String(t *testing.T) {
	assert.Equal(t, "plain", OutputModePlain.String())
	assert.Equal(t, "styled", OutputModeStyled.String())
	assert.Equal(t, "interactive", OutputModeInteractive.String())
	assert.Equal(t, "unknown", OutputMode(9).String())
}

func TestTerminalWidth(t *testing.T) {
	// Test binaries do not run with a terminal on stdout.
	assert.Positive(t, TerminalWidth())
}
