package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how results are presented.
type OutputMode int

const (
	// OutputModePlain prints unstyled text. Used for pipes and dumb terminals.
	OutputModePlain OutputMode = iota
	// OutputModeStyled prints lipgloss-styled static output.
	OutputModeStyled
	// OutputModeInteractive runs the Bubble Tea program.
	OutputModeInteractive
)

// String returns the mode name for logging.
func (m OutputMode) String() string {
	switch m {
	case OutputModePlain:
		return "plain"
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

const fallbackTerminalWidth = 80

// terminalEnv is the environment DetectOutputMode reads.
type terminalEnv struct {
	stdoutTTY bool
	stdinTTY  bool
	getenv    func(string) string
}

func currentTerminalEnv() terminalEnv {
	return terminalEnv{
		stdoutTTY: term.IsTerminal(int(os.Stdout.Fd())),
		stdinTTY:  term.IsTerminal(int(os.Stdin.Fd())),
		getenv:    os.Getenv,
	}
}

// DetectOutputMode picks the output mode for the current terminal.
// forcePlain wins over everything. noColor, NO_COLOR and TERM=dumb select
// plain output; CI or a non-terminal stdin select styled output.
func DetectOutputMode(forcePlain, noColor bool) OutputMode {
	return detectOutputMode(forcePlain, noColor, currentTerminalEnv())
}

func detectOutputMode(forcePlain, noColor bool, env terminalEnv) OutputMode {
	if forcePlain {
		return OutputModePlain
	}
	if !env.stdoutTTY {
		return OutputModePlain
	}
	if noColor || env.getenv("NO_COLOR") != "" || env.getenv("TERM") == "dumb" {
		return OutputModePlain
	}
	if env.getenv("CI") != "" || !env.stdinTTY {
		return OutputModeStyled
	}
	return OutputModeInteractive
}

// TerminalWidth returns the stdout width, or 80 when it cannot be determined.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallbackTerminalWidth
	}
	return width
}
