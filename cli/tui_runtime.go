package cli

import (
	"os"
	"strconv"
	"strings"
)

const (
	plainFrameWidth  = 80
	plainFrameHeight = 24
)

func isTerminalFD(f *os.File) bool {
	if f == nil {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

func isInteractiveTerminal() bool {
	if !isTerminalFD(os.Stdin) || !isTerminalFD(os.Stdout) {
		return false
	}
	term := strings.TrimSpace(strings.ToLower(os.Getenv("TERM")))
	return term != "" && term != "dumb"
}

func shouldUseClockUI(isTTY, noUI bool) bool {
	return isTTY && !noUI
}

// plainFrameSize picks the canvas size for a one-shot frame, honoring COLUMNS and
// LINES when a shell exports them.
func plainFrameSize() (int, int) {
	return envDimension("COLUMNS", plainFrameWidth), envDimension("LINES", plainFrameHeight)
}

func envDimension(name string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(name)))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
