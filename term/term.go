// Package term colours diagnostics on terminals.
package term

import (
	"errors"
	"strings"

	"github.com/ezrec/asm14/translate"
)

var f = translate.From

var ErrColorMode = errors.New(f("colour mode must be one of auto, always or never"))

// ANSI escape sequences.
const (
	ANSI_RESET  = "\x1b[0m"
	ANSI_RED    = "\x1b[1;31m"
	ANSI_YELLOW = "\x1b[1;33m"
)

// ColorMode selects when output is coloured.
type ColorMode int

//go:generate go tool stringer -linecomment -type=ColorMode
const (
	COLOR_AUTO   = ColorMode(0) // auto
	COLOR_ALWAYS = ColorMode(1) // always
	COLOR_NEVER  = ColorMode(2) // never
)

// ParseColorMode parses the name of a colour mode.
func ParseColorMode(text string) (mode ColorMode, err error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "", "auto":
		mode = COLOR_AUTO
	case "always", "yes", "on":
		mode = COLOR_ALWAYS
	case "never", "no", "off":
		mode = COLOR_NEVER
	default:
		err = ErrColorMode
	}
	return
}

// Enabled returns true if output to the file descriptor should be coloured.
func (mode ColorMode) Enabled(fd uintptr) bool {
	switch mode {
	case COLOR_ALWAYS:
		return true
	case COLOR_AUTO:
		return IsTerminal(fd)
	default:
		return false
	}
}

// Paint wraps text in an escape sequence, if enabled.
func Paint(enabled bool, ansi string, text string) string {
	if !enabled {
		return text
	}
	return ansi + text + ANSI_RESET
}
