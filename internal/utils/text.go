package utils

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Sanitize prepares a user-supplied string for terminal display: ANSI escape
// sequences and control runes are stripped so diary text, notes, and item
// names cannot inject styling or cursor movement into the rendered view.
func Sanitize(s string) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return ' '
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}

// Truncate shortens s to at most n runes, appending an ellipsis when text was
// cut. Used by the timeline to keep diary bodies to a preview.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
