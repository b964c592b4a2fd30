// Package textutil shortens transcripts and error bodies for log lines.
package textutil

import "unicode/utf8"

// Trim keeps at most max bytes of s, cut on a rune boundary, and marks the cut
// with an ellipsis.
func Trim(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "…"
}
