// Package textutil holds small text helpers shared by the fetch, prompt,
// and export layers.
package textutil

import "unicode/utf8"

// Truncate returns a prefix of s at most max bytes long, never splitting a
// UTF-8 rune: when the cap lands inside a multi-byte sequence the cut moves
// back to the previous rune boundary. If max >= len(s), s is returned
// unchanged.
func Truncate(s string, max int) string {
	if max >= len(s) {
		return s
	}
	if max <= 0 {
		return ""
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}
