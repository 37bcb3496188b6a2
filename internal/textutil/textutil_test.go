package textutil

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"shorter than cap", "abc", 10, "abc"},
		{"exact fit", "abc", 3, "abc"},
		{"ascii cut", "abcdef", 4, "abcd"},
		{"zero cap", "abc", 0, ""},
		{"negative cap", "abc", -1, ""},
		{"cap lands mid-rune", "aaé", 3, "aa"},
		{"cap at rune boundary", "aaé", 4, "aaé"},
		{"multi-byte only", "éé", 1, ""},
		{"four-byte rune straddles cap", "ab\U0001F600", 4, "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.max)
			if got != tt.want {
				t.Fatalf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Fatalf("Truncate(%q, %d) = %q is not valid UTF-8", tt.in, tt.max, got)
			}
		})
	}
}

func TestTruncate_NeverExceedsCap(t *testing.T) {
	s := strings.Repeat("é", 100)
	for max := 0; max <= len(s); max++ {
		got := Truncate(s, max)
		if len(got) > max {
			t.Fatalf("Truncate cap %d produced %d bytes", max, len(got))
		}
		if !utf8.ValidString(got) {
			t.Fatalf("cap %d produced invalid UTF-8", max)
		}
	}
}
