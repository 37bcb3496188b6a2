package wiki

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"
)

func extractServer(t *testing.T, pages map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("prop") != "extracts" || q.Get("explaintext") != "1" {
			t.Errorf("unexpected query params: %v", q)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"query": map[string]any{"pages": pages},
		})
	}))
}

func TestExtract_ReturnsText(t *testing.T) {
	srv := extractServer(t, map[string]any{
		"12345": map[string]any{"extract": "Alan Turing was an English mathematician."},
	})
	defer srv.Close()

	c := &Client{BaseURL: srv.URL, HTTPClient: srv.Client()}
	got, err := c.Extract(context.Background(), "Alan Turing")
	if err != nil {
		t.Fatalf("extract error: %v", err)
	}
	if got != "Alan Turing was an English mathematician." {
		t.Fatalf("unexpected extract: %q", got)
	}
}

func TestExtract_FirstNonEmptyPageWins(t *testing.T) {
	// Several page ids for one title: the first id in sorted order with a
	// non-empty extract is kept, the rest ignored.
	srv := extractServer(t, map[string]any{
		"100": map[string]any{},
		"200": map[string]any{"extract": "kept"},
		"300": map[string]any{"extract": "ignored"},
	})
	defer srv.Close()

	c := &Client{BaseURL: srv.URL, HTTPClient: srv.Client()}
	got, err := c.Extract(context.Background(), "Ambiguous")
	if err != nil {
		t.Fatalf("extract error: %v", err)
	}
	if got != "kept" {
		t.Fatalf("expected first non-empty extract, got %q", got)
	}
}

func TestExtract_Truncates(t *testing.T) {
	srv := extractServer(t, map[string]any{
		"1": map[string]any{"extract": strings.Repeat("a", 5000)},
	})
	defer srv.Close()

	c := &Client{BaseURL: srv.URL, HTTPClient: srv.Client(), ExtractMaxChars: 1200}
	got, err := c.Extract(context.Background(), "Long")
	if err != nil {
		t.Fatalf("extract error: %v", err)
	}
	if len(got) != 1200 {
		t.Fatalf("expected 1200 chars, got %d", len(got))
	}
}

func TestExtract_TruncationKeepsRunesIntact(t *testing.T) {
	// A two-byte rune straddling the cap must be dropped whole, not cut
	// into a dangling lead byte.
	srv := extractServer(t, map[string]any{
		"1": map[string]any{"extract": strings.Repeat("a", 599) + "é"},
	})
	defer srv.Close()

	c := &Client{BaseURL: srv.URL, HTTPClient: srv.Client(), ExtractMaxChars: 600}
	got, err := c.Extract(context.Background(), "Accented")
	if err != nil {
		t.Fatalf("extract error: %v", err)
	}
	if !utf8.ValidString(got) {
		t.Fatalf("extract is not valid UTF-8: %q", got[len(got)-4:])
	}
	if got != strings.Repeat("a", 599) {
		t.Fatalf("expected 599 ascii chars, got %d bytes", len(got))
	}
}

func TestExtract_NoExtract(t *testing.T) {
	srv := extractServer(t, map[string]any{
		"-1": map[string]any{},
	})
	defer srv.Close()

	c := &Client{BaseURL: srv.URL, HTTPClient: srv.Client()}
	_, err := c.Extract(context.Background(), "Missing")
	if !errors.Is(err, ErrNoExtract) {
		t.Fatalf("expected ErrNoExtract, got %v", err)
	}
}

func TestPageURL_ReplacesSpacesOnly(t *testing.T) {
	c := &Client{}
	got := c.PageURL("Alan Turing (mathematician)")
	want := "https://en.wikipedia.org/wiki/Alan_Turing_(mathematician)"
	if got != want {
		t.Fatalf("PageURL = %q, want %q", got, want)
	}
}
