package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jkorri/wikiresearch/internal/wiki"
)

// fakeSource is a scripted Source for pipeline tests.
type fakeSource struct {
	titles       []string
	searchErr    error
	extracts     map[string]string
	extractCalls int
}

func (f *fakeSource) Search(_ context.Context, _ string, limit int) ([]string, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	if len(f.titles) > limit {
		return f.titles[:limit], nil
	}
	return f.titles, nil
}

func (f *fakeSource) Extract(_ context.Context, title string) (string, error) {
	f.extractCalls++
	text, ok := f.extracts[title]
	if !ok {
		return "", wiki.ErrNoExtract
	}
	return text, nil
}

func (f *fakeSource) PageURL(title string) string {
	return "https://en.wikipedia.org/wiki/" + strings.ReplaceAll(title, " ", "_")
}

func turingQuery() Query {
	return Query{Text: "Turing", MaxSources: 2, MaxDepth: 2, TimeLimit: 120 * time.Second}
}

func TestRun_Success(t *testing.T) {
	src := &fakeSource{
		titles: []string{"Alan Turing", "Turing Award"},
		extracts: map[string]string{
			"Alan Turing":  "Alan Turing was an English mathematician.",
			"Turing Award": "The Turing Award is given annually.",
		},
	}
	p := &Pipeline{Source: src}
	res, err := p.Run(context.Background(), turingQuery())
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if len(res.Sources) != 2 {
		t.Fatalf("expected 2 sources, got %d", len(res.Sources))
	}
	if res.Sources[0].Title != "Alan Turing" {
		t.Fatalf("unexpected first source: %q", res.Sources[0].Title)
	}
	if res.Sources[0].URL != "https://en.wikipedia.org/wiki/Alan_Turing" {
		t.Fatalf("unexpected url: %q", res.Sources[0].URL)
	}
	if res.Query != "Turing" {
		t.Fatalf("unexpected query: %q", res.Query)
	}
	if !strings.Contains(res.Summary, "1. **Alan Turing**") || !strings.Contains(res.Summary, "2. **Turing Award**") {
		t.Fatalf("summary missing formatted blocks:\n%s", res.Summary)
	}
}

func TestRun_NoResults_FailsFastWithoutFetches(t *testing.T) {
	src := &fakeSource{searchErr: wiki.ErrNoResults}
	p := &Pipeline{Source: src}
	q := Query{Text: "zzzzz_no_such_topic", MaxSources: 5, MaxDepth: 2, TimeLimit: 120 * time.Second}
	_, err := p.Run(context.Background(), q)
	if err == nil {
		t.Fatal("expected failure")
	}
	if err.Error() != "no results found for 'zzzzz_no_such_topic'" {
		t.Fatalf("unexpected reason: %q", err.Error())
	}
	if src.extractCalls != 0 {
		t.Fatalf("expected zero content fetches, got %d", src.extractCalls)
	}
}

func TestRun_SearchTransportError(t *testing.T) {
	src := &fakeSource{searchErr: errors.New("connection refused")}
	p := &Pipeline{Source: src}
	_, err := p.Run(context.Background(), turingQuery())
	if err == nil || !strings.HasPrefix(err.Error(), "search failed") {
		t.Fatalf("expected search failed, got %v", err)
	}
}

func TestRun_AllFetchesFail(t *testing.T) {
	src := &fakeSource{titles: []string{"A", "B", "C"}, extracts: map[string]string{}}
	p := &Pipeline{Source: src}
	q := Query{Text: "topic", MaxSources: 3, MaxDepth: 1, TimeLimit: 60 * time.Second}
	_, err := p.Run(context.Background(), q)
	if !errors.Is(err, ErrNoContent) {
		t.Fatalf("expected ErrNoContent, got %v", err)
	}
	if src.extractCalls != 3 {
		t.Fatalf("expected 3 fetch attempts, got %d", src.extractCalls)
	}
}

func TestRun_SkipsFailedCandidates(t *testing.T) {
	src := &fakeSource{
		titles:   []string{"A", "B", "C"},
		extracts: map[string]string{"A": "text a", "C": "text c"},
	}
	p := &Pipeline{Source: src}
	q := Query{Text: "topic", MaxSources: 3, MaxDepth: 1, TimeLimit: 60 * time.Second}
	res, err := p.Run(context.Background(), q)
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if len(res.Sources) != 2 {
		t.Fatalf("expected 2 sources, got %d", len(res.Sources))
	}
	// Ordinals renumber over accepted sources only.
	if !strings.Contains(res.Summary, "2. **C**") {
		t.Fatalf("expected C as second block:\n%s", res.Summary)
	}
}

func TestRun_DeadlineStopsWithPrefix(t *testing.T) {
	src := &fakeSource{
		titles:   []string{"A", "B", "C"},
		extracts: map[string]string{"A": "text a", "B": "text b", "C": "text c"},
	}
	// Clock advances 20s per observation: deadline fixed at start+30s, the
	// first candidate passes the guard, the second does not.
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	p := &Pipeline{Source: src, Clock: func() time.Time {
		now := start.Add(time.Duration(calls) * 20 * time.Second)
		calls++
		return now
	}}
	q := Query{Text: "topic", MaxSources: 3, MaxDepth: 1, TimeLimit: 30 * time.Second}
	res, err := p.Run(context.Background(), q)
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if len(res.Sources) != 1 || res.Sources[0].Title != "A" {
		t.Fatalf("expected strict prefix [A], got %+v", res.Sources)
	}
	if src.extractCalls != 1 {
		t.Fatalf("expected 1 fetch before deadline, got %d", src.extractCalls)
	}
}

func TestRun_RespectsSourceCap(t *testing.T) {
	src := &fakeSource{
		titles:   []string{"A", "B", "C", "D"},
		extracts: map[string]string{"A": "a", "B": "b", "C": "c", "D": "d"},
	}
	p := &Pipeline{Source: src}
	q := Query{Text: "topic", MaxSources: 2, MaxDepth: 1, TimeLimit: 60 * time.Second}
	res, err := p.Run(context.Background(), q)
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if len(res.Sources) != 2 {
		t.Fatalf("expected cap of 2, got %d", len(res.Sources))
	}
}

func TestRun_SummaryDeterministic(t *testing.T) {
	mk := func() *fakeSource {
		return &fakeSource{
			titles:   []string{"Alan Turing", "Turing Award"},
			extracts: map[string]string{"Alan Turing": "one", "Turing Award": "two"},
		}
	}
	p1 := &Pipeline{Source: mk()}
	p2 := &Pipeline{Source: mk()}
	r1, err := p1.Run(context.Background(), turingQuery())
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	r2, err := p2.Run(context.Background(), turingQuery())
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if r1.Summary != r2.Summary {
		t.Fatal("summary not byte-identical across runs")
	}
}
