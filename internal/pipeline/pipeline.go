// Package pipeline implements the bounded research-fetch loop: one search
// call produces candidate titles, then content is fetched per title
// sequentially under a shared wall-clock deadline and a result-count cap.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jkorri/wikiresearch/internal/wiki"
)

// Source is the minimal retrieval surface the pipeline needs. wiki.Client
// satisfies it; tests substitute fakes.
type Source interface {
	Search(ctx context.Context, query string, limit int) ([]string, error)
	Extract(ctx context.Context, title string) (string, error)
	PageURL(title string) string
}

// SourceRecord is one retrieved article. Records are never mutated after
// creation and are owned by the ResearchResult that holds them.
type SourceRecord struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// ResearchResult is the outcome of one successful run. Sources appear in
// fetch-completion order; Summary is the deterministic concatenation of one
// formatted block per source, in the same order.
type ResearchResult struct {
	Query   string         `json:"query"`
	Sources []SourceRecord `json:"sources"`
	Summary string         `json:"summary"`
}

// ErrNoContent is returned when every candidate fetch failed and zero
// sources were accepted.
var ErrNoContent = errors.New("could not retrieve any content")

// separator closes each formatted source block.
var separator = strings.Repeat("─", 80)

// Pipeline runs the capped, deadline-aware retrieval loop.
type Pipeline struct {
	Source Source
	// Clock is a test hook for deadline checks. Nil means time.Now.
	Clock func() time.Time
}

func (p *Pipeline) now() time.Time {
	if p.Clock != nil {
		return p.Clock()
	}
	return time.Now()
}

// Run executes one research pass. The search call is a fail-fast
// precondition: zero matches or a transport failure abort immediately with
// no content fetches. Per-title fetch failures are logged and skipped; they
// never abort the run. The deadline is cooperative and coarse: it is
// checked between candidates only, so an in-flight fetch always completes.
func (p *Pipeline) Run(ctx context.Context, q Query) (*ResearchResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	deadline := p.now().Add(q.TimeLimit)

	log.Info().Str("topic", q.Text).Int("maxSources", q.MaxSources).Msg("searching")
	titles, err := p.Source.Search(ctx, q.Text, q.MaxSources)
	if err != nil {
		if errors.Is(err, wiki.ErrNoResults) {
			return nil, fmt.Errorf("no results found for '%s'", q.Text)
		}
		return nil, fmt.Errorf("search failed: %w", err)
	}

	res := &ResearchResult{Query: q.Text}
	var buf strings.Builder
	accepted := 0
	for _, title := range titles {
		if p.now().After(deadline) {
			log.Warn().Str("topic", q.Text).Msg("time limit reached; stopping early")
			break
		}
		if accepted >= q.MaxSources {
			break
		}
		log.Info().Int("n", accepted+1).Str("title", title).Msg("fetching")
		text, err := p.Source.Extract(ctx, title)
		if err != nil {
			log.Warn().Err(err).Str("title", title).Msg("fetch failed; skipping candidate")
			continue
		}
		pageURL := p.Source.PageURL(title)
		res.Sources = append(res.Sources, SourceRecord{Title: title, URL: pageURL, Snippet: text})
		accepted++
		fmt.Fprintf(&buf, "%d. **%s**\n\n%s\n\nSource: %s\n\n%s\n\n", accepted, title, text, pageURL, separator)
	}

	if accepted == 0 {
		return nil, ErrNoContent
	}
	res.Summary = buf.String()
	return res, nil
}
