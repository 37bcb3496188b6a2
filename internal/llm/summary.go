package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/jkorri/wikiresearch/internal/textutil"
)

// SourceInput is one retrieved source offered to the summarizer. The app
// layer maps its result records into this shape.
type SourceInput struct {
	Title   string
	Snippet string
}

// Summarizer compresses retrieved sources into a short prose summary via
// the provider chain. Summarization is best-effort; callers are expected to
// turn any error into a display string rather than abort.
type Summarizer struct {
	Chain *Chain
	// MaxSources bounds how many sources feed the prompt. Zero means 5.
	MaxSources int
	// PerSourceChars bounds the snippet text per source. Zero means 200.
	PerSourceChars int
	// Temperature for the completion. Zero means 0.7.
	Temperature float32
}

func (s *Summarizer) maxSources() int {
	if s.MaxSources > 0 {
		return s.MaxSources
	}
	return 5
}

func (s *Summarizer) perSourceChars() int {
	if s.PerSourceChars > 0 {
		return s.PerSourceChars
	}
	return 200
}

func (s *Summarizer) temperature() float32 {
	if s.Temperature > 0 {
		return s.Temperature
	}
	return 0.7
}

// Summarize builds the prompt from at most the first MaxSources sources and
// delegates to the chain.
func (s *Summarizer) Summarize(ctx context.Context, topic string, sources []SourceInput) (string, error) {
	messages := []Message{
		{Role: RoleSystem, Content: "You are a research expert. Provide a concise, well-structured summary of the research findings in 2-3 paragraphs."},
		{Role: RoleUser, Content: s.buildUserMessage(topic, sources)},
	}
	return s.Chain.Chat(ctx, messages, s.temperature())
}

func (s *Summarizer) buildUserMessage(topic string, sources []SourceInput) string {
	if n := s.maxSources(); len(sources) > n {
		sources = sources[:n]
	}
	lines := make([]string, 0, len(sources))
	for _, src := range sources {
		snippet := textutil.Truncate(src.Snippet, s.perSourceChars())
		lines = append(lines, fmt.Sprintf("- %s: %s", src.Title, snippet))
	}
	return fmt.Sprintf("Topic: %s\n\nSources:\n%s\n\nPlease summarize the key findings.", topic, strings.Join(lines, "\n"))
}
