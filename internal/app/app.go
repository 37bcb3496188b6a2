// Package app wires the Wikipedia client, the research pipeline, the
// provider chain, and the exporters into one run.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jkorri/wikiresearch/internal/llm"
	"github.com/jkorri/wikiresearch/internal/pipeline"
	"github.com/jkorri/wikiresearch/internal/report"
	"github.com/jkorri/wikiresearch/internal/wiki"
)

// defaultUserAgent identifies the tool to the Wikipedia API.
const defaultUserAgent = "wikiresearch/1.0 (+https://github.com/jkorri/wikiresearch)"

type App struct {
	cfg  Config
	pipe *pipeline.Pipeline
	sum  *llm.Summarizer
}

// Providers returns the configured chat providers in fixed fallback order:
// OpenRouter first, Groq second. Unconfigured providers are omitted, so an
// empty slice means summarization is unavailable rather than an error.
func Providers(cfg Config) []llm.Provider {
	var out []llm.Provider
	or := &llm.OpenRouter{APIKey: cfg.OpenRouterKey, Model: cfg.OpenRouterModel, BaseURL: cfg.OpenRouterBase}
	if or.Configured() {
		out = append(out, or)
	}
	gq := &llm.Groq{APIKey: cfg.GroqKey, Model: cfg.GroqModel, BaseURL: cfg.GroqBase}
	if gq.Configured() {
		out = append(out, gq)
	}
	return out
}

func New(cfg Config) (*App, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	ua := cfg.WikiUserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	client := &wiki.Client{
		BaseURL:         cfg.WikiBaseURL,
		UserAgent:       ua,
		ExtractMaxChars: cfg.SnippetMaxChars,
	}
	return &App{
		cfg:  cfg,
		pipe: &pipeline.Pipeline{Source: client},
		sum: &llm.Summarizer{
			Chain:          &llm.Chain{Providers: Providers(cfg)},
			MaxSources:     cfg.SummaryMaxSources,
			PerSourceChars: cfg.SummaryPerSourceChars,
		},
	}, nil
}

// Run researches topic, prints the best-effort AI summary, and writes the
// selected report formats. Only pipeline and file-write failures are
// returned; summarization errors degrade to a display string.
func (a *App) Run(ctx context.Context, topic string) error {
	q := pipeline.Query{
		Text:       topic,
		MaxSources: a.cfg.MaxSources,
		MaxDepth:   a.cfg.MaxDepth,
		TimeLimit:  a.cfg.TimeLimit,
	}
	res, err := a.pipe.Run(ctx, q)
	if err != nil {
		return err
	}
	log.Info().Int("sources", len(res.Sources)).Int("chars", len(res.Summary)).Msg("research complete")

	if !a.cfg.NoSummary {
		fmt.Println(a.summarize(ctx, res, topic))
	}

	return a.export(topic, res, time.Now())
}

// summarize returns either the model summary or a human-readable
// degradation string; it never fails the run.
func (a *App) summarize(ctx context.Context, res *pipeline.ResearchResult, topic string) string {
	inputs := make([]llm.SourceInput, 0, len(res.Sources))
	for _, s := range res.Sources {
		inputs = append(inputs, llm.SourceInput{Title: s.Title, Snippet: s.Snippet})
	}
	out, err := a.sum.Summarize(ctx, topic, inputs)
	if err != nil {
		if errors.Is(err, llm.ErrNoProvider) {
			return "AI summary unavailable - set API key in configuration"
		}
		log.Warn().Err(err).Msg("summary generation failed")
		return "Summary generation failed: " + err.Error()
	}
	return out
}

func (a *App) export(topic string, res *pipeline.ResearchResult, generated time.Time) error {
	base := strings.ReplaceAll(topic, " ", "_") + "_report"
	md := report.Markdown(topic, res, generated)
	for _, format := range a.cfg.Formats {
		var (
			data []byte
			ext  string
			err  error
		)
		switch format {
		case "markdown":
			data, ext = []byte(md), ".md"
		case "text":
			data, ext = []byte(report.Text(md)), ".txt"
		case "html":
			data, ext = []byte(report.HTML(md)), ".html"
		case "json":
			ext = ".json"
			data, err = report.JSON(res)
		case "pdf":
			ext = ".pdf"
			data, err = report.PDF(topic, res, generated)
		default:
			return fmt.Errorf("unknown export format: %s", format)
		}
		if err != nil {
			return fmt.Errorf("export %s: %w", format, err)
		}
		path := filepath.Join(a.cfg.OutputDir, base+ext)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		log.Info().Str("out", path).Str("format", format).Msg("wrote report")
	}
	return nil
}
