package app

import (
	"errors"
	"time"

	"github.com/jkorri/wikiresearch/internal/pipeline"
)

// Config holds runtime configuration for the application.
type Config struct {
	// Wikipedia
	WikiBaseURL     string
	WikiUserAgent   string
	SnippetMaxChars int

	// Retrieval limits
	MaxSources int
	MaxDepth   int
	TimeLimit  time.Duration

	// Providers
	OpenRouterKey   string
	OpenRouterModel string
	OpenRouterBase  string
	GroqKey         string
	GroqModel       string
	GroqBase        string

	// Summarization
	NoSummary             bool
	SummaryMaxSources     int
	SummaryPerSourceChars int

	// Output
	OutputDir string
	Formats   []string

	Verbose bool
}

// DefaultFormats are written when no format flag is given.
var DefaultFormats = []string{"markdown"}

// KnownFormats lists every supported export format.
var KnownFormats = []string{"markdown", "text", "html", "json", "pdf"}

// DefaultConfig returns a Config with the stock limits applied.
func DefaultConfig() Config {
	q := pipeline.DefaultQuery("")
	return Config{
		SnippetMaxChars:       1200,
		MaxSources:            q.MaxSources,
		MaxDepth:              q.MaxDepth,
		TimeLimit:             q.TimeLimit,
		SummaryMaxSources:     5,
		SummaryPerSourceChars: 200,
		OutputDir:             ".",
		Formats:               append([]string{}, DefaultFormats...),
	}
}

// ValidateConfig performs minimal schema validation for required settings.
func ValidateConfig(cfg Config) error {
	if cfg.OutputDir == "" {
		return errors.New("config: output directory is required")
	}
	if cfg.SnippetMaxChars < 0 || cfg.SummaryPerSourceChars < 0 || cfg.SummaryMaxSources < 0 {
		return errors.New("config: negative limits are not allowed")
	}
	for _, f := range cfg.Formats {
		if !isKnownFormat(f) {
			return errors.New("config: unknown export format: " + f)
		}
	}
	return nil
}

func isKnownFormat(f string) bool {
	for _, k := range KnownFormats {
		if f == k {
			return true
		}
	}
	return false
}
