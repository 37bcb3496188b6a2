package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema. Nested
// sections map naturally to flags and environment variables.
type FileConfig struct {
	Wiki struct {
		URL          string `yaml:"url" json:"url"`
		UserAgent    string `yaml:"userAgent" json:"userAgent"`
		SnippetChars int    `yaml:"snippetChars" json:"snippetChars"`
	} `yaml:"wiki" json:"wiki"`

	Max struct {
		Sources int    `yaml:"sources" json:"sources"`
		Depth   int    `yaml:"depth" json:"depth"`
		Time    string `yaml:"time" json:"time"` // duration, e.g. "90s"
	} `yaml:"max" json:"max"`

	OpenRouter struct {
		Key   string `yaml:"key" json:"key"`
		Model string `yaml:"model" json:"model"`
		Base  string `yaml:"base" json:"base"`
	} `yaml:"openrouter" json:"openrouter"`

	Groq struct {
		Key   string `yaml:"key" json:"key"`
		Model string `yaml:"model" json:"model"`
		Base  string `yaml:"base" json:"base"`
	} `yaml:"groq" json:"groq"`

	Summary struct {
		Disable        bool `yaml:"disable" json:"disable"`
		MaxSources     int  `yaml:"maxSources" json:"maxSources"`
		PerSourceChars int  `yaml:"perSourceChars" json:"perSourceChars"`
	} `yaml:"summary" json:"summary"`

	Output struct {
		Dir     string   `yaml:"dir" json:"dir"`
		Formats []string `yaml:"formats" json:"formats"`
	} `yaml:"output" json:"output"`

	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields
// still at their zero or stock value. Flags should already have been
// parsed; file config supplies defaults without clobbering explicit flags.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	def := DefaultConfig()

	if cfg.WikiBaseURL == "" && fc.Wiki.URL != "" {
		cfg.WikiBaseURL = fc.Wiki.URL
	}
	if cfg.WikiUserAgent == "" && fc.Wiki.UserAgent != "" {
		cfg.WikiUserAgent = fc.Wiki.UserAgent
	}
	if (cfg.SnippetMaxChars == 0 || cfg.SnippetMaxChars == def.SnippetMaxChars) && fc.Wiki.SnippetChars > 0 {
		cfg.SnippetMaxChars = fc.Wiki.SnippetChars
	}

	if (cfg.MaxSources == 0 || cfg.MaxSources == def.MaxSources) && fc.Max.Sources > 0 {
		cfg.MaxSources = fc.Max.Sources
	}
	if (cfg.MaxDepth == 0 || cfg.MaxDepth == def.MaxDepth) && fc.Max.Depth > 0 {
		cfg.MaxDepth = fc.Max.Depth
	}
	if cfg.TimeLimit == 0 || cfg.TimeLimit == def.TimeLimit {
		if d, err := time.ParseDuration(fc.Max.Time); err == nil && d > 0 {
			cfg.TimeLimit = d
		}
	}

	if cfg.OpenRouterKey == "" && fc.OpenRouter.Key != "" {
		cfg.OpenRouterKey = fc.OpenRouter.Key
	}
	if cfg.OpenRouterModel == "" && fc.OpenRouter.Model != "" {
		cfg.OpenRouterModel = fc.OpenRouter.Model
	}
	if cfg.OpenRouterBase == "" && fc.OpenRouter.Base != "" {
		cfg.OpenRouterBase = fc.OpenRouter.Base
	}
	if cfg.GroqKey == "" && fc.Groq.Key != "" {
		cfg.GroqKey = fc.Groq.Key
	}
	if cfg.GroqModel == "" && fc.Groq.Model != "" {
		cfg.GroqModel = fc.Groq.Model
	}
	if cfg.GroqBase == "" && fc.Groq.Base != "" {
		cfg.GroqBase = fc.Groq.Base
	}

	if !cfg.NoSummary && fc.Summary.Disable {
		cfg.NoSummary = true
	}
	if (cfg.SummaryMaxSources == 0 || cfg.SummaryMaxSources == def.SummaryMaxSources) && fc.Summary.MaxSources > 0 {
		cfg.SummaryMaxSources = fc.Summary.MaxSources
	}
	if (cfg.SummaryPerSourceChars == 0 || cfg.SummaryPerSourceChars == def.SummaryPerSourceChars) && fc.Summary.PerSourceChars > 0 {
		cfg.SummaryPerSourceChars = fc.Summary.PerSourceChars
	}

	if (cfg.OutputDir == "" || cfg.OutputDir == def.OutputDir) && fc.Output.Dir != "" {
		cfg.OutputDir = fc.Output.Dir
	}
	if len(fc.Output.Formats) > 0 && sameFormats(cfg.Formats, DefaultFormats) {
		cfg.Formats = append([]string{}, fc.Output.Formats...)
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}

func sameFormats(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
