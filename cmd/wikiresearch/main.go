// Package main is the entry point for the wikiresearch CLI: bounded
// Wikipedia research with optional AI summaries and report export.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jkorri/wikiresearch/internal/app"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	flagConfig  string
	flagEnvFile string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "wikiresearch",
	Short: "Bounded Wikipedia research with AI summaries",
	Long: `wikiresearch retrieves a capped, time-limited set of Wikipedia articles
for a topic, optionally asks an LLM provider chain (OpenRouter, then Groq)
to summarize them, and exports the result as Markdown, text, HTML, JSON,
or PDF.

Provider keys are read from OPENROUTER_API_KEY and GROQ_API_KEY; a .env
file next to the binary fills in any that the shell does not already
set. Either key may be absent, in
which case summaries degrade to a notice instead of failing the run.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := app.LoadEnvFiles(flagEnvFile); err != nil {
			return err
		}
		if flagVerbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
		return nil
	},
}

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "dotenv file with provider keys")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose logging")
}

// buildConfig merges flag values, the optional config file, and the
// environment into an app.Config. Explicit flags win over the file.
func buildConfig(cfg app.Config) (app.Config, error) {
	if flagConfig != "" {
		fc, err := app.LoadConfigFile(flagConfig)
		if err != nil {
			return cfg, err
		}
		app.ApplyFileConfig(&cfg, fc)
	}
	if cfg.OpenRouterKey == "" {
		cfg.OpenRouterKey = os.Getenv("OPENROUTER_API_KEY")
	}
	if cfg.GroqKey == "" {
		cfg.GroqKey = os.Getenv("GROQ_API_KEY")
	}
	cfg.Verbose = cfg.Verbose || flagVerbose
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
