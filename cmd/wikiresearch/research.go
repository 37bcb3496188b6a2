package main

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jkorri/wikiresearch/internal/app"
)

var researchCmd = &cobra.Command{
	Use:   "research <topic>",
	Short: "Research a topic and export the report",
	Long: `Research searches Wikipedia for the topic, fetches a plain-text extract
per result under the time limit, and writes the report in the selected
formats. The run fails only when search fails or no content at all could
be retrieved; individual fetch failures are skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := strings.Join(args, " ")

		cfg := app.DefaultConfig()
		cfg.MaxSources, _ = cmd.Flags().GetInt("sources")
		cfg.MaxDepth, _ = cmd.Flags().GetInt("depth")
		timeLimit, _ := cmd.Flags().GetInt("time-limit")
		cfg.TimeLimit = time.Duration(timeLimit) * time.Second
		cfg.OutputDir, _ = cmd.Flags().GetString("out")
		cfg.Formats, _ = cmd.Flags().GetStringSlice("format")
		cfg.NoSummary, _ = cmd.Flags().GetBool("no-summary")
		cfg.WikiBaseURL, _ = cmd.Flags().GetString("wiki-url")
		cfg.SnippetMaxChars, _ = cmd.Flags().GetInt("snippet-chars")

		cfg, err := buildConfig(cfg)
		if err != nil {
			return err
		}
		a, err := app.New(cfg)
		if err != nil {
			return err
		}
		if err := a.Run(cmd.Context(), topic); err != nil {
			log.Error().Err(err).Msg("research failed")
			return err
		}
		return nil
	},
}

func init() {
	researchCmd.Flags().Int("sources", 5, "number of articles to retrieve (1-20)")
	researchCmd.Flags().Int("depth", 2, "search depth level (1-3)")
	researchCmd.Flags().Int("time-limit", 120, "wall-clock budget in seconds (30-300)")
	researchCmd.Flags().String("out", ".", "directory for exported reports")
	researchCmd.Flags().StringSlice("format", app.DefaultFormats, "export formats: markdown, text, html, json, pdf")
	researchCmd.Flags().Bool("no-summary", false, "skip the AI summary")
	researchCmd.Flags().String("wiki-url", "", "MediaWiki API endpoint (default: English Wikipedia)")
	researchCmd.Flags().Int("snippet-chars", 1200, "max characters kept per article extract")

	rootCmd.AddCommand(researchCmd)
}
