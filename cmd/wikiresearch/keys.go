package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jkorri/wikiresearch/internal/app"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Validate the configured provider API keys",
	Long: `Keys sends a minimal ping request to each configured LLM provider and
reports whether the credential works. Providers without a key are listed
as not set. The command never fails the process; it only reports.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig(app.DefaultConfig())
		if err != nil {
			return err
		}
		providers := app.Providers(cfg)
		if len(providers) == 0 {
			fmt.Println("no provider keys configured (set OPENROUTER_API_KEY or GROQ_API_KEY)")
			return nil
		}
		for _, p := range providers {
			if err := p.Ping(cmd.Context()); err != nil {
				fmt.Printf("%s: validation failed: %v\n", p.Name(), err)
				continue
			}
			fmt.Printf("%s: key OK\n", p.Name())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
}
