package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Chain tries providers strictly in order: the primary is always attempted
// before the fallback, a failure logs a warning and falls through, and only
// the combined failure of every provider is surfaced. No load balancing.
type Chain struct {
	Providers []Provider
}

// Chat runs the fallback sequence and returns the first successful content.
func (c *Chain) Chat(ctx context.Context, messages []Message, temperature float32) (string, error) {
	if len(c.Providers) == 0 {
		return "", ErrNoProvider
	}
	var errs []error
	for _, p := range c.Providers {
		out, err := p.Chat(ctx, messages, temperature)
		if err == nil {
			return out, nil
		}
		log.Warn().Err(err).Str("provider", p.Name()).Msg("provider call failed; trying next")
		errs = append(errs, err)
	}
	return "", fmt.Errorf("all providers failed: %w", errors.Join(errs...))
}
