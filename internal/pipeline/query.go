package pipeline

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Limits accepted by Validate. These mirror the ranges offered to the user.
const (
	MinSources = 1
	MaxSources = 20
	MinDepth   = 1
	MaxDepth   = 3
	MinTime    = 30 * time.Second
	MaxTime    = 300 * time.Second
)

// Query is the immutable input to one pipeline run.
type Query struct {
	// Text is the research topic.
	Text string
	// MaxSources caps both the search fanout and accepted results.
	MaxSources int
	// MaxDepth is accepted and validated but does not yet influence the
	// retrieval loop; it is reserved for follow-link expansion.
	MaxDepth int
	// TimeLimit is the wall-clock budget for the whole run.
	TimeLimit time.Duration
}

// DefaultQuery returns a Query for topic with the default limits.
func DefaultQuery(topic string) Query {
	return Query{Text: topic, MaxSources: 5, MaxDepth: 2, TimeLimit: 120 * time.Second}
}

// Validate range-checks every field.
func (q Query) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return errors.New("query: topic is required")
	}
	if q.MaxSources < MinSources || q.MaxSources > MaxSources {
		return fmt.Errorf("query: max sources must be in [%d,%d], got %d", MinSources, MaxSources, q.MaxSources)
	}
	if q.MaxDepth < MinDepth || q.MaxDepth > MaxDepth {
		return fmt.Errorf("query: depth must be in [%d,%d], got %d", MinDepth, MaxDepth, q.MaxDepth)
	}
	if q.TimeLimit < MinTime || q.TimeLimit > MaxTime {
		return fmt.Errorf("query: time limit must be in [%s,%s], got %s", MinTime, MaxTime, q.TimeLimit)
	}
	return nil
}
