// Package llm holds the chat-completion providers and the ordered fallback
// chain used for best-effort summarization. Provider-specific response
// shapes stay inside each adapter; the chain only sees plain strings.
package llm

import (
	"context"
	"errors"
)

// Message is one chat turn in the shared request shape.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Provider is a single chat-completion backend.
type Provider interface {
	Name() string
	// Chat sends the messages and returns the assistant content.
	Chat(ctx context.Context, messages []Message, temperature float32) (string, error)
	// Ping issues a minimal request to verify the credential works.
	Ping(ctx context.Context) error
}

// ErrNoProvider indicates no provider has a configured credential.
var ErrNoProvider = errors.New("no LLM provider configured")

const (
	RoleSystem = "system"
	RoleUser   = "user"
)
