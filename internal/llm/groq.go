package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultGroqBaseURL is Groq's OpenAI-compatible API base.
const DefaultGroqBaseURL = "https://api.groq.com/openai/v1"

// DefaultGroqModel is used when no model is configured.
const DefaultGroqModel = "mixtral-8x7b-32768"

// Groq calls the Groq API through the OpenAI-compatible client library.
// The adapter extracts content defensively so response-shape differences
// never leak into the chain.
type Groq struct {
	APIKey  string
	Model   string
	BaseURL string

	client *openai.Client
}

func (p *Groq) Name() string { return "groq" }

// Configured reports whether a credential is present.
func (p *Groq) Configured() bool { return strings.TrimSpace(p.APIKey) != "" }

func (p *Groq) inner() *openai.Client {
	if p.client == nil {
		cfg := openai.DefaultConfig(p.APIKey)
		cfg.BaseURL = p.BaseURL
		if cfg.BaseURL == "" {
			cfg.BaseURL = DefaultGroqBaseURL
		}
		p.client = openai.NewClientWithConfig(cfg)
	}
	return p.client
}

func (p *Groq) model() string {
	if p.Model != "" {
		return p.Model
	}
	return DefaultGroqModel
}

func (p *Groq) Chat(ctx context.Context, messages []Message, temperature float32) (string, error) {
	if !p.Configured() {
		return "", fmt.Errorf("groq: missing API key")
	}
	req := openai.ChatCompletionRequest{
		Model:       p.model(),
		Temperature: temperature,
		Messages:    toOpenAIMessages(messages),
	}
	resp, err := p.inner().CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("groq: %w", err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("groq: empty completion")
	}
	return resp.Choices[0].Message.Content, nil
}

// Ping sends a one-word prompt with a short timeout to validate the key.
func (p *Groq) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	_, err := p.Chat(ctx, []Message{{Role: RoleUser, Content: "Ping"}}, 0)
	return err
}

func toOpenAIMessages(messages []Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		out = append(out, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}
	return out
}
