package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// DefaultOpenRouterBaseURL is the OpenRouter chat-completions endpoint.
const DefaultOpenRouterBaseURL = "https://openrouter.ai/api/v1/chat/completions"

// DefaultOpenRouterModel is used when no model is configured.
const DefaultOpenRouterModel = "tngtech/deepseek-r1t2-chimera:free"

// OpenRouter calls the OpenRouter HTTP API directly with bearer-token auth.
type OpenRouter struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
	// Timeout bounds each completion request. Zero means 60s.
	Timeout time.Duration
}

func (p *OpenRouter) Name() string { return "openrouter" }

// Configured reports whether a credential is present.
func (p *OpenRouter) Configured() bool { return strings.TrimSpace(p.APIKey) != "" }

func (p *OpenRouter) model() string {
	if p.Model != "" {
		return p.Model
	}
	return DefaultOpenRouterModel
}

func (p *OpenRouter) Chat(ctx context.Context, messages []Message, temperature float32) (string, error) {
	return p.complete(ctx, messages, temperature, p.timeout())
}

// Ping sends a one-word prompt with a short timeout to validate the key.
func (p *OpenRouter) Ping(ctx context.Context) error {
	_, err := p.complete(ctx, []Message{{Role: RoleUser, Content: "Ping"}}, 0, 15*time.Second)
	return err
}

func (p *OpenRouter) timeout() time.Duration {
	if p.Timeout > 0 {
		return p.Timeout
	}
	return 60 * time.Second
}

func (p *OpenRouter) complete(ctx context.Context, messages []Message, temperature float32, timeout time.Duration) (string, error) {
	if !p.Configured() {
		return "", fmt.Errorf("openrouter: missing API key")
	}
	base := p.BaseURL
	if base == "" {
		base = DefaultOpenRouterBaseURL
	}
	payload := openRouterRequest{Model: p.model(), Messages: messages, Temperature: temperature}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+p.APIKey)
	req.Header.Set("Content-Type", "application/json")

	hc := p.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}
	resp, err := hc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("openrouter status: %d", resp.StatusCode)
	}
	var out openRouterResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("openrouter: empty completion")
	}
	return out.Choices[0].Message.Content, nil
}

type openRouterRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float32   `json:"temperature"`
}

type openRouterResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}
