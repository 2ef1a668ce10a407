// Package llm wraps the chat-completion model used by segmentation and
// extraction behind a small interface so tests can stub it.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/memograph/memograph/pkg/config"
)

// Client is the completion seam. Implementations return the raw model
// output for a system+user prompt pair.
type Client interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// OpenAIClient calls an OpenAI-compatible chat completions endpoint.
type OpenAIClient struct {
	api     *openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAIClient builds a client from config. A custom BaseURL points the
// client at any OpenAI-compatible server.
func NewOpenAIClient(cfg *config.LLMConfig) *OpenAIClient {
	apiConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiConfig.BaseURL = cfg.BaseURL
	}
	return &OpenAIClient{
		api:     openai.NewClientWithConfig(apiConfig),
		model:   cfg.Model,
		timeout: cfg.CompletionTimeout,
	}
}

// Complete runs one chat completion in JSON mode.
func (c *OpenAIClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0.1,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	slog.Debug("Chat completion finished",
		"model", c.model,
		"duration", time.Since(start).String(),
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens)
	return resp.Choices[0].Message.Content, nil
}

// ParseStrict decodes a model JSON response into out, rejecting unknown
// fields. Markdown code fences around the payload are tolerated.
func ParseStrict(raw string, out interface{}) error {
	payload := strings.TrimSpace(raw)
	payload = strings.TrimPrefix(payload, "```json")
	payload = strings.TrimPrefix(payload, "```")
	payload = strings.TrimSuffix(payload, "```")
	payload = strings.TrimSpace(payload)

	dec := json.NewDecoder(bytes.NewReader([]byte(payload)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("model response does not match schema: %w", err)
	}
	return nil
}
