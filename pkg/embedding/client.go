// Package embedding provides the embedding-model client and the queue
// executor that writes vectors into target rows.
package embedding

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/memograph/memograph/pkg/config"
)

// Embedder turns text into a fixed-dimension vector. Implementations must
// be safe for concurrent use by the worker pool.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// OpenAIEmbedder calls an OpenAI-compatible embeddings endpoint.
type OpenAIEmbedder struct {
	api     *openai.Client
	model   openai.EmbeddingModel
	dim     int
	timeout time.Duration
}

// NewOpenAIEmbedder builds an embedder from config.
func NewOpenAIEmbedder(cfg *config.LLMConfig) *OpenAIEmbedder {
	apiConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiConfig.BaseURL = cfg.BaseURL
	}
	return &OpenAIEmbedder{
		api:     openai.NewClientWithConfig(apiConfig),
		model:   openai.EmbeddingModel(cfg.EmbeddingModel),
		dim:     cfg.EmbeddingDim,
		timeout: cfg.EmbeddingTimeout,
	}
}

// Embed returns the embedding for one text.
func (e *OpenAIEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, fmt.Errorf("cannot embed empty text")
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	resp, err := e.api.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Model: e.model,
		Input: []string{text},
	})
	if err != nil {
		return nil, fmt.Errorf("embedding request failed: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("embedding request returned no data")
	}

	vec := resp.Data[0].Embedding
	if e.dim > 0 && len(vec) != e.dim {
		return nil, fmt.Errorf("embedding has %d dimensions, expected %d", len(vec), e.dim)
	}
	return vec, nil
}
