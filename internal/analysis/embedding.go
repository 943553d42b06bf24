package analysis

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Embedder turns text into a fixed-dimension vector. Implementations must be
// safe for concurrent use and deterministic for identical input.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	ModelName() string
	ModelVersion() string
}

type geminiEmbedder struct {
	client *genai.Client
	model  string
}

// NewGeminiEmbedder builds the production embedder backed by the Gemini
// embedding API. A client construction failure is a ModelLoadError: fatal at
// startup, never per-request.
func NewGeminiEmbedder(ctx context.Context, apiKey string) (Embedder, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, &ModelLoadError{Err: fmt.Errorf("failed to create gemini client: %w", err)}
	}

	return &geminiEmbedder{
		client: client,
		model:  "text-embedding-004",
	}, nil
}

// Embed implements Embedder.
func (g *geminiEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	// Truncate text if too long (max ~10000 tokens for embedding)
	if len(text) > 40000 {
		text = text[:40000]
	}

	result, err := g.client.Models.EmbedContent(ctx, g.model, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if result == nil || len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("empty embedding result")
	}

	return result.Embeddings[0].Values, nil
}

// ModelName implements Embedder.
func (g *geminiEmbedder) ModelName() string { return g.model }

// ModelVersion implements Embedder.
func (g *geminiEmbedder) ModelVersion() string { return "004" }
