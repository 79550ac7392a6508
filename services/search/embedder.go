package search

import (
	"context"
	"fmt"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Embedder turns free text into an embedding vector.
type Embedder interface {
	EmbedQuery(ctx context.Context, text string) ([]float64, error)
}

// GeminiEmbedder embeds queries with the Gemini text-embedding model.
type GeminiEmbedder struct {
	model *genai.EmbeddingModel
}

func NewGeminiEmbedder(apiKey string) *GeminiEmbedder {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		panic(fmt.Sprintf("failed to create Gemini client: %v", err))
	}

	model := client.EmbeddingModel("models/text-embedding-004")
	return &GeminiEmbedder{model: model}
}

func (g *GeminiEmbedder) EmbedQuery(ctx context.Context, text string) ([]float64, error) {
	res, err := g.model.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("gemini embed error: %w", err)
	}
	if res.Embedding == nil || len(res.Embedding.Values) == 0 {
		return nil, fmt.Errorf("gemini returned an empty embedding")
	}

	vec := make([]float64, len(res.Embedding.Values))
	for i, v := range res.Embedding.Values {
		vec[i] = float64(v)
	}
	return vec, nil
}
