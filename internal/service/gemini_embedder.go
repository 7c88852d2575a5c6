package service

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// DefaultGeminiModel is the Gemini embedding model used when none is configured.
const DefaultGeminiModel = "gemini-embedding-001"

// GeminiEmbedder uses the Gemini embedding API through the Vertex AI backend.
type GeminiEmbedder struct {
	client    *genai.Client
	modelName string
}

// NewGeminiEmbedder creates a genai client for projectID/location.
func NewGeminiEmbedder(ctx context.Context, projectID, location, model string) (*GeminiEmbedder, error) {
	if projectID == "" {
		return nil, fmt.Errorf("GCP_PROJECT_ID is required for the gemini backend")
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend:  genai.BackendVertexAI,
		Project:  projectID,
		Location: location,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiEmbedder{client: client, modelName: model}, nil
}

// Encode implements Embedder. gemini-embedding-001 accepts one input per
// request, so texts are sent one at a time.
func (g *GeminiEmbedder) Encode(ctx context.Context, texts []string, _ EncodeOptions) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		contents := []*genai.Content{genai.NewContentFromText(text, genai.RoleUser)}

		result, err := g.client.Models.EmbedContent(ctx, g.modelName, contents, &genai.EmbedContentConfig{
			TaskType:     "RETRIEVAL_DOCUMENT",
			AutoTruncate: true,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to generate embedding: %w", err)
		}
		if len(result.Embeddings) == 0 || len(result.Embeddings[0].Values) == 0 {
			return nil, fmt.Errorf("no embeddings returned")
		}
		out[i] = result.Embeddings[0].Values
	}
	return out, nil
}

// Close is a no-op; the genai client holds no long-lived connections.
func (g *GeminiEmbedder) Close() error {
	return nil
}
