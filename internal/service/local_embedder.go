package service

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	ollama "github.com/ollama/ollama/api"
)

// DefaultLocalModel is the Ollama tag of BAAI's bge-m3.
const DefaultLocalModel = "bge-m3"

// LocalEmbedder runs a locally hosted model through the Ollama runtime.
type LocalEmbedder struct {
	client    *ollama.Client
	modelName string
}

// NewLocalEmbedder creates an embedder for modelName. A nil client is
// resolved from the environment (OLLAMA_HOST).
func NewLocalEmbedder(client *ollama.Client, modelName string) (*LocalEmbedder, error) {
	if client == nil {
		c, err := ollama.ClientFromEnvironment()
		if err != nil {
			return nil, fmt.Errorf("failed to create Ollama client: %w", err)
		}
		client = c
	}
	if modelName == "" {
		modelName = DefaultLocalModel
	}
	return &LocalEmbedder{client: client, modelName: modelName}, nil
}

// Encode implements Embedder. The context window is capped at
// opts.MaxLength tokens and Ollama truncates longer inputs.
func (l *LocalEmbedder) Encode(ctx context.Context, texts []string, opts EncodeOptions) ([][]float32, error) {
	truncate := true
	req := &ollama.EmbedRequest{
		Model:    l.modelName,
		Input:    texts,
		Truncate: &truncate,
	}
	if opts.MaxLength > 0 {
		req.Options = map[string]any{"num_ctx": opts.MaxLength}
	}

	log.Debugf("[Local Embedder] Embedding %d texts with %s", len(texts), l.modelName)
	resp, err := l.client.Embed(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("ollama embed request failed: %w", err)
	}
	if len(resp.Embeddings) != len(texts) {
		return nil, fmt.Errorf("ollama returned %d embeddings for %d texts", len(resp.Embeddings), len(texts))
	}
	return resp.Embeddings, nil
}

// Close is a no-op for the local embedder.
func (l *LocalEmbedder) Close() error {
	return nil
}
