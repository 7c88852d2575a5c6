package service

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
)

// Model backends understood by LoadModel.
const (
	BackendOllama = "ollama"
	BackendVertex = "vertex"
	BackendGemini = "gemini"
	BackendHash   = "hash"
)

// ModelSpec selects and configures the model backend.
type ModelSpec struct {
	Backend         string
	Name            string
	HashDimensions  int
	ProjectID       string
	Location        string
	CredentialsFile string
	MaxTokenLength  int
}

// probeText is encoded once at startup to prove the model answers.
const probeText = "health check"

// LoadModel builds the configured backend and runs a single probe encode.
// It returns the model handle and its output dimensionality. Any error means
// the model is unusable and the process must not start serving.
func LoadModel(ctx context.Context, spec ModelSpec) (Embedder, int, error) {
	log.Infof("[Model Loader] Loading %s model %q...", spec.Backend, spec.Name)

	model, err := newBackend(ctx, spec)
	if err != nil {
		return nil, 0, err
	}

	vecs, err := model.Encode(ctx, []string{probeText}, EncodeOptions{BatchSize: 1, MaxLength: spec.MaxTokenLength})
	if err != nil {
		_ = model.Close()
		return nil, 0, fmt.Errorf("model probe failed: %w", err)
	}
	if len(vecs) != 1 || len(vecs[0]) == 0 {
		_ = model.Close()
		return nil, 0, fmt.Errorf("model probe returned no vector")
	}

	log.Infof("[Model Loader] Model loaded successfully (dimensions: %d)", len(vecs[0]))
	return model, len(vecs[0]), nil
}

func newBackend(ctx context.Context, spec ModelSpec) (Embedder, error) {
	switch spec.Backend {
	case BackendOllama:
		return NewLocalEmbedder(nil, spec.Name)
	case BackendVertex:
		return NewVertexEmbedder(ctx, spec.ProjectID, spec.Location, spec.Name, spec.CredentialsFile)
	case BackendGemini:
		return NewGeminiEmbedder(ctx, spec.ProjectID, spec.Location, spec.Name)
	case BackendHash:
		return NewHashEmbedder(spec.HashDimensions)
	default:
		return nil, fmt.Errorf("unknown model backend %q", spec.Backend)
	}
}
