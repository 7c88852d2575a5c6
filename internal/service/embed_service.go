package service

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
)

// ---- Service interface + implementation ------------------------------------

// EmbedService turns validated text batches into dense vectors.
type EmbedService interface {
	// EmbedBatch returns one vector per text in the same order. An empty
	// batch yields an empty, non-nil result without touching the model.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	// EmbedOne embeds a single text. No batch limit applies.
	EmbedOne(ctx context.Context, text string) ([]float32, error)
}

// Limits bounds the work done per request.
type Limits struct {
	MaxBatchSize   int // largest batch accepted by EmbedBatch
	SubBatchSize   int // upper bound of the chunk handed to the model
	MaxTokenLength int // per-text truncation applied by the model
}

type embedService struct {
	model  Embedder
	limits Limits
}

// NewEmbedService wires the loaded model and the request limits.
func NewEmbedService(model Embedder, limits Limits) EmbedService {
	return &embedService{model: model, limits: limits}
}

// EmbedBatch validates the batch size, then feeds the model in sub-batches.
func (s *embedService) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}
	if len(texts) > s.limits.MaxBatchSize {
		return nil, BatchTooLarge(len(texts), s.limits.MaxBatchSize)
	}

	log.Infof("[Embed Service] Generating embeddings for %d texts", len(texts))
	return s.encode(ctx, texts)
}

// EmbedOne runs the model on a one-element batch.
func (s *embedService) EmbedOne(ctx context.Context, text string) ([]float32, error) {
	log.Debugf("[Embed Service] Generating embedding for single text (%d bytes)", len(text))
	vecs, err := s.encode(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

// encode splits texts into chunks of min(len(texts), SubBatchSize) and
// concatenates the model output, preserving order.
func (s *embedService) encode(ctx context.Context, texts []string) ([][]float32, error) {
	opts := EncodeOptions{
		BatchSize: min(len(texts), s.limits.SubBatchSize),
		MaxLength: s.limits.MaxTokenLength,
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = len(texts)
	}

	out := make([][]float32, 0, len(texts))
	for start := 0; start < len(texts); start += opts.BatchSize {
		end := min(start+opts.BatchSize, len(texts))
		chunk := texts[start:end]

		vecs, err := s.model.Encode(ctx, chunk, opts)
		if err != nil {
			log.Errorf("[Embed Service] Error generating embeddings: %v", err)
			return nil, InternalError(err)
		}
		if len(vecs) != len(chunk) {
			err := fmt.Errorf("model returned %d vectors for %d texts", len(vecs), len(chunk))
			log.Errorf("[Embed Service] Error generating embeddings: %v", err)
			return nil, InternalError(err)
		}
		out = append(out, vecs...)
	}

	log.Debugf("[Embed Service] Encoded %d texts in sub-batches of %d", len(texts), opts.BatchSize)
	return out, nil
}
