package service

import "context"

// EncodeOptions tunes a single Encode call.
type EncodeOptions struct {
	// BatchSize is the number of texts the model should process together.
	BatchSize int
	// MaxLength is the per-text token limit. Longer texts are truncated by
	// the model, never rejected.
	MaxLength int
}

// Embedder is the handle on a loaded embedding model.
//
// Implementations must be safe for concurrent use: a single Embedder is
// shared read-only by every request for the lifetime of the process.
type Embedder interface {
	// Encode returns one dense vector per text, in input order.
	Encode(ctx context.Context, texts []string, opts EncodeOptions) ([][]float32, error)
	// Close releases the underlying client resources.
	Close() error
}
