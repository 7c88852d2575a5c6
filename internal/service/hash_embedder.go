package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/minio/highwayhash"
)

// hashKey seeds the token hash. Changing it changes every vector.
var hashKey = []byte("embedding-server/hash-backend/v1")

// projectionsPerToken is how many vector slots each token touches.
const projectionsPerToken = 8

// HashEmbedder is a deterministic, offline model used for local development
// and tests. Each whitespace token is hashed into a few signed slots and the
// result is L2-normalised, so identical texts always map to identical vectors
// and texts sharing tokens have positive cosine similarity.
type HashEmbedder struct {
	dim int
}

// NewHashEmbedder returns a HashEmbedder producing dim-wide vectors.
func NewHashEmbedder(dim int) (*HashEmbedder, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("invalid hash dimensions: %d", dim)
	}
	if len(hashKey) != 32 {
		return nil, fmt.Errorf("hash key must be 32 bytes, got %d", len(hashKey))
	}
	return &HashEmbedder{dim: dim}, nil
}

// Encode implements Embedder. Texts longer than opts.MaxLength tokens are
// truncated before hashing.
func (h *HashEmbedder) Encode(ctx context.Context, texts []string, opts EncodeOptions) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out[i] = h.embed(truncateTokens(text, opts.MaxLength))
	}
	return out, nil
}

// Close is a no-op for the hash embedder.
func (h *HashEmbedder) Close() error {
	return nil
}

func (h *HashEmbedder) embed(tokens []string) []float32 {
	acc := make([]float64, h.dim)
	if len(tokens) == 0 {
		// Keep the vector non-zero so normalisation stays finite.
		tokens = []string{""}
	}
	for _, tok := range tokens {
		seed := highwayhash.Sum64([]byte(tok), hashKey)
		for p := 0; p < projectionsPerToken; p++ {
			seed = splitmix64(seed)
			slot := int(seed % uint64(h.dim))
			if seed&(1<<63) != 0 {
				acc[slot]--
			} else {
				acc[slot]++
			}
		}
	}

	var norm float64
	for _, v := range acc {
		norm += v * v
	}
	norm = math.Sqrt(norm)

	vec := make([]float32, h.dim)
	if norm == 0 {
		// Every projection cancelled out; fall back to a fixed unit vector.
		vec[0] = 1
		return vec
	}
	for i, v := range acc {
		vec[i] = float32(v / norm)
	}
	return vec
}

// truncateTokens splits on whitespace and keeps at most max tokens.
// max <= 0 disables truncation.
func truncateTokens(text string, max int) []string {
	tokens := strings.Fields(strings.ToLower(text))
	if max > 0 && len(tokens) > max {
		tokens = tokens[:max]
	}
	return tokens
}

func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
