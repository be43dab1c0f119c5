package provider

import (
	"context"
	"fmt"

	"cribinfo/internal/domain"
)

// Embedder converts text to a fixed-length vector. Query and property
// vectors must come from the same backend to live in a comparable space.
//
// Empty or whitespace-only input yields the zero vector without touching
// the remote backend. Failures carry domain.ErrEmbeddingUnavailable.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Dimensions() int
}

func zeroVector(dims int) []float32 {
	return make([]float32, dims)
}

// checkDimensions rejects vectors whose width disagrees with the
// configured dimensionality. That is a deployment mistake (wrong model for
// the persisted vector width), not a per-query condition.
func checkDimensions(vec []float32, want int) ([]float32, error) {
	if len(vec) != want {
		return nil, domain.Wrap(domain.ErrEmbeddingUnavailable, "embedding dimensions",
			fmt.Errorf("backend returned %d dimensions, configured for %d", len(vec), want))
	}
	return vec, nil
}
