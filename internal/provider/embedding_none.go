package provider

import "context"

// NoopEmbedder always returns the zero vector. Used when vector ranking is
// turned off entirely; search degrades to filters only. It never fails.
type NoopEmbedder struct {
	dims int
}

// NewNoopEmbedder creates a disabled embedding backend.
func NewNoopEmbedder(dims int) *NoopEmbedder {
	return &NoopEmbedder{dims: dims}
}

// Dimensions implements Embedder.
func (c *NoopEmbedder) Dimensions() int { return c.dims }

// Embed implements Embedder.
func (c *NoopEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return zeroVector(c.dims), nil
}
