// Package embed maps text to fixed-width vectors via an
// OpenAI-compatible embeddings endpoint.
package embed

import (
	"context"
	"math"
)

// Embedder maps text to a fixed-width vector. Implementations return
// vectors of the same dimension for the lifetime of a run.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Normalize scales v to unit length so inner product equals cosine
// similarity. A zero vector is returned unchanged.
func Normalize(v []float32) []float32 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	if sum == 0 {
		return v
	}
	inv := float32(1 / math.Sqrt(sum))
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = x * inv
	}
	return out
}
