package api

import (
	"context"

	"github.com/stylematch/stylematch-backend/stylist"
)

// EmbeddingService is the embedding-model handle the handlers depend on.
// *clip.Client satisfies it; tests substitute a double.
type EmbeddingService interface {
	EmbedText(ctx context.Context, text string) ([]float64, error)
	EmbedImage(ctx context.Context, image []byte) ([]float64, error)
}

var (
	embeddings EmbeddingService
	outfits    *stylist.Generator
)

// Configure wires the handlers to their external collaborators. Called once
// from main before the server starts.
func Configure(emb EmbeddingService, gen *stylist.Generator) {
	embeddings = emb
	outfits = gen
}
