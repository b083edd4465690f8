package matcher

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stylematch/stylematch-backend/models"
)

func TestCosineIdenticalVectors(t *testing.T) {
	v := []float64{0.3, -0.5, 0.8, 0.1}
	assert.InDelta(t, 1.0, Cosine(v, v), 1e-9)
}

func TestCosineOrthogonalVectors(t *testing.T) {
	assert.InDelta(t, 0.0, Cosine([]float64{1, 0}, []float64{0, 1}), 1e-9)
}

func TestCosineOppositeVectors(t *testing.T) {
	assert.InDelta(t, -1.0, Cosine([]float64{1, 2}, []float64{-1, -2}), 1e-9)
}

func TestCosineDegenerateInputs(t *testing.T) {
	assert.Equal(t, 0.0, Cosine([]float64{1, 2}, []float64{1, 2, 3}), "mismatched lengths")
	assert.Equal(t, 0.0, Cosine(nil, nil), "empty vectors")
	assert.Equal(t, 0.0, Cosine([]float64{0, 0}, []float64{1, 1}), "zero vector")
}

func TestFindBestMatch(t *testing.T) {
	query := []float64{1, 0}
	candidates := []Candidate{
		{Label: "far", Vector: []float64{0, 1}},
		{Label: "close", Vector: []float64{0.9, 0.1}},
		{Label: "middle", Vector: []float64{0.5, 0.5}},
	}

	best, sim := FindBestMatch(query, candidates)
	assert.Equal(t, "close", best.Label)
	assert.Greater(t, sim, 0.9)
}

func TestFindBestMatchEmpty(t *testing.T) {
	_, sim := FindBestMatch([]float64{1, 0}, nil)
	assert.Equal(t, -1.0, sim)
}

func TestFindBestMatchTieKeepsFirst(t *testing.T) {
	query := []float64{1, 0}
	candidates := []Candidate{
		{Label: "first", Vector: []float64{2, 0}},
		{Label: "second", Vector: []float64{3, 0}},
	}

	best, sim := FindBestMatch(query, candidates)
	assert.Equal(t, "first", best.Label)
	assert.InDelta(t, 1.0, sim, 1e-9)
}

func TestEmbeddingRoundTrip(t *testing.T) {
	original := []float64{0.25, -0.5, 1.0}

	s, err := MarshalEmbedding(original)
	require.NoError(t, err)

	parsed, err := ParseEmbedding(s)
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}

func TestParseEmbeddingRejectsGarbage(t *testing.T) {
	_, err := ParseEmbedding("not json")
	assert.Error(t, err)

	_, err = ParseEmbedding("[]")
	assert.Error(t, err, "empty vector is not a usable embedding")
}

// stubEmbedder returns fixed vectors keyed by input text.
type stubEmbedder struct {
	vectors map[string][]float64
	err     error
}

func (s *stubEmbedder) EmbedText(ctx context.Context, text string) ([]float64, error) {
	if s.err != nil {
		return nil, s.err
	}
	if v, ok := s.vectors[text]; ok {
		return v, nil
	}
	return []float64{0, 0, 1}, nil
}

func catalogItem(description string, vector []float64) models.CatalogItem {
	s, err := MarshalEmbedding(vector)
	if err != nil {
		panic(err)
	}
	return models.CatalogItem{Description: description, Embedding: s}
}

func TestIdentifyUsesCatalogAboveThreshold(t *testing.T) {
	catalog := []models.CatalogItem{
		catalogItem("Blue Denim Jacket", []float64{0, 1, 0}),
		catalogItem("Red Silk Saree", []float64{1, 0, 0}),
	}
	emb := &stubEmbedder{}

	got := Identify(context.Background(), emb, catalog, []float64{0.95, 0.05, 0})
	assert.Equal(t, "Red Silk Saree", got)
}

func TestIdentifyFallsBackBelowThreshold(t *testing.T) {
	// Catalog vectors are nearly orthogonal to the query, similarity ~0.
	catalog := []models.CatalogItem{
		catalogItem("Blue Denim Jacket", []float64{0, 1, 0}),
	}
	emb := &stubEmbedder{vectors: map[string][]float64{
		"blue denim jeans": {1, 0, 0},
	}}

	got := Identify(context.Background(), emb, catalog, []float64{1, 0.01, 0})
	assert.Equal(t, "blue jeans", got)
}

func TestIdentifyThresholdBoundary(t *testing.T) {
	// Integer components with perfect-square norms make the similarity
	// exact: query·vec = 12, |query| = 4, |vec| = 20, so 12/80 = 0.15 with
	// no rounding anywhere.
	query := []float64{4, 0, 0, 0, 0, 0}
	emb := &stubEmbedder{vectors: map[string][]float64{
		"a red dress": {4, 0, 0, 0, 0, 0},
	}}

	atThreshold := []models.CatalogItem{
		catalogItem("Olive Utility Jacket", []float64{3, 19, 5, 2, 1, 0}),
	}
	got := Identify(context.Background(), emb, atThreshold, query)
	assert.Equal(t, "Olive Utility Jacket", got, "similarity of exactly 0.15 keeps the catalog match")

	// One extra unit of norm drops the similarity to 12/(4*sqrt(401)),
	// about 0.1498, strictly below the threshold.
	justBelow := []models.CatalogItem{
		catalogItem("Olive Utility Jacket", []float64{3, 19, 5, 2, 1, 1}),
	}
	got = Identify(context.Background(), emb, justBelow, query)
	assert.Equal(t, "red dress", got, "similarity below 0.15 falls through to the fallback vocabulary")
}

func TestIdentifySkipsUnparsableCatalogEntries(t *testing.T) {
	catalog := []models.CatalogItem{
		{Description: "Corrupt Item", Embedding: "oops"},
		catalogItem("Red Silk Saree", []float64{1, 0, 0}),
	}
	emb := &stubEmbedder{}

	got := Identify(context.Background(), emb, catalog, []float64{1, 0, 0})
	assert.Equal(t, "Red Silk Saree", got)
}

func TestIdentifyEmptyCatalogUsesFallback(t *testing.T) {
	emb := &stubEmbedder{vectors: map[string][]float64{
		"a red dress": {1, 0, 0},
	}}

	got := Identify(context.Background(), emb, nil, []float64{1, 0, 0})
	assert.Equal(t, "red dress", got)
}

func TestIdentifyFallbackSurvivesEmbedderFailure(t *testing.T) {
	emb := &stubEmbedder{err: fmt.Errorf("embedding service down")}

	got := Identify(context.Background(), emb, nil, []float64{1, 0, 0})
	assert.Equal(t, "clothing item", got)
}
