// Package matcher implements embedding-similarity matching of clothing
// images against the catalog. Matching is a linear cosine-similarity scan;
// fine for a catalog of hundreds, and the known ceiling beyond that.
package matcher

import (
	"encoding/json"
	"fmt"
	"math"
)

// Candidate is one labeled vector in a match pool.
type Candidate struct {
	Label  string
	Vector []float64
}

// Cosine returns the cosine similarity of a and b, in [-1, 1].
// Mismatched lengths or zero vectors yield 0.
func Cosine(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// FindBestMatch returns the candidate with the strictly greatest cosine
// similarity to query. Ties keep the first-encountered candidate. The
// returned similarity is -1 when candidates is empty.
func FindBestMatch(query []float64, candidates []Candidate) (Candidate, float64) {
	var best Candidate
	bestSim := -1.0

	for _, c := range candidates {
		sim := Cosine(query, c.Vector)
		if sim > bestSim {
			bestSim = sim
			best = c
		}
	}

	return best, bestSim
}

// ParseEmbedding decodes a stored JSON float-array embedding.
func ParseEmbedding(s string) ([]float64, error) {
	var v []float64
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, fmt.Errorf("invalid embedding: %w", err)
	}
	if len(v) == 0 {
		return nil, fmt.Errorf("invalid embedding: empty vector")
	}
	return v, nil
}

// MarshalEmbedding encodes an embedding as the JSON text stored in the DB.
func MarshalEmbedding(v []float64) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode embedding: %w", err)
	}
	return string(raw), nil
}
