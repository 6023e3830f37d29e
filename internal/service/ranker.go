package service

import (
	"math"
	"sort"

	"github.com/solenne-labs/profilechat/internal/domain"
)

// CosineSimilarity computes the normalized dot product of two vectors,
// accumulating in float64. If either vector has zero magnitude the score is
// defined as 0. Mismatched dimensions are a data error, not a skip.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, domain.ErrDimensionMismatch
	}

	var dot, magA, magB float64
	for i := range a {
		x := float64(a[i])
		y := float64(b[i])
		dot += x * y
		magA += x * x
		magB += y * y
	}

	magA = math.Sqrt(magA)
	magB = math.Sqrt(magB)

	if magA == 0 || magB == 0 {
		return 0, nil
	}

	return dot / (magA * magB), nil
}

// Rank scores candidates against the query vector by cosine similarity and
// returns at most topK results in non-increasing score order. Ties keep the
// candidates' original relative order.
func Rank(query []float32, candidates []*domain.EmbeddingRecord, topK int) ([]domain.RetrievalResult, error) {
	if topK <= 0 {
		return nil, domain.ErrInvalidTopK
	}
	if len(candidates) == 0 {
		return []domain.RetrievalResult{}, nil
	}

	results := make([]domain.RetrievalResult, 0, len(candidates))
	for _, candidate := range candidates {
		score, err := CosineSimilarity(query, candidate.Embedding)
		if err != nil {
			return nil, err
		}
		results = append(results, domain.RetrievalResult{
			Text:    candidate.Text,
			Score:   score,
			Section: candidate.Section,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}
