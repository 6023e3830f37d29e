package service

import (
	"math"
	"testing"

	"github.com/solenne-labs/profilechat/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(text string, embedding []float32) *domain.EmbeddingRecord {
	return &domain.EmbeddingRecord{
		Text:      text,
		Embedding: embedding,
		Section:   domain.SectionOther,
	}
}

func TestCosineSimilarity_IdenticalVectors(t *testing.T) {
	score, err := CosineSimilarity([]float32{1, 2, 3}, []float32{1, 2, 3})

	assert.NoError(t, err)
	assert.InDelta(t, 1.0, score, 1e-6)
}

func TestCosineSimilarity_OppositeVectors(t *testing.T) {
	score, err := CosineSimilarity([]float32{1, 0}, []float32{-1, 0})

	assert.NoError(t, err)
	assert.InDelta(t, -1.0, score, 1e-6)
}

func TestCosineSimilarity_OrthogonalVectors(t *testing.T) {
	score, err := CosineSimilarity([]float32{1, 0}, []float32{0, 1})

	assert.NoError(t, err)
	assert.InDelta(t, 0.0, score, 1e-6)
}

func TestCosineSimilarity_ZeroVectorScoresZero(t *testing.T) {
	score, err := CosineSimilarity([]float32{1, 2, 3}, []float32{0, 0, 0})

	assert.NoError(t, err)
	assert.Equal(t, 0.0, score)
	assert.False(t, math.IsNaN(score))
}

func TestCosineSimilarity_DimensionMismatch(t *testing.T) {
	_, err := CosineSimilarity([]float32{1, 2}, []float32{1, 2, 3})

	assert.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDimensionMismatch)
}

func TestCosineSimilarity_BoundedScores(t *testing.T) {
	vectors := [][]float32{
		{0.3, -0.7, 1.2},
		{-4, 5, -6},
		{0.001, 0.002, 0.003},
		{100, -200, 300},
	}

	for _, a := range vectors {
		for _, b := range vectors {
			score, err := CosineSimilarity(a, b)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, score, -1.0-1e-9)
			assert.LessOrEqual(t, score, 1.0+1e-9)
		}
	}
}

func TestRank_SortedDescending(t *testing.T) {
	query := []float32{1, 0}
	candidates := []*domain.EmbeddingRecord{
		record("orthogonal", []float32{0, 1}),
		record("aligned", []float32{2, 0}),
		record("opposite", []float32{-1, 0}),
	}

	results, err := Rank(query, candidates, 3)

	assert.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "aligned", results[0].Text)
	assert.Equal(t, "orthogonal", results[1].Text)
	assert.Equal(t, "opposite", results[2].Text)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
}

func TestRank_TiesKeepOriginalOrder(t *testing.T) {
	// First two candidates score identically against the query; the third is
	// clearly worse. The tied pair must keep its input order.
	query := []float32{1, 0, 0}
	candidates := []*domain.EmbeddingRecord{
		record("first tie", []float32{3, 1, 0}),
		record("second tie", []float32{3, 0, 1}),
		record("low", []float32{1, 3, 0}),
	}

	results, err := Rank(query, candidates, 3)

	assert.NoError(t, err)
	require.Len(t, results, 3)
	assert.InDelta(t, results[0].Score, results[1].Score, 1e-9)
	assert.Equal(t, "first tie", results[0].Text)
	assert.Equal(t, "second tie", results[1].Text)
	assert.Equal(t, "low", results[2].Text)
}

func TestRank_TopKBound(t *testing.T) {
	query := []float32{1, 0}
	candidates := []*domain.EmbeddingRecord{
		record("a", []float32{1, 0}),
		record("b", []float32{0, 1}),
	}

	results, err := Rank(query, candidates, 1)
	assert.NoError(t, err)
	assert.Len(t, results, 1)

	results, err = Rank(query, candidates, 10)
	assert.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestRank_EmptyCandidates(t *testing.T) {
	results, err := Rank([]float32{1, 2}, nil, 3)

	assert.NoError(t, err)
	assert.Empty(t, results)
}

func TestRank_NonPositiveTopK(t *testing.T) {
	candidates := []*domain.EmbeddingRecord{record("a", []float32{1})}

	_, err := Rank([]float32{1}, candidates, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidTopK)

	_, err = Rank([]float32{1}, candidates, -2)
	assert.ErrorIs(t, err, domain.ErrInvalidTopK)
}

func TestRank_DimensionMismatchSurfaces(t *testing.T) {
	candidates := []*domain.EmbeddingRecord{
		record("good", []float32{1, 0}),
		record("bad", []float32{1, 0, 0}),
	}

	results, err := Rank([]float32{1, 0}, candidates, 2)

	assert.Nil(t, results)
	assert.ErrorIs(t, err, domain.ErrDimensionMismatch)
}

func TestRank_ZeroVectorCandidateIncluded(t *testing.T) {
	candidates := []*domain.EmbeddingRecord{
		record("zero", []float32{0, 0}),
		record("aligned", []float32{1, 0}),
	}

	results, err := Rank([]float32{1, 0}, candidates, 2)

	assert.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "aligned", results[0].Text)
	assert.Equal(t, "zero", results[1].Text)
	assert.Equal(t, 0.0, results[1].Score)
}
