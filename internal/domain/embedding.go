package domain

import "time"

// EmbeddingRecord is a stored (text, vector, section) triple. Records are
// created only by a full reindex, never mutated, and destroyed only by the
// next reindex replacing the whole set.
type EmbeddingRecord struct {
	ID        string
	Text      string
	Embedding []float32
	Section   Section
	CreatedAt time.Time
}

// ValidateEmbeddingRecord validates an EmbeddingRecord instance.
func ValidateEmbeddingRecord(r *EmbeddingRecord) error {
	if r == nil {
		return NewDomainError(ErrCodeInvalidInput, "embedding record cannot be nil")
	}
	if r.Text == "" {
		return NewDomainError(ErrCodeInvalidInput, "embedding record text cannot be empty")
	}
	if len(r.Embedding) == 0 {
		return NewDomainError(ErrCodeInvalidInput, "embedding record vector cannot be empty")
	}
	if !IsValidSection(r.Section) {
		return NewDomainError(ErrCodeInvalidInput, "embedding record section is invalid: "+string(r.Section))
	}
	return nil
}

// RetrievalResult is a scored record produced per query and never persisted.
// Score is cosine similarity, in [-1, 1].
type RetrievalResult struct {
	Text    string
	Score   float64
	Section Section
}
