package service

import (
	"context"

	"github.com/solenne-labs/profilechat/internal/domain"
)

// EmbeddingClient defines the interface for the external embedding capability
type EmbeddingClient interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
	GenerateEmbeddings(ctx context.Context, texts []string) ([][]float32, error)
}

// EmbeddingService validates arguments and converts upstream failures into
// the domain error taxonomy. It does not retry or cache.
type EmbeddingService struct {
	client EmbeddingClient
}

// NewEmbeddingService creates a new EmbeddingService instance
func NewEmbeddingService(client EmbeddingClient) *EmbeddingService {
	return &EmbeddingService{client: client}
}

// Embed converts a single text into a fixed-length dense vector.
func (s *EmbeddingService) Embed(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, domain.ErrEmptyText
	}

	embedding, err := s.client.GenerateEmbedding(ctx, text)
	if err != nil {
		return nil, domain.EmbeddingFailed(err)
	}
	return embedding, nil
}

// EmbedBatch converts a batch of texts into vectors, one upstream call.
func (s *EmbeddingService) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, domain.ErrEmptyBatch
	}

	embeddings, err := s.client.GenerateEmbeddings(ctx, texts)
	if err != nil {
		return nil, domain.EmbeddingFailed(err)
	}
	return embeddings, nil
}
