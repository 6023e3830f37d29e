package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/solenne-labs/profilechat/internal/domain"
	"github.com/solenne-labs/profilechat/internal/telemetry"
)

// DefaultTopK is the number of results retrieved when the caller does not ask
// for a specific count.
const DefaultTopK = 3

// EmbeddingStore defines the vector store interface for retrieval operations
type EmbeddingStore interface {
	ReplaceAll(ctx context.Context, records []*domain.EmbeddingRecord) error
	FetchAll(ctx context.Context) ([]*domain.EmbeddingRecord, error)
}

// UUIDGenerator defines interface for UUID generation (for testing)
type UUIDGenerator interface {
	NewString() string
}

// DefaultUUIDGenerator is the default UUID generator using google/uuid
type DefaultUUIDGenerator struct{}

// NewString generates a new UUID string
func (g *DefaultUUIDGenerator) NewString() string {
	return uuid.NewString()
}

// RetrievalOutput is what Retrieve hands to the chat layer: the grounded
// system prompt plus the raw retrieved texts for audit logging.
type RetrievalOutput struct {
	Prompt         string
	RetrievedTexts []string
	Results        []domain.RetrievalResult
}

// RetrievalService drives the embed, fetch, rank, assemble pipeline over a
// profile's embedding records.
type RetrievalService struct {
	embedder *EmbeddingService
	store    EmbeddingStore
	persona  domain.PersonaConfig
	uuidGen  UUIDGenerator
}

// NewRetrievalService creates a new RetrievalService instance
func NewRetrievalService(embedder *EmbeddingService, store EmbeddingStore, persona domain.PersonaConfig) *RetrievalService {
	return &RetrievalService{
		embedder: embedder,
		store:    store,
		persona:  persona,
		uuidGen:  &DefaultUUIDGenerator{},
	}
}

// NewRetrievalServiceWithUUIDGen creates a RetrievalService with a custom UUID generator (for testing)
func NewRetrievalServiceWithUUIDGen(embedder *EmbeddingService, store EmbeddingStore, persona domain.PersonaConfig, uuidGen UUIDGenerator) *RetrievalService {
	return &RetrievalService{
		embedder: embedder,
		store:    store,
		persona:  persona,
		uuidGen:  uuidGen,
	}
}

// Retrieve builds a grounded system prompt for the given user message. An
// empty store is degraded-mode success: the prompt carries the no-context
// sentinel and RetrievedTexts is empty. Never writes to the store.
func (s *RetrievalService) Retrieve(ctx context.Context, query string, topK int) (*RetrievalOutput, error) {
	ctx, span := telemetry.StartSpan(ctx, "RetrievalService.Retrieve", telemetry.SpanAttributes{
		Operation: "retrieve",
	})
	defer span.End()

	if topK <= 0 {
		topK = DefaultTopK
	}

	queryEmbedding, err := s.embedder.Embed(ctx, query)
	if err != nil {
		span.SetError(err)
		return nil, domain.RetrievalFailed(err)
	}

	candidates, err := s.store.FetchAll(ctx)
	if err != nil {
		span.SetError(err)
		return nil, domain.RetrievalFailed(err)
	}

	if len(candidates) == 0 {
		log.Println("retrieval: store is empty, answering without profile context")
	}

	results, err := Rank(queryEmbedding, candidates, topK)
	if err != nil {
		span.SetError(err)
		return nil, domain.RetrievalFailed(err)
	}

	contextBlock := BuildContext(results)
	prompt := BuildSystemPrompt(contextBlock, s.persona)

	texts := make([]string, len(results))
	for i, result := range results {
		texts[i] = result.Text
	}

	return &RetrievalOutput{
		Prompt:         prompt,
		RetrievedTexts: texts,
		Results:        results,
	}, nil
}

// Reindex fully regenerates the stored embeddings from the given profile:
// chunk, batch-embed, then replace the whole record set. Idempotent for the
// same profile. Not safe to run concurrently with itself.
func (s *RetrievalService) Reindex(ctx context.Context, profile *domain.Profile) (int, error) {
	ctx, span := telemetry.StartSpan(ctx, "RetrievalService.Reindex", telemetry.SpanAttributes{
		Operation: "reindex",
	})
	defer span.End()

	chunks := ChunkProfile(profile)
	if len(chunks) == 0 {
		if err := s.store.ReplaceAll(ctx, nil); err != nil {
			span.SetError(err)
			return 0, err
		}
		log.Println("reindex: profile produced no chunks, store cleared")
		return 0, nil
	}

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Text
	}

	embeddings, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		span.SetError(err)
		return 0, err
	}
	if len(embeddings) != len(chunks) {
		err := domain.NewDomainError(domain.ErrCodeEmbeddingFailed, "embedding count does not match chunk count")
		span.SetError(err)
		return 0, err
	}

	now := time.Now().UTC()
	records := make([]*domain.EmbeddingRecord, len(chunks))
	for i, chunk := range chunks {
		records[i] = &domain.EmbeddingRecord{
			ID:        s.uuidGen.NewString(),
			Text:      chunk.Text,
			Embedding: embeddings[i],
			Section:   chunk.Section,
			CreatedAt: now,
		}
	}

	if err := s.store.ReplaceAll(ctx, records); err != nil {
		span.SetError(err)
		return 0, err
	}

	log.Printf("reindex: stored %d embedding records", len(records))
	return len(records), nil
}
