package jobs

import (
	"context"
	"log"
	"sync"

	"github.com/solenne-labs/profilechat/internal/domain"
)

// ProfileSource loads the profile document to index.
type ProfileSource interface {
	Load(ctx context.Context) (*domain.Profile, error)
}

// Reindexer rebuilds the embedding store from a profile.
type Reindexer interface {
	Reindex(ctx context.Context, profile *domain.Profile) (int, error)
}

// Indexer ties a profile source to the reindex operation. Runs are
// serialized: the store replacement is not safe to race with itself.
type Indexer struct {
	source    ProfileSource
	retrieval Reindexer
	mu        sync.Mutex
}

// NewIndexer creates a new Indexer instance
func NewIndexer(source ProfileSource, retrieval Reindexer) *Indexer {
	return &Indexer{source: source, retrieval: retrieval}
}

// Run loads the profile and rebuilds the embedding store from it, returning
// the number of indexed chunks.
func (i *Indexer) Run(ctx context.Context) (int, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	p, err := i.source.Load(ctx)
	if err != nil {
		return 0, err
	}

	count, err := i.retrieval.Reindex(ctx, p)
	if err != nil {
		return 0, err
	}

	log.Printf("indexer: rebuilt embedding store with %d chunks", count)
	return count, nil
}
