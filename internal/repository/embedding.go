package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
	"github.com/solenne-labs/profilechat/internal/domain"
)

// EmbeddingRepository persists profile embedding records in Postgres with a
// pgvector column. The record set is only ever replaced wholesale.
type EmbeddingRepository struct {
	pool *pgxpool.Pool
}

func NewEmbeddingRepository(pool *pgxpool.Pool) *EmbeddingRepository {
	return &EmbeddingRepository{pool: pool}
}

// ReplaceAll deletes every stored record and inserts the new set inside one
// transaction, so concurrent readers never observe a half-replaced set.
func (r *EmbeddingRepository) ReplaceAll(ctx context.Context, records []*domain.EmbeddingRecord) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domain.StoreUnavailable(err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM profile_embeddings`); err != nil {
		return domain.StoreUnavailable(err)
	}

	for _, record := range records {
		createdAt := record.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now().UTC()
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO profile_embeddings (id, text, embedding, section, created_at)
			 VALUES ($1, $2, $3, $4, $5)`,
			record.ID,
			record.Text,
			pgvector.NewVector(record.Embedding),
			string(record.Section),
			createdAt,
		)
		if err != nil {
			return domain.StoreUnavailable(err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.StoreUnavailable(err)
	}
	return nil
}

// FetchAll returns every stored record in a stable order. Records written in
// one ReplaceAll share a timestamp, so within a generation the order is by ID;
// it is the same on every call, which keeps rank tie-breaking deterministic.
// An unpopulated store yields an empty slice, not an error.
func (r *EmbeddingRepository) FetchAll(ctx context.Context) ([]*domain.EmbeddingRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, text, embedding, section, created_at
		 FROM profile_embeddings
		 ORDER BY created_at, id`)
	if err != nil {
		return nil, domain.StoreUnavailable(err)
	}
	defer rows.Close()

	records := make([]*domain.EmbeddingRecord, 0)
	for rows.Next() {
		var record domain.EmbeddingRecord
		var vec pgvector.Vector
		var section string
		if err := rows.Scan(&record.ID, &record.Text, &vec, &section, &record.CreatedAt); err != nil {
			return nil, domain.StoreUnavailable(err)
		}
		record.Embedding = vec.Slice()
		record.Section = domain.Section(section)
		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StoreUnavailable(err)
	}

	return records, nil
}
