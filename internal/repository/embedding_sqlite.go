package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/solenne-labs/profilechat/internal/domain"
)

// SQLiteEmbeddingRepository is a file-backed vector store for single-box
// deployments without Postgres. Embeddings are stored as JSON arrays;
// at the profile's scale (tens of records) the encoding cost is irrelevant.
type SQLiteEmbeddingRepository struct {
	db   *sql.DB
	path string
}

// NewSQLiteEmbeddingRepository opens (and if needed creates) the SQLite store
// at the given path.
func NewSQLiteEmbeddingRepository(path string) (*SQLiteEmbeddingRepository, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS profile_embeddings (
		id TEXT PRIMARY KEY,
		text TEXT NOT NULL,
		embedding TEXT NOT NULL,
		section TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteEmbeddingRepository{db: db, path: path}, nil
}

// Close closes the database connection.
func (r *SQLiteEmbeddingRepository) Close() error {
	return r.db.Close()
}

// ReplaceAll deletes every stored record and inserts the new set inside one
// transaction.
func (r *SQLiteEmbeddingRepository) ReplaceAll(ctx context.Context, records []*domain.EmbeddingRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.StoreUnavailable(err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM profile_embeddings`); err != nil {
		return domain.StoreUnavailable(err)
	}

	for _, record := range records {
		embedding, err := json.Marshal(record.Embedding)
		if err != nil {
			return domain.StoreUnavailable(err)
		}
		createdAt := record.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now().UTC()
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO profile_embeddings (id, text, embedding, section, created_at)
			 VALUES (?, ?, ?, ?, ?)`,
			record.ID,
			record.Text,
			string(embedding),
			string(record.Section),
			createdAt,
		)
		if err != nil {
			return domain.StoreUnavailable(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.StoreUnavailable(err)
	}
	return nil
}

// FetchAll returns every stored record in a stable order (by timestamp, then
// ID), identical on every call for the same stored set.
func (r *SQLiteEmbeddingRepository) FetchAll(ctx context.Context) ([]*domain.EmbeddingRecord, error) {
	rows, err := r.db.QueryContext(ctx,
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
		var embedding, section string
		if err := rows.Scan(&record.ID, &record.Text, &embedding, &section, &record.CreatedAt); err != nil {
			return nil, domain.StoreUnavailable(err)
		}
		if err := json.Unmarshal([]byte(embedding), &record.Embedding); err != nil {
			return nil, domain.StoreUnavailable(err)
		}
		record.Section = domain.Section(section)
		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StoreUnavailable(err)
	}

	return records, nil
}
