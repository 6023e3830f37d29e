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

// SQLiteMessageRepository persists chat transcripts in the same SQLite file
// used by the fallback vector store.
type SQLiteMessageRepository struct {
	db *sql.DB
}

// NewSQLiteMessageRepository opens (and if needed creates) the transcript
// store at the given path.
func NewSQLiteMessageRepository(path string) (*SQLiteMessageRepository, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS chat_messages (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		role TEXT NOT NULL,
		content TEXT NOT NULL,
		model TEXT,
		retrieved_context TEXT,
		created_at TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_chat_messages_session ON chat_messages (session_id, created_at)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteMessageRepository{db: db}, nil
}

// Close closes the database connection.
func (r *SQLiteMessageRepository) Close() error {
	return r.db.Close()
}

// Create stores a single chat turn.
func (r *SQLiteMessageRepository) Create(ctx context.Context, m *domain.Message) error {
	if err := domain.ValidateMessage(m); err != nil {
		return err
	}

	retrievedContext, err := json.Marshal(m.RetrievedContext)
	if err != nil {
		return domain.StoreUnavailable(err)
	}

	createdAt := m.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	var model sql.NullString
	if m.Model != "" {
		model = sql.NullString{String: m.Model, Valid: true}
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO chat_messages (id, session_id, role, content, model, retrieved_context, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.ID,
		m.SessionID,
		string(m.Role),
		m.Content,
		model,
		string(retrievedContext),
		createdAt,
	)
	if err != nil {
		return domain.StoreUnavailable(err)
	}
	return nil
}

// ListBySession returns up to limit of the session's most recent messages in
// chronological order.
func (r *SQLiteMessageRepository) ListBySession(ctx context.Context, sessionID string, limit int) ([]*domain.Message, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, session_id, role, content, model, retrieved_context, created_at FROM (
			SELECT id, session_id, role, content, model, retrieved_context, created_at
			FROM chat_messages
			WHERE session_id = ?
			ORDER BY created_at DESC, id DESC
			LIMIT ?
		) ORDER BY created_at ASC, id ASC`,
		sessionID, limit)
	if err != nil {
		return nil, domain.StoreUnavailable(err)
	}
	defer rows.Close()

	messages := make([]*domain.Message, 0)
	for rows.Next() {
		var m domain.Message
		var role string
		var model sql.NullString
		var retrievedContext sql.NullString
		if err := rows.Scan(&m.ID, &m.SessionID, &role, &m.Content, &model, &retrievedContext, &m.CreatedAt); err != nil {
			return nil, domain.StoreUnavailable(err)
		}
		m.Role = domain.MessageRole(role)
		if model.Valid {
			m.Model = model.String
		}
		if retrievedContext.Valid && retrievedContext.String != "" {
			if err := json.Unmarshal([]byte(retrievedContext.String), &m.RetrievedContext); err != nil {
				return nil, domain.StoreUnavailable(err)
			}
		}
		messages = append(messages, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StoreUnavailable(err)
	}

	return messages, nil
}
