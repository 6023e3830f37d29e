package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/solenne-labs/profilechat/internal/domain"
)

// MessageRepository persists chat turns for transcript audit.
type MessageRepository struct {
	pool *pgxpool.Pool
}

func NewMessageRepository(pool *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{pool: pool}
}

// Create inserts one chat turn.
func (r *MessageRepository) Create(ctx context.Context, m *domain.Message) error {
	if err := domain.ValidateMessage(m); err != nil {
		return err
	}

	contextJSON, err := json.Marshal(m.RetrievedContext)
	if err != nil {
		return domain.StoreUnavailable(err)
	}

	createdAt := m.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO chat_messages (id, session_id, role, content, model, retrieved_context, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.ID,
		m.SessionID,
		string(m.Role),
		m.Content,
		nullableString(m.Model),
		contextJSON,
		createdAt,
	)
	if err != nil {
		return domain.StoreUnavailable(err)
	}
	return nil
}

// ListBySession returns up to limit turns for a session, oldest first.
func (r *MessageRepository) ListBySession(ctx context.Context, sessionID string, limit int) ([]*domain.Message, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, session_id, role, content, model, retrieved_context, created_at
		 FROM (
			SELECT id, session_id, role, content, model, retrieved_context, created_at
			FROM chat_messages
			WHERE session_id = $1
			ORDER BY created_at DESC, id DESC
			LIMIT $2
		 ) recent
		 ORDER BY created_at, id`,
		sessionID, limit)
	if err != nil {
		return nil, domain.StoreUnavailable(err)
	}
	defer rows.Close()

	messages := make([]*domain.Message, 0)
	for rows.Next() {
		var m domain.Message
		var role string
		var model *string
		var contextJSON []byte
		if err := rows.Scan(&m.ID, &m.SessionID, &role, &m.Content, &model, &contextJSON, &m.CreatedAt); err != nil {
			return nil, domain.StoreUnavailable(err)
		}
		m.Role = domain.MessageRole(role)
		if model != nil {
			m.Model = *model
		}
		if len(contextJSON) > 0 {
			if err := json.Unmarshal(contextJSON, &m.RetrievedContext); err != nil {
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

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
