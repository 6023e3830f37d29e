package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/solenne-labs/profilechat/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteMessageRepo(t *testing.T) *SQLiteMessageRepository {
	t.Helper()
	repo, err := NewSQLiteMessageRepository(filepath.Join(t.TempDir(), "messages.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func sqliteMessage(sessionID string, role domain.MessageRole, content string, at time.Time) *domain.Message {
	return &domain.Message{
		ID:               uuid.NewString(),
		SessionID:        sessionID,
		Role:             role,
		Content:          content,
		RetrievedContext: []string{"Go: Expert level with 8 years of experience."},
		CreatedAt:        at,
	}
}

func TestSQLiteMessageRepository_CreateAndList(t *testing.T) {
	repo := newSQLiteMessageRepo(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	userTurn := sqliteMessage("sess-1", domain.MessageRoleUser, "What do you do?", now)
	assistantTurn := sqliteMessage("sess-1", domain.MessageRoleAssistant, "I build backend systems.", now.Add(time.Second))
	assistantTurn.Model = "gpt-4-turbo-preview"

	require.NoError(t, repo.Create(ctx, userTurn))
	require.NoError(t, repo.Create(ctx, assistantTurn))

	messages, err := repo.ListBySession(ctx, "sess-1", 10)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, domain.MessageRoleUser, messages[0].Role)
	assert.Equal(t, "What do you do?", messages[0].Content)
	assert.Empty(t, messages[0].Model)
	assert.Equal(t, domain.MessageRoleAssistant, messages[1].Role)
	assert.Equal(t, "gpt-4-turbo-preview", messages[1].Model)
	assert.Equal(t, []string{"Go: Expert level with 8 years of experience."}, messages[1].RetrievedContext)
}

func TestSQLiteMessageRepository_Create_InvalidMessage(t *testing.T) {
	repo := newSQLiteMessageRepo(t)

	err := repo.Create(context.Background(), &domain.Message{ID: uuid.NewString()})

	assert.Error(t, err)
}

func TestSQLiteMessageRepository_ListBySession_LimitKeepsMostRecent(t *testing.T) {
	repo := newSQLiteMessageRepo(t)
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Millisecond)

	for i := 0; i < 5; i++ {
		m := sqliteMessage("sess-1", domain.MessageRoleUser, fmt.Sprintf("message %d", i), base.Add(time.Duration(i)*time.Second))
		require.NoError(t, repo.Create(ctx, m))
	}

	messages, err := repo.ListBySession(ctx, "sess-1", 3)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "message 2", messages[0].Content)
	assert.Equal(t, "message 4", messages[2].Content)
}

func TestSQLiteMessageRepository_ListBySession_FiltersBySession(t *testing.T) {
	repo := newSQLiteMessageRepo(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	require.NoError(t, repo.Create(ctx, sqliteMessage("sess-1", domain.MessageRoleUser, "first session", now)))
	require.NoError(t, repo.Create(ctx, sqliteMessage("sess-2", domain.MessageRoleUser, "second session", now)))

	messages, err := repo.ListBySession(ctx, "sess-2", 10)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "second session", messages[0].Content)
}

func TestSQLiteMessageRepository_ListBySession_TurnPairOrderIndependentOfIDs(t *testing.T) {
	repo := newSQLiteMessageRepo(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	userTurn := sqliteMessage("sess-1", domain.MessageRoleUser, "What stack do you use?", now)
	userTurn.ID = "ffffffff-ffff-ffff-ffff-ffffffffffff"
	assistantTurn := sqliteMessage("sess-1", domain.MessageRoleAssistant, "Mostly Go and Postgres.", now.Add(time.Millisecond))
	assistantTurn.ID = "00000000-0000-0000-0000-000000000000"

	require.NoError(t, repo.Create(ctx, userTurn))
	require.NoError(t, repo.Create(ctx, assistantTurn))

	messages, err := repo.ListBySession(ctx, "sess-1", 10)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, domain.MessageRoleUser, messages[0].Role)
	assert.Equal(t, domain.MessageRoleAssistant, messages[1].Role)
}
