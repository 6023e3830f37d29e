package service

import (
	"context"
	"time"

	"github.com/solenne-labs/profilechat/internal/domain"
	"github.com/solenne-labs/profilechat/internal/openai"
	"github.com/solenne-labs/profilechat/internal/telemetry"
)

const (
	// historyLimit bounds how many prior turns are replayed to the model.
	historyLimit = 10

	defaultTemperature = 0.7
)

// ChatClient defines the interface for the generation capability
type ChatClient interface {
	GenerateChatCompletion(ctx context.Context, messages []openai.ChatMessage, temperature float32) (string, error)
}

// MessageRepositoryInterface defines the repository interface for chat transcripts
type MessageRepositoryInterface interface {
	Create(ctx context.Context, m *domain.Message) error
	ListBySession(ctx context.Context, sessionID string, limit int) ([]*domain.Message, error)
}

// ChatInput is a single incoming chat turn.
type ChatInput struct {
	SessionID string
	Message   string
	TopK      int
}

// ChatOutput is the assistant's reply plus the context it was grounded on.
type ChatOutput struct {
	Reply            string
	RetrievedContext []string
}

// ChatService answers a chat turn: retrieve grounding context, replay recent
// history, generate a reply, and persist both turns with the retrieved
// context for audit.
type ChatService struct {
	retrieval *RetrievalService
	chat      ChatClient
	messages  MessageRepositoryInterface
	model     string
	uuidGen   UUIDGenerator
}

// NewChatService creates a new ChatService instance
func NewChatService(retrieval *RetrievalService, chat ChatClient, messages MessageRepositoryInterface, model string) *ChatService {
	return &ChatService{
		retrieval: retrieval,
		chat:      chat,
		messages:  messages,
		model:     model,
		uuidGen:   &DefaultUUIDGenerator{},
	}
}

// Respond handles one chat turn end to end.
func (s *ChatService) Respond(ctx context.Context, input ChatInput) (*ChatOutput, error) {
	ctx, span := telemetry.StartSpan(ctx, "ChatService.Respond", telemetry.SpanAttributes{
		SessionID: input.SessionID,
		Operation: "chat",
	})
	defer span.End()

	if input.SessionID == "" {
		return nil, domain.NewDomainError(domain.ErrCodeInvalidInput, "session ID is required")
	}
	if input.Message == "" {
		return nil, domain.ErrEmptyText
	}

	retrieved, err := s.retrieval.Retrieve(ctx, input.Message, input.TopK)
	if err != nil {
		span.SetError(err)
		return nil, err
	}

	history, err := s.messages.ListBySession(ctx, input.SessionID, historyLimit)
	if err != nil {
		span.SetError(err)
		return nil, domain.StoreUnavailable(err)
	}

	prompt := []openai.ChatMessage{{Role: openai.RoleSystem, Content: retrieved.Prompt}}
	for _, turn := range history {
		role := openai.RoleUser
		if turn.Role == domain.MessageRoleAssistant {
			role = openai.RoleAssistant
		}
		prompt = append(prompt, openai.ChatMessage{Role: role, Content: turn.Content})
	}
	prompt = append(prompt, openai.ChatMessage{Role: openai.RoleUser, Content: input.Message})

	reply, err := s.chat.GenerateChatCompletion(ctx, prompt, defaultTemperature)
	if err != nil {
		span.SetError(err)
		return nil, domain.NewDomainErrorWithCause(domain.ErrCodeInternalError, "chat completion failed", err)
	}

	// The reply must sort strictly after the question: ListBySession orders
	// by (created_at, id), and equal timestamps would leave the pair's replay
	// order to UUID comparison.
	now := time.Now().UTC()
	userTurn := &domain.Message{
		ID:               s.uuidGen.NewString(),
		SessionID:        input.SessionID,
		Role:             domain.MessageRoleUser,
		Content:          input.Message,
		RetrievedContext: retrieved.RetrievedTexts,
		CreatedAt:        now,
	}
	assistantTurn := &domain.Message{
		ID:               s.uuidGen.NewString(),
		SessionID:        input.SessionID,
		Role:             domain.MessageRoleAssistant,
		Content:          reply,
		Model:            s.model,
		RetrievedContext: retrieved.RetrievedTexts,
		CreatedAt:        now.Add(time.Millisecond),
	}

	if err := s.messages.Create(ctx, userTurn); err != nil {
		span.SetError(err)
		return nil, domain.StoreUnavailable(err)
	}
	if err := s.messages.Create(ctx, assistantTurn); err != nil {
		span.SetError(err)
		return nil, domain.StoreUnavailable(err)
	}

	return &ChatOutput{
		Reply:            reply,
		RetrievedContext: retrieved.RetrievedTexts,
	}, nil
}
