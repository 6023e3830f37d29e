package domain

import "time"

// MessageRole identifies who authored a chat turn.
type MessageRole string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
)

// Message is one persisted chat turn. Retrieved context is stored alongside
// assistant turns for audit.
type Message struct {
	ID               string
	SessionID        string
	Role             MessageRole
	Content          string
	Model            string
	RetrievedContext []string
	CreatedAt        time.Time
}

// ValidateMessage validates a Message instance.
func ValidateMessage(m *Message) error {
	if m == nil {
		return NewDomainError(ErrCodeInvalidInput, "message cannot be nil")
	}
	if m.SessionID == "" {
		return NewDomainError(ErrCodeInvalidInput, "message session ID is required")
	}
	if m.Role != MessageRoleUser && m.Role != MessageRoleAssistant {
		return NewDomainError(ErrCodeInvalidInput, "message role is invalid: "+string(m.Role))
	}
	if m.Content == "" {
		return NewDomainError(ErrCodeInvalidInput, "message content cannot be empty")
	}
	return nil
}
