package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/solenne-labs/profilechat/internal/api"
	"github.com/solenne-labs/profilechat/internal/service"
)

type ChatResponder interface {
	Respond(ctx context.Context, input service.ChatInput) (*service.ChatOutput, error)
}

type ChatHandler struct {
	svc ChatResponder
}

func NewChatHandler(svc ChatResponder) *ChatHandler {
	return &ChatHandler{svc: svc}
}

type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId,omitempty"`
	TopK      int    `json:"topK,omitempty"`
}

type ChatResponse struct {
	Reply            string   `json:"reply"`
	SessionID        string   `json:"sessionId"`
	RetrievedContext []string `json:"retrievedContext,omitempty"`
}

// Respond handles POST /chat. A missing session ID starts a new conversation.
func (h *ChatHandler) Respond(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		api.Error(w, http.StatusBadRequest, "message is required")
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	output, err := h.svc.Respond(r.Context(), service.ChatInput{
		SessionID: sessionID,
		Message:   req.Message,
		TopK:      req.TopK,
	})
	if err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusOK, ChatResponse{
		Reply:            output.Reply,
		SessionID:        sessionID,
		RetrievedContext: output.RetrievedContext,
	})
}
