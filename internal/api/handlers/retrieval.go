package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/solenne-labs/profilechat/internal/api"
	"github.com/solenne-labs/profilechat/internal/service"
)

type RetrievalQuerier interface {
	Retrieve(ctx context.Context, query string, topK int) (*service.RetrievalOutput, error)
}

type Indexer interface {
	Run(ctx context.Context) (int, error)
}

type RetrievalHandler struct {
	svc     RetrievalQuerier
	indexer Indexer
}

func NewRetrievalHandler(svc RetrievalQuerier, indexer Indexer) *RetrievalHandler {
	return &RetrievalHandler{svc: svc, indexer: indexer}
}

type SearchRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"topK,omitempty"`
}

type SearchResultResponse struct {
	Text    string  `json:"text"`
	Score   float64 `json:"score"`
	Section string  `json:"section"`
}

type SearchResponse struct {
	Results []*SearchResultResponse `json:"results"`
}

type ReindexResponse struct {
	IndexedChunks int `json:"indexedChunks"`
}

// Search handles POST /search and returns the ranked profile snippets for a
// query without generating a reply.
func (h *RetrievalHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		api.Error(w, http.StatusBadRequest, "query is required")
		return
	}

	output, err := h.svc.Retrieve(r.Context(), req.Query, req.TopK)
	if err != nil {
		api.HandleError(w, err)
		return
	}

	results := make([]*SearchResultResponse, len(output.Results))
	for i, result := range output.Results {
		results[i] = &SearchResultResponse{
			Text:    result.Text,
			Score:   result.Score,
			Section: string(result.Section),
		}
	}

	api.Success(w, http.StatusOK, SearchResponse{Results: results})
}

// Reindex handles POST /reindex: reload the profile document and rebuild the
// embedding store from it.
func (h *RetrievalHandler) Reindex(w http.ResponseWriter, r *http.Request) {
	count, err := h.indexer.Run(r.Context())
	if err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusOK, ReindexResponse{IndexedChunks: count})
}
