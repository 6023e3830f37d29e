package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/solenne-labs/profilechat/internal/api"
	"github.com/solenne-labs/profilechat/internal/api/handlers"
	"github.com/solenne-labs/profilechat/internal/api/middleware"
)

type RouterConfig struct {
	ChatHandler      *handlers.ChatHandler
	RetrievalHandler *handlers.RetrievalHandler
	AdminToken       string
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	const maxBodyBytes int64 = 64 * 1024

	r.Use(middleware.RequestID)
	r.Use(middleware.SentryMiddleware)
	r.Use(middleware.SessionID)
	r.Use(middleware.AccessLog)
	r.Use(middleware.MaxBodyBytes(maxBodyBytes))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		api.Success(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/chat", cfg.ChatHandler.Respond)
	r.Post("/search", cfg.RetrievalHandler.Search)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AdminAuth(cfg.AdminToken))

		r.Post("/reindex", cfg.RetrievalHandler.Reindex)
	})

	return r
}
