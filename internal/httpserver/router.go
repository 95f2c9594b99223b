package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/saleh-td/Profile-Saleh-AI/internal/middleware"
)

// RouterDeps carries everything the router mounts.
type RouterDeps struct {
	Logger      *slog.Logger
	ChatHandler http.Handler
	CORSOrigins []string
	ServiceName string
	Version     string
}

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// NewRouter assembles the chi router with shared middleware, CORS for the
// portfolio frontend, the health probe and the chat endpoint.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recover(deps.Logger))
	r.Use(middleware.Logging(deps.Logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, http.StatusOK, healthResponse{
			Status:  "ok",
			Service: deps.ServiceName,
			Version: deps.Version,
		})
	})

	r.Post("/chat", deps.ChatHandler.ServeHTTP)

	return r
}
