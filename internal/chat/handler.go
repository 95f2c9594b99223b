package chat

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/saleh-td/Profile-Saleh-AI/internal/httpserver"
	"github.com/saleh-td/Profile-Saleh-AI/internal/llm"
)

// ChatRequest is the inbound POST /chat body.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
	Locale    string `json:"locale"`
}

// ChatResponse is the outbound body: plain text, already composed.
type ChatResponse struct {
	Response string `json:"response"`
}

// HandlerDeps wires the chat HTTP handler.
type HandlerDeps struct {
	Engine          *Engine
	Logger          *slog.Logger
	MaxMessageChars int
}

// Handler serves POST /chat. Input validation happens before the engine runs
// so rejected requests leave session history untouched.
type Handler struct {
	engine   *Engine
	logger   *slog.Logger
	maxChars int
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		engine:   deps.Engine,
		logger:   deps.Logger,
		maxChars: deps.MaxMessageChars,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpserver.WriteJSONError(w, http.StatusBadRequest, "bad_request", "cannot parse request body")
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		httpserver.WriteJSONError(w, http.StatusBadRequest, "bad_request", "message is required")
		return
	}
	if utf8.RuneCountInString(message) > h.maxChars {
		httpserver.WriteJSONError(w, http.StatusRequestEntityTooLarge, "message_too_long", "message exceeds the maximum length")
		return
	}

	text, err := h.engine.Respond(r.Context(), Request{
		Message:   message,
		SessionID: req.SessionID,
		Locale:    req.Locale,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	httpserver.WriteJSON(w, http.StatusOK, ChatResponse{Response: text})
}

// writeError translates the upstream failure taxonomy into sanitized
// client-facing errors. Raw upstream details stay in the logs.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("chat request failed",
		slog.String("error", err.Error()),
		slog.String("request_id", r.Header.Get("X-Request-ID")),
	)

	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		httpserver.WriteJSONError(w, http.StatusServiceUnavailable, "service_unavailable", "LLM service is not configured")
	case errors.Is(err, llm.ErrAuthFailed):
		httpserver.WriteJSONError(w, http.StatusServiceUnavailable, "service_unavailable", "LLM service authentication failed")
	case errors.Is(err, llm.ErrModelNotFound):
		httpserver.WriteJSONError(w, http.StatusServiceUnavailable, "service_unavailable", "LLM model not available")
	case errors.Is(err, llm.ErrRateLimited):
		httpserver.WriteJSONError(w, http.StatusTooManyRequests, "rate_limited", "LLM service quota/rate limit exceeded")
	case errors.Is(err, llm.ErrUpstream):
		httpserver.WriteJSONError(w, http.StatusBadGateway, "bad_gateway", "LLM service unavailable")
	default:
		httpserver.WriteJSONError(w, http.StatusInternalServerError, "internal_error", "Unexpected server error")
	}
}
