package chat

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saleh-td/Profile-Saleh-AI/internal/llm"
	"github.com/saleh-td/Profile-Saleh-AI/internal/session"
)

func newTestHandler(client llm.Client, maxChars int) (*Handler, *session.Store) {
	store := session.NewStore(0)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	engine := NewEngine(EngineDeps{Store: store, LLM: client, Logger: logger})
	handler := NewHandler(HandlerDeps{Engine: engine, Logger: logger, MaxMessageChars: maxChars})
	return handler, store
}

func postChat(t *testing.T, handler *Handler, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))

	req := httptest.NewRequest(http.MethodPost, "/chat", &buf)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestHandlerDeterministicAnswer(t *testing.T) {
	handler, _ := newTestHandler(&stubLLM{}, 2000)

	rr := postChat(t, handler, ChatRequest{Message: "salut", SessionID: "s1"})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp ChatResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, greetingAnswer(LangFR), resp.Response)
}

func TestHandlerRejectsEmptyMessage(t *testing.T) {
	handler, store := newTestHandler(&stubLLM{}, 2000)

	rr := postChat(t, handler, ChatRequest{Message: "   ", SessionID: "s1"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Empty(t, store.Turns("s1"))
}

func TestHandlerRejectsMalformedBody(t *testing.T) {
	handler, _ := newTestHandler(&stubLLM{}, 2000)

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandlerRejectsOversizedMessageBeforeAnySideEffect(t *testing.T) {
	handler, store := newTestHandler(&stubLLM{}, 10)

	rr := postChat(t, handler, ChatRequest{Message: strings.Repeat("a", 11), SessionID: "s1"})
	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	// No classification happened, no history was written.
	assert.Empty(t, store.Turns("s1"))
}

func TestHandlerMessageLimitCountsRunes(t *testing.T) {
	handler, _ := newTestHandler(&stubLLM{}, 10)

	// Ten accented characters are within a ten-character limit.
	rr := postChat(t, handler, ChatRequest{Message: strings.Repeat("é", 10)})
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestHandlerUpstreamErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not configured", llm.ErrNotConfigured, http.StatusServiceUnavailable, "service_unavailable"},
		{"auth failed", llm.ErrAuthFailed, http.StatusServiceUnavailable, "service_unavailable"},
		{"model missing", llm.ErrModelNotFound, http.StatusServiceUnavailable, "service_unavailable"},
		{"rate limited", llm.ErrRateLimited, http.StatusTooManyRequests, "rate_limited"},
		{"upstream failure", llm.ErrUpstream, http.StatusBadGateway, "bad_gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := newTestHandler(&stubLLM{err: tt.err}, 2000)

			rr := postChat(t, handler, ChatRequest{Message: "quelle est la météo demain"})
			assert.Equal(t, tt.wantStatus, rr.Code)

			var envelope struct {
				Error struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
			assert.Equal(t, tt.wantCode, envelope.Error.Code)
		})
	}
}

func TestHandlerDelegatedAnswer(t *testing.T) {
	handler, _ := newTestHandler(&stubLLM{reply: "Une réponse simple."}, 2000)

	rr := postChat(t, handler, ChatRequest{Message: "quelle est la météo demain"})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp ChatResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Contains(t, resp.Response, "Une réponse simple.")
	assert.Contains(t, resp.Response, conversationFollowUp(LangFR))
}
