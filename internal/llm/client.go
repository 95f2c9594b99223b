package llm

import (
	"context"
	"errors"
)

// Client is the minimal surface the chat engine needs from a completion API.
type Client interface {
	// Complete sends one system message and one user message and returns the
	// first choice's content. Non-streaming, single attempt.
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

// Upstream failure taxonomy. The HTTP handler maps these onto client-facing
// status codes; raw upstream bodies never leave the process.
var (
	// ErrNotConfigured means the API key is missing; operator-fixable.
	ErrNotConfigured = errors.New("llm: api key not configured")
	// ErrAuthFailed covers upstream 401/403; operator-fixable.
	ErrAuthFailed = errors.New("llm: authentication failed")
	// ErrModelNotFound covers upstream 404; operator-fixable.
	ErrModelNotFound = errors.New("llm: model not available")
	// ErrRateLimited covers upstream 429.
	ErrRateLimited = errors.New("llm: rate limit exceeded")
	// ErrUpstream covers 5xx, unexpected 4xx and transport failures.
	ErrUpstream = errors.New("llm: upstream failure")
)
