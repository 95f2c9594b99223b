package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/saleh-td/Profile-Saleh-AI/internal/config"
)

// GroqClient talks to the Groq OpenAI-compatible chat-completions endpoint.
// It performs exactly one attempt per call; timeouts and transport failures
// surface immediately.
type GroqClient struct {
	apiKey      string
	baseURL     string
	model       string
	temperature float64
	maxTokens   int
	httpClient  *http.Client
	logger      *slog.Logger
}

func NewGroqClient(cfg config.GroqConfig, httpClient *http.Client, logger *slog.Logger) *GroqClient {
	return &GroqClient{
		apiKey:      cfg.APIKey,
		baseURL:     cfg.BaseURL,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		httpClient:  httpClient,
		logger:      logger,
	}
}

// Configured reports whether an API key is present.
func (c *GroqClient) Configured() bool {
	return c.apiKey != ""
}

func (c *GroqClient) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	body := completionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMessage},
		},
	}

	buf, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(buf))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("groq transport failure", slog.String("error", err.Error()))
		return "", fmt.Errorf("%w: execute request: %s", ErrUpstream, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("groq read failure", slog.String("error", err.Error()))
		return "", fmt.Errorf("%w: read response: %s", ErrUpstream, err)
	}

	if err := c.classifyStatus(resp.StatusCode, bodyBytes); err != nil {
		return "", err
	}

	var parsed completionResponse
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil {
		return "", fmt.Errorf("%w: decode response: %s", ErrUpstream, err)
	}
	if len(parsed.Choices) == 0 {
		return "", nil
	}
	return parsed.Choices[0].Message.Content, nil
}

// classifyStatus maps upstream status codes onto the failure taxonomy and
// logs the upstream body, which never reaches the caller.
func (c *GroqClient) classifyStatus(status int, body []byte) error {
	if status < 300 {
		return nil
	}

	c.logger.Error("groq request failed",
		slog.Int("status", status),
		slog.String("body", string(body)),
	)

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w: status %d", ErrAuthFailed, status)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: status %d", ErrModelNotFound, status)
	case status == http.StatusTooManyRequests:
		return fmt.Errorf("%w: status %d", ErrRateLimited, status)
	default:
		return fmt.Errorf("%w: status %d", ErrUpstream, status)
	}
}

type completionRequest struct {
	Model       string    `json:"model"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
	Messages    []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}
