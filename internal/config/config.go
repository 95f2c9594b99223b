package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime settings for the service.
type Config struct {
	AppName    string
	AppVersion string

	HTTPAddr string
	LogLevel string

	CORSOrigins []string

	MaxMessageChars int
	SessionTTL      time.Duration
	RequestTimeout  time.Duration

	Groq GroqConfig
}

// GroqConfig describes the outbound chat-completions API.
type GroqConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
}

// Load reads settings from environment variables, with an optional .env file
// for local development. Environment always wins over the file.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("APP_NAME", "AI Architect Backend")
	v.SetDefault("APP_VERSION", "0.1.0")
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000")
	v.SetDefault("CHAT_MAX_MESSAGE_CHARS", 2000)
	v.SetDefault("SESSION_TTL", "0")
	v.SetDefault("HTTP_CLIENT_TIMEOUT", "20s")
	v.SetDefault("GROQ_API_KEY", "")
	v.SetDefault("GROQ_BASE_URL", "https://api.groq.com/openai/v1")
	v.SetDefault("GROQ_MODEL", "llama-3.1-8b-instant")
	v.SetDefault("GROQ_TEMPERATURE", 0.4)
	v.SetDefault("GROQ_MAX_TOKENS", 512)

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read .env: %w", err)
		}
	}
	v.AutomaticEnv()

	sessionTTL, err := parseDuration(v.GetString("SESSION_TTL"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SESSION_TTL: %w", err)
	}

	reqTimeout, err := parseDuration(v.GetString("HTTP_CLIENT_TIMEOUT"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_CLIENT_TIMEOUT: %w", err)
	}
	if reqTimeout <= 0 {
		return Config{}, errors.New("HTTP_CLIENT_TIMEOUT must be positive")
	}

	maxChars := v.GetInt("CHAT_MAX_MESSAGE_CHARS")
	if maxChars <= 0 {
		return Config{}, fmt.Errorf("CHAT_MAX_MESSAGE_CHARS must be positive, got %d", maxChars)
	}

	cfg := Config{
		AppName:         v.GetString("APP_NAME"),
		AppVersion:      v.GetString("APP_VERSION"),
		HTTPAddr:        v.GetString("HTTP_ADDR"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		CORSOrigins:     splitOrigins(v.GetString("CORS_ORIGINS")),
		MaxMessageChars: maxChars,
		SessionTTL:      sessionTTL,
		RequestTimeout:  reqTimeout,
		Groq: GroqConfig{
			APIKey:      v.GetString("GROQ_API_KEY"),
			BaseURL:     strings.TrimRight(v.GetString("GROQ_BASE_URL"), "/"),
			Model:       v.GetString("GROQ_MODEL"),
			Temperature: v.GetFloat64("GROQ_TEMPERATURE"),
			MaxTokens:   v.GetInt("GROQ_MAX_TOKENS"),
		},
	}

	return cfg, nil
}

// parseDuration accepts Go duration strings; a bare "0" disables the setting.
func parseDuration(value string) (time.Duration, error) {
	if value == "" || value == "0" {
		return 0, nil
	}
	return time.ParseDuration(value)
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
