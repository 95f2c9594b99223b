package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/saleh-td/Profile-Saleh-AI/internal/chat"
	"github.com/saleh-td/Profile-Saleh-AI/internal/config"
	"github.com/saleh-td/Profile-Saleh-AI/internal/httpserver"
	"github.com/saleh-td/Profile-Saleh-AI/internal/llm"
	"github.com/saleh-td/Profile-Saleh-AI/internal/session"
	"github.com/saleh-td/Profile-Saleh-AI/internal/transport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := newLogger(cfg.LogLevel)

	httpClient := transport.NewHTTPClient(cfg.RequestTimeout)
	groqClient := llm.NewGroqClient(cfg.Groq, httpClient, logger)
	if !groqClient.Configured() {
		logger.Warn("GROQ_API_KEY is not set; open questions will be rejected with 503")
	}

	store := session.NewStore(cfg.SessionTTL)

	engine := chat.NewEngine(chat.EngineDeps{
		Store:  store,
		LLM:    groqClient,
		Logger: logger,
	})
	chatHandler := chat.NewHandler(chat.HandlerDeps{
		Engine:          engine,
		Logger:          logger,
		MaxMessageChars: cfg.MaxMessageChars,
	})

	router := httpserver.NewRouter(httpserver.RouterDeps{
		Logger:      logger,
		ChatHandler: chatHandler,
		CORSOrigins: cfg.CORSOrigins,
		ServiceName: cfg.AppName,
		Version:     cfg.AppVersion,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.SessionTTL > 0 {
		go sessionJanitor(ctx, store, logger)
	}

	go func() {
		logger.Info("server starting", slog.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown initiated")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", slog.String("error", err.Error()))
	}

	logger.Info("server stopped")
}

// sessionJanitor periodically drops idle sessions so the in-memory store
// does not grow without bound on long uptimes.
func sessionJanitor(ctx context.Context, store *session.Store, logger *slog.Logger) {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if deleted := store.ClearExpired(now); deleted > 0 {
				logger.Info("expired sessions cleared", slog.Int("count", deleted))
			}
		}
	}
}

func newLogger(level string) *slog.Logger {
	slogLevel := slog.LevelInfo
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "info":
		slogLevel = slog.LevelInfo
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel}))
}
