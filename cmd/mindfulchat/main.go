package main

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	mindfulchatroot "github.com/set-night/mindfulchat"
	"github.com/set-night/mindfulchat/internal/chat"
	"github.com/set-night/mindfulchat/internal/config"
	"github.com/set-night/mindfulchat/internal/repository"
	"github.com/set-night/mindfulchat/internal/service"
	"github.com/set-night/mindfulchat/internal/term"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Setup structured logging; stdout belongs to the terminal UI
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	// Setup context with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Open the local store
	db, err := repository.Open(ctx, cfg.StorePath())
	if err != nil {
		slog.Error("failed to open local store", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run migrations
	migrationsFS, err := fs.Sub(mindfulchatroot.MigrationsFS, "migrations")
	if err != nil {
		slog.Error("failed to load embedded migrations", "error", err)
		os.Exit(1)
	}
	if err := repository.RunMigrations(cfg.StorePath(), migrationsFS); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Initialize services
	stateRepo := repository.NewStateRepository(db, config.StateSlot)
	sessionService := service.NewSessionService(stateRepo)
	groq := service.NewGroqService(cfg.GroqAPIKey, cfg.GroqAPIURL, cfg.Model, cfg.RequestTimeout)

	state := sessionService.LoadOrCreate(ctx)
	slog.Info("state loaded", "user_id", state.UserID, "sessions", len(state.Sessions))

	// Wire the conversation to the terminal collaborator
	renderer := term.NewRenderer(os.Stdout)
	conv := chat.New(chat.Deps{
		State:     state,
		Sessions:  sessionService,
		Crisis:    service.NewCrisisDetector(),
		Extractor: service.NewProfileExtractor(),
		Prompts:   service.NewPromptBuilder(),
		Completer: groq,
		Events:    renderer,
	})

	repl := term.NewREPL(conv, groq, renderer)
	if err := repl.Run(ctx); err != nil {
		slog.Error("repl stopped", "error", err)
		os.Exit(1)
	}

	slog.Info("mindfulchat stopped gracefully")
}

func logLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
