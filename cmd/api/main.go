// cmd/api/main.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/keralaeconomicforum/forum/internal/auth"
	"github.com/keralaeconomicforum/forum/internal/config"
	"github.com/keralaeconomicforum/forum/internal/email"
	"github.com/keralaeconomicforum/forum/internal/handler"
	"github.com/keralaeconomicforum/forum/internal/repository"
	"github.com/keralaeconomicforum/forum/internal/repository/firestore"
	"github.com/keralaeconomicforum/forum/internal/repository/postgres"
	"github.com/keralaeconomicforum/forum/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	ctx := context.Background()

	// Initialize the selected storage backend
	repos, err := setupStorage(ctx, cfg)
	if err != nil {
		return fmt.Errorf("setting up storage: %w", err)
	}

	// Initialize the token verifier; degrades gracefully when unconfigured
	verifier, err := auth.NewVerifier(ctx, cfg)
	if err != nil {
		return fmt.Errorf("setting up token verifier: %w", err)
	}

	// Initialize email service
	emailService, err := email.NewService(cfg, email.ProviderSendgrid)
	if err != nil {
		return fmt.Errorf("setting up email service: %w", err)
	}

	// Initialize services
	userService := service.NewUserService(repos.Users)
	contentService := service.NewContentService(repos)
	submissionService := service.NewSubmissionService(repos)
	replyService := service.NewReplyService(repos.EmailReplies, emailService, cfg.BaseURL)

	// Build the router
	r := handler.NewRouter(handler.Deps{
		Verifier:    verifier,
		Users:       userService,
		Content:     contentService,
		Submissions: submissionService,
		Replies:     replyService,
		UserRepo:    repos.Users,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		logger.Info("server starting", "port", cfg.Server.Port, "backend", cfg.Storage.Backend)
		serverErrors <- srv.ListenAndServe()
	}()

	// Shutdown channel
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

// setupStorage opens the configured backend and returns its repository
// container. Postgres also runs schema migration at boot.
func setupStorage(ctx context.Context, cfg *config.Config) (*repository.Container, error) {
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		db, err := postgres.Open(cfg)
		if err != nil {
			return nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		if err := postgres.Migrate(db); err != nil {
			return nil, fmt.Errorf("migrating schema: %w", err)
		}
		return postgres.NewContainer(db), nil

	case config.BackendFirestore:
		client, err := firestore.NewClient(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("connecting to firestore: %w", err)
		}
		return firestore.NewContainer(client), nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
