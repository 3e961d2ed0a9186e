// Package main is the entry point of the feedback service.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/feedback-analyzer/internal/adapters/http"
	"github.com/jsamuelsen/feedback-analyzer/internal/adapters/http/handlers"
	"github.com/jsamuelsen/feedback-analyzer/internal/adapters/http/middleware"
	"github.com/jsamuelsen/feedback-analyzer/internal/adapters/storage/gormstore"
	"github.com/jsamuelsen/feedback-analyzer/internal/adapters/storage/memory"
	"github.com/jsamuelsen/feedback-analyzer/internal/adapters/uploads"
	"github.com/jsamuelsen/feedback-analyzer/internal/analysis/sentiment"
	"github.com/jsamuelsen/feedback-analyzer/internal/analysis/summary"
	"github.com/jsamuelsen/feedback-analyzer/internal/app"
	"github.com/jsamuelsen/feedback-analyzer/internal/platform/config"
	"github.com/jsamuelsen/feedback-analyzer/internal/platform/logging"
	"github.com/jsamuelsen/feedback-analyzer/internal/platform/metrics"
	"github.com/jsamuelsen/feedback-analyzer/internal/platform/session"
	"github.com/jsamuelsen/feedback-analyzer/internal/platform/telemetry"
	"github.com/jsamuelsen/feedback-analyzer/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD)"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting feedbackd",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
		slog.String("storage", cfg.Storage.Driver),
	)

	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	healthRegistry := ports.NewHealthRegistry(ports.DefaultCheckTimeout)

	repos, closeStorage, err := openStorage(cfg.Storage, healthRegistry)
	if err != nil {
		return err
	}
	defer closeStorage()

	attachments, err := uploads.New(cfg.Uploads.Dir, cfg.Uploads.AllowedExtensions)
	if err != nil {
		return fmt.Errorf("opening upload dir: %w", err)
	}

	if err := healthRegistry.Register(attachments); err != nil {
		return fmt.Errorf("registering uploads health check: %w", err)
	}

	recorder := metrics.New(prometheus.DefaultRegisterer)

	feedbackService := app.NewFeedbackService(app.FeedbackServiceConfig{
		Repository:  repos.feedback,
		Attachments: attachments,
		Classifier: sentiment.NewClassifier(sentiment.Lexicon{
			Positive: cfg.Analysis.Sentiment.PositiveWords,
			Negative: cfg.Analysis.Sentiment.NegativeWords,
		}, sentiment.MatchMode(cfg.Analysis.Sentiment.Match)),
		Summarizer: summary.New(summary.NewSplitter(cfg.Analysis.Summary.Language), summary.Config{
			Damping:       cfg.Analysis.Summary.Damping,
			Tolerance:     cfg.Analysis.Summary.Tolerance,
			MaxIterations: cfg.Analysis.Summary.MaxIterations,
		}),
		Metrics:          recorder,
		Logger:           logger,
		DefaultSentences: cfg.Analysis.Summary.DefaultSentences,
		MaxSentences:     cfg.Analysis.Summary.MaxSentences,
		Concurrency:      cfg.Analysis.Summary.Concurrency,
	})

	accountService, err := app.NewAccountService(app.AccountServiceConfig{
		Users:         repos.users,
		AdminUsername: cfg.Admin.Username,
		AdminPassword: cfg.Admin.Password,
		Logger:        logger,
	})
	if err != nil {
		return fmt.Errorf("creating account service: %w", err)
	}

	sessions := middleware.NewSessions(
		session.NewManager(cfg.Session.Secret, cfg.Session.Issuer, cfg.Session.TTL),
		cfg.Session.CookieName,
		cfg.Session.Secure,
	)

	server := http.New(&cfg.Server, logger)

	http.SetupRouter(server.Engine(), http.RouterConfig{
		Logger:    logger,
		AppConfig: &cfg.App,
		CORS:      cfg.Server.CORS,
		Timeout:   cfg.Server.RequestTimeout,
		Sessions:  sessions,
		Health: handlers.NewHealthHandler(healthRegistry, prometheus.DefaultGatherer,
			handlers.NewBuildInfo(Version, Commit, BuildTime)),
		Feedback: handlers.NewFeedbackHandler(feedbackService, ""),
		Summary:  handlers.NewSummaryHandler(feedbackService),
		Export:   handlers.NewExportHandler(feedbackService),
		Accounts: handlers.NewAccountHandler(accountService, sessions),
		Uploads:  handlers.NewUploadsHandler(attachments),
	})

	serverErr, err := server.Start()
	if err != nil {
		return err
	}

	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

type repositories struct {
	feedback ports.FeedbackRepository
	users    ports.UserRepository
}

// openStorage opens the configured backend and registers its health check.
// The returned func releases it.
func openStorage(cfg config.StorageConfig, registry ports.HealthRegistry) (repositories, func(), error) {
	if cfg.Driver == "memory" {
		err := registry.Register(ports.CheckerFunc("storage", func(ctx context.Context) error {
			return ctx.Err()
		}))
		if err != nil {
			return repositories{}, nil, fmt.Errorf("registering storage health check: %w", err)
		}

		return repositories{
			feedback: memory.NewFeedbackStore(),
			users:    memory.NewUserStore(),
		}, func() {}, nil
	}

	store, err := gormstore.Open(cfg.Driver, cfg.DSN, cfg.LogQueries)
	if err != nil {
		return repositories{}, nil, fmt.Errorf("opening %s storage: %w", cfg.Driver, err)
	}

	if err := registry.Register(store); err != nil {
		_ = store.Close()
		return repositories{}, nil, fmt.Errorf("registering storage health check: %w", err)
	}

	return repositories{feedback: store.Feedback(), users: store.Users()}, closer(store), nil
}

func closer(c io.Closer) func() {
	return func() {
		if err := c.Close(); err != nil {
			slog.Error("closing storage", slog.Any("error", err))
		}
	}
}

// waitForShutdown blocks until a signal or server error, then drains
// in-flight requests within shutdownTimeout.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
