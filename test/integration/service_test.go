//go:build integration

package integration

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"

	feedbackhttp "github.com/jsamuelsen/feedback-analyzer/internal/adapters/http"
	"github.com/jsamuelsen/feedback-analyzer/internal/adapters/http/handlers"
	"github.com/jsamuelsen/feedback-analyzer/internal/adapters/http/middleware"
	"github.com/jsamuelsen/feedback-analyzer/internal/adapters/storage/gormstore"
	"github.com/jsamuelsen/feedback-analyzer/internal/adapters/uploads"
	"github.com/jsamuelsen/feedback-analyzer/internal/analysis/summary"
	"github.com/jsamuelsen/feedback-analyzer/internal/app"
	"github.com/jsamuelsen/feedback-analyzer/internal/platform/config"
	"github.com/jsamuelsen/feedback-analyzer/internal/platform/metrics"
	"github.com/jsamuelsen/feedback-analyzer/internal/platform/session"
	"github.com/jsamuelsen/feedback-analyzer/internal/ports"
)

const (
	testAdminUsername = "admin"
	testAdminPassword = "integration-admin-password"
)

// localService is a feedbackd instance on a loopback port, backed by a
// sqlite file and an upload directory under dir.
type localService struct {
	server *feedbackhttp.Server
	store  *gormstore.Store
}

func startLocalService(dir string) (*localService, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store, err := gormstore.Open(gormstore.DriverSQLite, filepath.Join(dir, "feedback.db"), false)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}

	attachments, err := uploads.New(filepath.Join(dir, "uploads"), []string{".png", ".jpg", ".jpeg", ".gif"})
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("opening uploads: %w", err)
	}

	health := ports.NewHealthRegistry(ports.DefaultCheckTimeout)
	if err := health.Register(store); err != nil {
		_ = store.Close()
		return nil, err
	}

	if err := health.Register(attachments); err != nil {
		_ = store.Close()
		return nil, err
	}

	reg := prometheus.NewRegistry()

	feedback := app.NewFeedbackService(app.FeedbackServiceConfig{
		Repository:  store.Feedback(),
		Attachments: attachments,
		Summarizer:  summary.New(summary.NewSplitter("english"), summary.Config{}),
		Metrics:     metrics.New(reg),
		Logger:      logger,
	})

	accounts, err := app.NewAccountService(app.AccountServiceConfig{
		Users:         store.Users(),
		AdminUsername: testAdminUsername,
		AdminPassword: testAdminPassword,
		BcryptCost:    bcrypt.MinCost,
		Logger:        logger,
	})
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	sessions := middleware.NewSessions(
		session.NewManager("integration-secret-0123456789abcdef", "feedbackd-integration", time.Hour),
		"fb_session", false,
	)

	server := feedbackhttp.New(&config.ServerConfig{
		Host:            "127.0.0.1",
		Port:            0,
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    5 * time.Second,
		IdleTimeout:     30 * time.Second,
		ShutdownTimeout: 5 * time.Second,
		RequestTimeout:  10 * time.Second,
		MaxRequestSize:  5 << 20,
	}, logger)

	feedbackhttp.SetupRouter(server.Engine(), feedbackhttp.RouterConfig{
		Logger:    logger,
		AppConfig: &config.AppConfig{Name: "feedbackd-integration"},
		Timeout:   10 * time.Second,
		Sessions:  sessions,
		Health:    handlers.NewHealthHandler(health, reg, handlers.NewBuildInfo("integration", "local", "now")),
		Feedback:  handlers.NewFeedbackHandler(feedback, ""),
		Summary:   handlers.NewSummaryHandler(feedback),
		Export:    handlers.NewExportHandler(feedback),
		Accounts:  handlers.NewAccountHandler(accounts, sessions),
		Uploads:   handlers.NewUploadsHandler(attachments),
	})

	if _, err := server.Start(); err != nil {
		_ = store.Close()
		return nil, err
	}

	return &localService{server: server, store: store}, nil
}

func (s *localService) baseURL() string {
	return "http://" + s.server.Addr()
}

func (s *localService) stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	shutdownErr := s.server.Shutdown(ctx)
	closeErr := s.store.Close()

	if shutdownErr != nil {
		return shutdownErr
	}

	return closeErr
}
