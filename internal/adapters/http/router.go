package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/feedback-analyzer/internal/adapters/http/dto"
	"github.com/jsamuelsen/feedback-analyzer/internal/adapters/http/handlers"
	"github.com/jsamuelsen/feedback-analyzer/internal/adapters/http/middleware"
	"github.com/jsamuelsen/feedback-analyzer/internal/platform/config"
	"github.com/jsamuelsen/feedback-analyzer/internal/platform/telemetry"
)

// DefaultRequestTimeout bounds API requests when no timeout is configured.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains everything the router wires together.
type RouterConfig struct {
	Logger    *slog.Logger
	AppConfig *config.AppConfig
	CORS      config.CORSConfig

	// Timeout bounds /api/v1 requests. Zero disables the deadline.
	Timeout time.Duration

	Sessions *middleware.Sessions

	Health   *handlers.HealthHandler
	Feedback *handlers.FeedbackHandler
	Summary  *handlers.SummaryHandler
	Export   *handlers.ExportHandler
	Accounts *handlers.AccountHandler
	Uploads  *handlers.UploadsHandler

	// UploadsPrefix is the public path of stored screenshots.
	UploadsPrefix string
}

// SetupRouter configures middleware and routes on engine. Middleware runs
// in this order:
//  1. Recovery
//  2. Request ID
//  3. Correlation ID
//  4. OpenTelemetry tracing, then trace ID logging
//  5. Logging (skips /-/ and screenshot downloads)
//  6. CORS
//  7. Session evaluation
//
// /api/v1 additionally carries the request timeout. Nil handlers leave their
// routes unregistered.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	uploadsPrefix := cfg.UploadsPrefix
	if uploadsPrefix == "" {
		uploadsPrefix = dto.DefaultUploadsPrefix
	}

	serviceName := "feedbackd"
	if cfg.AppConfig != nil {
		serviceName = cfg.AppConfig.Name
	}

	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.TracingMiddleware(serviceName),
		telemetry.Middleware(),
		middleware.Logging(uploadsPrefix+"/"),
		middleware.CORS(cfg.CORS.AllowedOrigins, cfg.CORS.MaxAge),
	)

	if cfg.Sessions != nil {
		engine.Use(cfg.Sessions.Middleware())
	}

	if cfg.Health != nil {
		cfg.Health.RegisterHealthRoutesOnEngine(engine)
	}

	if cfg.Uploads != nil {
		cfg.Uploads.RegisterUploadRoutes(engine, uploadsPrefix)
	}

	apiV1 := engine.Group("/api/v1")
	if cfg.Timeout > 0 {
		apiV1.Use(middleware.Timeout(cfg.Timeout))
	}

	setupAPIRoutes(apiV1, cfg)
}

func setupAPIRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.Feedback != nil {
		cfg.Feedback.RegisterFeedbackRoutes(rg)
	}

	if cfg.Summary != nil {
		cfg.Summary.RegisterSummaryRoutes(rg)
	}

	if cfg.Export != nil {
		cfg.Export.RegisterExportRoutes(rg)
	}

	if cfg.Accounts != nil {
		cfg.Accounts.RegisterAccountRoutes(rg)
	}
}
