package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jsamuelsen/feedback-analyzer/internal/adapters/http/middleware"
	"github.com/jsamuelsen/feedback-analyzer/internal/adapters/storage/memory"
	"github.com/jsamuelsen/feedback-analyzer/internal/adapters/uploads"
	"github.com/jsamuelsen/feedback-analyzer/internal/analysis/summary"
	"github.com/jsamuelsen/feedback-analyzer/internal/app"
	"github.com/jsamuelsen/feedback-analyzer/internal/domain"
	"github.com/jsamuelsen/feedback-analyzer/internal/platform/metrics"
	"github.com/jsamuelsen/feedback-analyzer/internal/platform/session"
)

const (
	harnessSecret   = "handlers-test-secret-0123456789abcdef"
	harnessCookie   = "fb_session"
	harnessAdmin    = "admin"
	harnessAdminPwd = "admin-password"
)

var harnessNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

// harness is a fully wired router over in-memory storage.
type harness struct {
	router   *gin.Engine
	records  *memory.FeedbackStore
	users    *memory.UserStore
	store    *uploads.Store
	manager  *session.Manager
	registry *prometheus.Registry
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	store, err := uploads.New(t.TempDir(), []string{".png", ".jpg"})
	require.NoError(t, err)

	h := &harness{
		records:  memory.NewFeedbackStore(),
		users:    memory.NewUserStore(),
		store:    store,
		manager:  session.NewManager(harnessSecret, "feedbackd-test", time.Hour),
		registry: prometheus.NewRegistry(),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	feedback := app.NewFeedbackService(app.FeedbackServiceConfig{
		Repository:       h.records,
		Attachments:      store,
		Summarizer:       summary.New(summary.NewRegexSplitter(), summary.Config{}),
		Metrics:          metrics.New(h.registry),
		Logger:           logger,
		Clock:            func() time.Time { return harnessNow },
		DefaultSentences: 1,
		MaxSentences:     5,
		Concurrency:      2,
	})

	accounts, err := app.NewAccountService(app.AccountServiceConfig{
		Users:         h.users,
		AdminUsername: harnessAdmin,
		AdminPassword: harnessAdminPwd,
		BcryptCost:    bcrypt.MinCost,
		Logger:        logger,
	})
	require.NoError(t, err)

	sessions := middleware.NewSessions(h.manager, harnessCookie, false)

	h.router = gin.New()
	h.router.Use(sessions.Middleware())

	api := h.router.Group("/api/v1")
	NewFeedbackHandler(feedback, "").RegisterFeedbackRoutes(api)
	NewSummaryHandler(feedback).RegisterSummaryRoutes(api)
	NewExportHandler(feedback).RegisterExportRoutes(api)
	NewAccountHandler(accounts, sessions).RegisterAccountRoutes(api)
	NewUploadsHandler(store).RegisterUploadRoutes(h.router, "")

	return h
}

// cookie issues a session cookie for p.
func (h *harness) cookie(t *testing.T, p domain.Principal) *http.Cookie {
	t.Helper()

	token, _, err := h.manager.Issue(p)
	require.NoError(t, err)

	return &http.Cookie{Name: harnessCookie, Value: token}
}

func (h *harness) adminCookie(t *testing.T) *http.Cookie {
	t.Helper()

	return h.cookie(t, domain.Principal{Subject: harnessAdmin, Name: harnessAdmin, Role: domain.RoleAdmin})
}

// seed stores records directly, bypassing the submission use case.
func (h *harness) seed(t *testing.T, texts ...string) []domain.Feedback {
	t.Helper()

	out := make([]domain.Feedback, 0, len(texts))

	for _, text := range texts {
		f, err := h.records.Insert(t.Context(), domain.NewFeedback{
			Text:      text,
			Category:  "General",
			Sentiment: domain.SentimentNeutral,
			Author:    domain.AnonymousAuthor,
			CreatedAt: harnessNow,
		})
		require.NoError(t, err)

		out = append(out, f)
	}

	return out
}

func (h *harness) do(req *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)

	return w
}

func jsonRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	return req
}

// multipartRequest builds a submission form. A non-empty fileName attaches
// fileBody as the screenshot part.
func multipartRequest(t *testing.T, fields map[string]string, fileName string, fileBody []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer

	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}

	if fileName != "" {
		part, err := mw.CreateFormFile(screenshotField, fileName)
		require.NoError(t, err)

		_, err = part.Write(fileBody)
		require.NoError(t, err)
	}

	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/feedback", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return req
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())

	return v
}
