// Package app contains application services that orchestrate use cases.
// Services depend on port interfaces; the HTTP layer evaluates the caller's
// identity once per request and passes it in as a domain.Principal.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"

	"github.com/jsamuelsen/feedback-analyzer/internal/analysis/export"
	"github.com/jsamuelsen/feedback-analyzer/internal/analysis/sentiment"
	"github.com/jsamuelsen/feedback-analyzer/internal/analysis/stats"
	"github.com/jsamuelsen/feedback-analyzer/internal/analysis/summary"
	"github.com/jsamuelsen/feedback-analyzer/internal/app/staging"
	"github.com/jsamuelsen/feedback-analyzer/internal/domain"
	"github.com/jsamuelsen/feedback-analyzer/internal/platform/logging"
	"github.com/jsamuelsen/feedback-analyzer/internal/platform/metrics"
	"github.com/jsamuelsen/feedback-analyzer/internal/platform/telemetry"
	"github.com/jsamuelsen/feedback-analyzer/internal/ports"
)

// MaxBatchSize caps the number of records in one batch summary request.
const MaxBatchSize = 50

// Export formats, also used as metric labels.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// Upload is an attached file as received from the caller.
type Upload struct {
	Name    string
	Content io.Reader
}

// SubmitInput is a feedback submission.
type SubmitInput struct {
	Text       string
	Category   string
	Screenshot *Upload
}

// Summary is an extractive summary of one record. Text is empty when no
// sentence could be extracted.
type Summary struct {
	FeedbackID domain.FeedbackID
	Text       string
	Sentences  []string
	Degraded   bool
}

// BatchSummary is one entry of a batch summary. Exactly one of Summary and
// Err is meaningful.
type BatchSummary struct {
	FeedbackID domain.FeedbackID
	Summary    Summary
	Err        error
}

// FeedbackService orchestrates the feedback use cases.
type FeedbackService struct {
	repo        ports.FeedbackRepository
	attachments ports.AttachmentStore
	classifier  *sentiment.Classifier
	summarizer  *summary.Summarizer
	metrics     *metrics.Recorder
	logger      *slog.Logger
	now         func() time.Time

	defaultSentences int
	maxSentences     int
	concurrency      int
}

// FeedbackServiceConfig contains the dependencies of the feedback service.
// Repository is required; everything else has a usable default.
type FeedbackServiceConfig struct {
	Repository  ports.FeedbackRepository
	Attachments ports.AttachmentStore
	Classifier  *sentiment.Classifier
	Summarizer  *summary.Summarizer
	Metrics     *metrics.Recorder
	Logger      *slog.Logger
	Clock       func() time.Time

	DefaultSentences int
	MaxSentences     int
	Concurrency      int
}

// NewFeedbackService creates a feedback service. It panics without a repository.
func NewFeedbackService(cfg FeedbackServiceConfig) *FeedbackService {
	if cfg.Repository == nil {
		panic("app: feedback repository is required")
	}

	svc := &FeedbackService{
		repo:             cfg.Repository,
		attachments:      cfg.Attachments,
		classifier:       cfg.Classifier,
		summarizer:       cfg.Summarizer,
		metrics:          cfg.Metrics,
		logger:           cfg.Logger,
		now:              cfg.Clock,
		defaultSentences: cfg.DefaultSentences,
		maxSentences:     cfg.MaxSentences,
		concurrency:      cfg.Concurrency,
	}

	if svc.classifier == nil {
		svc.classifier = sentiment.NewClassifier(sentiment.DefaultLexicon(), sentiment.MatchSubstring)
	}

	if svc.summarizer == nil {
		svc.summarizer = summary.New(summary.NewSplitter("english"), summary.Config{})
	}

	if svc.logger == nil {
		svc.logger = slog.Default()
	}

	svc.logger = svc.logger.With(slog.String("component", "app.FeedbackService"))

	if svc.now == nil {
		svc.now = time.Now
	}

	if svc.maxSentences < 1 {
		svc.maxSentences = 10
	}

	if svc.defaultSentences < 1 || svc.defaultSentences > svc.maxSentences {
		svc.defaultSentences = 1
	}

	if svc.concurrency < 1 {
		svc.concurrency = 4
	}

	return svc
}

// Submit classifies and stores a feedback record on behalf of p. The
// screenshot, if any, is stored first and removed again if the insert fails.
func (s *FeedbackService) Submit(ctx context.Context, in SubmitInput, p domain.Principal) (domain.Feedback, error) {
	logger := logging.FromContextOr(ctx, s.logger)

	text := strings.TrimSpace(in.Text)
	category := strings.TrimSpace(in.Category)

	err := validateSubmission(text, category)
	if err != nil {
		return domain.Feedback{}, fmt.Errorf("validating feedback: %w", err)
	}

	if in.Screenshot != nil && s.attachments == nil {
		return domain.Feedback{}, domain.NewValidationError("screenshot", "attachments are not enabled")
	}

	record := domain.NewFeedback{
		Text:      text,
		Category:  category,
		Sentiment: s.classifier.Classify(text),
		Author:    p.AuthorName(),
		CreatedAt: s.now().UTC(),
	}

	var stored domain.Feedback

	unit := staging.New()

	if in.Screenshot != nil {
		upload := in.Screenshot

		err = unit.Stage(staging.NewAction("store screenshot",
			func(ctx context.Context) error {
				ref, saveErr := s.attachments.Save(ctx, upload.Name, upload.Content)
				if saveErr != nil {
					return saveErr
				}

				record.AttachmentRef = ref

				return nil
			},
			func(ctx context.Context) error {
				return s.attachments.Remove(ctx, record.AttachmentRef)
			},
		))
		if err != nil {
			return domain.Feedback{}, fmt.Errorf("staging screenshot: %w", err)
		}
	}

	err = unit.Stage(staging.NewAction("insert feedback",
		func(ctx context.Context) error {
			var insertErr error

			stored, insertErr = s.repo.Insert(ctx, record)

			return insertErr
		},
		nil,
	))
	if err != nil {
		return domain.Feedback{}, fmt.Errorf("staging insert: %w", err)
	}

	err = unit.Commit(ctx)
	if err != nil {
		var rollbackErr *staging.RollbackError
		if errors.As(err, &rollbackErr) {
			logger.ErrorContext(ctx, "screenshot left behind after failed submission",
				slog.String("attachment", record.AttachmentRef),
				slog.Any("error", err),
			)
		}

		return domain.Feedback{}, fmt.Errorf("submitting feedback: %w", err)
	}

	s.metrics.Submitted(stored.Sentiment)

	logger.InfoContext(ctx, "feedback submitted",
		slog.String("feedback_id", stored.ID.String()),
		slog.String("sentiment", stored.Sentiment.String()),
		slog.Bool("screenshot", stored.HasAttachment()),
	)

	return stored, nil
}

func validateSubmission(text, category string) error {
	if text == "" {
		return domain.NewValidationError("text", "is required")
	}

	if utf8.RuneCountInString(text) > domain.MaxTextLength {
		return domain.NewValidationError("text", fmt.Sprintf("must be at most %d characters", domain.MaxTextLength))
	}

	if utf8.RuneCountInString(category) > domain.MaxCategoryLength {
		return domain.NewValidationError("category", fmt.Sprintf("must be at most %d characters", domain.MaxCategoryLength))
	}

	return nil
}

// List returns up to limit records after the given ID, oldest first.
func (s *FeedbackService) List(ctx context.Context, after domain.FeedbackID, limit int) ([]domain.Feedback, error) {
	records, err := s.repo.List(ctx, after, limit)
	if err != nil {
		return nil, fmt.Errorf("listing feedback: %w", err)
	}

	return records, nil
}

// Get returns a single record.
func (s *FeedbackService) Get(ctx context.Context, id domain.FeedbackID) (domain.Feedback, error) {
	record, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Feedback{}, fmt.Errorf("getting feedback: %w", err)
	}

	return record, nil
}

// Delete removes a record and its screenshot. A screenshot that cannot be
// removed is logged and does not fail the delete.
func (s *FeedbackService) Delete(ctx context.Context, id domain.FeedbackID) error {
	logger := logging.FromContextOr(ctx, s.logger).With(slog.String("feedback_id", id.String()))

	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting feedback: %w", err)
	}

	s.metrics.Deleted()

	if removed.HasAttachment() && s.attachments != nil {
		rmErr := s.attachments.Remove(ctx, removed.AttachmentRef)
		if rmErr != nil {
			logger.WarnContext(ctx, "screenshot not removed",
				slog.String("attachment", removed.AttachmentRef),
				slog.Any("error", rmErr),
			)
		}
	}

	logger.InfoContext(ctx, "feedback deleted")

	return nil
}

// Stats aggregates every stored record.
func (s *FeedbackService) Stats(ctx context.Context) (stats.Report, error) {
	records, err := s.repo.All(ctx)
	if err != nil {
		return stats.Report{}, fmt.Errorf("loading feedback for stats: %w", err)
	}

	return stats.Aggregate(records), nil
}

// Summarize extracts a summary of one record's text. sentences == 0 selects
// the configured default.
func (s *FeedbackService) Summarize(ctx context.Context, id domain.FeedbackID, sentences int) (Summary, error) {
	count, err := s.sentenceCount(sentences)
	if err != nil {
		return Summary{}, err
	}

	ctx, span := telemetry.StartSpan(ctx, "feedback.summarize")
	defer span.End()

	span.SetAttributes(
		attribute.String("feedback.id", id.String()),
		attribute.Int("summary.sentences", count),
	)

	logger := logging.FromContextOr(ctx, s.logger).With(slog.String("feedback_id", id.String()))

	record, err := s.repo.Get(ctx, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return Summary{}, fmt.Errorf("getting feedback to summarize: %w", err)
	}

	if strings.TrimSpace(record.Text) == "" {
		return Summary{}, fmt.Errorf("feedback %s: %w", id, summary.ErrEmptyInput)
	}

	result, err := s.summarizer.Extract(record.Text, count)
	if err != nil {
		telemetry.RecordError(span, err)
		return Summary{}, fmt.Errorf("summarizing feedback %s: %w", id, err)
	}

	out := Summary{
		FeedbackID: id,
		Text:       result.Text(),
		Sentences:  result.Sentences,
		Degraded:   result.Degraded,
	}

	span.SetAttributes(
		attribute.Int("summary.total_sentences", result.Total),
		attribute.Bool("summary.degraded", result.Degraded),
	)

	switch {
	case out.Text == "":
		s.metrics.Summarized(metrics.SummaryEmpty, 0)
		logger.WarnContext(ctx, "summary produced no sentences")
	case result.Degraded:
		s.metrics.Summarized(metrics.SummaryFallback, result.Iterations)
		logger.WarnContext(ctx, "summary fell back to leading sentences",
			slog.Int("sentences", result.Total),
		)
	default:
		s.metrics.Summarized(metrics.SummaryRanked, result.Iterations)
		logger.DebugContext(ctx, "summary ranked",
			slog.Int("sentences", result.Total),
			slog.Int("iterations", result.Iterations),
		)
	}

	return out, nil
}

// SummarizeBatch summarizes each record independently with bounded
// concurrency. Per-record failures are reported in the result; the call
// itself fails only on invalid input.
func (s *FeedbackService) SummarizeBatch(ctx context.Context, ids []domain.FeedbackID, sentences int) ([]BatchSummary, error) {
	if len(ids) == 0 {
		return nil, domain.NewValidationError("ids", "at least one id is required")
	}

	if len(ids) > MaxBatchSize {
		return nil, domain.NewValidationError("ids", fmt.Sprintf("at most %d ids per request", MaxBatchSize))
	}

	_, err := s.sentenceCount(sentences)
	if err != nil {
		return nil, err
	}

	fns := make([]func(context.Context) (Summary, error), len(ids))
	for i, id := range ids {
		fns[i] = func(ctx context.Context) (Summary, error) {
			return s.Summarize(ctx, id, sentences)
		}
	}

	results := ParallelPartialLimit(ctx, s.concurrency, fns...)

	out := make([]BatchSummary, len(ids))
	for i, r := range results {
		out[i] = BatchSummary{FeedbackID: ids[i], Summary: r.Value, Err: r.Err}
	}

	return out, nil
}

func (s *FeedbackService) sentenceCount(requested int) (int, error) {
	switch {
	case requested == 0:
		return s.defaultSentences, nil
	case requested < 0 || requested > s.maxSentences:
		return 0, domain.NewValidationError("sentences", fmt.Sprintf("must be between 1 and %d", s.maxSentences))
	default:
		return requested, nil
	}
}

// ExportCSV renders every record as CSV.
func (s *FeedbackService) ExportCSV(ctx context.Context) ([]byte, error) {
	return s.export(ctx, FormatCSV, export.FormatCSV)
}

// ExportJSON renders every record as indented JSON.
func (s *FeedbackService) ExportJSON(ctx context.Context) ([]byte, error) {
	return s.export(ctx, FormatJSON, export.FormatJSON)
}

func (s *FeedbackService) export(ctx context.Context, format string, render func([]domain.Feedback) ([]byte, error)) ([]byte, error) {
	records, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading feedback for %s export: %w", format, err)
	}

	body, err := render(records)
	if err != nil {
		return nil, fmt.Errorf("rendering %s export: %w", format, err)
	}

	s.metrics.Exported(format)

	logging.FromContextOr(ctx, s.logger).InfoContext(ctx, "feedback exported",
		slog.String("format", format),
		slog.Int("records", len(records)),
	)

	return body, nil
}
