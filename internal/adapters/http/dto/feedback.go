package dto

import (
	"path"

	"github.com/jsamuelsen/feedback-analyzer/internal/analysis/export"
	"github.com/jsamuelsen/feedback-analyzer/internal/analysis/stats"
	"github.com/jsamuelsen/feedback-analyzer/internal/domain"
)

// DefaultUploadsPrefix is the public path stored screenshots are served under.
const DefaultUploadsPrefix = "/uploads"

// SubmitFeedbackRequest is the multipart form of a submission. The optional
// screenshot travels as the "screenshot" file part.
type SubmitFeedbackRequest struct {
	Text     string `form:"text"     validate:"required,notempty,max=5000"`
	Category string `form:"category" validate:"max=50"`
}

// FeedbackResponse is a stored record as returned by the API.
type FeedbackResponse struct {
	ID         domain.FeedbackID `json:"id"`
	Text       string            `json:"text"`
	Category   string            `json:"category"`
	Sentiment  domain.Sentiment  `json:"sentiment"`
	UserName   string            `json:"user_name"`
	Timestamp  string            `json:"timestamp"`
	Screenshot *string           `json:"screenshot"`
}

// FromFeedback converts a record, rendering its screenshot as a public URL
// path under prefix.
func FromFeedback(f domain.Feedback, prefix string) FeedbackResponse {
	resp := FeedbackResponse{
		ID:        f.ID,
		Text:      f.Text,
		Category:  f.Category,
		Sentiment: f.Sentiment,
		UserName:  f.Author,
		Timestamp: export.FormatTimestamp(f.CreatedAt),
	}

	if f.HasAttachment() {
		url := path.Join(prefix, f.AttachmentRef)
		resp.Screenshot = &url
	}

	return resp
}

// FromFeedbackList converts records in order.
func FromFeedbackList(records []domain.Feedback, prefix string) []FeedbackResponse {
	out := make([]FeedbackResponse, 0, len(records))
	for _, f := range records {
		out = append(out, FromFeedback(f, prefix))
	}

	return out
}

// StatsResponse is the aggregate view of all records.
type StatsResponse struct {
	Total       int            `json:"total"`
	ByCategory  map[string]int `json:"by_category"`
	BySentiment map[string]int `json:"by_sentiment"`
}

// FromReport converts an aggregate report. Only the three labels are
// carried over, and only when counted.
func FromReport(r stats.Report) StatsResponse {
	resp := StatsResponse{
		Total:       r.Total,
		ByCategory:  make(map[string]int, len(r.ByCategory)),
		BySentiment: make(map[string]int, len(r.BySentiment)),
	}

	for k, v := range r.ByCategory {
		resp.ByCategory[k] = v
	}

	for _, label := range domain.Sentiments {
		if n := r.BySentiment[label]; n > 0 {
			resp.BySentiment[label.String()] = n
		}
	}

	return resp
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}
