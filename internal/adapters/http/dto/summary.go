package dto

import (
	"github.com/jsamuelsen/feedback-analyzer/internal/app"
	"github.com/jsamuelsen/feedback-analyzer/internal/domain"
)

// NoSummaryText is returned when extraction selected no sentence.
const NoSummaryText = "Summary not generated."

// SummaryQuery carries the optional sentence count of a single summary.
type SummaryQuery struct {
	Sentences int `form:"sentences" json:"sentences" validate:"omitempty,gte=1"`
}

// SummaryResponse is the summary of one record.
type SummaryResponse struct {
	ID       domain.FeedbackID `json:"id"`
	Summary  string            `json:"summary"`
	Degraded bool              `json:"degraded"`
}

// FromSummary converts a summary, substituting NoSummaryText for an empty one.
func FromSummary(s app.Summary) SummaryResponse {
	text := s.Text
	if text == "" {
		text = NoSummaryText
	}

	return SummaryResponse{ID: s.FeedbackID, Summary: text, Degraded: s.Degraded}
}

// BatchSummaryRequest asks for summaries of several records.
type BatchSummaryRequest struct {
	IDs       []domain.FeedbackID `json:"ids"       validate:"required,min=1,max=50,dive,gt=0"`
	Sentences int                 `json:"sentences" validate:"omitempty,gte=1"`
}

// BatchSummaryItem is one entry of a batch response: either a summary or an error.
type BatchSummaryItem struct {
	ID       domain.FeedbackID `json:"id"`
	Summary  *string           `json:"summary,omitempty"`
	Degraded bool              `json:"degraded,omitempty"`
	Error    *ErrorDetail      `json:"error,omitempty"`
}

// BatchSummaryResponse lists batch entries in request order.
type BatchSummaryResponse struct {
	Items []BatchSummaryItem `json:"items"`
}

// FromBatch converts batch results, mapping per-record errors like
// single-record responses would.
func FromBatch(results []app.BatchSummary) BatchSummaryResponse {
	items := make([]BatchSummaryItem, 0, len(results))

	for _, r := range results {
		item := BatchSummaryItem{ID: r.FeedbackID}

		if r.Err != nil {
			_, errResp := MapError(r.Err)
			item.Error = &errResp.Error
		} else {
			s := FromSummary(r.Summary)
			item.Summary = &s.Summary
			item.Degraded = s.Degraded
		}

		items = append(items, item)
	}

	return BatchSummaryResponse{Items: items}
}
