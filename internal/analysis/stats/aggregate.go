// Package stats computes count summaries over a snapshot of feedback records.
package stats

import "github.com/jsamuelsen/feedback-analyzer/internal/domain"

// Uncategorized is the group key used for records with an empty category.
const Uncategorized = "uncategorized"

// Report is the aggregate view over a set of records. The values of
// ByCategory and BySentiment each sum to Total.
type Report struct {
	Total       int                      `json:"total"`
	ByCategory  map[string]int           `json:"by_category"`
	BySentiment map[domain.Sentiment]int `json:"by_sentiment"`
}

// Aggregate counts records by category (verbatim, case-sensitive) and by
// sentiment. Sentiment labels with no records are absent from the map.
func Aggregate(records []domain.Feedback) Report {
	report := Report{
		Total:       len(records),
		ByCategory:  make(map[string]int),
		BySentiment: make(map[domain.Sentiment]int),
	}

	for _, r := range records {
		category := r.Category
		if category == "" {
			category = Uncategorized
		}

		report.ByCategory[category]++
		report.BySentiment[r.Sentiment]++
	}

	return report
}
