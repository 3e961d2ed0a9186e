// Package metrics exposes the service's Prometheus counters. A nil
// *Recorder is valid and records nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jsamuelsen/feedback-analyzer/internal/domain"
)

const namespace = "feedback"

// Summary outcomes.
const (
	SummaryRanked   = "ranked"
	SummaryFallback = "fallback"
	SummaryEmpty    = "empty"
)

// Recorder holds the collectors.
type Recorder struct {
	submissions *prometheus.CounterVec
	deletions   prometheus.Counter
	summaries   *prometheus.CounterVec
	iterations  prometheus.Histogram
	exports     *prometheus.CounterVec
}

// New registers the collectors with reg.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		submissions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Feedback records stored, by classified sentiment.",
		}, []string{"sentiment"}),
		deletions: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deletions_total",
			Help:      "Feedback records deleted by administrators.",
		}),
		summaries: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "summaries_total",
			Help:      "Summaries produced, by outcome (ranked, fallback, empty).",
		}, []string{"outcome"}),
		iterations: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "summary_rank_iterations",
			Help:      "Power iterations used to rank sentences.",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 200},
		}),
		exports: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exports_total",
			Help:      "Exports served, by format.",
		}, []string{"format"}),
	}
}

// Submitted counts a stored record.
func (r *Recorder) Submitted(s domain.Sentiment) {
	if r == nil {
		return
	}

	r.submissions.WithLabelValues(s.String()).Inc()
}

// Deleted counts a removed record.
func (r *Recorder) Deleted() {
	if r == nil {
		return
	}

	r.deletions.Inc()
}

// Summarized counts a summary by outcome and observes the iteration count
// when ranking ran.
func (r *Recorder) Summarized(outcome string, iterations int) {
	if r == nil {
		return
	}

	r.summaries.WithLabelValues(outcome).Inc()

	if iterations > 0 {
		r.iterations.Observe(float64(iterations))
	}
}

// Exported counts a served export.
func (r *Recorder) Exported(format string) {
	if r == nil {
		return
	}

	r.exports.WithLabelValues(format).Inc()
}
