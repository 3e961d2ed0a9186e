package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/feedback-analyzer/internal/domain"
)

func TestRecorder_Counts(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := New(reg)

	r.Submitted(domain.SentimentPositive)
	r.Submitted(domain.SentimentPositive)
	r.Submitted(domain.SentimentNegative)
	r.Deleted()
	r.Summarized(SummaryRanked, 12)
	r.Summarized(SummaryFallback, 0)
	r.Exported("csv")

	assert.InDelta(t, 2, testutil.ToFloat64(r.submissions.WithLabelValues("Positive")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.submissions.WithLabelValues("Negative")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.deletions), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.summaries.WithLabelValues(SummaryRanked)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.summaries.WithLabelValues(SummaryFallback)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.exports.WithLabelValues("csv")), 0)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, mf := range families {
		names = append(names, mf.GetName())
	}

	assert.Contains(t, names, "feedback_summary_rank_iterations")
	assert.Contains(t, names, "feedback_submissions_total")
}

func TestRecorder_NilIsNoop(t *testing.T) {
	var r *Recorder

	assert.NotPanics(t, func() {
		r.Submitted(domain.SentimentNeutral)
		r.Deleted()
		r.Summarized(SummaryEmpty, 0)
		r.Exported("json")
	})
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)

	assert.Panics(t, func() { New(reg) })
}
