// Package export renders feedback records as CSV and JSON downloads.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/jsamuelsen/feedback-analyzer/internal/domain"
)

// TimestampLayout renders creation times as YYYY-MM-DD HH:MM:SS (UTC).
const TimestampLayout = "2006-01-02 15:04:05"

// Download file names.
const (
	CSVFilename  = "feedback.csv"
	JSONFilename = "feedback.json"
)

// Header is the fixed CSV column order.
var Header = []string{"ID", "Text", "Category", "Sentiment", "User", "Timestamp", "Screenshot"}

// Record is the JSON export shape. Field order is the serialized key order.
type Record struct {
	ID         domain.FeedbackID `json:"id"`
	Text       string            `json:"text"`
	Category   string            `json:"category"`
	Sentiment  domain.Sentiment  `json:"sentiment"`
	UserName   string            `json:"user_name"`
	Timestamp  string            `json:"timestamp"`
	Screenshot *string           `json:"screenshot"`
}

// FormatTimestamp renders t with TimestampLayout in UTC.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// NewRecord converts a stored record into its export shape.
func NewRecord(f domain.Feedback) Record {
	rec := Record{
		ID:        f.ID,
		Text:      f.Text,
		Category:  f.Category,
		Sentiment: f.Sentiment,
		UserName:  f.Author,
		Timestamp: FormatTimestamp(f.CreatedAt),
	}

	if f.HasAttachment() {
		ref := f.AttachmentRef
		rec.Screenshot = &ref
	}

	return rec
}

// WriteCSV writes the header and one row per record.
func WriteCSV(w io.Writer, records []domain.Feedback) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, f := range records {
		row := []string{
			f.ID.String(),
			f.Text,
			f.Category,
			f.Sentiment.String(),
			f.Author,
			FormatTimestamp(f.CreatedAt),
			f.AttachmentRef,
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row %s: %w", f.ID, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// FormatCSV renders records as CSV bytes.
func FormatCSV(records []domain.Feedback) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, records); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// FormatJSON renders records as a pretty-printed JSON array without HTML
// escaping. An empty input yields "[]".
func FormatJSON(records []domain.Feedback) ([]byte, error) {
	out := make([]Record, 0, len(records))
	for _, f := range records {
		out = append(out, NewRecord(f))
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(out); err != nil {
		return nil, fmt.Errorf("encoding json export: %w", err)
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
