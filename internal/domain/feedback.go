package domain

import (
	"strconv"
	"time"
)

// AnonymousAuthor is recorded as the author when no signed-in user submits feedback.
const AnonymousAuthor = "Anonymous"

// Field limits enforced on submission.
const (
	MaxTextLength     = 5000
	MaxCategoryLength = 50
)

// Sentiment is the coarse label derived from feedback text.
type Sentiment string

// The three sentiment labels. They carry no ordering.
const (
	SentimentPositive Sentiment = "Positive"
	SentimentNegative Sentiment = "Negative"
	SentimentNeutral  Sentiment = "Neutral"
)

// Sentiments lists every label in a fixed order for iteration.
var Sentiments = []Sentiment{SentimentPositive, SentimentNeutral, SentimentNegative}

// Valid reports whether s is one of the three labels.
func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Sentiment) String() string {
	return string(s)
}

// FeedbackID is the repository-assigned identity of a feedback record.
type FeedbackID uint64

// String renders the ID in base 10.
func (id FeedbackID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// ParseFeedbackID parses a base-10 identifier.
func ParseFeedbackID(s string) (FeedbackID, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n == 0 {
		return 0, NewValidationError("id", "must be a positive integer")
	}

	return FeedbackID(n), nil
}

// Feedback is a stored feedback record. Values are built once by the
// repository or the submission use case and never mutated afterwards.
type Feedback struct {
	ID        FeedbackID
	Text      string
	Category  string
	Sentiment Sentiment
	Author    string
	CreatedAt time.Time

	// AttachmentRef is an opaque reference owned by the attachment store.
	// Empty means no attachment.
	AttachmentRef string
}

// HasAttachment reports whether the record references a stored file.
func (f Feedback) HasAttachment() bool {
	return f.AttachmentRef != ""
}

// NewFeedback is the unsaved form of a record handed to the repository.
type NewFeedback struct {
	Text          string
	Category      string
	Sentiment     Sentiment
	Author        string
	CreatedAt     time.Time
	AttachmentRef string
}
