package dto

import (
	"encoding/base64"
	"encoding/json"
	"errors"

	"github.com/jsamuelsen/feedback-analyzer/internal/domain"
)

// DefaultLimit is the default number of items per page.
const DefaultLimit = 20

// MaxLimit is the maximum allowed items per page.
const MaxLimit = 100

// ErrInvalidCursor is returned when cursor decoding fails.
var ErrInvalidCursor = errors.New("invalid cursor")

// PaginationRequest represents pagination parameters from the query string.
type PaginationRequest struct {
	// Cursor is an opaque string from a previous response's NextCursor.
	Cursor string `form:"cursor"`

	// Limit is the maximum number of items to return (1-100, default 20).
	// Absent means the default; an explicit 0 fails validation.
	Limit *int `form:"limit" json:"limit" validate:"omitempty,gte=1,lte=100"`
}

// GetLimit returns the limit with defaults applied.
func (p *PaginationRequest) GetLimit() int {
	switch {
	case p.Limit == nil || *p.Limit <= 0:
		return DefaultLimit
	case *p.Limit > MaxLimit:
		return MaxLimit
	default:
		return *p.Limit
	}
}

// After decodes the cursor into the last ID already seen. An empty cursor
// starts from the beginning.
func (p *PaginationRequest) After() (domain.FeedbackID, error) {
	if p.Cursor == "" {
		return 0, nil
	}

	data, err := DecodeCursor(p.Cursor)
	if err != nil {
		return 0, err
	}

	return data.After, nil
}

// PaginatedResponse is a generic paginated response structure.
type PaginatedResponse[T any] struct {
	// Items is the array of items for this page.
	Items []T `json:"items"`

	// NextCursor is the cursor to use for the next page.
	// Empty if there are no more items.
	NextCursor string `json:"nextCursor,omitempty"`

	// HasMore indicates whether there are more items after this page.
	HasMore bool `json:"hasMore"`
}

// NewPaginatedResponse creates a new paginated response.
// Pass limit+1 items to detect if there are more pages, then trim to limit.
func NewPaginatedResponse[T any](items []T, limit int, lastID func(T) domain.FeedbackID) *PaginatedResponse[T] {
	hasMore := len(items) > limit
	if hasMore {
		items = items[:limit]
	}

	if items == nil {
		items = []T{}
	}

	var nextCursor string

	if hasMore && len(items) > 0 && lastID != nil {
		nextCursor = EncodeCursor(&CursorData{After: lastID(items[len(items)-1])})
	}

	return &PaginatedResponse[T]{
		Items:      items,
		NextCursor: nextCursor,
		HasMore:    hasMore,
	}
}

// CursorData is the position encoded in a pagination cursor. Records are
// listed in ascending ID order, so the last ID seen is enough.
type CursorData struct {
	After domain.FeedbackID `json:"after"`
}

// EncodeCursor encodes cursor data to a base64 string.
func EncodeCursor(data *CursorData) string {
	if data == nil {
		return ""
	}

	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return ""
	}

	return base64.RawURLEncoding.EncodeToString(jsonBytes)
}

// DecodeCursor decodes a base64 cursor string to cursor data.
func DecodeCursor(encoded string) (*CursorData, error) {
	jsonBytes, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrInvalidCursor
	}

	var data CursorData

	err = json.Unmarshal(jsonBytes, &data)
	if err != nil || data.After == 0 {
		return nil, ErrInvalidCursor
	}

	return &data, nil
}
