// Package memory provides in-process repositories for tests and the
// "memory" storage driver.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/jsamuelsen/feedback-analyzer/internal/domain"
)

// FeedbackStore is a FeedbackRepository backed by a slice kept in ID order.
type FeedbackStore struct {
	mu      sync.RWMutex
	records []domain.Feedback
	nextID  domain.FeedbackID
}

// NewFeedbackStore creates an empty store. IDs start at 1.
func NewFeedbackStore() *FeedbackStore {
	return &FeedbackStore{nextID: 1}
}

// Insert stores f and assigns the next ID.
func (s *FeedbackStore) Insert(ctx context.Context, f domain.NewFeedback) (domain.Feedback, error) {
	if err := ctx.Err(); err != nil {
		return domain.Feedback{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := domain.Feedback{
		ID:            s.nextID,
		Text:          f.Text,
		Category:      f.Category,
		Sentiment:     f.Sentiment,
		Author:        f.Author,
		CreatedAt:     f.CreatedAt,
		AttachmentRef: f.AttachmentRef,
	}
	s.nextID++
	s.records = append(s.records, rec)

	return rec, nil
}

// All returns a copy of every record.
func (s *FeedbackStore) All(ctx context.Context) ([]domain.Feedback, error) {
	return s.List(ctx, 0, 0)
}

// List returns up to limit records after the given ID.
func (s *FeedbackStore) List(ctx context.Context, after domain.FeedbackID, limit int) ([]domain.Feedback, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	start, _ := slices.BinarySearchFunc(s.records, after+1, func(f domain.Feedback, id domain.FeedbackID) int {
		return compareIDs(f.ID, id)
	})

	end := len(s.records)
	if limit > 0 && start+limit < end {
		end = start + limit
	}

	out := make([]domain.Feedback, end-start)
	copy(out, s.records[start:end])

	return out, nil
}

// Get returns the record with the given ID.
func (s *FeedbackStore) Get(ctx context.Context, id domain.FeedbackID) (domain.Feedback, error) {
	if err := ctx.Err(); err != nil {
		return domain.Feedback{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index(id)
	if !ok {
		return domain.Feedback{}, domain.NewNotFoundError("feedback", id.String())
	}

	return s.records[i], nil
}

// Delete removes the record with the given ID and returns it.
func (s *FeedbackStore) Delete(ctx context.Context, id domain.FeedbackID) (domain.Feedback, error) {
	if err := ctx.Err(); err != nil {
		return domain.Feedback{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index(id)
	if !ok {
		return domain.Feedback{}, domain.NewNotFoundError("feedback", id.String())
	}

	rec := s.records[i]
	s.records = slices.Delete(s.records, i, i+1)

	return rec, nil
}

func (s *FeedbackStore) index(id domain.FeedbackID) (int, bool) {
	return slices.BinarySearchFunc(s.records, id, func(f domain.Feedback, id domain.FeedbackID) int {
		return compareIDs(f.ID, id)
	})
}

func compareIDs(a, b domain.FeedbackID) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// UserStore is a UserRepository keyed by lower-cased email.
type UserStore struct {
	mu     sync.RWMutex
	users  map[string]domain.User
	nextID uint64
}

// NewUserStore creates an empty account store.
func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]domain.User), nextID: 1}
}

// Create stores u, rejecting duplicate emails.
func (s *UserStore) Create(ctx context.Context, u domain.User) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, err
	}

	key := strings.ToLower(strings.TrimSpace(u.Email))

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[key]; exists {
		return domain.User{}, domain.NewConflictError("user", "email already registered")
	}

	u.ID = s.nextID
	u.Email = key
	s.nextID++
	s.users[key] = u

	return u, nil
}

// GetByEmail returns the account registered under email.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return domain.User{}, domain.NewNotFoundError("user", email)
	}

	return u, nil
}
