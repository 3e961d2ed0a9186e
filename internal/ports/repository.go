// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port conventions:
//   - Context as first parameter for cancellation and deadlines
//   - Return domain types, never storage rows or infrastructure types
//   - Missing records surface as domain.ErrNotFound, duplicates as domain.ErrConflict
package ports

import (
	"context"
	"io"

	"github.com/jsamuelsen/feedback-analyzer/internal/domain"
)

// FeedbackRepository persists feedback records. Implementations build
// immutable domain.Feedback values; callers never see storage rows.
type FeedbackRepository interface {
	// Insert stores a new record and returns it with its assigned ID.
	Insert(ctx context.Context, f domain.NewFeedback) (domain.Feedback, error)

	// All returns every record in ascending ID order.
	All(ctx context.Context) ([]domain.Feedback, error)

	// List returns up to limit records with ID greater than after, in
	// ascending ID order. A limit <= 0 means no limit.
	List(ctx context.Context, after domain.FeedbackID, limit int) ([]domain.Feedback, error)

	// Get returns a single record.
	// Returns domain.ErrNotFound if the record does not exist.
	Get(ctx context.Context, id domain.FeedbackID) (domain.Feedback, error)

	// Delete removes a record and returns what was removed so the caller
	// can release its attachment.
	// Returns domain.ErrNotFound if the record does not exist.
	Delete(ctx context.Context, id domain.FeedbackID) (domain.Feedback, error)
}

// UserRepository persists registered accounts.
type UserRepository interface {
	// Create stores a new account and returns it with its assigned ID.
	// Returns domain.ErrConflict if the email is already registered.
	Create(ctx context.Context, u domain.User) (domain.User, error)

	// GetByEmail looks an account up by its (case-insensitive) email.
	// Returns domain.ErrNotFound if no account matches.
	GetByEmail(ctx context.Context, email string) (domain.User, error)
}

// AttachmentStore keeps uploaded screenshots. References are opaque to
// everything but the store.
type AttachmentStore interface {
	// Save writes the content and returns a reference to it. The original
	// name only contributes its extension.
	// Returns domain.ErrValidation if the extension is not allowed.
	Save(ctx context.Context, originalName string, r io.Reader) (string, error)

	// Remove deletes a stored attachment. Removing a missing reference is
	// not an error.
	Remove(ctx context.Context, ref string) error

	// Path resolves a reference to a readable file path.
	// Returns domain.ErrNotFound for unknown or unsafe references.
	Path(ctx context.Context, ref string) (string, error)
}
