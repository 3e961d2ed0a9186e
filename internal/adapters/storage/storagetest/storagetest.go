// Package storagetest holds the behavior every repository adapter must share.
package storagetest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/feedback-analyzer/internal/domain"
	"github.com/jsamuelsen/feedback-analyzer/internal/ports"
)

func newFeedback(text, category string, s domain.Sentiment) domain.NewFeedback {
	return domain.NewFeedback{
		Text:      text,
		Category:  category,
		Sentiment: s,
		Author:    domain.AnonymousAuthor,
		CreatedAt: time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
	}
}

// FeedbackRepository runs the shared repository contract against repos
// produced by newRepo. Every subtest gets a fresh repository.
func FeedbackRepository(t *testing.T, newRepo func(t *testing.T) ports.FeedbackRepository) {
	t.Helper()

	ctx := context.Background()

	t.Run("insert assigns increasing ids", func(t *testing.T) {
		repo := newRepo(t)

		first, err := repo.Insert(ctx, newFeedback("Great app", "UI", domain.SentimentPositive))
		require.NoError(t, err)
		second, err := repo.Insert(ctx, newFeedback("Crashes", "Bug", domain.SentimentNegative))
		require.NoError(t, err)

		assert.NotZero(t, first.ID)
		assert.Greater(t, second.ID, first.ID)
		assert.Equal(t, "Great app", first.Text)
		assert.Equal(t, domain.SentimentNegative, second.Sentiment)
	})

	t.Run("get round trips every field", func(t *testing.T) {
		repo := newRepo(t)

		nf := newFeedback("Upload fails, see screenshot", "", domain.SentimentNeutral)
		nf.Author = "Ada"
		nf.AttachmentRef = "c0ffee.png"

		created, err := repo.Insert(ctx, nf)
		require.NoError(t, err)

		got, err := repo.Get(ctx, created.ID)
		require.NoError(t, err)

		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, nf.Text, got.Text)
		assert.Empty(t, got.Category)
		assert.Equal(t, nf.Sentiment, got.Sentiment)
		assert.Equal(t, "Ada", got.Author)
		assert.Equal(t, "c0ffee.png", got.AttachmentRef)
		assert.WithinDuration(t, nf.CreatedAt, got.CreatedAt, time.Second)
	})

	t.Run("get unknown id is not found", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.Get(ctx, 42)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("all returns records in id order", func(t *testing.T) {
		repo := newRepo(t)

		for _, text := range []string{"one", "two", "three"} {
			_, err := repo.Insert(ctx, newFeedback(text, "UI", domain.SentimentNeutral))
			require.NoError(t, err)
		}

		all, err := repo.All(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "one", all[0].Text)
		assert.Equal(t, "three", all[2].Text)
	})

	t.Run("all on empty repository", func(t *testing.T) {
		repo := newRepo(t)

		all, err := repo.All(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("list pages by cursor", func(t *testing.T) {
		repo := newRepo(t)

		var ids []domain.FeedbackID
		for _, text := range []string{"a", "b", "c", "d", "e"} {
			rec, err := repo.Insert(ctx, newFeedback(text, "UI", domain.SentimentNeutral))
			require.NoError(t, err)
			ids = append(ids, rec.ID)
		}

		page, err := repo.List(ctx, 0, 2)
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.Equal(t, ids[0], page[0].ID)
		assert.Equal(t, ids[1], page[1].ID)

		page, err = repo.List(ctx, ids[1], 2)
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.Equal(t, "c", page[0].Text)
		assert.Equal(t, "d", page[1].Text)

		page, err = repo.List(ctx, ids[3], 10)
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, "e", page[0].Text)

		page, err = repo.List(ctx, ids[4], 10)
		require.NoError(t, err)
		assert.Empty(t, page)

		page, err = repo.List(ctx, 0, 0)
		require.NoError(t, err)
		assert.Len(t, page, 5)
	})

	t.Run("delete returns the removed record", func(t *testing.T) {
		repo := newRepo(t)

		nf := newFeedback("Remove me", "Bug", domain.SentimentNegative)
		nf.AttachmentRef = "gone.png"
		created, err := repo.Insert(ctx, nf)
		require.NoError(t, err)

		deleted, err := repo.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, deleted.ID)
		assert.Equal(t, "gone.png", deleted.AttachmentRef)

		_, err = repo.Get(ctx, created.ID)
		require.ErrorIs(t, err, domain.ErrNotFound)

		_, err = repo.Delete(ctx, created.ID)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("ids are not reused after delete", func(t *testing.T) {
		repo := newRepo(t)

		first, err := repo.Insert(ctx, newFeedback("first", "", domain.SentimentNeutral))
		require.NoError(t, err)
		second, err := repo.Insert(ctx, newFeedback("second", "", domain.SentimentNeutral))
		require.NoError(t, err)

		_, err = repo.Delete(ctx, second.ID)
		require.NoError(t, err)

		third, err := repo.Insert(ctx, newFeedback("third", "", domain.SentimentNeutral))
		require.NoError(t, err)
		assert.Greater(t, third.ID, second.ID)
		assert.Greater(t, third.ID, first.ID)
	})
}

// UserRepository runs the shared account contract against repos produced by newRepo.
func UserRepository(t *testing.T, newRepo func(t *testing.T) ports.UserRepository) {
	t.Helper()

	ctx := context.Background()

	t.Run("create and look up case-insensitively", func(t *testing.T) {
		repo := newRepo(t)

		created, err := repo.Create(ctx, domain.User{Name: "Ada", Email: "Ada@Example.com", PasswordHash: "hash"})
		require.NoError(t, err)
		assert.NotZero(t, created.ID)

		got, err := repo.GetByEmail(ctx, "ada@example.COM")
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "Ada", got.Name)
		assert.Equal(t, "hash", got.PasswordHash)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.Create(ctx, domain.User{Name: "Ada", Email: "ada@example.com", PasswordHash: "x"})
		require.NoError(t, err)

		_, err = repo.Create(ctx, domain.User{Name: "Imposter", Email: "ADA@example.com", PasswordHash: "y"})
		require.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("unknown email is not found", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.GetByEmail(ctx, "nobody@example.com")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}
