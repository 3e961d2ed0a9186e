package uploads

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/feedback-analyzer/internal/domain"
)

func newTestStore(t *testing.T, allowed ...string) *Store {
	t.Helper()

	store, err := New(filepath.Join(t.TempDir(), "uploads"), allowed)
	require.NoError(t, err)

	return store
}

func TestSave_WritesUnderRandomName(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	ref, err := store.Save(ctx, "../../etc/Screen Shot.PNG", strings.NewReader("png-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(ref, ".png"))
	assert.NotContains(t, ref, "Screen")
	assert.Equal(t, filepath.Base(ref), ref)

	data, err := os.ReadFile(filepath.Join(store.Dir(), ref))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestSave_DistinctRefs(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	a, err := store.Save(ctx, "shot.png", strings.NewReader("a"))
	require.NoError(t, err)
	b, err := store.Save(ctx, "shot.png", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestSave_RejectsDisallowedExtension(t *testing.T) {
	store := newTestStore(t, "png", ".JPG")

	_, err := store.Save(context.Background(), "payload.exe", strings.NewReader("MZ"))
	require.ErrorIs(t, err, domain.ErrValidation)

	ref, err := store.Save(context.Background(), "photo.jpg", strings.NewReader("jpg"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(ref, ".jpg"))

	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRemove(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	ref, err := store.Save(ctx, "a.png", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(ctx, ref))
	require.NoError(t, store.Remove(ctx, ref), "removing a missing file is not an error")

	_, err = os.Stat(filepath.Join(store.Dir(), ref))
	assert.True(t, os.IsNotExist(err))
}

func TestRemove_RejectsTraversal(t *testing.T) {
	store := newTestStore(t)

	err := store.Remove(context.Background(), "../secret.txt")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestPath(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	ref, err := store.Save(ctx, "a.png", strings.NewReader("x"))
	require.NoError(t, err)

	p, err := store.Path(ctx, ref)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(store.Dir(), ref), p)

	tests := []string{"", "..", "../a.png", "sub/a.png", `sub\a.png`, ".hidden", "missing.png"}
	for _, ref := range tests {
		t.Run(ref, func(t *testing.T) {
			_, err := store.Path(ctx, ref)
			require.ErrorIs(t, err, domain.ErrNotFound)
		})
	}
}

func TestCheck(t *testing.T) {
	store := newTestStore(t)

	assert.Equal(t, "uploads", store.Name())
	require.NoError(t, store.Check(context.Background()))

	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}
