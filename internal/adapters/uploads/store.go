// Package uploads stores feedback screenshots on the local filesystem.
package uploads

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/jsamuelsen/feedback-analyzer/internal/domain"
)

// Store writes attachments into a single flat directory under random names.
type Store struct {
	dir     string
	allowed []string
}

// New creates the directory if needed. allowed lists lower-case extensions
// including the dot; an empty list accepts any extension.
func New(dir string, allowed []string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}

	norm := make([]string, 0, len(allowed))
	for _, ext := range allowed {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}

		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}

		norm = append(norm, ext)
	}

	return &Store{dir: dir, allowed: norm}, nil
}

// Dir returns the storage directory.
func (s *Store) Dir() string {
	return s.dir
}

// Save streams r into a new file named <uuid><ext> and returns that name.
func (s *Store) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))
	if len(s.allowed) > 0 && !slices.Contains(s.allowed, ext) {
		return "", domain.NewValidationError("screenshot", fmt.Sprintf("file type %q is not allowed", ext))
	}

	ref := uuid.NewString() + ext

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}

	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		cleanup()

		return "", fmt.Errorf("writing attachment: %w", err)
	}

	if err := tmp.Close(); err != nil {
		cleanup()
		return "", fmt.Errorf("closing attachment: %w", err)
	}

	if err := os.Rename(tmpName, filepath.Join(s.dir, ref)); err != nil {
		cleanup()
		return "", fmt.Errorf("storing attachment: %w", err)
	}

	return ref, nil
}

// Remove deletes the attachment. Missing files are ignored.
func (s *Store) Remove(ctx context.Context, ref string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !validRef(ref) {
		return domain.NewValidationError("ref", "invalid attachment reference")
	}

	err := os.Remove(filepath.Join(s.dir, ref))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing attachment: %w", err)
	}

	return nil
}

// Path resolves ref inside the storage directory.
func (s *Store) Path(_ context.Context, ref string) (string, error) {
	if !validRef(ref) {
		return "", domain.NewNotFoundError("attachment", ref)
	}

	p := filepath.Join(s.dir, ref)

	info, err := os.Stat(p)
	if err != nil || info.IsDir() {
		return "", domain.NewNotFoundError("attachment", ref)
	}

	return p, nil
}

// Name identifies the store in readiness checks.
func (s *Store) Name() string {
	return "uploads"
}

// Check verifies the directory is writable.
func (s *Store) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.CreateTemp(s.dir, ".health-*")
	if err != nil {
		return domain.NewUnavailableError("uploads", err.Error())
	}

	_ = f.Close()

	return os.Remove(f.Name())
}

// validRef accepts only plain, visible file names.
func validRef(ref string) bool {
	if ref == "" || strings.HasPrefix(ref, ".") {
		return false
	}

	if strings.ContainsAny(ref, `/\`) || strings.ContainsRune(ref, 0) {
		return false
	}

	return filepath.Base(ref) == ref
}
