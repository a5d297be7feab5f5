package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// LocalBackend stores assets on the local filesystem under a single uploads
// directory, created lazily on first write.
type LocalBackend struct {
	dir      string
	maxBytes int64
}

// NewLocalBackend returns a backend rooted at dir with the given size ceiling.
func NewLocalBackend(dir string, maxBytes int64) *LocalBackend {
	return &LocalBackend{dir: dir, maxBytes: maxBytes}
}

// Store writes the content to a freshly generated filename and returns it as
// the locator.
func (b *LocalBackend) Store(ctx context.Context, fieldName, originalName, contentType string, r io.Reader, size int64) (string, error) {
	if !AllowedContentType(contentType) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedMedia, contentType)
	}
	if b.maxBytes > 0 && size > b.maxBytes {
		return "", fmt.Errorf("%w: %d bytes", ErrTooLarge, size)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	locator := NewLocator(fieldName, originalName, contentType)
	path := filepath.Join(b.dir, locator)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("write upload file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("close upload file: %w", err)
	}

	return locator, nil
}

// Delete unlinks the file. A file that is already gone is logged and treated
// as success.
func (b *LocalBackend) Delete(ctx context.Context, locator string) error {
	// locator must stay a bare filename; reject traversal attempts
	if locator != filepath.Base(locator) {
		return fmt.Errorf("invalid locator %q", locator)
	}

	if err := os.Remove(filepath.Join(b.dir, locator)); err != nil {
		if os.IsNotExist(err) {
			log.Printf("storage: file %s already absent", locator)
			return nil
		}
		return fmt.Errorf("delete upload file: %w", err)
	}
	return nil
}

// Dir returns the uploads directory for static serving.
func (b *LocalBackend) Dir() string {
	return b.dir
}
