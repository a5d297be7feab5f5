// Package storage stores and deletes binary assets behind a backend
// interface, with a local-disk and an S3-compatible implementation selected
// by configuration. Exactly one backend is active per deployment.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrUnsupportedMedia marks a rejected content type, as opposed to a
	// generic I/O failure.
	ErrUnsupportedMedia = errors.New("unsupported media type")
	// ErrTooLarge marks a payload over the configured ceiling.
	ErrTooLarge = errors.New("payload too large")
)

// allowedImageTypes is the accepted MIME allowlist for uploads.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Backend writes and removes stored objects. Implementations carry no
// business logic.
type Backend interface {
	// Store writes the content and returns the generated locator.
	Store(ctx context.Context, fieldName, originalName, contentType string, r io.Reader, size int64) (string, error)
	// Delete removes the object. An already-absent object is not an error.
	Delete(ctx context.Context, locator string) error
}

// AllowedContentType reports whether the MIME type is in the image allowlist.
func AllowedContentType(contentType string) bool {
	_, ok := allowedImageTypes[normalizeContentType(contentType)]
	return ok
}

// NewLocator generates a collision-resistant object name:
// {fieldName}-{unixMillis}-{uuid}{ext}. The extension comes from the original
// filename, falling back to the MIME type's canonical extension.
func NewLocator(fieldName, originalName, contentType string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = allowedImageTypes[normalizeContentType(contentType)]
	}

	field := strings.TrimSpace(fieldName)
	if field == "" {
		field = "file"
	}

	return fmt.Sprintf("%s-%d-%s%s", field, time.Now().UnixMilli(), uuid.New().String(), ext)
}

func normalizeContentType(contentType string) string {
	normalized := strings.ToLower(strings.TrimSpace(contentType))
	if idx := strings.Index(normalized, ";"); idx >= 0 {
		normalized = strings.TrimSpace(normalized[:idx])
	}
	return normalized
}
