// Package upload stages multipart image uploads through a storage backend
// before the downstream handler runs. Staged files the handler does not claim
// are released on every exit path, so a failed create or update never leaves
// an orphaned object behind.
package upload

import (
	"errors"
	"fmt"
	"image"
	"log"
	"mime/multipart"
	"net/http"
	"sort"
	"strings"

	// decoders for the accepted image formats
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/gin-gonic/gin"
	"github.com/victoriaclean/backend/internal/response"
	"github.com/victoriaclean/backend/internal/storage"
)

const contextKey = "__staged_uploads"

// Field declares one accepted file field and how many files it may carry.
type Field struct {
	Name     string
	MaxCount int
}

// StagedFile describes a file already written to durable storage, waiting for
// its owning record to be persisted.
type StagedFile struct {
	FieldName    string
	Locator      string
	OriginalName string
	ContentType  string
	Size         int64
	Width        int
	Height       int

	claimed bool
}

// Claim marks the file as durably referenced so the middleware keeps it.
// Handlers call this only after the owning record has been persisted.
func (f *StagedFile) Claim() {
	f.claimed = true
}

// Fields returns middleware staging the declared file fields. Requests that
// are not multipart pass through untouched, which lets the same route accept
// JSON updates without a new file.
func Fields(backend storage.Backend, maxBytes int64, fields ...Field) gin.HandlerFunc {
	manifest := make(map[string]int, len(fields))
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		count := f.MaxCount
		if count <= 0 {
			count = 1
		}
		manifest[f.Name] = count
		names = append(names, f.Name)
	}
	sort.Strings(names)

	return func(c *gin.Context) {
		if !isMultipart(c.Request) {
			c.Next()
			return
		}

		// slack covers non-file form fields and multipart framing
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes+1<<20)

		if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				response.Error(c, http.StatusRequestEntityTooLarge,
					fmt.Sprintf("File size too large. Maximum %dMB allowed.", maxBytes>>20))
				return
			}
			response.Error(c, http.StatusBadRequest, "Malformed multipart request")
			return
		}

		form := c.Request.MultipartForm
		if form == nil {
			c.Next()
			return
		}

		for name, headers := range form.File {
			limit, ok := manifest[name]
			if !ok {
				response.Error(c, http.StatusBadRequest,
					fmt.Sprintf("Unexpected field '%s'. Expected fields: %s", name, strings.Join(names, ", ")))
				return
			}
			if len(headers) > limit {
				response.Error(c, http.StatusBadRequest,
					fmt.Sprintf("Too many files for field '%s'. Maximum %d allowed.", name, limit))
				return
			}
		}

		staged := make(map[string][]*StagedFile, len(form.File))
		release := func() {
			for _, files := range staged {
				for _, f := range files {
					if err := backend.Delete(c.Request.Context(), f.Locator); err != nil {
						log.Printf("upload: release staged file %s: %v", f.Locator, err)
					}
				}
			}
		}

		for _, name := range names {
			for _, header := range form.File[name] {
				file, err := stageFile(c, backend, name, header, maxBytes)
				if err != nil {
					release()
					respondStageError(c, err, maxBytes)
					return
				}
				staged[name] = append(staged[name], file)
			}
		}

		c.Set(contextKey, staged)

		// Scoped release: whatever the handler leaves unclaimed is deleted,
		// including on panics unwinding through this frame.
		defer func() {
			for _, files := range staged {
				for _, f := range files {
					if f.claimed {
						continue
					}
					if err := backend.Delete(c.Request.Context(), f.Locator); err != nil {
						log.Printf("upload: release staged file %s: %v", f.Locator, err)
					}
				}
			}
		}()

		c.Next()
	}
}

// Single is shorthand for a manifest with one single-file field.
func Single(backend storage.Backend, maxBytes int64, field string) gin.HandlerFunc {
	return Fields(backend, maxBytes, Field{Name: field, MaxCount: 1})
}

// Files returns everything staged for this request, keyed by field name.
func Files(c *gin.Context) map[string][]*StagedFile {
	raw, exists := c.Get(contextKey)
	if !exists {
		return nil
	}
	staged, _ := raw.(map[string][]*StagedFile)
	return staged
}

// First returns the first staged file for the field, or nil when the request
// carried none.
func First(c *gin.Context, field string) *StagedFile {
	files := Files(c)[field]
	if len(files) == 0 {
		return nil
	}
	return files[0]
}

func stageFile(c *gin.Context, backend storage.Backend, fieldName string, header *multipart.FileHeader, maxBytes int64) (*StagedFile, error) {
	contentType := header.Header.Get("Content-Type")
	if !storage.AllowedContentType(contentType) {
		return nil, fmt.Errorf("%w: %s", storage.ErrUnsupportedMedia, contentType)
	}
	if maxBytes > 0 && header.Size > maxBytes {
		return nil, fmt.Errorf("%w: %d bytes", storage.ErrTooLarge, header.Size)
	}

	width, height, err := decodeDimensions(header)
	if err != nil {
		return nil, fmt.Errorf("%w: file content is not a decodable image", storage.ErrUnsupportedMedia)
	}

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload %q: %w", header.Filename, err)
	}
	defer src.Close()

	locator, err := backend.Store(c.Request.Context(), fieldName, header.Filename, contentType, src, header.Size)
	if err != nil {
		return nil, err
	}

	return &StagedFile{
		FieldName:    fieldName,
		Locator:      locator,
		OriginalName: header.Filename,
		ContentType:  contentType,
		Size:         header.Size,
		Width:        width,
		Height:       height,
	}, nil
}

func decodeDimensions(header *multipart.FileHeader) (int, int, error) {
	src, err := header.Open()
	if err != nil {
		return 0, 0, err
	}
	defer src.Close()

	cfg, _, err := image.DecodeConfig(src)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}

func respondStageError(c *gin.Context, err error, maxBytes int64) {
	switch {
	case errors.Is(err, storage.ErrUnsupportedMedia):
		response.Error(c, http.StatusUnsupportedMediaType,
			"Only image files are allowed (JPEG, PNG, GIF, WEBP)")
	case errors.Is(err, storage.ErrTooLarge):
		response.Error(c, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("File size too large. Maximum %dMB allowed.", maxBytes>>20))
	default:
		log.Printf("upload: stage file: %v", err)
		response.Error(c, http.StatusInternalServerError, "File upload failed")
	}
}

func isMultipart(req *http.Request) bool {
	contentType := req.Header.Get("Content-Type")
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "multipart/form-data")
}
