package upload

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/victoriaclean/backend/internal/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// pngBytes renders a small valid PNG so dimension decoding succeeds.
func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func multipartBody(t *testing.T, files map[string][]byte, contentType string, values map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for field, data := range files {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="test.png"`)
		header.Set("Content-Type", contentType)
		part, err := writer.CreatePart(header)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		part.Write(data)
	}
	for k, v := range values {
		writer.WriteField(k, v)
	}
	writer.Close()
	return body, writer.FormDataContentType()
}

func newUploadRouter(dir string, claim bool, fields ...Field) *gin.Engine {
	backend := storage.NewLocalBackend(dir, 1<<20)
	r := gin.New()
	r.POST("/items", Fields(backend, 1<<20, fields...), func(c *gin.Context) {
		if claim {
			for _, files := range Files(c) {
				for _, f := range files {
					f.Claim()
				}
			}
		}
		c.JSON(http.StatusCreated, gin.H{"staged": len(Files(c))})
	})
	return r
}

func uploadedFiles(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		t.Fatalf("read upload dir: %v", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestFieldsStagesAndClaims(t *testing.T) {
	dir := t.TempDir()
	r := newUploadRouter(dir, true, Field{Name: "imageUrl", MaxCount: 1})

	body, ct := multipartBody(t, map[string][]byte{"imageUrl": pngBytes(t, 4, 3)}, "image/png", nil)
	req := httptest.NewRequest("POST", "/items", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if files := uploadedFiles(t, dir); len(files) != 1 {
		t.Fatalf("expected 1 kept file, got %v", files)
	}
}

func TestFieldsReleasesUnclaimed(t *testing.T) {
	dir := t.TempDir()
	r := newUploadRouter(dir, false, Field{Name: "imageUrl", MaxCount: 1})

	body, ct := multipartBody(t, map[string][]byte{"imageUrl": pngBytes(t, 4, 3)}, "image/png", nil)
	req := httptest.NewRequest("POST", "/items", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	if files := uploadedFiles(t, dir); len(files) != 0 {
		t.Fatalf("unclaimed file should have been released, found %v", files)
	}
}

func TestFieldsRejectsUnexpectedField(t *testing.T) {
	dir := t.TempDir()
	r := newUploadRouter(dir, true, Field{Name: "imageUrl", MaxCount: 1})

	body, ct := multipartBody(t, map[string][]byte{"avatar": pngBytes(t, 4, 3)}, "image/png", nil)
	req := httptest.NewRequest("POST", "/items", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unexpected field, got %d", w.Code)
	}
	if files := uploadedFiles(t, dir); len(files) != 0 {
		t.Fatalf("nothing should be stored, found %v", files)
	}
}

func TestFieldsRejectsUnsupportedType(t *testing.T) {
	dir := t.TempDir()
	r := newUploadRouter(dir, true, Field{Name: "imageUrl", MaxCount: 1})

	body, ct := multipartBody(t, map[string][]byte{"imageUrl": []byte("%PDF-1.4")}, "application/pdf", nil)
	req := httptest.NewRequest("POST", "/items", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("expected 415, got %d", w.Code)
	}
}

func TestFieldsRejectsSpoofedImage(t *testing.T) {
	dir := t.TempDir()
	r := newUploadRouter(dir, true, Field{Name: "imageUrl", MaxCount: 1})

	// declared PNG, not decodable as one
	body, ct := multipartBody(t, map[string][]byte{"imageUrl": []byte("<script>alert(1)</script>")}, "image/png", nil)
	req := httptest.NewRequest("POST", "/items", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("expected 415 for undecodable image, got %d", w.Code)
	}
	if files := uploadedFiles(t, dir); len(files) != 0 {
		t.Fatalf("spoofed file must not be stored, found %v", files)
	}
}

func TestFieldsPassesThroughNonMultipart(t *testing.T) {
	dir := t.TempDir()
	r := newUploadRouter(dir, true, Field{Name: "imageUrl", MaxCount: 1})

	req := httptest.NewRequest("POST", "/items", bytes.NewBufferString(`{"title":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("JSON request should pass through, got %d", w.Code)
	}
}

func TestStagedFileDimensions(t *testing.T) {
	dir := t.TempDir()
	backend := storage.NewLocalBackend(dir, 1<<20)

	var got *StagedFile
	r := gin.New()
	r.POST("/items", Single(backend, 1<<20, "imageUrl"), func(c *gin.Context) {
		got = First(c, "imageUrl")
		if got != nil {
			got.Claim()
		}
		c.Status(http.StatusCreated)
	})

	body, ct := multipartBody(t, map[string][]byte{"imageUrl": pngBytes(t, 7, 5)}, "image/png", nil)
	req := httptest.NewRequest("POST", "/items", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got == nil {
		t.Fatal("expected a staged file")
	}
	if got.Width != 7 || got.Height != 5 {
		t.Fatalf("expected 7x5, got %dx%d", got.Width, got.Height)
	}
	if _, err := os.Stat(filepath.Join(dir, got.Locator)); err != nil {
		t.Fatalf("claimed file missing: %v", err)
	}
}
