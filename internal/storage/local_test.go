package storage

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func TestLocalBackendStoreAndDelete(t *testing.T) {
	dir := t.TempDir()
	backend := NewLocalBackend(dir, 1<<20)

	content := "fake image bytes"
	locator, err := backend.Store(context.Background(), "imageUrl", "photo.jpg", "image/jpeg",
		strings.NewReader(content), int64(len(content)))
	if err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, locator))
	if err != nil {
		t.Fatalf("stored file not readable: %v", err)
	}
	if string(data) != content {
		t.Fatalf("stored content mismatch: got %q", data)
	}

	if err := backend.Delete(context.Background(), locator); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, locator)); !os.IsNotExist(err) {
		t.Fatalf("file still present after delete")
	}
}

func TestLocalBackendDeleteAbsentIsSuccess(t *testing.T) {
	backend := NewLocalBackend(t.TempDir(), 0)
	if err := backend.Delete(context.Background(), "never-stored.jpg"); err != nil {
		t.Fatalf("deleting an absent file should succeed, got %v", err)
	}
}

func TestLocalBackendRejectsTraversal(t *testing.T) {
	backend := NewLocalBackend(t.TempDir(), 0)
	if err := backend.Delete(context.Background(), "../etc/passwd"); err == nil {
		t.Fatal("expected traversal locator to be rejected")
	}
}

func TestLocalBackendRejectsUnsupportedType(t *testing.T) {
	backend := NewLocalBackend(t.TempDir(), 0)
	_, err := backend.Store(context.Background(), "imageUrl", "script.svg", "image/svg+xml",
		strings.NewReader("<svg/>"), 6)
	if err == nil || !strings.Contains(err.Error(), "unsupported media type") {
		t.Fatalf("expected unsupported media error, got %v", err)
	}
}

func TestLocalBackendRejectsOversize(t *testing.T) {
	backend := NewLocalBackend(t.TempDir(), 10)
	_, err := backend.Store(context.Background(), "imageUrl", "big.png", "image/png",
		strings.NewReader("0123456789abcdef"), 16)
	if err == nil || !strings.Contains(err.Error(), "payload too large") {
		t.Fatalf("expected too-large error, got %v", err)
	}
}

func TestNewLocatorShape(t *testing.T) {
	pattern := regexp.MustCompile(`^imageUrl-\d+-[0-9a-f-]{36}\.jpg$`)

	locator := NewLocator("imageUrl", "holiday photo.JPG", "image/jpeg")
	if !pattern.MatchString(locator) {
		t.Fatalf("unexpected locator shape: %s", locator)
	}

	// no original extension: fall back to the MIME type's canonical one
	locator = NewLocator("imageUrl", "blob", "image/webp")
	if !strings.HasSuffix(locator, ".webp") {
		t.Fatalf("expected .webp fallback extension, got %s", locator)
	}
}

func TestAllowedContentType(t *testing.T) {
	for _, allowed := range []string{"image/jpeg", "image/png", "image/gif", "image/webp", "IMAGE/PNG", "image/png; charset=binary"} {
		if !AllowedContentType(allowed) {
			t.Errorf("expected %q to be allowed", allowed)
		}
	}
	for _, rejected := range []string{"image/svg+xml", "application/pdf", "text/html", ""} {
		if AllowedContentType(rejected) {
			t.Errorf("expected %q to be rejected", rejected)
		}
	}
}
