package storage

import (
	"net/http/httptest"
	"testing"
)

func TestResolverFixedBase(t *testing.T) {
	r := NewResolver("https://api.victoriaclean.com.au", "/uploads")

	url := r.Resolve(nil, "imageUrl-123-abc.jpg")
	if url != "https://api.victoriaclean.com.au/uploads/imageUrl-123-abc.jpg" {
		t.Fatalf("unexpected URL: %s", url)
	}

	locator, ok := r.Extract(url)
	if !ok || locator != "imageUrl-123-abc.jpg" {
		t.Fatalf("Extract(Resolve(l)) != l: got %q ok=%v", locator, ok)
	}
}

func TestResolverObjectStoreBase(t *testing.T) {
	// object-store mode has no path prefix; the base already names the bucket
	r := NewResolver("http://localhost:9000/victoriaclean", "")

	url := r.Resolve(nil, "image-456-def.png")
	if url != "http://localhost:9000/victoriaclean/image-456-def.png" {
		t.Fatalf("unexpected URL: %s", url)
	}

	locator, ok := r.Extract(url)
	if !ok || locator != "image-456-def.png" {
		t.Fatalf("round trip failed: got %q ok=%v", locator, ok)
	}
}

func TestResolverRequestDerived(t *testing.T) {
	r := NewResolver("", "/uploads")

	req := httptest.NewRequest("POST", "/api/v1/blogs", nil)
	req.Host = "localhost:3005"
	url := r.Resolve(req, "a.jpg")
	if url != "http://localhost:3005/uploads/a.jpg" {
		t.Fatalf("loopback host should stay http, got %s", url)
	}

	req.Host = "api.victoriaclean.com.au"
	url = r.Resolve(req, "a.jpg")
	if url != "https://api.victoriaclean.com.au/uploads/a.jpg" {
		t.Fatalf("public host should force https, got %s", url)
	}

	req.Header.Set("X-Forwarded-Proto", "https")
	req.Host = "localhost:3005"
	url = r.Resolve(req, "a.jpg")
	if url != "https://localhost:3005/uploads/a.jpg" {
		t.Fatalf("forwarded proto should win, got %s", url)
	}
}

func TestResolverExtractFallbacks(t *testing.T) {
	r := NewResolver("", "/uploads")

	// foreign URL shape: basename fallback
	locator, ok := r.Extract("https://old-cdn.example.com/media/legacy-7.png")
	if !ok || locator != "legacy-7.png" {
		t.Fatalf("expected basename fallback, got %q ok=%v", locator, ok)
	}

	// bare filename stored by an earlier release
	locator, ok = r.Extract("plain.jpg")
	if !ok || locator != "plain.jpg" {
		t.Fatalf("expected bare filename passthrough, got %q ok=%v", locator, ok)
	}

	if _, ok := r.Extract(""); ok {
		t.Fatal("empty URL must not extract")
	}
	if _, ok := r.Extract("https://host/uploads/nested/evil.jpg"); ok {
		t.Fatal("locator with a slash must not extract")
	}
}
