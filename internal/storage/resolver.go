package storage

import (
	"fmt"
	"net"
	"net/http"
	"net/url"
	"path"
	"strings"
)

// Resolver turns a locator into the externally fetchable URL and back. With a
// fixed base it concatenates base + prefix + locator; without one it derives
// scheme and host from the inbound request, honoring X-Forwarded-Proto and
// forcing https for non-loopback hosts. Resolve and Extract are exact
// inverses for every locator a Backend can produce.
type Resolver struct {
	base   string // fixed base URL; empty selects request-derived mode
	prefix string // public asset path prefix, e.g. "/uploads"; empty for object-store bases
}

// NewResolver builds a Resolver. base and prefix are normalized so that
// resolved URLs never carry duplicate slashes.
func NewResolver(base, prefix string) *Resolver {
	prefix = strings.TrimRight(strings.TrimSpace(prefix), "/")
	if prefix != "" && !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	return &Resolver{
		base:   strings.TrimRight(strings.TrimSpace(base), "/"),
		prefix: prefix,
	}
}

// Resolve returns the public URL for a locator. req may be nil in fixed-base
// mode; in request-derived mode a nil request falls back to localhost.
func (r *Resolver) Resolve(req *http.Request, locator string) string {
	if r.base != "" {
		return r.base + r.prefix + "/" + locator
	}
	return r.requestBase(req) + r.prefix + "/" + locator
}

// Extract recovers the locator from a previously resolved URL. It is the
// left-inverse of Resolve: Extract(Resolve(req, l)) == l for every locator.
// Bare filenames and legacy values resolve through a basename fallback.
func (r *Resolver) Extract(rawURL string) (string, bool) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return "", false
	}

	if r.prefix != "" {
		if idx := strings.Index(trimmed, r.prefix+"/"); idx >= 0 {
			locator := trimmed[idx+len(r.prefix)+1:]
			if locator == "" || strings.Contains(locator, "/") {
				return "", false
			}
			return locator, true
		}
	} else if r.base != "" && strings.HasPrefix(trimmed, r.base+"/") {
		locator := trimmed[len(r.base)+1:]
		if locator == "" || strings.Contains(locator, "/") {
			return "", false
		}
		return locator, true
	}

	// Legacy rows stored bare filenames or foreign URL shapes.
	if u, err := url.Parse(trimmed); err == nil && u.Path != "" {
		if base := path.Base(u.Path); base != "." && base != "/" {
			return base, true
		}
	}
	return "", false
}

func (r *Resolver) requestBase(req *http.Request) string {
	if req == nil {
		return "http://localhost"
	}

	host := req.Host
	if host == "" {
		host = "localhost"
	}

	scheme := "http"
	if proto := strings.TrimSpace(req.Header.Get("X-Forwarded-Proto")); proto != "" {
		scheme = proto
	} else if req.TLS != nil {
		scheme = "https"
	}

	// Production traffic always resolves to secure URLs.
	if scheme != "https" && !isLoopbackHost(host) {
		scheme = "https"
	}

	return fmt.Sprintf("%s://%s", scheme, host)
}

func isLoopbackHost(host string) bool {
	name := host
	if h, _, err := net.SplitHostPort(host); err == nil {
		name = h
	}
	name = strings.Trim(strings.ToLower(name), "[]")

	switch name {
	case "localhost", "127.0.0.1", "::1", "0.0.0.0":
		return true
	}
	if ip := net.ParseIP(name); ip != nil {
		return ip.IsLoopback()
	}
	return false
}
