package file

import (
	"context"
	"path"
	"strings"
)

// Storage is a write-only view of a static file host.
type Storage interface {
	// Write stores body at p, replacing any existing object.
	Write(ctx context.Context, p, contentType string, body []byte) error
	// Exists reports whether p has been written.
	Exists(ctx context.Context, p string) bool
	// URL returns the public URL of p.
	URL(p string) string
}

// cleanKey normalizes a slash-separated storage key and rejects traversal.
func cleanKey(p string) (string, error) {
	p = strings.ReplaceAll(p, "\\", "/")
	if p == "" || strings.Contains(p, "\x00") {
		return "", ErrInvalidPath
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return "", ErrInvalidPath
		}
	}
	key := strings.TrimPrefix(path.Clean("/"+p), "/")
	if key == "" {
		return "", ErrInvalidPath
	}
	return key, nil
}

func joinURL(base, key string) string {
	if base == "" {
		return "/" + key
	}
	return strings.TrimSuffix(base, "/") + "/" + key
}
