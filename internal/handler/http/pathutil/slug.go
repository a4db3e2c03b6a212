// Package pathutil provides helpers for parsing and normalizing URL paths.
package pathutil

import (
	"errors"
	"strings"
)

// ErrInvalidPath is returned when a URL path does not match the expected shape.
var ErrInvalidPath = errors.New("invalid path")

// ExtractUserSlug extracts the username and slug segments from a post
// permalink path. It removes the specified prefix and splits the remainder
// into exactly two non-empty segments.
//
// Parameters:
//   - path: The full URL path (e.g., "/posts/u/alice/hello-world")
//   - prefix: The prefix to remove (e.g., "/posts/u/")
//
// Example:
//
//	username, slug, err := ExtractUserSlug("/posts/u/alice/hello-world", "/posts/u/")
//	// Returns: "alice", "hello-world", nil
func ExtractUserSlug(path, prefix string) (username, slug string, err error) {
	rest := strings.TrimPrefix(path, prefix)
	if rest == path {
		return "", "", ErrInvalidPath
	}
	rest = strings.TrimSuffix(rest, "/")

	parts := strings.Split(rest, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", ErrInvalidPath
	}
	return parts[0], parts[1], nil
}
