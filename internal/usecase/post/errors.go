// Package post provides use cases for the public blog post read surface.
// It implements listing with pagination, filtering and sorting, single-post
// lookup by author and slug, and random selection, delegating persistence
// to the repository interfaces.
package post

import "errors"

// Sentinel errors for post use case operations.
var (
	// ErrPostNotFound indicates that the requested post was not found.
	// Returned when the username/slug pair does not resolve to a
	// published post.
	ErrPostNotFound = errors.New("post not found")
)
