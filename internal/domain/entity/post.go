// Package entity defines the core domain entities for the application.
// It contains the fundamental business objects such as Post, User and Tag,
// along with domain-specific errors. All entities are read projections over
// externally-owned storage; this service never mutates them.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Post represents a published blog post in the system.
// It contains the post's content, authorship reference and counters.
type Post struct {
	ID          uuid.UUID
	Title       string
	Body        string
	AuthorID    uuid.UUID
	Slug        string
	PhotoURL    string
	Published   bool
	ViewCount   int64
	LikeCount   int64
	PublishedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
