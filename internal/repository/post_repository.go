// Package repository defines the persistence interfaces the use case layer
// depends on. Concrete implementations live under internal/infra/adapter.
package repository

import (
	"context"

	"github.com/google/uuid"

	"blog-backend/internal/domain/entity"
)

// PostWithAuthor represents a post along with its author's display fields.
type PostWithAuthor struct {
	Post   *entity.Post
	Author entity.User
}

// PostListQuery contains the validated filter/sort/page parameters for a
// post listing. Offset and Limit are bounded by upstream validation; OrderBy
// and Direction are members of the closed enumerations below, so a query
// built from this struct never interpolates caller-supplied column names.
type PostListQuery struct {
	Offset    int
	Limit     int
	Search    string // optional substring filter over title, body, author username
	OrderBy   SortField
	Direction SortDirection
}

type PostRepository interface {
	// ListPublished retrieves one page of published posts with their authors,
	// ordered by q.OrderBy/q.Direction with a stable id tie-break.
	ListPublished(ctx context.Context, q PostListQuery) ([]PostWithAuthor, error)
	// CountPublished returns the total number of published posts matching the
	// same filter as ListPublished, ignoring offset and limit.
	// This is used for calculating pagination metadata (total pages, etc.).
	CountPublished(ctx context.Context, q PostListQuery) (int64, error)
	// GetBySlug retrieves a single published post addressed by the owner's
	// username and the post slug. Returns (nil, nil) if not found.
	GetBySlug(ctx context.Context, username, slug string) (*PostWithAuthor, error)
	// ListRandom retrieves up to limit published posts in random order.
	ListRandom(ctx context.Context, limit int) ([]PostWithAuthor, error)
}

type TagRepository interface {
	// ListForPosts retrieves the tags of every post in postIDs using a single
	// query, grouped by post ID. Posts without tags are absent from the map.
	// An empty postIDs slice must not touch the store.
	ListForPosts(ctx context.Context, postIDs []uuid.UUID) (map[uuid.UUID][]entity.Tag, error)
	// List retrieves one page of tags ordered by name.
	List(ctx context.Context, offset, limit int) ([]entity.Tag, error)
	// Count returns the total number of tags.
	Count(ctx context.Context) (int64, error)
}
