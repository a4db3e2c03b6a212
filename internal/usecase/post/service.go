package post

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"blog-backend/internal/common/pagination"
	"blog-backend/internal/domain/entity"
	"blog-backend/internal/repository"
)

// DefaultRandomLimit is the number of posts returned by ListRandom when the
// caller does not specify a limit.
const DefaultRandomLimit = 6

// Service provides post read use cases.
// It handles business logic for listing and fetching published posts and
// delegates persistence to the repositories.
type Service struct {
	Posts repository.PostRepository
	Tags  repository.TagRepository
}

// PostWithTags is a listed post together with its author and tags.
// Tags is never nil; a post without tags carries an empty slice.
type PostWithTags struct {
	Post   *entity.Post
	Author entity.User
	Tags   []entity.Tag
}

// PaginatedResult represents the result of a paginated post query.
// It contains both the data and pagination metadata.
type PaginatedResult struct {
	Data []PostWithTags
	Meta pagination.Metadata
}

// ListPublished retrieves one page of published posts with authors and tags.
// The raw order_by/sort_direction strings are resolved against the sort
// whitelist first, so an invalid value is rejected before any query runs.
// The page and the total count are fetched concurrently; tags for the page
// are then resolved in a single batched query.
func (s *Service) ListPublished(ctx context.Context, params pagination.Params) (*PaginatedResult, error) {
	orderBy, err := repository.ParseSortField(params.OrderBy)
	if err != nil {
		return nil, err
	}
	direction, err := repository.ParseSortDirection(params.SortDirection)
	if err != nil {
		return nil, err
	}

	q := repository.PostListQuery{
		Offset:    params.Offset,
		Limit:     params.Limit,
		Search:    params.Search,
		OrderBy:   orderBy,
		Direction: direction,
	}

	var (
		posts []repository.PostWithAuthor
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		posts, err = s.Posts.ListPublished(gctx, q)
		if err != nil {
			return fmt.Errorf("list posts: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		total, err = s.Posts.CountPublished(gctx, q)
		if err != nil {
			return fmt.Errorf("count posts: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	data, err := s.attachTags(ctx, posts)
	if err != nil {
		return nil, err
	}

	return &PaginatedResult{
		Data: data,
		Meta: pagination.NewMetadata(total, params.Offset, params.Limit),
	}, nil
}

// GetBySlug retrieves a single published post addressed by the owner's
// username and the post slug, with its tags attached.
// Returns ErrPostNotFound if no such post exists.
func (s *Service) GetBySlug(ctx context.Context, username, slug string) (*PostWithTags, error) {
	if username == "" {
		return nil, &entity.ValidationError{Field: "username", Message: "is required"}
	}
	if slug == "" {
		return nil, &entity.ValidationError{Field: "slug", Message: "is required"}
	}

	row, err := s.Posts.GetBySlug(ctx, username, slug)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	if row == nil {
		return nil, ErrPostNotFound
	}

	data, err := s.attachTags(ctx, []repository.PostWithAuthor{*row})
	if err != nil {
		return nil, err
	}
	return &data[0], nil
}

// ListRandom retrieves up to limit published posts in random order, with
// tags attached. A non-positive limit falls back to DefaultRandomLimit.
func (s *Service) ListRandom(ctx context.Context, limit int) ([]PostWithTags, error) {
	if limit <= 0 {
		limit = DefaultRandomLimit
	}

	posts, err := s.Posts.ListRandom(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list random posts: %w", err)
	}

	return s.attachTags(ctx, posts)
}

// attachTags resolves tags for a page of posts in one batched query and
// zips them onto the rows. Posts without tags get an empty slice, not nil.
func (s *Service) attachTags(ctx context.Context, posts []repository.PostWithAuthor) ([]PostWithTags, error) {
	ids := make([]uuid.UUID, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.Post.ID)
	}

	tagsByPost, err := s.Tags.ListForPosts(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list tags for posts: %w", err)
	}

	data := make([]PostWithTags, 0, len(posts))
	for _, p := range posts {
		tags := tagsByPost[p.Post.ID]
		if tags == nil {
			tags = []entity.Tag{}
		}
		data = append(data, PostWithTags{
			Post:   p.Post,
			Author: p.Author,
			Tags:   tags,
		})
	}
	return data, nil
}
