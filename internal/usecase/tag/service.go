// Package tag provides use cases for listing the tag vocabulary.
package tag

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"blog-backend/internal/common/pagination"
	"blog-backend/internal/domain/entity"
	"blog-backend/internal/repository"
)

// Service provides tag read use cases.
type Service struct {
	Tags repository.TagRepository
}

// PaginatedResult represents the result of a paginated tag query.
type PaginatedResult struct {
	Data []entity.Tag
	Meta pagination.Metadata
}

// List retrieves one page of tags ordered by name, with pagination metadata.
// The page and the total count are fetched concurrently.
func (s *Service) List(ctx context.Context, params pagination.Params) (*PaginatedResult, error) {
	var (
		tags  []entity.Tag
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tags, err = s.Tags.List(gctx, params.Offset, params.Limit)
		if err != nil {
			return fmt.Errorf("list tags: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		total, err = s.Tags.Count(gctx)
		if err != nil {
			return fmt.Errorf("count tags: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if tags == nil {
		tags = []entity.Tag{}
	}

	return &PaginatedResult{
		Data: tags,
		Meta: pagination.NewMetadata(total, params.Offset, params.Limit),
	}, nil
}
