package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"blog-backend/internal/domain/entity"
	"blog-backend/internal/pkg/search"
	"blog-backend/internal/repository"
)

type PostRepo struct {
	db           Querier
	queryBuilder *PostQueryBuilder
}

func NewPostRepo(db Querier) repository.PostRepository {
	return &PostRepo{
		db:           db,
		queryBuilder: NewPostQueryBuilder(),
	}
}

// scanPostWithAuthor scans one joined posts/users row.
func scanPostWithAuthor(rows interface{ Scan(dest ...interface{}) error }) (repository.PostWithAuthor, error) {
	var post entity.Post
	var author entity.User
	err := rows.Scan(&post.ID, &post.Title, &post.Body, &post.Slug, &post.PhotoURL,
		&post.Published, &post.ViewCount, &post.LikeCount,
		&post.PublishedAt, &post.CreatedAt, &post.UpdatedAt,
		&author.ID, &author.Username)
	if err != nil {
		return repository.PostWithAuthor{}, err
	}
	post.AuthorID = author.ID
	return repository.PostWithAuthor{Post: &post, Author: author}, nil
}

// ListPublished retrieves one page of published posts with authors.
// The ORDER BY field is resolved through the builder's whitelist, so an
// invalid PostListQuery fails before any SQL reaches the store.
func (repo *PostRepo) ListPublished(ctx context.Context, q repository.PostListQuery) ([]repository.PostWithAuthor, error) {
	query, args, err := repo.queryBuilder.BuildListQuery(q)
	if err != nil {
		return nil, fmt.Errorf("ListPublished: %w", err)
	}

	if q.Search != "" {
		// Apply search timeout to prevent long-running queries
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, search.DefaultSearchTimeout)
		defer cancel()
	}

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListPublished: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make([]repository.PostWithAuthor, 0, q.Limit)
	for rows.Next() {
		item, err := scanPostWithAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("ListPublished: Scan: %w", err)
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

// CountPublished returns the number of published posts matching the same
// filter as ListPublished, ignoring limit and offset.
func (repo *PostRepo) CountPublished(ctx context.Context, q repository.PostListQuery) (int64, error) {
	query, args := repo.queryBuilder.BuildCountQuery(q)

	if q.Search != "" {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, search.DefaultSearchTimeout)
		defer cancel()
	}

	var count int64
	if err := repo.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountPublished: %w", err)
	}
	return count, nil
}

// GetBySlug retrieves a single published post by the owner's username and
// the post slug. Returns (nil, nil) if not found.
func (repo *PostRepo) GetBySlug(ctx context.Context, username, slug string) (*repository.PostWithAuthor, error) {
	const query = `
SELECT p.id, p.title, p.body, p.slug, p.photo_url, p.published, p.view_count, p.like_count,
       p.published_at, p.created_at, p.updated_at, u.id, u.username
FROM posts p
INNER JOIN users u ON p.created_by = u.id
WHERE u.username = $1 AND p.slug = $2 AND p.published = true
LIMIT 1`

	row := repo.db.QueryRowContext(ctx, query, username, slug)
	item, err := scanPostWithAuthor(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetBySlug: %w", err)
	}
	return &item, nil
}

// ListRandom retrieves up to limit published posts in random order.
func (repo *PostRepo) ListRandom(ctx context.Context, limit int) ([]repository.PostWithAuthor, error) {
	const query = `
SELECT p.id, p.title, p.body, p.slug, p.photo_url, p.published, p.view_count, p.like_count,
       p.published_at, p.created_at, p.updated_at, u.id, u.username
FROM posts p
INNER JOIN users u ON p.created_by = u.id
WHERE p.published = true
ORDER BY RANDOM()
LIMIT $1`

	rows, err := repo.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("ListRandom: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make([]repository.PostWithAuthor, 0, limit)
	for rows.Next() {
		item, err := scanPostWithAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("ListRandom: Scan: %w", err)
		}
		result = append(result, item)
	}
	return result, rows.Err()
}
