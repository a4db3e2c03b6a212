package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"blog-backend/internal/domain/entity"
	"blog-backend/internal/repository"
)

type TagRepo struct {
	db Querier
}

func NewTagRepo(db Querier) repository.TagRepository {
	return &TagRepo{db: db}
}

// ListForPosts retrieves the tags of every post in postIDs with a single
// query, using an array parameter instead of one query per post. Rows are
// ordered by tag name, so the grouped slices are deterministic for a fixed
// input. An empty input returns an empty map without touching the store.
func (repo *TagRepo) ListForPosts(ctx context.Context, postIDs []uuid.UUID) (map[uuid.UUID][]entity.Tag, error) {
	result := make(map[uuid.UUID][]entity.Tag)
	if len(postIDs) == 0 {
		return result, nil
	}

	const query = `
SELECT t.id, t.name, t.created_at, ptt.post_id
FROM tags t
INNER JOIN posts_to_tags ptt ON t.id = ptt.tag_id
WHERE ptt.post_id = ANY($1::uuid[])
ORDER BY t.name`

	ids := make([]string, 0, len(postIDs))
	for _, id := range postIDs {
		ids = append(ids, id.String())
	}

	rows, err := repo.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("ListForPosts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var tag entity.Tag
		var postID uuid.UUID
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.CreatedAt, &postID); err != nil {
			return nil, fmt.Errorf("ListForPosts: Scan: %w", err)
		}
		result[postID] = append(result[postID], tag)
	}
	return result, rows.Err()
}

// List retrieves one page of tags ordered by name.
func (repo *TagRepo) List(ctx context.Context, offset, limit int) ([]entity.Tag, error) {
	const query = `
SELECT id, name, created_at
FROM tags
ORDER BY name
LIMIT $1 OFFSET $2`

	rows, err := repo.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tags := make([]entity.Tag, 0, limit)
	for rows.Next() {
		var tag entity.Tag
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.CreatedAt); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

// Count returns the total number of tags.
func (repo *TagRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM tags`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}
