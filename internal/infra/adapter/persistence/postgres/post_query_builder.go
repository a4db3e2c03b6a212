// Package postgres provides PostgreSQL implementations of repository interfaces.
package postgres

import (
	"fmt"

	"blog-backend/internal/domain/entity"
	"blog-backend/internal/pkg/search"
	"blog-backend/internal/repository"
)

// PostQueryBuilder builds the WHERE and ORDER BY clauses for post listings.
// The builder is shared between the COUNT and SELECT twins of a listing so
// both always agree on the filter. It uses PostgreSQL-specific features like
// ILIKE and numbered placeholders ($1, $2, etc.) and holds no mutable state,
// so one instance is safe for concurrent use.
type PostQueryBuilder struct{}

// NewPostQueryBuilder creates a new query builder instance.
func NewPostQueryBuilder() *PostQueryBuilder {
	return &PostQueryBuilder{}
}

// sortColumns maps the whitelisted sort fields to actual column references.
// Values outside this map are rejected before SQL is built; the request
// string is never interpolated into the query.
var sortColumns = map[repository.SortField]string{
	repository.SortByID:          "p.id",
	repository.SortByTitle:       "p.title",
	repository.SortByPublishedAt: "p.published_at",
	repository.SortByCreatedAt:   "p.created_at",
	repository.SortByUpdatedAt:   "p.updated_at",
	repository.SortByViewCount:   "p.view_count",
	repository.SortByLikeCount:   "p.like_count",
}

// BuildWhereClause builds the WHERE clause and arguments for a post listing.
// Every listing is restricted to published posts; when searchText is present
// a single sanitized pattern is matched against title, body and author
// username with ILIKE (case-insensitive), bound as one parameter.
func (qb *PostQueryBuilder) BuildWhereClause(searchText string) (clause string, args []interface{}) {
	clause = "WHERE p.published = true"
	if searchText == "" {
		return clause, args
	}

	pattern := search.EscapeILIKE(searchText)
	clause += fmt.Sprintf(" AND (p.title ILIKE $%d OR p.body ILIKE $%d OR u.username ILIKE $%d)",
		len(args)+1, len(args)+1, len(args)+1)
	args = append(args, pattern)
	return clause, args
}

// BuildOrderClause resolves the sort field through the whitelist and returns
// the ORDER BY clause. A secondary sort on p.id keeps pagination
// reproducible: the store's ordering of rows that tie on the primary key is
// not stable across queries.
func (qb *PostQueryBuilder) BuildOrderClause(field repository.SortField, dir repository.SortDirection) (string, error) {
	column, ok := sortColumns[field]
	if !ok {
		return "", &entity.ValidationError{Field: "order_by", Message: fmt.Sprintf("unknown sort field %q", string(field))}
	}

	direction := "ASC"
	if dir == repository.SortDesc {
		direction = "DESC"
	}

	clause := fmt.Sprintf("ORDER BY %s %s", column, direction)
	if field != repository.SortByID {
		clause += ", p.id ASC"
	}
	return clause, nil
}

// BuildListQuery constructs the parameterized page query for a listing.
// LIMIT and OFFSET are bound as the trailing parameters.
func (qb *PostQueryBuilder) BuildListQuery(q repository.PostListQuery) (string, []interface{}, error) {
	whereClause, args := qb.BuildWhereClause(q.Search)
	orderClause, err := qb.BuildOrderClause(q.OrderBy, q.Direction)
	if err != nil {
		return "", nil, err
	}

	paramIndex := len(args) + 1
	args = append(args, q.Limit, q.Offset)

	query := fmt.Sprintf(`
SELECT p.id, p.title, p.body, p.slug, p.photo_url, p.published, p.view_count, p.like_count,
       p.published_at, p.created_at, p.updated_at, u.id, u.username
FROM posts p
INNER JOIN users u ON p.created_by = u.id
%s
%s
LIMIT $%d OFFSET $%d`, whereClause, orderClause, paramIndex, paramIndex+1)

	return query, args, nil
}

// BuildCountQuery constructs the COUNT twin of BuildListQuery: same filter,
// no ordering, no limit or offset.
func (qb *PostQueryBuilder) BuildCountQuery(q repository.PostListQuery) (string, []interface{}) {
	whereClause, args := qb.BuildWhereClause(q.Search)
	query := fmt.Sprintf(`
SELECT COUNT(*)
FROM posts p
INNER JOIN users u ON p.created_by = u.id
%s`, whereClause)
	return query, args
}
