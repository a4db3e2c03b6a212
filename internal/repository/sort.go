package repository

import "blog-backend/internal/domain/entity"

// SortField enumerates the post columns a caller may sort by. The closed set
// prevents arbitrary column injection: anything outside it is rejected at the
// boundary and never reaches query construction.
type SortField string

const (
	SortByID          SortField = "id"
	SortByTitle       SortField = "title"
	SortByPublishedAt SortField = "published_at"
	SortByCreatedAt   SortField = "created_at"
	SortByUpdatedAt   SortField = "updated_at"
	SortByViewCount   SortField = "view_count"
	SortByLikeCount   SortField = "like_count"
)

// SortDirection is the sort order for a post listing.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// sortFields is the whitelist backing ParseSortField.
var sortFields = map[string]SortField{
	"id":           SortByID,
	"title":        SortByTitle,
	"published_at": SortByPublishedAt,
	"created_at":   SortByCreatedAt,
	"updated_at":   SortByUpdatedAt,
	"view_count":   SortByViewCount,
	"like_count":   SortByLikeCount,
}

// ParseSortField resolves a raw order_by value against the whitelist.
// An empty value falls back to SortByID. Unknown values return a
// ValidationError so the boundary can reject them before any query runs.
func ParseSortField(s string) (SortField, error) {
	if s == "" {
		return SortByID, nil
	}
	field, ok := sortFields[s]
	if !ok {
		return "", &entity.ValidationError{Field: "order_by", Message: "must be one of: id, title, published_at, created_at, updated_at, view_count, like_count"}
	}
	return field, nil
}

// ParseSortDirection resolves a raw sort_direction value.
// An empty value falls back to ascending, matching the store default.
func ParseSortDirection(s string) (SortDirection, error) {
	switch s {
	case "":
		return SortAsc, nil
	case "asc":
		return SortAsc, nil
	case "desc":
		return SortDesc, nil
	default:
		return "", &entity.ValidationError{Field: "sort_direction", Message: "must be either asc or desc"}
	}
}
