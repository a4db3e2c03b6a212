package pagination

import (
	"fmt"
	"net/http"
	"strconv"
)

// Params represents the filter/sort/page query parameters of a list request.
// Offset and Limit are validated against Config bounds at parse time;
// OrderBy and SortDirection are carried as raw strings and resolved against
// the repository whitelist by the use case layer.
type Params struct {
	Offset        int    // Number of rows to skip (0-based)
	Limit         int    // Items per page
	Search        string // Optional substring filter
	OrderBy       string // Optional sort field (whitelist-checked downstream)
	SortDirection string // Optional sort direction: asc or desc
}

// ParseQueryParams parses pagination parameters from an HTTP request query
// string. Missing parameters fall back to Config defaults.
//
// Query parameters:
//   - offset: Rows to skip (between 0 and config.MaxOffset)
//   - limit: Items per page (between 1 and config.MaxLimit)
//   - search: Free text substring filter
//   - order_by: Sort field
//   - sort_direction: asc or desc
//
// Returns an error if offset or limit are outside bounds.
func ParseQueryParams(r *http.Request, config Config) (Params, error) {
	params := Params{
		Offset: 0,
		Limit:  config.DefaultLimit,
	}

	q := r.URL.Query()

	if offsetStr := q.Get("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 || offset > config.MaxOffset {
			return params, fmt.Errorf("invalid query parameter: offset must be between 0 and %d", config.MaxOffset)
		}
		params.Offset = offset
	}

	if limitStr := q.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > config.MaxLimit {
			return params, fmt.Errorf("invalid query parameter: limit must be between 1 and %d", config.MaxLimit)
		}
		params.Limit = limit
	}

	params.Search = q.Get("search")
	params.OrderBy = q.Get("order_by")
	params.SortDirection = q.Get("sort_direction")

	return params, nil
}
