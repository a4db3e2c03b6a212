package pagination

// CalculateTotalPages calculates the total number of pages based on total
// items and limit. Uses ceiling division so partial pages count as a page.
//
// Special cases:
//   - If total is 0, returns 0 (an empty result set has no pages)
//
// The caller guarantees limit >= 1 through Params validation.
//
// Examples:
//   - Total 0, Limit 20 -> 0 pages
//   - Total 10, Limit 20 -> 1 page
//   - Total 20, Limit 20 -> 1 page
//   - Total 21, Limit 20 -> 2 pages
//   - Total 5, Limit 2 -> 3 pages
func CalculateTotalPages(total int64, limit int) int {
	if total == 0 {
		return 0
	}
	// Ceiling division: (total + limit - 1) / limit
	return int((total + int64(limit) - 1) / int64(limit))
}

// NewMetadata builds response metadata for one page of results.
// Offset and limit are echoed verbatim from the validated request.
func NewMetadata(total int64, offset, limit int) Metadata {
	return Metadata{
		TotalItems: total,
		Offset:     offset,
		Limit:      limit,
		TotalPages: CalculateTotalPages(total, limit),
	}
}
