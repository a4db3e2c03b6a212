package pagination

// Metadata contains pagination metadata included in API responses.
type Metadata struct {
	TotalItems int64 `json:"total_items"` // Total number of matching items across all pages
	Offset     int   `json:"offset"`      // Echoed request offset
	Limit      int   `json:"limit"`       // Echoed request limit
	TotalPages int   `json:"total_pages"` // Calculated total number of pages
}
