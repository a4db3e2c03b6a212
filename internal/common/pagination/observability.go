package pagination

import (
	"log/slog"
	"time"
)

// LogRequest logs a pagination request with structured fields.
// The raw search text is deliberately not logged; only whether a search
// filter is present, to keep user input out of the logs.
func LogRequest(logger *slog.Logger, requestID string, params Params) {
	logger.Info("Paginated request",
		"request_id", requestID,
		"offset", params.Offset,
		"limit", params.Limit,
		"has_search", params.Search != "",
		"order_by", params.OrderBy,
		"sort_direction", params.SortDirection)
}

// LogResponse logs a pagination response with duration and status.
func LogResponse(logger *slog.Logger, requestID string, params Params, returnedCount int, duration time.Duration, statusCode int) {
	logger.Info("Paginated response",
		"request_id", requestID,
		"offset", params.Offset,
		"limit", params.Limit,
		"returned_count", returnedCount,
		"duration_ms", duration.Milliseconds(),
		"status", statusCode)
}

// LogError logs a pagination error with structured fields.
func LogError(logger *slog.Logger, requestID string, params Params, err error, errorType string) {
	logger.Error("Pagination error",
		"request_id", requestID,
		"offset", params.Offset,
		"limit", params.Limit,
		"error", err.Error(),
		"error_type", errorType)
}
