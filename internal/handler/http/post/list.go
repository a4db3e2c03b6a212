package post

import (
	"log/slog"
	"net/http"
	"time"

	"blog-backend/internal/common/pagination"
	"blog-backend/internal/handler/http/requestid"
	"blog-backend/internal/handler/http/respond"
	"blog-backend/internal/observability/logging"
	postUC "blog-backend/internal/usecase/post"
)

// ListHandler serves GET /posts: one page of published posts with authors
// and tags, filtered and sorted per query parameters.
type ListHandler struct {
	Svc           *postUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()

	reqID := requestid.FromContext(ctx)
	logger := logging.WithRequestID(ctx, h.Logger)

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		logger.Warn("Invalid pagination parameters",
			"error", err.Error(),
			"request_id", reqID)
		pagination.RecordError("validation")
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	pagination.LogRequest(logger, reqID, params)

	result, err := h.Svc.ListPublished(ctx, params)
	if err != nil {
		if isValidationError(err) {
			pagination.LogError(logger, reqID, params, err, "validation")
			pagination.RecordError("validation")
			respond.SafeError(w, http.StatusBadRequest, err)
			return
		}
		pagination.LogError(logger, reqID, params, err, "database")
		pagination.RecordError("database")
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := toDTOs(result.Data)

	duration := time.Since(startTime)
	pagination.RecordRequest(http.StatusOK, params.Offset)
	pagination.RecordDuration("handler", duration.Seconds())
	pagination.UpdateTotalCount(result.Meta.TotalItems)

	pagination.LogResponse(logger, reqID, params, len(dtos), duration, http.StatusOK)

	respond.SuccessWithMeta(w, http.StatusOK, dtos, result.Meta)
}
