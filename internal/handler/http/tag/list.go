package tag

import (
	"log/slog"
	"net/http"

	"blog-backend/internal/common/pagination"
	"blog-backend/internal/handler/http/respond"
	"blog-backend/internal/observability/logging"
	tagUC "blog-backend/internal/usecase/tag"
)

// ListHandler serves GET /tags: one page of the tag vocabulary ordered by name.
type ListHandler struct {
	Svc           *tagUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		logger.Warn("Invalid pagination parameters", "error", err.Error())
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.Svc.List(ctx, params)
	if err != nil {
		logger.Error("Failed to list tags", "error", err.Error())
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.SuccessWithMeta(w, http.StatusOK, toDTOs(result.Data), result.Meta)
}
