package tag

import (
	"log/slog"
	"net/http"

	"blog-backend/internal/common/pagination"
	tagUC "blog-backend/internal/usecase/tag"
)

// Register registers the tag HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc *tagUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET /tags", ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
}
