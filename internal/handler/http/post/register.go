package post

import (
	"log/slog"
	"net/http"

	"blog-backend/internal/common/pagination"
	postUC "blog-backend/internal/usecase/post"
)

// Register registers all post-related HTTP handlers with the given mux.
// The random route is registered before the permalink prefix so it is never
// shadowed by the catch-all.
func Register(mux *http.ServeMux, svc *postUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET /posts", ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
	mux.Handle("GET /posts/random", RandomHandler{svc})
	mux.Handle("GET /posts/u/", GetHandler{svc})
}
