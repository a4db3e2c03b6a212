package post

import (
	"fmt"
	"net/http"
	"strconv"

	"blog-backend/internal/handler/http/respond"
	postUC "blog-backend/internal/usecase/post"
)

// maxRandomLimit bounds the limit query parameter of the random endpoint.
const maxRandomLimit = 100

// RandomHandler serves GET /posts/random: up to limit published posts in
// random order, for "you may also like" style widgets.
type RandomHandler struct{ Svc *postUC.Service }

func (h RandomHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	limit := postUC.DefaultRandomLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 1 || n > maxRandomLimit {
			respond.SafeError(w, http.StatusBadRequest,
				fmt.Errorf("invalid query parameter: limit must be between 1 and %d", maxRandomLimit))
			return
		}
		limit = n
	}

	rows, err := h.Svc.ListRandom(r.Context(), limit)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.Success(w, http.StatusOK, toDTOs(rows))
}
