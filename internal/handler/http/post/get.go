package post

import (
	"errors"
	"net/http"

	"blog-backend/internal/handler/http/pathutil"
	"blog-backend/internal/handler/http/respond"
	postUC "blog-backend/internal/usecase/post"
)

// GetHandler serves GET /posts/u/{username}/{slug}: a single published post
// addressed by its permalink.
type GetHandler struct{ Svc *postUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	username, slug, err := pathutil.ExtractUserSlug(r.URL.Path, "/posts/u/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	row, err := h.Svc.GetBySlug(r.Context(), username, slug)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, postUC.ErrPostNotFound) {
			code = http.StatusNotFound
		} else if isValidationError(err) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.Success(w, http.StatusOK, toDTO(*row))
}
