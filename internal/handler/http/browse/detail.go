package browse

import (
	"errors"
	"net/http"

	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/handler/http/respond"
	browseUC "github.com/kirillmaiorovf-lgtm/movie-bot/internal/usecase/browse"
)

// DetailHandler fetches one movie's detail card and records the view in the
// user's history. The browse session is left untouched.
type DetailHandler struct{ Svc *browseUC.Service }

func (h DetailHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")
	movieID := r.PathValue("movie_id")
	if userID == "" || movieID == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid user or movie id"))
		return
	}

	result, err := h.Svc.Detail(r.Context(), userID, movieID)
	if err != nil {
		writeBrowseError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDetailDTO(result))
}
