package browse

import (
	"errors"
	"net/http"

	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/handler/http/respond"
	browseUC "github.com/kirillmaiorovf-lgtm/movie-bot/internal/usecase/browse"
)

// NextHandler advances the session one page forward. Past the last page it
// answers 404 no_more_results and the session stays put.
type NextHandler struct{ Svc *browseUC.Service }

func (h NextHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")
	if userID == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid user id"))
		return
	}

	result, err := h.Svc.Advance(r.Context(), userID)
	if err != nil {
		writeBrowseError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toPageDTO(result))
}
