package browse

import (
	"errors"
	"net/http"

	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/handler/http/respond"
	browseUC "github.com/kirillmaiorovf-lgtm/movie-bot/internal/usecase/browse"
)

// PrevHandler moves the session one page back. From page 1 it answers 409
// at_first_page without touching the session.
type PrevHandler struct{ Svc *browseUC.Service }

func (h PrevHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")
	if userID == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid user id"))
		return
	}

	result, err := h.Svc.Retreat(r.Context(), userID)
	if err != nil {
		writeBrowseError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toPageDTO(result))
}
