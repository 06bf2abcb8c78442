package browse

import (
	"errors"
	"net/http"

	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/handler/http/respond"
	browseUC "github.com/kirillmaiorovf-lgtm/movie-bot/internal/usecase/browse"
)

// EndHandler discards the user's browse session. Ending an absent session
// succeeds; the intent is idempotent.
type EndHandler struct{ Svc *browseUC.Service }

func (h EndHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")
	if userID == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid user id"))
		return
	}

	if err := h.Svc.EndBrowse(r.Context(), userID); err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
