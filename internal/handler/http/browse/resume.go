package browse

import (
	"errors"
	"net/http"

	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/handler/http/respond"
	browseUC "github.com/kirillmaiorovf-lgtm/movie-bot/internal/usecase/browse"
)

// ResumeHandler re-renders the current page after a detail view. It is a
// pure read; stored state never changes even when the catalog has drifted.
type ResumeHandler struct{ Svc *browseUC.Service }

func (h ResumeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")
	if userID == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid user id"))
		return
	}

	result, err := h.Svc.Resume(r.Context(), userID)
	if err != nil {
		writeBrowseError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toPageDTO(result))
}
