package browse

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/config"
	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/handler/http/respond"
	browseUC "github.com/kirillmaiorovf-lgtm/movie-bot/internal/usecase/browse"
)

type startRequest struct {
	Genre string `json:"genre"`
}

// StartHandler begins a new browse for a genre, replacing any previous
// session for the user.
type StartHandler struct {
	Svc  *browseUC.Service
	Menu *config.GenreMenu
}

func (h StartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")
	if userID == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid user id"))
		return
	}

	var req startRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	if h.Menu != nil && !h.Menu.Contains(req.Genre) {
		writeBrowseError(w, browseUC.ErrInvalidGenre)
		return
	}

	result, err := h.Svc.StartBrowse(r.Context(), userID, req.Genre)
	if err != nil {
		writeBrowseError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toPageDTO(result))
}
