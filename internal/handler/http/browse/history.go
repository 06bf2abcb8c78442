package browse

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/handler/http/respond"
	historyUC "github.com/kirillmaiorovf-lgtm/movie-bot/internal/usecase/history"
)

type historyResponse struct {
	Entries []HistoryEntryDTO `json:"entries"`
}

// HistoryHandler returns the user's recent viewing history, oldest of the
// returned window first. `n` selects the window size; invalid values fall
// back to the default.
type HistoryHandler struct{ Svc *historyUC.Service }

func (h HistoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")
	if userID == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid user id"))
		return
	}

	n := 0
	if raw := r.URL.Query().Get("n"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			n = parsed
		}
	}

	entries, err := h.Svc.Recent(r.Context(), userID, n)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, historyResponse{Entries: toHistoryDTO(entries)})
}
