package browse

import (
	"errors"
	"net/http"

	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/handler/http/respond"
	browseUC "github.com/kirillmaiorovf-lgtm/movie-bot/internal/usecase/browse"
)

type errorBody struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
}

// writeBrowseError maps engine errors to statuses. Boundary conditions and
// empty catalog answers are named reasons the front-end renders as notices;
// only genuine faults become a 500.
func writeBrowseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, browseUC.ErrInvalidGenre):
		respond.JSON(w, http.StatusBadRequest, errorBody{Error: err.Error(), Reason: "invalid_genre"})
	case errors.Is(err, browseUC.ErrNothingFound):
		respond.JSON(w, http.StatusNotFound, errorBody{Error: err.Error(), Reason: "nothing_found"})
	case errors.Is(err, browseUC.ErrNoMoreResults):
		respond.JSON(w, http.StatusNotFound, errorBody{Error: err.Error(), Reason: "no_more_results"})
	case errors.Is(err, browseUC.ErrDetailNotFound):
		respond.JSON(w, http.StatusNotFound, errorBody{Error: err.Error(), Reason: "not_found"})
	case errors.Is(err, browseUC.ErrNoSession):
		respond.JSON(w, http.StatusConflict, errorBody{Error: err.Error(), Reason: "no_session"})
	case errors.Is(err, browseUC.ErrAtFirstPage):
		respond.JSON(w, http.StatusConflict, errorBody{Error: err.Error(), Reason: "at_first_page"})
	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}
