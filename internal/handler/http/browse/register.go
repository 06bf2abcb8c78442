package browse

import (
	"net/http"

	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/config"
	browseUC "github.com/kirillmaiorovf-lgtm/movie-bot/internal/usecase/browse"
	historyUC "github.com/kirillmaiorovf-lgtm/movie-bot/internal/usecase/history"
)

// Register wires the navigation endpoints onto the mux. Auth is applied
// outside, by the gateway-wide Authz middleware.
func Register(mux *http.ServeMux, svc *browseUC.Service, history *historyUC.Service, menu *config.GenreMenu) {
	mux.Handle("GET /genres", GenresHandler{Menu: menu})

	mux.Handle("POST /browse/{user_id}/start", StartHandler{Svc: svc, Menu: menu})
	mux.Handle("POST /browse/{user_id}/next", NextHandler{Svc: svc})
	mux.Handle("POST /browse/{user_id}/prev", PrevHandler{Svc: svc})
	mux.Handle("POST /browse/{user_id}/resume", ResumeHandler{Svc: svc})
	mux.Handle("DELETE /browse/{user_id}", EndHandler{Svc: svc})

	mux.Handle("GET /browse/{user_id}/movies/{movie_id}", DetailHandler{Svc: svc})
	mux.Handle("GET /browse/{user_id}/history", HistoryHandler{Svc: history})
}
