package browse

import (
	"net/http"

	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/config"
	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/handler/http/respond"
)

type genreDTO struct {
	Label string `json:"label"`
	Key   string `json:"key"`
}

type genresResponse struct {
	Genres []genreDTO `json:"genres"`
}

// GenresHandler returns the genre menu the front-end renders as the
// "choose genre" keyboard.
type GenresHandler struct{ Menu *config.GenreMenu }

func (h GenresHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	genres := h.Menu.Genres()
	out := genresResponse{Genres: make([]genreDTO, 0, len(genres))}
	for _, genre := range genres {
		out.Genres = append(out.Genres, genreDTO{Label: genre.Label, Key: genre.Key})
	}
	respond.JSON(w, http.StatusOK, out)
}
