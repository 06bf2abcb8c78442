// Package browse exposes the chat gateway's navigation endpoints. Each
// handler maps one user intent onto the pagination engine and renders the
// result as JSON for the front-end to format into chat messages.
package browse

import (
	"time"

	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/domain/entity"
	browseUC "github.com/kirillmaiorovf-lgtm/movie-bot/internal/usecase/browse"
)

// MovieDTO is one movie row of a page response.
type MovieDTO struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Year      int      `json:"year,omitempty"`
	Rating    *float64 `json:"rating,omitempty"`
	PosterURL *string  `json:"poster_url,omitempty"`
}

// PageDTO is one renderable page of movies. Ordinals continue across pages
// so the chat numbering never restarts at 1.
type PageDTO struct {
	Movies       []MovieDTO `json:"movies"`
	Page         int        `json:"page"`
	StartIndex   int        `json:"start_index"`
	FirstOrdinal int        `json:"first_ordinal"`
	LastOrdinal  int        `json:"last_ordinal"`
	TotalPages   int        `json:"total_pages,omitempty"`
}

// WatchLinkDTO is one external watch-platform link.
type WatchLinkDTO struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// DetailDTO is one movie detail card.
type DetailDTO struct {
	MovieDTO
	Description string         `json:"description,omitempty"`
	RuntimeMin  int            `json:"runtime_min,omitempty"`
	Genres      []string       `json:"genres,omitempty"`
	WatchLinks  []WatchLinkDTO `json:"watch_links,omitempty"`
	Blurb       string         `json:"blurb,omitempty"`
}

// HistoryEntryDTO is one viewed movie in the history response.
type HistoryEntryDTO struct {
	MovieID   string    `json:"movie_id"`
	Name      string    `json:"name"`
	Year      int       `json:"year,omitempty"`
	Rating    *float64  `json:"rating,omitempty"`
	PosterURL *string   `json:"poster_url,omitempty"`
	ViewedAt  time.Time `json:"viewed_at"`
}

func toMovieDTO(m entity.MovieSummary) MovieDTO {
	return MovieDTO{
		ID:        m.ID,
		Name:      m.DisplayName(),
		Year:      m.Year,
		Rating:    m.Rating,
		PosterURL: m.PosterURL,
	}
}

func toPageDTO(result *browseUC.PageResult) PageDTO {
	movies := make([]MovieDTO, 0, len(result.Items))
	for _, item := range result.Items {
		movies = append(movies, toMovieDTO(item))
	}
	return PageDTO{
		Movies:       movies,
		Page:         result.Page,
		StartIndex:   result.StartIndex,
		FirstOrdinal: result.FirstOrdinal,
		LastOrdinal:  result.LastOrdinal,
		TotalPages:   result.TotalPages,
	}
}

func toDetailDTO(result *browseUC.DetailResult) DetailDTO {
	detail := result.Detail
	out := DetailDTO{
		MovieDTO:    toMovieDTO(detail.MovieSummary),
		Description: detail.Description,
		RuntimeMin:  detail.Runtime,
		Genres:      detail.Genres,
		Blurb:       result.Blurb,
	}
	for _, link := range detail.WatchLinks {
		out.WatchLinks = append(out.WatchLinks, WatchLinkDTO{Name: link.Name, URL: link.URL})
	}
	return out
}

func toHistoryDTO(entries []entity.HistoryEntry) []HistoryEntryDTO {
	out := make([]HistoryEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, HistoryEntryDTO{
			MovieID:   e.MovieID,
			Name:      e.Name,
			Year:      e.Year,
			Rating:    e.Rating,
			PosterURL: e.PosterURL,
			ViewedAt:  e.ViewedAt,
		})
	}
	return out
}
