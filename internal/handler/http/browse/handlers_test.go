package browse

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/config"
	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/domain/entity"
	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/infra/adapter/persistence/memory"
	browseUC "github.com/kirillmaiorovf-lgtm/movie-bot/internal/usecase/browse"
	historyUC "github.com/kirillmaiorovf-lgtm/movie-bot/internal/usecase/history"
)

// fakeCatalog serves two pages of drama: a full first page and a short
// second one. Everything else is empty.
type fakeCatalog struct {
	pageSize int
	details  map[string]*entity.MovieDetail
}

func (c *fakeCatalog) Search(_ context.Context, genre string, page int) (browseUC.CatalogPage, error) {
	if genre != "drama" || page > 2 {
		return browseUC.CatalogPage{Items: []entity.MovieSummary{}}, nil
	}
	count := c.pageSize
	if page == 2 {
		count = 3
	}
	items := make([]entity.MovieSummary, 0, count)
	for i := 0; i < count; i++ {
		id := fmt.Sprintf("m-%d-%d", page, i)
		items = append(items, entity.MovieSummary{ID: id, Name: "Movie " + id, Year: 2000 + i})
	}
	return browseUC.CatalogPage{Items: items, TotalPages: 2}, nil
}

func (c *fakeCatalog) GetDetail(_ context.Context, movieID string) (*entity.MovieDetail, error) {
	return c.details[movieID], nil
}

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()

	catalog := &fakeCatalog{
		pageSize: 5,
		details: map[string]*entity.MovieDetail{
			"m-1-0": {
				MovieSummary: entity.MovieSummary{ID: "m-1-0", Name: "Movie m-1-0", Year: 2000},
				Description:  "A story.",
				Runtime:      120,
				Genres:       []string{"drama"},
				WatchLinks:   []entity.WatchLink{{Name: "Stream", URL: "https://example.com/w"}},
			},
		},
	}

	histSvc := historyUC.NewService(memory.NewHistoryRepo(), historyUC.DefaultCap)
	svc := browseUC.NewService(memory.NewSessionRepo(), catalog, histSvc, catalog.pageSize)

	t.Setenv("GENRES_FILE", "")
	menu, err := config.LoadGenres()
	if err != nil {
		t.Fatal(err)
	}

	mux := http.NewServeMux()
	Register(mux, svc, histSvc, menu)
	return mux
}

func do(t *testing.T, mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decodePage(t *testing.T, rec *httptest.ResponseRecorder) PageDTO {
	t.Helper()
	var page PageDTO
	if err := json.NewDecoder(rec.Body).Decode(&page); err != nil {
		t.Fatalf("decode page: %v", err)
	}
	return page
}

func decodeReason(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body errorBody
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body.Reason
}

func TestGenresEndpoint(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodGet, "/genres", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}

	var resp genresResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Genres) == 0 {
		t.Fatal("empty genre menu")
	}
	if resp.Genres[0].Key == "" || resp.Genres[0].Label == "" {
		t.Errorf("incomplete genre entry: %+v", resp.Genres[0])
	}
}

func TestStartEndpoint(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodPost, "/browse/u-1/start", `{"genre":"drama"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}

	page := decodePage(t, rec)
	if page.Page != 1 || page.FirstOrdinal != 1 || page.LastOrdinal != 5 {
		t.Errorf("page=%d ordinals=%d..%d", page.Page, page.FirstOrdinal, page.LastOrdinal)
	}
	if len(page.Movies) != 5 {
		t.Errorf("movies=%d want 5", len(page.Movies))
	}
}

func TestStartEndpoint_Rejections(t *testing.T) {
	mux := newTestMux(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantReason string
	}{
		{"unknown genre", `{"genre":"telenovela"}`, http.StatusBadRequest, "invalid_genre"},
		{"empty body genre", `{}`, http.StatusBadRequest, "invalid_genre"},
		{"genre with no results", `{"genre":"comedy"}`, http.StatusNotFound, "nothing_found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, mux, http.MethodPost, "/browse/u-1/start", tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status=%d want %d", rec.Code, tt.wantStatus)
			}
			if reason := decodeReason(t, rec); reason != tt.wantReason {
				t.Errorf("reason=%q want %q", reason, tt.wantReason)
			}
		})
	}
}

func TestStartEndpoint_MalformedBody(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodPost, "/browse/u-1/start", `{"genre":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d want 400", rec.Code)
	}
}

func TestNavigation(t *testing.T) {
	mux := newTestMux(t)

	if rec := do(t, mux, http.MethodPost, "/browse/u-1/start", `{"genre":"drama"}`); rec.Code != http.StatusOK {
		t.Fatalf("start status=%d", rec.Code)
	}

	// Forward to the short second page: ordinals continue.
	rec := do(t, mux, http.MethodPost, "/browse/u-1/next", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("next status=%d", rec.Code)
	}
	page := decodePage(t, rec)
	if page.Page != 2 || page.FirstOrdinal != 6 || page.LastOrdinal != 8 {
		t.Errorf("page=%d ordinals=%d..%d want 2, 6..8", page.Page, page.FirstOrdinal, page.LastOrdinal)
	}

	// Past the end: 404 and the session stays on page 2.
	rec = do(t, mux, http.MethodPost, "/browse/u-1/next", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("past-end status=%d want 404", rec.Code)
	}
	if reason := decodeReason(t, rec); reason != "no_more_results" {
		t.Errorf("reason=%q", reason)
	}

	rec = do(t, mux, http.MethodPost, "/browse/u-1/resume", "")
	if page = decodePage(t, rec); page.Page != 2 {
		t.Errorf("after failed advance page=%d want 2", page.Page)
	}

	// Back to page 1, then a blocked retreat.
	rec = do(t, mux, http.MethodPost, "/browse/u-1/prev", "")
	if page = decodePage(t, rec); page.Page != 1 || page.FirstOrdinal != 1 {
		t.Errorf("after retreat page=%d first=%d", page.Page, page.FirstOrdinal)
	}

	rec = do(t, mux, http.MethodPost, "/browse/u-1/prev", "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("first-page retreat status=%d want 409", rec.Code)
	}
	if reason := decodeReason(t, rec); reason != "at_first_page" {
		t.Errorf("reason=%q", reason)
	}
}

func TestNavigation_NoSession(t *testing.T) {
	mux := newTestMux(t)

	for _, path := range []string{"/browse/u-9/next", "/browse/u-9/prev", "/browse/u-9/resume"} {
		rec := do(t, mux, http.MethodPost, path, "")
		if rec.Code != http.StatusConflict {
			t.Errorf("%s status=%d want 409", path, rec.Code)
		}
		if reason := decodeReason(t, rec); reason != "no_session" {
			t.Errorf("%s reason=%q", path, reason)
		}
	}
}

func TestDetailEndpoint(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodGet, "/browse/u-1/movies/m-1-0", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}

	var detail DetailDTO
	if err := json.NewDecoder(rec.Body).Decode(&detail); err != nil {
		t.Fatal(err)
	}
	if detail.ID != "m-1-0" || detail.RuntimeMin != 120 || len(detail.WatchLinks) != 1 {
		t.Errorf("detail=%+v", detail)
	}

	// The view landed in history.
	rec = do(t, mux, http.MethodGet, "/browse/u-1/history", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("history status=%d", rec.Code)
	}
	var hist historyResponse
	if err := json.NewDecoder(rec.Body).Decode(&hist); err != nil {
		t.Fatal(err)
	}
	if len(hist.Entries) != 1 || hist.Entries[0].MovieID != "m-1-0" {
		t.Errorf("history entries=%+v", hist.Entries)
	}
}

func TestDetailEndpoint_NotFound(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodGet, "/browse/u-1/movies/nope", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status=%d want 404", rec.Code)
	}
	if reason := decodeReason(t, rec); reason != "not_found" {
		t.Errorf("reason=%q", reason)
	}
}

func TestHistoryEndpoint_WindowParam(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodGet, "/browse/u-1/history?n=3", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
	var hist historyResponse
	if err := json.NewDecoder(rec.Body).Decode(&hist); err != nil {
		t.Fatal(err)
	}
	if len(hist.Entries) != 0 {
		t.Errorf("expected empty history, got %d entries", len(hist.Entries))
	}
}

func TestEndEndpoint(t *testing.T) {
	mux := newTestMux(t)

	if rec := do(t, mux, http.MethodPost, "/browse/u-1/start", `{"genre":"drama"}`); rec.Code != http.StatusOK {
		t.Fatal("start failed")
	}

	rec := do(t, mux, http.MethodDelete, "/browse/u-1", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("end status=%d want 204", rec.Code)
	}

	// Session gone: navigation conflicts again.
	rec = do(t, mux, http.MethodPost, "/browse/u-1/next", "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("post-end next status=%d want 409", rec.Code)
	}

	// Ending twice is fine.
	if rec := do(t, mux, http.MethodDelete, "/browse/u-1", ""); rec.Code != http.StatusNoContent {
		t.Fatalf("repeat end status=%d", rec.Code)
	}
}
