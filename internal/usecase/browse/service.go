package browse

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/common/pagination"
	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/domain/entity"
	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/repository"
)

// CatalogPage is one page of catalog results as consumed by the engine.
type CatalogPage struct {
	Items      []entity.MovieSummary
	TotalPages int
}

// Catalog is the paged movie source the engine navigates. Implementations
// must treat every upstream failure as an empty page (never an error); the
// engine distinguishes "nothing found" from "no more results" purely by
// context.
type Catalog interface {
	Search(ctx context.Context, genre string, page int) (CatalogPage, error)
	GetDetail(ctx context.Context, movieID string) (*entity.MovieDetail, error)
}

// HistoryRecorder records a viewed movie. Detail views are the only writer.
type HistoryRecorder interface {
	RecordView(ctx context.Context, userID string, detail *entity.MovieDetail) error
}

// BlurbProvider produces an optional one-paragraph pitch for a detail card.
type BlurbProvider interface {
	Blurb(ctx context.Context, detail *entity.MovieDetail) (string, error)
}

// PageResult is one renderable page of movies. Display ordinals run
// FirstOrdinal..LastOrdinal and continue across pages.
type PageResult struct {
	Items        []entity.MovieSummary
	Page         int
	StartIndex   int
	FirstOrdinal int
	LastOrdinal  int
	TotalPages   int
}

// DetailResult is one renderable movie detail card.
type DetailResult struct {
	Detail *entity.MovieDetail
	// Blurb is an optional generated pitch; empty when the provider is
	// disabled or failed.
	Blurb string
}

// Service is the pagination engine. Each navigation intent is one atomic
// read-modify-write of the user's session; a fetch that yields no items
// never corrupts stored state.
type Service struct {
	Sessions repository.SessionRepository
	Catalog  Catalog
	History  HistoryRecorder
	Blurbs   BlurbProvider // optional
	PageSize int

	// now is swapped in tests for deterministic session timestamps.
	now func() time.Time
}

// NewService creates a pagination engine with the given collaborators.
func NewService(sessions repository.SessionRepository, catalog Catalog, history HistoryRecorder, pageSize int) *Service {
	return &Service{
		Sessions: sessions,
		Catalog:  catalog,
		History:  history,
		PageSize: pageSize,
		now:      time.Now,
	}
}

// StartBrowse begins a new browse for a genre: page 1, display offset 0.
// On an empty first page it returns ErrNothingFound and leaves any existing
// session untouched; an empty catalog answer must never destroy working
// state. On success the previous session is replaced wholesale.
func (s *Service) StartBrowse(ctx context.Context, userID, genre string) (*PageResult, error) {
	genre = strings.TrimSpace(genre)
	if genre == "" {
		return nil, ErrInvalidGenre
	}

	cursor := pagination.First()
	page, err := s.Catalog.Search(ctx, genre, cursor.Page)
	if err != nil {
		return nil, fmt.Errorf("start browse: %w", err)
	}
	if len(page.Items) == 0 {
		recordOperation("start", outcomeEmpty)
		return nil, ErrNothingFound
	}

	if err := s.saveSession(ctx, userID, genre, cursor, len(page.Items)); err != nil {
		return nil, fmt.Errorf("start browse: %w", err)
	}

	recordOperation("start", outcomeOK)
	return s.pageResult(cursor, page), nil
}

// Advance moves one page forward. When the next page is empty it returns
// ErrNoMoreResults and does not mutate the session: navigating past the end
// is a no-op, not a state change.
func (s *Service) Advance(ctx context.Context, userID string) (*PageResult, error) {
	session, err := s.requireSession(ctx, userID)
	if err != nil {
		recordOperation("advance", outcomeNoSession)
		return nil, err
	}

	next := s.cursorOf(session).Next(s.PageSize)
	page, err := s.Catalog.Search(ctx, session.Genre, next.Page)
	if err != nil {
		return nil, fmt.Errorf("advance: %w", err)
	}
	if len(page.Items) == 0 {
		recordOperation("advance", outcomeEmpty)
		return nil, ErrNoMoreResults
	}

	if err := s.saveSession(ctx, userID, session.Genre, next, len(page.Items)); err != nil {
		return nil, fmt.Errorf("advance: %w", err)
	}

	recordOperation("advance", outcomeOK)
	return s.pageResult(next, page), nil
}

// Retreat moves one page back. At page 1 (or with a would-be negative
// offset) it returns ErrAtFirstPage without mutation. The session moves
// back even when the refetch comes up empty, matching the forward-history
// behavior users expect from a "back" button.
func (s *Service) Retreat(ctx context.Context, userID string) (*PageResult, error) {
	session, err := s.requireSession(ctx, userID)
	if err != nil {
		recordOperation("retreat", outcomeNoSession)
		return nil, err
	}

	prev, ok := s.cursorOf(session).Prev(s.PageSize)
	if !ok {
		recordOperation("retreat", outcomeBoundary)
		return nil, ErrAtFirstPage
	}

	page, err := s.Catalog.Search(ctx, session.Genre, prev.Page)
	if err != nil {
		return nil, fmt.Errorf("retreat: %w", err)
	}

	if err := s.saveSession(ctx, userID, session.Genre, prev, len(page.Items)); err != nil {
		return nil, fmt.Errorf("retreat: %w", err)
	}

	recordOperation("retreat", outcomeOK)
	return s.pageResult(prev, page), nil
}

// Resume re-fetches the current page without mutating the session, used to
// return to the list after a detail view. The catalog may have drifted since
// the page was first shown; numbering still derives from the stored offset.
func (s *Service) Resume(ctx context.Context, userID string) (*PageResult, error) {
	session, err := s.requireSession(ctx, userID)
	if err != nil {
		recordOperation("resume", outcomeNoSession)
		return nil, err
	}

	cursor := s.cursorOf(session)
	page, err := s.Catalog.Search(ctx, session.Genre, cursor.Page)
	if err != nil {
		return nil, fmt.Errorf("resume: %w", err)
	}

	recordOperation("resume", outcomeOK)
	return s.pageResult(cursor, page), nil
}

// Detail fetches one movie's full record and records the view in the user's
// history. The session is never mutated. A failing blurb provider or history
// write degrades the card, not the view.
func (s *Service) Detail(ctx context.Context, userID, movieID string) (*DetailResult, error) {
	detail, err := s.Catalog.GetDetail(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("detail: %w", err)
	}
	if detail == nil {
		recordOperation("detail", outcomeEmpty)
		return nil, ErrDetailNotFound
	}

	if s.History != nil {
		if err := s.History.RecordView(ctx, userID, detail); err != nil {
			slog.Warn("history record failed",
				slog.String("user_id", userID),
				slog.String("movie_id", movieID),
				slog.Any("error", err))
		}
	}

	result := &DetailResult{Detail: detail}
	if s.Blurbs != nil {
		blurb, err := s.Blurbs.Blurb(ctx, detail)
		if err != nil {
			slog.Warn("blurb generation failed",
				slog.String("movie_id", movieID),
				slog.Any("error", err))
		} else {
			result.Blurb = blurb
		}
	}

	recordOperation("detail", outcomeOK)
	return result, nil
}

// EndBrowse discards the user's session. Absent sessions are fine.
func (s *Service) EndBrowse(ctx context.Context, userID string) error {
	if err := s.Sessions.Clear(ctx, userID); err != nil {
		return fmt.Errorf("end browse: %w", err)
	}
	return nil
}

func (s *Service) requireSession(ctx context.Context, userID string) (*entity.Session, error) {
	session, err := s.Sessions.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if session == nil {
		return nil, ErrNoSession
	}
	return session, nil
}

func (s *Service) cursorOf(session *entity.Session) pagination.Cursor {
	return pagination.Cursor{Page: session.Page, StartIndex: session.StartIndex}
}

func (s *Service) saveSession(ctx context.Context, userID, genre string, cursor pagination.Cursor, total int) error {
	return s.Sessions.Set(ctx, userID, &entity.Session{
		Genre:       genre,
		Page:        cursor.Page,
		StartIndex:  cursor.StartIndex,
		TotalMovies: total,
		UpdatedAt:   s.clock()(),
	})
}

func (s *Service) clock() func() time.Time {
	if s.now == nil {
		return time.Now
	}
	return s.now
}

func (s *Service) pageResult(cursor pagination.Cursor, page CatalogPage) *PageResult {
	first, last := cursor.DisplayRange(len(page.Items))
	return &PageResult{
		Items:        page.Items,
		Page:         cursor.Page,
		StartIndex:   cursor.StartIndex,
		FirstOrdinal: first,
		LastOrdinal:  last,
		TotalPages:   page.TotalPages,
	}
}
