package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/domain/entity"
	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/observability/metrics"
	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/resilience/circuitbreaker"
	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/resilience/retry"
)

// maxResponseBody caps catalog response bodies; one page of movie records is
// far below this.
const maxResponseBody = 4 << 20 // 4 MiB

// SearchResult is one page of catalog search results.
type SearchResult struct {
	Items      []entity.MovieSummary
	TotalPages int
}

// Client issues genre-filtered, paged queries and detail fetches against the
// catalog API. Search and GetDetail only return an error for context
// cancellation; every catalog-side failure (non-2xx, malformed body,
// exhausted retries, open breaker) degrades to an empty result.
type Client struct {
	config      Config
	httpClient  *http.Client
	rateLimiter *RateLimiter
	breaker     *circuitbreaker.CircuitBreaker
	retryCfg    retry.Config
}

// NewClient creates a catalog client.
//
// The client is initialized with:
//   - HTTP client with the configured timeout
//   - Rate limiter at 5 req/s with burst of 10 (Kinopoisk free-tier quota)
//   - Circuit breaker and retry policy tuned for the catalog API
func NewClient(config Config) *Client {
	return &Client{
		config:      config,
		httpClient:  &http.Client{Timeout: config.Timeout},
		rateLimiter: NewRateLimiter(5, 10),
		breaker:     circuitbreaker.New(circuitbreaker.CatalogAPIConfig()),
		retryCfg:    retry.CatalogAPIConfig(),
	}
}

// Search fetches one page of movies for a genre. The returned result is
// never nil on a nil error; an empty Items slice is the uniform "nothing
// found" signal regardless of cause.
func (c *Client) Search(ctx context.Context, genre string, page int) (*SearchResult, error) {
	start := time.Now()

	params := url.Values{}
	params.Set("genres.name", genre)
	params.Set("rating.kp", c.config.Filters.ratingParam())
	params.Set("type", "movie")
	params.Set("movieLength", c.config.Filters.runtimeParam())
	if c.config.Filters.VotesMin > 0 {
		params.Set("votes.kp", fmt.Sprintf("%d-9999999", c.config.Filters.VotesMin))
	}
	params.Set("limit", strconv.Itoa(c.config.PageSize))
	params.Set("page", strconv.Itoa(page))

	body, err := c.doGet(ctx, c.config.BaseURL+"?"+params.Encode())
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		slog.Warn("catalog search failed, returning empty page",
			slog.String("genre", genre),
			slog.Int("page", page),
			slog.Any("error", err))
		metrics.RecordCatalogSearch("error", time.Since(start))
		return &SearchResult{Items: []entity.MovieSummary{}}, nil
	}

	var response searchResponse
	if err := json.Unmarshal(body, &response); err != nil {
		slog.Warn("catalog search returned malformed body",
			slog.String("genre", genre),
			slog.Int("page", page),
			slog.Any("error", err))
		metrics.RecordCatalogSearch("error", time.Since(start))
		return &SearchResult{Items: []entity.MovieSummary{}}, nil
	}

	items := make([]entity.MovieSummary, 0, len(response.Docs))
	for _, doc := range response.Docs {
		items = append(items, doc.toSummary())
	}

	slog.Debug("catalog search succeeded",
		slog.String("genre", genre),
		slog.Int("page", page),
		slog.Int("items", len(items)))

	result := "ok"
	if len(items) == 0 {
		result = "empty"
	}
	metrics.RecordCatalogSearch(result, time.Since(start))

	return &SearchResult{Items: items, TotalPages: response.Pages}, nil
}

// GetDetail fetches the full record for one movie.
// Returns (nil, nil) when the catalog has no such movie or the fetch failed.
func (c *Client) GetDetail(ctx context.Context, movieID string) (*entity.MovieDetail, error) {
	start := time.Now()

	body, err := c.doGet(ctx, c.config.BaseURL+"/"+url.PathEscape(movieID))
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		slog.Warn("catalog detail fetch failed",
			slog.String("movie_id", movieID),
			slog.Any("error", err))
		metrics.RecordCatalogDetail("error", time.Since(start))
		return nil, nil
	}

	var doc detailDoc
	if err := json.Unmarshal(body, &doc); err != nil {
		slog.Warn("catalog detail returned malformed body",
			slog.String("movie_id", movieID),
			slog.Any("error", err))
		metrics.RecordCatalogDetail("error", time.Since(start))
		return nil, nil
	}
	if doc.ID.String() == "" {
		metrics.RecordCatalogDetail("absent", time.Since(start))
		return nil, nil
	}

	metrics.RecordCatalogDetail("ok", time.Since(start))
	return doc.toDetail(), nil
}

// doGet performs a rate-limited GET through the circuit breaker with retry.
// Non-2xx statuses become retry.HTTPError so 5xx and 429 retry while 4xx
// fail fast.
func (c *Client) doGet(ctx context.Context, requestURL string) ([]byte, error) {
	if err := c.rateLimiter.Allow(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	start := time.Now()
	result, err := c.breaker.Execute(func() (interface{}, error) {
		var body []byte
		retryErr := retry.WithBackoff(ctx, c.retryCfg, func() error {
			var attemptErr error
			body, attemptErr = c.attempt(ctx, requestURL)
			return attemptErr
		})
		return body, retryErr
	})
	slog.Debug("catalog request finished",
		slog.String("url", requestURL),
		slog.Duration("elapsed", time.Since(start)),
		slog.Bool("ok", err == nil))
	if err != nil {
		return nil, err
	}
	return result.([]byte), nil
}

func (c *Client) attempt(ctx context.Context, requestURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.config.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &retry.HTTPError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	return body, nil
}

// Wire types for the v1.4 API. Movie ids are numeric upstream; json.Number
// keeps them string-typed for the domain.

type searchResponse struct {
	Docs  []movieDoc `json:"docs"`
	Pages int        `json:"pages"`
}

type movieDoc struct {
	ID     json.Number `json:"id"`
	Name   string      `json:"name"`
	Year   int         `json:"year"`
	Rating *ratingDoc  `json:"rating"`
	Poster *posterDoc  `json:"poster"`
}

type ratingDoc struct {
	KP *float64 `json:"kp"`
}

type posterDoc struct {
	URL *string `json:"url"`
}

type namedDoc struct {
	Name string `json:"name"`
}

type watchabilityDoc struct {
	Items []watchItemDoc `json:"items"`
}

type watchItemDoc struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type detailDoc struct {
	movieDoc
	Description      string           `json:"description"`
	ShortDescription string           `json:"shortDescription"`
	MovieLength      int              `json:"movieLength"`
	Genres           []namedDoc       `json:"genres"`
	Watchability     *watchabilityDoc `json:"watchability"`
}

func (d movieDoc) toSummary() entity.MovieSummary {
	summary := entity.MovieSummary{
		ID:   d.ID.String(),
		Name: d.Name,
		Year: d.Year,
	}
	if d.Rating != nil && d.Rating.KP != nil {
		value := *d.Rating.KP
		summary.Rating = &value
	}
	if d.Poster != nil && d.Poster.URL != nil && *d.Poster.URL != "" {
		value := *d.Poster.URL
		summary.PosterURL = &value
	}
	return summary
}

func (d detailDoc) toDetail() *entity.MovieDetail {
	description := d.Description
	if description == "" {
		description = d.ShortDescription
	}

	detail := &entity.MovieDetail{
		MovieSummary: d.toSummary(),
		Description:  description,
		Runtime:      d.MovieLength,
	}
	for _, genre := range d.Genres {
		if genre.Name != "" {
			detail.Genres = append(detail.Genres, genre.Name)
		}
	}
	if d.Watchability != nil {
		for _, item := range d.Watchability.Items {
			if item.Name == "" || item.URL == "" {
				continue
			}
			detail.WatchLinks = append(detail.WatchLinks, entity.WatchLink{Name: item.Name, URL: item.URL})
		}
	}
	return detail
}
