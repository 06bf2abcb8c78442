package catalog

import (
	"context"

	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/domain/entity"
	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/usecase/browse"
)

// PageSource adapts Client to the paged catalog interface the browse engine
// consumes. It carries the client's failure contract through unchanged: an
// empty page, never an error, for every catalog-side failure.
type PageSource struct {
	Client *Client
}

// NewPageSource wraps a catalog client for the browse engine.
func NewPageSource(client *Client) *PageSource {
	return &PageSource{Client: client}
}

func (p *PageSource) Search(ctx context.Context, genre string, page int) (browse.CatalogPage, error) {
	result, err := p.Client.Search(ctx, genre, page)
	if err != nil {
		return browse.CatalogPage{}, err
	}
	return browse.CatalogPage{Items: result.Items, TotalPages: result.TotalPages}, nil
}

func (p *PageSource) GetDetail(ctx context.Context, movieID string) (*entity.MovieDetail, error) {
	return p.Client.GetDetail(ctx, movieID)
}
