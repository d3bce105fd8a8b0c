package scrape

import (
	"context"

	"github.com/preston-bernstein/nba-scraper/internal/frame"
	"github.com/preston-bernstein/nba-scraper/internal/providers"
)

// fetchAdapter routes a target to its league's fetcher. Errors propagate.
type fetchAdapter struct {
	fetchers map[League]providers.GameFetcher
}

func (a fetchAdapter) fetch(ctx context.Context, t Target) (*frame.Frame, error) {
	fetcher := a.fetchers[t.League]
	if fetcher == nil {
		return nil, ErrNoFetcher
	}
	return fetcher.FetchGame(ctx, t.Canonical)
}
