package providers

import (
	"context"

	"github.com/preston-bernstein/nba-scraper/internal/frame"
)

// GameFetcher retrieves the play-by-play fragment for one game.
// The id is the canonical provider form (e.g. "0021700001").
type GameFetcher interface {
	FetchGame(ctx context.Context, gameID string) (*frame.Frame, error)
}

// ScheduleLookup lists the game ids played between two YYYY-MM-DD dates,
// inclusive. Returned ids are already in canonical provider form.
type ScheduleLookup interface {
	GameIDsByDate(ctx context.Context, from, to string) ([]string, error)
}

// FetcherFunc adapts a function to GameFetcher.
type FetcherFunc func(ctx context.Context, gameID string) (*frame.Frame, error)

// FetchGame calls f.
func (f FetcherFunc) FetchGame(ctx context.Context, gameID string) (*frame.Frame, error) {
	return f(ctx, gameID)
}
