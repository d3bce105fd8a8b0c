package providers

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/preston-bernstein/nba-scraper/internal/frame"
	"github.com/preston-bernstein/nba-scraper/internal/logging"
)

// pacedFetcher wraps a GameFetcher and enforces a minimum interval between calls.
// The limiter is shared, so concurrent callers are paced together.
type pacedFetcher struct {
	next     GameFetcher
	interval time.Duration
	limiter  *rate.Limiter
	logger   *slog.Logger
}

// NewPacedFetcher returns a GameFetcher that starts at most one fetch per interval.
// The first call is not delayed. A non-positive interval disables pacing and
// returns next unchanged.
func NewPacedFetcher(next GameFetcher, interval time.Duration, logger *slog.Logger) GameFetcher {
	if interval <= 0 {
		return next
	}
	return &pacedFetcher{
		next:     next,
		interval: interval,
		limiter:  rate.NewLimiter(rate.Every(interval), 1),
		logger:   logger,
	}
}

func (p *pacedFetcher) FetchGame(ctx context.Context, gameID string) (*frame.Frame, error) {
	if p == nil || p.next == nil {
		if p != nil {
			logWithProvider(ctx, p.logger, slog.LevelWarn, "paced", "provider unavailable")
		}
		return nil, ErrProviderUnavailable
	}
	if err := p.limiter.Wait(ctx); err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, "paced", "paced fetch canceled",
			slog.String(logging.FieldGameID, gameID))
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, err
	}
	logWithProvider(ctx, p.logger, slog.LevelDebug, "paced", "paced provider fetch",
		slog.String(logging.FieldGameID, gameID))
	return p.next.FetchGame(ctx, gameID)
}
