package providers

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"time"

	"github.com/preston-bernstein/nba-scraper/internal/frame"
	"github.com/preston-bernstein/nba-scraper/internal/logging"
	"github.com/preston-bernstein/nba-scraper/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingFetcher wraps a GameFetcher with retry/backoff behavior.
type retryingFetcher struct {
	inner        GameFetcher
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	maxAttempts  int
	backoffFn    backoffFunc
	rng          *rand.Rand
}

// NewRetryingFetcher wraps the given fetcher with retries. If maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingFetcher(inner GameFetcher, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, backoff time.Duration) GameFetcher {
	return NewRetryingFetcherWithRNG(inner, logger, recorder, name, nil, maxAttempts, backoff)
}

// NewRetryingFetcherWithRNG is NewRetryingFetcher with a caller-supplied jitter source.
func NewRetryingFetcherWithRNG(inner GameFetcher, logger *slog.Logger, recorder *metrics.Recorder, name string, rng *rand.Rand, maxAttempts int, backoff time.Duration) GameFetcher {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	if name == "" {
		name = "provider"
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &retryingFetcher{
		inner:        inner,
		logger:       logger,
		metrics:      recorder,
		providerName: name,
		maxAttempts:  maxAttempts,
		rng:          rng,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingFetcher) FetchGame(ctx context.Context, gameID string) (*frame.Frame, error) {
	if r.inner == nil {
		return nil, ErrProviderUnavailable
	}
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		fragment, err := r.inner.FetchGame(ctx, gameID)
		if r.metrics != nil {
			r.metrics.RecordProviderAttempt(r.providerName, time.Since(start), err)
		}
		if err == nil {
			return fragment, nil
		}
		lastErr = err

		if rlErr, ok := AsRateLimitError(err); ok && r.metrics != nil {
			r.metrics.RecordRateLimit(r.providerName, rlErr.RetryAfter)
		}
		if !retryable(err) || attempt == r.maxAttempts {
			break
		}

		r.log(ctx, slog.LevelWarn, "provider fetch retry",
			slog.String(logging.FieldGameID, gameID),
			slog.Int(logging.FieldAttempt, attempt),
			slog.Int("max_attempts", r.maxAttempts),
			slog.Any(logging.FieldError, err),
		)

		delay := r.computeDelay(err, attempt)
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	r.log(ctx, slog.LevelWarn, "provider fetch failed",
		slog.String(logging.FieldGameID, gameID),
		slog.Any(logging.FieldError, lastErr),
	)
	return nil, lastErr
}

// computeDelay prefers the upstream Retry-After hint, else the backoff with
// jitter in [base/2, base].
func (r *retryingFetcher) computeDelay(err error, attempt int) time.Duration {
	if rlErr, ok := AsRateLimitError(err); ok && rlErr.RetryAfter > 0 {
		return rlErr.RetryAfter
	}
	base := r.backoffFn(attempt)
	if base <= 0 {
		return 0
	}
	half := base / 2
	return half + time.Duration(r.rng.Int63n(int64(half)+1))
}

func (r *retryingFetcher) log(ctx context.Context, level slog.Level, msg string, args ...any) {
	logWithProvider(ctx, logging.FromContext(ctx, r.logger), level, r.providerName, msg, args...)
}

// retryable reports whether another attempt could succeed.
func retryable(err error) bool {
	switch {
	case errors.Is(err, ErrGameNotFound),
		errors.Is(err, ErrProviderUnavailable),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Retryable()
	}
	return true
}
