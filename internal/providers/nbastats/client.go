// Package nbastats fetches play-by-play and schedule data from the public
// NBA and WNBA live-data CDN.
package nbastats

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/preston-bernstein/nba-scraper/internal/frame"
	"github.com/preston-bernstein/nba-scraper/internal/providers"
)

// Config controls how the client reaches the upstream CDN.
type Config struct {
	BaseURL    string
	League     string // "nba" or "wnba"
	Timeout    time.Duration
	UserAgent  string
	HTTPClient *http.Client
}

// Client implements providers.GameFetcher and providers.ScheduleLookup.
type Client struct {
	http   *resty.Client
	league string
	now    func() time.Time
}

var (
	_ providers.GameFetcher    = (*Client)(nil)
	_ providers.ScheduleLookup = (*Client)(nil)
)

// NewClient constructs a CDN client with the provided configuration.
func NewClient(cfg Config) *Client {
	league := resolveLeague(cfg.League)
	return &Client{
		http:   newRestyClient(cfg, league),
		league: league,
		now:    time.Now,
	}
}

// FetchGame retrieves the play-by-play for a canonical game id.
func (c *Client) FetchGame(ctx context.Context, gameID string) (*frame.Frame, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetPathParam("gameID", gameID).
		Get(playByPlayPath)
	if err != nil {
		return nil, fmt.Errorf("%s: fetch game %s: %w", providerName, gameID, err)
	}
	if err := c.checkResponse(res); err != nil {
		return nil, fmt.Errorf("game %s: %w", gameID, err)
	}

	var payload playByPlayResponse
	if err := json.Unmarshal(res.Body(), &payload); err != nil {
		return nil, fmt.Errorf("%s: decode game %s: %w", providerName, gameID, err)
	}
	return mapPlayByPlay(gameID, c.league, payload)
}

// GameIDsByDate lists regular-season game ids dated within [from, to].
func (c *Client) GameIDsByDate(ctx context.Context, from, to string) ([]string, error) {
	res, err := c.http.R().SetContext(ctx).Get(schedulePath)
	if err != nil {
		return nil, fmt.Errorf("%s: fetch schedule: %w", providerName, err)
	}
	if err := c.checkResponse(res); err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}

	var payload scheduleResponse
	if err := json.Unmarshal(res.Body(), &payload); err != nil {
		return nil, fmt.Errorf("%s: decode schedule: %w", providerName, err)
	}
	return scheduleIDs(payload, c.league, from, to)
}

func (c *Client) checkResponse(res *resty.Response) error {
	switch code := res.StatusCode(); {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound, code == http.StatusForbidden:
		// the CDN answers 403 for objects that do not exist.
		return providers.ErrGameNotFound
	case code == http.StatusTooManyRequests:
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: code,
			RetryAfter: parseRetryAfter(res.Header().Get("Retry-After"), c.now()),
			Remaining:  res.Header().Get("X-RateLimit-Remaining"),
			Message:    "nbastats rate limited",
		}
	default:
		return &providers.StatusError{
			Provider:   providerName,
			StatusCode: code,
			URL:        res.Request.URL,
		}
	}
}
