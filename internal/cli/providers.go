package cli

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-scraper/internal/config"
	"github.com/preston-bernstein/nba-scraper/internal/metrics"
	"github.com/preston-bernstein/nba-scraper/internal/providers"
	"github.com/preston-bernstein/nba-scraper/internal/providers/fixture"
	"github.com/preston-bernstein/nba-scraper/internal/providers/nbastats"
)

const (
	providerNBAStats = "nbastats"
	providerFixture  = "fixture"
)

// upstream is the set of collaborators one provider contributes.
type upstream struct {
	nba      providers.GameFetcher
	wnba     providers.GameFetcher
	schedule providers.ScheduleLookup
}

// providerFactory assembles fetchers with the shared wrappers (pacing + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, recorder *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: recorder}
}

func (f providerFactory) build(cfg config.Config) (upstream, error) {
	name := strings.ToLower(strings.TrimSpace(cfg.Provider))
	var nbaBase, wnbaBase interface {
		providers.GameFetcher
		providers.ScheduleLookup
	}
	switch name {
	case providerNBAStats, "":
		name = providerNBAStats
		nbaBase = nbastats.NewClient(nbastats.Config{
			BaseURL:   cfg.Upstream.NBABaseURL,
			League:    nbastats.LeagueNBA,
			Timeout:   cfg.Upstream.Timeout,
			UserAgent: cfg.Upstream.UserAgent,
		})
		wnbaBase = nbastats.NewClient(nbastats.Config{
			BaseURL:   cfg.Upstream.WNBABaseURL,
			League:    nbastats.LeagueWNBA,
			Timeout:   cfg.Upstream.Timeout,
			UserAgent: cfg.Upstream.UserAgent,
		})
	case providerFixture:
		nbaBase = fixture.New(nbastats.LeagueNBA)
		wnbaBase = fixture.New(nbastats.LeagueWNBA)
	default:
		return upstream{}, fmt.Errorf("unknown provider %q: want %s or %s", cfg.Provider, providerNBAStats, providerFixture)
	}

	return upstream{
		nba:      f.wrap(nbaBase, name+"-nba", cfg.Scrape),
		wnba:     f.wrap(wnbaBase, name+"-wnba", cfg.Scrape),
		schedule: nbaBase,
	}, nil
}

// wrap paces every attempt, retries included, through one shared limiter.
func (f providerFactory) wrap(base providers.GameFetcher, name string, sc config.ScrapeConfig) providers.GameFetcher {
	paced := providers.NewPacedFetcher(base, time.Duration(sc.Pace), f.logger)
	return providers.NewRetryingFetcher(paced, f.logger, f.metrics, name, sc.Retries, time.Duration(sc.Backoff))
}
