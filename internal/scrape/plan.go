package scrape

import (
	"context"
	"fmt"
	"strconv"

	"github.com/preston-bernstein/nba-scraper/internal/providers"
)

func newTargets(league League, source Source, raws []string) ([]Target, error) {
	targets := make([]Target, 0, len(raws))
	for i, raw := range raws {
		canonical, err := Canonicalize(league, source, raw)
		if err != nil {
			return nil, err
		}
		targets = append(targets, Target{
			Raw:       raw,
			Canonical: canonical,
			League:    league,
			Source:    source,
			Index:     i,
		})
	}
	return targets, nil
}

// planGameList keeps caller order, without dedupe or sorting.
func planGameList(league League, ids []int) ([]Target, error) {
	return planIDs(league, SourceGameList, ids)
}

func planSeason(season int) ([]Target, error) {
	ids, err := SeasonGameIDs(season)
	if err != nil {
		return nil, err
	}
	return planIDs(LeagueNBA, SourceSeason, ids)
}

func planIDs(league League, source Source, ids []int) ([]Target, error) {
	raws := make([]string, len(ids))
	for i, id := range ids {
		raws[i] = strconv.Itoa(id)
	}
	return newTargets(league, source, raws)
}

func planDateRange(ctx context.Context, lookup providers.ScheduleLookup, r DateRange) ([]Target, error) {
	if lookup == nil {
		return nil, ErrNoSchedule
	}
	ids, err := lookup.GameIDsByDate(ctx, r.From, r.To)
	if err != nil {
		return nil, fmt.Errorf("lookup games %s..%s: %w", r.From, r.To, err)
	}
	return newTargets(LeagueNBA, SourceDateRange, ids)
}
