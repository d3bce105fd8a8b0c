package scrape

import (
	"fmt"
	"strings"
)

const (
	// sentinelGameID never resolves upstream and is always skipped.
	sentinelGameID = "21201214"

	seasonBase   = 20000000
	seasonStride = 100000
	firstGame    = 1
	// the upper bound is exclusive, so game 1231 is never requested.
	lastGameExcl = 1231

	minSeason = 2001
	maxSeason = 2100
)

// SeasonBounds returns the half-open id range [lower, upper) for a season:
// the digit 2, the two-digit offset season-2001, then a five-digit game number.
func SeasonBounds(season int) (lower, upper int, err error) {
	if season < minSeason || season > maxSeason {
		return 0, 0, &InvalidSeasonError{Season: season}
	}
	prefix := seasonBase + (season-minSeason)*seasonStride
	return prefix + firstGame, prefix + lastGameExcl, nil
}

// SeasonGameIDs enumerates every id in the season's range, ascending.
func SeasonGameIDs(season int) ([]int, error) {
	lower, upper, err := SeasonBounds(season)
	if err != nil {
		return nil, err
	}
	ids := make([]int, 0, upper-lower)
	for id := lower; id < upper; id++ {
		ids = append(ids, id)
	}
	return ids, nil
}

type canonicalKey struct {
	league League
	source Source
}

var canonicalPrefix = map[canonicalKey]string{
	{LeagueNBA, SourceGameList}:   "00",
	{LeagueNBA, SourceSeason}:     "00",
	{LeagueNBA, SourceDateRange}:  "",
	{LeagueWNBA, SourceGameList}:  "0",
	{LeagueWNBA, SourceSeason}:    "0",
	{LeagueWNBA, SourceDateRange}: "0",
}

// Canonicalize turns a raw id into the fixed-width form the provider expects.
func Canonicalize(league League, source Source, raw string) (string, error) {
	prefix, ok := canonicalPrefix[canonicalKey{league, source}]
	if !ok {
		return "", fmt.Errorf("scrape: no canonical form for %s ids from %s", league, source)
	}
	return prefix + raw, nil
}

// isSentinel matches the unavailable primary-league game in raw or canonical form.
func isSentinel(t Target) bool {
	if t.League != LeagueNBA {
		return false
	}
	return t.Raw == sentinelGameID || strings.TrimLeft(t.Canonical, "0") == sentinelGameID
}

// anyFetchable reports whether any target would reach a fetcher.
func anyFetchable(targets []Target) bool {
	for _, t := range targets {
		if !isSentinel(t) {
			return true
		}
	}
	return false
}
