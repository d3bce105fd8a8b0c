package nbastats

import "time"

const (
	providerName = "nbastats"

	defaultNBABaseURL  = "https://cdn.nba.com"
	defaultWNBABaseURL = "https://cdn.wnba.com"
	defaultHTTPTimeout = 20 * time.Second
	defaultUserAgent   = "nba-scraper/1.0"

	playByPlayPath = "/static/json/liveData/playbyplay/playbyplay_{gameID}.json"
	schedulePath   = "/static/json/staticData/scheduleLeagueV2.json"

	scheduleDateLayout = "01/02/2006 15:04:05"
)

// League codes accepted by Config.League.
const (
	LeagueNBA  = "nba"
	LeagueWNBA = "wnba"
)

// regular-season id prefixes per league.
var regularSeasonPrefix = map[string]string{
	LeagueNBA:  "002",
	LeagueWNBA: "102",
}
