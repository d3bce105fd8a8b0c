package nbastats

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-scraper/internal/frame"
	"github.com/preston-bernstein/nba-scraper/internal/providers"
	"github.com/preston-bernstein/nba-scraper/internal/timeutil"
)

// Columns is the fragment layout produced for every game.
var Columns = []string{
	"game_id", "league", "action_number", "period", "clock",
	"team_id", "team_tricode", "person_id", "player_name",
	"action_type", "sub_type", "description", "shot_result",
	"score_home", "score_away",
}

func mapPlayByPlay(gameID, league string, payload playByPlayResponse) (*frame.Frame, error) {
	if payload.Game.GameID != "" {
		gameID = payload.Game.GameID
	}
	out := frame.New(Columns...)
	for _, a := range payload.Game.Actions {
		err := out.Append(
			gameID,
			league,
			strconv.Itoa(a.ActionNumber),
			strconv.Itoa(a.Period),
			a.Clock,
			formatID(a.TeamID),
			a.TeamTricode,
			formatID(a.PersonID),
			a.PlayerName,
			a.ActionType,
			a.SubType,
			a.Description,
			a.ShotResult,
			a.ScoreHome,
			a.ScoreAway,
		)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func formatID(id int64) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}

type datedID struct {
	date string
	id   string
}

// scheduleIDs returns the regular-season game ids dated within [from, to],
// ordered by date then id.
func scheduleIDs(payload scheduleResponse, league, from, to string) ([]string, error) {
	if err := checkScheduleCovers(payload.LeagueSchedule.SeasonYear, league, from, to); err != nil {
		return nil, err
	}
	prefix := regularSeasonPrefix[league]
	var matched []datedID
	for _, d := range payload.LeagueSchedule.GameDates {
		day, err := time.Parse(scheduleDateLayout, d.GameDate)
		if err != nil {
			return nil, fmt.Errorf("%s: schedule date %q: %w", providerName, d.GameDate, err)
		}
		date := timeutil.FormatDate(day)
		if date < from || date > to {
			continue
		}
		for _, g := range d.Games {
			if !strings.HasPrefix(g.GameID, prefix) {
				continue
			}
			matched = append(matched, datedID{date: date, id: g.GameID})
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].date != matched[j].date {
			return matched[i].date < matched[j].date
		}
		return matched[i].id < matched[j].id
	})

	ids := make([]string, 0, len(matched))
	for _, m := range matched {
		ids = append(ids, m.id)
	}
	return ids, nil
}

// checkScheduleCovers rejects ranges that reach outside the season the
// schedule was published for. NBA seasons are labelled "2017-18" and run
// October to September; WNBA seasons are labelled by calendar year. An empty
// label skips the check.
func checkScheduleCovers(seasonYear, league, from, to string) error {
	if seasonYear == "" {
		return nil
	}
	start, err := strconv.Atoi(strings.SplitN(seasonYear, "-", 2)[0])
	if err != nil {
		return fmt.Errorf("%s: schedule season %q: %w", providerName, seasonYear, err)
	}
	for _, v := range []string{from, to} {
		d, err := timeutil.ParseDate(v)
		if err != nil {
			return fmt.Errorf("%s: date %q: %w", providerName, v, err)
		}
		season := timeutil.SeasonStartYear(d)
		if league == LeagueWNBA {
			season = d.Year()
		}
		if season != start {
			return fmt.Errorf("%s: %s..%s not in %s schedule %s: %w",
				providerName, from, to, league, seasonYear, providers.ErrDateOutsideSchedule)
		}
	}
	return nil
}
