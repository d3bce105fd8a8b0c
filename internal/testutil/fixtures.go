package testutil

import (
	"strconv"

	"github.com/preston-bernstein/nba-scraper/internal/frame"
)

// PlayColumns is the column set used by sample fragments.
var PlayColumns = []string{"game_id", "action_number", "description"}

// SampleFragment returns a fragment with rows plays for the given game id.
func SampleFragment(gameID string, rows int) *frame.Frame {
	f := frame.New(PlayColumns...)
	for i := 1; i <= rows; i++ {
		_ = f.Append(gameID, strconv.Itoa(i), "play "+strconv.Itoa(i))
	}
	return f
}

// SampleFragments returns one single-row fragment per id, keyed by id.
func SampleFragments(ids ...string) map[string]*frame.Frame {
	out := make(map[string]*frame.Frame, len(ids))
	for _, id := range ids {
		out[id] = SampleFragment(id, 1)
	}
	return out
}
