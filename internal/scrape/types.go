package scrape

import (
	"fmt"

	"github.com/preston-bernstein/nba-scraper/internal/frame"
)

// League selects which competition a game belongs to.
type League int

const (
	LeagueNBA League = iota + 1
	LeagueWNBA
)

func (l League) String() string {
	switch l {
	case LeagueNBA:
		return "nba"
	case LeagueWNBA:
		return "wnba"
	default:
		return fmt.Sprintf("league(%d)", int(l))
	}
}

// Source records how an identifier entered the identifier sequence.
type Source int

const (
	SourceGameList Source = iota + 1
	SourceSeason
	SourceDateRange
)

func (s Source) String() string {
	switch s {
	case SourceGameList:
		return "games"
	case SourceSeason:
		return "season"
	case SourceDateRange:
		return "dates"
	default:
		return fmt.Sprintf("source(%d)", int(s))
	}
}

// Target is one element of the identifier sequence.
type Target struct {
	Raw       string
	Canonical string
	League    League
	Source    Source
	Index     int
}

// DateRange is an inclusive pair of YYYY-MM-DD dates.
type DateRange struct {
	From string
	To   string
}

// Options are the per-request settings.
type Options struct {
	Mode    string // "table" (alias "pandas") or "file" (alias "csv"); empty means table
	DataDir string // file mode destination; empty uses the scraper default
}

// Failure is a game that could not be fetched.
type Failure struct {
	Target Target
	Err    error
}

// Summary counts the outcome of every target in a request.
type Summary struct {
	Attempted int
	Succeeded int
	Failed    int
	Skipped   int
}

// Result is the outcome of one scrape request.
//
// Table is set only in table mode and Path only in file mode. NoData is set
// when nothing was collected; it is not an error and nothing is written.
type Result struct {
	Mode     OutputMode
	Source   Source
	Table    *frame.Frame
	Path     string
	NoData   bool
	Failures []Failure
	Summary  Summary
}
