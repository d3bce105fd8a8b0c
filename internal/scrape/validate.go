package scrape

import (
	"strings"

	"github.com/preston-bernstein/nba-scraper/internal/timeutil"
)

// OutputMode selects how a result is delivered.
type OutputMode string

const (
	ModeTable OutputMode = "table"
	ModeFile  OutputMode = "file"
)

// ParseOutputMode accepts table/pandas and file/csv in any case. Empty means table.
func ParseOutputMode(mode string) (OutputMode, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "table", "pandas":
		return ModeTable, nil
	case "file", "csv":
		return ModeFile, nil
	default:
		return "", &InvalidOutputModeError{Mode: mode}
	}
}

// ValidateDateRange checks both dates parse as YYYY-MM-DD and from <= to.
func ValidateDateRange(from, to string) error {
	start, err := timeutil.ParseDate(from)
	if err != nil {
		return &MalformedDateError{Value: from, Err: err}
	}
	end, err := timeutil.ParseDate(to)
	if err != nil {
		return &MalformedDateError{Value: to, Err: err}
	}
	if end.Before(start) {
		return &InvertedRangeError{From: from, To: to}
	}
	return nil
}
