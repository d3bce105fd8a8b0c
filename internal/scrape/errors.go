package scrape

import (
	"errors"
	"fmt"
)

// ErrNoFetcher is returned when no fetcher is registered for a league.
var ErrNoFetcher = errors.New("scrape: no fetcher for league")

// ErrNoSchedule is returned by date-range requests without a schedule lookup.
var ErrNoSchedule = errors.New("scrape: no schedule lookup configured")

// InvalidOutputModeError rejects an unknown output mode before any fetch.
type InvalidOutputModeError struct {
	Mode string
}

func (e *InvalidOutputModeError) Error() string {
	return fmt.Sprintf("invalid output mode %q: want table or file", e.Mode)
}

// MalformedDateError reports a date that is not YYYY-MM-DD.
type MalformedDateError struct {
	Value string
	Err   error
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("malformed date %q: want YYYY-MM-DD", e.Value)
}

func (e *MalformedDateError) Unwrap() error { return e.Err }

// InvertedRangeError reports a range whose end precedes its start.
type InvertedRangeError struct {
	From string
	To   string
}

func (e *InvertedRangeError) Error() string {
	return fmt.Sprintf("inverted date range: to %s is before from %s", e.To, e.From)
}

// InvalidSeasonError reports a season outside the two-digit numbering scheme.
type InvalidSeasonError struct {
	Season int
}

func (e *InvalidSeasonError) Error() string {
	return fmt.Sprintf("invalid season %d: want %d..%d", e.Season, minSeason, maxSeason)
}

// FetchError wraps a collaborator failure with the game it belongs to.
type FetchError struct {
	GameID string
	League League
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s game %s: %v", e.League, e.GameID, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// AsInvalidOutputMode attempts to unwrap an error into an InvalidOutputModeError.
func AsInvalidOutputMode(err error) (*InvalidOutputModeError, bool) {
	var target *InvalidOutputModeError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// AsMalformedDate attempts to unwrap an error into a MalformedDateError.
func AsMalformedDate(err error) (*MalformedDateError, bool) {
	var target *MalformedDateError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// AsInvertedRange attempts to unwrap an error into an InvertedRangeError.
func AsInvertedRange(err error) (*InvertedRangeError, bool) {
	var target *InvertedRangeError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// IsValidation reports whether err rejected a request before any fetch.
func IsValidation(err error) bool {
	var season *InvalidSeasonError
	if errors.As(err, &season) {
		return true
	}
	if _, ok := AsInvalidOutputMode(err); ok {
		return true
	}
	if _, ok := AsMalformedDate(err); ok {
		return true
	}
	_, ok := AsInvertedRange(err)
	return ok
}
