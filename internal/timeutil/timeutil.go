// Package timeutil holds the calendar helpers shared by validation and providers.
package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// seasonOpenMonth is the first month counted toward a new season.
const seasonOpenMonth = time.October

// ParseDate parses a YYYY-MM-DD string as a UTC calendar day.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate renders the calendar day of t in its own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// SeasonStartYear returns the year a season began for a game played on d.
// Games before October belong to the season that opened the previous fall.
func SeasonStartYear(d time.Time) int {
	if d.Month() < seasonOpenMonth {
		return d.Year() - 1
	}
	return d.Year()
}

// DayOfSeason counts whole days from October 1 of d's season to d.
func DayOfSeason(d time.Time) int {
	opener := time.Date(SeasonStartYear(d), seasonOpenMonth, 1, 0, 0, 0, 0, d.Location())
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
	return int(day.Sub(opener).Hours()) / 24
}

// EachDay calls fn for every calendar day in [from, to].
func EachDay(from, to time.Time, fn func(time.Time)) {
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}
