package scrape

import (
	"log/slog"

	"github.com/preston-bernstein/nba-scraper/internal/logging"
)

// Reporter receives per-game progress. With more than one worker, calls
// arrive from several goroutines.
type Reporter interface {
	Started(t Target)
	Skipped(t Target)
	Fetched(t Target, rows int)
	Failed(t Target, err error)
}

// LogReporter reports progress through slog.
type LogReporter struct {
	Logger *slog.Logger
}

// NewLogReporter returns a reporter writing to logger.
func NewLogReporter(logger *slog.Logger) *LogReporter {
	return &LogReporter{Logger: logger}
}

func targetAttrs(t Target) []any {
	return []any{
		slog.String(logging.FieldGameID, t.Canonical),
		slog.String(logging.FieldLeague, t.League.String()),
	}
}

func (r *LogReporter) Started(t Target) {
	logging.Debug(r.Logger, "fetching game", targetAttrs(t)...)
}

func (r *LogReporter) Skipped(t Target) {
	logging.Warn(r.Logger, "skipping unavailable game", targetAttrs(t)...)
}

func (r *LogReporter) Fetched(t Target, rows int) {
	logging.Info(r.Logger, "fetched game", append(targetAttrs(t), slog.Int(logging.FieldCount, rows))...)
}

func (r *LogReporter) Failed(t Target, err error) {
	logging.Error(r.Logger, "game fetch failed", err, targetAttrs(t)...)
}

type nopReporter struct{}

func (nopReporter) Started(Target)       {}
func (nopReporter) Skipped(Target)       {}
func (nopReporter) Fetched(Target, int)  {}
func (nopReporter) Failed(Target, error) {}
