package scrape

import (
	"fmt"

	"github.com/preston-bernstein/nba-scraper/internal/export"
	"github.com/preston-bernstein/nba-scraper/internal/frame"
)

// assemble concatenates the collected fragments and delivers them per mode.
// An empty collection yields NoData and writes nothing.
func assemble(c collection, mode OutputMode, dataDir, filename string) (*Result, error) {
	res := &Result{
		Mode:     mode,
		Failures: c.failures,
		Summary:  c.summary,
	}
	if len(c.fragments) == 0 {
		res.NoData = true
		return res, nil
	}

	table := frame.Concat(c.fragments...)
	switch mode {
	case ModeFile:
		path, err := export.NewWriter(dataDir).WriteCSV(filename, table)
		if err != nil {
			return res, fmt.Errorf("write %s: %w", filename, err)
		}
		res.Path = path
	default:
		res.Table = table
	}
	return res, nil
}
