package export

import (
	"fmt"
	"path/filepath"
)

// DateRangeFile is the file name for date-range scrapes.
const DateRangeFile = "nbadata.csv"

// SeasonFile is the file name for a season scrape.
func SeasonFile(season int) string {
	return fmt.Sprintf("nba%d.csv", season)
}

// GameListFile is the file name for an explicit id list, named after its first id.
func GameListFile(firstID string) string {
	return firstID + ".csv"
}

// Path joins the data directory and a file name.
func Path(dataDir, filename string) string {
	return filepath.Join(dataDir, filename)
}
