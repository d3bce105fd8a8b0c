package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/nba-scraper/internal/frame"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("PROVIDER", "fixture")
	t.Setenv("SCRAPE_PACE", "0s")
	t.Setenv("RUN_LOG_PATH", "")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return home
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Execute(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestGamesTableMode(t *testing.T) {
	isolate(t)

	code, out, errOut := run(t, "games", "21700001", "21700002", "--rows", "3")
	require.Equal(t, ExitSuccess, code, errOut)
	assert.Contains(t, out, "0021700001")
	assert.Equal(t, 1, strings.Count(strings.ToUpper(out), "ROWS"), "one truncation footer")
	assert.NotContains(t, out, "more rows")
	assert.Contains(t, out, "attempted=2 succeeded=2 failed=0 skipped=0")
}

func TestGamesFileModeWritesCSV(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	code, out, errOut := run(t, "--format", "csv", "--data-dir", dir, "games", "21700002", "21700001")
	require.Equal(t, ExitSuccess, code, errOut)

	path := filepath.Join(dir, "21700002.csv")
	assert.Contains(t, out, "wrote "+path)

	fh, err := os.Open(path)
	require.NoError(t, err)
	defer fh.Close()
	f, err := frame.ReadCSV(fh)
	require.NoError(t, err)
	require.Equal(t, 8, f.Len())
	first, _ := f.Value(0, "game_id")
	last, _ := f.Value(7, "game_id")
	assert.Equal(t, "0021700002", first)
	assert.Equal(t, "0021700001", last)
}

func TestFileModeDefaultsToHome(t *testing.T) {
	home := isolate(t)

	code, _, errOut := run(t, "--format", "file", "wnba", "102190001")
	require.Equal(t, ExitSuccess, code, errOut)
	assert.FileExists(t, filepath.Join(home, "102190001.csv"))
}

func TestSentinelOnlyRequestReportsNoData(t *testing.T) {
	isolate(t)

	code, out, errOut := run(t, "games", "21201214")
	require.Equal(t, ExitSuccess, code, errOut)
	assert.Contains(t, out, "no data")
	assert.Contains(t, out, "skipped=1")
}

func TestDatesCommand(t *testing.T) {
	isolate(t)

	code, out, errOut := run(t, "dates", "--from", "2018-01-01", "--to", "2018-01-02", "--rows", "0")
	require.Equal(t, ExitSuccess, code, errOut)
	assert.Contains(t, out, "attempted=4 succeeded=4")
}

func TestValidationErrorsExitNonZero(t *testing.T) {
	cases := map[string][]string{
		"bad format":     {"--format", "parquet", "games", "21700001"},
		"inverted range": {"dates", "--from", "2018-01-02", "--to", "2018-01-01"},
		"bad date":       {"dates", "--from", "2018-13-01", "--to", "2018-12-01"},
		"bad season":     {"season", "1999"},
		"non-numeric id": {"games", "abc"},
		"negative id":    {"games", "--", "-5"},
		"zero id":        {"wnba", "0"},
		"missing ids":    {"games"},
		"bad provider":   {"--provider", "espn", "games", "21700001"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			isolate(t)
			code, out, errOut := run(t, args...)
			assert.Equal(t, ExitError, code)
			assert.NotContains(t, out, "attempted=")
			assert.Contains(t, errOut, "error:")
		})
	}
}

func TestHistoryRequiresRunLog(t *testing.T) {
	isolate(t)

	code, _, errOut := run(t, "history")
	assert.Equal(t, ExitError, code)
	assert.Contains(t, errOut, "run log disabled")
}

func TestHistoryListsRecordedRuns(t *testing.T) {
	isolate(t)
	t.Setenv("RUN_LOG_PATH", filepath.Join(t.TempDir(), "runs.db"))

	code, _, errOut := run(t, "games", "21700001", "21201214")
	require.Equal(t, ExitSuccess, code, errOut)
	code, _, errOut = run(t, "season", "2101")
	require.Equal(t, ExitError, code, errOut)

	code, out, errOut := run(t, "history", "--limit", "5")
	require.Equal(t, ExitSuccess, code, errOut)
	assert.Contains(t, out, "21700001,21201214")
	assert.Equal(t, 1, strings.Count(out, "games"), "validation failures are not recorded")
}

func TestParseIDs(t *testing.T) {
	ids, err := parseIDs([]string{"21700001", " 42 "})
	require.NoError(t, err)
	assert.Equal(t, []int{21700001, 42}, ids)

	for _, bad := range []string{"1e3", "0", "-5"} {
		_, err = parseIDs([]string{bad})
		assert.Error(t, err, bad)
	}
}
