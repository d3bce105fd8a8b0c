package runlog

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/nba-scraper/internal/testutil"
)

func openTestLog(t *testing.T) *Log {
	t.Helper()
	l, err := Open(filepath.Join(t.TempDir(), "state", "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })
	return l
}

func TestOpenCreatesSchemaOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	l, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, l.Close())

	// reopening must not re-run the v1 migration
	l, err = Open(path)
	require.NoError(t, err)
	defer l.Close()

	var versions int
	require.NoError(t, l.conn.QueryRow("SELECT COUNT(*) FROM schema_version").Scan(&versions))
	assert.Equal(t, 1, versions)
	assert.Equal(t, path, l.Path())
}

func TestRecordAndList(t *testing.T) {
	l := openTestLog(t)
	ctx := context.Background()
	start := testutil.MustParseRFC3339("2024-03-01T12:00:00Z")

	firstID, err := l.Record(ctx, Run{
		StartedAt:  start,
		FinishedAt: start.Add(time.Minute),
		Source:     "games",
		Mode:       "table",
		Selection:  "21700001,21700002",
		Attempted:  2,
		Succeeded:  1,
		Failed:     1,
		Failures:   []Failure{{GameID: "0021700002", Error: "boom"}},
	})
	require.NoError(t, err)

	secondID, err := l.Record(ctx, Run{
		StartedAt:  start.Add(time.Hour),
		FinishedAt: start.Add(2 * time.Hour),
		Source:     "season",
		Mode:       "file",
		Selection:  "2018",
		Path:       "/data/nba2018.csv",
		Attempted:  1229,
		Succeeded:  1229,
		Skipped:    1,
	})
	require.NoError(t, err)
	assert.Greater(t, secondID, firstID)

	runs, err := l.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	assert.Equal(t, secondID, runs[0].ID)
	assert.Equal(t, "season", runs[0].Source)
	assert.Equal(t, "/data/nba2018.csv", runs[0].Path)
	assert.Empty(t, runs[0].Failures)

	assert.Equal(t, "games", runs[1].Source)
	assert.True(t, runs[1].StartedAt.Equal(start))
	assert.Equal(t, []Failure{{GameID: "0021700002", Error: "boom"}}, runs[1].Failures)
}

func TestListLimit(t *testing.T) {
	l := openTestLog(t)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := l.Record(ctx, Run{Source: "dates", Mode: "table", Selection: "x", NoData: true})
		require.NoError(t, err)
	}

	runs, err := l.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.True(t, runs[0].NoData)
	assert.Greater(t, runs[0].ID, runs[1].ID)
}

func TestParseTimeFallback(t *testing.T) {
	assert.True(t, parseTime("garbage").IsZero())
}
