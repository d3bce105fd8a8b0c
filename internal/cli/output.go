package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/preston-bernstein/nba-scraper/internal/frame"
	"github.com/preston-bernstein/nba-scraper/internal/runlog"
	"github.com/preston-bernstein/nba-scraper/internal/scrape"
)

func printResult(w io.Writer, res *scrape.Result, rows int) {
	switch {
	case res.NoData:
		fmt.Fprintln(w, "no data")
	case res.Path != "":
		fmt.Fprintf(w, "wrote %s\n", res.Path)
	case res.Table != nil:
		frame.Render(w, res.Table, rows)
	}

	s := res.Summary
	fmt.Fprintf(w, "attempted=%d succeeded=%d failed=%d skipped=%d\n", s.Attempted, s.Succeeded, s.Failed, s.Skipped)
	for _, f := range res.Failures {
		fmt.Fprintf(w, "failed %s (%s): %v\n", f.Target.Canonical, f.Target.League, f.Err)
	}
}

func printHistory(w io.Writer, runs []runlog.Run) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "no runs recorded")
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"id", "started", "source", "selection", "mode", "ok", "failed", "skipped", "result"})
	for _, r := range runs {
		t.AppendRow(table.Row{
			r.ID,
			r.StartedAt.Local().Format(time.DateTime),
			r.Source,
			r.Selection,
			r.Mode,
			r.Succeeded,
			r.Failed,
			r.Skipped,
			runOutcome(r),
		})
	}
	t.Render()
}

func runOutcome(r runlog.Run) string {
	switch {
	case r.Error != "":
		return "error: " + r.Error
	case r.NoData:
		return "no data"
	case r.Path != "":
		return r.Path
	default:
		return "table"
	}
}
