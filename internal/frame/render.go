package frame

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Render writes a human-readable table. When limit > 0 only the first limit
// rows are printed, followed by a footer with the total row count.
func Render(w io.Writer, f *Frame, limit int) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	if f == nil {
		t.AppendRow(table.Row{"no data"})
		t.Render()
		return
	}

	header := make(table.Row, len(f.Columns))
	for i, c := range f.Columns {
		header[i] = c
	}
	t.AppendHeader(header)

	rows := f.Rows
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	for _, r := range rows {
		row := make(table.Row, len(r))
		for i, cell := range r {
			row[i] = cell
		}
		t.AppendRow(row)
	}
	if len(rows) < f.Len() {
		t.AppendFooter(table.Row{"rows", f.Len()})
	}
	t.Render()
}
