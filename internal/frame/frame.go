// Package frame holds the tabular container used for game fragments and
// assembled scrape results.
package frame

import "fmt"

// Frame is an ordered set of string columns and rows.
// Every row has exactly len(Columns) cells.
type Frame struct {
	Columns []string
	Rows    [][]string
}

// New returns an empty frame with the given columns.
func New(columns ...string) *Frame {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Frame{Columns: cols}
}

// Len reports the number of rows; nil frames are empty.
func (f *Frame) Len() int {
	if f == nil {
		return 0
	}
	return len(f.Rows)
}

// Append adds a row. The row must match the column count.
func (f *Frame) Append(cells ...string) error {
	if len(cells) != len(f.Columns) {
		return fmt.Errorf("frame: row has %d cells, want %d", len(cells), len(f.Columns))
	}
	row := make([]string, len(cells))
	copy(row, cells)
	f.Rows = append(f.Rows, row)
	return nil
}

// Column returns the index of name, or -1.
func (f *Frame) Column(name string) int {
	if f == nil {
		return -1
	}
	for i, c := range f.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Value returns the cell at row for the named column.
func (f *Frame) Value(row int, column string) (string, bool) {
	idx := f.Column(column)
	if idx < 0 || row < 0 || row >= f.Len() {
		return "", false
	}
	return f.Rows[row][idx], true
}

// Concat stacks frames in order. Columns are the union of all inputs in
// first-seen order; cells for columns a fragment lacks are left empty.
// Nil inputs are ignored. Concat of nothing returns nil.
func Concat(frames ...*Frame) *Frame {
	var (
		columns []string
		index   = make(map[string]int)
		total   int
		seen    bool
	)
	for _, f := range frames {
		if f == nil {
			continue
		}
		seen = true
		total += len(f.Rows)
		for _, c := range f.Columns {
			if _, ok := index[c]; ok {
				continue
			}
			index[c] = len(columns)
			columns = append(columns, c)
		}
	}
	if !seen {
		return nil
	}

	out := &Frame{Columns: columns, Rows: make([][]string, 0, total)}
	for _, f := range frames {
		if f == nil {
			continue
		}
		positions := make([]int, len(f.Columns))
		for i, c := range f.Columns {
			positions[i] = index[c]
		}
		for _, r := range f.Rows {
			row := make([]string, len(columns))
			for i, cell := range r {
				if i < len(positions) {
					row[positions[i]] = cell
				}
			}
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}
