package frame

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// emptyRecord is a lone empty field. encoding/csv writes it as a blank line,
// which readers skip, so it is written quoted instead.
const emptyRecord = "\"\"\n"

// WriteCSV writes a header row followed by every data row.
//
// A "\r\n" inside a cell is written as-is but ReadCSV returns it as "\n";
// encoding/csv normalizes line endings inside quoted fields.
func WriteCSV(w io.Writer, f *Frame) error {
	if f == nil {
		return errors.New("frame: nil frame")
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(f.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range f.Rows {
		if len(row) == 1 && row[0] == "" {
			cw.Flush()
			if _, err := io.WriteString(w, emptyRecord); err != nil {
				return fmt.Errorf("write row %d: %w", i, err)
			}
			continue
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write rows: %w", err)
	}
	return nil
}

// ReadCSV parses a CSV document whose first record is the header.
// See WriteCSV for the one line-ending caveat.
func ReadCSV(r io.Reader) (*Frame, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("frame: empty csv")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	f := New(header...)
	f.Rows = records
	return f, nil
}
