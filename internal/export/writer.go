// Package export persists assembled scrape tables as CSV files.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/preston-bernstein/nba-scraper/internal/frame"
)

// ErrNoDataDir is returned when a write has no destination directory.
var ErrNoDataDir = errors.New("export: data directory required")

// Writer writes CSV files under a data directory.
type Writer struct {
	dataDir string
}

// NewWriter constructs a writer rooted at dataDir.
func NewWriter(dataDir string) *Writer {
	return &Writer{dataDir: dataDir}
}

// DataDir exposes the writer root.
func (w *Writer) DataDir() string {
	if w == nil {
		return ""
	}
	return w.dataDir
}

// WriteCSV writes f to {dataDir}/{filename}, replacing any existing file, and
// returns the path. The file is staged next to the target and renamed into
// place; an identical existing file is left untouched.
func (w *Writer) WriteCSV(filename string, f *frame.Frame) (string, error) {
	if w == nil || w.dataDir == "" {
		return "", ErrNoDataDir
	}
	if filename == "" || filename != filepath.Base(filename) {
		return "", fmt.Errorf("export: invalid file name %q", filename)
	}

	target := Path(w.dataDir, filename)
	if err := os.MkdirAll(w.dataDir, 0o755); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := frame.WriteCSV(&buf, f); err != nil {
		return "", err
	}
	data := buf.Bytes()

	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return target, nil
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", err
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return "", err
	}
	return target, nil
}
