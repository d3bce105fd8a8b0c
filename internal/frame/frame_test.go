package frame

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func fragment(game string, rows int) *Frame {
	f := New("game_id", "action_number", "description")
	for i := 1; i <= rows; i++ {
		_ = f.Append(game, strconv.Itoa(i), game+" play")
	}
	return f
}

func TestAppendRejectsWrongWidth(t *testing.T) {
	f := New("a", "b")
	if err := f.Append("1"); err == nil {
		t.Fatal("expected width error")
	}
	if err := f.Append("1", "2"); err != nil {
		t.Fatalf("expected append to succeed, got %v", err)
	}
	if f.Len() != 1 {
		t.Fatalf("expected 1 row, got %d", f.Len())
	}
}

func TestConcatPreservesFragmentOrder(t *testing.T) {
	got := Concat(fragment("g1", 2), fragment("g2", 1), fragment("g3", 2))

	var games []string
	for i := range got.Rows {
		v, _ := got.Value(i, "game_id")
		games = append(games, v)
	}
	want := []string{"g1", "g1", "g2", "g3", "g3"}
	if diff := cmp.Diff(want, games); diff != "" {
		t.Fatalf("unexpected row order (-want +got):\n%s", diff)
	}
}

func TestConcatUnionsColumns(t *testing.T) {
	a := New("game_id", "period")
	_ = a.Append("g1", "1")
	b := New("game_id", "clock", "period")
	_ = b.Append("g2", "PT12M00.00S", "2")

	got := Concat(a, nil, b)
	want := &Frame{
		Columns: []string{"game_id", "period", "clock"},
		Rows: [][]string{
			{"g1", "1", ""},
			{"g2", "2", "PT12M00.00S"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected concat (-want +got):\n%s", diff)
	}
}

func TestConcatOfNothingIsNil(t *testing.T) {
	if got := Concat(); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
	if got := Concat(nil, nil); got != nil {
		t.Fatalf("expected nil for nil inputs, got %+v", got)
	}
}

func TestConcatKeepsExplicitlyEmptyFragment(t *testing.T) {
	got := Concat(New("game_id"))
	if got == nil || got.Len() != 0 || len(got.Columns) != 1 {
		t.Fatalf("expected zero-row frame with columns, got %+v", got)
	}
}

func TestCSVRoundTrip(t *testing.T) {
	original := Concat(fragment("g1", 2), fragment("g2", 3))
	_ = original.Append("g3", "1", `quoted "text", with comma`)

	var buf bytes.Buffer
	if err := WriteCSV(&buf, original); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "game_id,action_number,description\n") {
		t.Fatalf("expected header row first, got %q", buf.String())
	}

	parsed, err := ReadCSV(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if diff := cmp.Diff(original, parsed); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestCSVRoundTripSingleColumnEmptyCell(t *testing.T) {
	original := New("description")
	_ = original.Append("")
	_ = original.Append("jump ball")
	_ = original.Append("")

	var buf bytes.Buffer
	if err := WriteCSV(&buf, original); err != nil {
		t.Fatalf("write: %v", err)
	}
	parsed, err := ReadCSV(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if diff := cmp.Diff(original, parsed); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestCSVCarriageReturnInCellReadsBackAsNewline(t *testing.T) {
	original := New("game_id", "description")
	_ = original.Append("g1", "line one\r\nline two")

	var buf bytes.Buffer
	if err := WriteCSV(&buf, original); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.Contains(buf.String(), "line one\r\nline two") {
		t.Fatalf("expected cell written verbatim, got %q", buf.String())
	}
	parsed, err := ReadCSV(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got, _ := parsed.Value(0, "description"); got != "line one\nline two" {
		t.Fatalf("expected normalized line ending, got %q", got)
	}
}

func TestReadCSVEmpty(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader("")); err == nil {
		t.Fatal("expected error for empty csv")
	}
}

func TestWriteCSVNilFrame(t *testing.T) {
	if err := WriteCSV(&bytes.Buffer{}, nil); err == nil {
		t.Fatal("expected error for nil frame")
	}
}

func TestRenderLimitsRows(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, fragment("g1", 5), 2)
	out := buf.String()
	if !strings.Contains(strings.ToUpper(out), "GAME_ID") {
		t.Fatalf("expected header in output, got %q", out)
	}
	if strings.Count(out, "g1 play") != 2 {
		t.Fatalf("expected 2 rendered rows, got %q", out)
	}
	if !strings.Contains(out, "5") {
		t.Fatalf("expected total row count footer, got %q", out)
	}
}

func TestRenderNilFrame(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, nil, 0)
	if !strings.Contains(buf.String(), "no data") {
		t.Fatalf("expected no data marker, got %q", buf.String())
	}
}
