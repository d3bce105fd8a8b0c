package fixture

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/preston-bernstein/nba-scraper/internal/providers"
	"github.com/preston-bernstein/nba-scraper/internal/providers/nbastats"
)

func TestFetchGameIsDeterministic(t *testing.T) {
	p := New("")

	first, err := p.FetchGame(context.Background(), "0021700001")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, _ := p.FetchGame(context.Background(), "0021700001")
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("expected identical fragments (-first +second):\n%s", diff)
	}

	if first.Len() != playsPerGame {
		t.Fatalf("expected %d plays, got %d", playsPerGame, first.Len())
	}
	if diff := cmp.Diff(nbastats.Columns, first.Columns); diff != "" {
		t.Fatalf("expected nbastats columns (-want +got):\n%s", diff)
	}
	if v, _ := first.Value(0, "game_id"); v != "0021700001" {
		t.Fatalf("expected game id column, got %q", v)
	}
	if v, _ := first.Value(playsPerGame-1, "score_away"); v != "4" {
		t.Fatalf("expected final away score 4, got %q", v)
	}
}

func TestFetchGameMissing(t *testing.T) {
	p := New("nba")
	p.Missing = map[string]bool{"0021700002": true}

	if _, err := p.FetchGame(context.Background(), "0021700002"); !errors.Is(err, providers.ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}
}

func TestFetchGameCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New("nba").FetchGame(ctx, "g"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected canceled, got %v", err)
	}
}

func TestWNBAFragmentsTagLeague(t *testing.T) {
	f, err := New("WNBA").FetchGame(context.Background(), "1021800001")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if v, _ := f.Value(0, "league"); v != "wnba" {
		t.Fatalf("expected wnba, got %q", v)
	}
}

func TestGameIDsByDate(t *testing.T) {
	p := New("nba")
	ids, err := p.GameIDsByDate(context.Background(), "2017-10-02", "2017-10-03")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := []string{"0021700003", "0021700004", "0021700005", "0021700006"}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}

	ids, err = p.GameIDsByDate(context.Background(), "2018-01-01", "2018-01-01")
	if err != nil || len(ids) != gamesPerDay || ids[0][:5] != "00217" {
		t.Fatalf("expected ids in 2017 season, got %v err %v", ids, err)
	}
}

func TestGameIDsByDateRejectsBadDates(t *testing.T) {
	p := New("nba")
	if _, err := p.GameIDsByDate(context.Background(), "bad", "2018-01-01"); err == nil {
		t.Fatalf("expected from error")
	}
	if _, err := p.GameIDsByDate(context.Background(), "2018-01-01", "bad"); err == nil {
		t.Fatalf("expected to error")
	}
}
