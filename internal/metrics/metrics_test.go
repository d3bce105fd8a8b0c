package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestRecorderTracksProviderAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordProviderAttempt("nba", 10*time.Millisecond, nil)
	rec.RecordProviderAttempt("nba", 15*time.Millisecond, errors.New("boom"))

	if got := rec.ProviderCalls("nba"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.ProviderErrors("nba"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastCallLatency("nba"); got != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", got)
	}

	snap := rec.Snapshot("nba")
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestRecorderTracksRateLimits(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRateLimit("nba", 5*time.Second)
	rec.RecordRateLimit("nba", 0)

	if got := rec.RateLimitHits("nba"); got != 2 {
		t.Fatalf("expected 2 rate limit hits, got %d", got)
	}
	if got := rec.LastRetryAfter("nba"); got != 5*time.Second {
		t.Fatalf("expected last retry-after to be 5s, got %s", got)
	}
}

func TestRecorderTracksRuns(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRun("season", RunCounts{Attempted: 3, Succeeded: 2, Failed: 1, Skipped: 1}, time.Second)
	rec.RecordRun("season", RunCounts{Attempted: 1, Succeeded: 1}, time.Second)

	runs, totals := rec.RunTotals("season")
	if runs != 2 {
		t.Fatalf("expected 2 runs, got %d", runs)
	}
	want := RunCounts{Attempted: 4, Succeeded: 3, Failed: 1, Skipped: 1}
	if totals != want {
		t.Fatalf("expected %+v, got %+v", want, totals)
	}
	if runs, _ := rec.RunTotals("games"); runs != 0 {
		t.Fatalf("expected no runs for unknown mode")
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordProviderAttempt("nba", time.Millisecond, nil)
	rec.RecordRateLimit("nba", time.Second)
	rec.RecordRun("games", RunCounts{}, 0)
	if rec.ProviderCalls("nba") != 0 {
		t.Fatalf("expected zero calls from nil recorder")
	}
}

func TestRecorderConcurrentAttempts(t *testing.T) {
	rec := NewRecorder()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec.RecordProviderAttempt("wnba", time.Millisecond, nil)
		}()
	}
	wg.Wait()
	if got := rec.ProviderCalls("wnba"); got != 50 {
		t.Fatalf("expected 50 calls, got %d", got)
	}
}
