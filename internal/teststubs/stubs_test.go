package teststubs

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/preston-bernstein/nba-scraper/internal/frame"
)

func TestStubFetcherTracksCalls(t *testing.T) {
	err := errors.New("boom")
	hit := frame.New("game_id")
	s := &StubFetcher{
		Fragments: map[string]*frame.Frame{"g1": hit},
		Errors:    map[string]error{"g2": err},
	}

	if got, _ := s.FetchGame(context.Background(), "g1"); got != hit {
		t.Fatalf("expected configured fragment, got %v", got)
	}
	if _, got := s.FetchGame(context.Background(), "g2"); !errors.Is(got, err) {
		t.Fatalf("expected error passthrough, got %v", got)
	}
	if got, gotErr := s.FetchGame(context.Background(), "g3"); got != nil || gotErr != nil {
		t.Fatalf("expected zero default, got %v %v", got, gotErr)
	}
	if s.Calls.Load() != 3 {
		t.Fatalf("expected call count 3, got %d", s.Calls.Load())
	}
	if seen := s.Seen(); len(seen) != 3 || seen[0] != "g1" || seen[2] != "g3" {
		t.Fatalf("unexpected seen order %v", seen)
	}
}

func TestStubFetcherConcurrentCalls(t *testing.T) {
	s := &StubFetcher{Default: frame.New("game_id")}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if _, err := s.FetchGame(context.Background(), id); err != nil {
				t.Errorf("fetch %s: %v", id, err)
			}
		}(strconv.Itoa(i))
	}
	wg.Wait()

	if s.Calls.Load() != 8 || len(s.Seen()) != 8 {
		t.Fatalf("expected 8 tracked calls, got %d/%d", s.Calls.Load(), len(s.Seen()))
	}
}

func TestStubFetcherHonorsCanceledContext(t *testing.T) {
	s := &StubFetcher{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.FetchGame(ctx, "g1"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected canceled, got %v", err)
	}
	if s.Calls.Load() != 0 {
		t.Fatalf("expected no recorded call")
	}
}

func TestStubSchedule(t *testing.T) {
	s := &StubSchedule{IDs: []string{"0021700001"}}
	ids, err := s.GameIDsByDate(context.Background(), "2018-01-01", "2018-01-02")
	if err != nil || len(ids) != 1 {
		t.Fatalf("expected ids, got %v err %v", ids, err)
	}
	if s.From != "2018-01-01" || s.To != "2018-01-02" || s.Calls.Load() != 1 {
		t.Fatalf("expected recorded range, got %s..%s calls=%d", s.From, s.To, s.Calls.Load())
	}
}
