package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/nba-scraper/internal/frame"
)

// StubFetcher is a test double for providers.GameFetcher. Fragments and
// errors are keyed by canonical game id; unknown ids return Default/Err.
type StubFetcher struct {
	Fragments map[string]*frame.Frame
	Errors    map[string]error
	Default   *frame.Frame
	Err       error
	Calls     atomic.Int32

	mu   sync.Mutex
	seen []string
}

// FetchGame returns the configured fragment or error while tracking calls.
func (s *StubFetcher) FetchGame(ctx context.Context, gameID string) (*frame.Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.Calls.Add(1)
	s.mu.Lock()
	s.seen = append(s.seen, gameID)
	s.mu.Unlock()

	if err, ok := s.Errors[gameID]; ok {
		return nil, err
	}
	if f, ok := s.Fragments[gameID]; ok {
		return f, nil
	}
	return s.Default, s.Err
}

// Seen returns the ids requested so far, in call order.
func (s *StubFetcher) Seen() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.seen))
	copy(out, s.seen)
	return out
}

// StubSchedule is a test double for providers.ScheduleLookup.
type StubSchedule struct {
	IDs   []string
	Err   error
	Calls atomic.Int32
	From  string
	To    string
}

// GameIDsByDate records the range and returns the configured ids.
func (s *StubSchedule) GameIDsByDate(ctx context.Context, from, to string) ([]string, error) {
	_ = ctx
	s.Calls.Add(1)
	s.From, s.To = from, to
	return s.IDs, s.Err
}
