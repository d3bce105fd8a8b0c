package scrape

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/nba-scraper/internal/frame"
	"github.com/preston-bernstein/nba-scraper/internal/tracing"
)

type outcomeKind int

const (
	outcomePending outcomeKind = iota
	outcomeSkipped
	outcomeCollected
	outcomeFailed
)

type outcome struct {
	kind     outcomeKind
	fragment *frame.Frame
	err      error
}

// collection is the terminal state of a run: fragments in identifier order.
type collection struct {
	fragments []*frame.Frame
	failures  []Failure
	summary   Summary
}

type orchestrator struct {
	adapter  fetchAdapter
	workers  int
	reporter Reporter
}

// run processes targets with at most workers fetches in flight. Results are
// slotted by sequence position, so completion order never affects assembly order.
// On cancellation the targets already finished are returned with ctx.Err().
func (o *orchestrator) run(ctx context.Context, targets []Target) (collection, error) {
	results := make([]outcome, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	workers := o.workers
	if workers < 1 {
		workers = 1
	}
	g.SetLimit(workers)

	for i := range targets {
		if gctx.Err() != nil {
			break
		}
		i, t := i, targets[i]
		g.Go(func() error {
			results[i] = o.process(gctx, t)
			if results[i].kind == outcomePending {
				return gctx.Err()
			}
			return nil
		})
	}
	waitErr := g.Wait()

	out := collect(targets, results)
	if err := ctx.Err(); err != nil {
		return out, err
	}
	return out, waitErr
}

func (o *orchestrator) process(ctx context.Context, t Target) outcome {
	if ctx.Err() != nil {
		return outcome{}
	}
	if isSentinel(t) {
		o.reporter.Skipped(t)
		return outcome{kind: outcomeSkipped}
	}

	ctx, span := tracing.StartSpan(ctx, "scrape.fetch")
	defer span.End()
	span.SetAttributes(
		attribute.String("game.id", t.Canonical),
		attribute.String("game.league", t.League.String()),
		attribute.Int("game.index", t.Index),
	)

	o.reporter.Started(t)
	fragment, err := o.adapter.fetch(ctx, t)
	if err != nil {
		if ctx.Err() != nil {
			return outcome{}
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		fetchErr := &FetchError{GameID: t.Canonical, League: t.League, Err: err}
		o.reporter.Failed(t, fetchErr)
		return outcome{kind: outcomeFailed, err: fetchErr}
	}
	o.reporter.Fetched(t, fragment.Len())
	span.SetAttributes(attribute.Int("game.rows", fragment.Len()))
	return outcome{kind: outcomeCollected, fragment: fragment}
}

func collect(targets []Target, results []outcome) collection {
	var out collection
	for i, r := range results {
		switch r.kind {
		case outcomeSkipped:
			out.summary.Skipped++
		case outcomeCollected:
			out.summary.Attempted++
			out.summary.Succeeded++
			if r.fragment != nil {
				out.fragments = append(out.fragments, r.fragment)
			}
		case outcomeFailed:
			out.summary.Attempted++
			out.summary.Failed++
			out.failures = append(out.failures, Failure{Target: targets[i], Err: r.err})
		}
	}
	return out
}
