// Package scrape turns a game selection into per-game fetches and delivers
// the concatenated play-by-play as an in-memory table or a CSV file.
package scrape

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/preston-bernstein/nba-scraper/internal/export"
	"github.com/preston-bernstein/nba-scraper/internal/frame"
	"github.com/preston-bernstein/nba-scraper/internal/logging"
	"github.com/preston-bernstein/nba-scraper/internal/metrics"
	"github.com/preston-bernstein/nba-scraper/internal/providers"
	"github.com/preston-bernstein/nba-scraper/internal/tracing"
)

// Config wires a Scraper's collaborators. Pacing and retries belong to the
// fetchers (see providers.NewPacedFetcher and providers.NewRetryingFetcher).
type Config struct {
	NBA      providers.GameFetcher
	WNBA     providers.GameFetcher
	Schedule providers.ScheduleLookup
	Workers  int
	DataDir  string
	Reporter Reporter
	Logger   *slog.Logger
	Metrics  *metrics.Recorder
}

// Scraper runs scrape requests. It holds no per-request state and is safe
// for concurrent use.
type Scraper struct {
	adapter  fetchAdapter
	schedule providers.ScheduleLookup
	workers  int
	dataDir  string
	reporter Reporter
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time
}

// New constructs a Scraper from cfg.
func New(cfg Config) *Scraper {
	reporter := cfg.Reporter
	if reporter == nil {
		if cfg.Logger != nil {
			reporter = NewLogReporter(cfg.Logger)
		} else {
			reporter = nopReporter{}
		}
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	return &Scraper{
		adapter: fetchAdapter{fetchers: map[League]providers.GameFetcher{
			LeagueNBA:  cfg.NBA,
			LeagueWNBA: cfg.WNBA,
		}},
		schedule: cfg.Schedule,
		workers:  workers,
		dataDir:  cfg.DataDir,
		reporter: reporter,
		logger:   cfg.Logger,
		metrics:  cfg.Metrics,
		now:      time.Now,
	}
}

type request struct {
	source   Source
	mode     OutputMode
	dataDir  string
	filename string
	plan     func(ctx context.Context) ([]Target, error)
}

// ScrapeDateRange scrapes every primary-league game dated within [from, to].
func (s *Scraper) ScrapeDateRange(ctx context.Context, from, to string, opts Options) (*Result, error) {
	mode, err := ParseOutputMode(opts.Mode)
	if err != nil {
		return nil, err
	}
	if err := ValidateDateRange(from, to); err != nil {
		return nil, err
	}
	r := DateRange{From: from, To: to}
	return s.execute(ctx, request{
		source:   SourceDateRange,
		mode:     mode,
		dataDir:  opts.DataDir,
		filename: export.DateRangeFile,
		plan: func(ctx context.Context) ([]Target, error) {
			return planDateRange(ctx, s.schedule, r)
		},
	})
}

// ScrapeGame scrapes an explicit list of unpadded primary-league game ids.
func (s *Scraper) ScrapeGame(ctx context.Context, ids []int, opts Options) (*Result, error) {
	return s.scrapeList(ctx, LeagueNBA, ids, opts)
}

// ScrapeWNBAGame scrapes an explicit list of unpadded secondary-league game ids.
func (s *Scraper) ScrapeWNBAGame(ctx context.Context, ids []int, opts Options) (*Result, error) {
	return s.scrapeList(ctx, LeagueWNBA, ids, opts)
}

func (s *Scraper) scrapeList(ctx context.Context, league League, ids []int, opts Options) (*Result, error) {
	mode, err := ParseOutputMode(opts.Mode)
	if err != nil {
		return nil, err
	}
	filename := ""
	if len(ids) > 0 {
		filename = export.GameListFile(strconv.Itoa(ids[0]))
	}
	return s.execute(ctx, request{
		source:   SourceGameList,
		mode:     mode,
		dataDir:  opts.DataDir,
		filename: filename,
		plan: func(context.Context) ([]Target, error) {
			return planGameList(league, ids)
		},
	})
}

// ScrapeSeason scrapes every game number of a primary-league season.
func (s *Scraper) ScrapeSeason(ctx context.Context, season int, opts Options) (*Result, error) {
	mode, err := ParseOutputMode(opts.Mode)
	if err != nil {
		return nil, err
	}
	if _, _, err := SeasonBounds(season); err != nil {
		return nil, err
	}
	return s.execute(ctx, request{
		source:   SourceSeason,
		mode:     mode,
		dataDir:  opts.DataDir,
		filename: export.SeasonFile(season),
		plan: func(context.Context) ([]Target, error) {
			return planSeason(season)
		},
	})
}

func (s *Scraper) execute(ctx context.Context, req request) (*Result, error) {
	dataDir := req.dataDir
	if dataDir == "" {
		dataDir = s.dataDir
	}
	logger := s.logger
	if logger != nil {
		logger = logger.With(
			slog.String(logging.FieldMode, string(req.mode)),
			slog.String(logging.FieldSource, req.source.String()),
		)
		ctx = logging.WithLogger(ctx, logger)
	}

	ctx, span := tracing.StartSpan(ctx, "scrape.run")
	defer span.End()
	span.SetAttributes(
		attribute.String("scrape.mode", string(req.mode)),
		attribute.String("scrape.source", req.source.String()),
	)

	start := s.now()
	targets, err := req.plan(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	// An empty selection still reports NoData without a destination.
	if req.mode == ModeFile && dataDir == "" && anyFetchable(targets) {
		span.RecordError(export.ErrNoDataDir)
		span.SetStatus(codes.Error, export.ErrNoDataDir.Error())
		return nil, export.ErrNoDataDir
	}
	logging.Info(logger, "scrape started", slog.Int(logging.FieldCount, len(targets)))

	orch := &orchestrator{adapter: s.adapter, workers: s.workers, reporter: s.reporter}
	collected, runErr := orch.run(ctx, targets)
	elapsed := s.now().Sub(start)
	s.record(req.source, collected.summary, elapsed)
	span.SetAttributes(
		attribute.Int("scrape.succeeded", collected.summary.Succeeded),
		attribute.Int("scrape.failed", collected.summary.Failed),
		attribute.Int("scrape.skipped", collected.summary.Skipped),
	)

	if runErr != nil {
		span.RecordError(runErr)
		span.SetStatus(codes.Error, runErr.Error())
		logging.Warn(logger, "scrape interrupted", slog.Any("err", runErr))
		return partial(req, collected), runErr
	}

	res, err := assemble(collected, req.mode, dataDir, req.filename)
	if res != nil {
		res.Source = req.source
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return res, err
	}

	logging.Info(logger, "scrape finished",
		slog.Int("attempted", res.Summary.Attempted),
		slog.Int("succeeded", res.Summary.Succeeded),
		slog.Int("failed", res.Summary.Failed),
		slog.Int("skipped", res.Summary.Skipped),
		slog.Bool("no_data", res.NoData),
		slog.String(logging.FieldPath, res.Path),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	return res, nil
}

// partial keeps what an interrupted run collected in memory; nothing is written.
func partial(req request, c collection) *Result {
	res := &Result{
		Mode:     req.mode,
		Source:   req.source,
		Failures: c.failures,
		Summary:  c.summary,
		NoData:   len(c.fragments) == 0,
	}
	if !res.NoData {
		res.Table = frame.Concat(c.fragments...)
	}
	return res
}

func (s *Scraper) record(source Source, summary Summary, elapsed time.Duration) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordRun(source.String(), metrics.RunCounts{
		Attempted: summary.Attempted,
		Succeeded: summary.Succeeded,
		Failed:    summary.Failed,
		Skipped:   summary.Skipped,
	}, elapsed)
}
