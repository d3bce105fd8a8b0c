package cli

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/nba-scraper/internal/config"
	"github.com/preston-bernstein/nba-scraper/internal/logging"
	"github.com/preston-bernstein/nba-scraper/internal/metrics"
	"github.com/preston-bernstein/nba-scraper/internal/runlog"
	"github.com/preston-bernstein/nba-scraper/internal/scrape"
	"github.com/preston-bernstein/nba-scraper/internal/tracing"
)

var (
	loadConfig   = config.Load
	tracingSetup = tracing.Setup
)

// session holds the wired collaborators for a single command invocation.
type session struct {
	cfg      config.Config
	logger   *slog.Logger
	recorder *metrics.Recorder
	scraper  *scrape.Scraper
	runs     *runlog.Log
	closers  []func(context.Context) error
}

// resolveConfig loads configuration and applies flags the user set explicitly.
func resolveConfig(cmd *cobra.Command, f *rootFlags) (config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return config.Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("provider") {
		cfg.Provider = f.provider
	}
	if flags.Changed("format") {
		cfg.OutputMode = f.format
	}
	if flags.Changed("data-dir") {
		cfg.DataDir = f.dataDir
	}
	if flags.Changed("workers") {
		cfg.Scrape.Workers = f.workers
	}
	if flags.Changed("pace") {
		cfg.Scrape.Pace = f.pace
	}
	if flags.Changed("run-log") {
		cfg.RunLogPath = f.runLog
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	return cfg, nil
}

func newLogger(cfg config.Config, w io.Writer) *slog.Logger {
	return logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.Metrics.ServiceName,
		Version: Version,
		Output:  w,
	})
}

// setup wires telemetry, providers, the scraper and the optional run log.
func setup(ctx context.Context, cmd *cobra.Command, f *rootFlags) (*session, error) {
	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return nil, err
	}
	logger := newLogger(cfg, cmd.ErrOrStderr())
	rt := &session{cfg: cfg, logger: logger}

	recorder, metricsSrv, metricsShutdown := buildMetrics(ctx, cfg, logger)
	rt.recorder = recorder
	if metricsShutdown != nil {
		rt.closers = append(rt.closers, metricsShutdown)
	}
	if metricsSrv != nil {
		launchServer("metrics", metricsSrv, logger)
		rt.closers = append(rt.closers, metricsSrv.Shutdown)
	}

	traceShutdown, err := tracingSetup(ctx, tracing.Config{
		Enabled:     cfg.Metrics.TracingEnabled,
		Endpoint:    cfg.Metrics.TraceEndpoint,
		Insecure:    cfg.Metrics.OtlpInsecure,
		ServiceName: cfg.Metrics.ServiceName,
		Version:     Version,
	})
	if err != nil {
		logger.Warn("tracing setup failed, continuing without traces", logging.FieldError, err)
	} else {
		rt.closers = append(rt.closers, traceShutdown)
	}

	up, err := newProviderFactory(logger, recorder).build(cfg)
	if err != nil {
		rt.close()
		return nil, err
	}
	rt.scraper = scrape.New(scrape.Config{
		NBA:      up.nba,
		WNBA:     up.wnba,
		Schedule: up.schedule,
		Workers:  cfg.Scrape.Workers,
		DataDir:  cfg.DataDir,
		Logger:   logger,
		Metrics:  recorder,
	})

	if cfg.RunLogPath != "" {
		runs, err := runlog.Open(cfg.RunLogPath)
		if err != nil {
			logger.Warn("run log unavailable", logging.FieldError, err, slog.String(logging.FieldPath, cfg.RunLogPath))
		} else {
			rt.runs = runs
			rt.closers = append(rt.closers, func(context.Context) error { return runs.Close() })
		}
	}
	return rt, nil
}

// close releases resources in reverse order of acquisition.
func (rt *session) close() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	for i := len(rt.closers) - 1; i >= 0; i-- {
		if err := rt.closers[i](ctx); err != nil {
			logging.Warn(rt.logger, "shutdown step failed", logging.FieldError, err)
		}
	}
	rt.closers = nil
}

// record stores the run in the audit log when one is configured.
func (rt *session) record(ctx context.Context, run runlog.Run, res *scrape.Result, runErr error) {
	if rt.runs == nil {
		return
	}
	run.FinishedAt = time.Now()
	if res != nil {
		run.Mode = string(res.Mode)
		run.Path = res.Path
		run.NoData = res.NoData
		run.Attempted = res.Summary.Attempted
		run.Succeeded = res.Summary.Succeeded
		run.Failed = res.Summary.Failed
		run.Skipped = res.Summary.Skipped
		for _, f := range res.Failures {
			run.Failures = append(run.Failures, runlog.Failure{GameID: f.Target.Canonical, Error: f.Err.Error()})
		}
	}
	if runErr != nil {
		run.Error = runErr.Error()
	}
	if _, err := rt.runs.Record(ctx, run); err != nil {
		logging.Warn(rt.logger, "failed to record run", logging.FieldError, err)
	}
}
