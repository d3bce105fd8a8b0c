// Package cli implements the nba-scraper command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/nba-scraper/internal/scrape"
)

// Version is stamped at build time.
var Version = "dev"

const (
	ExitSuccess = 0
	ExitError   = 1
)

type rootFlags struct {
	format   string
	dataDir  string
	provider string
	workers  int
	pace     time.Duration
	runLog   string
	logLevel string
	rows     int
}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	f := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "nba-scraper",
		Short: "Scrape NBA and WNBA play-by-play into a table or CSV file",
		Long: `Scrape play-by-play for NBA and WNBA games by date range, explicit game ids,
or a whole season. Games that fail are reported and skipped; the rest are
concatenated in request order.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&f.format, "format", "table", "Output mode: table (alias pandas) or file (alias csv)")
	pf.StringVar(&f.dataDir, "data-dir", "", "Directory for file output (default: home directory)")
	pf.StringVar(&f.provider, "provider", "nbastats", "Upstream provider: nbastats or fixture")
	pf.IntVar(&f.workers, "workers", 1, "Maximum concurrent game fetches")
	pf.DurationVar(&f.pace, "pace", 1500*time.Millisecond, "Minimum spacing between upstream requests (0 disables)")
	pf.StringVar(&f.runLog, "run-log", "", "SQLite file recording every run")
	pf.StringVar(&f.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.IntVar(&f.rows, "rows", 20, "Rows to preview in table mode (0 for all)")

	cmd.AddCommand(
		newDatesCmd(f),
		newGamesCmd(f),
		newWNBACmd(f),
		newSeasonCmd(f),
		newHistoryCmd(f),
	)
	return cmd
}

// Execute runs the CLI with args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return ExitError
	}
	return ExitSuccess
}

// scrapeFunc runs one request against a wired scraper.
type scrapeFunc func(ctx context.Context, s *scrape.Scraper, opts scrape.Options) (*scrape.Result, error)

func runScrape(cmd *cobra.Command, f *rootFlags, source, selection string, fn scrapeFunc) error {
	ctx := cmd.Context()
	rt, err := setup(ctx, cmd, f)
	if err != nil {
		return err
	}
	defer rt.close()

	started := time.Now()
	res, err := fn(ctx, rt.scraper, scrape.Options{Mode: rt.cfg.OutputMode, DataDir: rt.cfg.DataDir})
	if res != nil || !scrape.IsValidation(err) {
		rt.record(ctx, runRecord(source, selection, rt.cfg.OutputMode, started), res, err)
	}
	if res != nil {
		printResult(cmd.OutOrStdout(), res, f.rows)
	}
	return err
}
