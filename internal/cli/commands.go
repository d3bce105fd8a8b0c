package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/nba-scraper/internal/runlog"
	"github.com/preston-bernstein/nba-scraper/internal/scrape"
)

// ErrRunLogDisabled is returned by history when no run log is configured.
var ErrRunLogDisabled = errors.New("run log disabled: set --run-log or RUN_LOG_PATH")

func newDatesCmd(f *rootFlags) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "dates --from YYYY-MM-DD --to YYYY-MM-DD",
		Short: "Scrape every NBA game played in an inclusive date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScrape(cmd, f, scrape.SourceDateRange.String(), from+".."+to,
				func(ctx context.Context, s *scrape.Scraper, opts scrape.Options) (*scrape.Result, error) {
					return s.ScrapeDateRange(ctx, from, to, opts)
				})
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "First date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Last date, inclusive (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func newGamesCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "games ID...",
		Short: "Scrape NBA games by id (e.g. 21700001)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}
			return runScrape(cmd, f, scrape.SourceGameList.String(), strings.Join(args, ","),
				func(ctx context.Context, s *scrape.Scraper, opts scrape.Options) (*scrape.Result, error) {
					return s.ScrapeGame(ctx, ids, opts)
				})
		},
	}
}

func newWNBACmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "wnba ID...",
		Short: "Scrape WNBA games by unpadded id (sent with a leading 0: 102190001 -> 0102190001)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}
			return runScrape(cmd, f, "wnba-"+scrape.SourceGameList.String(), strings.Join(args, ","),
				func(ctx context.Context, s *scrape.Scraper, opts scrape.Options) (*scrape.Result, error) {
					return s.ScrapeWNBAGame(ctx, ids, opts)
				})
		},
	}
}

func newSeasonCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "season YEAR",
		Short: "Scrape every regular-season NBA game of the season ending in YEAR",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			season, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("season %q is not a year", args[0])
			}
			return runScrape(cmd, f, scrape.SourceSeason.String(), args[0],
				func(ctx context.Context, s *scrape.Scraper, opts scrape.Options) (*scrape.Result, error) {
					return s.ScrapeSeason(ctx, season, opts)
				})
		},
	}
}

func newHistoryCmd(f *rootFlags) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded scrape runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}
			if cfg.RunLogPath == "" {
				return ErrRunLogDisabled
			}
			runs, err := runlog.Open(cfg.RunLogPath)
			if err != nil {
				return err
			}
			defer runs.Close()

			list, err := runs.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			printHistory(cmd.OutOrStdout(), list)
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum runs to list")
	return cmd
}

func parseIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, a := range args {
		id, err := strconv.Atoi(strings.TrimSpace(a))
		if err != nil {
			return nil, fmt.Errorf("game id %q is not a number", a)
		}
		if id <= 0 {
			return nil, fmt.Errorf("game id %q must be positive", a)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func runRecord(source, selection, mode string, started time.Time) runlog.Run {
	return runlog.Run{
		StartedAt: started,
		Source:    source,
		Mode:      mode,
		Selection: selection,
	}
}
