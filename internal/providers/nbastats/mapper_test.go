package nbastats

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/preston-bernstein/nba-scraper/internal/providers"
)

func TestMapPlayByPlayEmptyActions(t *testing.T) {
	got, err := mapPlayByPlay("0021700001", LeagueNBA, playByPlayResponse{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Len() != 0 || len(got.Columns) != len(Columns) {
		t.Fatalf("expected empty fragment with full columns, got %+v", got)
	}
}

func TestScheduleIDsWNBAPrefix(t *testing.T) {
	payload := scheduleResponse{LeagueSchedule: leagueSchedule{GameDates: []scheduleDate{
		{GameDate: "05/18/2018 00:00:00", Games: []scheduledGame{{GameID: "1021800002"}, {GameID: "1011800001"}, {GameID: "1021800001"}}},
	}}}
	ids, err := scheduleIDs(payload, LeagueWNBA, "2018-05-18", "2018-05-18")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if diff := cmp.Diff([]string{"1021800001", "1021800002"}, ids); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckScheduleCoversWNBACalendarYear(t *testing.T) {
	if err := checkScheduleCovers("2018", LeagueWNBA, "2018-05-18", "2018-09-30"); err != nil {
		t.Fatalf("expected range inside season, got %v", err)
	}
	if err := checkScheduleCovers("2018", LeagueWNBA, "2017-05-18", "2017-05-19"); !errors.Is(err, providers.ErrDateOutsideSchedule) {
		t.Fatalf("expected ErrDateOutsideSchedule, got %v", err)
	}
	if err := checkScheduleCovers("", LeagueNBA, "2001-01-01", "2001-01-02"); err != nil {
		t.Fatalf("expected unlabelled schedule to skip the check, got %v", err)
	}
	if err := checkScheduleCovers("bad", LeagueNBA, "2018-01-01", "2018-01-02"); err == nil {
		t.Fatal("expected error for unparseable season label")
	}
}

func TestFormatID(t *testing.T) {
	if formatID(0) != "" || formatID(2544) != "2544" {
		t.Fatalf("unexpected id formatting")
	}
}
