package fixture

import (
	"testing"
	"time"

	"github.com/pfrederiksen/club-fixtures/internal/espn"
)

var now = time.Date(2024, 4, 20, 0, 0, 0, 0, time.UTC)

func record(date, homeID, home, awayID, away string) espn.Event {
	return espn.Event{
		Date: date,
		Name: home + " at " + away,
		Competitions: []espn.Competition{
			{
				Competitors: []espn.Competitor{
					{HomeAway: "home", Team: espn.Team{ID: homeID, DisplayName: home}},
					{HomeAway: "away", Team: espn.Team{ID: awayID, DisplayName: away}},
				},
				League: &espn.LeagueInfo{Name: "Premier League"},
			},
		},
	}
}

func TestExtract_ChelseaScenario(t *testing.T) {
	events := []espn.Event{record("2024-05-01T18:00:00Z", "363", "Chelsea", "359", "Arsenal")}

	fixtures, skipped := Extract(events, 363, now)

	if skipped != 0 {
		t.Errorf("expected no skipped records, got %d", skipped)
	}
	if len(fixtures) != 1 {
		t.Fatalf("expected 1 fixture, got %d", len(fixtures))
	}

	f := fixtures[0]
	if !f.Start.Equal(time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected start: %v", f.Start)
	}
	if f.Home != "Chelsea" || f.Away != "Arsenal" {
		t.Errorf("unexpected sides: %q vs %q", f.Home, f.Away)
	}
	if f.Competition != "Premier League" {
		t.Errorf("unexpected competition: %q", f.Competition)
	}
	if f.Venue != "" {
		t.Errorf("expected empty venue, got %q", f.Venue)
	}
}

func TestExtract_FiltersOtherTeamsAndPastMatches(t *testing.T) {
	events := []espn.Event{
		record("2024-05-01T18:00:00Z", "363", "Chelsea", "359", "Arsenal"),
		record("2024-04-10T18:00:00Z", "363", "Chelsea", "364", "Liverpool"), // already played
		record("2024-05-02T18:00:00Z", "86", "Real Madrid", "83", "Barcelona"),
	}

	fixtures, skipped := Extract(events, 363, now)

	if skipped != 0 {
		t.Errorf("expected no skipped records, got %d", skipped)
	}
	if len(fixtures) != 1 {
		t.Fatalf("expected 1 fixture, got %d", len(fixtures))
	}
	if fixtures[0].Away != "Arsenal" {
		t.Errorf("wrong fixture survived filtering: %+v", fixtures[0])
	}
}

func TestExtract_KickoffExactlyNowIsExcluded(t *testing.T) {
	events := []espn.Event{record(now.Format(time.RFC3339), "363", "Chelsea", "359", "Arsenal")}

	fixtures, _ := Extract(events, 363, now)
	if len(fixtures) != 0 {
		t.Errorf("a match starting exactly at the reference time must be excluded, got %d", len(fixtures))
	}
}

func TestExtract_SortsAscending(t *testing.T) {
	events := []espn.Event{
		record("2024-05-11T14:00:00Z", "363", "Chelsea", "382", "Manchester City"),
		record("2024-05-01T18:00:00Z", "363", "Chelsea", "359", "Arsenal"),
		record("2024-05-05T15:30:00Z", "361", "Newcastle United", "363", "Chelsea"),
	}

	fixtures, _ := Extract(events, 363, now)

	if len(fixtures) != 3 {
		t.Fatalf("expected 3 fixtures (no cap at extraction), got %d", len(fixtures))
	}
	for i := 1; i < len(fixtures); i++ {
		if fixtures[i].Start.Before(fixtures[i-1].Start) {
			t.Errorf("fixtures not sorted ascending: %v after %v", fixtures[i].Start, fixtures[i-1].Start)
		}
	}
	if fixtures[1].Home != "Newcastle United" {
		t.Errorf("away fixtures should resolve sides by label, got home=%q", fixtures[1].Home)
	}
}

func TestExtract_SkipsMalformedTimestamp(t *testing.T) {
	events := []espn.Event{
		record("not-a-timestamp", "363", "Chelsea", "359", "Arsenal"),
		record("2024-05-01T18:00:00Z", "363", "Chelsea", "359", "Arsenal"),
	}

	fixtures, skipped := Extract(events, 363, now)

	if len(fixtures) != 1 {
		t.Fatalf("malformed record must not abort the batch; expected 1 fixture, got %d", len(fixtures))
	}
	if skipped != 1 {
		t.Errorf("expected 1 skipped record, got %d", skipped)
	}
}

func TestExtract_SkipsNonNumericTeamID(t *testing.T) {
	events := []espn.Event{
		record("2024-05-01T18:00:00Z", "abc", "Chelsea", "359", "Arsenal"),
		record("2024-05-02T18:00:00Z", "363", "Chelsea", "364", "Liverpool"),
	}

	fixtures, skipped := Extract(events, 363, now)

	if len(fixtures) != 1 || fixtures[0].Away != "Liverpool" {
		t.Fatalf("expected only the well-formed fixture, got %+v", fixtures)
	}
	if skipped != 1 {
		t.Errorf("expected 1 skipped record, got %d", skipped)
	}
}

func TestExtract_MissingDateIsNotRelevant(t *testing.T) {
	ev := record("", "363", "Chelsea", "359", "Arsenal")
	fixtures, skipped := Extract([]espn.Event{ev}, 363, now)

	if len(fixtures) != 0 {
		t.Errorf("record without a date should yield no fixture")
	}
	if skipped != 0 {
		t.Errorf("a missing date is absent data, not a parse failure; got %d skipped", skipped)
	}
}

func TestExtract_CompetitionFallsBackToEventName(t *testing.T) {
	ev := record("2024-05-01T18:00:00Z", "363", "Chelsea", "359", "Arsenal")
	ev.Competitions[0].League = nil

	fixtures, _ := Extract([]espn.Event{ev}, 363, now)

	if len(fixtures) != 1 {
		t.Fatalf("expected 1 fixture, got %d", len(fixtures))
	}
	if fixtures[0].Competition != "Chelsea at Arsenal" {
		t.Errorf("expected event name fallback, got %q", fixtures[0].Competition)
	}
}

func TestExtract_VenueCarriedWhenPresent(t *testing.T) {
	ev := record("2024-05-01T18:00:00Z", "363", "Chelsea", "359", "Arsenal")
	ev.Competitions[0].Venue = &espn.Venue{FullName: "Stamford Bridge"}

	fixtures, _ := Extract([]espn.Event{ev}, 363, now)

	if len(fixtures) != 1 || fixtures[0].Venue != "Stamford Bridge" {
		t.Errorf("expected venue to be carried, got %+v", fixtures)
	}
}

func TestExtract_EmptyCompetitionsIgnored(t *testing.T) {
	events := []espn.Event{{Date: "2024-05-01T18:00:00Z", Name: "ghost record"}}

	fixtures, skipped := Extract(events, 363, now)
	if len(fixtures) != 0 || skipped != 0 {
		t.Errorf("record without competitors is simply not relevant, got %d fixtures, %d skipped", len(fixtures), skipped)
	}
}

func TestParseStart_MinutePrecision(t *testing.T) {
	// The scoreboard usually drops seconds.
	got, err := parseStart("2024-05-01T18:00Z")
	if err != nil {
		t.Fatalf("parseStart failed: %v", err)
	}
	if !got.Equal(time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected time: %v", got)
	}
}

func TestParseStart_OffsetNormalized(t *testing.T) {
	got, err := parseStart("2024-05-01T20:00:00+02:00")
	if err != nil {
		t.Fatalf("parseStart failed: %v", err)
	}
	if !got.Equal(time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC)) {
		t.Errorf("offset timestamp should normalize to the same instant, got %v", got)
	}
}
