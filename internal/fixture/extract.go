package fixture

import (
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/pfrederiksen/club-fixtures/internal/espn"
)

var (
	errMalformedRecord = errors.New("malformed record")

	// errNotRelevant marks records that are well-formed but not this
	// team's upcoming match (other teams, already played).
	errNotRelevant = errors.New("record not relevant")
)

// Extract filters raw records down to teamID's matches that start strictly
// after now, sorted ascending by kickoff. The second return value counts
// records that were skipped as malformed. No length cap is applied here.
func Extract(events []espn.Event, teamID int, now time.Time) ([]Fixture, int) {
	fixtures := make([]Fixture, 0)
	skipped := 0

	for _, ev := range events {
		f, err := fromEvent(ev, teamID, now)
		if err != nil {
			if errors.Is(err, errMalformedRecord) {
				skipped++
			}
			continue
		}
		fixtures = append(fixtures, f)
	}

	sort.Slice(fixtures, func(i, j int) bool {
		return fixtures[i].Start.Before(fixtures[j].Start)
	})

	return fixtures, skipped
}

func fromEvent(ev espn.Event, teamID int, now time.Time) (Fixture, error) {
	var comp espn.Competition
	if len(ev.Competitions) > 0 {
		comp = ev.Competitions[0]
	}

	involved := false
	sides := make(map[string]string, 2)
	for _, c := range comp.Competitors {
		if c.Team.ID != "" {
			id, err := strconv.Atoi(c.Team.ID)
			if err != nil {
				return Fixture{}, errMalformedRecord
			}
			if id == teamID {
				involved = true
			}
		}
		sides[c.HomeAway] = c.Team.DisplayName
	}
	if !involved {
		return Fixture{}, errNotRelevant
	}

	if ev.Date == "" {
		return Fixture{}, errNotRelevant
	}
	start, err := parseStart(ev.Date)
	if err != nil {
		return Fixture{}, errMalformedRecord
	}
	if !start.After(now) {
		return Fixture{}, errNotRelevant
	}

	competition := ""
	if comp.League != nil {
		competition = comp.League.Name
	}
	if competition == "" {
		competition = ev.Name
	}

	venue := ""
	if comp.Venue != nil {
		venue = comp.Venue.FullName
	}

	return Fixture{
		Start:       start.UTC(),
		Home:        sides["home"],
		Away:        sides["away"],
		Competition: competition,
		Venue:       venue,
	}, nil
}

// startLayouts are the timestamp shapes the feed has been seen to emit.
// The scoreboard usually truncates seconds ("2024-05-01T18:00Z").
var startLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
}

func parseStart(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range startLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
