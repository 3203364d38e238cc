package schedule

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pfrederiksen/club-fixtures/internal/club"
	"github.com/pfrederiksen/club-fixtures/internal/espn"
	"github.com/pfrederiksen/club-fixtures/internal/fixture"
	"github.com/pfrederiksen/club-fixtures/internal/logger"
)

const (
	// DefaultWindowDays is how far ahead the fetch window reaches.
	DefaultWindowDays = 28

	// maxFixturesPerClub caps each club's schedule at its next two matches.
	maxFixturesPerClub = 2
)

// FetchFunc fetches the raw match records for one league within a UTC date
// range. It must return an empty slice, not an error, when the feed has no
// events in range.
type FetchFunc func(ctx context.Context, league string, start, end time.Time) ([]espn.Event, error)

// Entry is one club's slot in the schedule. Fixtures holds at most two
// entries, ascending by kickoff; it may be empty but is never nil.
type Entry struct {
	Club     club.Club
	Fixtures []fixture.Fixture
}

// Schedule is the per-run mapping of club to its next-two-fixtures list,
// ordered like the registry it was built from.
type Schedule []Entry

// Window computes the UTC fetch window for a run. The window starts at local
// midnight of now's day, not at now itself, so matches scheduled earlier the
// same local day are still fetched.
func Window(now time.Time, days int) (start, end time.Time) {
	y, m, d := now.Date()
	start = time.Date(y, m, d, 0, 0, 0, 0, now.Location()).UTC()
	end = start.Add(time.Duration(days) * 24 * time.Hour)
	return start, end
}

// Aggregate builds the schedule for one run. Each distinct league in the
// registry is passed to fetch exactly once; results are cached in memory for
// the duration of the run and shared by every club in that league. If any
// league fetch fails the whole run fails and no schedule is returned.
func Aggregate(ctx context.Context, registry club.Registry, fetch FetchFunc, now time.Time, windowDays int) (Schedule, error) {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	start, end := Window(now, windowDays)

	leagues := registry.Leagues()
	byLeague := make(map[string][]espn.Event, len(leagues))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for _, league := range leagues {
		league := league
		g.Go(func() error {
			events, err := fetch(gctx, league, start, end)
			if err != nil {
				return fmt.Errorf("fetching league %s: %w", league, err)
			}
			mu.Lock()
			byLeague[league] = events
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	schedule := make(Schedule, 0, len(registry))
	for _, c := range registry {
		fixtures, skipped := fixture.Extract(byLeague[c.League], c.TeamID, now)
		if skipped > 0 {
			logger.Warn("skipped malformed records", logger.Fields{
				"club":    c.String(),
				"league":  c.League,
				"skipped": skipped,
			})
			logger.IncrCounter("extract.skipped_records")
		}
		if len(fixtures) > maxFixturesPerClub {
			fixtures = fixtures[:maxFixturesPerClub]
		}
		schedule = append(schedule, Entry{Club: c, Fixtures: fixtures})
	}

	logger.Debug("aggregated schedule", logger.Fields{
		"clubs":   len(schedule),
		"leagues": len(leagues),
	})

	return schedule, nil
}
