package fixture

import "time"

// Fixture is a normalized upcoming match for a single tracked team.
type Fixture struct {
	// Start is the kickoff instant in UTC, always after the reference
	// time used for extraction.
	Start       time.Time
	Home        string
	Away        string
	Competition string
	// Venue may be empty; the feed doesn't always carry one.
	Venue string
}
