package espn

// scoreboardResponse is the top-level scoreboard payload. Only the fields
// the pipeline reads are decoded.
type scoreboardResponse struct {
	Events []Event `json:"events"`
}

// Event is a raw match record as the feed reports it. Any field may be
// missing or malformed; callers must tolerate partial records.
type Event struct {
	Date         string        `json:"date"`
	Name         string        `json:"name"`
	Competitions []Competition `json:"competitions"`
}

// Competition carries the participants and venue of a match.
type Competition struct {
	Competitors []Competitor `json:"competitors"`
	League      *LeagueInfo  `json:"league,omitempty"`
	Venue       *Venue       `json:"venue,omitempty"`
}

// Competitor is one side of a match, labeled "home" or "away".
type Competitor struct {
	HomeAway string `json:"homeAway"`
	Team     Team   `json:"team"`
}

// Team identifies a participant. The feed encodes IDs as strings.
type Team struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

// LeagueInfo is the competition's display title.
type LeagueInfo struct {
	Name string `json:"name"`
}

// Venue is the stadium a match is played at.
type Venue struct {
	FullName string `json:"fullName"`
}
