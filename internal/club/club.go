package club

import (
	"fmt"
	"sort"
)

// Club identifies a tracked team. The (Name, League, TeamID) triple is
// unique within a registry; the display name alone is not guaranteed to be.
type Club struct {
	Name   string `yaml:"club" json:"club"`
	League string `yaml:"league" json:"league"`
	TeamID int    `yaml:"team_id" json:"team_id"`
}

// String returns a short human-readable form used in logs.
func (c Club) String() string {
	return fmt.Sprintf("%s (%s/%d)", c.Name, c.League, c.TeamID)
}

// Registry is an ordered, read-only list of clubs. It is always sorted by
// (name, league, team id) so that every run iterates clubs in the same order.
type Registry []Club

// Leagues returns the distinct league codes present in the registry, sorted.
func (r Registry) Leagues() []string {
	seen := make(map[string]bool, len(r))
	leagues := make([]string, 0, len(r))
	for _, c := range r {
		if !seen[c.League] {
			seen[c.League] = true
			leagues = append(leagues, c.League)
		}
	}
	sort.Strings(leagues)
	return leagues
}

// Players maps a player's name to the club they play for.
type Players map[string]Club

// Registry deduplicates the player table into a sorted club registry.
// Two players at the same club collapse into a single entry.
func (p Players) Registry() Registry {
	seen := make(map[Club]bool, len(p))
	registry := make(Registry, 0, len(p))
	for _, c := range p {
		if !seen[c] {
			seen[c] = true
			registry = append(registry, c)
		}
	}
	sort.Slice(registry, func(i, j int) bool {
		if registry[i].Name != registry[j].Name {
			return registry[i].Name < registry[j].Name
		}
		if registry[i].League != registry[j].League {
			return registry[i].League < registry[j].League
		}
		return registry[i].TeamID < registry[j].TeamID
	})
	return registry
}

// DefaultPlayers returns the built-in player table.
func DefaultPlayers() Players {
	return Players{
		"Pedri":              {Name: "Barcelona", League: "esp.1", TeamID: 83},
		"Valverde":           {Name: "Real Madrid", League: "esp.1", TeamID: 86},
		"Tonali":             {Name: "Newcastle United", League: "eng.1", TeamID: 361},
		"Gravenberch":        {Name: "Liverpool", League: "eng.1", TeamID: 364},
		"Caicedo":            {Name: "Chelsea", League: "eng.1", TeamID: 363},
		"Rice":               {Name: "Arsenal", League: "eng.1", TeamID: 359},
		"Rodri":              {Name: "Manchester City", League: "eng.1", TeamID: 382},
		"Zubimendi":          {Name: "Arsenal", League: "eng.1", TeamID: 359},
		"Lobotka":            {Name: "Napoli", League: "ita.1", TeamID: 114},
		"Tchouaméni":         {Name: "Real Madrid", League: "esp.1", TeamID: 86},
		"De Jong":            {Name: "Barcelona", League: "esp.1", TeamID: 83},
		"Barella":            {Name: "Internazionale", League: "ita.1", TeamID: 110},
		"Éderson (Atalanta)": {Name: "Atalanta", League: "ita.1", TeamID: 105},
	}
}

// DefaultRegistry returns the club registry derived from the built-in
// player table.
func DefaultRegistry() Registry {
	return DefaultPlayers().Registry()
}
