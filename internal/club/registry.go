package club

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// playersFile is the on-disk shape of a player table override.
//
// Example:
//
//	players:
//	  Pedri:
//	    club: Barcelona
//	    league: esp.1
//	    team_id: 83
type playersFile struct {
	Players Players `yaml:"players"`
}

// LoadPlayers reads a player table from a YAML file.
func LoadPlayers(path string) (Players, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading player table: %w", err)
	}

	var file playersFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing player table: %w", err)
	}

	if len(file.Players) == 0 {
		return nil, fmt.Errorf("player table %s contains no players", path)
	}

	for name, c := range file.Players {
		if c.Name == "" || c.League == "" || c.TeamID <= 0 {
			return nil, fmt.Errorf("player %q has an incomplete club entry (club, league and team_id are required)", name)
		}
	}

	return file.Players, nil
}
