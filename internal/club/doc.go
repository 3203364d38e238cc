// Package club provides the static registry of clubs whose fixtures are
// tracked.
//
// The registry is configured as a player table (player name -> club), which
// mirrors how the calendar is actually curated: players are followed, clubs
// are derived. Several players can point at the same club, so the table is
// deduplicated into a sorted club registry before aggregation. The registry
// is built once at startup and never mutated.
package club
