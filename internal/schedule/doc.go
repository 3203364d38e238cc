// Package schedule aggregates the per-run fixture schedule.
//
// Aggregation drives the fetch-once-per-league, extract-per-club flow: each
// distinct league in the registry is fetched exactly once (leagues are
// fetched in parallel, the run fails fast if any league fails), then every
// club's fixtures are extracted from the cached league result and capped at
// the next two. The schedule covers every registered club in registry order,
// including clubs with nothing upcoming.
package schedule
