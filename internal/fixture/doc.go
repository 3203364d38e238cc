// Package fixture normalizes raw scoreboard records into per-team fixtures.
//
// Extraction is a pure function: given a batch of raw records, a team ID and
// a reference time, it keeps only that team's strictly-future matches and
// sorts them by kickoff. A record the feed garbled (unparseable timestamp,
// non-numeric team ID) is skipped and counted, never fatal: one bad record
// must not cost the rest of the batch.
package fixture
