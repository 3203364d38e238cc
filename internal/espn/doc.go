// Package espn provides HTTP fetching for the ESPN soccer scoreboard feed.
//
// The scoreboard endpoint returns every match scheduled for a league within
// a date range. Records are decoded as-is; filtering and normalization into
// fixtures is the fixture package's job. Transient transport failures and
// 5xx responses are retried with exponential backoff; any other failure is
// fatal to the caller's run.
package espn
