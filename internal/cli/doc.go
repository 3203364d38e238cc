// Package cli implements the command-line interface for club-fixtures.
//
// The cli package provides the Cobra-based CLI that wires the club registry,
// the ESPN fetcher, the schedule aggregator and the calendar encoder into a
// single generation run, delivered either to a file or over HTTP depending
// on flags.
package cli
