package calendar

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pfrederiksen/club-fixtures/internal/fixture"
	"github.com/pfrederiksen/club-fixtures/internal/schedule"
)

const (
	ProdID = "-//Club Fixtures//club-fixtures//EN"

	// DefaultCalendarName is the X-WR-CALNAME used when none is configured.
	DefaultCalendarName = "Club Fixtures — Next Two"

	// uidSuffix is the fixed domain suffix appended to every event UID.
	uidSuffix = "@fixtures"

	icsTimeLayout = "20060102T150405Z"

	// defaultDuration is assumed for every match; the feed never carries
	// an explicit end time.
	defaultDuration = 2 * time.Hour

	// maxLineOctets is the RFC 5545 fold limit, measured in UTF-8 bytes
	// excluding the line terminator.
	maxLineOctets = 75
)

// Encode renders the schedule as a complete iCalendar document. The output
// is fully determined by the schedule and generatedAt: re-running with the
// same schedule reproduces byte-identical UIDs, so calendar applications
// treat re-imports as updates rather than duplicates. Only DTSTAMP varies
// between runs.
func Encode(sched schedule.Schedule, generatedAt time.Time, calendarName string) string {
	if calendarName == "" {
		calendarName = DefaultCalendarName
	}
	stamp := generatedAt.UTC().Format(icsTimeLayout)

	lines := []string{
		"BEGIN:VCALENDAR",
		"PRODID:" + ProdID,
		"VERSION:2.0",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"X-WR-CALNAME:" + escapeICS(calendarName),
		"X-WR-TIMEZONE:UTC",
	}

	for _, entry := range sched {
		for _, f := range entry.Fixtures {
			summary := fmt.Sprintf("%s vs %s — %s", f.Home, f.Away, entry.Club.Name)
			location := f.Venue
			if location == "" {
				// Best effort: the match is at least at the home side's ground.
				location = f.Home
			}

			lines = append(lines,
				"BEGIN:VEVENT",
				"UID:"+EventUID(entry.Club.Name, f),
				"DTSTAMP:"+stamp,
				"DTSTART:"+f.Start.UTC().Format(icsTimeLayout),
				"DTEND:"+f.Start.UTC().Add(defaultDuration).Format(icsTimeLayout),
				"SUMMARY:"+escapeICS(summary),
				"DESCRIPTION:"+escapeICS(f.Competition),
				"LOCATION:"+escapeICS(location),
				"END:VEVENT",
			)
		}
	}

	lines = append(lines, "END:VCALENDAR")
	return foldLines(strings.Join(lines, "\r\n") + "\r\n")
}

// EventUID derives the stable identifier for a fixture. The hash input is
// fixed to (club name, kickoff in RFC 3339 UTC, home, away); changing its
// composition would break UID stability for every consumer.
func EventUID(clubName string, f fixture.Fixture) string {
	raw := fmt.Sprintf("%s-%s-%svs%s", clubName, f.Start.UTC().Format(time.RFC3339), f.Home, f.Away)
	return fmt.Sprintf("%x%s", sha256.Sum256([]byte(raw)), uidSuffix)
}

// escapeICS escapes special characters per RFC 5545. Applied before folding.
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	return s
}

// foldLines folds every physical line of the document to at most 75 octets,
// continuation lines starting with exactly one space. The budget is counted
// in bytes but folds happen on codepoint boundaries, so a multi-byte rune is
// never split and a conformant reader recovers the original text exactly.
func foldLines(doc string) string {
	raw := strings.Split(doc, "\r\n")
	folded := make([]string, 0, len(raw))
	for _, line := range raw {
		folded = append(folded, foldLine(line)...)
	}
	return strings.Join(folded, "\r\n")
}

func foldLine(line string) []string {
	if len(line) <= maxLineOctets {
		return []string{line}
	}

	parts := make([]string, 0, len(line)/maxLineOctets+1)
	var current strings.Builder
	for _, r := range line {
		if current.Len()+utf8.RuneLen(r) > maxLineOctets {
			parts = append(parts, current.String())
			current.Reset()
			current.WriteByte(' ')
		}
		current.WriteRune(r)
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}
	return parts
}
