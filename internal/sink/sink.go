package sink

import "context"

// GenerateFunc produces a complete calendar document.
type GenerateFunc func(ctx context.Context) (string, error)

// Sink delivers generated calendar documents to their destination.
type Sink interface {
	Deliver(ctx context.Context, generate GenerateFunc) error
}

// CalendarMediaType is the media type for iCalendar responses.
const CalendarMediaType = "text/calendar; charset=utf-8"
