package sink

import (
	"context"
	"fmt"
	"os"

	"github.com/pfrederiksen/club-fixtures/internal/logger"
)

// DefaultOutputPath is where the calendar is written when no path is given.
const DefaultOutputPath = "fixtures.ics"

// FileSink writes the generated document to a file. Generation runs once;
// if it fails nothing is written.
type FileSink struct {
	Path string
}

// NewFileSink creates a FileSink for the given path, falling back to
// DefaultOutputPath when empty.
func NewFileSink(path string) *FileSink {
	if path == "" {
		path = DefaultOutputPath
	}
	return &FileSink{Path: path}
}

// Deliver generates the document and writes it as UTF-8 text.
func (s *FileSink) Deliver(ctx context.Context, generate GenerateFunc) error {
	doc, err := generate(ctx)
	if err != nil {
		return err
	}

	if err := os.WriteFile(s.Path, []byte(doc), 0644); err != nil {
		return fmt.Errorf("writing calendar to %s: %w", s.Path, err)
	}

	logger.Info("wrote calendar", logger.Fields{
		"path":  s.Path,
		"bytes": len(doc),
	})
	return nil
}
