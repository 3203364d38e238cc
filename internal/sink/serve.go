package sink

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/pfrederiksen/club-fixtures/internal/logger"
)

const (
	// DefaultListenAddr is the address the serve sink binds when none is
	// configured.
	DefaultListenAddr = ":8000"

	// CalendarPath is the fixed path the document is served at.
	CalendarPath = "/fixtures.ics"

	shutdownTimeout = 5 * time.Second
)

// ServeSink exposes the calendar over HTTP. Every request triggers a full,
// independent regeneration; there is no cross-request cache, so two
// concurrent requests each run their own fetch-and-encode cycle.
type ServeSink struct {
	Addr string
}

// NewServeSink creates a ServeSink bound to addr, falling back to
// DefaultListenAddr when empty.
func NewServeSink(addr string) *ServeSink {
	if addr == "" {
		addr = DefaultListenAddr
	}
	return &ServeSink{Addr: addr}
}

// Deliver serves the calendar until ctx is cancelled.
func (s *ServeSink) Deliver(ctx context.Context, generate GenerateFunc) error {
	srv := &http.Server{
		Addr:    s.Addr,
		Handler: s.handler(generate),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("serving calendar", logger.Fields{
		"listen": s.Addr,
		"path":   CalendarPath,
	})

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *ServeSink) handler(generate GenerateFunc) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", handleHealth)
	mux.HandleFunc(CalendarPath, func(w http.ResponseWriter, r *http.Request) {
		doc, err := generate(r.Context())
		if err != nil {
			logger.Error("calendar generation failed", logger.Fields{
				"remote": r.RemoteAddr,
			}, err)
			http.Error(w, "failed to generate calendar", http.StatusBadGateway)
			return
		}

		w.Header().Set("Content-Type", CalendarMediaType)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(doc))
	})
	return mux
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
