package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/club-fixtures/internal/calendar"
	"github.com/pfrederiksen/club-fixtures/internal/club"
	"github.com/pfrederiksen/club-fixtures/internal/espn"
	"github.com/pfrederiksen/club-fixtures/internal/logger"
	"github.com/pfrederiksen/club-fixtures/internal/schedule"
	"github.com/pfrederiksen/club-fixtures/internal/sink"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagOut          string
	flagServe        bool
	flagListen       string
	flagPlayers      string
	flagWindowDays   int
	flagCalendarName string
	flagVerbose      bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "club-fixtures",
		Short: "Generate an iCalendar of each club's next two fixtures",
		Long: `Generates an RFC 5545 calendar listing the next two upcoming matches for
every club in the registry, sourced from the ESPN soccer scoreboard feed.
The document is written to a file by default, or served over HTTP with
--serve.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGenerate,
	}

	cmd.Flags().StringVar(&flagOut, "out", sink.DefaultOutputPath, "Path to write the .ics document")
	cmd.Flags().BoolVar(&flagServe, "serve", false, "Serve the calendar over HTTP instead of writing a file")
	cmd.Flags().StringVar(&flagListen, "listen", sink.DefaultListenAddr, "Listen address for --serve")
	cmd.Flags().StringVar(&flagPlayers, "players", "", "YAML player table overriding the built-in registry")
	cmd.Flags().IntVar(&flagWindowDays, "window-days", schedule.DefaultWindowDays, "How many days ahead to fetch fixtures for")
	cmd.Flags().StringVar(&flagCalendarName, "calendar-name", calendar.DefaultCalendarName, "Calendar display name (X-WR-CALNAME)")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	cmd.MarkFlagsMutuallyExclusive("out", "serve")
	cmd.MarkFlagsMutuallyExclusive("out", "listen")

	return cmd
}

// runGenerate is the main command logic
func runGenerate(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	registry, err := loadRegistry(flagPlayers)
	if err != nil {
		return err
	}

	logger.Info("loaded registry", logger.Fields{
		"clubs":   len(registry),
		"leagues": len(registry.Leagues()),
	})

	client := espn.New()
	generate := func(ctx context.Context) (string, error) {
		now := time.Now()
		sched, err := schedule.Aggregate(ctx, registry, client.Scoreboard, now, flagWindowDays)
		if err != nil {
			return "", fmt.Errorf("aggregating schedule: %w", err)
		}
		return calendar.Encode(sched, time.Now().UTC(), flagCalendarName), nil
	}

	var out sink.Sink
	if flagServe {
		out = sink.NewServeSink(flagListen)
	} else {
		out = sink.NewFileSink(flagOut)
	}

	if err := out.Deliver(cmd.Context(), generate); err != nil {
		return err
	}

	if !flagServe {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", flagOut)
	}
	return nil
}

// loadRegistry builds the club registry, from a YAML player table when one
// is given and from the built-in table otherwise.
func loadRegistry(playersPath string) (club.Registry, error) {
	if playersPath == "" {
		return club.DefaultRegistry(), nil
	}
	players, err := club.LoadPlayers(playersPath)
	if err != nil {
		return nil, fmt.Errorf("loading player table: %w", err)
	}
	return players.Registry(), nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
