package espn

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/dghubble/sling"
	"github.com/pfrederiksen/club-fixtures/internal/logger"
)

const (
	BaseURL   = "https://site.api.espn.com/"
	UserAgent = "club-fixtures/1.0 (github.com/pfrederiksen/club-fixtures)"
	Timeout   = 15 * time.Second

	maxRetries = 3
)

// Client fetches scoreboard data from the ESPN site API.
type Client struct {
	base       *sling.Sling
	newBackOff func() backoff.BackOff
}

// New creates a Client against the production ESPN API.
func New() *Client {
	return newClient(BaseURL)
}

func newClient(baseURL string) *Client {
	return &Client{
		base: sling.New().
			Client(&http.Client{Timeout: Timeout}).
			Base(baseURL).
			Set("User-Agent", UserAgent),
		newBackOff: func() backoff.BackOff {
			return backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries)
		},
	}
}

// scoreboardParams holds the query parameters for a scoreboard request.
type scoreboardParams struct {
	Dates string `url:"dates"`
}

// Scoreboard returns the raw match records for a league between start and
// end (inclusive, UTC day granularity). A feed with no events in range is an
// empty slice, not an error.
func (c *Client) Scoreboard(ctx context.Context, league string, start, end time.Time) ([]Event, error) {
	if league == "" {
		return nil, fmt.Errorf("league code is empty")
	}

	params := &scoreboardParams{
		Dates: fmt.Sprintf("%s-%s", start.UTC().Format("20060102"), end.UTC().Format("20060102")),
	}
	path := fmt.Sprintf("apis/site/v2/sports/soccer/%s/scoreboard", league)

	req, err := c.base.New().Get(path).QueryStruct(params).Request()
	if err != nil {
		return nil, fmt.Errorf("creating scoreboard request: %w", err)
	}
	req = req.WithContext(ctx)

	logger.Debug("fetching scoreboard", logger.Fields{
		"league": league,
		"dates":  params.Dates,
	})

	var sb scoreboardResponse
	began := time.Now()
	operation := func() error {
		sb = scoreboardResponse{}
		resp, err := c.base.Do(req, &sb, nil)
		if err != nil {
			return fmt.Errorf("fetching scoreboard for %s: %w", league, err)
		}
		if resp.StatusCode != http.StatusOK {
			err := fmt.Errorf("scoreboard for %s: unexpected status %d", league, resp.StatusCode)
			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				// Client errors won't heal on retry.
				return backoff.Permanent(err)
			}
			return err
		}
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(c.newBackOff(), ctx)); err != nil {
		logger.IncrCounter("espn.fetch_errors")
		return nil, err
	}

	logger.IncrCounter("espn.fetches")
	logger.RecordTiming("espn.scoreboard", time.Since(began))
	logger.Debug("fetched scoreboard", logger.Fields{
		"league": league,
		"events": len(sb.Events),
	})

	if sb.Events == nil {
		return []Event{}, nil
	}
	return sb.Events, nil
}
