package tfl

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/commutedash/commutedash/config"
	"github.com/commutedash/commutedash/internal/upstream"
)

// Client talks to the TfL unified API for line status and stop arrivals.
type Client struct {
	cfg        config.TfLConfig
	httpClient *http.Client
	log        zerolog.Logger
}

func NewClient(cfg config.TfLConfig, log zerolog.Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond},
		log:        log.With().Str("component", "tfl").Logger(),
	}
}

// LineStatuses fetches the current status for the given modes and returns
// loosely-typed entries (one per line, first status entry only). The
// normalizer owns resolution of the variant key names, so this stays a
// thin transport shim.
func (c *Client) LineStatuses(ctx context.Context, modes []string) ([]any, error) {
	if len(modes) == 0 {
		modes = c.cfg.Modes
	}
	reqURL := fmt.Sprintf("%s/Line/Mode/%s/Status", c.cfg.BaseURL, strings.Join(modes, ","))

	body, err := upstream.Fetch(ctx, c.httpClient, func() (*http.Request, error) {
		req, err := http.NewRequest(http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, err
		}
		if c.cfg.SubscriptionKey != "" {
			req.Header.Set("Ocp-Apim-Subscription-Key", c.cfg.SubscriptionKey)
		}
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetching line status: %w", err)
	}

	var lines []Line
	if err := json.Unmarshal(body, &lines); err != nil {
		return nil, fmt.Errorf("decoding line status: %w", err)
	}

	entries := make([]any, 0, len(lines))
	for _, line := range lines {
		if len(line.LineStatuses) == 0 {
			continue
		}
		entries = append(entries, map[string]any{
			"mode":   line.ModeName,
			"line":   line.Name,
			"status": line.LineStatuses[0].StatusSeverityDescription,
			"reason": line.LineStatuses[0].Reason,
		})
	}
	c.log.Debug().Int("lines", len(entries)).Msg("line status fetched")
	return entries, nil
}

// Arrivals fetches upcoming arrivals for a stop point. Ordering and minute
// derivation happen in the normalizer.
func (c *Client) Arrivals(ctx context.Context, stopID string) ([]Arrival, error) {
	if stopID == "" {
		stopID = c.cfg.BusStopID
	}
	if stopID == "" {
		return nil, fmt.Errorf("no stop point id configured")
	}

	reqURL := fmt.Sprintf("%s/StopPoint/%s/Arrivals", c.cfg.BaseURL, url.PathEscape(stopID))
	if c.cfg.AppID != "" && c.cfg.AppKey != "" {
		q := url.Values{}
		q.Set("app_id", c.cfg.AppID)
		q.Set("app_key", c.cfg.AppKey)
		reqURL += "?" + q.Encode()
	}

	body, err := upstream.Fetch(ctx, c.httpClient, func() (*http.Request, error) {
		return http.NewRequest(http.MethodGet, reqURL, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("fetching arrivals for %s: %w", stopID, err)
	}

	var arrivals []Arrival
	if err := json.Unmarshal(body, &arrivals); err != nil {
		return nil, fmt.Errorf("decoding arrivals: %w", err)
	}
	c.log.Debug().Str("stop", stopID).Int("arrivals", len(arrivals)).Msg("arrivals fetched")
	return arrivals, nil
}
