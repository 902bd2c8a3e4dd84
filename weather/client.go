package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/commutedash/commutedash/config"
	"github.com/commutedash/commutedash/internal/upstream"
)

// Client fetches multi-day forecasts from Open-Meteo.
type Client struct {
	cfg        config.WeatherConfig
	timezone   string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient builds a forecast client. timezone is the IANA name sent to the
// API so hourly timestamps come back in local time.
func NewClient(cfg config.WeatherConfig, timezone string, log zerolog.Logger) *Client {
	return &Client{
		cfg:        cfg,
		timezone:   timezone,
		httpClient: &http.Client{Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond},
		log:        log.With().Str("component", "weather").Logger(),
	}
}

const (
	hourlyParams = "temperature_2m,precipitation_probability,precipitation," +
		"weathercode,cloudcover,windspeed_10m,winddirection_10m,windgusts_10m"
	dailyParams = "sunrise,sunset,temperature_2m_max,temperature_2m_min," +
		"precipitation_probability_max,weathercode"
)

// Forecast fetches the hourly and daily series for the configured
// coordinates.
func (c *Client) Forecast(ctx context.Context) (*Response, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(c.cfg.Latitude, 'f', 4, 64))
	q.Set("longitude", strconv.FormatFloat(c.cfg.Longitude, 'f', 4, 64))
	q.Set("hourly", hourlyParams)
	q.Set("daily", dailyParams)
	q.Set("forecast_days", strconv.Itoa(c.cfg.ForecastDays))
	q.Set("timezone", c.timezone)
	reqURL := c.cfg.BaseURL + "?" + q.Encode()

	body, err := upstream.Fetch(ctx, c.httpClient, func() (*http.Request, error) {
		return http.NewRequest(http.MethodGet, reqURL, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("fetching forecast: %w", err)
	}

	var res Response
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("decoding forecast: %w", err)
	}
	c.log.Debug().Int("hours", len(res.Hourly.Time)).Int("days", len(res.Daily.Time)).
		Msg("forecast fetched")
	return &res, nil
}
