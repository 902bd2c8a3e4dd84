package rail

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/clbanning/mxj/v2"
	"github.com/rs/zerolog"

	"github.com/commutedash/commutedash/config"
	"github.com/commutedash/commutedash/internal/payload"
	"github.com/commutedash/commutedash/internal/upstream"
)

// envelopeTemplate is the SOAP 1.2 request against the 2016-02-16 ldb
// schema. Arguments: token, rows, station CRS code.
const envelopeTemplate = `<?xml version="1.0" encoding="utf-8"?>
<soap:Envelope xmlns:soap="http://www.w3.org/2003/05/soap-envelope"
               xmlns:typ="http://thalesgroup.com/RTTI/2013-11-28/Token/types"
               xmlns:ldb="http://thalesgroup.com/RTTI/2016-02-16/ldb/">
  <soap:Header>
    <typ:AccessToken>
      <typ:TokenValue>%s</typ:TokenValue>
    </typ:AccessToken>
  </soap:Header>
  <soap:Body>
    <ldb:GetDepartureBoardRequest>
      <ldb:numRows>%d</ldb:numRows>
      <ldb:crs>%s</ldb:crs>
      <ldb:filterType>to</ldb:filterType>
      <ldb:timeOffset>0</ldb:timeOffset>
      <ldb:timeWindow>120</ldb:timeWindow>
    </ldb:GetDepartureBoardRequest>
  </soap:Body>
</soap:Envelope>`

// Client fetches departure boards from the National Rail OpenLDBWS SOAP
// endpoint.
type Client struct {
	cfg        config.RailConfig
	httpClient *http.Client
	log        zerolog.Logger
}

func NewClient(cfg config.RailConfig, log zerolog.Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond},
		log:        log.With().Str("component", "rail").Logger(),
	}
}

// Departures fetches up to rows services departing station and returns the
// raw service trees for the normalizer. station and rows fall back to the
// configured values when zero.
func (c *Client) Departures(ctx context.Context, station string, rows int) ([]any, error) {
	if c.cfg.Token == "" {
		return nil, fmt.Errorf("national rail token is not set")
	}
	if station == "" {
		station = c.cfg.StationCode
	}
	if rows <= 0 {
		rows = c.cfg.Rows
	}

	envelope := fmt.Sprintf(envelopeTemplate, c.cfg.Token, rows, station)
	body, err := upstream.Fetch(ctx, c.httpClient, func() (*http.Request, error) {
		req, err := http.NewRequest(http.MethodPost, c.cfg.EndpointURL, bytes.NewReader([]byte(envelope)))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/soap+xml; charset=utf-8")
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetching departure board for %s: %w", station, err)
	}

	services, err := ParseServices(body)
	if err != nil {
		return nil, err
	}
	c.log.Debug().Str("station", station).Int("services", len(services)).
		Msg("departure board fetched")
	return services, nil
}

// ParseServices decodes a raw SOAP response and walks to the train-service
// list, normalising the absent / single object / list shapes the feed
// produces. The per-service trees keep their namespaced keys; field
// extraction belongs to the normalizer.
func ParseServices(body []byte) ([]any, error) {
	tree, err := mxj.NewMapXml(body)
	if err != nil {
		return nil, fmt.Errorf("parsing departure board XML: %w", err)
	}

	boardNode := payload.Walk(map[string]any(tree),
		"soap:Envelope", "soap:Body", "GetDepartureBoardResponse", "GetStationBoardResult")
	if boardNode == nil {
		return nil, fmt.Errorf("departure board response missing GetStationBoardResult")
	}

	// payload.Resolve collapses lists to their first element, so the
	// service list is read out manually to keep every entry.
	for _, tsKey := range []string{"lt5:trainServices", "lt4:trainServices"} {
		ts, ok := payload.Walk(boardNode, tsKey).(map[string]any)
		if !ok {
			continue
		}
		for _, svcKey := range []string{"lt5:service", "lt4:service"} {
			if v, present := ts[svcKey]; present {
				return payload.List(v), nil
			}
		}
	}
	return nil, nil
}
