package commutedash

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/commutedash/commutedash/board"
	"github.com/commutedash/commutedash/cache"
	"github.com/commutedash/commutedash/config"
	"github.com/commutedash/commutedash/rail"
	"github.com/commutedash/commutedash/tfl"
	"github.com/commutedash/commutedash/weather"
)

// railSnapshotKey names the fallback snapshot of the last successful rail
// fetch. The raw service trees are cached (not the normalized output) so a
// fallback read still recomputes due-in against the current clock.
const railSnapshotKey = "rail_services"

// Dashboard owns the upstream clients and produces the per-request data
// the page and the API serve. Each source degrades independently: a total
// upstream failure yields a cached or empty/default result, never an
// error to the caller.
type Dashboard struct {
	cfg      config.AppConfig
	rail     *rail.Client
	tfl      *tfl.Client
	weather  *weather.Client
	fallback *cache.Store
	loc      *time.Location
	log      zerolog.Logger
}

// Snapshot is one full refresh of every data source.
type Snapshot struct {
	Updated string                `json:"updated"`
	Station string                `json:"station"`
	Trains  []board.PlatformGroup `json:"trains"`
	Buses   []board.BusDeparture  `json:"buses"`
	Tubes   board.StatusBoard     `json:"tubes"`
	Weather board.Forecast        `json:"weather"`
}

// NewDashboard wires the clients from config. A broken cache directory is
// logged and disables the fallback without failing startup.
func NewDashboard(cfg config.AppConfig, log zerolog.Logger) (*Dashboard, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, err
	}
	d := &Dashboard{
		cfg:     cfg,
		rail:    rail.NewClient(cfg.Rail, log),
		tfl:     tfl.NewClient(cfg.TfL, log),
		weather: weather.NewClient(cfg.Weather, cfg.Timezone, log),
		loc:     loc,
		log:     log.With().Str("component", "dashboard").Logger(),
	}
	if cfg.CacheDir != "" {
		store, err := cache.NewStore(cfg.CacheDir)
		if err != nil {
			d.log.Warn().Err(err).Msg("fallback cache disabled")
		} else {
			d.fallback = store
		}
	}
	return d, nil
}

func (d *Dashboard) now() time.Time { return time.Now().In(d.loc) }

// Refresh fetches all sources concurrently. The normalizers themselves are
// pure and synchronous; only the upstream calls block.
func (d *Dashboard) Refresh(ctx context.Context) Snapshot {
	snap := Snapshot{Station: d.cfg.Rail.StationCode}

	var wg sync.WaitGroup
	wg.Add(4)
	go func() { defer wg.Done(); snap.Trains = d.Trains(ctx) }()
	go func() { defer wg.Done(); snap.Buses = d.Buses(ctx) }()
	go func() { defer wg.Done(); snap.Tubes = d.Tubes(ctx) }()
	go func() { defer wg.Done(); snap.Weather = d.Weather(ctx) }()
	wg.Wait()

	snap.Updated = d.now().Format("15:04:05")
	return snap
}

// Trains returns departures grouped by platform. On upstream failure the
// last successful raw fetch is re-normalized; with no snapshot either, the
// result is empty.
func (d *Dashboard) Trains(ctx context.Context) []board.PlatformGroup {
	services, err := d.rail.Departures(ctx, "", 0)
	if err != nil {
		d.log.Error().Err(err).Msg("rail fetch failed")
		services = d.lastRailServices()
	} else {
		d.storeRailServices(services)
	}
	groups := board.GroupDepartures(services, d.now())
	if groups == nil {
		groups = []board.PlatformGroup{}
	}
	return groups
}

// Tubes returns the normalized line-status board, empty on failure.
func (d *Dashboard) Tubes(ctx context.Context) board.StatusBoard {
	entries, err := d.tfl.LineStatuses(ctx, nil)
	if err != nil {
		d.log.Error().Err(err).Msg("line status fetch failed")
		return board.StatusBoard{Lines: []board.LineStatusRecord{}}
	}
	return board.BuildStatusBoard(entries)
}

// Buses returns upcoming bus departures, empty when no stop is configured
// or the fetch fails.
func (d *Dashboard) Buses(ctx context.Context) []board.BusDeparture {
	if d.cfg.TfL.BusStopID == "" {
		return []board.BusDeparture{}
	}
	arrivals, err := d.tfl.Arrivals(ctx, "")
	if err != nil {
		d.log.Error().Err(err).Msg("bus arrivals fetch failed")
		return []board.BusDeparture{}
	}
	return board.NormalizeArrivals(arrivals, d.cfg.TfL.BusRows)
}

// Weather returns the segmented forecast, or the fixed default structure
// on failure so the page always renders a valid object.
func (d *Dashboard) Weather(ctx context.Context) board.Forecast {
	raw, err := d.weather.Forecast(ctx)
	if err != nil {
		d.log.Error().Err(err).Msg("forecast fetch failed")
		return board.DefaultForecast()
	}
	return board.BuildForecast(raw, d.now())
}

func (d *Dashboard) storeRailServices(services []any) {
	if d.fallback == nil || services == nil {
		return
	}
	data, err := json.Marshal(services)
	if err != nil {
		return
	}
	if err := d.fallback.Put(railSnapshotKey, data); err != nil {
		d.log.Warn().Err(err).Msg("rail snapshot write failed")
	}
}

func (d *Dashboard) lastRailServices() []any {
	if d.fallback == nil {
		return nil
	}
	data, ok := d.fallback.Get(railSnapshotKey)
	if !ok {
		return nil
	}
	var services []any
	if err := json.Unmarshal(data, &services); err != nil {
		return nil
	}
	d.log.Info().Int("services", len(services)).Msg("serving rail departures from snapshot")
	return services
}
