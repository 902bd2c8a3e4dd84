package board

// DepartureRecord is the uniform rendition of one rail service, however it
// arrived on the wire. All fields are plain strings or numbers so the
// record can be emitted as JSON unchanged.
type DepartureRecord struct {
	Scheduled    string `json:"std"`
	Expected     string `json:"etd"`
	Destination  string `json:"destination"`
	Platform     string `json:"platform"`
	Operator     string `json:"operator"`
	OperatorCode string `json:"operatorCode"`
	// DueIn is "Due", a minute count as text, or empty when no due time
	// could be derived. DueInMins carries the numeric value and is nil
	// whenever DueIn is not a number.
	DueIn     string `json:"dueIn"`
	DueInMins *int   `json:"dueInMins,omitempty"`
}

// PlatformGroup is one platform's departures in arrival order. Groups are
// returned sorted: numeric platforms ascending, then everything else
// lexicographically.
type PlatformGroup struct {
	Platform   string            `json:"platform"`
	Departures []DepartureRecord `json:"departures"`
}

// Severity tiers for line status, from worst to best.
const (
	SeverityMajor = "major"
	SeverityWarn  = "warn"
	SeverityGood  = "good"
)

// LineStatusRecord is the uniform rendition of one line's status entry.
type LineStatusRecord struct {
	Line     string `json:"line"`
	Status   string `json:"status"`
	Reason   string `json:"reason,omitempty"`
	Severity string `json:"severity"`
	Colour   string `json:"colour"`
}

// StatusBoard is the sorted status list pre-split for display.
type StatusBoard struct {
	Lines   []LineStatusRecord `json:"lines"`
	Issues  []LineStatusRecord `json:"issues"`
	Good    []LineStatusRecord `json:"good"`
	Summary string             `json:"summary"`
}

// BusDeparture is one upcoming bus arrival at the configured stop.
type BusDeparture struct {
	Line          string `json:"line"`
	Destination   string `json:"destination"`
	ExpectedInMin int    `json:"expected_in_min"`
	VehicleID     string `json:"vehicle_id,omitempty"`
	Towards       string `json:"towards,omitempty"`
	StationName   string `json:"station_name,omitempty"`
}

// ForecastSegment summarises one day-part of the hourly series.
type ForecastSegment struct {
	RainProbability float64 `json:"rain_probability"`
	RainIntensity   float64 `json:"rain_intensity"`
	SkyIcon         string  `json:"sky_icon"`
	WindSpeed       float64 `json:"wind_speed"`
	WindGusts       float64 `json:"wind_gusts"`
	WindDir         string  `json:"wind_dir"`
}

// DailyForecastEntry is a one-line summary of a single forecast day.
type DailyForecastEntry struct {
	Date            string  `json:"date"`
	Weekday         string  `json:"weekday"`
	High            float64 `json:"high"`
	Low             float64 `json:"low"`
	RainProbability float64 `json:"rain_probability"`
	SkyIcon         string  `json:"sky_icon"`
}

// HourlyForecastEntry is one hour of the rolling forecast window.
type HourlyForecastEntry struct {
	Time            string  `json:"time"`
	Temperature     float64 `json:"temperature"`
	RainProbability float64 `json:"rain_probability"`
	SkyIcon         string  `json:"sky_icon"`
	WindSpeed       float64 `json:"wind_speed"`
}

// Forecast is the complete weather object handed to the presentation layer.
type Forecast struct {
	HighTemp float64                    `json:"high_temp"`
	LowTemp  float64                    `json:"low_temp"`
	Segments map[string]ForecastSegment `json:"segments"`
	Sunrise  string                     `json:"sunrise"`
	Sunset   string                     `json:"sunset"`
	Daily    []DailyForecastEntry       `json:"daily,omitempty"`
	Hourly   []HourlyForecastEntry      `json:"hourly,omitempty"`
}
