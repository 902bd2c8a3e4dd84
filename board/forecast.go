package board

import (
	"math"
	"strings"
	"time"

	"github.com/commutedash/commutedash/weather"
)

// Sky icon classifications.
const (
	IconClear        = "clear"
	IconPartlyCloudy = "partly-cloudy"
	IconOvercast     = "overcast"
	IconFog          = "fog"
	IconDrizzle      = "drizzle"
	IconRain         = "rain"
	IconSnow         = "snow"
	IconThunderstorm = "thunderstorm"
	IconClearNight   = "clear-night"
)

// hourlyWindow caps the rolling hourly forecast.
const hourlyWindow = 16

// segmentWindow is a named half-open [start, end) hour-of-day interval.
type segmentWindow struct {
	label      string
	start, end int
}

var daySegments = []segmentWindow{
	{"morning", 6, 11},
	{"midday", 11, 14},
	{"afternoon", 14, 18},
	{"evening", 18, 21},
}

var compassPoints = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// Open-Meteo hourly timestamps are local ISO without an offset.
const hourlyTimeLayout = "2006-01-02T15:04"

// Compass maps wind direction in degrees to one of 8 compass points.
func Compass(deg float64) string {
	ix := int(math.Round(deg/45)) % 8
	if ix < 0 {
		ix += 8
	}
	return compassPoints[ix]
}

// classifyWeather maps an Open-Meteo weather code to a sky icon. hasCode
// false (code absent upstream) falls back to cloud-cover and rain
// thresholds; cloud < 0 means cloud cover is unknown.
func classifyWeather(code int, hasCode bool, cloud, rainMM float64) string {
	if !hasCode {
		switch {
		case rainMM > 5:
			return IconThunderstorm
		case rainMM > 0.5:
			return IconRain
		case cloud > 85:
			return IconOvercast
		default:
			return IconPartlyCloudy
		}
	}
	switch {
	case code == 0:
		return IconClear
	case code >= 1 && code <= 3:
		if cloud > 80 {
			return IconOvercast
		}
		return IconPartlyCloudy
	case code == 45 || code == 48:
		return IconFog
	case code >= 51 && code <= 67:
		return IconDrizzle
	case code >= 71 && code <= 77:
		return IconSnow
	case code >= 80 && code <= 82:
		return IconRain
	case code >= 95 && code <= 99:
		return IconThunderstorm
	default:
		return IconPartlyCloudy
	}
}

// BuildForecast reduces the raw parallel series to segment summaries, day
// high/low, sunrise/sunset, per-day summaries and the rolling hourly
// window starting at now's hour.
func BuildForecast(raw *weather.Response, now time.Time) Forecast {
	h := raw.Hourly
	times := make([]time.Time, len(h.Time))
	valid := make([]bool, len(h.Time))
	for i, s := range h.Time {
		if t, err := time.Parse(hourlyTimeLayout, s); err == nil {
			times[i], valid[i] = t, true
		}
	}

	f := Forecast{Segments: map[string]ForecastSegment{}}

	// Day high/low: the daily arrays when present, else the full hourly
	// series.
	if len(raw.Daily.TemperatureMax) > 0 && len(raw.Daily.TemperatureMin) > 0 {
		f.HighTemp = round1(raw.Daily.TemperatureMax[0])
		f.LowTemp = round1(raw.Daily.TemperatureMin[0])
	} else if len(h.Temperature) > 0 {
		high, low := h.Temperature[0], h.Temperature[0]
		for _, v := range h.Temperature {
			high = math.Max(high, v)
			low = math.Min(low, v)
		}
		f.HighTemp, f.LowTemp = round1(high), round1(low)
	}

	f.Sunrise = clockFromISO(first(raw.Daily.Sunrise))
	f.Sunset = clockFromISO(first(raw.Daily.Sunset))

	// Segments cover the first calendar day of the series only; later days
	// are summarised by the daily list.
	var firstDay time.Time
	for i := range times {
		if valid[i] {
			firstDay = times[i]
			break
		}
	}
	for _, w := range daySegments {
		var idxs []int
		for i := range times {
			if !valid[i] || !sameDate(times[i], firstDay) {
				continue
			}
			if hr := times[i].Hour(); hr >= w.start && hr < w.end {
				idxs = append(idxs, i)
			}
		}
		f.Segments[w.label] = buildSegment(h, idxs)
	}

	f.Daily = buildDaily(raw.Daily)
	f.Hourly = buildHourly(h, times, valid, now, f.Sunrise, f.Sunset)
	return f
}

func buildSegment(h weather.Hourly, idxs []int) ForecastSegment {
	seg := ForecastSegment{
		RainProbability: round1(avgAt(h.PrecipitationProbability, idxs)),
		RainIntensity:   round2(avgAt(h.Precipitation, idxs)),
		WindSpeed:       round1(avgAt(h.WindSpeed, idxs)),
		WindGusts:       round1(avgAt(h.WindGusts, idxs)),
		WindDir:         Compass(avgAt(h.WindDirection, idxs)),
	}
	code, hasCode := modeAt(h.WeatherCode, idxs)
	cloud := -1.0
	if len(idxs) > 0 {
		cloud = avgAt(h.CloudCover, idxs)
	}
	seg.SkyIcon = classifyWeather(code, hasCode, cloud, seg.RainIntensity)
	return seg
}

func buildDaily(d weather.Daily) []DailyForecastEntry {
	entries := make([]DailyForecastEntry, 0, len(d.Time))
	for i, date := range d.Time {
		e := DailyForecastEntry{Date: date}
		if t, err := time.Parse("2006-01-02", date); err == nil {
			e.Weekday = t.Weekday().String()
		}
		if i < len(d.TemperatureMax) {
			e.High = round1(d.TemperatureMax[i])
		}
		if i < len(d.TemperatureMin) {
			e.Low = round1(d.TemperatureMin[i])
		}
		if i < len(d.PrecipitationProbabilityMax) {
			e.RainProbability = round1(d.PrecipitationProbabilityMax[i])
		}
		if i < len(d.WeatherCode) {
			e.SkyIcon = classifyWeather(d.WeatherCode[i], true, -1, 0)
		} else {
			e.SkyIcon = classifyWeather(0, false, -1, 0)
		}
		entries = append(entries, e)
	}
	return entries
}

// buildHourly emits the rolling window from the current hour, continuing
// into the next day's samples until the horizon. Clear skies outside the
// [sunrise-hour, sunset-hour) interval render as the night icon.
func buildHourly(h weather.Hourly, times []time.Time, valid []bool, now time.Time, sunrise, sunset string) []HourlyForecastEntry {
	floorHour := now.Truncate(time.Hour)
	sunriseHr := hourOfClock(sunrise, 6)
	sunsetHr := hourOfClock(sunset, 20)

	var entries []HourlyForecastEntry
	for i := range times {
		if !valid[i] || times[i].Before(floorHour) {
			continue
		}
		if len(entries) == hourlyWindow {
			break
		}
		e := HourlyForecastEntry{Time: times[i].Format("15:04")}
		if i < len(h.Temperature) {
			e.Temperature = round1(h.Temperature[i])
		}
		if i < len(h.PrecipitationProbability) {
			e.RainProbability = round1(h.PrecipitationProbability[i])
		}
		if i < len(h.WindSpeed) {
			e.WindSpeed = round1(h.WindSpeed[i])
		}
		code, hasCode := 0, false
		if i < len(h.WeatherCode) {
			code, hasCode = h.WeatherCode[i], true
		}
		cloud := -1.0
		if i < len(h.CloudCover) {
			cloud = h.CloudCover[i]
		}
		rain := 0.0
		if i < len(h.Precipitation) {
			rain = h.Precipitation[i]
		}
		e.SkyIcon = classifyWeather(code, hasCode, cloud, rain)

		hr := times[i].Hour()
		night := hr < sunriseHr || hr >= sunsetHr
		if night && (e.SkyIcon == IconClear || e.SkyIcon == IconPartlyCloudy) {
			e.SkyIcon = IconClearNight
		}
		entries = append(entries, e)
	}
	return entries
}

// DefaultForecast is the structurally valid placeholder substituted when
// the upstream fetch fails entirely.
func DefaultForecast() Forecast {
	segs := map[string]ForecastSegment{}
	for _, w := range daySegments {
		segs[w.label] = ForecastSegment{SkyIcon: IconPartlyCloudy, WindDir: "N"}
	}
	return Forecast{
		Segments: segs,
		Sunrise:  "06:00",
		Sunset:   "20:00",
	}
}

func avgAt(values []float64, idxs []int) float64 {
	var sum float64
	var n int
	for _, i := range idxs {
		if i < len(values) {
			sum += values[i]
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// modeAt returns the most frequent code among the samples; earlier samples
// win ties. ok is false when no sample is available.
func modeAt(codes []int, idxs []int) (mode int, ok bool) {
	counts := map[int]int{}
	best := -1
	for _, i := range idxs {
		if i >= len(codes) {
			continue
		}
		c := codes[i]
		counts[c]++
		if counts[c] > best {
			best, mode, ok = counts[c], c, true
		}
	}
	return mode, ok
}

// clockFromISO extracts "HH:MM" from an ISO timestamp like
// "2026-08-31T06:12".
func clockFromISO(s string) string {
	if i := strings.IndexByte(s, 'T'); i >= 0 && len(s) >= i+6 {
		return s[i+1 : i+6]
	}
	return ""
}

func hourOfClock(clock string, fallback int) int {
	if t, err := time.Parse("15:04", clock); err == nil {
		return t.Hour()
	}
	return fallback
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func first(ss []string) string {
	if len(ss) == 0 {
		return ""
	}
	return ss[0]
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
