package weather

// Response is the raw Open-Meteo forecast payload: parallel hourly arrays
// index-aligned with the hourly timestamp array, plus daily-resolution
// arrays. Field names follow the upstream parameter names.
type Response struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
	Hourly    Hourly  `json:"hourly"`
	Daily     Daily   `json:"daily"`
}

// Hourly holds the index-aligned hourly series. Times are local ISO
// strings without offset, e.g. "2026-08-31T06:00".
type Hourly struct {
	Time                     []string  `json:"time"`
	Temperature              []float64 `json:"temperature_2m"`
	PrecipitationProbability []float64 `json:"precipitation_probability"`
	Precipitation            []float64 `json:"precipitation"`
	WeatherCode              []int     `json:"weathercode"`
	CloudCover               []float64 `json:"cloudcover"`
	WindSpeed                []float64 `json:"windspeed_10m"`
	WindDirection            []float64 `json:"winddirection_10m"`
	WindGusts                []float64 `json:"windgusts_10m"`
}

// Daily holds the per-day series.
type Daily struct {
	Time                        []string  `json:"time"`
	Sunrise                     []string  `json:"sunrise"`
	Sunset                      []string  `json:"sunset"`
	TemperatureMax              []float64 `json:"temperature_2m_max"`
	TemperatureMin              []float64 `json:"temperature_2m_min"`
	PrecipitationProbabilityMax []float64 `json:"precipitation_probability_max"`
	WeatherCode                 []int     `json:"weathercode"`
}
