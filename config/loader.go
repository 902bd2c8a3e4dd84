package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Built-in defaults. Everything here can be overridden by config.yml and
// then by environment variables.
const (
	defaultRailEndpoint   = "https://lite.realtime.nationalrail.co.uk/OpenLDBWS/ldb9.asmx"
	defaultTfLBaseURL     = "https://api.tfl.gov.uk"
	defaultWeatherBaseURL = "https://api.open-meteo.com/v1/forecast"
	defaultStationCode    = "PUT"
	defaultTimezone       = "Europe/London"
)

// Load reads config.yml if present, applies environment overrides and
// validates the result. A missing config file is not an error: the env
// surface plus defaults is a complete configuration.
func Load(path string) (AppConfig, error) {
	cfg := defaults()

	if path == "" {
		path = "config.yml"
	}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}

	applyEnv(&cfg)

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func defaults() AppConfig {
	return AppConfig{
		Server: ServerConfig{Port: 5050},
		Rail: RailConfig{
			EndpointURL: defaultRailEndpoint,
			StationCode: defaultStationCode,
			Rows:        10,
			TimeoutMS:   20000,
		},
		TfL: TfLConfig{
			BaseURL:   defaultTfLBaseURL,
			Modes:     []string{"tube"},
			BusRows:   8,
			TimeoutMS: 10000,
		},
		Weather: WeatherConfig{
			BaseURL:      defaultWeatherBaseURL,
			Latitude:     51.5072,
			Longitude:    -0.1276,
			ForecastDays: 7,
			TimeoutMS:    10000,
		},
		Logging:  LoggingConfig{Level: "info"},
		Timezone: defaultTimezone,
		CacheDir: ".cache",
	}
}

func applyEnv(cfg *AppConfig) {
	cfg.Server.Port = envInt("PORT", cfg.Server.Port)
	cfg.Rail.Token = envString("NATIONAL_RAIL_TOKEN", cfg.Rail.Token)
	cfg.Rail.StationCode = envString("STATION_CODE", cfg.Rail.StationCode)
	cfg.Rail.Rows = envInt("ROW_COUNT", cfg.Rail.Rows)
	cfg.TfL.BusStopID = envString("BUS_STOP_ID", cfg.TfL.BusStopID)
	cfg.TfL.BusRows = envInt("BUS_ROW_COUNT", cfg.TfL.BusRows)
	cfg.TfL.AppID = envString("TFL_APP_ID", cfg.TfL.AppID)
	cfg.TfL.AppKey = envString("TFL_APP_KEY", cfg.TfL.AppKey)
	cfg.TfL.SubscriptionKey = envString("TFL_SUBSCRIPTION_KEY", cfg.TfL.SubscriptionKey)
	cfg.Weather.Latitude = envFloat("LATITUDE", cfg.Weather.Latitude)
	cfg.Weather.Longitude = envFloat("LONGITUDE", cfg.Weather.Longitude)
	cfg.Logging.Level = envString("LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.FilePath = envString("LOG_FILE", cfg.Logging.FilePath)
	cfg.Timezone = envString("TIMEZONE", cfg.Timezone)
	cfg.CacheDir = envString("CACHE_DIR", cfg.CacheDir)

	if modes := envString("TFL_MODES", ""); modes != "" {
		var out []string
		for _, m := range strings.Split(modes, ",") {
			if m = strings.TrimSpace(m); m != "" {
				out = append(out, m)
			}
		}
		if len(out) > 0 {
			cfg.TfL.Modes = out
		}
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
