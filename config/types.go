package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gte=0"`
}

// RailConfig contains the National Rail OpenLDBWS feed configuration
type RailConfig struct {
	EndpointURL string `yaml:"endpointURL" validate:"omitempty,url"`
	Token       string `yaml:"token"`
	StationCode string `yaml:"stationCode"`
	Rows        int    `yaml:"rows" validate:"gte=0"`
	TimeoutMS   int    `yaml:"timeoutMS" validate:"gte=0"`
}

// TfLConfig contains the TfL unified API configuration for line status
// and stop arrivals
type TfLConfig struct {
	BaseURL         string   `yaml:"baseURL" validate:"omitempty,url"`
	Modes           []string `yaml:"modes"`
	BusStopID       string   `yaml:"busStopID"`
	BusRows         int      `yaml:"busRows" validate:"gte=0"`
	AppID           string   `yaml:"appID"`
	AppKey          string   `yaml:"appKey"`
	SubscriptionKey string   `yaml:"subscriptionKey"`
	TimeoutMS       int      `yaml:"timeoutMS" validate:"gte=0"`
}

// WeatherConfig contains the Open-Meteo forecast configuration
type WeatherConfig struct {
	BaseURL      string  `yaml:"baseURL" validate:"omitempty,url"`
	Latitude     float64 `yaml:"latitude" validate:"gte=-90,lte=90"`
	Longitude    float64 `yaml:"longitude" validate:"gte=-180,lte=180"`
	ForecastDays int     `yaml:"forecastDays" validate:"gte=0,lte=16"`
	TimeoutMS    int     `yaml:"timeoutMS" validate:"gte=0"`
}

// LoggingConfig controls log level and the rotated log file
type LoggingConfig struct {
	Level    string `yaml:"level"`
	FilePath string `yaml:"filePath"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server   ServerConfig  `yaml:"server"`
	Rail     RailConfig    `yaml:"rail"`
	TfL      TfLConfig     `yaml:"tfl"`
	Weather  WeatherConfig `yaml:"weather"`
	Logging  LoggingConfig `yaml:"logging"`
	Timezone string        `yaml:"timezone"`
	CacheDir string        `yaml:"cacheDir"`
}
