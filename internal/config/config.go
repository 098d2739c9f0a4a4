package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Provider names accepted by GEOCODE_PROVIDER.
const (
	ProviderNominatim = "nominatim"
	ProviderPostgres  = "postgres"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerAddress      string        `mapstructure:"SERVER_ADDRESS"`
	Environment        string        `mapstructure:"APP_ENV"`
	LogLevel           string        `mapstructure:"LOG_LEVEL"`
	GeocodeProvider    string        `mapstructure:"GEOCODE_PROVIDER"`
	NominatimURL       string        `mapstructure:"NOMINATIM_URL"`
	NominatimUserAgent string        `mapstructure:"NOMINATIM_USER_AGENT"`
	StaticMapURL       string        `mapstructure:"STATIC_MAP_URL"`
	GoogleMapsAPIKey   string        `mapstructure:"GOOGLE_MAPS_API_KEY"`
	DBSource           string        `mapstructure:"DB_SOURCE"`
	UpstreamTimeout    time.Duration `mapstructure:"UPSTREAM_TIMEOUT"`
	CORSAllowOrigins   string        `mapstructure:"CORS_ALLOW_ORIGINS"`
}

var defaults = map[string]any{
	"SERVER_ADDRESS":       "0.0.0.0:8080",
	"APP_ENV":              "production",
	"LOG_LEVEL":            "info",
	"GEOCODE_PROVIDER":     ProviderNominatim,
	"NOMINATIM_URL":        "https://nominatim.openstreetmap.org",
	"NOMINATIM_USER_AGENT": "location-proxy/1.0",
	"STATIC_MAP_URL":       "https://maps.googleapis.com/maps/api",
	"GOOGLE_MAPS_API_KEY":  "",
	"DB_SOURCE":            "",
	"UPSTREAM_TIMEOUT":     "0s",
	"CORS_ALLOW_ORIGINS":   "*",
}

// LoadConfig reads configuration from app.env in path, a .env file in the
// working directory, and the environment. Environment variables win.
// A missing app.env is not an error.
func LoadConfig(path string) (config Config, err error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("config: failed to read config file: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: failed to decode config: %w", err)
	}

	config.GeocodeProvider = strings.ToLower(strings.TrimSpace(config.GeocodeProvider))
	switch config.GeocodeProvider {
	case ProviderNominatim:
	case ProviderPostgres:
		if config.DBSource == "" {
			return config, errors.New("config: DB_SOURCE is required for the postgres geocode provider")
		}
	default:
		return config, fmt.Errorf("config: unknown geocode provider %q", config.GeocodeProvider)
	}

	return config, nil
}

// AllowedOrigins splits CORS_ALLOW_ORIGINS on commas.
func (c Config) AllowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.CORSAllowOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
