package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	PreferenceBackendMemory   = "memory"
	PreferenceBackendPostgres = "postgres"
	PreferenceBackendSQLite   = "sqlite"
)

type Config struct {
	ServiceName   string
	ServerAddress string

	DBName     string
	DBPassword string
	DBUser     string
	DBPort     string
	DBHost     string

	Env         string
	LogLevel    string
	HTTPTimeout int32

	WeatherApiAPIKey  string
	WeatherApiBaseURL string

	PreferenceBackend    string
	SQLitePath           string
	CancelPreviousSearch bool
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "weather-lookup")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("HTTP_TIMEOUT", 10)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("WEATHER_API_BASE_URL", "https://api.weatherapi.com/v1")
	v.SetDefault("PREFERENCE_BACKEND", PreferenceBackendMemory)
	v.SetDefault("SQLITE_PATH", "preferences.db")
	v.SetDefault("CANCEL_PREVIOUS_SEARCH", false)

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:          v.GetString("SERVICE_NAME"),
		ServerAddress:        v.GetString("SERVER_ADDRESS"),
		DBName:               v.GetString("DATABASE_NAME"),
		DBPassword:           v.GetString("DATABASE_PASSWORD"),
		DBUser:               v.GetString("DATABASE_USER"),
		DBPort:               v.GetString("DATABASE_PORT"),
		DBHost:               v.GetString("DATABASE_HOST"),
		Env:                  v.GetString("ENV"),
		LogLevel:             v.GetString("LOG_LEVEL"),
		HTTPTimeout:          v.GetInt32("HTTP_TIMEOUT"),
		WeatherApiAPIKey:     v.GetString("WEATHER_API_API_KEY"),
		WeatherApiBaseURL:    v.GetString("WEATHER_API_BASE_URL"),
		PreferenceBackend:    v.GetString("PREFERENCE_BACKEND"),
		SQLitePath:           v.GetString("SQLITE_PATH"),
		CancelPreviousSearch: v.GetBool("CANCEL_PREVIOUS_SEARCH"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) Validate() error {
	switch c.PreferenceBackend {
	case PreferenceBackendMemory, PreferenceBackendPostgres, PreferenceBackendSQLite:
	default:
		return fmt.Errorf("unknown PREFERENCE_BACKEND %q", c.PreferenceBackend)
	}

	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %d", c.HTTPTimeout)
	}

	if c.WeatherApiAPIKey == "" {
		log.Warn().Msg("WEATHER_API_API_KEY is empty, provider calls will be rejected")
	}

	return nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}
