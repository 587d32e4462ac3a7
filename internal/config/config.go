// Package config loads application settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Default values.
const (
	DefaultProviderURL = "https://api.openweathermap.org/data/2.5/weather"
	DefaultPort        = "8080"
	DefaultUnits       = "metric"
	DefaultLogLevel    = "info"
	DefaultDBName      = "weathercast"
)

// Config holds application settings.
type Config struct {
	APIKey       string
	ProviderURL  string
	Port         string
	Origin       string
	Units        string
	LogLevel     string
	DBConnString string
	DBName       string
}

// Load reads an optional .env file and then the process environment.
// Variables already present in the environment take precedence over the file.
func Load(envFiles ...string) (*Config, error) {
	err := godotenv.Load(envFiles...)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	return &Config{
		APIKey:       os.Getenv("OPENWEATHER_API_KEY"),
		ProviderURL:  getEnv("OPENWEATHER_URL", DefaultProviderURL),
		Port:         getEnv("PORT", DefaultPort),
		Origin:       os.Getenv("ORIGIN"),
		Units:        getEnv("UNITS", DefaultUnits),
		LogLevel:     getEnv("LOG_LEVEL", DefaultLogLevel),
		DBConnString: os.Getenv("DB_CONN_STRING"),
		DBName:       getEnv("DB_NAME", DefaultDBName),
	}, nil
}

// ArchiveEnabled reports whether a database connection is configured.
func (c *Config) ArchiveEnabled() bool {
	return c.DBConnString != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
