// Package config loads configuration from environment variables.
package config

import (
	"os"
	"strconv"
)

// Config holds runtime settings.
type Config struct {
	ListenAddr string
	// CatalogPath optionally points at a YAML overlay for the embedded
	// catalog tables. Empty means defaults only.
	CatalogPath string

	HistoryWindow          int
	NegativeThreshold      int
	LowEnergyThreshold     int
	HighIntensityThreshold float64
}

// Load reads env vars and applies defaults. Nothing here is required: the
// engine runs entirely on embedded data.
func Load() Config {
	cfg := Config{
		ListenAddr:  os.Getenv("LISTEN_ADDR"),
		CatalogPath: os.Getenv("CATALOG_PATH"),
	}

	cfg.HistoryWindow = getEnvInt("HISTORY_WINDOW", 7)
	cfg.NegativeThreshold = getEnvInt("NEGATIVE_STREAK_THRESHOLD", 5)
	cfg.LowEnergyThreshold = getEnvInt("LOW_ENERGY_THRESHOLD", 3)
	cfg.HighIntensityThreshold = getEnvFloat("HIGH_INTENSITY_THRESHOLD", 0.7)

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8000"
	}

	return cfg
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			return parsed
		}
	}
	return defaultVal
}
