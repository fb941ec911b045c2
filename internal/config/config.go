// Package config provides configuration management functionality.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port     int
	LogLevel string
	DevMode  bool

	// Analysis parameters.
	ForecastHorizonDays  int
	CorrelationThreshold float64
	SynergyThreshold     float64
	SeasonalityWindow    int
	SeasonalityThreshold float64

	// Cron expression (with seconds) for the periodic snapshot refresh.
	SnapshotRefreshSchedule string

	// Elasticity assumption tables. Own-price elasticities drive the what-if
	// simulator; the competitive table drives position analysis. Both can be
	// replaced at wiring time; env vars cover only the scalar knobs.
	PriceElasticity       map[string]float64
	CrossElasticity       map[[2]string]float64
	CompetitiveElasticity map[string]float64
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:     getEnvAsInt("PORT", 8000),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		DevMode:  getEnvAsBool("DEV_MODE", false),

		ForecastHorizonDays:  getEnvAsInt("FORECAST_HORIZON_DAYS", 7),
		CorrelationThreshold: getEnvAsFloat("CORRELATION_THRESHOLD", 0.6),
		SynergyThreshold:     getEnvAsFloat("SYNERGY_THRESHOLD", 0.7),
		SeasonalityWindow:    getEnvAsInt("SEASONALITY_WINDOW", 30),
		SeasonalityThreshold: getEnvAsFloat("SEASONALITY_THRESHOLD_PCT", 25),

		SnapshotRefreshSchedule: getEnv("SNAPSHOT_REFRESH_SCHEDULE", "0 */30 * * * *"),

		PriceElasticity: map[string]float64{
			"Milk":    0.8,
			"Bread":   1.2,
			"Eggs":    1.5,
			"Coffee":  0.6,
			"Bananas": 1.8,
			"Yogurt":  1.3,
			"Cereal":  1.1,
		},
		CrossElasticity: map[[2]string]float64{
			{"Milk", "Cereal"}:  0.7,
			{"Bread", "Eggs"}:   0.6,
			{"Coffee", "Bread"}: 0.4,
			{"Eggs", "Bread"}:   0.6,
		},
		CompetitiveElasticity: map[string]float64{
			"Milk":    1.2,
			"Bread":   0.8,
			"Eggs":    1.5,
			"Coffee":  0.5,
			"Bananas": 2.1,
			"Yogurt":  1.0,
			"Cereal":  0.9,
		},
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
