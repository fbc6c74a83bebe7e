// Package config provides configuration management for the restaurant service.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// DefaultEnvFile is read, when present, before the environment is processed.
const DefaultEnvFile = ".env"

// Config holds the complete application configuration.
type Config struct {
	Log        LogConfig        `envconfig:"LOG"`
	Restaurant RestaurantConfig `envconfig:"RESTAURANT"`
	Metrics    MetricsConfig    `envconfig:"METRICS"`
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string `envconfig:"LEVEL" default:"info"`
	Pretty bool   `envconfig:"PRETTY" default:"false"`
}

// RestaurantConfig describes the dining room.
type RestaurantConfig struct {
	// TableCapacities lists the capacity of tables 1..N in order.
	TableCapacities []int `envconfig:"TABLES" default:"4,4,2,6,2,4"`
	// Locale selects the language of user-facing messages.
	Locale string `envconfig:"LOCALE" default:"en"`
}

// MetricsConfig holds Prometheus collection settings.
type MetricsConfig struct {
	Enabled bool `envconfig:"ENABLED" default:"true"`
}

// Load creates a Config from environment variables, after loading envFiles
// into the environment. Variables already set are never overridden. With no
// envFiles, DefaultEnvFile is loaded if it exists.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		if err := godotenv.Load(DefaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", DefaultEnvFile, err)
		}
	} else if err := godotenv.Load(envFiles...); err != nil {
		return Config{}, fmt.Errorf("load env files: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("process environment: %w", err)
	}
	if len(cfg.Restaurant.TableCapacities) == 0 {
		return Config{}, errors.New("RESTAURANT_TABLES must list at least one table capacity")
	}
	return cfg, nil
}
