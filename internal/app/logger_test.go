//go:build !integration

package app

import (
	"testing"

	"github.com/guttosm/restaurant-service/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInitializeLogger(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	tests := []struct {
		name     string
		cfg      config.LogConfig
		expected zerolog.Level
	}{
		{"default log level", config.LogConfig{}, zerolog.InfoLevel},
		{"debug level", config.LogConfig{Level: "debug"}, zerolog.DebugLevel},
		{"pretty output", config.LogConfig{Level: "warn", Pretty: true}, zerolog.WarnLevel},
		{"error level", config.LogConfig{Level: "error"}, zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				InitializeLogger(tt.cfg)
			})
			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
		})
	}
}
