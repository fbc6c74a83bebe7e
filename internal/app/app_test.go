//go:build !integration

package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/guttosm/restaurant-service/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	return config.Config{
		Log:        config.LogConfig{Level: "disabled"},
		Restaurant: config.RestaurantConfig{TableCapacities: []int{4, 2}, Locale: "en"},
		Metrics:    config.MetricsConfig{Enabled: true},
	}
}

func TestInitializeApp(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*config.Config)
		input    string
		expected []string
		wantErr  bool
	}{
		{
			name:  "serves a table end to end",
			input: "occupy 2\norder 2 Soup:4.5:10:water,salt\nserve 2\nclose 2\n",
			expected: []string{
				"table 2 is now occupied",
				"order 1 placed on table 2",
				"order served",
				"table 2 is now free",
			},
		},
		{
			name:     "metrics enabled",
			input:    "occupy 1\nmetrics\n",
			expected: []string{"restaurant_occupied_tables 1", "# TYPE restaurant_occupied_tables gauge"},
		},
		{
			name:     "metrics disabled",
			mutate:   func(c *config.Config) { c.Metrics.Enabled = false },
			input:    "metrics\n",
			expected: []string{"metrics are disabled"},
		},
		{
			name:     "spanish locale",
			mutate:   func(c *config.Config) { c.Restaurant.Locale = "es" },
			input:    "top\n",
			expected: []string{"no se ha pedido ningún plato"},
		},
		{
			name:    "invalid table layout",
			mutate:  func(c *config.Config) { c.Restaurant.TableCapacities = []int{4, 12} },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			if tt.mutate != nil {
				tt.mutate(&cfg)
			}

			out := &bytes.Buffer{}
			shell, err := InitializeApp(cfg, out)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, shell)
				return
			}
			require.NoError(t, err)
			require.NoError(t, shell.Run(context.Background(), strings.NewReader(tt.input)))

			for _, line := range tt.expected {
				assert.Contains(t, out.String(), line)
			}
		})
	}
}
