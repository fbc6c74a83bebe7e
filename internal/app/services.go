// Package app provides service initialization.
package app

import (
	"fmt"
	"io"

	"github.com/guttosm/restaurant-service/config"
	"github.com/guttosm/restaurant-service/internal/domain/model"
	"github.com/guttosm/restaurant-service/internal/metrics"
	"github.com/guttosm/restaurant-service/internal/service"
	"github.com/rs/zerolog"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Restaurant *service.RestaurantService
	// MetricsWriter is nil when metrics are disabled.
	MetricsWriter func(io.Writer) error
}

// InitializeTables builds tables numbered from 1 with the given capacities.
func InitializeTables(capacities []int) ([]*model.Table, error) {
	tables := make([]*model.Table, 0, len(capacities))
	for i, capacity := range capacities {
		t, err := model.NewTable(i+1, capacity)
		if err != nil {
			return nil, fmt.Errorf("table %d: %w", i+1, err)
		}
		tables = append(tables, t)
	}
	return tables, nil
}

// InitializeServices initializes business logic services.
func InitializeServices(cfg config.Config, log zerolog.Logger) (*ServiceComponents, error) {
	tables, err := InitializeTables(cfg.Restaurant.TableCapacities)
	if err != nil {
		return nil, err
	}

	opts := []service.Option{service.WithLogger(log)}
	components := &ServiceComponents{}
	if cfg.Metrics.Enabled {
		opts = append(opts, service.WithRecorder(metrics.Prometheus{}))
		components.MetricsWriter = metrics.WriteText
	}

	restaurant, err := service.NewRestaurantService(tables, opts...)
	if err != nil {
		return nil, err
	}
	components.Restaurant = restaurant
	return components, nil
}
