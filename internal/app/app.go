// Package app provides application initialization and dependency injection.
package app

import (
	"io"

	"github.com/guttosm/restaurant-service/config"
	"github.com/guttosm/restaurant-service/internal/cli"
	"github.com/guttosm/restaurant-service/internal/logger"
)

// Prompt is printed before each command read from a terminal.
const Prompt = "> "

// InitializeApp creates and wires all application dependencies and returns
// the shell that drives them, writing to out.
func InitializeApp(cfg config.Config, out io.Writer, opts ...cli.Option) (*cli.Shell, error) {
	// Initialize logger first (needed by other components)
	log := InitializeLogger(cfg.Log)

	components, err := InitializeServices(cfg, log)
	if err != nil {
		return nil, err
	}

	shellOpts := []cli.Option{
		cli.WithLogger(log),
		cli.WithLocale(cfg.Restaurant.Locale),
	}
	if components.MetricsWriter != nil {
		shellOpts = append(shellOpts, cli.WithMetricsWriter(components.MetricsWriter))
	}
	shellOpts = append(shellOpts, opts...)

	openLog := logger.WithContext(map[string]interface{}{
		"tables":  len(cfg.Restaurant.TableCapacities),
		"locale":  cfg.Restaurant.Locale,
		"metrics": cfg.Metrics.Enabled,
	})
	openLog.Info().Msg("restaurant opened")
	return cli.NewShell(components.Restaurant, out, shellOpts...), nil
}
