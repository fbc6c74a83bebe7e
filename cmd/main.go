// Package main is the entry point for the restaurant-service shell.
//
// The shell reads one command per line from stdin; type help to list them.
// Configuration comes from the environment and an optional .env file.
package main

import (
	"context"
	"os"

	"github.com/guttosm/restaurant-service/config"
	"github.com/guttosm/restaurant-service/internal/app"
	"github.com/guttosm/restaurant-service/internal/cli"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Configuration error")
	}

	shell, err := app.InitializeApp(cfg, os.Stdout, cli.WithPrompt(app.Prompt))
	if err != nil {
		log.Fatal().Err(err).Msg("Initialization error")
	}

	if err := app.RunSession(context.Background(), shell, os.Stdin); err != nil {
		log.Fatal().Err(err).Msg("Session error")
	}
}
