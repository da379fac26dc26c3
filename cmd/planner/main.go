package main

import (
	"aviation-route-planner/internal/config"
	"os"

	"github.com/rs/zerolog/log"
)

// main is the application composition root.
// It wires the HTTP gateway behind the planner controllers and runs the CLI.
func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Warn().Err(err).Msg("ignoring .env")
	}

	app := newApp(os.Stdout)
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}
