package main

import (
	"github.com/sahilchouksey/unimatch-api/app"
	"github.com/sahilchouksey/unimatch-api/utils/logger"
)

func main() {
	// setup and run app
	if err := app.SetupAndRunServer(); err != nil {
		log := logger.Get()
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
