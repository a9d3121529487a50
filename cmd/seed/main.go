package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/sahilchouksey/unimatch-api/config"
	"github.com/sahilchouksey/unimatch-api/database"
	"github.com/sahilchouksey/unimatch-api/utils/logger"
)

func main() {
	// Load environment variables
	if err := config.LoadENV(); err != nil {
		color.Yellow("Warning: .env file not found, using system environment variables")
	}

	env, err := config.Get()
	if err != nil {
		color.Red("Failed to read configuration: %v", err)
		return
	}
	logger.Init(env.LOG_LEVEL, "console")
	log := logger.With("seed")

	store, err := database.StartGORM()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer store.Close()

	if err := store.Init(); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate tables")
	}

	separator := strings.Repeat("=", 60)
	fmt.Println(separator)
	color.Cyan("UniMatch - Catalog Seeding")
	fmt.Println(separator)

	if err := database.RunSeeds(store.GetDB()); err != nil {
		log.Fatal().Err(err).Msg("Seeding failed")
	}

	fmt.Println(separator)
	color.Green("Seeding completed successfully!")
	fmt.Println(separator)
}
