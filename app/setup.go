package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sahilchouksey/unimatch-api/api"
	"github.com/sahilchouksey/unimatch-api/config"
	"github.com/sahilchouksey/unimatch-api/database"
	"github.com/sahilchouksey/unimatch-api/router"
	"github.com/sahilchouksey/unimatch-api/services/cron"
	"github.com/sahilchouksey/unimatch-api/utils/cache"
	"github.com/sahilchouksey/unimatch-api/utils/logger"
)

func SetupAndRunServer() error {

	// Load ENV
	if err := config.LoadENV(); err != nil {
		// .env is optional in development
		fmt.Fprintln(os.Stderr, "No .env file loaded:", err)
	}

	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	logger.Init(getEnv.LOG_LEVEL, getEnv.LOG_FORMAT)
	log := logger.With("app")

	// Initialize GORM database connection
	store, err := database.StartGORM()
	if err != nil {
		log.Error().Msg("Check whether Postgres is running (make docker-up or make db-up)")
		return err
	}

	if err := store.Init(); err != nil {
		log.Error().Msg("Failed to initialize database tables")
		return err
	}

	// Redis is optional: without it roommate results are not cached,
	// generation runs unlocked and chat is not rate limited per student
	var redisCache *cache.RedisCache
	if getEnv.REDIS_URL != "" {
		redisCache, err = cache.NewRedisCache(getEnv.REDIS_URL)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to connect to Redis, continuing without cache")
			redisCache = nil
		}
	}

	svc, err := router.NewServices(store, redisCache, getEnv)
	if err != nil {
		store.Close()
		return err
	}

	// Initialize Cron Manager (only if enabled via environment variable)
	var cronManager *cron.CronManager
	if getEnv.CRON_ENABLED {
		cronManager = cron.NewCronManager(store.GetDB(), svc.Offers)
		if err := cronManager.Start(); err != nil {
			// Don't fail the app, just log the warning
			log.Warn().Err(err).Msg("Failed to start cron jobs")
			cronManager = nil
		}
	}

	// Defer Closing DB, Redis and stopping cron jobs
	defer func() {
		if cronManager != nil {
			cronManager.Stop()
		}
		if redisCache != nil {
			redisCache.Close()
		}
		store.Close()
	}()

	// Init API
	server := api.NewAPIServer(fmt.Sprintf(":%d", getEnv.PORT))

	// Setup Routes
	if err := router.SetupRoutes(server.GetEngine(), store, redisCache, svc, getEnv); err != nil {
		return err
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		if err := server.Shutdown(10 * time.Second); err != nil {
			log.Error().Err(err).Msg("Graceful shutdown failed")
		}
	}()

	// Get the PORT & Start the Server
	return server.Run()
}
