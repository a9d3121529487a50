package database

import (
	"fmt"
	stdlog "log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sahilchouksey/unimatch-api/config"
	"github.com/sahilchouksey/unimatch-api/model"
	applog "github.com/sahilchouksey/unimatch-api/utils/logger"
)

type GORMStore struct {
	db *gorm.DB
}

// DSN builds the libpq-style connection string both drivers accept
func DSN(env *config.EnviornmentVariable) string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		env.DB_HOST,
		env.DB_USER_NAME,
		env.DB_PASSWORD,
		env.DB_NAME,
		env.DB_PORT,
		env.DB_SSL_MODE,
	)
}

// dialector picks pgx (the default) or lib/pq by DB_DRIVER
func dialector(env *config.EnviornmentVariable) gorm.Dialector {
	if env.DB_DRIVER == "pq" {
		return pqDialector(DSN(env))
	}
	return postgres.Open(DSN(env))
}

// gormLogger sends GORM's SQL log through zerolog. Production only reports
// errors; slow queries are always flagged.
func gormLogger(env *config.EnviornmentVariable) logger.Interface {
	zl := applog.With("gorm")
	level := logger.Warn
	if env.GO_ENV == "production" {
		level = logger.Error
	} else if env.LOG_LEVEL == "debug" {
		level = logger.Info
	}
	return logger.New(stdlog.New(zl, "", 0), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// StartGORM initializes a GORM connection to PostgreSQL
func StartGORM() (*GORMStore, error) {
	getEnv, err := config.Get()
	if err != nil {
		return nil, err
	}
	log := applog.With("database")

	db, err := gorm.Open(dialector(getEnv), &gorm.Config{
		Logger:      gormLogger(getEnv),
		PrepareStmt: true,
	})
	if err != nil {
		log.Error().Err(err).Str("driver", getEnv.DB_DRIVER).Msg("Unable to connect to PostgreSQL with GORM")
		return nil, err
	}

	// Get underlying *sql.DB to configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Info().Str("driver", getEnv.DB_DRIVER).Msg("Connected to PostgreSQL")

	return &GORMStore{db: db}, nil
}

// Init runs the AutoMigrate to create/update tables
func (s *GORMStore) Init() error {
	log := applog.With("database")
	log.Info().Msg("Running GORM AutoMigrate")

	err := s.db.AutoMigrate(
		// Catalog
		&model.University{},
		&model.Course{},
		&model.Bursary{},
		&model.Career{},
		&model.Residence{},

		// Students and their submissions
		&model.Student{},
		&model.QuizResponse{},

		// Admissions
		&model.Application{},
		&model.Offer{},
		&model.OfferDocument{},

		// Background jobs
		&model.CronJobLog{},
	)

	if err != nil {
		log.Error().Err(err).Msg("AutoMigrate failed")
		return err
	}

	log.Info().Msg("GORM AutoMigrate completed")
	return nil
}

// Close closes the database connection
func (s *GORMStore) Close() error {
	log := applog.With("database")
	log.Info().Msg("Closing PostgreSQL connection")
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetDB returns the GORM DB instance for use in repositories/handlers
func (s *GORMStore) GetDB() *gorm.DB {
	return s.db
}

// HealthCheck verifies the database connection is alive
func (s *GORMStore) HealthCheck() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
