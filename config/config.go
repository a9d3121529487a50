package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// This function will Load the ENVIORNMENT VARIABLES from .env if GO_ENV variable is not set
func LoadENV() error {
	goEnv := os.Getenv("GO_ENV")

	if goEnv == "" || goEnv == "development" {
		err := godotenv.Load()
		if err != nil {
			return err
		}
	}

	return nil
}

type EnviornmentVariable struct {
	GO_ENV string
	PORT   int
	// Database
	DB_DRIVER     string // "pgx" (default) or "pq"
	DB_USER_NAME  string
	DB_PASSWORD   string
	DB_NAME       string
	DB_HOST       string
	DB_PORT       string
	DB_SSL_MODE   string
	STORE_TIMEOUT time.Duration
	// JWT verification of identity tokens
	JWT_SECRET string
	JWT_ISSUER string
	// Redis
	REDIS_URL string
	// Logging
	LOG_LEVEL  string
	LOG_FORMAT string
	// Offers
	THRESHOLDS_FILE string
	CRON_ENABLED    bool
	// Chat relay
	CHAT_BASE_URL       string
	CHAT_API_KEY        string
	CHAT_MODEL          string
	CHAT_FALLBACK_MODEL string
	CHAT_SYSTEM_PROMPT  string
	CHAT_RATE_LIMIT     int // Requests per student per minute
	// S3-compatible storage for offer documents
	SPACES_BUCKET     string
	SPACES_REGION     string
	SPACES_ENDPOINT   string
	SPACES_ACCESS_KEY string
	SPACES_SECRET_KEY string
	// CORS
	ALLOWED_ORIGINS string
}

func Get() (*EnviornmentVariable, error) {

	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		port = 8080
	}

	storeTimeout, err := time.ParseDuration(os.Getenv("STORE_TIMEOUT"))
	if err != nil || storeTimeout <= 0 {
		storeTimeout = 5 * time.Second
	}

	chatRateLimit, err := strconv.Atoi(os.Getenv("CHAT_RATE_LIMIT"))
	if err != nil || chatRateLimit <= 0 {
		chatRateLimit = 20
	}

	envVariables := &EnviornmentVariable{
		GO_ENV: os.Getenv("GO_ENV"),
		PORT:   port,
		// Database
		DB_DRIVER:     getEnv("DB_DRIVER", "pgx"),
		DB_USER_NAME:  os.Getenv("DB_USER_NAME"),
		DB_PASSWORD:   os.Getenv("DB_PASSWORD"),
		DB_NAME:       os.Getenv("DB_NAME"),
		DB_HOST:       getEnv("DB_HOST", "localhost"),
		DB_PORT:       getEnv("DB_PORT", "5432"),
		DB_SSL_MODE:   getEnv("DB_SSL_MODE", "disable"),
		STORE_TIMEOUT: storeTimeout,
		// JWT
		JWT_SECRET: os.Getenv("JWT_SECRET"),
		JWT_ISSUER: getEnv("JWT_ISSUER", "unimatch"),
		// Redis
		REDIS_URL: os.Getenv("REDIS_URL"),
		// Logging
		LOG_LEVEL:  getEnv("LOG_LEVEL", "info"),
		LOG_FORMAT: getEnv("LOG_FORMAT", "json"),
		// Offers
		THRESHOLDS_FILE: os.Getenv("THRESHOLDS_FILE"),
		CRON_ENABLED:    getBool("CRON_ENABLED", true),
		// Chat
		CHAT_BASE_URL:       getEnv("CHAT_BASE_URL", "https://inference.do-ai.run"),
		CHAT_API_KEY:        os.Getenv("CHAT_API_KEY"),
		CHAT_MODEL:          getEnv("CHAT_MODEL", "llama3.3-70b-instruct"),
		CHAT_FALLBACK_MODEL: getEnv("CHAT_FALLBACK_MODEL", "llama3-8b-instruct"),
		CHAT_SYSTEM_PROMPT:  os.Getenv("CHAT_SYSTEM_PROMPT"),
		CHAT_RATE_LIMIT:     chatRateLimit,
		// Storage
		SPACES_BUCKET:     os.Getenv("SPACES_BUCKET"),
		SPACES_REGION:     getEnv("SPACES_REGION", "fra1"),
		SPACES_ENDPOINT:   os.Getenv("SPACES_ENDPOINT"),
		SPACES_ACCESS_KEY: os.Getenv("SPACES_ACCESS_KEY"),
		SPACES_SECRET_KEY: os.Getenv("SPACES_SECRET_KEY"),
		// CORS
		ALLOWED_ORIGINS: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	return envVariables, nil
}

// AllowedOrigins splits ALLOWED_ORIGINS on commas
func (e *EnviornmentVariable) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(e.ALLOWED_ORIGINS, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
