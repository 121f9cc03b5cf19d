package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	ServerPort string
	GinMode    string

	// Persistence. An empty MongoURI keeps submitted tasks in memory and an
	// empty RedisURI keeps sessions and the catalog cache in memory.
	MongoURI      string
	MongoDatabase string
	RedisURI      string

	JWTSecret  string
	JWTExpiry  time.Duration
	SessionTTL time.Duration

	S3Endpoint    string
	S3AccessKey   string
	S3SecretKey   string
	S3Bucket      string
	S3UseSSL      bool
	PresignExpiry time.Duration

	CatalogFile           string
	CatalogLatency        time.Duration
	CatalogCacheTTL       time.Duration
	CatalogAttemptTimeout time.Duration
	CatalogMaxAttempts    int

	NoiseSampleCount    int
	NoiseSampleInterval time.Duration
	NoiseSettleDelay    time.Duration

	ArchiveEnabled   bool
	ArchiveWorkers   int
	ArchiveQueueSize int
}

// Load reads configuration from .env file and environment variables
func Load() *Config {
	// Load .env file (ignore error if file doesn't exist - env vars may be set directly)
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		GinMode:    getEnv("GIN_MODE", "debug"),

		MongoURI:      getEnv("MONGO_URI", ""),
		MongoDatabase: getEnv("MONGO_DATABASE", "humanness"),
		RedisURI:      getEnv("REDIS_URI", ""),

		JWTSecret:  getEnvRequired("JWT_SECRET"),
		JWTExpiry:  parseDuration(getEnv("JWT_EXPIRY", "24h")),
		SessionTTL: parseDuration(getEnv("SESSION_TTL", "24h")),

		S3Endpoint:    getEnv("S3_ENDPOINT", "localhost:9000"),
		S3AccessKey:   getEnv("S3_ACCESS_KEY", "minioadmin"),
		S3SecretKey:   getEnv("S3_SECRET_KEY", "minioadmin"),
		S3Bucket:      getEnv("S3_BUCKET", "task-audio"),
		S3UseSSL:      getEnv("S3_USE_SSL", "false") == "true",
		PresignExpiry: parseDuration(getEnv("PRESIGN_EXPIRY", "15m")),

		CatalogFile:           getEnv("CATALOG_FILE", ""),
		CatalogLatency:        parseDuration(getEnv("CATALOG_LATENCY", "500ms")),
		CatalogCacheTTL:       parseDuration(getEnv("CATALOG_CACHE_TTL", "10m")),
		CatalogAttemptTimeout: parseDuration(getEnv("CATALOG_ATTEMPT_TIMEOUT", "2s")),
		CatalogMaxAttempts:    parseInt(getEnv("CATALOG_MAX_ATTEMPTS", "3")),

		NoiseSampleCount:    parseInt(getEnv("NOISE_SAMPLE_COUNT", "10")),
		NoiseSampleInterval: parseDuration(getEnv("NOISE_SAMPLE_INTERVAL", "200ms")),
		NoiseSettleDelay:    parseDuration(getEnv("NOISE_SETTLE_DELAY", "500ms")),

		ArchiveEnabled:   getEnv("ARCHIVE_ENABLED", "true") == "true",
		ArchiveWorkers:   parseInt(getEnv("ARCHIVE_WORKERS", "2")),
		ArchiveQueueSize: parseInt(getEnv("ARCHIVE_QUEUE_SIZE", "100")),
	}

	return cfg
}

// getEnv reads an environment variable with a fallback default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvRequired reads an environment variable and exits if not set
func getEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("Required environment variable %s is not set", key)
	}
	return value
}

// parseDuration parses a duration string, exits on error
func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		log.Fatalf("Invalid duration format: %s", s)
	}
	return d
}

// parseInt parses a non-negative integer, exits on error
func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		log.Fatalf("Invalid integer: %s", s)
	}
	return n
}
