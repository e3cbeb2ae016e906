package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the process settings read from the environment
type Config struct {
	Env             string
	LogLevel        string
	HTTPAddr        string
	GRPCAddr        string
	MaxInflight     int
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	SeedAccounts    string // e.g. "alice:100.00,bob"
}

// Load reads an optional .env file and returns the Config.
// Variables already present in the environment take precedence over the file.
// The returned bool reports whether a .env file was loaded.
func Load() (*Config, bool) {
	loaded := godotenv.Load() == nil

	return &Config{
		Env:             getEnv("ENV", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		HTTPAddr:        getEnv("HTTP_ADDR", ":8080"),
		GRPCAddr:        getEnv("GRPC_ADDR", ":9090"),
		MaxInflight:     getIntEnv("HTTP_MAX_INFLIGHT", 64),
		RequestTimeout:  getDurationEnv("REQUEST_TIMEOUT", 5*time.Second),
		ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 10*time.Second),
		SeedAccounts:    getEnv("LEDGER_SEED_ACCOUNTS", ""),
	}, loaded
}

// IsProduction reports whether the process runs with ENV=production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

// getIntEnv falls back on unset, malformed or non-positive values
func getIntEnv(key string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
