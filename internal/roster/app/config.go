package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer       string // Optional: issuer claim for session tokens (default: roster)
	DatabaseFile string // Optional: path to SQLite database file (default: ./roster.db)
	PepperFile   string // Optional: path to pepper file for password hashing (default: ./pepper)
	SecretFile   string // Optional: path to JWT signing secret file (default: ./jwt-secret)

	AccessTokenTTL       time.Duration // Session token lifetime (default: 24h)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Expired-invite sweep interval (default: 1h)
}

func LoadConfig() Config {
	return Config{
		Issuer:               getEnvOrDefault("ROSTER_ISSUER", "roster"),
		DatabaseFile:         getEnvOrDefault("ROSTER_DATABASE_FILE", "roster.db"),
		PepperFile:           getEnvOrDefault("ROSTER_PEPPER_FILE", "pepper"),
		SecretFile:           getEnvOrDefault("ROSTER_SECRET_FILE", "jwt-secret"),
		AccessTokenTTL:       getEnvDurationOrDefault("ROSTER_ACCESS_TOKEN_TTL", 24*time.Hour),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
