package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Auth Config
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"168h"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Domain Config
	DefaultAlertThreshold float64 `env:"DEFAULT_ALERT_THRESHOLD" envDefault:"0.7"`
	CoordinateTolerance   float64 `env:"COORDINATE_TOLERANCE" envDefault:"0.01"`
	// Whether deleting a risk zone also deletes its incidents and alerts.
	ZoneDeleteCascade bool `env:"ZONE_DELETE_CASCADE" envDefault:"false"`
}

// LoadConfig loads configuration from environment variables and an optional
// .env file.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		HTTPPort:              getEnv("HTTP_PORT", "8080"),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		RedisAddr:             getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:             os.Getenv("REDIS_PASSWORD"),
		RedisDB:               getEnvAsInt("REDIS_DB", 0),
		JWTSecret:             os.Getenv("JWT_SECRET"),
		TokenTTL:              getEnvAsDuration("TOKEN_TTL", 168*time.Hour),
		WebhookURL:            os.Getenv("WEBHOOK_URL"),
		WebhookSecret:         os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:        getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:     getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:      getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		DefaultAlertThreshold: getEnvAsFloat("DEFAULT_ALERT_THRESHOLD", 0.7),
		CoordinateTolerance:   getEnvAsFloat("COORDINATE_TOLERANCE", 0.01),
		ZoneDeleteCascade:     getEnvAsBool("ZONE_DELETE_CASCADE", false),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns an environment variable as int or a default.
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat returns an environment variable as float64 or a default.
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsBool returns an environment variable as bool or a default.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration returns an environment variable as time.Duration or a default.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
