package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything resolved once at process start.
type Config struct {
	// APIBaseURL is where the CarbonWise analysis backend lives.
	APIBaseURL string

	// RequestTimeout bounds each HTTP call. The workflow itself offers no
	// cancellation, so this is the only thing stopping a hung request.
	RequestTimeout time.Duration

	// WebPort is the listen port for --web mode.
	WebPort string
}

// Load reads configuration from the environment, with a .env file as an
// optional overlay for local development.
func Load() (*Config, error) {
	// Ignore a missing .env; production sets real env vars.
	_ = godotenv.Load()

	timeoutSecs, err := strconv.Atoi(getEnvOrDefault("CARBONWISE_TIMEOUT_SECONDS", "120"))
	if err != nil {
		return nil, fmt.Errorf("invalid CARBONWISE_TIMEOUT_SECONDS: %w", err)
	}
	if timeoutSecs <= 0 {
		return nil, fmt.Errorf("CARBONWISE_TIMEOUT_SECONDS must be positive")
	}

	cfg := &Config{
		APIBaseURL:     getEnvOrDefault("CARBONWISE_API_URL", "http://localhost:8000"),
		RequestTimeout: time.Duration(timeoutSecs) * time.Second,
		WebPort:        getEnvOrDefault("CARBONWISE_WEB_PORT", "8080"),
	}

	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("CARBONWISE_API_URL must not be empty")
	}
	return cfg, nil
}

// MustLoad is like Load but exits the process on error. Used in main()
// where failing fast beats limping along half-configured.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// getEnvOrDefault returns the env value or a default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
