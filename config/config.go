package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Logging configuration
	LogLevel  string `validate:"oneof=trace debug info warn error fatal panic"`
	LogFormat string `validate:"oneof=text json"`

	// Output configuration
	Locale string `validate:"required,bcp47_language_tag"` // Number formatting locale, e.g. "ko-KR"

	// Ticket configuration
	ManualTickets string // Optional ';' separated tickets used instead of random generation

	// Metrics configuration
	MetricsFile string // Optional path for a Prometheus textfile written when a game ends

	// Environment
	Environment string `validate:"oneof=development production test"`
}

var (
	instance *Config
	loadErr  error
	once     sync.Once
	mu       sync.Mutex // Protects instance for test setup

	validate = validator.New()
)

// Get returns the global configuration instance and panics if it cannot be loaded
func Get() *Config {
	cfg, err := Resolve()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// Resolve returns the global configuration instance, loading it on first use
func Resolve() (*Config, error) {
	mu.Lock()
	defer mu.Unlock()

	// If instance is already set (e.g., by tests), return it
	if instance != nil {
		return instance, nil
	}

	once.Do(func() {
		instance, loadErr = Load()
	})
	if loadErr != nil {
		return nil, loadErr
	}
	return instance, nil
}

// Load reads configuration from a .env file (if present) and environment variables
func Load() (*Config, error) {
	// Real environment variables win over the .env file
	_ = godotenv.Load()

	config := &Config{
		LogLevel:      getEnvWithDefault("LOTTO_LOG_LEVEL", "info"),
		LogFormat:     getEnvWithDefault("LOTTO_LOG_FORMAT", "text"),
		Locale:        getEnvWithDefault("LOTTO_LOCALE", "ko-KR"),
		ManualTickets: os.Getenv("LOTTO_MANUAL_TICKETS"),
		MetricsFile:   os.Getenv("LOTTO_METRICS_FILE"),
		Environment:   getEnvWithDefault("ENVIRONMENT", "development"),
	}

	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// getEnvWithDefault returns the environment variable value or a default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Test helpers - only use in tests

// SetTestConfig overrides the global config instance for testing
func SetTestConfig(testConfig *Config) {
	mu.Lock()
	defer mu.Unlock()
	instance = testConfig
}

// ResetConfig resets the global config instance and sync.Once for testing
func ResetConfig() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
	loadErr = nil
	once = sync.Once{}
}

// NewTestConfig creates a minimal config suitable for unit tests
func NewTestConfig() *Config {
	return &Config{
		LogLevel:    "error",
		LogFormat:   "text",
		Locale:      "ko-KR",
		Environment: "test",
	}
}
