package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
)

// Config holds all application configuration
type Config struct {
	// Simulation configuration
	DefaultRounds    int // Rounds to play when none are requested
	DoorCount        int // Doors per round
	Workers          int // Parallel round workers (1 = sequential)
	ProgressInterval int // Rounds between progress events (0 disables)

	// Report configuration
	ReportPrecision int // Decimals in the proportions table

	// Logging configuration
	LogLevel string // logrus level name

	// OpenTelemetry configuration
	OTelEnabled              bool
	OTelServiceName          string
	OTelExporterType         string // "console", "otlp" or "none"
	OTelOTLPEndpoint         string
	OTelExportIntervalMillis int

	// Environment
	Environment string // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
	mu       sync.Mutex // Protects instance for test setup
)

// Get returns the global configuration instance
func Get() *Config {
	mu.Lock()
	defer mu.Unlock()

	// If instance is already set (e.g., by tests), return it
	if instance != nil {
		return instance
	}

	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		// Simulation settings with defaults
		DefaultRounds:    100,
		DoorCount:        3,
		Workers:          1,
		ProgressInterval: 1000,

		// Report
		ReportPrecision: 2,

		// Logging
		LogLevel: getEnvWithDefault("LOG_LEVEL", "info"),

		// OpenTelemetry
		OTelEnabled:              os.Getenv("OTEL_ENABLED") == "true",
		OTelServiceName:          getEnvWithDefault("OTEL_SERVICE_NAME", "montyhall"),
		OTelExporterType:         getEnvWithDefault("OTEL_EXPORTER_TYPE", "none"),
		OTelOTLPEndpoint:         getEnvWithDefault("OTEL_OTLP_ENDPOINT", "localhost:4317"),
		OTelExportIntervalMillis: 10000,

		// Environment
		Environment: os.Getenv("ENVIRONMENT"),
	}

	// Override defaults if environment variables are set
	if rounds := os.Getenv("DEFAULT_ROUNDS"); rounds != "" {
		if parsed, err := strconv.Atoi(rounds); err == nil {
			config.DefaultRounds = parsed
		}
	}
	if doors := os.Getenv("DOOR_COUNT"); doors != "" {
		if parsed, err := strconv.Atoi(doors); err == nil {
			config.DoorCount = parsed
		}
	}
	if workers := os.Getenv("SIM_WORKERS"); workers != "" {
		if parsed, err := strconv.Atoi(workers); err == nil {
			config.Workers = parsed
		}
	}
	if interval := os.Getenv("PROGRESS_INTERVAL"); interval != "" {
		if parsed, err := strconv.Atoi(interval); err == nil {
			config.ProgressInterval = parsed
		}
	}
	if precision := os.Getenv("REPORT_PRECISION"); precision != "" {
		if parsed, err := strconv.Atoi(precision); err == nil {
			config.ReportPrecision = parsed
		}
	}
	if millis := os.Getenv("OTEL_EXPORT_INTERVAL_MILLIS"); millis != "" {
		if parsed, err := strconv.Atoi(millis); err == nil {
			config.OTelExportIntervalMillis = parsed
		}
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate configuration
		if config.DefaultRounds < 1 {
			return nil, fmt.Errorf("DEFAULT_ROUNDS must be at least 1")
		}
		if config.Workers < 1 {
			return nil, fmt.Errorf("SIM_WORKERS must be at least 1")
		}
		if config.ReportPrecision < 0 {
			return nil, fmt.Errorf("REPORT_PRECISION must not be negative")
		}
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
// This should only be called from test files
func SetTestConfig(testConfig *Config) {
	mu.Lock()
	defer mu.Unlock()
	instance = testConfig
}

// ResetConfig resets the global config instance and sync.Once for testing
// This should only be called from test files
func ResetConfig() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
	once = sync.Once{}
}

// NewTestConfig creates a minimal config suitable for unit tests
func NewTestConfig() *Config {
	return &Config{
		Environment:      "test",
		DefaultRounds:    100,
		DoorCount:        3,
		Workers:          1,
		ProgressInterval: 0, // No progress events in tests
		ReportPrecision:  2,
		LogLevel:         "error",
		OTelServiceName:  "montyhall-test",
		OTelExporterType: "none",
	}
}
