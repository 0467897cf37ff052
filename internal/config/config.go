// Package config provides configuration management for the dashboard
// service. Values come from the environment (optionally seeded from a
// .env file) with sensible defaults for local use.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the service.
type Config struct {
	Server     ServerConfig
	Upload     UploadConfig
	Simulation SimulationConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// UploadConfig holds data-file upload limits.
type UploadConfig struct {
	MaxBytes int64
}

// SimulationConfig holds defaults for generation and analysis.
type SimulationConfig struct {
	DefaultCount   int
	DefaultBatches int
	DefaultBins    int
	Alpha          float64
}

// Load reads a .env file if present and builds the configuration from
// the environment with defaults.
func Load() *Config {
	// Missing .env is fine, the environment may be set directly.
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("STATLAB_PORT", "8080"),
			ReadTimeout:  getDuration("STATLAB_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDuration("STATLAB_WRITE_TIMEOUT", 30*time.Second),
		},
		Upload: UploadConfig{
			MaxBytes: getInt64("STATLAB_MAX_UPLOAD_BYTES", 16<<20),
		},
		Simulation: SimulationConfig{
			DefaultCount:   getInt("STATLAB_DEFAULT_COUNT", 100),
			DefaultBatches: getInt("STATLAB_DEFAULT_BATCHES", 5),
			DefaultBins:    getInt("STATLAB_DEFAULT_BINS", 10),
			Alpha:          getFloat("STATLAB_ALPHA", 0.05),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}

func getFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
