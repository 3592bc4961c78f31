package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment    string
	Port           string
	DatasetPath    string
	ChartDataPath  string
	AllowedOrigins []string
}

// Load loads configuration from environment variables.
// It attempts to load a .env file first when not in production; in
// production the process environment is the only source.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production .env typically does not exist; not an error.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:   env,
		Port:          os.Getenv("PORT"),
		DatasetPath:   os.Getenv("DATASET_PATH"),
		ChartDataPath: os.Getenv("CHART_DATA_PATH"),
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	}

	// Defaults
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DatasetPath == "" {
		cfg.DatasetPath = "data/parsed_cru.json"
	}

	return cfg, nil
}
