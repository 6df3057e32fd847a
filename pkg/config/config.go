package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	// DatabasePath is the SQLite file location. Defaults to
	// <user config dir>/meetnotes/meetnotes.db when empty.
	DatabasePath string `envconfig:"DB_PATH"`
	// ExportDir is the default destination for exported files. Defaults
	// to the current working directory when empty.
	ExportDir string `envconfig:"EXPORT_DIR" default:"."`
	// Debug enables verbose SQL and development logging
	Debug bool `envconfig:"DEBUG" default:"false"`

	Summarizer SummarizerConfig
}

// SummarizerConfig holds summarization capability configuration. An empty
// APIKey selects the on-device heuristic summarizer.
type SummarizerConfig struct {
	BaseURL    string `envconfig:"URL" default:"https://api.groq.com"`
	APIKey     string `envconfig:"API_KEY"`
	Model      string `envconfig:"MODEL" default:"llama-3.1-70b-versatile"`
	MaxBullets int    `envconfig:"MAX_BULLETS" default:"5"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var cfg Config
	if err := envconfig.Process("meetnotes", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if cfg.DatabasePath == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			dir = "."
		}
		cfg.DatabasePath = filepath.Join(dir, "meetnotes", "meetnotes.db")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Summarizer.MaxBullets <= 0 {
		return fmt.Errorf("MEETNOTES_SUMMARIZER_MAX_BULLETS must be positive")
	}
	return nil
}
