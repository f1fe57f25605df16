package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// PipelineConfig holds the runtime settings of the cleaning pipeline.
type PipelineConfig struct {
	// Directory holding the raw CSV extracts
	InputDir string `json:"input_dir"`

	// Directory the cleaned star-schema files are written to
	OutputDir string `json:"output_dir"`

	// Directory the renamed, human-readable copies are written to
	RenamedDir string `json:"renamed_dir"`

	// Directory for the dated pipeline log files
	LogDir string `json:"log_dir"`

	// Interval between runs in scheduled mode
	RunInterval time.Duration `json:"run_interval"`

	// Enables debug-level logging
	EnableDetailedLogging bool `json:"enable_detailed_logging"`
}

// Default configuration values
var DefaultConfig = PipelineConfig{
	InputDir:              "data",
	OutputDir:             "cleaned",
	RenamedDir:            "renamed",
	LogDir:                ".",
	RunInterval:           24 * time.Hour,
	EnableDetailedLogging: false,
}

// GetConfig returns the pipeline configuration: the defaults overridden by
// environment variables. A .env file in the working directory is honored if
// present.
func GetConfig() PipelineConfig {
	// Missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg := DefaultConfig

	if v := os.Getenv("ADVANCEMENT_INPUT_DIR"); v != "" {
		cfg.InputDir = v
	}
	if v := os.Getenv("ADVANCEMENT_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("ADVANCEMENT_RENAMED_DIR"); v != "" {
		cfg.RenamedDir = v
	}
	if v := os.Getenv("ADVANCEMENT_LOG_DIR"); v != "" {
		cfg.LogDir = v
	}
	if v := os.Getenv("ADVANCEMENT_RUN_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RunInterval = d
		}
	}
	if v := os.Getenv("ADVANCEMENT_DETAILED_LOGGING"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.EnableDetailedLogging = b
		}
	}

	return cfg
}
