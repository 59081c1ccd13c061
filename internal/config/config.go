package config

import (
	"os"
	"path/filepath"

	"fieldcorr/internal/errors"
)

// Config represents the complete application configuration. It is an explicit
// value passed into entry points; there is no process-wide mutable state.
type Config struct {
	Working  WorkingConfig
	Database DatabaseConfig
	Server   ServerConfig
}

// WorkingConfig holds the working directory and the paths derived from it
type WorkingConfig struct {
	Dir        string
	DataFile   string
	ReportFile string
	HTMLFile   string
}

// DatabaseConfig holds the optional run-ledger connection settings
type DatabaseConfig struct {
	URL string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	workingDir := getEnvOrDefault("WORKING_DIR", "data/testing-input-output")

	config := &Config{
		Working: WorkingConfig{
			Dir:        workingDir,
			DataFile:   getEnvOrDefault("DATA_FILE", filepath.Join(workingDir, "field_data.csv")),
			ReportFile: filepath.Join(workingDir, "correlations.md"),
			HTMLFile:   filepath.Join(workingDir, "correlations.html"),
		},
		Database: DatabaseConfig{
			URL: getEnvOrDefault("DATABASE_URL", ""),
		},
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Working.Dir == "" {
		return errors.ConfigInvalid("working directory is required")
	}
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
