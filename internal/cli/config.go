package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ServerConfig holds server settings persisted to disk. Flags override
// whatever the file says.
type ServerConfig struct {
	Port     int    `yaml:"port,omitempty"`
	DevMode  bool   `yaml:"dev_mode,omitempty"`
	PageSize int    `yaml:"page_size,omitempty"`
	DBPath   string `yaml:"db_path,omitempty"`
}

// configPath returns the path to the server config file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "cgids", "config.yaml"), nil
}

// loadConfig reads the server config from disk.
// Returns a zero-value config if the file doesn't exist.
func loadConfig() (ServerConfig, error) {
	path, err := configPath()
	if err != nil {
		return ServerConfig{}, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return ServerConfig{}, nil
	}
	if err != nil {
		return ServerConfig{}, fmt.Errorf("reading config: %w", err)
	}

	var cfg ServerConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ServerConfig{}, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}
