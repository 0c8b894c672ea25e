// Package config handles global mnemo configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the global mnemo configuration.
type Config struct {
	// DefaultCollection is the name of the default collection (from
	// the Collections map).
	DefaultCollection string `toml:"default_collection"`

	// Collections is a map of collection names to file paths.
	Collections map[string]string `toml:"collections"`
}

// GetCollectionPath returns the path for a named collection.
// If name is empty, returns the default collection path.
func (c *Config) GetCollectionPath(name string) (string, error) {
	if name == "" {
		name = c.DefaultCollection
	}
	if name == "" {
		return "", fmt.Errorf("no default collection configured")
	}

	if c.Collections != nil {
		if path, ok := c.Collections[name]; ok {
			return path, nil
		}
	}
	return "", fmt.Errorf("collection '%s' not found in config", name)
}

// Load loads the configuration from the default location.
// Returns a default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath := DefaultPath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{}, nil
	}

	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &config, nil
}

// DefaultPath returns the default config file path.
// Checks ~/.config/mnemo/config.toml first (XDG style),
// then falls back to OS-specific location.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "mnemo", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "mnemo", "config.toml")
	}

	return filepath.Join(".", "config.toml")
}

// CreateDefault creates a default config file if it doesn't exist.
func CreateDefault() (string, error) {
	configPath := DefaultPath()

	if _, err := os.Stat(configPath); err == nil {
		return configPath, nil // Already exists
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	defaultConfig := `# mnemo Configuration

# Default collection name (must exist in [collections] below)
# default_collection = "personal"

# Named collections
# [collections]
# personal = "/path/to/personal.db"
# work = "/path/to/work.db"
`

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return configPath, nil
}
