// Package config handles the questlog configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the flat questlog configuration
type Config struct {
	Version string `json:"version"`
	Owner   string `json:"owner,omitempty"`  // default owner for tracked copies
	Listen  string `json:"listen,omitempty"` // http listen address for `questlog serve`
}

// DefaultListen is used when neither config nor flag sets an address.
const DefaultListen = ":8080"

// Dir returns the questlog config directory (~/.questlog).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".questlog"), nil
}

// Load reads config.json from the questlog config directory.
// A missing file is not an error; defaults are returned.
func Load() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(dir, "config.json"))
	if os.IsNotExist(err) {
		return &Config{Version: "1"}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Save writes config.json to the questlog config directory.
func Save(cfg *Config) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Owner resolves the acting owner: explicit value wins, then the config
// file, then $USER, then "default".
func Owner(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if cfg, err := Load(); err == nil && cfg.Owner != "" {
		return cfg.Owner
	}
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	return "default"
}

// Listen resolves the serve address: explicit value wins, then the config
// file, then DefaultListen.
func Listen(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if cfg, err := Load(); err == nil && cfg.Listen != "" {
		return cfg.Listen
	}
	return DefaultListen
}
