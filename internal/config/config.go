// Package config handles configuration for clippysay.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	apperrors "github.com/diogo/clippysay/internal/errors"
)

// HomeEnv overrides the configuration directory when set
const HomeEnv = "CLIPPYSAY_HOME"

// Config represents the user configuration
type Config struct {
	// Wrap is the column at which message text is word wrapped before it is
	// framed. Zero keeps the text as given.
	Wrap int `json:"wrap"`
	// MascotPath points to a text file used in place of the built-in mascot.
	MascotPath      string `json:"mascot_path,omitempty"`
	CopyToClipboard bool   `json:"copy_to_clipboard"`
	// Verbose prints input and layout details to stderr.
	Verbose bool `json:"verbose"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Wrap:            0,
		MascotPath:      "",
		CopyToClipboard: false,
		Verbose:         false,
	}
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(home, ".clippysay"), nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// LoadConfig loads the configuration from disk
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	configPath, err := GetConfigPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults if config doesn't exist
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Wrap < 0 {
		return DefaultConfig(), apperrors.NewConfigError("wrap", "must not be negative")
	}

	return cfg, nil
}

// SaveConfig saves the configuration to disk
func SaveConfig(cfg Config) error {
	configDir, err := EnsureConfigDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(configDir, "config.json")

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// setters maps each settable key to the function that parses and applies it
var setters = map[string]func(cfg *Config, value string) error{
	"wrap": func(cfg *Config, value string) error {
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return apperrors.NewConfigError("wrap", "must be a non-negative number")
		}
		cfg.Wrap = n
		return nil
	},
	"mascot_path": func(cfg *Config, value string) error {
		cfg.MascotPath = value
		return nil
	},
	"copy_to_clipboard": func(cfg *Config, value string) error {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return apperrors.NewConfigError("copy_to_clipboard", "must be true or false")
		}
		cfg.CopyToClipboard = b
		return nil
	},
	"verbose": func(cfg *Config, value string) error {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return apperrors.NewConfigError("verbose", "must be true or false")
		}
		cfg.Verbose = b
		return nil
	},
}

// Keys returns the settable configuration keys in sorted order
func Keys() []string {
	keys := make([]string, 0, len(setters))
	for k := range setters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set parses value and stores it under key in cfg
func Set(cfg *Config, key, value string) error {
	set, ok := setters[strings.ToLower(key)]
	if !ok {
		return apperrors.NewConfigError(key, fmt.Sprintf("unknown key (valid keys: %s)", strings.Join(Keys(), ", ")))
	}
	return set(cfg, strings.TrimSpace(value))
}
