// Package config resolves runtime settings: defaults, then an optional YAML
// file, then WEEKLY_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds every runtime setting of the weekly binary.
type Config struct {
	// DBPath is the SQLite file holding the key/value store.
	DBPath string `yaml:"db"`
	// LogUseCases enables structured use-case logging on stderr.
	LogUseCases bool `yaml:"log_use_cases"`
	// ReminderHours is the default look-ahead of the remind command.
	ReminderHours int `yaml:"reminder_hours"`
	// ExportFile is the default export destination.
	ExportFile string `yaml:"export_file"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig(home string) Config {
	return Config{
		DBPath:        filepath.Join(home, ".weekly", "weekly.db"),
		LogUseCases:   false,
		ReminderHours: 24,
		ExportFile:    "activities.txt",
	}
}

// DefaultConfigPath is where the YAML file is looked up when WEEKLY_CONFIG
// is unset.
func DefaultConfigPath(home string) string {
	return filepath.Join(home, ".weekly", "config.yaml")
}

// Load resolves the configuration for the current user.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	return LoadFrom(home)
}

// LoadFrom resolves the configuration with home as the user's home
// directory. A missing default config file is not an error; a missing file
// named by WEEKLY_CONFIG is.
func LoadFrom(home string) (Config, error) {
	cfg := DefaultConfig(home)

	path, explicit := os.Getenv("WEEKLY_CONFIG"), true
	if path == "" {
		path, explicit = DefaultConfigPath(home), false
	}
	if err := mergeFile(&cfg, path); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			err = nil
		}
		if err != nil {
			return Config{}, err
		}
	}

	if v := os.Getenv("WEEKLY_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("WEEKLY_LOG_USE_CASES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogUseCases = b
		}
	}
	if v := os.Getenv("WEEKLY_REMINDER_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ReminderHours = n
		}
	}

	cfg.DBPath = expandHome(cfg.DBPath, home)
	if cfg.ReminderHours <= 0 {
		cfg.ReminderHours = DefaultConfig(home).ReminderHours
	}
	return cfg, nil
}

// mergeFile overlays the fields present in the YAML file at path.
func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		return filepath.Join(home, rest)
	}
	return path
}
