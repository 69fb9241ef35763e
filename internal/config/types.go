package config

import (
	"os"
	"path/filepath"
	"strings"
)

// CurrentVersion is the configuration schema version this build reads.
const CurrentVersion = "1"

// Config is the on-disk configuration.
type Config struct {
	Version     string           `yaml:"version" validate:"required,oneof=1"`
	DefaultMode string           `yaml:"default_mode" validate:"omitempty,color_mode"`
	Preference  PreferenceConfig `yaml:"preference"`
	Overrides   OverridesConfig  `yaml:"overrides"`
	Log         LogConfig        `yaml:"log"`
}

// PreferenceConfig selects where the colour mode is persisted.
type PreferenceConfig struct {
	Backend string `yaml:"backend" validate:"required,oneof=memory file sqlite none"`
	Path    string `yaml:"path" validate:"required_if=Backend file,required_if=Backend sqlite"`
}

// OverridesConfig holds per-mode token overrides applied on top of the
// canonical sets.
type OverridesConfig struct {
	Light map[string]string `yaml:"light" validate:"omitempty,dive,keys,token_name,endkeys,token_value"`
	Dark  map[string]string `yaml:"dark" validate:"omitempty,dive,keys,token_name,endkeys,token_value"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level      string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" validate:"gte=0"`
	MaxBackups int    `yaml:"max_backups" validate:"gte=0"`
	MaxAgeDays int    `yaml:"max_age_days" validate:"gte=0"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Version:     CurrentVersion,
		DefaultMode: "system",
		Preference: PreferenceConfig{
			Backend: "file",
			Path:    DefaultPreferencePath("file"),
		},
		Log: LogConfig{Level: "warn"},
	}
}

// DefaultDir returns the per-user configuration directory for tint.
func DefaultDir() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return ".tint"
		}
		return filepath.Join(home, ".config", "tint")
	}
	return filepath.Join(dir, "tint")
}

// DefaultPreferencePath returns the store location used for backend when the
// configuration names the backend without a path. Backends that keep nothing
// on disk get an empty path.
func DefaultPreferencePath(backend string) string {
	switch strings.ToLower(backend) {
	case "file":
		return filepath.Join(DefaultDir(), "preferences.yaml")
	case "sqlite", "sqlite3":
		return filepath.Join(DefaultDir(), "preferences.db")
	default:
		return ""
	}
}

// DefaultPath returns the configuration file read when --config is not given.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), "config.yaml")
}

// ExpandPath replaces a leading "~" with the user's home directory.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
