package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"
	"strconv"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	tinterrors "github.com/alexisbeaulieu97/tint/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig reads the YAML file at path, fills unset fields from Default
// and validates the result. Unknown keys are rejected so typos surface as
// parse errors with a line number.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, tinterrors.NewParseError(path, 0, err)
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, tinterrors.NewParseError(path, extractLine(err), err)
	}

	if cfg.Preference.Backend != "" && cfg.Preference.Path == "" {
		cfg.Preference.Path = DefaultPreferencePath(cfg.Preference.Backend)
	}
	if err := mergo.Merge(&cfg, Default()); err != nil {
		return nil, tinterrors.NewParseError(path, 0, fmt.Errorf("apply defaults: %w", err))
	}
	cfg.Preference.Path = ExpandPath(cfg.Preference.Path)
	cfg.Log.File = ExpandPath(cfg.Log.File)

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load parses path. When path does not exist and missingOK is set the
// defaults are returned instead.
func Load(path string, missingOK bool) (*Config, error) {
	cfg, err := ParseConfig(path)
	if err == nil {
		return cfg, nil
	}
	if missingOK && errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return nil, err
}

// Override merges the non-empty fields of override into cfg and validates
// the result. Flag and environment values reach the configuration this way.
func Override(cfg *Config, override Config) error {
	if cfg == nil {
		return tinterrors.NewValidationError("config", "configuration is nil", nil)
	}
	if err := mergo.Merge(cfg, override, mergo.WithOverride); err != nil {
		return tinterrors.NewValidationError("config", "failed to merge overrides", err)
	}
	cfg.Preference.Path = ExpandPath(cfg.Preference.Path)
	return ValidateConfig(cfg)
}

// extractLine returns the first line number yaml.v3 reports in err, or 0.
func extractLine(err error) int {
	if err == nil {
		return 0
	}
	m := yamlLineRegex.FindStringSubmatch(err.Error())
	if m == nil {
		return 0
	}
	line, convErr := strconv.Atoi(m[1])
	if convErr != nil {
		return 0
	}
	return line
}
