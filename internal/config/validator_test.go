package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	tinterrors "github.com/alexisbeaulieu97/tint/pkg/errors"
)

func TestValidateConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(cfg *Config)
		wantField string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{
			name:      "unknown default mode",
			mutate:    func(cfg *Config) { cfg.DefaultMode = "Dark" },
			wantField: "default_mode",
		},
		{
			name:      "unknown backend",
			mutate:    func(cfg *Config) { cfg.Preference.Backend = "redis" },
			wantField: "preference.backend",
		},
		{
			name:      "file backend needs a path",
			mutate:    func(cfg *Config) { cfg.Preference.Path = "" },
			wantField: "preference.path",
		},
		{
			name: "memory backend needs no path",
			mutate: func(cfg *Config) {
				cfg.Preference.Backend = "memory"
				cfg.Preference.Path = ""
			},
		},
		{
			name:      "unknown token key",
			mutate:    func(cfg *Config) { cfg.Overrides.Light = map[string]string{"primry": "1 1% 1%"} },
			wantField: "overrides.light[primry]",
		},
		{
			name:      "unparsable token value",
			mutate:    func(cfg *Config) { cfg.Overrides.Dark = map[string]string{"primary": "blue-ish"} },
			wantField: "overrides.dark[primary]",
		},
		{
			name:      "colour token given a length",
			mutate:    func(cfg *Config) { cfg.Overrides.Dark = map[string]string{"primary": "0.5rem"} },
			wantField: "overrides.dark.primary",
		},
		{
			name:      "radius given a colour",
			mutate:    func(cfg *Config) { cfg.Overrides.Light = map[string]string{"radius": "#ff0000"} },
			wantField: "overrides.light.radius",
		},
		{
			name: "hex ansi and length values",
			mutate: func(cfg *Config) {
				cfg.Overrides.Light = map[string]string{"primary": "#3b82f6", "ring": "212", "radius": "0"}
			},
		},
		{
			name:      "negative rotation size",
			mutate:    func(cfg *Config) { cfg.Log.MaxSizeMB = -1 },
			wantField: "log.max_size_mb",
		},
		{
			name:      "unknown log level",
			mutate:    func(cfg *Config) { cfg.Log.Level = "trace" },
			wantField: "log.level",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tt.mutate(cfg)
			err := ValidateConfig(cfg)

			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}
			var validationErr *tinterrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestValidateConfigNil(t *testing.T) {
	t.Parallel()

	var validationErr *tinterrors.ValidationError
	require.ErrorAs(t, ValidateConfig(nil), &validationErr)
}
