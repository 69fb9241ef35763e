package config

import "github.com/alexisbeaulieu97/tint/internal/domain/theme"

// ThemeOptions converts the configuration into engine options. The
// configuration is assumed to be valid.
func (c *Config) ThemeOptions() theme.Options {
	opts := theme.Options{
		LightOverrides: toThemeConfig(c.Overrides.Light),
		DarkOverrides:  toThemeConfig(c.Overrides.Dark),
	}
	if mode, err := theme.ParseColorMode(c.DefaultMode); err == nil {
		opts.DefaultMode = mode
	}
	return opts
}

func toThemeConfig(values map[string]string) theme.Config {
	if len(values) == 0 {
		return nil
	}
	out := make(theme.Config, len(values))
	for name, value := range values {
		out[theme.Token(name)] = value
	}
	return out
}
