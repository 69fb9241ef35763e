package theme

import (
	"fmt"
	"strings"
)

// ColorMode is the light/dark/system preference governing the active token set.
type ColorMode string

const (
	ColorModeLight  ColorMode = "light"
	ColorModeDark   ColorMode = "dark"
	ColorModeSystem ColorMode = "system"
)

// PreferenceKey is the persisted slot holding the color mode.
const PreferenceKey = "color-mode"

// ColorModes lists the valid modes.
func ColorModes() []ColorMode {
	return []ColorMode{ColorModeLight, ColorModeDark, ColorModeSystem}
}

// Valid reports whether m is one of the three literals.
func (m ColorMode) Valid() bool {
	switch m {
	case ColorModeLight, ColorModeDark, ColorModeSystem:
		return true
	default:
		return false
	}
}

func (m ColorMode) String() string {
	return string(m)
}

// ParseColorMode accepts the three literals, case-insensitively and ignoring
// surrounding whitespace.
func ParseColorMode(raw string) (ColorMode, error) {
	mode := ColorMode(strings.ToLower(strings.TrimSpace(raw)))
	if !mode.Valid() {
		return "", fmt.Errorf("unknown color mode %q (want light, dark or system)", raw)
	}
	return mode, nil
}
