// Package signal reports the host's light/dark preference.
package signal

import (
	"os"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/tint/internal/ports"
)

// EnvPrefersDark overrides every other source when set to a boolean.
const EnvPrefersDark = "TINT_PREFERS_DARK"

// EnvColorFGBG is set by rxvt-derived terminals as "fg;bg" or "fg;default;bg".
const EnvColorFGBG = "COLORFGBG"

// Static always reports the same answer.
type Static struct {
	Dark bool
	OK   bool
}

// PrefersDark implements ports.SystemSignal.
func (s Static) PrefersDark() (bool, bool) {
	return s.Dark, s.OK
}

// Freeze reads s once and returns that answer as a Static, so later reads
// never touch the underlying source. A nil s freezes to "unavailable".
func Freeze(s ports.SystemSignal) Static {
	if s == nil {
		return Static{}
	}
	dark, ok := s.PrefersDark()
	return Static{Dark: dark, OK: ok}
}

// Chain asks each signal in turn and returns the first answer with ok set.
type Chain []ports.SystemSignal

// PrefersDark implements ports.SystemSignal.
func (c Chain) PrefersDark() (bool, bool) {
	for _, s := range c {
		if s == nil {
			continue
		}
		if dark, ok := s.PrefersDark(); ok {
			return dark, true
		}
	}
	return false, false
}

// EnvSignal reads the preference from environment variables.
type EnvSignal struct {
	lookup func(string) (string, bool)
}

// NewEnvSignal reads the process environment.
func NewEnvSignal() *EnvSignal {
	return &EnvSignal{lookup: os.LookupEnv}
}

// NewEnvSignalFrom reads from env instead of the process environment.
func NewEnvSignalFrom(env map[string]string) *EnvSignal {
	return &EnvSignal{lookup: func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}}
}

// PrefersDark implements ports.SystemSignal.
func (s *EnvSignal) PrefersDark() (bool, bool) {
	if raw, ok := s.lookup(EnvPrefersDark); ok {
		if dark, err := strconv.ParseBool(strings.TrimSpace(raw)); err == nil {
			return dark, true
		}
	}
	if raw, ok := s.lookup(EnvColorFGBG); ok {
		return parseColorFGBG(raw)
	}
	return false, false
}

// parseColorFGBG treats background indexes 0-6 and 8 as dark, matching the
// convention used by vim and other terminal programs.
func parseColorFGBG(raw string) (bool, bool) {
	parts := strings.Split(strings.TrimSpace(raw), ";")
	if len(parts) < 2 {
		return false, false
	}
	bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1]))
	if err != nil || bg < 0 {
		return false, false
	}
	return bg <= 6 || bg == 8, true
}

var (
	_ ports.SystemSignal = Static{}
	_ ports.SystemSignal = Chain(nil)
	_ ports.SystemSignal = (*EnvSignal)(nil)
)
