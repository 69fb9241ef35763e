package theme

import (
	"context"

	"github.com/alexisbeaulieu97/tint/internal/ports"
)

// Dependencies carries the capabilities the engine may use. Any of them may
// be nil; a missing capability makes the matching reads fall back to safe
// defaults and the matching writes no-ops.
type Dependencies struct {
	Store    ports.PreferenceStore
	Signal   ports.SystemSignal
	Registry ports.PresentationRegistry
	Logger   ports.Logger
}

// Options tunes start-up behaviour. The zero value is valid.
type Options struct {
	// DefaultMode is used by Initialize when nothing valid is persisted.
	// Empty means follow GetSystemColorMode.
	DefaultMode ColorMode

	// LightOverrides and DarkOverrides are applied by Initialize on top of the
	// canonical set of the resolved side.
	LightOverrides Config
	DarkOverrides  Config
}

// Engine owns the process presentation state: the persisted color mode and
// the token values mirrored into the presentation registry.
//
// The engine never returns errors. Degraded conditions are logged and the
// operation falls back to a valid visual state.
type Engine struct {
	store    ports.PreferenceStore
	signal   ports.SystemSignal
	registry ports.PresentationRegistry
	logger   ports.Logger
	opts     Options
	ctx      context.Context
}

// NewEngine builds an Engine from the supplied capabilities.
func NewEngine(deps Dependencies, opts Options) *Engine {
	logger := deps.Logger
	if logger == nil {
		logger = nopLogger{}
	}
	return &Engine{
		store:    deps.Store,
		signal:   deps.Signal,
		registry: deps.Registry,
		logger:   logger.With("component", "theme.engine"),
		opts:     opts,
		ctx:      context.Background(),
	}
}

// WithContext returns a copy of the engine that logs with ctx, so entries
// carry the caller's correlation id.
func (e *Engine) WithContext(ctx context.Context) *Engine {
	if ctx == nil {
		return e
	}
	clone := *e
	clone.ctx = ctx
	return &clone
}

// Headless reports whether the engine has neither persistence nor a system signal.
func (e *Engine) Headless() bool {
	return e.store == nil && e.signal == nil
}

// GetSystemColorMode returns the persisted mode when it is one of the three
// literals, otherwise dark when the system signal prefers dark, otherwise light.
func (e *Engine) GetSystemColorMode() ColorMode {
	if e.Headless() {
		return ColorModeLight
	}

	if mode, ok := e.persisted(); ok {
		return mode
	}

	if e.prefersDark() {
		return ColorModeDark
	}
	return ColorModeLight
}

// SetColorMode persists mode and writes the effective dark flag into the
// registry. Calling it repeatedly with the same mode is idempotent.
func (e *Engine) SetColorMode(mode ColorMode) {
	if !mode.Valid() {
		e.logger.Warn(e.ctx, "ignoring unknown color mode", "mode", string(mode))
		return
	}
	e.setColorMode(mode, e.IsDark(mode))
}

func (e *Engine) setColorMode(mode ColorMode, dark bool) {
	if e.store != nil {
		if err := e.store.Save(PreferenceKey, string(mode)); err != nil {
			e.logger.Warn(e.ctx, "color mode not persisted", "mode", string(mode), "error", err)
		}
	}
	e.setDark(mode, dark)
}

func (e *Engine) setDark(mode ColorMode, dark bool) {
	if e.registry == nil {
		e.logger.Debug(e.ctx, "no presentation registry, dark flag not written", "mode", string(mode))
		return
	}
	e.registry.SetDark(dark)
	e.logger.Debug(e.ctx, "color mode set", "mode", string(mode), "dark", dark)
}

// ApplyTheme writes each non-empty value of tokens into the registry. Keys
// that are absent or empty are left untouched.
func (e *Engine) ApplyTheme(tokens Config) {
	if e.registry == nil {
		return
	}

	written := 0
	for _, token := range tokens.orderedKeys() {
		value := tokens[token]
		if value == "" {
			continue
		}
		e.registry.SetToken(string(token), value)
		written++
	}
	if written > 0 {
		e.logger.Debug(e.ctx, "theme tokens applied", "count", written)
	}
}

// ApplyBaseTheme replaces every registry token with the canonical set for
// mode and then persists mode. An empty mode means light. The system signal
// is read once per call.
func (e *Engine) ApplyBaseTheme(mode ColorMode) {
	mode = e.normalize(mode)
	dark := e.IsDark(mode)
	e.ApplyTheme(CanonicalConfig(dark))
	e.setColorMode(mode, dark)
}

// Initialize performs start-up: it resolves the mode, applies the canonical
// set for it plus any configured overrides, writes the dark flag, and
// returns the resolved mode. It never writes the persisted preference; only
// SetColorMode and ApplyBaseTheme do.
func (e *Engine) Initialize() ColorMode {
	mode := e.GetSystemColorMode()
	if _, ok := e.persisted(); !ok && e.opts.DefaultMode.Valid() {
		mode = e.opts.DefaultMode
	}
	mode = e.normalize(mode)

	dark := e.IsDark(mode)
	e.ApplyTheme(CanonicalConfig(dark))
	if dark {
		e.ApplyTheme(e.opts.DarkOverrides)
	} else {
		e.ApplyTheme(e.opts.LightOverrides)
	}
	e.setDark(mode, dark)

	e.logger.Info(e.ctx, "theme initialised", "mode", string(mode), "dark", dark, "headless", e.Headless())
	return mode
}

func (e *Engine) normalize(mode ColorMode) ColorMode {
	if mode == "" {
		return ColorModeLight
	}
	if !mode.Valid() {
		e.logger.Warn(e.ctx, "unknown color mode, using light", "mode", string(mode))
		return ColorModeLight
	}
	return mode
}

// IsDark resolves mode to the effective dark state. System is resolved
// against the live signal on every call.
func (e *Engine) IsDark(mode ColorMode) bool {
	switch mode {
	case ColorModeDark:
		return true
	case ColorModeSystem:
		return e.prefersDark()
	default:
		return false
	}
}

func (e *Engine) persisted() (ColorMode, bool) {
	if e.store == nil {
		return "", false
	}
	raw, ok, err := e.store.Load(PreferenceKey)
	if err != nil {
		e.logger.Debug(e.ctx, "color mode preference unreadable", "error", err)
		return "", false
	}
	if !ok {
		return "", false
	}
	mode := ColorMode(raw)
	if !mode.Valid() {
		e.logger.Debug(e.ctx, "ignoring invalid persisted color mode", "value", raw)
		return "", false
	}
	return mode, true
}

func (e *Engine) prefersDark() bool {
	if e.signal == nil {
		return false
	}
	dark, ok := e.signal.PrefersDark()
	return ok && dark
}

func (c Config) orderedKeys() []Token {
	keys := make([]Token, 0, len(c))
	for _, token := range tokens {
		if _, ok := c[token]; ok {
			keys = append(keys, token)
		}
	}
	for token := range c {
		if !token.Valid() {
			keys = append(keys, token)
		}
	}
	return keys
}

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...interface{}) {}
func (nopLogger) Info(context.Context, string, ...interface{})  {}
func (nopLogger) Warn(context.Context, string, ...interface{})  {}
func (nopLogger) Error(context.Context, string, ...interface{}) {}
func (n nopLogger) With(...interface{}) ports.Logger            { return n }
