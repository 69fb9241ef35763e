// Package presentation implements the live token registry rendered output
// reads from.
package presentation

import (
	"sort"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tint/internal/ports"
)

// Snapshot is a point-in-time copy of the registry.
type Snapshot struct {
	Tokens map[string]string `json:"tokens"`
	Dark   bool              `json:"dark"`
}

// Names returns the snapshot's token names sorted alphabetically.
func (s Snapshot) Names() []string {
	names := make([]string, 0, len(s.Tokens))
	for name := range s.Tokens {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Registry stores token values and the dark flag. Every write is immediately
// visible to readers; concurrent writers are ordered by the mutex and the
// last write wins.
type Registry struct {
	mu       sync.RWMutex
	tokens   map[string]string
	dark     bool
	renderer *lipgloss.Renderer
}

// Option configures a Registry.
type Option func(*Registry)

// WithRenderer keeps renderer's dark-background flag in step with the
// registry's dark flag, so lipgloss.AdaptiveColor picks the matching side.
func WithRenderer(renderer *lipgloss.Renderer) Option {
	return func(r *Registry) {
		r.renderer = renderer
	}
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{tokens: make(map[string]string)}
	for _, opt := range opts {
		opt(r)
	}
	if r.renderer != nil {
		r.renderer.SetHasDarkBackground(false)
	}
	return r
}

// SetToken stores value under name.
func (r *Registry) SetToken(name, value string) {
	r.mu.Lock()
	r.tokens[name] = value
	r.mu.Unlock()
}

// Token returns the value stored under name.
func (r *Registry) Token(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	value, ok := r.tokens[name]
	return value, ok
}

// SetDark updates the dark flag and the bound renderer, if any.
func (r *Registry) SetDark(dark bool) {
	r.mu.Lock()
	r.dark = dark
	renderer := r.renderer
	r.mu.Unlock()

	if renderer != nil {
		renderer.SetHasDarkBackground(dark)
	}
}

// Dark reports whether dark mode is active.
func (r *Registry) Dark() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.dark
}

// Renderer returns the bound renderer, or the lipgloss default renderer.
func (r *Registry) Renderer() *lipgloss.Renderer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.renderer == nil {
		return lipgloss.DefaultRenderer()
	}
	return r.renderer
}

// Snapshot returns a copy of the current state.
func (r *Registry) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tokens := make(map[string]string, len(r.tokens))
	for k, v := range r.tokens {
		tokens[k] = v
	}
	return Snapshot{Tokens: tokens, Dark: r.dark}
}

var _ ports.PresentationRegistry = (*Registry)(nil)
