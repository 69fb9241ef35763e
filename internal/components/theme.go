// Package components renders the UI kit on top of the stylesheet.
//
// Every component declares a variant.Spec, resolves the caller's choices into
// a class string and renders that string through a Stylesheet. Colours are
// therefore never hard-coded in a component; they follow whatever the theme
// engine last wrote into the presentation registry.
package components

import (
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tint/internal/domain/variant"
	"github.com/alexisbeaulieu97/tint/internal/stylesheet"
)

// Stylesheet turns a class string into a style.
type Stylesheet interface {
	Style(classes string) lipgloss.Style
}

// StylesheetManager coordinates access to the shared stylesheet.
type StylesheetManager struct {
	mu    sync.RWMutex
	sheet Stylesheet
}

// NewStylesheetManager allocates a manager holding sheet.
func NewStylesheetManager(sheet Stylesheet) *StylesheetManager {
	return &StylesheetManager{sheet: sheet}
}

// Set replaces the managed stylesheet.
func (m *StylesheetManager) Set(sheet Stylesheet) {
	m.mu.Lock()
	m.sheet = sheet
	m.mu.Unlock()
}

// Get returns the managed stylesheet.
func (m *StylesheetManager) Get() Stylesheet {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sheet
}

var defaultManager = NewStylesheetManager(stylesheet.New(nil))

// SetStylesheet replaces the stylesheet used by components that were not
// given one explicitly.
func SetStylesheet(sheet Stylesheet) {
	if sheet == nil {
		sheet = stylesheet.New(nil)
	}
	defaultManager.Set(sheet)
}

// CurrentStylesheet returns the shared stylesheet.
func CurrentStylesheet() Stylesheet {
	return defaultManager.Get()
}

// base carries the per-instance stylesheet override and extra classes.
type base struct {
	sheet Stylesheet
	class string
}

func (b base) stylesheet() Stylesheet {
	if b.sheet != nil {
		return b.sheet
	}
	return CurrentStylesheet()
}

func (b base) render(classes, content string) string {
	return b.stylesheet().Style(classes).Render(content)
}

// cn joins class lists.
func cn(classes ...string) string {
	return variant.Join(classes...)
}

// when returns class if cond holds.
func when(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}
