// Package stylesheet turns utility class strings into lipgloss styles.
//
// Classes are applied left to right, so a later class overrides an earlier
// one touching the same property. Colour classes look their token up in the
// presentation registry at render time, which keeps rendered output in step
// with the active theme. Classes the stylesheet does not understand are
// skipped.
package stylesheet

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tint/internal/ports"
)

// RadiusToken names the registry entry consulted by the bare "border" class.
const RadiusToken = "radius"

type rendererSource interface {
	Renderer() *lipgloss.Renderer
}

// Stylesheet resolves classes against a presentation registry.
type Stylesheet struct {
	registry ports.PresentationRegistry
	renderer *lipgloss.Renderer
}

// Option configures a Stylesheet.
type Option func(*Stylesheet)

// WithRenderer renders through renderer instead of the registry's renderer.
func WithRenderer(renderer *lipgloss.Renderer) Option {
	return func(s *Stylesheet) {
		s.renderer = renderer
	}
}

// New returns a stylesheet reading token values from registry. A nil
// registry resolves only palette colours.
func New(registry ports.PresentationRegistry, opts ...Option) *Stylesheet {
	s := &Stylesheet{registry: registry}
	for _, opt := range opts {
		opt(s)
	}
	if s.renderer == nil {
		if src, ok := registry.(rendererSource); ok {
			s.renderer = src.Renderer()
		}
	}
	if s.renderer == nil {
		s.renderer = lipgloss.DefaultRenderer()
	}
	return s
}

// Render styles strs with classes.
func (s *Stylesheet) Render(classes string, strs ...string) string {
	return s.Style(classes).Render(strs...)
}

// Style builds the style described by classes.
func (s *Stylesheet) Style(classes string) lipgloss.Style {
	style := s.renderer.NewStyle()
	bordered := false

	for _, class := range strings.Fields(classes) {
		if next, ok := s.applyBorder(style, class); ok {
			style = next
			bordered = class != "border-none"
			continue
		}
		style = s.apply(style, class)
	}

	if bordered && style.GetBorderStyle() == (lipgloss.Border{}) {
		style = style.BorderStyle(s.defaultBorder())
	}
	return style
}

// Color resolves a colour name: a token held by the registry or a palette
// entry such as "green-600". An opacity suffix ("primary/10") is dropped.
func (s *Stylesheet) Color(name string) (lipgloss.Color, bool) {
	if i := strings.IndexByte(name, '/'); i >= 0 {
		name = name[:i]
	}
	if s.registry != nil {
		if value, ok := s.registry.Token(name); ok {
			if c, ok := ParseColor(value); ok {
				return c, true
			}
		}
	}
	return paletteColor(name)
}

// Rounded reports whether the radius token asks for rounded corners.
func (s *Stylesheet) Rounded() bool {
	if s.registry == nil {
		return false
	}
	value, ok := s.registry.Token(RadiusToken)
	if !ok {
		return false
	}
	radius, ok := parseLength(value)
	return ok && radius > 0
}

func (s *Stylesheet) defaultBorder() lipgloss.Border {
	if s.Rounded() {
		return lipgloss.RoundedBorder()
	}
	return lipgloss.NormalBorder()
}

// applyBorder handles border shape and side classes. Border colour classes
// fall through to apply.
func (s *Stylesheet) applyBorder(style lipgloss.Style, class string) (lipgloss.Style, bool) {
	switch class {
	case "border":
		return style.BorderStyle(s.defaultBorder()), true
	case "border-normal", "rounded-none":
		return style.BorderStyle(lipgloss.NormalBorder()), true
	case "border-rounded", "rounded", "rounded-sm", "rounded-md", "rounded-lg", "rounded-xl", "rounded-full":
		return style.BorderStyle(lipgloss.RoundedBorder()), true
	case "border-thick":
		return style.BorderStyle(lipgloss.ThickBorder()), true
	case "border-double":
		return style.BorderStyle(lipgloss.DoubleBorder()), true
	case "border-hidden":
		return style.BorderStyle(lipgloss.HiddenBorder()), true
	case "border-none":
		return style.UnsetBorderStyle().
			UnsetBorderTop().UnsetBorderBottom().
			UnsetBorderLeft().UnsetBorderRight(), true
	case "border-t":
		return style.BorderTop(true), true
	case "border-b":
		return style.BorderBottom(true), true
	case "border-l":
		return style.BorderLeft(true), true
	case "border-r":
		return style.BorderRight(true), true
	}
	return style, false
}

func (s *Stylesheet) apply(style lipgloss.Style, class string) lipgloss.Style {
	switch class {
	case "bold", "font-bold", "font-semibold", "font-black":
		return style.Bold(true)
	case "font-medium", "font-normal":
		return style.Bold(false)
	case "italic":
		return style.Italic(true)
	case "underline":
		return style.Underline(true)
	case "no-underline":
		return style.Underline(false)
	case "faint", "opacity-50":
		return style.Faint(true)
	case "strikethrough", "line-through":
		return style.Strikethrough(true)
	case "reverse":
		return style.Reverse(true)
	case "blink", "animate-pulse":
		return style.Blink(true)
	case "uppercase":
		return style.Transform(strings.ToUpper)
	case "lowercase":
		return style.Transform(strings.ToLower)
	case "align-left", "text-left":
		return style.Align(lipgloss.Left)
	case "align-center", "text-center":
		return style.Align(lipgloss.Center)
	case "align-right", "text-right":
		return style.Align(lipgloss.Right)
	}

	if name, ok := strings.CutPrefix(class, "bg-"); ok {
		if c, ok := s.Color(name); ok {
			return style.Background(c)
		}
		return style
	}
	if name, ok := strings.CutPrefix(class, "text-"); ok {
		if c, ok := s.Color(name); ok {
			return style.Foreground(c)
		}
		return style
	}
	if name, ok := strings.CutPrefix(class, "border-"); ok {
		if c, ok := s.Color(name); ok {
			return style.BorderForeground(c)
		}
		return style
	}

	return applySize(style, class)
}

func applySize(style lipgloss.Style, class string) lipgloss.Style {
	i := strings.LastIndexByte(class, '-')
	if i <= 0 {
		return style
	}
	n, err := strconv.Atoi(class[i+1:])
	if err != nil || n < 0 {
		return style
	}

	switch class[:i] {
	case "p":
		return style.Padding(n)
	case "px":
		return style.PaddingLeft(n).PaddingRight(n)
	case "py":
		return style.PaddingTop(n).PaddingBottom(n)
	case "pt":
		return style.PaddingTop(n)
	case "pb":
		return style.PaddingBottom(n)
	case "pl":
		return style.PaddingLeft(n)
	case "pr":
		return style.PaddingRight(n)
	case "m":
		return style.Margin(n)
	case "mx":
		return style.MarginLeft(n).MarginRight(n)
	case "my":
		return style.MarginTop(n).MarginBottom(n)
	case "mt":
		return style.MarginTop(n)
	case "mb":
		return style.MarginBottom(n)
	case "ml":
		return style.MarginLeft(n)
	case "mr":
		return style.MarginRight(n)
	case "w":
		return style.Width(n)
	case "h":
		return style.Height(n)
	case "max-w":
		return style.MaxWidth(n)
	}
	return style
}
