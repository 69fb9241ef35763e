package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tint/internal/domain/variant"
)

// headerSpec declares the page header's variant axes.
var headerSpec = variant.Spec{
	Base: "bg-background text-foreground border-b border-primary py-1",
	Axes: []variant.Axis{{
		Name:    "align",
		Default: "right",
		Values: map[string]string{
			"left":   "justify-start",
			"center": "justify-center",
			"right":  "justify-end",
		},
	}},
}

const headerBrandClasses = "text-primary bold uppercase"

// Header is the top bar: brand on the left, navigation items after it.
type Header struct {
	base
	brand string
	icon  string
	nav   []string
	align string
	width int
}

// NewHeader creates a header.
func NewHeader(brand string, nav ...string) *Header {
	return &Header{brand: brand, nav: nav, width: 80}
}

// WithIcon sets the glyph drawn before the brand.
func (h *Header) WithIcon(icon string) *Header {
	h.icon = icon
	return h
}

// WithAlign positions the navigation: left, center or right.
func (h *Header) WithAlign(align string) *Header {
	h.align = align
	return h
}

// WithWidth sets the header width.
func (h *Header) WithWidth(width int) *Header {
	h.width = width
	return h
}

// WithClass appends caller classes.
func (h *Header) WithClass(class string) *Header {
	h.class = class
	return h
}

// WithStylesheet renders through sheet instead of the shared stylesheet.
func (h *Header) WithStylesheet(sheet Stylesheet) *Header {
	h.sheet = sheet
	return h
}

func (h *Header) chosen() map[string]string {
	return map[string]string{"align": h.align}
}

// Classes returns the resolved class string.
func (h *Header) Classes() string {
	return variant.Resolve(headerSpec, h.chosen(), h.class)
}

// View renders the header.
func (h *Header) View() string {
	sheet := h.stylesheet()

	brand := h.brand
	if h.icon != "" {
		brand = h.icon + " " + brand
	}
	brand = sheet.Style(headerBrandClasses).Render(brand)
	nav := strings.Join(h.nav, "  ")

	style := sheet.Style(h.Classes())
	inner := h.width - style.GetHorizontalFrameSize()
	gap := inner - lipgloss.Width(brand) - lipgloss.Width(nav)
	if gap < 1 {
		gap = 1
	}

	var line string
	switch headerSpec.Selection(h.chosen())["align"] {
	case "left":
		line = brand + "  " + nav
	case "center":
		left := gap / 2
		line = brand + strings.Repeat(" ", left) + nav
	default:
		line = brand + strings.Repeat(" ", gap) + nav
	}

	if h.width > 0 {
		style = style.Width(h.width)
	}
	return style.Render(line)
}
