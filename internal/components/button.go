package components

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tint/internal/domain/variant"
)

// ButtonVariant selects the button's emphasis.
type ButtonVariant string

const (
	ButtonVariantDefault     ButtonVariant = "default"
	ButtonVariantPrimary     ButtonVariant = "primary"
	ButtonVariantSecondary   ButtonVariant = "secondary"
	ButtonVariantDestructive ButtonVariant = "destructive"
	ButtonVariantOutline     ButtonVariant = "outline"
	ButtonVariantGhost       ButtonVariant = "ghost"
	ButtonVariantLink        ButtonVariant = "link"
	ButtonVariantSuccess     ButtonVariant = "success"
	ButtonVariantWarning     ButtonVariant = "warning"
	ButtonVariantNeutral     ButtonVariant = "neutral"
)

// ButtonSize selects the button's footprint.
type ButtonSize string

const (
	ButtonSizeDefault ButtonSize = "default"
	ButtonSizeSmall   ButtonSize = "sm"
	ButtonSizeLarge   ButtonSize = "lg"
	ButtonSizeIcon    ButtonSize = "icon"
)

// buttonSpec declares the button's variant axes.
var buttonSpec = variant.Spec{
	Base: "bold",
	Axes: []variant.Axis{
		{
			Name:    "variant",
			Default: string(ButtonVariantDefault),
			Values: map[string]string{
				string(ButtonVariantDefault):     "bg-primary text-primary-foreground",
				string(ButtonVariantPrimary):     "bg-primary text-primary-foreground",
				string(ButtonVariantSecondary):   "bg-secondary text-secondary-foreground",
				string(ButtonVariantDestructive): "bg-destructive text-destructive-foreground",
				string(ButtonVariantOutline):     "border border-input bg-background text-foreground",
				string(ButtonVariantGhost):       "text-foreground",
				string(ButtonVariantLink):        "text-primary underline",
				string(ButtonVariantSuccess):     "bg-green-600 text-white",
				string(ButtonVariantWarning):     "bg-yellow-500 text-gray-900",
				string(ButtonVariantNeutral):     "bg-gray-50 text-gray-900",
			},
		},
		{
			Name:    "size",
			Default: string(ButtonSizeDefault),
			Values: map[string]string{
				string(ButtonSizeDefault): "px-2",
				string(ButtonSizeSmall):   "px-1",
				string(ButtonSizeLarge):   "px-3 py-1",
				string(ButtonSizeIcon):    "px-1",
			},
		},
	},
}

// ButtonOptions defines the configuration options for a button.
type ButtonOptions struct {
	Variant  ButtonVariant
	Size     ButtonSize
	Disabled bool
	Focus    bool
	// Icon is drawn before the label, or instead of it at icon size.
	Icon string
	// Class is appended after the resolved classes.
	Class string
}

// Button represents a clickable button component.
type Button struct {
	base
	label   string
	options ButtonOptions
}

// NewButton creates a new button with the given label and options.
func NewButton(label string, opts ButtonOptions) *Button {
	return &Button{label: label, options: opts}
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(v ButtonVariant) *Button {
	b.options.Variant = v
	return b
}

// WithSize sets the button size.
func (b *Button) WithSize(size ButtonSize) *Button {
	b.options.Size = size
	return b
}

// WithDisabled sets the button disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.options.Disabled = disabled
	return b
}

// WithFocus sets the button focus state.
func (b *Button) WithFocus(focus bool) *Button {
	b.options.Focus = focus
	return b
}

// WithIcon sets the icon glyph.
func (b *Button) WithIcon(icon string) *Button {
	b.options.Icon = icon
	return b
}

// WithClass appends caller classes.
func (b *Button) WithClass(class string) *Button {
	b.options.Class = class
	return b
}

// WithStylesheet renders through sheet instead of the shared stylesheet.
func (b *Button) WithStylesheet(sheet Stylesheet) *Button {
	b.sheet = sheet
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// Options returns the button options.
func (b *Button) Options() ButtonOptions {
	return b.options
}

func (b *Button) chosen() map[string]string {
	return map[string]string{
		"variant": string(b.options.Variant),
		"size":    string(b.options.Size),
	}
}

// Classes returns the resolved class string.
func (b *Button) Classes() string {
	return variant.Resolve(buttonSpec, b.chosen(),
		when(b.options.Disabled, "faint"),
		when(b.options.Focus && !b.options.Disabled, "underline"),
		b.options.Class,
	)
}

func (b *Button) content() string {
	if buttonSpec.Selection(b.chosen())["size"] == string(ButtonSizeIcon) {
		if b.options.Icon != "" {
			return b.options.Icon
		}
		r, _ := utf8.DecodeRuneInString(b.label)
		if r == utf8.RuneError {
			return ""
		}
		return string(r)
	}
	if b.options.Icon != "" {
		return b.options.Icon + " " + b.label
	}
	return b.label
}

// View renders the button.
func (b *Button) View() string {
	return b.render(b.Classes(), b.content())
}

// SimpleButton creates a default button.
func SimpleButton(label string) *Button {
	return NewButton(label, ButtonOptions{})
}

// ButtonGroup represents a horizontal group of buttons.
type ButtonGroup struct {
	buttons []*Button
	spacing int
}

// NewButtonGroup creates a new button group.
func NewButtonGroup(buttons ...*Button) *ButtonGroup {
	return &ButtonGroup{buttons: buttons, spacing: 1}
}

// WithSpacing sets the number of columns between buttons.
func (bg *ButtonGroup) WithSpacing(spacing int) *ButtonGroup {
	if spacing < 0 {
		spacing = 0
	}
	bg.spacing = spacing
	return bg
}

// AddButton adds a button to the group.
func (bg *ButtonGroup) AddButton(button *Button) *ButtonGroup {
	bg.buttons = append(bg.buttons, button)
	return bg
}

// View renders the button group. Nil buttons are skipped.
func (bg *ButtonGroup) View() string {
	spacer := strings.Repeat(" ", bg.spacing)
	parts := make([]string, 0, len(bg.buttons)*2)
	for _, button := range bg.buttons {
		if button == nil {
			continue
		}
		if len(parts) > 0 && spacer != "" {
			parts = append(parts, spacer)
		}
		parts = append(parts, button.View())
	}
	if len(parts) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
