package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tint/internal/domain/variant"
)

// AlertVariant selects the alert colours.
type AlertVariant string

const (
	AlertVariantDefault     AlertVariant = "default"
	AlertVariantDestructive AlertVariant = "destructive"
	AlertVariantPrimary     AlertVariant = "primary"
	AlertVariantSecondary   AlertVariant = "secondary"
	AlertVariantNeutral     AlertVariant = "neutral"
)

// alertSpec declares the alert's variant axes.
var alertSpec = variant.Spec{
	Base: "px-2 border",
	Axes: []variant.Axis{{
		Name:    "variant",
		Default: string(AlertVariantDefault),
		Values: map[string]string{
			string(AlertVariantDefault):     "bg-background text-foreground border-primary",
			string(AlertVariantDestructive): "bg-destructive text-destructive-foreground border-destructive",
			string(AlertVariantPrimary):     "bg-primary text-primary-foreground border-primary",
			string(AlertVariantSecondary):   "bg-secondary text-secondary-foreground border-primary",
			string(AlertVariantNeutral):     "bg-gray-50 text-gray-900 border-primary",
		},
	}},
}

const (
	alertTitleClasses       = "bold"
	alertDescriptionClasses = ""
)

// Alert is a bordered call-out with an optional icon, title and description.
type Alert struct {
	base
	variant     AlertVariant
	icon        string
	title       string
	description string
	width       int
}

// NewAlert creates an alert.
func NewAlert(v AlertVariant, title, description string) *Alert {
	return &Alert{variant: v, title: title, description: description}
}

// WithIcon sets the glyph drawn before the title.
func (a *Alert) WithIcon(icon string) *Alert {
	a.icon = icon
	return a
}

// WithWidth fixes the alert width in columns.
func (a *Alert) WithWidth(width int) *Alert {
	a.width = width
	return a
}

// WithClass appends caller classes.
func (a *Alert) WithClass(class string) *Alert {
	a.class = class
	return a
}

// WithStylesheet renders through sheet instead of the shared stylesheet.
func (a *Alert) WithStylesheet(sheet Stylesheet) *Alert {
	a.sheet = sheet
	return a
}

// Classes returns the resolved class string.
func (a *Alert) Classes() string {
	return variant.Resolve(alertSpec, map[string]string{"variant": string(a.variant)}, a.class)
}

// View renders the alert.
func (a *Alert) View() string {
	sheet := a.stylesheet()

	var lines []string
	if a.title != "" {
		title := a.title
		if a.icon != "" {
			title = a.icon + " " + title
		}
		lines = append(lines, sheet.Style(alertTitleClasses).Render(title))
	}
	if a.description != "" {
		lines = append(lines, sheet.Style(alertDescriptionClasses).Render(a.description))
	}

	style := sheet.Style(a.Classes())
	if a.width > 0 {
		style = style.Width(a.width)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
