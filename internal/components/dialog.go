package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tint/internal/domain/variant"
)

// dialogSpec declares the dialog content panel.
var dialogSpec = variant.Spec{Base: "border border-border bg-background text-foreground p-1"}

const (
	dialogOverlayClasses     = "bg-black"
	dialogTitleClasses       = "bold"
	dialogDescriptionClasses = "text-muted-foreground"
	dialogFooterClasses      = "pt-1"
)

// Dialog is a modal panel with header, body and a footer of actions.
type Dialog struct {
	base
	title       string
	description string
	body        string
	actions     *ButtonGroup
	width       int
}

// NewDialog creates a dialog.
func NewDialog(title, description string) *Dialog {
	return &Dialog{title: title, description: description, width: 48}
}

// WithBody sets the dialog body.
func (d *Dialog) WithBody(body string) *Dialog {
	d.body = body
	return d
}

// WithActions sets the footer buttons.
func (d *Dialog) WithActions(buttons ...*Button) *Dialog {
	d.actions = NewButtonGroup(buttons...)
	return d
}

// WithWidth sets the panel width.
func (d *Dialog) WithWidth(width int) *Dialog {
	d.width = width
	return d
}

// WithClass appends caller classes to the panel.
func (d *Dialog) WithClass(class string) *Dialog {
	d.class = class
	return d
}

// WithStylesheet renders through sheet instead of the shared stylesheet.
func (d *Dialog) WithStylesheet(sheet Stylesheet) *Dialog {
	d.sheet = sheet
	return d
}

// Classes returns the resolved panel class string.
func (d *Dialog) Classes() string {
	return variant.Resolve(dialogSpec, nil, d.class)
}

// View renders the dialog panel.
func (d *Dialog) View() string {
	sheet := d.stylesheet()

	var sections []string
	if d.title != "" {
		sections = append(sections, sheet.Style(dialogTitleClasses).Render(d.title))
	}
	if d.description != "" {
		sections = append(sections, sheet.Style(dialogDescriptionClasses).Render(d.description))
	}
	if d.body != "" {
		sections = append(sections, "", d.body)
	}
	if d.actions != nil && len(d.actions.buttons) > 0 {
		sections = append(sections, sheet.Style(dialogFooterClasses).Render(d.actions.View()))
	}

	style := sheet.Style(d.Classes())
	if d.width > 0 {
		style = style.Width(d.width)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// Overlay centres the panel in a width x height backdrop.
func (d *Dialog) Overlay(width, height int) string {
	backdrop := d.stylesheet().Style(dialogOverlayClasses)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, d.View(),
		lipgloss.WithWhitespaceBackground(backdrop.GetBackground()))
}
