package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tint/internal/domain/variant"
)

// cardSpec declares the card container. Cards have no variant axes.
var cardSpec = variant.Spec{Base: "border border-border bg-card text-card-foreground"}

const (
	cardHeaderClasses      = "px-1 pb-1"
	cardTitleClasses       = "bold"
	cardDescriptionClasses = "text-muted-foreground"
	cardContentClasses     = "px-1"
	cardFooterClasses      = "px-1 pt-1"
)

// CardData holds the sections of a card. Empty sections are omitted.
type CardData struct {
	Title       string
	Description string
	Content     string
	Footer      string
}

// Card represents a bordered container with header, content and footer.
type Card struct {
	base
	data  CardData
	width int
}

// NewCard creates a new card with the given data.
func NewCard(data CardData) *Card {
	return &Card{data: data}
}

// WithWidth sets the card width.
func (c *Card) WithWidth(width int) *Card {
	c.width = width
	return c
}

// WithClass appends caller classes to the container.
func (c *Card) WithClass(class string) *Card {
	c.class = class
	return c
}

// WithStylesheet renders through sheet instead of the shared stylesheet.
func (c *Card) WithStylesheet(sheet Stylesheet) *Card {
	c.sheet = sheet
	return c
}

// Data returns the card content.
func (c *Card) Data() CardData {
	return c.data
}

// Classes returns the resolved container class string.
func (c *Card) Classes() string {
	return variant.Resolve(cardSpec, nil, c.class)
}

// View renders the card.
func (c *Card) View() string {
	sheet := c.stylesheet()

	var sections []string
	if header := c.header(sheet); header != "" {
		sections = append(sections, header)
	}
	if c.data.Content != "" {
		sections = append(sections, sheet.Style(cardContentClasses).Render(c.data.Content))
	}
	if c.data.Footer != "" {
		sections = append(sections, sheet.Style(cardFooterClasses).Render(c.data.Footer))
	}

	style := sheet.Style(c.Classes())
	if c.width > 0 {
		style = style.Width(c.width)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (c *Card) header(sheet Stylesheet) string {
	var lines []string
	if c.data.Title != "" {
		lines = append(lines, sheet.Style(cardTitleClasses).Render(c.data.Title))
	}
	if c.data.Description != "" {
		lines = append(lines, sheet.Style(cardDescriptionClasses).Render(c.data.Description))
	}
	if len(lines) == 0 {
		return ""
	}
	return sheet.Style(cardHeaderClasses).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
