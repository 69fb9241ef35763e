package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tint/internal/domain/variant"
)

// sectionCardSpec declares the section container.
var sectionCardSpec = variant.Spec{Base: "border-t border-b border-primary"}

// sectionHeaderSpec declares the section header's variant axes.
var sectionHeaderSpec = variant.Spec{
	Base: "px-2 py-1 border-b border-gray-200",
	Axes: []variant.Axis{{
		Name:    "variant",
		Default: "primary",
		Values: map[string]string{
			"primary":    "bg-primary text-primary-foreground",
			"secondary":  "bg-secondary text-secondary-foreground",
			"tertiary":   "bg-accent text-accent-foreground",
			"quaternary": "bg-muted text-foreground",
			"neutral":    "bg-gray-50 text-gray-900",
		},
	}},
}

var sectionIconClasses = map[string]string{
	"primary":    "text-primary-foreground",
	"secondary":  "text-yellow-500",
	"tertiary":   "text-green-600",
	"quaternary": "text-yellow-500",
	"neutral":    "text-gray-600",
}

const (
	sectionTitleClasses       = "bold"
	sectionDescriptionClasses = "faint"
	sectionContentClasses     = "p-1 bg-card text-card-foreground"
)

// SectionCard is a full-width section with a coloured header and a body.
type SectionCard struct {
	base
	variant     string
	icon        string
	title       string
	description string
	content     string
	width       int
}

// NewSectionCard creates a section with the primary header variant.
func NewSectionCard(title, description, content string) *SectionCard {
	return &SectionCard{title: title, description: description, content: content}
}

// WithVariant selects the header colours.
func (s *SectionCard) WithVariant(v string) *SectionCard {
	s.variant = v
	return s
}

// WithIcon sets the glyph drawn before the title.
func (s *SectionCard) WithIcon(icon string) *SectionCard {
	s.icon = icon
	return s
}

// WithWidth sets the section width.
func (s *SectionCard) WithWidth(width int) *SectionCard {
	s.width = width
	return s
}

// WithClass appends caller classes to the container.
func (s *SectionCard) WithClass(class string) *SectionCard {
	s.class = class
	return s
}

// WithStylesheet renders through sheet instead of the shared stylesheet.
func (s *SectionCard) WithStylesheet(sheet Stylesheet) *SectionCard {
	s.sheet = sheet
	return s
}

func (s *SectionCard) chosen() map[string]string {
	return map[string]string{"variant": s.variant}
}

// HeaderClasses returns the resolved header class string.
func (s *SectionCard) HeaderClasses() string {
	return variant.Resolve(sectionHeaderSpec, s.chosen())
}

// Classes returns the resolved container class string.
func (s *SectionCard) Classes() string {
	return variant.Resolve(sectionCardSpec, nil, s.class)
}

// View renders the section.
func (s *SectionCard) View() string {
	sheet := s.stylesheet()
	selected := sectionHeaderSpec.Selection(s.chosen())["variant"]

	title := sheet.Style(sectionTitleClasses).Render(s.title)
	if s.icon != "" {
		title = sheet.Style(sectionIconClasses[selected]).Render(s.icon) + " " + title
	}
	headerLines := []string{title}
	if s.description != "" {
		headerLines = append(headerLines, sheet.Style(sectionDescriptionClasses).Render(s.description))
	}

	header := sheet.Style(s.HeaderClasses())
	body := sheet.Style(sectionContentClasses)
	if s.width > 0 {
		header = header.Width(s.width)
		body = body.Width(s.width)
	}

	sections := []string{header.Render(lipgloss.JoinVertical(lipgloss.Left, headerLines...))}
	if s.content != "" {
		sections = append(sections, body.Render(s.content))
	}
	return sheet.Style(s.Classes()).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
