package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/alexisbeaulieu97/tint/internal/domain/variant"
)

// SelectState selects the trigger's interaction state.
type SelectState string

const (
	SelectStateDefault  SelectState = "default"
	SelectStateOpen     SelectState = "open"
	SelectStateDisabled SelectState = "disabled"
	SelectStateInvalid  SelectState = "invalid"
)

// selectSpec declares the trigger's variant axes.
var selectSpec = variant.Spec{
	Base: "border bg-background text-foreground px-1",
	Axes: []variant.Axis{{
		Name:    "state",
		Default: string(SelectStateDefault),
		Values: map[string]string{
			string(SelectStateDefault):  "border-input",
			string(SelectStateOpen):     "border-thick border-ring",
			string(SelectStateDisabled): "border-input faint",
			string(SelectStateInvalid):  "border-destructive",
		},
	}},
}

// selectItemSpec declares one row of the open list.
var selectItemSpec = variant.Spec{
	Base: "px-1",
	Axes: []variant.Axis{{
		Name:    "state",
		Default: "idle",
		Values: map[string]string{
			"idle":        "",
			"highlighted": "bg-accent text-accent-foreground",
			"disabled":    "text-muted-foreground faint",
		},
	}},
}

const (
	selectContentClasses = "border border-border bg-popover text-popover-foreground"
	selectChevron        = "▾"
	selectCheck          = "✓"
)

// SelectItem is one choice of a Select.
type SelectItem struct {
	Value    string
	Label    string
	Disabled bool
}

func (i SelectItem) text() string {
	if i.Label != "" {
		return i.Label
	}
	return i.Value
}

// Select is a single-choice dropdown: a trigger showing the chosen item or a
// placeholder, and a list of items shown while open.
type Select struct {
	base
	items       []SelectItem
	placeholder string
	selected    int
	highlighted int
	open        bool
	disabled    bool
	invalid     bool
	width       int
}

// NewSelect creates a closed select with nothing chosen.
func NewSelect(placeholder string, items ...SelectItem) *Select {
	s := &Select{items: items, placeholder: placeholder, selected: -1, highlighted: -1, width: 24}
	s.highlighted = s.step(-1, 1)
	return s
}

// WithWidth sets the trigger's inner width in columns.
func (s *Select) WithWidth(width int) *Select {
	s.width = width
	return s
}

// WithDisabled sets the disabled state. A disabled select never opens.
func (s *Select) WithDisabled(disabled bool) *Select {
	s.disabled = disabled
	if disabled {
		s.open = false
	}
	return s
}

// WithInvalid marks the select as failing validation.
func (s *Select) WithInvalid(invalid bool) *Select {
	s.invalid = invalid
	return s
}

// WithClass appends caller classes to the trigger.
func (s *Select) WithClass(class string) *Select {
	s.class = class
	return s
}

// WithStylesheet renders through sheet instead of the shared stylesheet.
func (s *Select) WithStylesheet(sheet Stylesheet) *Select {
	s.sheet = sheet
	return s
}

// Open shows the item list. It reports whether the select is now open.
func (s *Select) Open() bool {
	if !s.disabled {
		s.open = true
		if s.selected >= 0 {
			s.highlighted = s.selected
		}
	}
	return s.open
}

// Close hides the item list.
func (s *Select) Close() {
	s.open = false
}

// IsOpen reports whether the item list is shown.
func (s *Select) IsOpen() bool {
	return s.open
}

// Next moves the highlight to the next enabled item, wrapping around.
func (s *Select) Next() {
	s.highlighted = s.step(s.highlighted, 1)
}

// Prev moves the highlight to the previous enabled item, wrapping around.
func (s *Select) Prev() {
	s.highlighted = s.step(s.highlighted, -1)
}

func (s *Select) step(from, delta int) int {
	n := len(s.items)
	if n == 0 {
		return -1
	}
	i := from
	for j := 0; j < n; j++ {
		i = ((i+delta)%n + n) % n
		if !s.items[i].Disabled {
			return i
		}
	}
	return from
}

// Choose selects the highlighted item and closes the list. It reports
// whether a choice was made.
func (s *Select) Choose() bool {
	if !s.open || s.highlighted < 0 || s.items[s.highlighted].Disabled {
		return false
	}
	s.selected = s.highlighted
	s.open = false
	return true
}

// SetValue selects the enabled item with value.
func (s *Select) SetValue(value string) bool {
	for i, item := range s.items {
		if item.Value == value && !item.Disabled {
			s.selected = i
			s.highlighted = i
			return true
		}
	}
	return false
}

// Value returns the chosen item's value.
func (s *Select) Value() (string, bool) {
	if s.selected < 0 {
		return "", false
	}
	return s.items[s.selected].Value, true
}

// State returns the trigger state derived from the select's flags.
func (s *Select) State() SelectState {
	switch {
	case s.disabled:
		return SelectStateDisabled
	case s.invalid:
		return SelectStateInvalid
	case s.open:
		return SelectStateOpen
	}
	return SelectStateDefault
}

// Classes returns the trigger's resolved class string.
func (s *Select) Classes() string {
	return variant.Resolve(selectSpec, map[string]string{"state": string(s.State())}, s.class)
}

// ItemClasses returns the resolved class string of item i.
func (s *Select) ItemClasses(i int) string {
	state := "idle"
	switch {
	case i < 0 || i >= len(s.items):
	case s.items[i].Disabled:
		state = "disabled"
	case i == s.highlighted:
		state = "highlighted"
	}
	return variant.Resolve(selectItemSpec, map[string]string{"state": state})
}

// View renders the trigger, followed by the item list while open.
func (s *Select) View() string {
	sheet := s.stylesheet()

	inner := max(s.width-2, 1)
	text, placeholder := s.placeholder, true
	if s.selected >= 0 {
		text, placeholder = s.items[s.selected].text(), false
	}
	text = runewidth.FillRight(runewidth.Truncate(text, inner, "…"), inner)
	if placeholder {
		text = sheet.Style(placeholderClasses).Render(text)
	}
	trigger := sheet.Style(s.Classes()).Render(text + " " + selectChevron)

	if !s.open || len(s.items) == 0 {
		return trigger
	}

	rows := make([]string, len(s.items))
	for i, item := range s.items {
		mark := "  "
		if i == s.selected {
			mark = selectCheck + " "
		}
		label := runewidth.FillRight(runewidth.Truncate(item.text(), inner-2, "…"), inner-2)
		rows[i] = sheet.Style(s.ItemClasses(i)).Render(mark + label)
	}
	content := sheet.Style(selectContentClasses).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return lipgloss.JoinVertical(lipgloss.Left, trigger, content)
}
