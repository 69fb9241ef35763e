package components

import "github.com/alexisbeaulieu97/tint/internal/domain/variant"

// checkboxSpec declares the checkbox's variant axes.
var checkboxSpec = variant.Spec{
	Axes: []variant.Axis{{
		Name:    "state",
		Default: "unchecked",
		Values: map[string]string{
			"unchecked": "text-primary",
			"checked":   "bg-primary text-primary-foreground",
			"disabled":  "text-muted-foreground faint",
		},
	}},
}

// Checkbox is a boolean toggle with an optional label.
type Checkbox struct {
	base
	label    string
	checked  bool
	disabled bool
}

// NewCheckbox creates a checkbox.
func NewCheckbox(label string, checked bool) *Checkbox {
	return &Checkbox{label: label, checked: checked}
}

// WithDisabled sets the disabled state.
func (c *Checkbox) WithDisabled(disabled bool) *Checkbox {
	c.disabled = disabled
	return c
}

// WithStylesheet renders through sheet instead of the shared stylesheet.
func (c *Checkbox) WithStylesheet(sheet Stylesheet) *Checkbox {
	c.sheet = sheet
	return c
}

// Toggle flips the checked state unless disabled.
func (c *Checkbox) Toggle() {
	if !c.disabled {
		c.checked = !c.checked
	}
}

// Checked reports the checked state.
func (c *Checkbox) Checked() bool {
	return c.checked
}

// Classes returns the resolved class string of the box.
func (c *Checkbox) Classes() string {
	state := "unchecked"
	switch {
	case c.disabled:
		state = "disabled"
	case c.checked:
		state = "checked"
	}
	return variant.Resolve(checkboxSpec, map[string]string{"state": state}, c.class)
}

// View renders the checkbox.
func (c *Checkbox) View() string {
	box := "[ ]"
	if c.checked {
		box = "[x]"
	}
	out := c.render(c.Classes(), box)
	if c.label == "" {
		return out
	}
	return out + " " + NewLabel(c.label).WithDisabled(c.disabled).WithStylesheet(c.stylesheet()).View()
}
