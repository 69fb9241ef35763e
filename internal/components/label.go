package components

import "github.com/alexisbeaulieu97/tint/internal/domain/variant"

// labelSpec declares the label's variant axes.
var labelSpec = variant.Spec{
	Base: "bold text-foreground",
	Axes: []variant.Axis{{
		Name:    "state",
		Default: "default",
		Values: map[string]string{
			"default":  "",
			"disabled": "faint",
		},
	}},
}

// Label names a form control.
type Label struct {
	base
	text     string
	disabled bool
}

// NewLabel creates a label.
func NewLabel(text string) *Label {
	return &Label{text: text}
}

// WithDisabled dims the label to match a disabled control.
func (l *Label) WithDisabled(disabled bool) *Label {
	l.disabled = disabled
	return l
}

// WithClass appends caller classes.
func (l *Label) WithClass(class string) *Label {
	l.class = class
	return l
}

// WithStylesheet renders through sheet instead of the shared stylesheet.
func (l *Label) WithStylesheet(sheet Stylesheet) *Label {
	l.sheet = sheet
	return l
}

// Classes returns the resolved class string.
func (l *Label) Classes() string {
	state := "default"
	if l.disabled {
		state = "disabled"
	}
	return variant.Resolve(labelSpec, map[string]string{"state": state}, l.class)
}

// View renders the label.
func (l *Label) View() string {
	return l.render(l.Classes(), l.text)
}
