package components

import (
	"reflect"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	formRequiredClasses    = "text-destructive"
	formOptionalClasses    = "text-muted-foreground"
	formDescriptionClasses = "text-muted-foreground"
	formErrorClasses       = "text-destructive"
)

// FormField renders a label, optional description, a control and an error
// message stacked vertically.
type FormField struct {
	base
	label       string
	description string
	required    bool
	err         string
	control     *Input
}

// NewFormInput creates a labelled single-line input.
func NewFormInput(label, value string) *FormField {
	return &FormField{label: label, control: NewInput(value)}
}

// NewFormTextarea creates a labelled multi-line input.
func NewFormTextarea(label, value string) *FormField {
	return &FormField{label: label, control: NewTextarea(value)}
}

// WithDescription sets help text shown under the label.
func (f *FormField) WithDescription(description string) *FormField {
	f.description = description
	return f
}

// WithRequired marks the field as required instead of optional.
func (f *FormField) WithRequired(required bool) *FormField {
	f.required = required
	return f
}

// WithSchema marks the field required when schema's field declares a
// required validation. See IsFieldRequired.
func (f *FormField) WithSchema(schema any, field string) *FormField {
	f.required = IsFieldRequired(schema, field)
	return f
}

// Required reports whether the field is marked required.
func (f *FormField) Required() bool {
	return f.required
}

// WithError sets the validation message. A non-empty message switches the
// control to the invalid state.
func (f *FormField) WithError(message string) *FormField {
	f.err = message
	return f
}

// WithStylesheet renders through sheet instead of the shared stylesheet.
func (f *FormField) WithStylesheet(sheet Stylesheet) *FormField {
	f.sheet = sheet
	return f
}

// Control returns the wrapped input for further configuration.
func (f *FormField) Control() *Input {
	return f.control
}

// View renders the field.
func (f *FormField) View() string {
	sheet := f.stylesheet()

	label := NewLabel(f.label).WithStylesheet(sheet).View()
	if f.required {
		label += sheet.Style(formRequiredClasses).Render(" *")
	} else {
		label += sheet.Style(formOptionalClasses).Render(" (Optional)")
	}

	lines := []string{label}
	if f.description != "" {
		lines = append(lines, sheet.Style(formDescriptionClasses).Render(f.description))
	}

	control := *f.control
	control.sheet = sheet
	if f.err != "" {
		control.state = InputStateInvalid
	}
	lines = append(lines, control.View())

	if f.err != "" {
		lines = append(lines, sheet.Style(formErrorClasses).Render(f.err))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// IsFieldRequired reports whether the struct schema (or a pointer to one)
// has a field named field, matched by Go name or by its yaml/json/mapstructure
// tag, whose validate tag lists "required". Anything else is optional.
func IsFieldRequired(schema any, field string) bool {
	t := reflect.TypeOf(schema)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct || field == "" {
		return false
	}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !fieldMatches(sf, field) {
			continue
		}
		rules := strings.Split(sf.Tag.Get("validate"), ",")
		return slices.Contains(rules, "required")
	}
	return false
}

func fieldMatches(sf reflect.StructField, name string) bool {
	if sf.Name == name {
		return true
	}
	for _, key := range []string{"yaml", "json", "mapstructure"} {
		tag, _, _ := strings.Cut(sf.Tag.Get(key), ",")
		if tag != "" && tag != "-" && tag == name {
			return true
		}
	}
	return false
}
