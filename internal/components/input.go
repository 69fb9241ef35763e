package components

import (
	"strings"

	"github.com/alexisbeaulieu97/tint/internal/domain/variant"
)

// InputState selects the control's interaction state.
type InputState string

const (
	InputStateDefault  InputState = "default"
	InputStateFocus    InputState = "focus"
	InputStateDisabled InputState = "disabled"
	InputStateInvalid  InputState = "invalid"
)

var inputStates = map[string]string{
	string(InputStateDefault):  "border-input",
	string(InputStateFocus):    "border-thick border-ring",
	string(InputStateDisabled): "border-input faint",
	string(InputStateInvalid):  "border-destructive",
}

// inputSpec declares the single-line input's variant axes.
var inputSpec = variant.Spec{
	Base: "border bg-background text-foreground px-1",
	Axes: []variant.Axis{{Name: "state", Default: string(InputStateDefault), Values: inputStates}},
}

// textareaSpec declares the multi-line input's variant axes.
var textareaSpec = variant.Spec{
	Base: "border bg-background text-foreground px-1 h-3",
	Axes: []variant.Axis{{Name: "state", Default: string(InputStateDefault), Values: inputStates}},
}

const placeholderClasses = "text-muted-foreground"

// Input is a single-line text field.
type Input struct {
	base
	spec        variant.Spec
	value       string
	placeholder string
	state       InputState
	width       int
}

// NewInput creates an input showing value.
func NewInput(value string) *Input {
	return &Input{spec: inputSpec, value: value, width: 24}
}

// NewTextarea creates a multi-line input showing value.
func NewTextarea(value string) *Input {
	return &Input{spec: textareaSpec, value: value, width: 40}
}

// WithPlaceholder sets the text shown while the value is empty.
func (i *Input) WithPlaceholder(placeholder string) *Input {
	i.placeholder = placeholder
	return i
}

// WithState sets the interaction state.
func (i *Input) WithState(state InputState) *Input {
	i.state = state
	return i
}

// WithWidth sets the inner width in columns.
func (i *Input) WithWidth(width int) *Input {
	i.width = width
	return i
}

// WithClass appends caller classes.
func (i *Input) WithClass(class string) *Input {
	i.class = class
	return i
}

// WithStylesheet renders through sheet instead of the shared stylesheet.
func (i *Input) WithStylesheet(sheet Stylesheet) *Input {
	i.sheet = sheet
	return i
}

// State returns the interaction state after defaulting.
func (i *Input) State() InputState {
	return InputState(i.spec.Selection(i.chosen())["state"])
}

func (i *Input) chosen() map[string]string {
	return map[string]string{"state": string(i.state)}
}

// Classes returns the resolved class string.
func (i *Input) Classes() string {
	return variant.Resolve(i.spec, i.chosen(), i.class)
}

// View renders the input.
func (i *Input) View() string {
	sheet := i.stylesheet()

	content := i.value
	if strings.TrimSpace(content) == "" && i.placeholder != "" {
		content = sheet.Style(placeholderClasses).Render(i.placeholder)
	}

	style := sheet.Style(i.Classes())
	if i.width > 0 {
		style = style.Width(i.width)
	}
	return style.Render(content)
}
