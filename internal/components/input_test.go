package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestInputStates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		state InputState
		want  InputState
		class string
	}{
		{state: "", want: InputStateDefault, class: "border-input"},
		{state: InputStateFocus, want: InputStateFocus, class: "border-thick border-ring"},
		{state: InputStateDisabled, want: InputStateDisabled, class: "faint"},
		{state: InputStateInvalid, want: InputStateInvalid, class: "border-destructive"},
		{state: "hovered", want: InputStateDefault, class: "border-input"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.want)+"/"+string(tt.state), func(t *testing.T) {
			t.Parallel()
			input := NewInput("").WithState(tt.state)
			assert.Equal(t, tt.want, input.State())
			assert.Contains(t, input.Classes(), tt.class)
		})
	}
}

func TestInputView(t *testing.T) {
	t.Parallel()

	sheet, _ := newTestSheet(t)

	placeholder := NewInput("").WithPlaceholder("you@example.com").WithWidth(20).WithStylesheet(sheet).View()
	assert.Contains(t, placeholder, "you@example.com")
	assert.Equal(t, 3, lipgloss.Height(placeholder))
	assert.Equal(t, 22, lipgloss.Width(placeholder))

	value := NewInput("hello").WithPlaceholder("ignored").WithStylesheet(sheet).View()
	assert.Contains(t, value, "hello")
	assert.NotContains(t, value, "ignored")

	area := NewTextarea("line one").WithStylesheet(sheet).View()
	assert.Equal(t, 5, lipgloss.Height(area))
}

func TestFormField(t *testing.T) {
	t.Parallel()

	sheet, _ := newTestSheet(t)

	optional := NewFormInput("Email", "").WithDescription("Work address").WithStylesheet(sheet).View()
	assert.Contains(t, optional, "Email (Optional)")
	assert.Contains(t, optional, "Work address")

	field := NewFormTextarea("Bio", "").WithRequired(true).WithError("Bio is required")
	required := field.WithStylesheet(sheet).View()
	assert.Contains(t, required, "Bio *")
	assert.Contains(t, required, "Bio is required")
	assert.Equal(t, InputStateDefault, field.Control().State(), "rendering must not mutate the control")
}

type signupForm struct {
	Email    string `json:"email" validate:"required,email"`
	Nickname string `yaml:"nickname" validate:"omitempty,max=20"`
	Age      int    `mapstructure:"age" validate:"gte=0,required"`
	Referrer string `validate:"required_if=Age 0"`
	Bio      string
}

func TestIsFieldRequired(t *testing.T) {
	t.Parallel()

	tests := []struct {
		schema any
		field  string
		want   bool
	}{
		{schema: signupForm{}, field: "email", want: true},
		{schema: &signupForm{}, field: "Email", want: true},
		{schema: signupForm{}, field: "age", want: true},
		{schema: signupForm{}, field: "nickname", want: false},
		{schema: signupForm{}, field: "Referrer", want: false},
		{schema: signupForm{}, field: "Bio", want: false},
		{schema: signupForm{}, field: "missing", want: false},
		{schema: signupForm{}, field: "", want: false},
		{schema: nil, field: "email", want: false},
		{schema: "not a struct", field: "email", want: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsFieldRequired(tt.schema, tt.field), "%T %q", tt.schema, tt.field)
	}
}

func TestFormFieldWithSchema(t *testing.T) {
	t.Parallel()

	sheet, _ := newTestSheet(t)

	email := NewFormInput("Email", "").WithSchema(signupForm{}, "email").WithStylesheet(sheet)
	assert.True(t, email.Required())
	assert.Contains(t, email.View(), "Email *")

	bio := NewFormTextarea("Bio", "").WithSchema(&signupForm{}, "Bio").WithStylesheet(sheet)
	assert.False(t, bio.Required())
	assert.Contains(t, bio.View(), "Bio (Optional)")
}

func TestLabelCheckboxSkeleton(t *testing.T) {
	t.Parallel()

	sheet, _ := newTestSheet(t)

	assert.Equal(t, "Name", NewLabel("Name").WithStylesheet(sheet).View())
	assert.Contains(t, NewLabel("Name").WithDisabled(true).Classes(), "faint")

	box := NewCheckbox("Accept", false).WithStylesheet(sheet)
	assert.Equal(t, "[ ] Accept", box.View())
	box.Toggle()
	assert.True(t, box.Checked())
	assert.Equal(t, "[x] Accept", box.View())
	assert.Contains(t, box.Classes(), "bg-primary")

	box.WithDisabled(true).Toggle()
	assert.True(t, box.Checked())
	assert.Contains(t, box.Classes(), "faint")

	skeleton := NewSkeleton(4, 2).WithStylesheet(sheet).View()
	assert.Equal(t, "░░░░\n░░░░", skeleton)
	assert.Equal(t, "░", NewSkeleton(0, 0).WithStylesheet(sheet).View())
}

func TestBadge(t *testing.T) {
	t.Parallel()

	sheet, _ := newTestSheet(t)

	assert.Equal(t, "px-1 bold text-foreground border border-border", NewBadge("new", BadgeVariantOutline).Classes())
	assert.Equal(t, " new ", NewBadge("new", BadgeVariantDefault).WithStylesheet(sheet).View())
}
