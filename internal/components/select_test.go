package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countries() []SelectItem {
	return []SelectItem{
		{Value: "us", Label: "United States"},
		{Value: "ca", Label: "Canada"},
		{Value: "uk", Label: "United Kingdom", Disabled: true},
		{Value: "de"},
	}
}

func TestSelectStates(t *testing.T) {
	t.Parallel()

	sel := NewSelect("Select a country", countries()...)
	assert.Equal(t, SelectStateDefault, sel.State())
	assert.Contains(t, sel.Classes(), "border-input")

	require.True(t, sel.Open())
	assert.Equal(t, SelectStateOpen, sel.State())
	assert.Contains(t, sel.Classes(), "border-ring")

	sel.WithInvalid(true)
	assert.Equal(t, SelectStateInvalid, sel.State())
	assert.Contains(t, sel.Classes(), "border-destructive")

	sel.WithDisabled(true)
	assert.Equal(t, SelectStateDisabled, sel.State())
	assert.False(t, sel.IsOpen())
	assert.False(t, sel.Open(), "disabled selects never open")
	assert.Contains(t, sel.WithClass("italic").Classes(), "faint italic")
}

func TestSelectNavigationSkipsDisabledItems(t *testing.T) {
	t.Parallel()

	sel := NewSelect("Pick", countries()...)
	require.True(t, sel.Open())
	assert.Contains(t, sel.ItemClasses(0), "bg-accent")

	sel.Next()
	sel.Next()
	assert.Contains(t, sel.ItemClasses(3), "bg-accent", "uk is disabled and skipped")
	assert.Contains(t, sel.ItemClasses(2), "faint")

	sel.Next()
	assert.Contains(t, sel.ItemClasses(0), "bg-accent", "highlight wraps")

	sel.Prev()
	require.True(t, sel.Choose())
	value, ok := sel.Value()
	require.True(t, ok)
	assert.Equal(t, "de", value)
	assert.False(t, sel.IsOpen())
	assert.False(t, sel.Choose(), "closed selects choose nothing")

	assert.Equal(t, "px-1", sel.ItemClasses(99))
}

func TestSelectSetValue(t *testing.T) {
	t.Parallel()

	sel := NewSelect("Pick", countries()...)
	_, ok := sel.Value()
	require.False(t, ok)

	assert.False(t, sel.SetValue("uk"))
	assert.False(t, sel.SetValue("fr"))
	require.True(t, sel.SetValue("ca"))

	sel.Open()
	assert.Contains(t, sel.ItemClasses(1), "bg-accent", "opening highlights the chosen item")
}

func TestSelectEmptyAndAllDisabled(t *testing.T) {
	t.Parallel()

	empty := NewSelect("Nothing")
	empty.Next()
	empty.Open()
	assert.False(t, empty.Choose())

	blocked := NewSelect("Blocked", SelectItem{Value: "a", Disabled: true})
	blocked.Open()
	blocked.Next()
	assert.False(t, blocked.Choose())
}

func TestSelectView(t *testing.T) {
	t.Parallel()

	sheet, _ := newTestSheet(t)

	sel := NewSelect("Select a country", countries()...).WithWidth(20).WithStylesheet(sheet)
	closed := sel.View()
	assert.Contains(t, closed, "Select a country")
	assert.Contains(t, closed, "▾")
	assert.Equal(t, 3, lipgloss.Height(closed))

	require.True(t, sel.SetValue("ca"))
	sel.Open()
	open := sel.View()
	assert.Contains(t, open, "✓ Canada")
	assert.Contains(t, open, "de")
	assert.NotContains(t, open, "Select a country")
	assert.Equal(t, 3+2+len(countries()), lipgloss.Height(open))

	long := NewSelect("A placeholder far wider than the trigger", countries()...).WithWidth(12).WithStylesheet(sheet)
	first := strings.Split(long.View(), "\n")[1]
	assert.Contains(t, first, "…")
	assert.Equal(t, lipgloss.Width(closed), lipgloss.Width(sel.WithWidth(20).View()))
}
