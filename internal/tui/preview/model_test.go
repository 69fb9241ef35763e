package preview

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tint/internal/components"
	"github.com/alexisbeaulieu97/tint/internal/domain/theme"
	"github.com/alexisbeaulieu97/tint/internal/infrastructure/presentation"
	"github.com/alexisbeaulieu97/tint/internal/stylesheet"
)

type fakeController struct {
	applied []theme.ColorMode
	dark    bool
}

func (f *fakeController) ApplyBaseTheme(mode theme.ColorMode) {
	f.applied = append(f.applied, mode)
}

func (f *fakeController) IsDark(mode theme.ColorMode) bool {
	return mode == theme.ColorModeDark || (mode == theme.ColorModeSystem && f.dark)
}

func newTestModel(t *testing.T, engine ThemeController) Model {
	t.Helper()
	registry := presentation.NewRegistry(presentation.WithRenderer(lipgloss.NewRenderer(io.Discard)))
	return NewModel(engine, stylesheet.New(registry), theme.ColorModeLight)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestModeKeysDriveTheEngine(t *testing.T) {
	t.Parallel()

	engine := &fakeController{dark: true}
	m := newTestModel(t, engine)

	m, _ = update(t, m, runes("d"))
	require.Equal(t, theme.ColorModeDark, m.Mode())
	m, _ = update(t, m, runes("s"))
	require.Equal(t, theme.ColorModeSystem, m.Mode())
	m, _ = update(t, m, runes("l"))
	require.Equal(t, theme.ColorModeLight, m.Mode())

	require.Equal(t, []theme.ColorMode{theme.ColorModeDark, theme.ColorModeSystem, theme.ColorModeLight}, engine.applied)
}

func TestNavigation(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, &fakeController{})

	name, value := m.Current()
	require.Equal(t, components.Names()[0], name)
	require.Equal(t, "alert", name)
	require.Equal(t, "default", value)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	_, value = m.Current()
	require.Equal(t, "destructive", value)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	_, value = m.Current()
	require.Equal(t, "secondary", value, "left wraps to the last option")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	name, _ = m.Current()
	require.Equal(t, components.Names()[1], name)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	name, _ = m.Current()
	names := components.Names()
	require.Equal(t, names[len(names)-1], name)
}

func TestVariantSelectionIsPerComponent(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, &fakeController{})
	before := m

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	_, value := m.Current()
	require.Equal(t, "default", value)

	_, original := before.Current()
	require.Equal(t, "default", original, "earlier model copies are not mutated")
}

func TestQuit(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, &fakeController{})
	m, cmd := update(t, m, runes("q"))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
	require.Empty(t, m.View())
}

func TestViewRendersEveryComponent(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, &fakeController{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = update(t, m, runes("d"))

	view := m.View()
	assert.Contains(t, view, "tint preview")
	assert.Contains(t, view, "mode: dark (dark)")
	assert.Contains(t, view, "variant: default")

	for range components.Names() {
		name, value := m.Current()
		assert.NotEmpty(t, m.renderComponent(name, value), name)
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	}
}

func TestHelpToggle(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, nil)
	short := m.View()
	m, _ = update(t, m, runes("?"))
	require.NotEqual(t, short, m.View())
	require.Contains(t, m.View(), "mode: light")
	require.NotContains(t, m.View(), "(light)")
}
