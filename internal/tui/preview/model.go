// Package preview is an interactive gallery of the component kit. Switching
// the colour mode goes through the theme engine, so the gallery shows exactly
// what the engine writes into the presentation registry.
package preview

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tint/internal/components"
	"github.com/alexisbeaulieu97/tint/internal/domain/theme"
)

// ThemeController is the part of the theme engine the preview drives.
type ThemeController interface {
	ApplyBaseTheme(mode theme.ColorMode)
	IsDark(mode theme.ColorMode) bool
}

// entry is one gallery page: a component and the axis the arrows cycle.
type entry struct {
	name    string
	axis    string
	options []string
}

// Model is the preview program state.
type Model struct {
	engine ThemeController
	sheet  components.Stylesheet

	mode     theme.ColorMode
	entries  []entry
	cursor   int
	selected map[string]int

	loading *components.LoadingButton
	keys    keyMap
	help    help.Model

	width    int
	height   int
	quitting bool
}

// NewModel builds the gallery over every catalogued component. mode is the
// mode the engine was initialised with.
func NewModel(engine ThemeController, sheet components.Stylesheet, mode theme.ColorMode) Model {
	if sheet == nil {
		sheet = components.CurrentStylesheet()
	}

	var entries []entry
	for _, name := range components.Names() {
		spec, _ := components.Lookup(name)
		e := entry{name: name, options: []string{""}}
		if len(spec.Axes) > 0 {
			e.axis = spec.Axes[0].Name
			e.options = spec.Axes[0].Options()
		}
		entries = append(entries, e)
	}

	return Model{
		engine:   engine,
		sheet:    sheet,
		mode:     mode,
		entries:  entries,
		selected: make(map[string]int, len(entries)),
		loading: components.NewLoadingButton("Save", components.ButtonOptions{}).
			WithLoading(true).
			WithLoadingText("Saving").
			WithStylesheet(sheet),
		keys:   defaultKeyMap(),
		help:   help.New(),
		width:  80,
		height: 24,
	}
}

// Init starts the spinner.
func (m Model) Init() tea.Cmd {
	return m.loading.Tick()
}

// Mode returns the active colour mode.
func (m Model) Mode() theme.ColorMode {
	return m.mode
}

// Current returns the selected component name and axis value.
func (m Model) Current() (string, string) {
	if len(m.entries) == 0 {
		return "", ""
	}
	e := m.entries[m.cursor]
	return e.name, e.options[m.selected[e.name]]
}

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, m.loading.Update(msg)
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Light):
		m.setMode(theme.ColorModeLight)
	case key.Matches(msg, m.keys.Dark):
		m.setMode(theme.ColorModeDark)
	case key.Matches(msg, m.keys.System):
		m.setMode(theme.ColorModeSystem)

	case key.Matches(msg, m.keys.Next):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Prev):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.cycleVariant(1)
	case key.Matches(msg, m.keys.Left):
		m.cycleVariant(-1)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m *Model) setMode(mode theme.ColorMode) {
	if m.engine != nil {
		m.engine.ApplyBaseTheme(mode)
	}
	m.mode = mode
}

func (m *Model) moveCursor(delta int) {
	if len(m.entries) == 0 {
		return
	}
	m.cursor = wrap(m.cursor+delta, len(m.entries))
}

func (m *Model) cycleVariant(delta int) {
	if len(m.entries) == 0 {
		return
	}
	e := m.entries[m.cursor]
	// selected is shared between copies of the model; copy before writing.
	next := make(map[string]int, len(m.selected))
	for k, v := range m.selected {
		next[k] = v
	}
	next[e.name] = wrap(next[e.name]+delta, len(e.options))
	m.selected = next
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
