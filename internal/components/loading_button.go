package components

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultLoadingText replaces the label while loading when no text is set.
const DefaultLoadingText = "Loading..."

// LoadingButton is a button that shows a spinner and is disabled while loading.
type LoadingButton struct {
	button      *Button
	loading     bool
	loadingText string
	spinner     spinner.Model
}

// NewLoadingButton wraps a button with the given label and options.
func NewLoadingButton(label string, opts ButtonOptions) *LoadingButton {
	return &LoadingButton{
		button: NewButton(label, opts),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle()),
		),
	}
}

// WithLoading toggles the loading state.
func (l *LoadingButton) WithLoading(loading bool) *LoadingButton {
	l.loading = loading
	return l
}

// WithLoadingText sets the text shown while loading.
func (l *LoadingButton) WithLoadingText(text string) *LoadingButton {
	l.loadingText = text
	return l
}

// WithStylesheet renders through sheet instead of the shared stylesheet.
func (l *LoadingButton) WithStylesheet(sheet Stylesheet) *LoadingButton {
	l.button.WithStylesheet(sheet)
	return l
}

// Loading reports whether the button is loading.
func (l *LoadingButton) Loading() bool {
	return l.loading
}

// Disabled reports whether the button accepts input.
func (l *LoadingButton) Disabled() bool {
	return l.loading || l.button.options.Disabled
}

// Tick starts the spinner animation.
func (l *LoadingButton) Tick() tea.Cmd {
	return l.spinner.Tick
}

// Update advances the spinner.
func (l *LoadingButton) Update(msg tea.Msg) tea.Cmd {
	if !l.loading {
		return nil
	}
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return cmd
}

// View renders the button.
func (l *LoadingButton) View() string {
	if !l.loading {
		return l.button.View()
	}

	text := l.loadingText
	if text == "" {
		text = DefaultLoadingText
	}

	view := *l.button
	view.label = l.spinner.View() + " " + text
	view.options.Disabled = true
	view.options.Icon = ""
	return view.View()
}
