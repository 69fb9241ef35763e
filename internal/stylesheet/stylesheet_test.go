package stylesheet

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tint/internal/infrastructure/presentation"
)

func newTestSheet(t *testing.T, tokens map[string]string) *Stylesheet {
	t.Helper()

	registry := presentation.NewRegistry(presentation.WithRenderer(lipgloss.NewRenderer(io.Discard)))
	for name, value := range tokens {
		registry.SetToken(name, value)
	}
	return New(registry)
}

func TestParseColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  lipgloss.Color
		ok    bool
	}{
		{value: "0 0% 100%", want: "#ffffff", ok: true},
		{value: "0 0% 0%", want: "#000000", ok: true},
		{value: "0 100% 50%", want: "#ff0000", ok: true},
		{value: "hsl(120, 100%, 50%)", want: "#00ff00", ok: true},
		{value: "#3B82F6", want: "#3b82f6", ok: true},
		{value: "212", want: "212", ok: true},
		{value: "0.5rem"},
		{value: "256"},
		{value: "#zzzzzz"},
		{value: "1 2 3"},
		{value: "1 200% 3%"},
		{value: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseColor(tt.value)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestColorResolvesTokensThenPalette(t *testing.T) {
	t.Parallel()

	sheet := newTestSheet(t, map[string]string{
		"primary": "222.2 47.4% 11.2%",
		"radius":  "0.5rem",
	})

	got, ok := sheet.Color("primary")
	require.True(t, ok)
	require.Equal(t, lipgloss.Color(colorful.Hsl(222.2, 0.474, 0.112).Clamped().Hex()), got)

	got, ok = sheet.Color("primary/10")
	require.True(t, ok)
	require.Equal(t, lipgloss.Color(colorful.Hsl(222.2, 0.474, 0.112).Clamped().Hex()), got)

	got, ok = sheet.Color("green-600")
	require.True(t, ok)
	require.Equal(t, lipgloss.Color("#16a34a"), got)

	_, ok = sheet.Color("radius")
	require.False(t, ok)
	_, ok = sheet.Color("green-650")
	require.False(t, ok)
	_, ok = sheet.Color("mauve-500")
	require.False(t, ok)
}

func TestStyleColours(t *testing.T) {
	t.Parallel()

	sheet := newTestSheet(t, map[string]string{
		"primary":   "0 100% 50%",
		"secondary": "120 100% 50%",
		"border":    "#0000ff",
	})

	style := sheet.Style("bg-primary text-secondary border border-border")
	assert.Equal(t, lipgloss.Color("#ff0000"), style.GetBackground())
	assert.Equal(t, lipgloss.Color("#00ff00"), style.GetForeground())
	assert.Equal(t, lipgloss.Color("#0000ff"), style.GetBorderTopForeground())
}

func TestStyleLaterClassesWin(t *testing.T) {
	t.Parallel()

	sheet := newTestSheet(t, map[string]string{
		"primary":   "0 100% 50%",
		"secondary": "120 100% 50%",
	})

	style := sheet.Style("bg-primary p-2 bg-secondary p-0")
	assert.Equal(t, lipgloss.Color("#00ff00"), style.GetBackground())
	assert.Zero(t, style.GetPaddingLeft())
}

func TestStyleReadsRegistryAtRenderTime(t *testing.T) {
	t.Parallel()

	registry := presentation.NewRegistry(presentation.WithRenderer(lipgloss.NewRenderer(io.Discard)))
	sheet := New(registry)

	registry.SetToken("primary", "0 100% 50%")
	assert.Equal(t, lipgloss.Color("#ff0000"), sheet.Style("bg-primary").GetBackground())

	registry.SetToken("primary", "0 0% 100%")
	assert.Equal(t, lipgloss.Color("#ffffff"), sheet.Style("bg-primary").GetBackground())
}

func TestStyleBorders(t *testing.T) {
	t.Parallel()

	rounded := newTestSheet(t, map[string]string{"radius": "0.5rem"})
	square := newTestSheet(t, map[string]string{"radius": "0rem"})

	assert.Equal(t, lipgloss.RoundedBorder(), rounded.Style("border").GetBorderStyle())
	assert.Equal(t, lipgloss.NormalBorder(), square.Style("border").GetBorderStyle())
	assert.Equal(t, lipgloss.ThickBorder(), rounded.Style("border border-thick").GetBorderStyle())
	assert.Equal(t, lipgloss.DoubleBorder(), square.Style("border-double").GetBorderStyle())

	sides := square.Style("border-t border-b")
	assert.Equal(t, lipgloss.NormalBorder(), sides.GetBorderStyle())
	assert.True(t, sides.GetBorderTop())
	assert.True(t, sides.GetBorderBottom())
	assert.False(t, sides.GetBorderLeft())
	assert.False(t, sides.GetBorderRight())

	none := square.Style("border border-none")
	assert.Equal(t, lipgloss.Border{}, none.GetBorderStyle())
	assert.Equal(t, "x", none.Render("x"))
}

func TestStyleSpacingAndSize(t *testing.T) {
	t.Parallel()

	sheet := newTestSheet(t, nil)
	style := sheet.Style("px-2 py-1 mt-1 ml-3 w-20 h-3 max-w-40")

	assert.Equal(t, 2, style.GetPaddingLeft())
	assert.Equal(t, 2, style.GetPaddingRight())
	assert.Equal(t, 1, style.GetPaddingTop())
	assert.Equal(t, 1, style.GetPaddingBottom())
	assert.Equal(t, 1, style.GetMarginTop())
	assert.Equal(t, 3, style.GetMarginLeft())
	assert.Equal(t, 20, style.GetWidth())
	assert.Equal(t, 3, style.GetHeight())
	assert.Equal(t, 40, style.GetMaxWidth())
}

func TestStyleText(t *testing.T) {
	t.Parallel()

	sheet := newTestSheet(t, nil)
	style := sheet.Style("bold italic underline faint strikethrough reverse align-center")

	assert.True(t, style.GetBold())
	assert.True(t, style.GetItalic())
	assert.True(t, style.GetUnderline())
	assert.True(t, style.GetFaint())
	assert.True(t, style.GetStrikethrough())
	assert.True(t, style.GetReverse())
	assert.Equal(t, lipgloss.Center, style.GetAlignHorizontal())

	assert.Equal(t, "LOUD", sheet.Render("uppercase", "loud"))
}

func TestStyleIgnoresUnknownClasses(t *testing.T) {
	t.Parallel()

	sheet := newTestSheet(t, nil)
	assert.Equal(t, "plain", sheet.Render("flex gap-2 text-sm bg-nope p-x -- shadow-card", "plain"))
	assert.Equal(t, "plain", sheet.Render("", "plain"))
}

func TestNilRegistryUsesPaletteOnly(t *testing.T) {
	t.Parallel()

	sheet := New(nil, WithRenderer(lipgloss.NewRenderer(io.Discard)))
	assert.False(t, sheet.Rounded())
	assert.Equal(t, lipgloss.Color("#ef4444"), sheet.Style("text-red-500 text-primary").GetForeground())
	assert.Equal(t, lipgloss.NormalBorder(), sheet.Style("border").GetBorderStyle())
}
