package stylesheet

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ParseColor converts a token value into a terminal colour. It accepts HSL
// triplets ("222.2 47.4% 11.2%", optionally wrapped in hsl()), hex strings and
// ANSI palette indexes.
func ParseColor(value string) (lipgloss.Color, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}

	if strings.HasPrefix(value, "#") {
		c, err := colorful.Hex(value)
		if err != nil {
			return "", false
		}
		return lipgloss.Color(c.Hex()), true
	}

	if n, err := strconv.Atoi(value); err == nil {
		if n < 0 || n > 255 {
			return "", false
		}
		return lipgloss.Color(value), true
	}

	h, s, l, ok := parseHSL(value)
	if !ok {
		return "", false
	}
	return lipgloss.Color(colorful.Hsl(h, s, l).Clamped().Hex()), true
}

// parseHSL returns hue in degrees and saturation/lightness in [0,1].
func parseHSL(value string) (float64, float64, float64, bool) {
	value = strings.TrimSuffix(strings.TrimPrefix(value, "hsl("), ")")
	fields := strings.Fields(strings.ReplaceAll(value, ",", " "))
	if len(fields) != 3 {
		return 0, 0, 0, false
	}

	h, err := strconv.ParseFloat(strings.TrimSuffix(fields[0], "deg"), 64)
	if err != nil {
		return 0, 0, 0, false
	}
	s, ok := parsePercent(fields[1])
	if !ok {
		return 0, 0, 0, false
	}
	l, ok := parsePercent(fields[2])
	if !ok {
		return 0, 0, 0, false
	}
	return h, s, l, true
}

func parsePercent(field string) (float64, bool) {
	if !strings.HasSuffix(field, "%") {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(field, "%"), 64)
	if err != nil || v < 0 || v > 100 {
		return 0, false
	}
	return v / 100, true
}

// parseLength reads CSS lengths such as "0.5rem" or "4px". Unitless values
// are accepted.
func parseLength(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	for _, unit := range []string{"rem", "em", "px"} {
		if strings.HasSuffix(value, unit) {
			value = strings.TrimSuffix(value, unit)
			break
		}
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
