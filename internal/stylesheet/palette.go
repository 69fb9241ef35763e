package stylesheet

import "github.com/charmbracelet/lipgloss"

// paletteShades lists the shade suffixes accepted after a family name,
// e.g. "green-600".
var paletteShades = [...]string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900"}

// palette holds fixed colours for classes that do not name a theme token.
var palette = map[string][len(paletteShades)]string{
	"slate":  {"#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8", "#64748b", "#475569", "#334155", "#1e293b", "#0f172a"},
	"gray":   {"#f9fafb", "#f3f4f6", "#e5e7eb", "#d1d5db", "#9ca3af", "#6b7280", "#4b5563", "#374151", "#1f2937", "#111827"},
	"blue":   {"#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa", "#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a"},
	"green":  {"#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80", "#22c55e", "#16a34a", "#15803d", "#166534", "#14532d"},
	"red":    {"#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171", "#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d"},
	"yellow": {"#fefce8", "#fef3c7", "#fde68a", "#fcd34d", "#fbbf24", "#eab308", "#ca8a04", "#a16207", "#854d0e", "#713f12"},
	"purple": {"#faf5ff", "#f3e8ff", "#e9d5ff", "#d8b4fe", "#c084fc", "#a855f7", "#9333ea", "#7c3aed", "#6b21a8", "#581c87"},
	"cyan":   {"#ecfeff", "#cffafe", "#a5f3fc", "#67e8f9", "#22d3ee", "#06b6d4", "#0891b2", "#0e7490", "#155e75", "#164e63"},
}

func paletteColor(name string) (lipgloss.Color, bool) {
	switch name {
	case "white":
		return lipgloss.Color("#ffffff"), true
	case "black":
		return lipgloss.Color("#000000"), true
	}

	for i := len(name) - 1; i > 0; i-- {
		if name[i] != '-' {
			continue
		}
		shades, ok := palette[name[:i]]
		if !ok {
			return "", false
		}
		for idx, shade := range paletteShades {
			if shade == name[i+1:] {
				return lipgloss.Color(shades[idx]), true
			}
		}
		return "", false
	}
	return "", false
}
