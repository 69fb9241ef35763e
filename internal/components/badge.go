package components

import "github.com/alexisbeaulieu97/tint/internal/domain/variant"

// BadgeVariant selects the badge colours.
type BadgeVariant string

const (
	BadgeVariantDefault     BadgeVariant = "default"
	BadgeVariantSecondary   BadgeVariant = "secondary"
	BadgeVariantDestructive BadgeVariant = "destructive"
	BadgeVariantOutline     BadgeVariant = "outline"
)

// badgeSpec declares the badge's variant axes.
var badgeSpec = variant.Spec{
	Base: "px-1 bold",
	Axes: []variant.Axis{{
		Name:    "variant",
		Default: string(BadgeVariantDefault),
		Values: map[string]string{
			string(BadgeVariantDefault):     "bg-primary text-primary-foreground",
			string(BadgeVariantSecondary):   "bg-secondary text-secondary-foreground",
			string(BadgeVariantDestructive): "bg-destructive text-destructive-foreground",
			string(BadgeVariantOutline):     "text-foreground border border-border",
		},
	}},
}

// Badge is a short inline status marker.
type Badge struct {
	base
	text    string
	variant BadgeVariant
}

// NewBadge creates a badge.
func NewBadge(text string, v BadgeVariant) *Badge {
	return &Badge{text: text, variant: v}
}

// WithClass appends caller classes.
func (b *Badge) WithClass(class string) *Badge {
	b.class = class
	return b
}

// WithStylesheet renders through sheet instead of the shared stylesheet.
func (b *Badge) WithStylesheet(sheet Stylesheet) *Badge {
	b.sheet = sheet
	return b
}

// Classes returns the resolved class string.
func (b *Badge) Classes() string {
	return variant.Resolve(badgeSpec, map[string]string{"variant": string(b.variant)}, b.class)
}

// View renders the badge.
func (b *Badge) View() string {
	return b.render(b.Classes(), b.text)
}
