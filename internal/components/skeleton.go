package components

import (
	"strings"

	"github.com/alexisbeaulieu97/tint/internal/domain/variant"
)

// skeletonSpec declares the placeholder block.
var skeletonSpec = variant.Spec{Base: "bg-muted text-muted-foreground"}

// Skeleton is a placeholder drawn while content loads.
type Skeleton struct {
	base
	width  int
	height int
}

// NewSkeleton creates a width x height placeholder.
func NewSkeleton(width, height int) *Skeleton {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Skeleton{width: width, height: height}
}

// WithClass appends caller classes.
func (s *Skeleton) WithClass(class string) *Skeleton {
	s.class = class
	return s
}

// WithStylesheet renders through sheet instead of the shared stylesheet.
func (s *Skeleton) WithStylesheet(sheet Stylesheet) *Skeleton {
	s.sheet = sheet
	return s
}

// Classes returns the resolved class string.
func (s *Skeleton) Classes() string {
	return variant.Resolve(skeletonSpec, nil, s.class)
}

// View renders the placeholder.
func (s *Skeleton) View() string {
	row := strings.Repeat("░", s.width)
	rows := make([]string, s.height)
	for i := range rows {
		rows[i] = row
	}
	return s.render(s.Classes(), strings.Join(rows, "\n"))
}
