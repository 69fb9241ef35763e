package components

import (
	"sort"

	"github.com/alexisbeaulieu97/tint/internal/domain/variant"
)

var catalog = map[string]variant.Spec{
	"alert":          alertSpec,
	"badge":          badgeSpec,
	"button":         buttonSpec,
	"card":           cardSpec,
	"checkbox":       checkboxSpec,
	"dialog":         dialogSpec,
	"header":         headerSpec,
	"input":          inputSpec,
	"label":          labelSpec,
	"section-header": sectionHeaderSpec,
	"select":         selectSpec,
	"select-item":    selectItemSpec,
	"skeleton":       skeletonSpec,
	"textarea":       textareaSpec,
}

// Names lists the catalogued components alphabetically.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns a copy of the named component's variant spec. Changing the
// copy does not change how the component renders.
func Lookup(name string) (variant.Spec, bool) {
	spec, ok := catalog[name]
	if !ok {
		return variant.Spec{}, false
	}
	return spec.Clone(), true
}
