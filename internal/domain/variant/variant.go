// Package variant resolves a component's declared variant axes and a caller's
// choices into a single utility-class string.
//
// Resolution is pure: it reads only its arguments, never fails, and degrades
// unknown or invalid choices to the axis default.
package variant

import (
	"fmt"
	"sort"
	"strings"
)

// Axis is one independent dimension of visual choice, e.g. "variant" or "size".
type Axis struct {
	Name    string
	Values  map[string]string
	Default string
}

// Spec describes a component's always-on classes and its ordered axes.
type Spec struct {
	Base string
	Axes []Axis
}

// Resolve composes base classes, then one fragment per axis in declaration
// order, then overrideClasses last so caller classes win.
//
// For each axis the chosen value is used when it is allowed, otherwise the
// axis default. Keys in chosen that name no axis are ignored.
func Resolve(spec Spec, chosen map[string]string, overrideClasses ...string) string {
	parts := make([]string, 0, len(spec.Axes)+len(overrideClasses)+1)
	parts = append(parts, spec.Base)
	for _, axis := range spec.Axes {
		parts = append(parts, axis.Values[axis.pick(chosen)])
	}
	parts = append(parts, overrideClasses...)
	return Join(parts...)
}

// Selection reports the value each axis resolves to for chosen.
func (s Spec) Selection(chosen map[string]string) map[string]string {
	out := make(map[string]string, len(s.Axes))
	for _, axis := range s.Axes {
		out[axis.Name] = axis.pick(chosen)
	}
	return out
}

// Validate checks the spec is well formed: axis names are non-empty and
// unique, every axis has values, and each default is one of its values.
func (s Spec) Validate() error {
	seen := make(map[string]struct{}, len(s.Axes))
	for i, axis := range s.Axes {
		if axis.Name == "" {
			return fmt.Errorf("axis %d: name is required", i)
		}
		if _, dup := seen[axis.Name]; dup {
			return fmt.Errorf("axis %q declared twice", axis.Name)
		}
		seen[axis.Name] = struct{}{}

		if len(axis.Values) == 0 {
			return fmt.Errorf("axis %q has no values", axis.Name)
		}
		if _, ok := axis.Values[axis.Default]; !ok {
			return fmt.Errorf("axis %q: default %q is not an allowed value", axis.Name, axis.Default)
		}
	}
	return nil
}

// Clone returns a deep copy of the spec; edits to the copy's axes or value
// maps never reach s.
func (s Spec) Clone() Spec {
	out := Spec{Base: s.Base}
	if s.Axes == nil {
		return out
	}
	out.Axes = make([]Axis, len(s.Axes))
	for i, axis := range s.Axes {
		values := make(map[string]string, len(axis.Values))
		for k, v := range axis.Values {
			values[k] = v
		}
		out.Axes[i] = Axis{Name: axis.Name, Values: values, Default: axis.Default}
	}
	return out
}

// Axis returns the axis called name.
func (s Spec) Axis(name string) (Axis, bool) {
	for _, axis := range s.Axes {
		if axis.Name == name {
			return axis, true
		}
	}
	return Axis{}, false
}

// Options lists the axis's allowed values, default first and the rest sorted.
func (a Axis) Options() []string {
	out := make([]string, 0, len(a.Values))
	for value := range a.Values {
		if value != a.Default {
			out = append(out, value)
		}
	}
	sort.Strings(out)
	if _, ok := a.Values[a.Default]; ok {
		out = append([]string{a.Default}, out...)
	}
	return out
}

func (a Axis) pick(chosen map[string]string) string {
	if value, ok := chosen[a.Name]; ok {
		if _, allowed := a.Values[value]; allowed {
			return value
		}
	}
	return a.Default
}

// Join concatenates class lists, collapsing whitespace and dropping empty
// entries. Order is preserved and duplicates are kept.
func Join(classes ...string) string {
	var b strings.Builder
	for _, list := range classes {
		for _, class := range strings.Fields(list) {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(class)
		}
	}
	return b.String()
}
