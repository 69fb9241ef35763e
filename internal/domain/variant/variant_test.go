package variant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func buttonSpec() Spec {
	return Spec{
		Base: "btn bold",
		Axes: []Axis{
			{
				Name: "variant",
				Values: map[string]string{
					"default":     "bg-primary text-primary-foreground",
					"destructive": "bg-destructive text-destructive-foreground",
					"ghost":       "",
				},
				Default: "default",
			},
			{
				Name: "size",
				Values: map[string]string{
					"sm":      "h-8 px-2",
					"default": "h-10 px-4",
					"lg":      "h-11 px-8",
				},
				Default: "default",
			},
		},
	}
}

func TestResolveScenario(t *testing.T) {
	t.Parallel()

	spec := Spec{
		Base: "btn",
		Axes: []Axis{{
			Name:    "size",
			Values:  map[string]string{"sm": "h-8", "default": "h-10"},
			Default: "default",
		}},
	}

	require.Equal(t, "btn h-8 extra-class", Resolve(spec, map[string]string{"size": "sm"}, "extra-class"))
}

func TestResolveDeclarationOrder(t *testing.T) {
	t.Parallel()

	got := Resolve(buttonSpec(), map[string]string{"size": "lg", "variant": "destructive"})
	require.Equal(t, "btn bold bg-destructive text-destructive-foreground h-11 px-8", got)
}

func TestResolveDefaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		chosen map[string]string
		want   string
	}{
		{name: "nil choices", chosen: nil, want: "btn bold bg-primary text-primary-foreground h-10 px-4"},
		{name: "invalid value", chosen: map[string]string{"size": "xxl"}, want: "btn bold bg-primary text-primary-foreground h-10 px-4"},
		{name: "unknown axis ignored", chosen: map[string]string{"tone": "loud", "size": "sm"}, want: "btn bold bg-primary text-primary-foreground h-8 px-2"},
		{name: "empty fragment dropped", chosen: map[string]string{"variant": "ghost"}, want: "btn bold h-10 px-4"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, Resolve(buttonSpec(), tt.chosen))
		})
	}
}

func TestResolveOverridesComeLast(t *testing.T) {
	t.Parallel()

	got := Resolve(buttonSpec(), nil, "  bg-accent ", "", "italic")
	require.True(t, strings.HasSuffix(got, "bg-accent italic"), got)
}

func TestResolveIsDeterministic(t *testing.T) {
	t.Parallel()

	chosen := map[string]string{"variant": "destructive", "size": "sm"}
	first := Resolve(buttonSpec(), chosen, "w-20")
	for i := 0; i < 50; i++ {
		require.Equal(t, first, Resolve(buttonSpec(), chosen, "w-20"))
	}
}

func TestResolveContainsOneFragmentPerAxis(t *testing.T) {
	t.Parallel()

	spec := buttonSpec()
	for variantName := range spec.Axes[0].Values {
		for size, sizeClasses := range spec.Axes[1].Values {
			got := Resolve(spec, map[string]string{"variant": variantName, "size": size})
			want := Join(spec.Base, spec.Axes[0].Values[variantName], sizeClasses)
			require.Equal(t, want, got)
		}
	}
}

func TestResolveEmptySpec(t *testing.T) {
	t.Parallel()

	require.Equal(t, "", Resolve(Spec{}, map[string]string{"size": "sm"}))
	require.Equal(t, "only", Resolve(Spec{}, nil, "only"))
}

func TestSelection(t *testing.T) {
	t.Parallel()

	got := buttonSpec().Selection(map[string]string{"size": "sm", "variant": "bogus"})
	require.Equal(t, map[string]string{"variant": "default", "size": "sm"}, got)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, buttonSpec().Validate())

	tests := []struct {
		name string
		spec Spec
		want string
	}{
		{name: "missing default", spec: Spec{Axes: []Axis{{Name: "size", Values: map[string]string{"sm": "h-8"}, Default: "md"}}}, want: "not an allowed value"},
		{name: "duplicate axis", spec: Spec{Axes: []Axis{
			{Name: "size", Values: map[string]string{"sm": ""}, Default: "sm"},
			{Name: "size", Values: map[string]string{"sm": ""}, Default: "sm"},
		}}, want: "declared twice"},
		{name: "unnamed axis", spec: Spec{Axes: []Axis{{Values: map[string]string{"a": ""}, Default: "a"}}}, want: "name is required"},
		{name: "no values", spec: Spec{Axes: []Axis{{Name: "size"}}}, want: "has no values"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.spec.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestJoin(t *testing.T) {
	t.Parallel()

	require.Equal(t, "a b c a", Join(" a  b", "", "c\ta"))
	require.Equal(t, "", Join())
}

func TestAxisLookupAndOptions(t *testing.T) {
	t.Parallel()

	spec := Spec{Axes: []Axis{
		{Name: "size", Default: "md", Values: map[string]string{"sm": "px-1", "md": "px-2", "lg": "px-3"}},
	}}

	axis, ok := spec.Axis("size")
	require.True(t, ok)
	require.Equal(t, []string{"md", "lg", "sm"}, axis.Options())

	_, ok = spec.Axis("variant")
	require.False(t, ok)

	broken := Axis{Name: "x", Default: "missing", Values: map[string]string{"b": "", "a": ""}}
	require.Equal(t, []string{"a", "b"}, broken.Options())
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()

	original := buttonSpec()
	want := Resolve(original, map[string]string{"variant": "destructive"})

	clone := original.Clone()
	require.Equal(t, original, clone)

	clone.Base = "changed"
	clone.Axes[0].Values["destructive"] = "bg-hacked"
	clone.Axes[1].Default = "lg"
	clone.Axes = append(clone.Axes, Axis{Name: "shape", Default: "x", Values: map[string]string{"x": "rounded"}})

	require.Equal(t, want, Resolve(original, map[string]string{"variant": "destructive"}))
	require.Len(t, original.Axes, 2)
	require.Equal(t, Spec{}, Spec{}.Clone())
}
