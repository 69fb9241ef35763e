package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tint/internal/components"
	"github.com/alexisbeaulieu97/tint/internal/domain/variant"
)

type resolveOptions struct {
	axes    map[string]string
	variant string
	size    string
	classes []string
	render  bool
	text    string
	explain bool
}

func newResolveCmd(flags *rootFlags) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <component>",
		Short: "Resolve a component's variant choices into its class string",
		Long: "Resolve prints the utility classes a component renders with for the given axis\n" +
			"choices. Unknown axes are ignored and unknown values fall back to the axis default.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: components.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, flags, opts, args[0])
		},
	}

	f := cmd.Flags()
	f.StringToStringVar(&opts.axes, "axis", nil, "Axis choices as name=value pairs")
	f.StringVar(&opts.variant, "variant", "", "Shorthand for --axis variant=<value>")
	f.StringVar(&opts.size, "size", "", "Shorthand for --axis size=<value>")
	f.StringArrayVar(&opts.classes, "class", nil, "Extra classes appended after the variant classes")
	f.BoolVar(&opts.render, "render", false, "Initialise the theme and render a sample with the classes")
	f.StringVar(&opts.text, "text", "", "Sample text for --render (default: the component name)")
	f.BoolVar(&opts.explain, "explain", false, "Print the value each axis resolved to")

	return cmd
}

func runResolve(cmd *cobra.Command, flags *rootFlags, opts *resolveOptions, name string) error {
	spec, ok := components.Lookup(name)
	if !ok {
		return newCommandError("resolve component", name, fmt.Errorf("unknown component %q", name),
			"Use one of: "+strings.Join(components.Names(), ", ")+".")
	}

	chosen := make(map[string]string, len(opts.axes)+2)
	for axis, value := range opts.axes {
		chosen[axis] = value
	}
	if opts.variant != "" {
		chosen["variant"] = opts.variant
	}
	if opts.size != "" {
		chosen["size"] = opts.size
	}

	classes := variant.Resolve(spec, chosen, opts.classes...)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, classes)

	if opts.explain {
		selection := spec.Selection(chosen)
		axes := make([]string, 0, len(selection))
		for axis := range selection {
			axes = append(axes, axis)
		}
		sort.Strings(axes)
		for _, axis := range axes {
			fmt.Fprintf(out, "%s=%s\n", axis, selection[axis])
		}
	}

	if !opts.render {
		return nil
	}

	a, err := newApp(cmd, flags, "cli.resolve")
	if err != nil {
		return err
	}
	defer a.Close()

	a.engine.Initialize()
	text := opts.text
	if text == "" {
		text = name
	}
	fmt.Fprintln(out, a.sheet.Render(classes, text))
	return nil
}
