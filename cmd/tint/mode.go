package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tint/internal/domain/theme"
)

func newModeCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mode",
		Short: "Show or change the persisted colour mode",
	}
	cmd.AddCommand(newModeGetCmd(flags))
	cmd.AddCommand(newModeSetCmd(flags))
	return cmd
}

func newModeGetCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Print the current colour mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, flags, "cli.mode")
			if err != nil {
				return err
			}
			defer a.Close()

			mode := a.engine.GetSystemColorMode()
			fmt.Fprintln(cmd.OutOrStdout(), mode)
			return nil
		},
	}
}

func newModeSetCmd(flags *rootFlags) *cobra.Command {
	modes := make([]string, 0, len(theme.ColorModes()))
	for _, m := range theme.ColorModes() {
		modes = append(modes, string(m))
	}

	return &cobra.Command{
		Use:       "set <" + strings.Join(modes, "|") + ">",
		Short:     "Persist a colour mode and apply its base theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: modes,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := theme.ParseColorMode(args[0])
			if err != nil {
				return newCommandError("set colour mode", args[0], err, "Use one of: light, dark, system.")
			}

			a, err := newApp(cmd, flags, "cli.mode")
			if err != nil {
				return err
			}
			defer a.Close()

			a.engine.ApplyBaseTheme(mode)

			effective := theme.ColorModeLight
			if a.engine.IsDark(mode) {
				effective = theme.ColorModeDark
			}
			out := cmd.OutOrStdout()
			if a.deps.Store == nil {
				fmt.Fprintf(out, "mode %s applied (%s), not persisted\n", mode, effective)
				return nil
			}
			fmt.Fprintf(out, "mode set to %s (%s)\n", mode, effective)
			return nil
		},
	}
}
