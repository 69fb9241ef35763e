package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tint/internal/domain/theme"
	"github.com/alexisbeaulieu97/tint/internal/stylesheet"
)

type tokensOutput struct {
	Mode   theme.ColorMode   `json:"mode"`
	Dark   bool              `json:"dark"`
	Tokens map[string]string `json:"tokens"`
}

func newTokensCmd(flags *rootFlags) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Initialise the theme and print the active token values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, flags, "cli.tokens")
			if err != nil {
				return err
			}
			defer a.Close()

			mode := a.engine.Initialize()
			snap := a.registry.Snapshot()
			out := cmd.OutOrStdout()

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(tokensOutput{Mode: mode, Dark: snap.Dark, Tokens: snap.Tokens})
			}

			fmt.Fprintf(out, "mode: %s (dark: %t)\n\n", mode, snap.Dark)
			names := snap.Names()
			width := 0
			for _, name := range names {
				if w := runewidth.StringWidth(theme.VariableName(theme.Token(name))); w > width {
					width = w
				}
			}
			for _, name := range names {
				value := snap.Tokens[name]
				label := runewidth.FillRight(theme.VariableName(theme.Token(name)), width)
				fmt.Fprintf(out, "%s  %s%s\n", label, runewidth.FillRight(value, 24), swatch(a.sheet, value))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print tokens as JSON")
	return cmd
}

// swatch renders a two-cell sample of value when it is a colour.
func swatch(sheet *stylesheet.Stylesheet, value string) string {
	color, ok := stylesheet.ParseColor(value)
	if !ok {
		return ""
	}
	return " " + sheet.Style("").Background(color).Render(strings.Repeat(" ", 2))
}
