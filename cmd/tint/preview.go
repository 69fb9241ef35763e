package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tint/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/tint/internal/infrastructure/signal"
	"github.com/alexisbeaulieu97/tint/internal/tui/preview"
)

// runProgram is replaced in tests.
var runProgram = func(cmd *cobra.Command, model tea.Model) error {
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	_, err := p.Run()
	return err
}

func newPreviewCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Browse the component kit in both colour modes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, flags, "cli.preview")
			if err != nil {
				return err
			}
			defer a.Close()

			// The program owns the terminal once it starts: log lines wait in
			// the buffer and the background is queried now, not from Update.
			buffer := logging.NewEventBuffer(0)
			engine := a.engineWith(logging.NewBufferedLogger(buffer), signal.Freeze(a.deps.Signal))
			defer buffer.Flush(a.logger)

			mode := engine.Initialize()
			if err := runProgram(cmd, preview.NewModel(engine, a.sheet, mode)); err != nil {
				return newCommandError("run preview", "terminal program", err, "Run tint preview in an interactive terminal.")
			}
			return nil
		},
	}
}
