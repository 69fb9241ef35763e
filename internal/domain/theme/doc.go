// Package theme holds the color-mode state machine and the canonical token
// sets.
//
// An Engine is created once at start-up and owned by the application's top
// level; components never reach it directly. They reference tokens by name
// through utility classes and the stylesheet reads the live values from the
// presentation registry the engine writes to:
//
//	engine := theme.NewEngine(theme.Dependencies{
//		Store:    store,
//		Signal:   signal.Chain{signal.NewEnvSignal(), signal.NewTerminalSignal(os.Stdout)},
//		Registry: registry,
//		Logger:   logger,
//	}, theme.Options{})
//	engine.Initialize()
package theme
