package main

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tint/internal/components"
	"github.com/alexisbeaulieu97/tint/internal/config"
	"github.com/alexisbeaulieu97/tint/internal/domain/theme"
	"github.com/alexisbeaulieu97/tint/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/tint/internal/infrastructure/preference"
	"github.com/alexisbeaulieu97/tint/internal/infrastructure/presentation"
	"github.com/alexisbeaulieu97/tint/internal/infrastructure/signal"
	"github.com/alexisbeaulieu97/tint/internal/ports"
	"github.com/alexisbeaulieu97/tint/internal/stylesheet"
	tinterrors "github.com/alexisbeaulieu97/tint/pkg/errors"
)

// newSystemSignal is replaced in tests.
var newSystemSignal = func(out io.Writer) ports.SystemSignal {
	if out == os.Stdout {
		return signal.Default()
	}
	if f, ok := out.(*os.File); ok {
		return signal.Chain{signal.NewEnvSignal(), signal.NewTerminalSignal(f)}
	}
	return signal.NewEnvSignal()
}

// app bundles the services a command needs. It lives for one invocation.
type app struct {
	ctx      context.Context
	cfg      *config.Config
	logger   ports.Logger
	registry *presentation.Registry
	sheet    *stylesheet.Stylesheet
	engine   *theme.Engine
	deps     theme.Dependencies
	closer   io.Closer
}

func newApp(cmd *cobra.Command, flags *rootFlags, component string) (*app, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}

	level := cfg.Log.Level
	if flags.verbose() {
		level = "debug"
	}
	base, err := logging.New(logging.Options{
		Writer:        cmd.ErrOrStderr(),
		Level:         level,
		HumanReadable: true,
		Layer:         "cli",
		Component:     component,
		File:          cfg.Log.File,
		MaxSizeMB:     cfg.Log.MaxSizeMB,
		MaxBackups:    cfg.Log.MaxBackups,
		MaxAgeDays:    cfg.Log.MaxAgeDays,
	})
	if err != nil {
		return nil, newCommandError("configure logging", "creating logger", err, "Use one of: debug, info, warn, error.")
	}

	store, closer, err := preference.Open(cfg.Preference.Backend, cfg.Preference.Path)
	if err != nil {
		return nil, newCommandError("open preferences", cfg.Preference.Backend+" store", err,
			tinterrors.SuggestionFor(err, "Check --store/--store-path or the preference section of your config."))
	}

	ctx := logging.NewCommandContext(cmd.Context())
	registry := presentation.NewRegistry(presentation.WithRenderer(lipgloss.NewRenderer(cmd.OutOrStdout())))
	sheet := stylesheet.New(registry)
	components.SetStylesheet(sheet)

	deps := theme.Dependencies{
		Store:    store,
		Signal:   newSystemSignal(cmd.OutOrStdout()),
		Registry: registry,
		Logger:   base,
	}
	engine := theme.NewEngine(deps, cfg.ThemeOptions()).WithContext(ctx)

	base.Debug(ctx, "command started", "backend", cfg.Preference.Backend)

	return &app{
		ctx:      ctx,
		cfg:      cfg,
		logger:   base,
		registry: registry,
		sheet:    sheet,
		engine:   engine,
		deps:     deps,
		closer:   closer,
	}, nil
}

// engineWith returns an engine sharing the app's store and registry but
// logging to logger and reading the system preference from sig.
func (a *app) engineWith(logger ports.Logger, sig ports.SystemSignal) *theme.Engine {
	deps := a.deps
	deps.Logger = logger
	deps.Signal = sig
	return theme.NewEngine(deps, a.cfg.ThemeOptions()).WithContext(a.ctx)
}

func (a *app) Close() error {
	if a == nil || a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

func loadConfig(flags *rootFlags) (*config.Config, error) {
	path := flags.configPath()
	explicit := path != ""
	if !explicit {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(config.ExpandPath(path), !explicit)
	if err != nil {
		return nil, newCommandError("load configuration", path, err,
			tinterrors.SuggestionFor(err, "Fix the configuration file or pass --config with a valid path."))
	}

	override := config.Config{
		Preference: config.PreferenceConfig{Backend: flags.store(), Path: flags.storePath()},
		Log:        config.LogConfig{Level: flags.logLevel()},
	}
	// A backend switched from the command line without a path gets that
	// backend's default location, not the path configured for the old one.
	if override.Preference.Backend != "" && override.Preference.Path == "" &&
		!strings.EqualFold(override.Preference.Backend, cfg.Preference.Backend) {
		override.Preference.Path = config.DefaultPreferencePath(override.Preference.Backend)
		cfg.Preference.Path = ""
	}
	if err := config.Override(cfg, override); err != nil {
		return nil, newCommandError("apply overrides", "flags and environment", err,
			tinterrors.SuggestionFor(err, "Use --store memory|file|sqlite|none and give --store-path for file and sqlite."))
	}
	return cfg, nil
}
