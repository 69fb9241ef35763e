package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// envPrefix namespaces environment overrides: TINT_STORE, TINT_STORE_PATH,
// TINT_CONFIG, TINT_VERBOSE and TINT_LOG_LEVEL.
const envPrefix = "TINT"

type rootFlags struct {
	v *viper.Viper
}

func (f *rootFlags) configPath() string { return f.v.GetString("config") }
func (f *rootFlags) verbose() bool      { return f.v.GetBool("verbose") }
func (f *rootFlags) store() string      { return f.v.GetString("store") }
func (f *rootFlags) storePath() string  { return f.v.GetString("store-path") }
func (f *rootFlags) logLevel() string   { return f.v.GetString("log-level") }

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	flags := &rootFlags{v: v}

	cmd := &cobra.Command{
		Use:           "tint",
		Short:         "tint manages the light/dark theme and renders the component kit",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := cmd.PersistentFlags()
	pf.String("config", "", "Path to the configuration file (default: user config dir)")
	pf.BoolP("verbose", "v", false, "Enable verbose logging")
	pf.String("store", "", "Preference backend: memory, file, sqlite or none")
	pf.String("store-path", "", "Path of the file or sqlite preference store")
	pf.String("log-level", "", "Log level: debug, info, warn or error")
	for _, name := range []string{"config", "verbose", "store", "store-path", "log-level"} {
		_ = v.BindPFlag(name, pf.Lookup(name))
	}

	cmd.AddCommand(newModeCmd(flags))
	cmd.AddCommand(newTokensCmd(flags))
	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
