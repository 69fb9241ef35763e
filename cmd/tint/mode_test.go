package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/tint/internal/config"
)

func TestModeGet_DefaultsToLightWithoutSignal(t *testing.T) {
	isolate(t)

	out, _, err := executeTint(t, "mode", "get", "--store", "memory")
	require.NoError(t, err)
	require.Equal(t, "light\n", out)
}

func TestModeGet_FollowsEnvironmentSignal(t *testing.T) {
	isolate(t)
	t.Setenv("TINT_PREFERS_DARK", "true")

	out, _, err := executeTint(t, "mode", "get", "--store", "memory")
	require.NoError(t, err)
	require.Equal(t, "dark\n", out)
}

func TestModeSet_PersistsToFileStore(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "prefs.yaml")

	out, _, err := executeTint(t, "mode", "set", "dark", "--store", "file", "--store-path", path)
	require.NoError(t, err)
	require.Contains(t, out, "mode set to dark (dark)")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var stored map[string]string
	require.NoError(t, yaml.Unmarshal(data, &stored))
	require.Equal(t, "dark", stored["color-mode"])

	out, _, err = executeTint(t, "mode", "get", "--store", "file", "--store-path", path)
	require.NoError(t, err)
	require.Equal(t, "dark\n", out)
}

func TestModeSet_PersistsToSQLiteStore(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "prefs.db")

	_, _, err := executeTint(t, "mode", "set", "SYSTEM", "--store", "sqlite", "--store-path", path)
	require.NoError(t, err)

	t.Setenv("TINT_PREFERS_DARK", "1")
	out, _, err := executeTint(t, "mode", "get", "--store", "sqlite", "--store-path", path)
	require.NoError(t, err)
	require.Equal(t, "system\n", out)
}

func TestModeSet_StoreFromEnvironment(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "env-prefs.yaml")
	t.Setenv("TINT_STORE", "file")
	t.Setenv("TINT_STORE_PATH", path)

	_, _, err := executeTint(t, "mode", "set", "light")
	require.NoError(t, err)
	require.FileExists(t, path)
}

func TestModeSet_DefaultStoreLivesInConfigDir(t *testing.T) {
	home := isolate(t)

	_, _, err := executeTint(t, "mode", "set", "dark")
	require.NoError(t, err)

	path := config.DefaultPreferencePath("file")
	require.True(t, strings.HasPrefix(path, home))
	require.FileExists(t, path)
}

func TestModeSet_NoneBackendIsHeadless(t *testing.T) {
	isolate(t)

	out, _, err := executeTint(t, "mode", "set", "dark", "--store", "none")
	require.NoError(t, err)
	require.Contains(t, out, "not persisted")
}

func TestModeSet_RejectsUnknownMode(t *testing.T) {
	isolate(t)

	_, _, err := executeTint(t, "mode", "set", "sepia", "--store", "memory")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to set colour mode")
	require.Contains(t, err.Error(), "Use one of: light, dark, system.")
}

func TestModeSet_InvalidBackend(t *testing.T) {
	isolate(t)

	_, _, err := executeTint(t, "mode", "set", "dark", "--store", "redis")
	require.Error(t, err)
	require.True(t, strings.HasPrefix(err.Error(), "Failed to apply overrides"))
}

func TestModeGet_ExplicitConfigMustExist(t *testing.T) {
	home := isolate(t)

	_, _, err := executeTint(t, "mode", "get", "--config", filepath.Join(home, "missing.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to load configuration")
}

func TestModeGet_UsesConfigFile(t *testing.T) {
	home := isolate(t)
	prefs := filepath.Join(home, "from-config.yaml")
	require.NoError(t, os.WriteFile(prefs, []byte("color-mode: dark\n"), 0o644))

	cfgPath := filepath.Join(home, "tint.yaml")
	cfg := "version: \"1\"\npreference:\n  backend: file\n  path: " + prefs + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	out, _, err := executeTint(t, "mode", "get", "--config", cfgPath)
	require.NoError(t, err)
	require.Equal(t, "dark\n", out)
}

func TestVerboseLogsToStderr(t *testing.T) {
	isolate(t)

	_, stderr, err := executeTint(t, "mode", "set", "dark", "--store", "memory", "-v")
	require.NoError(t, err)
	require.Contains(t, stderr, "color mode set")
}

func TestModeGet_BrokenConfigSuggestsLine(t *testing.T) {
	home := isolate(t)
	cfgPath := filepath.Join(home, "broken.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("version: \"1\"\noverrides: [1, 2\n"), 0o644))

	_, _, err := executeTint(t, "mode", "get", "--config", cfgPath)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Suggestion: Check the YAML near line")
}
