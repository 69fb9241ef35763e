package main

import (
	"bytes"
	"path/filepath"
	"testing"
)

// isolate points the default config directory at a temp dir and clears the
// environment the commands read.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	for _, key := range []string{"TINT_CONFIG", "TINT_STORE", "TINT_STORE_PATH", "TINT_VERBOSE", "TINT_LOG_LEVEL", "TINT_PREFERS_DARK", "COLORFGBG"} {
		t.Setenv(key, "")
	}
	return home
}

func executeTint(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
