package main

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

func TestConfigCommandPrintsEffectiveYAML(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("config command failed: %v", err)
	}
	for _, want := range []string{"gravity: 0.45", "spawn_interval_ms: 1500", "gap_margin: 20"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	old := flagLogLevel
	t.Cleanup(func() { flagLogLevel = old })

	flagLogLevel = "loud"
	if _, err := newLogger(io.Discard, "test"); err == nil {
		t.Error("expected an error for an unknown level")
	}

	flagLogLevel = "debug"
	if _, err := newLogger(io.Discard, "test"); err != nil {
		t.Errorf("debug should be accepted: %v", err)
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent to testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}
