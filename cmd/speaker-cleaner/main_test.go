package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func noEnv(string) (string, bool) { return "", false }

func TestRealMain_StartupErrorsExitOne(t *testing.T) {
	dir := t.TempDir()
	malformed := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(malformed, []byte("ui: [unterminated\n"), 0644); err != nil {
		t.Fatal(err)
	}
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("ui: gtk\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing config file", []string{"-config", filepath.Join(dir, "absent.yaml")}, "absent.yaml"},
		{"malformed config file", []string{"-config", malformed}, "bad.yaml"},
		{"invalid config value", []string{"-config", invalid}, "gtk"},
		{"unknown flag", []string{"-bogus"}, "bogus"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			if code := realMain(tt.args, noEnv, &stderr); code != exitFailure {
				t.Errorf("exit status = %d, want %d", code, exitFailure)
			}
			if !strings.Contains(stderr.String(), tt.want) {
				t.Errorf("stderr %q does not mention %q", stderr.String(), tt.want)
			}
		})
	}
}

func TestRealMain_HelpExitsZero(t *testing.T) {
	var stderr bytes.Buffer
	if code := realMain([]string{"-h"}, noEnv, &stderr); code != 0 {
		t.Errorf("exit status = %d, want 0", code)
	}
	if !strings.Contains(stderr.String(), "-volume") {
		t.Errorf("usage not printed: %q", stderr.String())
	}
}
