package main

import (
	"bytes"
	"strings"
	"testing"
)

// TestGetVersion tests version resolution fallbacks.
func TestGetVersion(t *testing.T) {
	t.Parallel()

	if got := getVersion(); got == "" {
		t.Error("getVersion() should never be empty")
	}
	if got := getCommit(); got == "" {
		t.Error("getCommit() should never be empty")
	}
	if got := getDate(); got == "" {
		t.Error("getDate() should never be empty")
	}
}

// TestVersionCmd tests the version subcommand output.
func TestVersionCmd(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cmd := NewVersionCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "exportscout version") {
		t.Errorf("output missing version line: %s", out)
	}
	if !strings.Contains(out, "commit:") || !strings.Contains(out, "built:") {
		t.Errorf("output missing build details: %s", out)
	}
}
