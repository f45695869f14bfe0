package main

import (
	"path/filepath"
	"testing"

	"github.com/tsforge/tsc/internal/config"
)

func TestParseArgsInputAndOutput(t *testing.T) {
	input, output := parseArgs([]string{"a.ast.json", "-o", "out.tsb"})
	if input != "a.ast.json" || output != "out.tsb" {
		t.Fatalf("parseArgs = (%q, %q), want (a.ast.json, out.tsb)", input, output)
	}
}

func TestParseArgsIgnoresUnknownFlags(t *testing.T) {
	input, output := parseArgs([]string{"--debug", "a.ast.json"})
	if input != "a.ast.json" || output != "" {
		t.Fatalf("parseArgs = (%q, %q), want (a.ast.json, \"\")", input, output)
	}
}

func TestDefaultOutputPathWithoutConfig(t *testing.T) {
	got := defaultOutputPath("/proj/src/a.ast.json", &config.Config{}, "")
	want := filepath.Join("/proj/src", "a.tsb")
	if got != want {
		t.Fatalf("defaultOutputPath = %q, want %q", got, want)
	}
}

func TestDefaultOutputPathWithConfig(t *testing.T) {
	cfg := &config.Config{OutDir: "/proj/build"}
	got := defaultOutputPath("/proj/src/a.ast.json", cfg, "/proj/tsc.yaml")
	want := filepath.Join("/proj/build", "a.tsb")
	if got != want {
		t.Fatalf("defaultOutputPath = %q, want %q", got, want)
	}
}
