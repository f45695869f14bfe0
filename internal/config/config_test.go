package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindWalksUpToNearestConfig(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ConfigFileName), []byte("outDir: build\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	found, err := Find(nested)
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	want := filepath.Join(root, ConfigFileName)
	if found != want {
		t.Fatalf("Find = %q, want %q", found, want)
	}
}

func TestFindReturnsEmptyWithoutError(t *testing.T) {
	dir := t.TempDir()
	found, err := Find(dir)
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	if found != "" {
		t.Fatalf("Find = %q, want empty", found)
	}
}

func TestParseDefaultsOptimizeAndSourceMapToTrue(t *testing.T) {
	cfg, err := Parse([]byte("outDir: build\n"), "tsc.yaml")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if !cfg.Optimizes() {
		t.Fatalf("Optimizes() = false, want true when unset")
	}
	if !cfg.EmitsSourceMap() {
		t.Fatalf("EmitsSourceMap() = false, want true when unset")
	}
}

func TestParseHonorsExplicitFalse(t *testing.T) {
	cfg, err := Parse([]byte("optimize: false\nemitSourceMap: false\n"), "tsc.yaml")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if cfg.Optimizes() {
		t.Fatalf("Optimizes() = true, want false")
	}
	if cfg.EmitsSourceMap() {
		t.Fatalf("EmitsSourceMap() = true, want false")
	}
}

func TestOutputDirDefaultsToOutNextToConfig(t *testing.T) {
	cfg := &Config{}
	got := cfg.OutputDir("/project")
	want := filepath.Join("/project", "out")
	if got != want {
		t.Fatalf("OutputDir = %q, want %q", got, want)
	}
}

func TestOutputDirHonorsExplicitOutDir(t *testing.T) {
	cfg := &Config{OutDir: "/custom/out"}
	if got := cfg.OutputDir("/project"); got != "/custom/out" {
		t.Fatalf("OutputDir = %q, want /custom/out", got)
	}
}
