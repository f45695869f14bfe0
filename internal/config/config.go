// Package config loads the compiler's project-level configuration file,
// the way a funxy.yaml would be loaded for a funxy project: a small
// yaml.v3-backed struct with defaults for unset fields (no validation of
// field values is done), discovered by
// walking up from the entry file's directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level tsc.yaml configuration.
type Config struct {
	// EntryFiles lists the source files to compile, relative to the
	// config file's directory. No default is filled in when omitted, and
	// the CLI does not read this field; it compiles the file it is given.
	EntryFiles []string `yaml:"entryFiles,omitempty"`

	// OutDir is where packaged bytecode images are written. Defaults to
	// "out" next to the config file.
	OutDir string `yaml:"outDir,omitempty"`

	// EmitSourceMap controls whether the packager includes SourceMap
	// entries in the image. Defaults to true.
	EmitSourceMap *bool `yaml:"emitSourceMap,omitempty"`

	// Optimize controls whether Subroutine.Optimise runs. Defaults to
	// true; set false to keep every Call as Call for easier bytecode
	// diffing while debugging the emitter itself.
	Optimize *bool `yaml:"optimize,omitempty"`
}

// Load reads and parses a tsc.yaml file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse parses tsc.yaml content from bytes. path is used only for error
// messages.
func Parse(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}

// Find searches for ConfigFileName starting from dir and walking up
// through parent directories. Returns an empty path and nil error if no
// config file is found anywhere above dir.
func Find(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// EmitsSourceMap reports the effective EmitSourceMap setting.
func (c *Config) EmitsSourceMap() bool {
	return c.EmitSourceMap == nil || *c.EmitSourceMap
}

// Optimizes reports the effective Optimize setting.
func (c *Config) Optimizes() bool {
	return c.Optimize == nil || *c.Optimize
}

// OutputDir returns OutDir, defaulting to "out" next to configDir.
func (c *Config) OutputDir(configDir string) string {
	if c.OutDir != "" {
		return c.OutDir
	}
	return filepath.Join(configDir, "out")
}
