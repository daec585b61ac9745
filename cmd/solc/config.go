package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// projectConfig is solc.toml's shape: remappings, search paths, and
// evm-version/out-dir defaults. build reads only the search paths and
// remappings; evm_version and out_dir are decoded but not used. Every
// field is optional; an absent solc.toml is not an error.
type projectConfig struct {
	Project struct {
		ImportPaths []string `toml:"import_paths"`
		Remappings  []string `toml:"remappings"`
		EVMVersion  string   `toml:"evm_version"`
		OutDir      string   `toml:"out_dir"`
	} `toml:"project"`
}

// findSolcToml walks upward from startDir looking for solc.toml.
func findSolcToml(startDir string) (string, bool) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false
	}
	for {
		candidate := filepath.Join(dir, "solc.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func loadProjectConfig(path string) (projectConfig, error) {
	var cfg projectConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return projectConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return cfg, nil
}
