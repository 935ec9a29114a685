// Package config provides project configuration management, including
// reading and writing the pumpdesign configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the name of the project configuration file, stored at the
// project root next to the repository metadata.
const FileName = ".pumpdesign.json"

// Defaults applied when the config file is absent or fields are empty.
const (
	DefaultRemoteName = "origin"
	DefaultBranch     = "main"
	DefaultLabel      = "Auto update"
)

// ProjectConfig represents the project configuration
type ProjectConfig struct {
	RemoteName  string `json:"remoteName,omitempty"`
	RemoteURL   string `json:"remoteUrl,omitempty"`
	Branch      string `json:"branch,omitempty"`
	Label       string `json:"label,omitempty"`
	CatalogPath string `json:"catalogPath,omitempty"`

	// path the config was loaded from, used by Save
	path string
}

// Load reads the project configuration from dir. A missing file is not an
// error; defaults are returned.
func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, FileName)

	cfg := &ProjectConfig{path: configPath}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyDefaults()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read project config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse project config: %w", err)
	}

	cfg.path = configPath
	cfg.applyDefaults()
	return cfg, nil
}

// Exists reports whether a config file is present in dir.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, FileName))
	return err == nil
}

// Save writes the configuration back to the file it was loaded from.
func (c *ProjectConfig) Save() error {
	if c.path == "" {
		return fmt.Errorf("project config has no path")
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize project config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(c.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write project config: %w", err)
	}
	return nil
}

func (c *ProjectConfig) applyDefaults() {
	if c.RemoteName == "" {
		c.RemoteName = DefaultRemoteName
	}
	if c.Branch == "" {
		c.Branch = DefaultBranch
	}
	if c.Label == "" {
		c.Label = DefaultLabel
	}
}
