// Package rtconfig loads the YAML configuration consumed by the
// richtext convenience layer and the richtextctl CLI: the Slack team ID
// stamped onto rendered deep links, and the strict/best-effort error
// policy described in the data model's error handling design.
package rtconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the richtext configuration file searched
// for when walking up from a starting directory.
const ConfigFileName = "richtext.yaml"

// Config holds the values a caller may pin once and reuse across many
// conversions, rather than threading them through every call.
type Config struct {
	// TeamID is stamped onto every mention deep link the GFM renderer
	// produces, ahead of id=, when non-empty.
	TeamID string `yaml:"team_id"`
	// RaiseOnError selects strict mode (errors propagate) over the
	// default best-effort mode (errors are absorbed into a degraded
	// result).
	RaiseOnError bool `yaml:"raise_on_error"`
}

// Load searches for richtext.yaml starting from the current working
// directory, walking up the directory tree. If none is found, it returns
// a zero-value Config (no team ID, best-effort mode).
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadFromPath(cwd)
}

// LoadFromPath searches for richtext.yaml starting from startPath,
// walking up the directory tree.
func LoadFromPath(startPath string) (*Config, error) {
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path for %q: %w", startPath, err)
	}

	currentPath := absPath
	for {
		configPath := filepath.Join(currentPath, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return parseConfigFile(configPath)
		}

		parentPath := filepath.Dir(currentPath)
		if parentPath == currentPath {
			break
		}
		currentPath = parentPath
	}

	return &Config{}, nil
}

func parseConfigFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		var yamlErr *yaml.TypeError
		if errors.As(err, &yamlErr) {
			return nil, fmt.Errorf("invalid YAML syntax: %v", yamlErr.Errors)
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return &cfg, nil
}
