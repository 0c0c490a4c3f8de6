// Package config handles loading retrotodo.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/neonterm/retrotodo/internal/paths"
)

// DefaultDataFile is used when no data file is configured.
const DefaultDataFile = "todo_data.json"

// Config represents the retrotodo.toml configuration file.
type Config struct {
	Storage  Storage  `toml:"storage"`
	UI       UI       `toml:"ui"`
	Defaults Defaults `toml:"defaults"`
}

// Storage contains persistence-related configuration.
type Storage struct {
	// DataFile is the path to the JSON task database.
	// Relative paths resolve against the working directory.
	DataFile string `toml:"data-file"`
}

// UI contains presentation-related configuration.
type UI struct {
	// Theme selects the color theme ("cyberpunk" or "plain").
	Theme string `toml:"theme"`

	// NoColor disables all styling regardless of theme.
	NoColor bool `toml:"no-color"`
}

// Defaults contains default field values for new tasks.
type Defaults struct {
	// Priority is the priority assigned when none is given ("medium" if unset).
	Priority string `toml:"priority"`
}

// Load loads configuration from the working directory and the global config
// file. Project values win per key. Returns an empty config if no config
// files exist.
func Load(dir string) (*Config, error) {
	globalPath, err := paths.GlobalConfigFile()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(paths.ProjectConfigFile(dir))
	if err != nil {
		return nil, err
	}

	return mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta), nil
}

// DataFilePath returns the configured data file, or DefaultDataFile
// resolved against dir when unset.
func (c *Config) DataFilePath(dir string) string {
	if c.Storage.DataFile != "" {
		if filepath.IsAbs(c.Storage.DataFile) {
			return c.Storage.DataFile
		}
		return filepath.Join(dir, c.Storage.DataFile)
	}
	return filepath.Join(dir, DefaultDataFile)
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, globalMeta, projectMeta toml.MetaData) *Config {
	merged := Config{}
	merged.Storage.DataFile = mergeString(projectMeta.IsDefined("storage", "data-file"), projectCfg.Storage.DataFile, globalCfg.Storage.DataFile)
	merged.UI.Theme = mergeString(projectMeta.IsDefined("ui", "theme"), projectCfg.UI.Theme, globalCfg.UI.Theme)
	merged.Defaults.Priority = mergeString(projectMeta.IsDefined("defaults", "priority"), projectCfg.Defaults.Priority, globalCfg.Defaults.Priority)

	if projectMeta.IsDefined("ui", "no-color") {
		merged.UI.NoColor = projectCfg.UI.NoColor
	} else if globalMeta.IsDefined("ui", "no-color") {
		merged.UI.NoColor = globalCfg.UI.NoColor
	}

	return &merged
}

func mergeString(projectDefined bool, projectValue, globalValue string) string {
	value := globalValue
	if projectDefined {
		value = projectValue
	}
	return strings.TrimSpace(value)
}
