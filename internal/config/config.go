package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Default values applied when the config leaves a setting empty
const (
	DefaultPrefix = "tmpfix-"
	DefaultFormat = "table"
)

// Formats lists the supported output formats
var Formats = []string{"table", "markdown", "json"}

// Config holds the application configuration
type Config struct {
	Temp   TempSettings   `yaml:"temp"`
	Output OutputSettings `yaml:"output"`
}

// TempSettings controls where fixture files are created
type TempSettings struct {
	// Root is the directory fixtures are created in, empty for the host temp area
	Root   string `yaml:"root"`
	Prefix string `yaml:"prefix"`
}

// OutputSettings controls how command results are rendered
type OutputSettings struct {
	Format string `yaml:"format"`
}

var (
	// configCache stores the loaded configuration for the session
	configCache *Config
	// configOnce ensures configuration is loaded only once
	configOnce sync.Once
	// configError stores any error from loading configuration
	configError error
)

// LoadConfig loads configuration from available sources in precedence order
// Configuration is cached after first load
func LoadConfig() (*Config, error) {
	configOnce.Do(func() {
		configCache, configError = loadConfigUncached()
	})
	return configCache, configError
}

// loadConfigUncached loads configuration without caching
func loadConfigUncached() (*Config, error) {
	paths := []string{
		"./.tmpfix.yml",
		expandHome("~/.config/tmpfix/config.yml"),
	}

	for _, path := range paths {
		if cfg, err := loadConfigFile(path); err == nil {
			return cfg, nil
		}
	}

	return defaultConfig(), nil
}

// loadConfigFile loads configuration from a specific file
func loadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if cfg.Temp.Prefix == "" {
		cfg.Temp.Prefix = DefaultPrefix
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = DefaultFormat
	}
	if !slices.Contains(Formats, cfg.Output.Format) {
		return nil, fmt.Errorf("config file %s: unsupported output format %q", path, cfg.Output.Format)
	}
	cfg.Temp.Root = expandHome(cfg.Temp.Root)

	return &cfg, nil
}

// defaultConfig returns the default configuration
func defaultConfig() *Config {
	return &Config{
		Temp: TempSettings{
			Prefix: DefaultPrefix,
		},
		Output: OutputSettings{
			Format: DefaultFormat,
		},
	}
}

// expandHome expands the ~ character to the user's home directory
func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// resetConfigCache resets the configuration cache for testing
func resetConfigCache() {
	configCache = nil
	configOnce = sync.Once{}
	configError = nil
}
