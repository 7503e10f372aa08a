package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Settings is what the editor integration hands to the resolver
type Settings struct {
	RootPath     string `yaml:"rootPath" json:"rootPath"`
	PathToJest   string `yaml:"pathToJest" json:"pathToJest"`
	PathToConfig string `yaml:"pathToConfig" json:"pathToConfig"`
}

// ForRoot returns a copy of s rooted at root
func (s Settings) ForRoot(root string) Settings {
	s.RootPath = root
	return s
}

// Validate checks the fields the resolver relies on
func (s Settings) Validate() error {
	if strings.TrimSpace(s.RootPath) == "" {
		return errors.New("root path is required")
	}
	return nil
}

// Config holds all configuration for the application
type Config struct {
	Settings Settings

	// Platform name, empty for the running host
	Platform string

	// Output settings
	OutputFile string
	JSON       bool

	// Paths to ignore when scanning
	PathsToIgnore []string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags. Empty strings mean "not given".
type Flags struct {
	SettingsFile string
	RootPath     string
	PathToJest   string
	PathToConfig string
	Platform     string
	Output       string
	NameFilter   string
	JSON         bool
	Verbose      bool
	LogJSON      bool
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		Settings: Settings{
			RootPath:     DefaultRootPath,
			PathToJest:   DefaultPathToJest,
			PathToConfig: DefaultPathToConfig,
		},
	}
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	return cfg
}

// Load builds a Config from, in increasing precedence: defaults, the
// settings file, the project's .env file and process environment, and flags.
func Load(flags Flags) (*Config, error) {
	cfg := New()
	cfg.Flags = flags

	if flags.SettingsFile != "" {
		file, err := ReadSettingsFile(flags.SettingsFile)
		if err != nil {
			return nil, err
		}
		cfg.Settings = merge(cfg.Settings, file)
	}

	cfg.Settings.RootPath = firstNonEmpty(flags.RootPath, os.Getenv(EnvRootPath), cfg.Settings.RootPath)
	root, err := filepath.Abs(cfg.Settings.RootPath)
	if err != nil {
		return nil, fmt.Errorf("resolve root path: %w", err)
	}
	cfg.Settings.RootPath = root

	if err := loadEnvFile(filepath.Join(root, DefaultEnvFile)); err != nil {
		return nil, err
	}

	cfg.Settings.PathToJest = firstNonEmpty(flags.PathToJest, os.Getenv(EnvPathToJest), cfg.Settings.PathToJest)
	cfg.Settings.PathToConfig = firstNonEmpty(flags.PathToConfig, os.Getenv(EnvPathToConfig), cfg.Settings.PathToConfig)

	cfg.Platform = flags.Platform
	cfg.OutputFile = flags.Output
	cfg.JSON = flags.JSON

	if err := cfg.Settings.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ReadSettingsFile parses a YAML or JSON settings file, chosen by extension
func ReadSettingsFile(path string) (Settings, error) {
	var s Settings

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read settings file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &s)
	default:
		err = yaml.Unmarshal(data, &s)
	}
	if err != nil {
		return s, fmt.Errorf("parse settings file %s: %w", path, err)
	}
	return s, nil
}

// GetOutputPath returns the absolute report path, relative paths being taken from the project root
func (c *Config) GetOutputPath() string {
	out := c.OutputFile
	if out == "" {
		out = DefaultOutputFile
	}
	if !filepath.IsAbs(out) {
		out = filepath.Join(c.Settings.RootPath, out)
	}
	if abs, err := filepath.Abs(out); err == nil {
		return abs
	}
	return out
}

// loadEnvFile applies path to the process environment without overriding
// variables that are already set. A missing file is not an error.
func loadEnvFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

func merge(base, override Settings) Settings {
	base.RootPath = firstNonEmpty(override.RootPath, base.RootPath)
	base.PathToJest = firstNonEmpty(override.PathToJest, base.PathToJest)
	base.PathToConfig = firstNonEmpty(override.PathToConfig, base.PathToConfig)
	return base
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
