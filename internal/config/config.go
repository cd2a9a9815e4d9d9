// Package config provides configuration loading and validation for helsegrad.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the tool's configuration file.
type Config struct {
	Organization OrganizationConfig `yaml:"organization"`
	Output       OutputConfig       `yaml:"output,omitempty"`
	DataDir      string             `yaml:"data_dir,omitempty"`
}

// OrganizationConfig identifies who is running assessments.
type OrganizationConfig struct {
	Name        string `yaml:"name"`
	Environment string `yaml:"environment,omitempty"`
	AssessedBy  string `yaml:"assessed_by,omitempty"`
}

// OutputConfig controls report generation defaults.
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // html or text
	Dir    string `yaml:"dir,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Output:  OutputConfig{Format: "html"},
		DataDir: defaultDataDir(),
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "helsegrad-data"
	}
	return filepath.Join(home, ".helsegrad")
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is from trusted source (config file)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// LoadOrDefault loads a config file if it exists, otherwise returns defaults.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "", "html", "text":
	default:
		return fmt.Errorf("output.format must be html or text, got %q", c.Output.Format)
	}

	if c.DataDir == "" {
		c.DataDir = defaultDataDir()
	}
	return nil
}

// DatabasePath returns the location of the assessment history database.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "helsegrad.db")
}

// AssessmentsDir returns the directory where assessment files are stored.
func (c *Config) AssessmentsDir() string {
	return filepath.Join(c.DataDir, "assessments")
}
