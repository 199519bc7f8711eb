package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iancoleman/strcase"
	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration for jsonlit
type Config struct {
	Package    string           `yaml:"package"`
	VarName    string           `yaml:"var_name"`
	Formatting FormattingConfig `yaml:"formatting"`
	Naming     NamingConfig     `yaml:"naming"`
	Output     OutputConfig     `yaml:"output"`
	Dev        DevConfig        `yaml:"dev"`
}

// FormattingConfig controls code formatting options
type FormattingConfig struct {
	Enabled bool `yaml:"enabled"`
}

// NamingConfig controls the naming of the generated variable
type NamingConfig struct {
	PascalCaseVars bool              `yaml:"pascal_case_vars"`
	VarMappings    map[string]string `yaml:"var_mappings"`
}

// OutputConfig controls output generation options
type OutputConfig struct {
	FileHeader string `yaml:"file_header"`
	ExprOnly   bool   `yaml:"expr_only"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug   bool `yaml:"debug"`
	Verbose bool `yaml:"verbose"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Package: "main",
		VarName: "Doc",
		Formatting: FormattingConfig{
			Enabled: true,
		},
		Naming: NamingConfig{
			PascalCaseVars: true,
			VarMappings:    make(map[string]string),
		},
		Output: OutputConfig{},
		Dev: DevConfig{
			Debug:   false,
			Verbose: false,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".jsonlit.yml", ".jsonlit.yaml", "jsonlit.yml", "jsonlit.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// GetVarName returns the Go variable name for the generated value, applying
// naming rules
func (c *Config) GetVarName(requested string) string {
	if requested == "" {
		requested = c.VarName
	}

	// Check custom mappings first
	if mapped, exists := c.Naming.VarMappings[requested]; exists {
		return mapped
	}

	if c.Naming.PascalCaseVars {
		return strcase.ToCamel(requested)
	}

	return requested
}

// LoadConfigWithCLI loads config with CLI argument precedence
func LoadConfigWithCLI(configPath, cliPackage, cliVarName string, cliExprOnly bool) (*Config, error) {
	// Start with defaults
	cfg := NewConfig()

	// Load config file if provided
	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	// Apply CLI overrides only if they're not the default values.
	// This allows config file values to be used when CLI args are defaults.
	if cliPackage != "" && cliPackage != "main" {
		cfg.Package = cliPackage
	}
	if cliVarName != "" && cliVarName != "Doc" {
		cfg.VarName = cliVarName
	}
	if cliExprOnly {
		cfg.Output.ExprOnly = true
	}

	return cfg, nil
}
