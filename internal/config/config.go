// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mark3labs/planwright/internal/provider"
)

// Config holds all configuration values for planwright. API keys are
// deliberately absent: credentials come from OPENAI_API_KEY and
// ANTHROPIC_API_KEY and are read by the provider layer, never persisted to a
// config file.
type Config struct {
	Provider       string  `mapstructure:"provider" yaml:"provider"`
	OpenAIModel    string  `mapstructure:"openai_model" yaml:"openai_model"`
	AnthropicModel string  `mapstructure:"anthropic_model" yaml:"anthropic_model"`
	Temperature    float64 `mapstructure:"temperature" yaml:"temperature"`
	OutputDir      string  `mapstructure:"output_dir" yaml:"output_dir"`
	PromptFile     string  `mapstructure:"prompt_file" yaml:"prompt_file"`
	LogLevel       string  `mapstructure:"log_level" yaml:"log_level"`
	LogFile        string  `mapstructure:"log_file" yaml:"log_file"`
}

// Load loads configuration with full precedence:
// CLI flags > ENV vars > project config > XDG global config > defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("planwright")

	v.SetDefault("provider", provider.Mock)
	v.SetDefault("openai_model", "")
	v.SetDefault("anthropic_model", "")
	v.SetDefault("temperature", 0.2)
	v.SetDefault("output_dir", ".")
	v.SetDefault("prompt_file", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")

	v.SetEnvPrefix("PLANWRIGHT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Explicit ENV bindings for better parsing of non-string types
	for key, env := range map[string]string{
		"provider":        "PLANWRIGHT_PROVIDER",
		"openai_model":    "PLANWRIGHT_OPENAI_MODEL",
		"anthropic_model": "PLANWRIGHT_ANTHROPIC_MODEL",
		"temperature":     "PLANWRIGHT_TEMPERATURE",
		"output_dir":      "PLANWRIGHT_OUTPUT_DIR",
		"prompt_file":     "PLANWRIGHT_PROMPT_FILE",
		"log_level":       "PLANWRIGHT_LOG_LEVEL",
		"log_file":        "PLANWRIGHT_LOG_FILE",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	// Load global config first (if exists)
	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	// Merge project config on top (if exists)
	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configured provider selector is one of the known
// tokens.
func (c *Config) Validate() error {
	for _, name := range provider.Names() {
		if c.Provider == name {
			return nil
		}
	}
	return fmt.Errorf("invalid provider %q (valid: %s)", c.Provider, strings.Join(provider.Names(), ", "))
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path:
// $XDG_CONFIG_HOME/planwright/planwright.yml or
// ~/.config/planwright/planwright.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "planwright", "planwright.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "planwright", "planwright.yml")
}

// ProjectPath returns the project-local config path, ./planwright.yml in the
// current working directory.
func ProjectPath() string {
	return "planwright.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(ProjectPath(), data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
