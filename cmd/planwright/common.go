package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mark3labs/planwright/internal/agent"
	"github.com/mark3labs/planwright/internal/config"
	"github.com/mark3labs/planwright/internal/provider"
)

// loadConfig loads the merged configuration and applies flag overrides for
// the keys shared by multiple commands. Flags only override when the user
// actually set them, preserving config-file and env values otherwise.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if f := cmd.Flags().Lookup("provider"); f != nil && f.Changed {
		cfg.Provider = f.Value.String()
	}
	if f := cmd.Flags().Lookup("output-dir"); f != nil && f.Changed {
		cfg.OutputDir = f.Value.String()
	}
	if f := cmd.Flags().Lookup("prompt-file"); f != nil && f.Changed {
		cfg.PromptFile = f.Value.String()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// newAgent builds a planning agent from the resolved configuration.
func newAgent(cfg *config.Config) (*agent.Agent, error) {
	a, err := agent.New(cfg.Provider, provider.Options{
		PromptFile:        cfg.PromptFile,
		OpenAIModel:       cfg.OpenAIModel,
		OpenAITemperature: cfg.Temperature,
		AnthropicModel:    cfg.AnthropicModel,
	})
	if err != nil {
		return nil, fmt.Errorf("creating %s agent: %w", cfg.Provider, err)
	}
	return a, nil
}
