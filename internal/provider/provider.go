// Package provider implements the pluggable plan-generation backends. A
// provider turns a free-text requirement into a Markdown implementation plan
// via a single blocking call. Three backends exist: a deterministic mock,
// OpenAI, and Anthropic.
package provider

import (
	"errors"
	"fmt"
)

// Provider selector tokens accepted by New.
const (
	Mock      = "mock"
	OpenAI    = "openai"
	Anthropic = "anthropic"
)

var (
	// ErrUnknownProvider indicates an unrecognized provider selector.
	ErrUnknownProvider = errors.New("unknown provider")

	// ErrMissingAPIKey indicates a required credential was neither passed
	// explicitly nor found in the environment.
	ErrMissingAPIKey = errors.New("api key not set")

	// ErrUnsupportedClient indicates an injected OpenAI client exposes
	// neither of the two supported call shapes.
	ErrUnsupportedClient = errors.New("client supports neither responses nor chat completions")
)

// Provider generates a Markdown implementation plan for a requirement.
// Providers are stateless with respect to the planning workflow; hosted
// variants may cache a lazily built network client internally.
type Provider interface {
	GeneratePlan(requirement string) (string, error)
}

// Options configures provider construction. Zero values fall back to
// environment variables and built-in defaults.
type Options struct {
	// PromptFile, if set, is read eagerly at construction; its full content
	// becomes the system/instruction prompt, taking precedence over
	// SystemPrompt.
	PromptFile string

	// SystemPrompt overrides the built-in default system prompt when
	// PromptFile is empty.
	SystemPrompt string

	// OpenAI settings.
	OpenAIKey         string
	OpenAIModel       string // default: OPENAI_MODEL env, then gpt-4o-mini
	OpenAITemperature float64
	OpenAIBaseURL     string
	// OpenAIClient injects a pre-built client, useful for tests. When set,
	// the API key requirement is waived.
	OpenAIClient any

	// Anthropic settings.
	AnthropicKey     string
	AnthropicModel   string // default: ANTHROPIC_MODEL env, then claude-3-5-sonnet-latest
	AnthropicBaseURL string
}

// Names returns the valid provider selector tokens.
func Names() []string {
	return []string{Mock, OpenAI, Anthropic}
}

// New constructs a provider for the given selector token. Unknown selectors
// and missing credentials are configuration errors raised here, not at call
// time.
func New(name string, opts Options) (Provider, error) {
	switch name {
	case Mock:
		return NewMock(), nil
	case OpenAI:
		return NewOpenAI(opts)
	case Anthropic:
		return NewAnthropic(opts)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, name)
	}
}
