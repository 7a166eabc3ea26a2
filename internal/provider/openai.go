package provider

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mark3labs/planwright/internal/logger"
	"github.com/mark3labs/planwright/internal/prompt"
)

const defaultOpenAIModel = "gpt-4o-mini"

// defaultTemperature is used when Options leaves the temperature unset.
const defaultTemperature = 0.2

// Message is a single role/content chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ResponsesRequest is the structured-input call payload.
type ResponsesRequest struct {
	Model       string
	Input       []Message
	Temperature float64
}

// ChatRequest is the chat-completions call payload.
type ChatRequest struct {
	Model       string
	Messages    []Message
	Temperature float64
}

// ResponsesCaller is the structured-input call shape. Clients that support
// the modern responses endpoint implement it.
type ResponsesCaller interface {
	CreateResponse(ctx context.Context, req ResponsesRequest) (string, error)
}

// ChatCaller is the chat-message call shape used as a fallback.
type ChatCaller interface {
	CreateChatCompletion(ctx context.Context, req ChatRequest) (string, error)
}

// OpenAIProvider generates plans through an OpenAI-compatible backend. It
// prefers the structured-input call shape and falls back to chat completions
// when the client does not support it. The client is held as `any` so tests
// can inject doubles exposing only the shapes under test.
type OpenAIProvider struct {
	apiKey       string
	model        string
	temperature  float64
	baseURL      string
	systemPrompt string

	client any // injected for tests; otherwise built lazily
}

// NewOpenAI constructs the OpenAI-backed provider. A missing API key is a
// configuration error unless a client is injected.
func NewOpenAI(opts Options) (*OpenAIProvider, error) {
	apiKey := opts.OpenAIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" && opts.OpenAIClient == nil {
		return nil, fmt.Errorf("%w: OPENAI_API_KEY environment variable not set", ErrMissingAPIKey)
	}

	model := opts.OpenAIModel
	if model == "" {
		model = os.Getenv("OPENAI_MODEL")
	}
	if model == "" {
		model = defaultOpenAIModel
	}

	temperature := opts.OpenAITemperature
	if temperature == 0 {
		temperature = defaultTemperature
	}

	systemPrompt, err := prompt.ResolveSystem(opts.PromptFile, opts.SystemPrompt, prompt.DefaultSystemPrompt)
	if err != nil {
		return nil, err
	}

	return &OpenAIProvider{
		apiKey:       apiKey,
		model:        model,
		temperature:  temperature,
		baseURL:      opts.OpenAIBaseURL,
		systemPrompt: systemPrompt,
		client:       opts.OpenAIClient,
	}, nil
}

func (p *OpenAIProvider) getClient() any {
	if p.client == nil {
		p.client = newOpenAIHTTPClient(p.apiKey, p.baseURL)
	}
	return p.client
}

// GeneratePlan makes a single blocking call to the backend. The structured
// call shape is tried first; an empty result falls through to the chat
// shape. A client exposing neither shape is a runtime error.
func (p *OpenAIProvider) GeneratePlan(requirement string) (string, error) {
	client := p.getClient()
	ctx := context.Background()

	messages := []Message{
		{Role: "system", Content: p.systemPrompt},
		{Role: "user", Content: prompt.RenderUser(requirement)},
	}

	if rc, ok := client.(ResponsesCaller); ok {
		logger.Debug("openai: trying responses call with model %s", p.model)
		text, err := rc.CreateResponse(ctx, ResponsesRequest{
			Model:       p.model,
			Input:       messages,
			Temperature: p.temperature,
		})
		if err != nil {
			return "", fmt.Errorf("openai responses call failed: %w", err)
		}
		if plan := strings.TrimSpace(text); plan != "" {
			return plan, nil
		}
	}

	if cc, ok := client.(ChatCaller); ok {
		logger.Debug("openai: trying chat completions call with model %s", p.model)
		text, err := cc.CreateChatCompletion(ctx, ChatRequest{
			Model:       p.model,
			Messages:    messages,
			Temperature: p.temperature,
		})
		if err != nil {
			return "", fmt.Errorf("openai chat completions call failed: %w", err)
		}
		return strings.TrimSpace(text), nil
	}

	return "", ErrUnsupportedClient
}
