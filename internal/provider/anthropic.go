package provider

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mark3labs/planwright/internal/logger"
	"github.com/mark3labs/planwright/internal/prompt"
)

const (
	defaultAnthropicModel   = "claude-3-5-sonnet-latest"
	defaultAnthropicBaseURL = "https://api.anthropic.com"
	anthropicVersion        = "2023-06-01"
	anthropicMaxTokens      = 2048
)

// AnthropicProvider generates plans through the Anthropic messages API. The
// system prompt travels as a top-level field, separate from the user
// message.
type AnthropicProvider struct {
	apiKey       string
	model        string
	baseURL      string
	systemPrompt string
	maxTokens    int

	http *http.Client
}

// NewAnthropic constructs the Anthropic-backed provider. The API key is
// always required at construction.
func NewAnthropic(opts Options) (*AnthropicProvider, error) {
	apiKey := opts.AnthropicKey
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: ANTHROPIC_API_KEY environment variable not set", ErrMissingAPIKey)
	}

	model := opts.AnthropicModel
	if model == "" {
		model = os.Getenv("ANTHROPIC_MODEL")
	}
	if model == "" {
		model = defaultAnthropicModel
	}

	baseURL := opts.AnthropicBaseURL
	if baseURL == "" {
		baseURL = defaultAnthropicBaseURL
	}

	// The Anthropic variant has no default system prompt of its own; with no
	// override configured the system field is simply omitted.
	systemPrompt, err := prompt.ResolveSystem(opts.PromptFile, opts.SystemPrompt, "")
	if err != nil {
		return nil, err
	}

	return &AnthropicProvider{
		apiKey:       apiKey,
		model:        model,
		baseURL:      baseURL,
		systemPrompt: systemPrompt,
		maxTokens:    anthropicMaxTokens,
		http:         &http.Client{Timeout: 120 * time.Second},
	}, nil
}

// GeneratePlan makes a single blocking messages call and extracts the text
// of the first content block.
func (p *AnthropicProvider) GeneratePlan(requirement string) (string, error) {
	payload := map[string]interface{}{
		"model":      p.model,
		"max_tokens": p.maxTokens,
		"messages": []Message{
			{Role: "user", Content: prompt.RenderUser(requirement)},
		},
	}
	if p.systemPrompt != "" {
		payload["system"] = p.systemPrompt
	}

	reqBody, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	logger.Debug("anthropic: messages call with model %s", p.model)
	req, err := http.NewRequest(http.MethodPost, p.baseURL+"/v1/messages", bytes.NewBuffer(reqBody))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", p.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := p.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("api returned status %d: %s", resp.StatusCode, string(body))
	}

	var msg struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(body, &msg); err != nil {
		return "", fmt.Errorf("decoding messages payload: %w", err)
	}
	if len(msg.Content) == 0 {
		return "", nil
	}
	return strings.TrimSpace(msg.Content[0].Text), nil
}
