package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultOpenAIBaseURL = "https://api.openai.com"

// openaiHTTPClient is the default client for the OpenAI provider. It talks
// to an OpenAI-compatible HTTP API and implements both call shapes.
type openaiHTTPClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func newOpenAIHTTPClient(apiKey, baseURL string) *openaiHTTPClient {
	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}
	return &openaiHTTPClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		http:    &http.Client{Timeout: 120 * time.Second},
	}
}

// CreateResponse calls the structured-input responses endpoint and returns
// the concatenated output text.
func (c *openaiHTTPClient) CreateResponse(ctx context.Context, req ResponsesRequest) (string, error) {
	payload := map[string]interface{}{
		"model":       req.Model,
		"input":       req.Input,
		"temperature": req.Temperature,
	}

	body, err := c.post(ctx, "/v1/responses", payload)
	if err != nil {
		return "", err
	}

	var resp struct {
		Output []struct {
			Content []struct {
				Type string `json:"type"`
				Text string `json:"text"`
			} `json:"content"`
		} `json:"output"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("decoding responses payload: %w", err)
	}

	var text string
	for _, out := range resp.Output {
		for _, block := range out.Content {
			if block.Type == "output_text" {
				text += block.Text
			}
		}
	}
	return text, nil
}

// CreateChatCompletion calls the chat completions endpoint and returns the
// first choice's message content.
func (c *openaiHTTPClient) CreateChatCompletion(ctx context.Context, req ChatRequest) (string, error) {
	payload := map[string]interface{}{
		"model":       req.Model,
		"messages":    req.Messages,
		"temperature": req.Temperature,
	}

	body, err := c.post(ctx, "/v1/chat/completions", payload)
	if err != nil {
		return "", err
	}

	var resp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("decoding chat completions payload: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *openaiHTTPClient) post(ctx context.Context, path string, payload interface{}) ([]byte, error) {
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("api returned status %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
