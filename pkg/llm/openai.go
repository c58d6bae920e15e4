package llm

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIChat talks to any OpenAI-compatible chat completion endpoint:
// openai.com itself, Azure OpenAI deployments, and the platform gateway
// (which fronts an OpenAI-compatible API).
type OpenAIChat struct {
	client *openai.Client
	model  string
	apiKey string
}

// NewOpenAIChat creates a client for an OpenAI-compatible endpoint.
// baseURL overrides the default api.openai.com host when non-empty.
func NewOpenAIChat(apiKey, model, baseURL string) *OpenAIChat {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIChat{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		apiKey: apiKey,
	}
}

// NewAzureChat creates a client for an Azure OpenAI deployment.
// baseURL is the resource endpoint (https://{resource}.openai.azure.com);
// model is the deployment name.
func NewAzureChat(apiKey, model, baseURL, apiVersion string) *OpenAIChat {
	cfg := openai.DefaultAzureConfig(apiKey, baseURL)
	if apiVersion != "" {
		cfg.APIVersion = apiVersion
	}
	return &OpenAIChat{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		apiKey: apiKey,
	}
}

// Model returns the model name.
func (c *OpenAIChat) Model() string { return c.model }

// Complete sends the conversation as a non-streaming chat completion.
func (c *OpenAIChat) Complete(ctx context.Context, messages []Message, opts Options) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: make([]openai.ChatCompletionMessage, 0, len(messages)),
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}
	if opts.Temperature > 0 {
		req.Temperature = opts.Temperature
	}
	if opts.MaxTokens > 0 {
		req.MaxTokens = opts.MaxTokens
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", c.wrapError(err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}

// wrapError converts SDK errors into StatusError and scrubs the API key from
// any error text the SDK may have captured.
func (c *OpenAIChat) wrapError(err error) error {
	scrubbed := errors.New(redactSecret(err.Error(), c.apiKey))

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &StatusError{Status: apiErr.HTTPStatusCode, Err: scrubbed}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &StatusError{Status: reqErr.HTTPStatusCode, Err: scrubbed}
	}
	return fmt.Errorf("chat completion failed: %w", scrubbed)
}
