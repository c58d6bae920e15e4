package llm

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// GeminiChat talks to Google Gemini via the official genai SDK.
type GeminiChat struct {
	client *genai.Client
	model  string
	apiKey string
}

// NewGeminiChat creates a Gemini client for the given API key and model.
func NewGeminiChat(ctx context.Context, apiKey, model string) (*GeminiChat, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiChat{client: client, model: model, apiKey: apiKey}, nil
}

// Model returns the model name.
func (c *GeminiChat) Model() string { return c.model }

// Complete sends the conversation as a non-streaming generation call.
// System messages become the system instruction; assistant messages map to
// Gemini's "model" role.
func (c *GeminiChat) Complete(ctx context.Context, messages []Message, opts Options) (string, error) {
	config := &genai.GenerateContentConfig{}
	if opts.Temperature > 0 {
		config.Temperature = genai.Ptr(opts.Temperature)
	}
	if opts.MaxTokens > 0 {
		config.MaxOutputTokens = int32(opts.MaxTokens)
	}

	contents := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			config.SystemInstruction = genai.NewContentFromText(m.Content, genai.RoleUser)
		case RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return "", c.wrapError(err)
	}
	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func (c *GeminiChat) wrapError(err error) error {
	scrubbed := errors.New(redactSecret(err.Error(), c.apiKey))

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &StatusError{Status: apiErr.Code, Err: scrubbed}
	}
	return fmt.Errorf("gemini generation failed: %w", scrubbed)
}
