// Package llm provides chat completion clients for the supported model
// backends and a Gateway that picks the right one per workspace.
//
// The agent talks to models through plain text conversations — tool use is
// expressed in the prompt, not through native function calling — so the
// contract here is deliberately small: a list of role-tagged messages in, a
// single assistant message out.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one entry in a chat conversation.
type Message struct {
	Role    string
	Content string
}

// Options tune a single completion call. Zero values mean provider defaults.
type Options struct {
	Temperature float32
	MaxTokens   int
}

// ChatModel is a single configured model endpoint.
type ChatModel interface {
	// Complete sends the conversation and returns the assistant's message.
	Complete(ctx context.Context, messages []Message, opts Options) (string, error)

	// Model returns the model name, for logging.
	Model() string
}

// ErrEmptyResponse is returned when a provider answers with no content.
var ErrEmptyResponse = errors.New("llm returned an empty response")

// StatusError carries the HTTP status a provider returned. Clients wrap
// provider-specific error types into this so retry classification doesn't
// depend on any one SDK.
type StatusError struct {
	Status int
	Err    error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("llm request failed with status %d: %v", e.Status, e.Err)
}

func (e *StatusError) Unwrap() error { return e.Err }

// IsRetryable classifies a completion error as transient (rate limit,
// server-side failure, timeout) or permanent (auth, validation).
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Status == 429 || statusErr.Status >= 500
	}

	msg := err.Error()
	for _, marker := range []string{
		"status code: 429", "status code: 5",
		"rate limit", "429", "500", "502", "503", "504",
		"timeout", "deadline exceeded", "connection reset",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// redactSecret removes occurrences of secret from s so API keys never end up
// in logs or persisted error messages via provider error text.
func redactSecret(s, secret string) string {
	if secret == "" {
		return s
	}
	return strings.ReplaceAll(s, secret, "[redacted]")
}
