package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"rate limited", &StatusError{Status: 429, Err: errors.New("too many requests")}, true},
		{"server error", &StatusError{Status: 503, Err: errors.New("overloaded")}, true},
		{"auth failure", &StatusError{Status: 401, Err: errors.New("invalid key")}, false},
		{"bad request", &StatusError{Status: 400, Err: errors.New("bad schema")}, false},
		{"deadline", context.DeadlineExceeded, true},
		{"cancelled", context.Canceled, false},
		{"rate limit in message", errors.New("openai: rate limit reached"), true},
		{"timeout in message", errors.New("dial tcp: i/o timeout"), true},
		{"plain failure", errors.New("model not found"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestStatusError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	err := &StatusError{Status: 500, Err: inner}
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "500")
}

func TestRedactSecret(t *testing.T) {
	assert.Equal(t,
		"auth failed for key [redacted] at [redacted]",
		redactSecret("auth failed for key sk-abc123 at sk-abc123", "sk-abc123"))
	assert.Equal(t, "unchanged", redactSecret("unchanged", ""))
}
