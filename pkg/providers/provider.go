// Package providers contains the adapters that connect the agent's tools to
// external observability and code backends. Each adapter exposes a set of
// capabilities; the tool builder materializes one tool per (capability,
// provider) pair, named "<capability>.<provider>".
package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/aws/smithy-go"
)

// Capability identifies one kind of question a provider can answer.
type Capability string

const (
	CapLogsSearch      Capability = "logs.search"
	CapLogsErrors      Capability = "logs.errors"
	CapMetricsQuery    Capability = "metrics.query"
	CapMetricsCPU      Capability = "metrics.cpu"
	CapMetricsMemory   Capability = "metrics.memory"
	CapMetricsLatency  Capability = "metrics.latency"
	CapCodeRead        Capability = "code.read"
	CapCodeSearch      Capability = "code.search"
	CapCodeListCommits Capability = "code.list_commits"
	CapCodeListRepos   Capability = "code.list_repos"
)

// Args holds validated tool input. Values come from JSON, so numbers arrive
// as float64.
type Args map[string]any

// String returns the string value for key, or "".
func (a Args) String(key string) string {
	if v, ok := a[key].(string); ok {
		return v
	}
	return ""
}

// StringOr returns the string value for key, or def when absent.
func (a Args) StringOr(key, def string) string {
	if v := a.String(key); v != "" {
		return v
	}
	return def
}

// Float returns the numeric value for key, or def when absent.
func (a Args) Float(key string, def float64) float64 {
	switch v := a[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

// Provider is one connected backend serving a set of capabilities.
// Invoke returns the observation text shown to the agent; transport and API
// failures come back as errors and are rendered as ERROR: observations by
// the tool layer.
type Provider interface {
	Name() string
	Capabilities() []Capability
	Invoke(ctx context.Context, capability Capability, args Args) (string, error)

	// Ping verifies connectivity with the backend, for health checks.
	Ping(ctx context.Context) error
}

// errUnsupportedCapability signals that a provider was asked for a
// capability it does not serve. Seeing it means the tool builder and the
// adapter disagree about the adapter's capability set.
func errUnsupportedCapability(provider string, cap Capability) error {
	return fmt.Errorf("provider %s does not serve capability %s", provider, cap)
}

// ErrUnauthorized marks a backend response that rejected the stored
// credentials. The registry reacts by marking the integration unhealthy,
// which removes its tools until a health probe passes again.
var ErrUnauthorized = errors.New("backend rejected credentials")

// statusError converts a non-OK provider response into an error, tagging
// 401/403 with ErrUnauthorized.
func statusError(provider string, status int) error {
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return fmt.Errorf("%s returned status %d: %w", provider, status, ErrUnauthorized)
	}
	return fmt.Errorf("%s returned status %d", provider, status)
}

// awsError tags AWS credential rejections with ErrUnauthorized. The SDK
// reports them as API error codes rather than bare HTTP statuses.
func awsError(operation string, err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "UnrecognizedClientException", "InvalidClientTokenId",
			"AccessDeniedException", "UnauthorizedOperation", "SignatureDoesNotMatch":
			return fmt.Errorf("%s failed: %v: %w", operation, err, ErrUnauthorized)
		}
	}
	return fmt.Errorf("%s failed: %w", operation, err)
}
