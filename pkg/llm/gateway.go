package llm

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/vibemonitor/rca/ent"
	"github.com/vibemonitor/rca/ent/llmconfig"
	"github.com/vibemonitor/rca/pkg/config"
	"github.com/vibemonitor/rca/pkg/services"
)

// Gateway resolves which model a workspace talks to and wraps every
// completion call with per-attempt timeouts and retry on transient errors.
//
// Resolution order: an enabled BYO-LLM config for the workspace wins;
// otherwise the platform model from process config is used. Only the
// platform path counts against the workspace quota — callers learn which
// path was taken from the Platform flag on the resolved model.
type Gateway struct {
	cfg          *config.LLMConfig
	integrations *services.IntegrationService
	platformKey  string
}

// ResolvedModel is a ChatModel plus how it was selected.
type ResolvedModel struct {
	ChatModel

	// Platform is true when the workspace is using the platform-operated
	// model rather than its own LLM credentials.
	Platform bool
}

// NewGateway creates a Gateway. The platform API key is read from the
// environment variable named in the config once, at startup.
func NewGateway(cfg *config.LLMConfig, integrations *services.IntegrationService) *Gateway {
	key := ""
	if cfg.Platform != nil {
		key = os.Getenv(cfg.Platform.APIKeyEnv)
	}
	return &Gateway{cfg: cfg, integrations: integrations, platformKey: key}
}

// ForWorkspace resolves the model for a workspace.
func (g *Gateway) ForWorkspace(ctx context.Context, workspaceID string) (*ResolvedModel, error) {
	byo, err := g.integrations.GetLLMConfig(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load workspace llm config: %w", err)
	}
	if byo == nil || !byo.Enabled {
		return g.platformModel(g.platformModelName())
	}
	model, err := g.byoModel(ctx, byo)
	if err != nil {
		return nil, err
	}
	return &ResolvedModel{ChatModel: model}, nil
}

// PlatformModel returns the platform model, optionally overriding the model
// name (the prompt guard runs a cheaper model through the same endpoint).
func (g *Gateway) PlatformModel(modelOverride string) (*ResolvedModel, error) {
	name := g.platformModelName()
	if modelOverride != "" {
		name = modelOverride
	}
	return g.platformModel(name)
}

// Complete runs one completion with the configured request timeout per
// attempt and exponential backoff on transient errors, up to the configured
// retry budget.
func (g *Gateway) Complete(ctx context.Context, model ChatModel, messages []Message, opts Options) (string, error) {
	var out string

	attempts := g.cfg.MaxRetries
	if attempts < 1 {
		attempts = 1
	}

	bo := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(attempts-1)), ctx)

	err := backoff.Retry(func() error {
		attemptCtx, cancel := context.WithTimeout(ctx, g.cfg.RequestTimeout)
		defer cancel()

		result, err := model.Complete(attemptCtx, messages, opts)
		if err != nil {
			if !IsRetryable(err) {
				return backoff.Permanent(err)
			}
			slog.Warn("Retrying LLM completion after transient error",
				"model", model.Model(), "error", err)
			return err
		}
		out = result
		return nil
	}, bo)
	if err != nil {
		return "", err
	}
	return out, nil
}

func (g *Gateway) platformModelName() string {
	if g.cfg.Platform == nil {
		return ""
	}
	return g.cfg.Platform.Model
}

func (g *Gateway) platformModel(modelName string) (*ResolvedModel, error) {
	if g.cfg.Platform == nil || g.cfg.Platform.BaseURL == "" || modelName == "" {
		return nil, fmt.Errorf("platform llm is not configured")
	}
	if g.platformKey == "" {
		return nil, fmt.Errorf("platform llm api key is not set (%s)", g.cfg.Platform.APIKeyEnv)
	}
	return &ResolvedModel{
		ChatModel: NewOpenAIChat(g.platformKey, modelName, g.cfg.Platform.BaseURL),
		Platform:  true,
	}, nil
}

// byoModel builds a client for a workspace's own LLM credentials.
func (g *Gateway) byoModel(ctx context.Context, cfg *ent.LLMConfig) (ChatModel, error) {
	apiKey, err := g.integrations.DecryptAPIKey(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt workspace llm key: %w", err)
	}

	baseURL := ""
	if cfg.BaseURL != nil {
		baseURL = *cfg.BaseURL
	}

	switch cfg.Provider {
	case llmconfig.ProviderOpenai:
		return NewOpenAIChat(apiKey, cfg.Model, baseURL), nil
	case llmconfig.ProviderAzureOpenai:
		apiVersion := ""
		if cfg.APIVersion != nil {
			apiVersion = *cfg.APIVersion
		}
		return NewAzureChat(apiKey, cfg.Model, baseURL, apiVersion), nil
	case llmconfig.ProviderGemini:
		return NewGeminiChat(ctx, apiKey, cfg.Model)
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.Provider)
	}
}

// RequestTimeout exposes the per-attempt completion timeout.
func (g *Gateway) RequestTimeout() time.Duration {
	return g.cfg.RequestTimeout
}
