package providers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/vibemonitor/rca/ent"
	"github.com/vibemonitor/rca/ent/integration"
	"github.com/vibemonitor/rca/pkg/services"
)

// credentialTTL bounds how long decrypted credentials stay in process
// memory. After expiry the next use decrypts again, so credential rotation
// takes effect within a minute.
const credentialTTL = 60 * time.Second

// httpTimeout bounds a single provider API request. Individual tool calls
// get a tighter deadline from the tool layer's context.
const httpTimeout = 30 * time.Second

// Registry materializes Provider adapters from a workspace's enabled
// integrations.
type Registry struct {
	integrations *services.IntegrationService
	httpClient   *http.Client

	mu    sync.Mutex
	cache map[string]credCacheEntry
}

type credCacheEntry struct {
	creds   map[string]string
	expires time.Time
}

// NewRegistry creates a Registry backed by the integration service.
func NewRegistry(integrations *services.IntegrationService) *Registry {
	return &Registry{
		integrations: integrations,
		httpClient:   &http.Client{Timeout: httpTimeout},
		cache:        make(map[string]credCacheEntry),
	}
}

// ForWorkspace returns adapters for every enabled integration in the
// workspace. Misconfigured integrations are skipped with a warning rather
// than failing the whole analysis: the agent simply sees fewer tools.
func (r *Registry) ForWorkspace(ctx context.Context, workspaceID string) ([]Provider, error) {
	integs, err := r.integrations.ListEnabledIntegrations(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list integrations: %w", err)
	}

	providers := make([]Provider, 0, len(integs))
	for _, integ := range integs {
		p, err := r.Build(ctx, integ)
		if err != nil {
			slog.Warn("Skipping misconfigured integration",
				"integration_id", integ.ID, "provider", integ.Provider, "error", err)
			continue
		}
		providers = append(providers, &authWatch{Provider: p, integrationID: integ.ID, registry: r})
	}
	return providers, nil
}

// authWatch wraps an adapter handed to the tool layer. A backend that
// rejects the stored credentials marks the integration unhealthy, dropping
// its tools from the next manifest build until a health probe passes.
type authWatch struct {
	Provider
	integrationID string
	registry      *Registry
}

func (w *authWatch) Invoke(ctx context.Context, capability Capability, args Args) (string, error) {
	out, err := w.Provider.Invoke(ctx, capability, args)
	if errors.Is(err, ErrUnauthorized) {
		slog.Warn("Integration credentials rejected, marking unhealthy",
			"integration_id", w.integrationID, "provider", w.Provider.Name())
		if updateErr := w.registry.integrations.UpdateHealth(ctx, w.integrationID, integration.HealthStatusUnhealthy); updateErr != nil {
			slog.Error("Failed to mark integration unhealthy",
				"integration_id", w.integrationID, "error", updateErr)
		}
	}
	return out, err
}

// Build constructs the adapter for one integration.
func (r *Registry) Build(ctx context.Context, integ *ent.Integration) (Provider, error) {
	creds, err := r.credentials(integ)
	if err != nil {
		return nil, err
	}

	switch integ.Provider {
	case integration.ProviderGrafana:
		return NewGrafana(integ.Settings, creds, r.httpClient)
	case integration.ProviderDatadog:
		return NewDatadog(integ.Settings, creds, r.httpClient)
	case integration.ProviderCloudwatch:
		return NewCloudWatch(ctx, integ.Settings, creds)
	case integration.ProviderNewrelic:
		return NewNewRelic(integ.Settings, creds, r.httpClient)
	case integration.ProviderGithub:
		return NewGitHub(integ.Settings, creds, r.httpClient)
	default:
		return nil, fmt.Errorf("unknown integration provider %q", integ.Provider)
	}
}

// CheckHealth pings the integration's backend and records the result.
func (r *Registry) CheckHealth(ctx context.Context, integ *ent.Integration) error {
	status := integration.HealthStatusHealthy

	p, err := r.Build(ctx, integ)
	if err == nil {
		err = p.Ping(ctx)
	}
	if err != nil {
		status = integration.HealthStatusUnhealthy
		slog.Warn("Integration health check failed",
			"integration_id", integ.ID, "provider", integ.Provider, "error", err)
	}

	if updateErr := r.integrations.UpdateHealth(ctx, integ.ID, status); updateErr != nil {
		return updateErr
	}
	return err
}

// credentials returns the integration's decrypted credentials, caching them
// for up to credentialTTL.
func (r *Registry) credentials(integ *ent.Integration) (map[string]string, error) {
	r.mu.Lock()
	if entry, ok := r.cache[integ.ID]; ok && time.Now().Before(entry.expires) {
		r.mu.Unlock()
		return entry.creds, nil
	}
	r.mu.Unlock()

	creds, err := r.integrations.DecryptCredentials(integ)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.cache[integ.ID] = credCacheEntry{creds: creds, expires: time.Now().Add(credentialTTL)}
	r.mu.Unlock()
	return creds, nil
}
