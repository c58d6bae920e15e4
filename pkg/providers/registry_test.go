package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vibemonitor/rca/ent"
	"github.com/vibemonitor/rca/ent/integration"
	"github.com/vibemonitor/rca/pkg/config"
	"github.com/vibemonitor/rca/pkg/models"
	"github.com/vibemonitor/rca/pkg/providers/credentials"
	"github.com/vibemonitor/rca/pkg/services"
	testdb "github.com/vibemonitor/rca/test/database"
)

// countingCipher wraps a real cipher and counts decrypts, to observe the
// registry's credential cache.
type countingCipher struct {
	inner    services.CredentialCipher
	decrypts atomic.Int64
}

func (c *countingCipher) Encrypt(plaintext []byte) ([]byte, error) {
	return c.inner.Encrypt(plaintext)
}

func (c *countingCipher) Decrypt(ciphertext []byte) ([]byte, error) {
	c.decrypts.Add(1)
	return c.inner.Decrypt(ciphertext)
}

func newRegistryFixture(t *testing.T) (*Registry, *services.IntegrationService, *countingCipher) {
	t.Helper()
	client := testdb.NewTestClient(t)

	key := make([]byte, 32)
	copy(key, []byte("registry-test-key-0123456789abcd"))
	inner, err := credentials.NewCipher(key)
	require.NoError(t, err)

	cipher := &countingCipher{inner: inner}
	svc := services.NewIntegrationService(client.Client, cipher, &config.LLMConfig{})
	return NewRegistry(svc), svc, cipher
}

func createGrafanaIntegration(t *testing.T, svc *services.IntegrationService, workspaceID, baseURL string) *ent.Integration {
	t.Helper()
	integ, err := svc.CreateIntegration(context.Background(), models.CreateIntegrationRequest{
		WorkspaceID: workspaceID,
		Provider:    integration.ProviderGrafana,
		Name:        "prod grafana",
		Credentials: map[string]string{"api_token": "glsa_secret"},
		Settings: map[string]any{
			"base_url":            baseURL,
			"loki_datasource_uid": "loki-uid",
		},
	})
	require.NoError(t, err)
	return integ
}

func TestRegistry_BuildGrafana(t *testing.T) {
	reg, svc, _ := newRegistryFixture(t)
	integ := createGrafanaIntegration(t, svc, "ws-1", "http://grafana.local")

	p, err := reg.Build(context.Background(), integ)
	require.NoError(t, err)
	assert.Equal(t, "grafana", p.Name())
	assert.ElementsMatch(t, []Capability{CapLogsSearch, CapLogsErrors}, p.Capabilities())
}

func TestRegistry_BuildDecryptsStoredCredentials(t *testing.T) {
	reg, svc, _ := newRegistryFixture(t)
	integ, err := svc.CreateIntegration(context.Background(), models.CreateIntegrationRequest{
		WorkspaceID: "ws-1",
		Provider:    integration.ProviderGithub,
		Name:        "org github",
		Credentials: map[string]string{"token": "ghp_secret"},
		Settings:    map[string]any{"org": "acme"},
	})
	require.NoError(t, err)

	p, err := reg.Build(context.Background(), integ)
	require.NoError(t, err)
	assert.Equal(t, "ghp_secret", p.(*GitHub).token)
}

func TestRegistry_CredentialsCachedAcrossBuilds(t *testing.T) {
	reg, svc, cipher := newRegistryFixture(t)
	integ := createGrafanaIntegration(t, svc, "ws-1", "http://grafana.local")

	for range 3 {
		_, err := reg.Build(context.Background(), integ)
		require.NoError(t, err)
	}
	assert.Equal(t, int64(1), cipher.decrypts.Load())
}

func TestRegistry_ForWorkspaceSkipsMisconfigured(t *testing.T) {
	reg, svc, _ := newRegistryFixture(t)
	ctx := context.Background()

	createGrafanaIntegration(t, svc, "ws-1", "http://grafana.local")

	// Missing base_url: the adapter constructor rejects it, and the
	// registry should move on instead of failing the workspace.
	_, err := svc.CreateIntegration(ctx, models.CreateIntegrationRequest{
		WorkspaceID: "ws-1",
		Provider:    integration.ProviderGrafana,
		Name:        "broken grafana",
		Credentials: map[string]string{"api_token": "x"},
	})
	require.NoError(t, err)

	providers, err := reg.ForWorkspace(ctx, "ws-1")
	require.NoError(t, err)
	require.Len(t, providers, 1)
	assert.Equal(t, "grafana", providers[0].Name())
}

func TestRegistry_CredentialRejectionMarksUnhealthy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	reg, svc, _ := newRegistryFixture(t)
	ctx := context.Background()
	integ := createGrafanaIntegration(t, svc, "ws-1", srv.URL)

	provs, err := reg.ForWorkspace(ctx, "ws-1")
	require.NoError(t, err)
	require.Len(t, provs, 1)

	_, err = provs[0].Invoke(ctx, CapLogsSearch, Args{"service": "checkout"})
	require.ErrorIs(t, err, ErrUnauthorized)

	got, err := svc.GetIntegration(ctx, "ws-1", integ.ID)
	require.NoError(t, err)
	assert.Equal(t, integration.HealthStatusUnhealthy, got.HealthStatus)

	// The next manifest build no longer offers this integration's tools.
	provs, err = reg.ForWorkspace(ctx, "ws-1")
	require.NoError(t, err)
	assert.Empty(t, provs)
}

func TestRegistry_ForWorkspaceExcludesUnhealthy(t *testing.T) {
	reg, svc, _ := newRegistryFixture(t)
	ctx := context.Background()

	integ := createGrafanaIntegration(t, svc, "ws-1", "http://grafana.local")
	require.NoError(t, svc.UpdateHealth(ctx, integ.ID, integration.HealthStatusUnhealthy))

	providers, err := reg.ForWorkspace(ctx, "ws-1")
	require.NoError(t, err)
	assert.Empty(t, providers, "a failed health check must remove the provider's tools")
}

func TestRegistry_ForWorkspaceScopedToWorkspace(t *testing.T) {
	reg, svc, _ := newRegistryFixture(t)

	createGrafanaIntegration(t, svc, "ws-1", "http://grafana.local")
	createGrafanaIntegration(t, svc, "ws-2", "http://grafana.local")

	providers, err := reg.ForWorkspace(context.Background(), "ws-1")
	require.NoError(t, err)
	assert.Len(t, providers, 1)
}

func TestRegistry_CheckHealth(t *testing.T) {
	reg, svc, _ := newRegistryFixture(t)
	ctx := context.Background()

	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"database":"ok"}`))
	}))
	t.Cleanup(healthy.Close)
	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(down.Close)

	good := createGrafanaIntegration(t, svc, "ws-1", healthy.URL)
	require.NoError(t, reg.CheckHealth(ctx, good))
	got, err := svc.GetIntegration(ctx, "ws-1", good.ID)
	require.NoError(t, err)
	assert.Equal(t, integration.HealthStatusHealthy, got.HealthStatus)
	assert.NotNil(t, got.LastHealthCheckAt)

	bad := createGrafanaIntegration(t, svc, "ws-1", down.URL)
	require.Error(t, reg.CheckHealth(ctx, bad))
	got, err = svc.GetIntegration(ctx, "ws-1", bad.ID)
	require.NoError(t, err)
	assert.Equal(t, integration.HealthStatusUnhealthy, got.HealthStatus)
}
