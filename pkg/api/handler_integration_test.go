package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibemonitor/rca/ent/integration"
	"github.com/vibemonitor/rca/ent/llmconfig"
	"github.com/vibemonitor/rca/pkg/models"
)

func createGrafana(t *testing.T, ts *testServer, baseURL string) string {
	t.Helper()
	rec := ts.do(t, http.MethodPost, "/api/v1/integrations", models.CreateIntegrationRequest{
		Provider:    integration.ProviderGrafana,
		Name:        "prod grafana",
		Credentials: map[string]string{"api_token": "glsa_test_token"},
		Settings: map[string]any{
			"base_url":            baseURL,
			"loki_datasource_uid": "loki-1",
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp models.IntegrationResponse
	decodeJSON(t, rec, &resp)
	require.NotEmpty(t, resp.ID)
	return resp.ID
}

func TestIntegrationHandlers_Lifecycle(t *testing.T) {
	ts := newTestServer(t)
	id := createGrafana(t, ts, "https://grafana.example.com")

	rec := ts.do(t, http.MethodGet, "/api/v1/integrations", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []models.IntegrationResponse
	decodeJSON(t, rec, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "prod grafana", list[0].Name)
	// Credentials are write-only.
	assert.NotContains(t, rec.Body.String(), "glsa_test_token")
	assert.NotContains(t, rec.Body.String(), "encrypted_credentials")

	rec = ts.do(t, http.MethodGet, "/api/v1/integrations/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodDelete, "/api/v1/integrations/"+id, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/integrations/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestIntegrationHandlers_RejectsInvalidBody(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/integrations", models.CreateIntegrationRequest{
		Provider: integration.ProviderGrafana,
		Name:     "no creds",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckIntegrationHandler_ProbesBackend(t *testing.T) {
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(healthy.Close)

	ts := newTestServer(t)
	id := createGrafana(t, ts, healthy.URL)

	rec := ts.do(t, http.MethodPost, "/api/v1/integrations/"+id+"/health-check", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "healthy", resp["health_status"])

	// A dead backend marks the integration unhealthy but still answers 200.
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	t.Cleanup(dead.Close)
	deadID := createGrafana(t, ts, dead.URL)

	rec = ts.do(t, http.MethodPost, "/api/v1/integrations/"+deadID+"/health-check", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "unhealthy", resp["health_status"])

	integ, err := ts.client.Integration.Get(t.Context(), deadID)
	require.NoError(t, err)
	assert.Equal(t, integration.HealthStatusUnhealthy, integ.HealthStatus)
}

func TestLLMConfigHandlers(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/v1/llm-config", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.do(t, http.MethodPut, "/api/v1/llm-config", models.UpsertLLMConfigRequest{
		Provider: llmconfig.ProviderOpenai,
		Model:    "gpt-4o",
		APIKey:   "sk-own-key",
		Enabled:  true,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp models.LLMConfigResponse
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "gpt-4o", resp.Model)
	assert.NotContains(t, rec.Body.String(), "sk-own-key")

	rec = ts.do(t, http.MethodGet, "/api/v1/llm-config", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodDelete, "/api/v1/llm-config", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/llm-config", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
