package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vibemonitor/rca/ent/integration"
	"github.com/vibemonitor/rca/ent/llmconfig"
	"github.com/vibemonitor/rca/pkg/config"
	"github.com/vibemonitor/rca/pkg/models"
)

// xorCipher is a trivial reversible CredentialCipher for tests.
type xorCipher struct{}

func (xorCipher) Encrypt(plaintext []byte) ([]byte, error) { return xorBytes(plaintext), nil }
func (xorCipher) Decrypt(ciphertext []byte) ([]byte, error) { return xorBytes(ciphertext), nil }

func xorBytes(in []byte) []byte {
	out := make([]byte, len(in))
	for i, b := range in {
		out[i] = b ^ 0x5a
	}
	return out
}

func TestIntegrationService_CredentialRoundtrip(t *testing.T) {
	client := setupTestClient(t)
	svc := NewIntegrationService(client.Client, xorCipher{}, &config.LLMConfig{})
	ctx := context.Background()

	integ, err := svc.CreateIntegration(ctx, models.CreateIntegrationRequest{
		WorkspaceID: "ws-1",
		Provider:    integration.ProviderGrafana,
		Name:        "prod grafana",
		Credentials: map[string]string{
			"api_key":  "glsa_secret",
			"base_url": "https://grafana.example.com",
		},
		Settings: map[string]any{"org_id": float64(1)},
	})
	require.NoError(t, err)
	assert.NotContains(t, string(integ.EncryptedCredentials), "glsa_secret")

	creds, err := svc.DecryptCredentials(integ)
	require.NoError(t, err)
	assert.Equal(t, "glsa_secret", creds["api_key"])
	assert.Equal(t, "https://grafana.example.com", creds["base_url"])
}

func TestIntegrationService_ListAndDelete(t *testing.T) {
	client := setupTestClient(t)
	svc := NewIntegrationService(client.Client, xorCipher{}, &config.LLMConfig{})
	ctx := context.Background()

	for _, p := range []integration.Provider{integration.ProviderGrafana, integration.ProviderDatadog} {
		_, err := svc.CreateIntegration(ctx, models.CreateIntegrationRequest{
			WorkspaceID: "ws-1",
			Provider:    p,
			Name:        string(p),
			Credentials: map[string]string{"api_key": "k"},
		})
		require.NoError(t, err)
	}

	list, err := svc.ListIntegrations(ctx, "ws-1")
	require.NoError(t, err)
	require.Len(t, list, 2)

	// Disabled integrations drop out of the enabled listing.
	err = client.Integration.UpdateOneID(list[0].ID).SetEnabled(false).Exec(ctx)
	require.NoError(t, err)

	enabled, err := svc.ListEnabledIntegrations(ctx, "ws-1")
	require.NoError(t, err)
	assert.Len(t, enabled, 1)

	// So do integrations whose last health check failed; a passing probe
	// brings them back.
	require.NoError(t, svc.UpdateHealth(ctx, list[1].ID, integration.HealthStatusUnhealthy))
	enabled, err = svc.ListEnabledIntegrations(ctx, "ws-1")
	require.NoError(t, err)
	assert.Len(t, enabled, 0)

	require.NoError(t, svc.UpdateHealth(ctx, list[1].ID, integration.HealthStatusHealthy))
	enabled, err = svc.ListEnabledIntegrations(ctx, "ws-1")
	require.NoError(t, err)
	assert.Len(t, enabled, 1)

	// Deleting from the wrong workspace fails.
	assert.ErrorIs(t, svc.DeleteIntegration(ctx, "ws-2", list[1].ID), ErrNotFound)
	require.NoError(t, svc.DeleteIntegration(ctx, "ws-1", list[1].ID))
}

func TestIntegrationService_UpsertLLMConfig(t *testing.T) {
	client := setupTestClient(t)
	llmCfg := &config.LLMConfig{
		ModelAllowlists: map[config.LLMProviderType][]string{
			config.ProviderOpenAI: {"gpt-4o"},
		},
	}
	svc := NewIntegrationService(client.Client, xorCipher{}, llmCfg)
	ctx := context.Background()

	cfg, err := svc.UpsertLLMConfig(ctx, models.UpsertLLMConfigRequest{
		WorkspaceID: "ws-1",
		Provider:    llmconfig.ProviderOpenai,
		Model:       "gpt-4o",
		APIKey:      "sk-secret",
		Enabled:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", cfg.Model)

	key, err := svc.DecryptAPIKey(cfg)
	require.NoError(t, err)
	assert.Equal(t, "sk-secret", key)

	// Upsert replaces the existing row instead of creating a second one.
	cfg2, err := svc.UpsertLLMConfig(ctx, models.UpsertLLMConfigRequest{
		WorkspaceID: "ws-1",
		Provider:    llmconfig.ProviderGemini,
		Model:       "gemini-2.0-flash",
		APIKey:      "new-key",
		Enabled:     false,
	})
	require.NoError(t, err)
	assert.Equal(t, cfg.ID, cfg2.ID)
	assert.Equal(t, llmconfig.ProviderGemini, cfg2.Provider)
	assert.False(t, cfg2.Enabled)

	all, err := client.LLMConfig.Query().All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestIntegrationService_UpsertLLMConfig_Validation(t *testing.T) {
	client := setupTestClient(t)
	llmCfg := &config.LLMConfig{
		ModelAllowlists: map[config.LLMProviderType][]string{
			config.ProviderOpenAI: {"gpt-4o"},
		},
	}
	svc := NewIntegrationService(client.Client, xorCipher{}, llmCfg)
	ctx := context.Background()

	// Model off the allowlist.
	_, err := svc.UpsertLLMConfig(ctx, models.UpsertLLMConfigRequest{
		WorkspaceID: "ws-1",
		Provider:    llmconfig.ProviderOpenai,
		Model:       "gpt-3.5-turbo",
		APIKey:      "sk-x",
	})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	// Azure requires a base URL.
	_, err = svc.UpsertLLMConfig(ctx, models.UpsertLLMConfigRequest{
		WorkspaceID: "ws-1",
		Provider:    llmconfig.ProviderAzureOpenai,
		Model:       "gpt-4o",
		APIKey:      "sk-x",
	})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}
