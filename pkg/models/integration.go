package models

import (
	"github.com/vibemonitor/rca/ent"
	"github.com/vibemonitor/rca/ent/integration"
	"github.com/vibemonitor/rca/ent/llmconfig"
)

// CreateIntegrationRequest contains fields for connecting a provider.
// Credentials arrive in plaintext and are encrypted before storage.
type CreateIntegrationRequest struct {
	WorkspaceID string               `json:"workspace_id"`
	Provider    integration.Provider `json:"provider"`
	Name        string               `json:"name"`
	Credentials map[string]string    `json:"credentials"`
	Settings    map[string]any       `json:"settings,omitempty"`
}

// IntegrationResponse wraps an Integration. The ent field holding
// encrypted credentials is marked Sensitive and never serializes.
type IntegrationResponse struct {
	*ent.Integration
}

// UpsertLLMConfigRequest contains fields for a workspace BYO-LLM config
type UpsertLLMConfigRequest struct {
	WorkspaceID string             `json:"workspace_id"`
	Provider    llmconfig.Provider `json:"provider"`
	Model       string             `json:"model"`
	APIKey      string             `json:"api_key"`
	BaseURL     string             `json:"base_url,omitempty"`
	APIVersion  string             `json:"api_version,omitempty"`
	Enabled     bool               `json:"enabled"`
}

// LLMConfigResponse wraps an LLMConfig
type LLMConfigResponse struct {
	*ent.LLMConfig
}
