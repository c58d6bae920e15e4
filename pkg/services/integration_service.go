package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vibemonitor/rca/ent"
	"github.com/vibemonitor/rca/ent/integration"
	"github.com/vibemonitor/rca/ent/llmconfig"
	"github.com/vibemonitor/rca/pkg/config"
	"github.com/vibemonitor/rca/pkg/models"
)

// CredentialCipher encrypts and decrypts provider secrets at rest.
type CredentialCipher interface {
	Encrypt(plaintext []byte) ([]byte, error)
	Decrypt(ciphertext []byte) ([]byte, error)
}

// IntegrationService manages provider integrations and workspace BYO-LLM
// configs. Secrets are encrypted before storage and only decrypted when a
// provider client is being built.
type IntegrationService struct {
	client *ent.Client
	cipher CredentialCipher
	llmCfg *config.LLMConfig
}

// NewIntegrationService creates a new IntegrationService
func NewIntegrationService(client *ent.Client, cipher CredentialCipher, llmCfg *config.LLMConfig) *IntegrationService {
	return &IntegrationService{client: client, cipher: cipher, llmCfg: llmCfg}
}

// CreateIntegration connects a provider to a workspace
func (s *IntegrationService) CreateIntegration(httpCtx context.Context, req models.CreateIntegrationRequest) (*ent.Integration, error) {
	if req.WorkspaceID == "" {
		return nil, NewValidationError("workspace_id", "required")
	}
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if len(req.Credentials) == 0 {
		return nil, NewValidationError("credentials", "required")
	}

	plaintext, err := json.Marshal(req.Credentials)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal credentials: %w", err)
	}
	encrypted, err := s.cipher.Encrypt(plaintext)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt credentials: %w", err)
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	create := s.client.Integration.Create().
		SetID(uuid.New().String()).
		SetWorkspaceID(req.WorkspaceID).
		SetProvider(req.Provider).
		SetName(req.Name).
		SetEncryptedCredentials(encrypted)
	if req.Settings != nil {
		create.SetSettings(req.Settings)
	}

	integ, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create integration: %w", err)
	}
	return integ, nil
}

// ListIntegrations returns all integrations of a workspace
func (s *IntegrationService) ListIntegrations(ctx context.Context, workspaceID string) ([]*ent.Integration, error) {
	if workspaceID == "" {
		return nil, NewValidationError("workspace_id", "required")
	}

	integrations, err := s.client.Integration.Query().
		Where(integration.WorkspaceIDEQ(workspaceID)).
		Order(ent.Asc(integration.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list integrations: %w", err)
	}
	return integrations, nil
}

// ListEnabledIntegrations returns the enabled integrations of a workspace,
// the set the tool builder materializes tools from. Integrations whose last
// health check failed are excluded until a probe brings them back.
func (s *IntegrationService) ListEnabledIntegrations(ctx context.Context, workspaceID string) ([]*ent.Integration, error) {
	integrations, err := s.client.Integration.Query().
		Where(
			integration.WorkspaceIDEQ(workspaceID),
			integration.EnabledEQ(true),
			integration.HealthStatusNEQ(integration.HealthStatusUnhealthy),
		).
		Order(ent.Asc(integration.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list enabled integrations: %w", err)
	}
	return integrations, nil
}

// GetIntegration retrieves a workspace integration
func (s *IntegrationService) GetIntegration(ctx context.Context, workspaceID, integrationID string) (*ent.Integration, error) {
	integ, err := s.client.Integration.Query().
		Where(
			integration.IDEQ(integrationID),
			integration.WorkspaceIDEQ(workspaceID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get integration: %w", err)
	}
	return integ, nil
}

// DeleteIntegration removes a workspace integration
func (s *IntegrationService) DeleteIntegration(ctx context.Context, workspaceID, integrationID string) error {
	n, err := s.client.Integration.Delete().
		Where(
			integration.IDEQ(integrationID),
			integration.WorkspaceIDEQ(workspaceID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete integration: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateHealth records the outcome of a provider health probe
func (s *IntegrationService) UpdateHealth(ctx context.Context, integrationID string, status integration.HealthStatus) error {
	err := s.client.Integration.UpdateOneID(integrationID).
		SetHealthStatus(status).
		SetLastHealthCheckAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update integration health: %w", err)
	}
	return nil
}

// DecryptCredentials returns the plaintext credential map of an integration
func (s *IntegrationService) DecryptCredentials(integ *ent.Integration) (map[string]string, error) {
	plaintext, err := s.cipher.Decrypt(integ.EncryptedCredentials)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt credentials: %w", err)
	}
	var creds map[string]string
	if err := json.Unmarshal(plaintext, &creds); err != nil {
		return nil, fmt.Errorf("failed to unmarshal credentials: %w", err)
	}
	return creds, nil
}

// UpsertLLMConfig creates or replaces the workspace BYO-LLM config.
// The model must be on the provider's allowlist.
func (s *IntegrationService) UpsertLLMConfig(httpCtx context.Context, req models.UpsertLLMConfigRequest) (*ent.LLMConfig, error) {
	if req.WorkspaceID == "" {
		return nil, NewValidationError("workspace_id", "required")
	}
	if req.Model == "" {
		return nil, NewValidationError("model", "required")
	}
	if req.APIKey == "" {
		return nil, NewValidationError("api_key", "required")
	}
	if !s.llmCfg.ModelAllowed(config.LLMProviderType(req.Provider), req.Model) {
		return nil, NewValidationError("model", fmt.Sprintf("model %q is not allowed for provider %s", req.Model, req.Provider))
	}
	if req.Provider == llmconfig.ProviderAzureOpenai && req.BaseURL == "" {
		return nil, NewValidationError("base_url", "required for azure_openai")
	}

	encryptedKey, err := s.cipher.Encrypt([]byte(req.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt api key: %w", err)
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	err = s.client.LLMConfig.Create().
		SetID(uuid.New().String()).
		SetWorkspaceID(req.WorkspaceID).
		SetProvider(req.Provider).
		SetModel(req.Model).
		SetEncryptedAPIKey(encryptedKey).
		SetNillableBaseURL(nilIfEmpty(req.BaseURL)).
		SetNillableAPIVersion(nilIfEmpty(req.APIVersion)).
		SetEnabled(req.Enabled).
		OnConflictColumns(llmconfig.FieldWorkspaceID).
		Update(func(u *ent.LLMConfigUpsert) {
			u.SetProvider(req.Provider)
			u.SetModel(req.Model)
			u.SetEncryptedAPIKey(encryptedKey)
			u.SetEnabled(req.Enabled)
			u.SetUpdatedAt(time.Now())
			if req.BaseURL != "" {
				u.SetBaseURL(req.BaseURL)
			} else {
				u.ClearBaseURL()
			}
			if req.APIVersion != "" {
				u.SetAPIVersion(req.APIVersion)
			} else {
				u.ClearAPIVersion()
			}
		}).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert llm config: %w", err)
	}

	return s.GetLLMConfig(ctx, req.WorkspaceID)
}

// GetLLMConfig returns the workspace BYO-LLM config, or nil if none exists
func (s *IntegrationService) GetLLMConfig(ctx context.Context, workspaceID string) (*ent.LLMConfig, error) {
	cfg, err := s.client.LLMConfig.Query().
		Where(llmconfig.WorkspaceIDEQ(workspaceID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil // no BYO config — platform default applies
		}
		return nil, fmt.Errorf("failed to get llm config: %w", err)
	}
	return cfg, nil
}

// DeleteLLMConfig removes the workspace BYO-LLM config
func (s *IntegrationService) DeleteLLMConfig(ctx context.Context, workspaceID string) error {
	n, err := s.client.LLMConfig.Delete().
		Where(llmconfig.WorkspaceIDEQ(workspaceID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete llm config: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DecryptAPIKey returns the plaintext API key of a BYO-LLM config
func (s *IntegrationService) DecryptAPIKey(cfg *ent.LLMConfig) (string, error) {
	plaintext, err := s.cipher.Decrypt(cfg.EncryptedAPIKey)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt api key: %w", err)
	}
	return string(plaintext), nil
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
