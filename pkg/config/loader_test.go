package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rca.yaml"), []byte(content), 0o600))
	return dir
}

func TestInitialize_Defaults(t *testing.T) {
	// No rca.yaml at all: everything comes from built-in defaults.
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Queue.WorkerCount)
	assert.Equal(t, 60*time.Second, cfg.Queue.RetryBackoffBase)
	assert.Equal(t, 10, cfg.Agent.MaxSteps)
	assert.Equal(t, 120*time.Second, cfg.Agent.WallClock)
	assert.Equal(t, 8192, cfg.Agent.ObservationLimit)
	assert.True(t, cfg.Guard.Enabled)
	assert.False(t, cfg.Guard.FailClosed)
	assert.True(t, cfg.Quota.Enabled)
	assert.Equal(t, 50, cfg.Quota.DailyTurnLimit)
	assert.Equal(t, string(ProviderPlatform), cfg.Defaults.LLMProvider)
	assert.Equal(t, "CREDENTIALS_ENCRYPTION_KEY", cfg.Credentials.KeyEnv)
}

func TestInitialize_YAMLOverridesDefaults(t *testing.T) {
	dir := writeConfigFile(t, `
queue:
  worker_count: 2
  retry_backoff_base: 30s
agent:
  max_steps: 6
guard:
  enabled: false
quota:
  daily_turn_limit: 5
  workspace_overrides:
    ws-big: 500
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Queue.WorkerCount)
	assert.Equal(t, 30*time.Second, cfg.Queue.RetryBackoffBase)
	// Unset fields keep their defaults after the merge.
	assert.Equal(t, 1*time.Second, cfg.Queue.PollInterval)
	assert.Equal(t, 6, cfg.Agent.MaxSteps)
	assert.Equal(t, 120*time.Second, cfg.Agent.WallClock)
	assert.False(t, cfg.Guard.Enabled)
	assert.Equal(t, 5, cfg.Quota.DailyTurnLimit)
	assert.Equal(t, 500, cfg.Quota.LimitFor("ws-big"))
	assert.Equal(t, 5, cfg.Quota.LimitFor("ws-other"))
}

func TestInitialize_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_PLATFORM_MODEL", "mixtral-8x7b")
	dir := writeConfigFile(t, `
llm:
  platform:
    model: "{{.TEST_PLATFORM_MODEL}}"
    base_url: "https://api.groq.com/openai/v1"
    api_key_env: PLATFORM_LLM_API_KEY
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "mixtral-8x7b", cfg.LLM.Platform.Model)
}

func TestInitialize_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "negative worker count",
			yaml: "queue:\n  worker_count: -1\n",
		},
		{
			name: "tiny observation limit",
			yaml: "agent:\n  observation_limit: 10\n",
		},
		{
			name: "unknown allowlist provider",
			yaml: "llm:\n  model_allowlists:\n    anthropic:\n      - claude-3\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeConfigFile(t, tt.yaml)
			_, err := Initialize(context.Background(), dir)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidationFailed)
		})
	}
}

func TestInitialize_InvalidYAML(t *testing.T) {
	dir := writeConfigFile(t, "queue: [not: a: map\n")
	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestModelAllowed(t *testing.T) {
	cfg := &LLMConfig{
		ModelAllowlists: map[LLMProviderType][]string{
			ProviderOpenAI: {"gpt-4o", "gpt-4o-mini"},
		},
	}

	assert.True(t, cfg.ModelAllowed(ProviderOpenAI, "gpt-4o"))
	assert.False(t, cfg.ModelAllowed(ProviderOpenAI, "gpt-3.5-turbo"))
	// No allowlist for the provider means any model.
	assert.True(t, cfg.ModelAllowed(ProviderGemini, "gemini-2.0-flash"))
}
