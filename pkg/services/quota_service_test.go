package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vibemonitor/rca/ent/llmconfig"
	"github.com/vibemonitor/rca/pkg/config"
)

func TestQuotaService_ConsumeTurn(t *testing.T) {
	client := setupTestClient(t)
	cfg := &config.QuotaConfig{
		Enabled:        true,
		DailyTurnLimit: 3,
	}
	svc := NewQuotaService(client.Client, client.DB(), cfg)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.ConsumeTurn(ctx, "ws-1"), "turn %d should pass", i+1)
	}

	// Fourth turn in the window is rejected.
	assert.ErrorIs(t, svc.ConsumeTurn(ctx, "ws-1"), ErrQuotaExceeded)

	// Another workspace has its own window.
	require.NoError(t, svc.ConsumeTurn(ctx, "ws-2"))

	status, err := svc.Status(ctx, "ws-1")
	require.NoError(t, err)
	assert.Equal(t, 3, status.Used)
	assert.Equal(t, 3, status.Limit)
	assert.True(t, status.Exhausted)
}

func TestQuotaService_WorkspaceOverride(t *testing.T) {
	client := setupTestClient(t)
	cfg := &config.QuotaConfig{
		Enabled:            true,
		DailyTurnLimit:     1,
		WorkspaceOverrides: map[string]int{"ws-big": 5},
	}
	svc := NewQuotaService(client.Client, client.DB(), cfg)
	ctx := context.Background()

	require.NoError(t, svc.ConsumeTurn(ctx, "ws-small"))
	assert.ErrorIs(t, svc.ConsumeTurn(ctx, "ws-small"), ErrQuotaExceeded)

	for i := 0; i < 5; i++ {
		require.NoError(t, svc.ConsumeTurn(ctx, "ws-big"))
	}
	assert.ErrorIs(t, svc.ConsumeTurn(ctx, "ws-big"), ErrQuotaExceeded)
}

func TestQuotaService_BypassWithOwnLLM(t *testing.T) {
	client := setupTestClient(t)
	cfg := &config.QuotaConfig{
		Enabled:          true,
		DailyTurnLimit:   1,
		BypassWithOwnLLM: true,
	}
	svc := NewQuotaService(client.Client, client.DB(), cfg)
	ctx := context.Background()

	_, err := client.LLMConfig.Create().
		SetID(uuid.New().String()).
		SetWorkspaceID("ws-byo").
		SetProvider(llmconfig.ProviderOpenai).
		SetModel("gpt-4o").
		SetEncryptedAPIKey([]byte("ciphertext")).
		SetEnabled(true).
		Save(ctx)
	require.NoError(t, err)

	// BYO-LLM workspaces are never counted.
	for i := 0; i < 5; i++ {
		require.NoError(t, svc.ConsumeTurn(ctx, "ws-byo"))
	}

	status, err := svc.Status(ctx, "ws-byo")
	require.NoError(t, err)
	assert.Equal(t, 0, status.Used)
}

func TestQuotaService_Disabled(t *testing.T) {
	client := setupTestClient(t)
	cfg := &config.QuotaConfig{Enabled: false, DailyTurnLimit: 1}
	svc := NewQuotaService(client.Client, client.DB(), cfg)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		require.NoError(t, svc.ConsumeTurn(ctx, "ws-1"))
	}
}

func TestWindowKey(t *testing.T) {
	// Window keys are UTC days regardless of local zone.
	loc := time.FixedZone("UTC+9", 9*3600)
	late := time.Date(2026, 8, 26, 1, 30, 0, 0, loc) // 2026-08-25 16:30 UTC
	assert.Equal(t, "2026-08-25", WindowKey(late))

	utc := time.Date(2026, 8, 26, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, "2026-08-26", WindowKey(utc))
}

func TestNextReset(t *testing.T) {
	now := time.Date(2026, 8, 26, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC), NextReset(now))

	// Just before midnight still resets at the next midnight.
	almostMidnight := time.Date(2026, 8, 26, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC), NextReset(almostMidnight))
}
