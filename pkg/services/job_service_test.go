package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vibemonitor/rca/ent/job"
	"github.com/vibemonitor/rca/pkg/models"
)

func TestJobService_EnqueueJob(t *testing.T) {
	client := setupTestClient(t)
	svc := NewJobService(client.Client)
	ctx := context.Background()

	createTestSession(t, client.Client, "sess-1", "ws-1")
	createTestTurn(t, client.Client, "turn-1", "sess-1", "question")

	j, err := svc.EnqueueJob(ctx, models.EnqueueJobRequest{
		WorkspaceID: "ws-1",
		TurnID:      "turn-1",
		Source:      job.SourceWeb,
		Priority:    0,
		RequestedContext: map[string]any{
			"query":   "question",
			"user_id": "user-1",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, job.StatusQueued, j.Status)
	assert.Equal(t, 0, j.Retries)
	assert.Equal(t, 3, j.MaxRetries)
	assert.Nil(t, j.BackoffUntil)

	// Exactly one job per turn.
	_, err = svc.EnqueueJob(ctx, models.EnqueueJobRequest{
		WorkspaceID: "ws-1",
		TurnID:      "turn-1",
	})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestJobService_TerminalTransitions(t *testing.T) {
	client := setupTestClient(t)
	svc := NewJobService(client.Client)
	ctx := context.Background()

	createTestSession(t, client.Client, "sess-1", "ws-1")
	createTestTurn(t, client.Client, "turn-1", "sess-1", "question")
	j, err := svc.EnqueueJob(ctx, models.EnqueueJobRequest{WorkspaceID: "ws-1", TurnID: "turn-1"})
	require.NoError(t, err)

	// Completing a queued job is rejected: only running jobs terminate.
	assert.ErrorIs(t, svc.CompleteJob(ctx, j.ID), ErrNotFound)

	_, err = client.Job.UpdateOneID(j.ID).
		SetStatus(job.StatusRunning).
		SetStartedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.CompleteJob(ctx, j.ID))

	got, err := svc.GetJob(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusCompleted, got.Status)
	assert.NotNil(t, got.FinishedAt)
}

func TestJobService_ScheduleRetry(t *testing.T) {
	client := setupTestClient(t)
	svc := NewJobService(client.Client)
	ctx := context.Background()

	createTestSession(t, client.Client, "sess-1", "ws-1")
	createTestTurn(t, client.Client, "turn-1", "sess-1", "question")
	j, err := svc.EnqueueJob(ctx, models.EnqueueJobRequest{WorkspaceID: "ws-1", TurnID: "turn-1"})
	require.NoError(t, err)

	_, err = client.Job.UpdateOneID(j.ID).
		SetStatus(job.StatusRunning).
		SetPodID("pod-1").
		SetLastHeartbeatAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	before := time.Now()
	retried, err := svc.ScheduleRetry(ctx, j.ID, "llm timeout", 60*time.Second)
	require.NoError(t, err)

	assert.Equal(t, job.StatusQueued, retried.Status)
	assert.Equal(t, 1, retried.Retries)
	assert.Nil(t, retried.PodID)
	assert.Nil(t, retried.LastHeartbeatAt)
	require.NotNil(t, retried.BackoffUntil)
	// First retry backs off ~60s.
	assert.WithinDuration(t, before.Add(60*time.Second), *retried.BackoffUntil, 5*time.Second)

	// Retrying a job that is no longer running is rejected.
	_, err = svc.ScheduleRetry(ctx, j.ID, "again", 60*time.Second)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJobService_Stats(t *testing.T) {
	client := setupTestClient(t)
	svc := NewJobService(client.Client)
	ctx := context.Background()

	createTestSession(t, client.Client, "sess-1", "ws-1")
	for i, status := range []job.Status{job.StatusQueued, job.StatusQueued, job.StatusRunning, job.StatusFailed} {
		turnID := string(rune('a'+i)) + "-turn"
		createTestTurn(t, client.Client, turnID, "sess-1", "q")
		j, err := svc.EnqueueJob(ctx, models.EnqueueJobRequest{WorkspaceID: "ws-1", TurnID: turnID})
		require.NoError(t, err)
		if status != job.StatusQueued {
			_, err = client.Job.UpdateOneID(j.ID).SetStatus(status).Save(ctx)
			require.NoError(t, err)
		}
	}

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Queued)
	assert.Equal(t, 1, stats.Running)
	assert.Equal(t, 1, stats.Failed)
	assert.Equal(t, 0, stats.Completed)
}

func TestRetryBackoff(t *testing.T) {
	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{0, 60 * time.Second},
		{1, 120 * time.Second},
		{2, 240 * time.Second},
		{3, 480 * time.Second},
		{10, time.Hour}, // capped
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RetryBackoff(60*time.Second, tt.attempt), "attempt %d", tt.attempt)
	}

	// Zero base falls back to the 60s default.
	assert.Equal(t, 60*time.Second, RetryBackoff(0, 0))
}
