package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibemonitor/rca/ent"
	"github.com/vibemonitor/rca/ent/chatturn"
	"github.com/vibemonitor/rca/ent/job"
	"github.com/vibemonitor/rca/ent/turnstep"
	"github.com/vibemonitor/rca/pkg/agent"
	"github.com/vibemonitor/rca/pkg/config"
	"github.com/vibemonitor/rca/pkg/database"
	"github.com/vibemonitor/rca/pkg/events"
	"github.com/vibemonitor/rca/pkg/services"
	testdb "github.com/vibemonitor/rca/test/database"
)

// stubExecutor returns a canned result and records the job it was given.
type stubExecutor struct {
	result ExecutionResult
	jobs   []*ent.Job
}

func (e *stubExecutor) Execute(_ context.Context, j *ent.Job) ExecutionResult {
	e.jobs = append(e.jobs, j)
	return e.result
}

func newTestWorker(client *database.Client, executor TurnExecutor) *Worker {
	cfg := config.DefaultQueueConfig()
	return NewWorker("test-worker-0", "test-pod", client.Client, cfg, executor,
		services.NewJobService(client.Client),
		services.NewTurnService(client.Client),
		events.NewPublisher(client.DB()))
}

// seedJob creates a session, a turn, and a job in the given status.
func seedJob(t *testing.T, client *ent.Client, suffix string, status job.Status, mutate ...func(*ent.JobCreate)) *ent.Job {
	t.Helper()
	ctx := t.Context()

	_, err := client.ChatSession.Create().
		SetID("sess-" + suffix).
		SetWorkspaceID("ws-1").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.ChatTurn.Create().
		SetID("turn-" + suffix).
		SetSessionID("sess-" + suffix).
		SetUserMessage("why is checkout failing?").
		Save(ctx)
	require.NoError(t, err)

	create := client.Job.Create().
		SetID("job-" + suffix).
		SetWorkspaceID("ws-1").
		SetTurnID("turn-" + suffix).
		SetStatus(status)
	if status == job.StatusRunning {
		create.SetPodID("test-pod").SetLastHeartbeatAt(time.Now())
	}
	for _, m := range mutate {
		m(create)
	}
	j, err := create.Save(ctx)
	require.NoError(t, err)
	return j
}

func markTurnProcessing(t *testing.T, client *ent.Client, turnID string) {
	t.Helper()
	err := client.ChatTurn.UpdateOneID(turnID).
		SetStatus(chatturn.StatusProcessing).
		Exec(t.Context())
	require.NoError(t, err)
}

func TestWorker_ClaimPriorityThenFIFO(t *testing.T) {
	client := testdb.NewTestClient(t)
	w := newTestWorker(client, &stubExecutor{})

	seedJob(t, client.Client, "low", job.StatusQueued)
	seedJob(t, client.Client, "high", job.StatusQueued, func(c *ent.JobCreate) { c.SetPriority(5) })

	claimed, err := w.claimNextJob(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "job-high", claimed.ID)
	assert.Equal(t, job.StatusRunning, claimed.Status)
	require.NotNil(t, claimed.PodID)
	assert.Equal(t, "test-pod", *claimed.PodID)
	assert.NotNil(t, claimed.StartedAt)
	assert.NotNil(t, claimed.LastHeartbeatAt)

	claimed, err = w.claimNextJob(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "job-low", claimed.ID)
}

func TestWorker_ClaimSkipsBackingOffJobs(t *testing.T) {
	client := testdb.NewTestClient(t)
	w := newTestWorker(client, &stubExecutor{})

	seedJob(t, client.Client, "later", job.StatusQueued, func(c *ent.JobCreate) {
		c.SetBackoffUntil(time.Now().Add(time.Hour))
	})
	seedJob(t, client.Client, "ready", job.StatusQueued, func(c *ent.JobCreate) {
		c.SetBackoffUntil(time.Now().Add(-time.Minute))
	})

	claimed, err := w.claimNextJob(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "job-ready", claimed.ID)
	assert.Nil(t, claimed.BackoffUntil)

	_, err = w.claimNextJob(t.Context())
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestWorker_ClaimEmptyQueue(t *testing.T) {
	client := testdb.NewTestClient(t)
	w := newTestWorker(client, &stubExecutor{})

	_, err := w.claimNextJob(t.Context())
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestWorker_FinalizeSuccess(t *testing.T) {
	client := testdb.NewTestClient(t)
	w := newTestWorker(client, &stubExecutor{})

	j := seedJob(t, client.Client, "ok", job.StatusRunning)
	markTurnProcessing(t, client.Client, j.TurnID)

	err := w.finalize(t.Context(), j, ExecutionResult{Answer: "the cache is cold"})
	require.NoError(t, err)

	turn := client.ChatTurn.GetX(t.Context(), j.TurnID)
	assert.Equal(t, chatturn.StatusCompleted, turn.Status)
	require.NotNil(t, turn.FinalResponse)
	assert.Equal(t, "the cache is cold", *turn.FinalResponse)

	reloaded := client.Job.GetX(t.Context(), j.ID)
	assert.Equal(t, job.StatusCompleted, reloaded.Status)
	assert.NotNil(t, reloaded.FinishedAt)
}

func TestWorker_FinalizeTransientFailureRequeues(t *testing.T) {
	client := testdb.NewTestClient(t)
	w := newTestWorker(client, &stubExecutor{})

	j := seedJob(t, client.Client, "retry", job.StatusRunning)
	markTurnProcessing(t, client.Client, j.TurnID)

	err := w.finalize(t.Context(), j, ExecutionResult{Err: errors.New("llm: status 503")})
	require.NoError(t, err)

	reloaded := client.Job.GetX(t.Context(), j.ID)
	assert.Equal(t, job.StatusQueued, reloaded.Status)
	assert.Equal(t, 1, reloaded.Retries)
	require.NotNil(t, reloaded.BackoffUntil)
	assert.True(t, reloaded.BackoffUntil.After(time.Now()))
	assert.Nil(t, reloaded.PodID)

	// The turn stays processing and the viewer sees a retry notice.
	turn := client.ChatTurn.GetX(t.Context(), j.TurnID)
	assert.Equal(t, chatturn.StatusProcessing, turn.Status)

	steps := client.TurnStep.Query().
		Where(turnstep.TurnIDEQ(j.TurnID)).
		AllX(t.Context())
	require.Len(t, steps, 1)
	require.NotNil(t, steps[0].Content)
	assert.Equal(t, "Retrying after a transient error", *steps[0].Content)
}

func TestWorker_FinalizeProtocolFailureIsPermanent(t *testing.T) {
	client := testdb.NewTestClient(t)
	w := newTestWorker(client, &stubExecutor{})

	j := seedJob(t, client.Client, "proto", job.StatusRunning)
	markTurnProcessing(t, client.Client, j.TurnID)

	err := w.finalize(t.Context(), j, ExecutionResult{Err: agent.ErrProtocol})
	require.NoError(t, err)

	reloaded := client.Job.GetX(t.Context(), j.ID)
	assert.Equal(t, job.StatusFailed, reloaded.Status)
	assert.Equal(t, 0, reloaded.Retries)

	turn := client.ChatTurn.GetX(t.Context(), j.TurnID)
	assert.Equal(t, chatturn.StatusFailed, turn.Status)
	require.NotNil(t, turn.ErrorMessage)
	assert.Contains(t, *turn.ErrorMessage, "did not produce a usable response")
}

func TestWorker_FinalizeRetriesExhausted(t *testing.T) {
	client := testdb.NewTestClient(t)
	w := newTestWorker(client, &stubExecutor{})

	j := seedJob(t, client.Client, "spent", job.StatusRunning, func(c *ent.JobCreate) {
		c.SetRetries(3)
	})
	markTurnProcessing(t, client.Client, j.TurnID)

	err := w.finalize(t.Context(), j, ExecutionResult{Err: errors.New("llm: status 503")})
	require.NoError(t, err)

	reloaded := client.Job.GetX(t.Context(), j.ID)
	assert.Equal(t, job.StatusFailed, reloaded.Status)

	turn := client.ChatTurn.GetX(t.Context(), j.TurnID)
	assert.Equal(t, chatturn.StatusFailed, turn.Status)
	require.NotNil(t, turn.ErrorMessage)
	assert.Contains(t, *turn.ErrorMessage, "after multiple attempts")
}

func TestWorker_PollAndProcessEndToEnd(t *testing.T) {
	client := testdb.NewTestClient(t)
	executor := &stubExecutor{result: ExecutionResult{Answer: "root cause: bad deploy"}}
	w := newTestWorker(client, executor)

	j := seedJob(t, client.Client, "e2e", job.StatusQueued)
	markTurnProcessing(t, client.Client, j.TurnID)

	err := w.pollAndProcess(t.Context())
	require.NoError(t, err)

	require.Len(t, executor.jobs, 1)
	assert.Equal(t, j.ID, executor.jobs[0].ID)

	reloaded := client.Job.GetX(t.Context(), j.ID)
	assert.Equal(t, job.StatusCompleted, reloaded.Status)

	turn := client.ChatTurn.GetX(t.Context(), j.TurnID)
	assert.Equal(t, chatturn.StatusCompleted, turn.Status)

	health := w.Health()
	assert.Equal(t, 1, health.JobsProcessed)
	assert.Equal(t, string(WorkerStatusIdle), health.Status)
}

func TestWorker_PollAtCapacity(t *testing.T) {
	client := testdb.NewTestClient(t)
	w := newTestWorker(client, &stubExecutor{})
	w.config = &config.QueueConfig{MaxConcurrentJobs: 1, JobTimeout: time.Minute, HeartbeatInterval: time.Minute}

	seedJob(t, client.Client, "busy", job.StatusRunning)
	seedJob(t, client.Client, "waiting", job.StatusQueued)

	err := w.pollAndProcess(t.Context())
	assert.ErrorIs(t, err, ErrAtCapacity)
}

func TestUserFacingError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		exhausted bool
		want      string
	}{
		{"protocol", agent.ErrProtocol, false, "usable response"},
		{"deadline", agent.ErrDeadline, false, "timed out"},
		{"exhausted", errors.New("dial tcp: refused"), true, "multiple attempts"},
		{"internal", errors.New("nil pointer"), false, "internal error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, userFacingError(tt.err, tt.exhausted), tt.want)
		})
	}
}
