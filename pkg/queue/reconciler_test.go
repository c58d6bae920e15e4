package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibemonitor/rca/ent"
	"github.com/vibemonitor/rca/ent/chatturn"
	"github.com/vibemonitor/rca/ent/job"
	"github.com/vibemonitor/rca/ent/turnstep"
	"github.com/vibemonitor/rca/pkg/config"
	"github.com/vibemonitor/rca/pkg/database"
	"github.com/vibemonitor/rca/pkg/events"
	"github.com/vibemonitor/rca/pkg/services"
	testdb "github.com/vibemonitor/rca/test/database"
)

func newTestPool(client *database.Client) *WorkerPool {
	return NewWorkerPool("test-pod", client.Client, config.DefaultQueueConfig(), &stubExecutor{},
		services.NewJobService(client.Client),
		services.NewTurnService(client.Client),
		events.NewPublisher(client.DB()))
}

func staleHeartbeat(c *ent.JobCreate) {
	c.SetLastHeartbeatAt(time.Now().Add(-10 * time.Minute))
}

func TestReconciler_RequeuesStaleJob(t *testing.T) {
	client := testdb.NewTestClient(t)
	p := newTestPool(client)

	j := seedJob(t, client.Client, "stale", job.StatusRunning, staleHeartbeat)
	markTurnProcessing(t, client.Client, j.TurnID)

	require.NoError(t, p.recoverStaleJobs(t.Context()))

	reloaded := client.Job.GetX(t.Context(), j.ID)
	assert.Equal(t, job.StatusQueued, reloaded.Status)
	assert.Equal(t, 1, reloaded.Retries)
	require.NotNil(t, reloaded.BackoffUntil)
	assert.Nil(t, reloaded.PodID)
	assert.Nil(t, reloaded.LastHeartbeatAt)

	steps := client.TurnStep.Query().
		Where(turnstep.TurnIDEQ(j.TurnID)).
		AllX(t.Context())
	require.Len(t, steps, 1)
	require.NotNil(t, steps[0].Content)
	assert.Equal(t, "Retrying after internal error", *steps[0].Content)

	health := p.Health()
	assert.Equal(t, 1, health.JobsRequeued)
}

func TestReconciler_FailsJobWithSpentRetries(t *testing.T) {
	client := testdb.NewTestClient(t)
	p := newTestPool(client)

	j := seedJob(t, client.Client, "spent", job.StatusRunning, staleHeartbeat, func(c *ent.JobCreate) {
		c.SetRetries(3)
	})
	markTurnProcessing(t, client.Client, j.TurnID)

	require.NoError(t, p.recoverStaleJobs(t.Context()))

	reloaded := client.Job.GetX(t.Context(), j.ID)
	assert.Equal(t, job.StatusFailed, reloaded.Status)
	require.NotNil(t, reloaded.ErrorMessage)
	assert.Contains(t, *reloaded.ErrorMessage, "heartbeat lost")

	turn := client.ChatTurn.GetX(t.Context(), j.TurnID)
	assert.Equal(t, chatturn.StatusFailed, turn.Status)
}

func TestRecoverOwnOrphans(t *testing.T) {
	client := testdb.NewTestClient(t)
	p := newTestPool(client)

	// Left running by a previous process with our pod identity. The
	// heartbeat is fresh because the old process died mid-beat.
	orphan := seedJob(t, client.Client, "orphan", job.StatusRunning, func(c *ent.JobCreate) {
		c.SetPodID("test-pod").SetLastHeartbeatAt(time.Now())
	})
	markTurnProcessing(t, client.Client, orphan.TurnID)

	// A live job on another pod must not be touched.
	foreign := seedJob(t, client.Client, "foreign", job.StatusRunning, func(c *ent.JobCreate) {
		c.SetPodID("other-pod").SetLastHeartbeatAt(time.Now())
	})

	require.NoError(t, p.recoverOwnOrphans(t.Context()))

	reloaded := client.Job.GetX(t.Context(), orphan.ID)
	assert.Equal(t, job.StatusQueued, reloaded.Status)
	assert.Equal(t, 1, reloaded.Retries)

	assert.Equal(t, job.StatusRunning, client.Job.GetX(t.Context(), foreign.ID).Status)
}

func TestReconciler_IgnoresHealthyJobs(t *testing.T) {
	client := testdb.NewTestClient(t)
	p := newTestPool(client)

	healthy := seedJob(t, client.Client, "healthy", job.StatusRunning)
	queued := seedJob(t, client.Client, "queued", job.StatusQueued)

	require.NoError(t, p.recoverStaleJobs(t.Context()))

	assert.Equal(t, job.StatusRunning, client.Job.GetX(t.Context(), healthy.ID).Status)
	assert.Equal(t, job.StatusQueued, client.Job.GetX(t.Context(), queued.ID).Status)
}
