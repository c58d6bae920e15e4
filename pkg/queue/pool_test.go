package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibemonitor/rca/ent/job"
	"github.com/vibemonitor/rca/pkg/config"
	testdb "github.com/vibemonitor/rca/test/database"
)

func TestWorkerPool_StartStop(t *testing.T) {
	client := testdb.NewTestClient(t)
	p := newTestPool(client)
	p.config = config.DefaultQueueConfig()
	p.config.WorkerCount = 2

	require.NoError(t, p.Start(t.Context()))
	// Duplicate Start is a no-op.
	require.NoError(t, p.Start(t.Context()))

	health := p.Health()
	assert.Equal(t, 2, health.TotalWorkers)
	assert.True(t, health.DBReachable)

	p.Stop()
}

func TestWorkerPool_QueueDepth(t *testing.T) {
	client := testdb.NewTestClient(t)
	p := newTestPool(client)

	depth, err := p.QueueDepth(t.Context())
	require.NoError(t, err)
	assert.Zero(t, depth)

	seedJob(t, client.Client, "queued", job.StatusQueued)
	seedJob(t, client.Client, "active", job.StatusRunning)

	depth, err = p.QueueDepth(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 1, depth)
}
