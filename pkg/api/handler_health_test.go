package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibemonitor/rca/ent"
	"github.com/vibemonitor/rca/ent/chatturn"
	"github.com/vibemonitor/rca/ent/job"
)

func TestHealthHandler_ReportsDegradedComponents(t *testing.T) {
	// No NOTIFY listener and an unstarted pool: the database probe is the
	// only component that should pass.
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var resp HealthResponse
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "unhealthy", resp.Status)
	assert.Equal(t, "ok", resp.DB)
	assert.Equal(t, "fail", resp.Bus)
	assert.Equal(t, "fail", resp.Queue)
	assert.Equal(t, 0, resp.WorkersSeenLast60s)
}

func TestHealthHandler_StartedPoolReportsQueueHealthy(t *testing.T) {
	ts := newTestServer(t)
	require.NoError(t, ts.pool.Start(context.Background()))
	t.Cleanup(ts.pool.Stop)

	rec := ts.do(t, http.MethodGet, "/health", nil)

	// Still 503: the bus listener is absent. But the pool now counts.
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var resp HealthResponse
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "ok", resp.Queue)
	assert.Equal(t, ts.cfg.Queue.WorkerCount, resp.WorkersSeenLast60s)
}

func TestHealthHandler_CountsRemotePodHeartbeats(t *testing.T) {
	ts := newTestServer(t)

	fresh := seedTurn(t, ts.client.Client, "1", "ws-1", chatturn.StatusProcessing)
	seedRunningJob(t, ts.client.Client, fresh, "other-pod", time.Now())

	stale := seedTurn(t, ts.client.Client, "2", "ws-1", chatturn.StatusProcessing)
	seedRunningJob(t, ts.client.Client, stale, "stale-pod", time.Now().Add(-2*time.Minute))

	rec := ts.do(t, http.MethodGet, "/health", nil)

	var resp HealthResponse
	decodeJSON(t, rec, &resp)
	assert.Equal(t, 1, resp.WorkersSeenLast60s, "only the pod with a fresh heartbeat counts")
}

func seedRunningJob(t *testing.T, client *ent.Client, turn *ent.ChatTurn, podID string, heartbeat time.Time) {
	t.Helper()
	_, err := client.Job.Create().
		SetID("job-" + turn.ID).
		SetWorkspaceID("ws-1").
		SetTurnID(turn.ID).
		SetStatus(job.StatusRunning).
		SetPodID(podID).
		SetLastHeartbeatAt(heartbeat).
		Save(context.Background())
	require.NoError(t, err)
}
