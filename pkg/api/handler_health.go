package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/vibemonitor/rca/ent/job"
)

// healthCheckTimeout bounds the database probe.
const healthCheckTimeout = 5 * time.Second

// workerSeenWindow is how recent a job heartbeat must be for its pod's
// workers to count as alive.
const workerSeenWindow = 60 * time.Second

// healthHandler handles GET /health. Reports the database, the NOTIFY
// listener feeding the stream bus, and the worker pool, plus how many
// workers were seen alive in the last minute across all pods.
func (s *Server) healthHandler(c *echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	resp := &HealthResponse{Status: "healthy", DB: "ok", Bus: "ok", Queue: "ok"}

	if _, err := s.db.Snapshot(ctx); err != nil {
		resp.DB = "fail"
		resp.Detail = err.Error()
	}

	if s.listener == nil || !s.listener.Running() {
		resp.Bus = "fail"
	}

	localWorkers := 0
	localPod := ""
	if s.pool == nil {
		resp.Queue = "fail"
	} else {
		pool := s.pool.Health()
		if !pool.IsHealthy {
			resp.Queue = "fail"
		}
		localWorkers = pool.TotalWorkers
		localPod = pool.PodID
	}

	resp.WorkersSeenLast60s = localWorkers + s.remotePodsSeen(ctx, localPod)

	if resp.DB == "fail" || resp.Bus == "fail" || resp.Queue == "fail" {
		resp.Status = "unhealthy"
		return c.JSON(http.StatusServiceUnavailable, resp)
	}
	return c.JSON(http.StatusOK, resp)
}

// remotePodsSeen counts distinct pods other than the local one that
// heartbeated a running job inside the window. Pods with only idle workers
// leave no heartbeat, so this undercounts idle remote capacity.
func (s *Server) remotePodsSeen(ctx context.Context, localPod string) int {
	pods, err := s.db.Client.Job.Query().
		Where(
			job.PodIDNotNil(),
			job.LastHeartbeatAtNotNil(),
			job.LastHeartbeatAtGTE(time.Now().Add(-workerSeenWindow)),
		).
		Unique(true).
		Select(job.FieldPodID).
		Strings(ctx)
	if err != nil {
		slog.Error("Failed to query worker heartbeats for health check", "error", err)
		return 0
	}

	seen := 0
	for _, pod := range pods {
		if pod != localPod {
			seen++
		}
	}
	return seen
}
