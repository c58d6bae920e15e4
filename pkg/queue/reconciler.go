package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/vibemonitor/rca/ent"
	"github.com/vibemonitor/rca/ent/job"
	"github.com/vibemonitor/rca/pkg/services"
)

// staleState tracks reconciler metrics (thread-safe).
type staleState struct {
	mu            sync.Mutex
	lastStaleScan time.Time
	jobsRequeued  int
}

// runReconciler periodically scans for running jobs whose worker stopped
// heartbeating. All pods run this independently; the operations are
// conditional updates, so concurrent recovery is idempotent.
func (p *WorkerPool) runReconciler(ctx context.Context) {
	ticker := time.NewTicker(p.config.StaleCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.recoverStaleJobs(ctx); err != nil {
				slog.Error("Stale job recovery failed", "error", err)
			}
		}
	}
}

// recoverOwnOrphans requeues jobs left running by a previous incarnation of
// this pod. A restart reuses the pod identity, so any job still marked
// running under our pod_id has no worker behind it.
func (p *WorkerPool) recoverOwnOrphans(ctx context.Context) error {
	orphans, err := p.client.Job.Query().
		Where(
			job.StatusEQ(job.StatusRunning),
			job.PodIDEQ(p.podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned jobs: %w", err)
	}

	for _, j := range orphans {
		if err := p.recoverStaleJob(ctx, j); err != nil {
			slog.Error("Failed to recover orphaned job", "job_id", j.ID, "error", err)
		}
	}
	if len(orphans) > 0 {
		slog.Warn("Recovered jobs orphaned by previous pod incarnation",
			"pod_id", p.podID, "count", len(orphans))
	}
	return nil
}

// recoverStaleJobs requeues running jobs with expired heartbeats, or fails
// them once the retry budget is spent.
func (p *WorkerPool) recoverStaleJobs(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.StaleThreshold)

	stale, err := p.client.Job.Query().
		Where(
			job.StatusEQ(job.StatusRunning),
			job.LastHeartbeatAtNotNil(),
			job.LastHeartbeatAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query stale jobs: %w", err)
	}

	recovered := 0
	for _, j := range stale {
		if err := p.recoverStaleJob(ctx, j); err != nil {
			slog.Error("Failed to recover stale job", "job_id", j.ID, "error", err)
			continue
		}
		recovered++
	}

	if len(stale) > 0 {
		slog.Warn("Recovered stale jobs", "found", len(stale), "recovered", recovered)
	}

	p.stale.mu.Lock()
	p.stale.lastStaleScan = time.Now()
	p.stale.jobsRequeued += recovered
	p.stale.mu.Unlock()

	return nil
}

// recoverStaleJob requeues one stale job, or fails it permanently after the
// last retry. ScheduleRetry and FailJob are conditional on status=running;
// ErrNotFound means another pod got there first.
func (p *WorkerPool) recoverStaleJob(ctx context.Context, j *ent.Job) error {
	log := slog.With("job_id", j.ID, "turn_id", j.TurnID, "old_pod_id", derefOr(j.PodID, ""))

	if j.Retries < j.MaxRetries {
		if _, err := p.jobs.ScheduleRetry(ctx, j.ID, "worker heartbeat lost", p.config.RetryBackoffBase); err != nil {
			if errors.Is(err, services.ErrNotFound) {
				return nil
			}
			return err
		}
		if _, err := p.publisher.AppendStatus(ctx, j.TurnID, "Retrying after internal error"); err != nil {
			log.Warn("Failed to record retry status step", "error", err)
		}
		log.Info("Stale job requeued", "attempt", j.Retries+1)
		return nil
	}

	if err := p.jobs.FailJob(ctx, j.ID, "worker heartbeat lost, retries exhausted"); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return nil
		}
		return err
	}
	userMessage := "The analysis failed after multiple attempts. Please try again later."
	if err := p.turns.FailTurn(ctx, j.TurnID, userMessage); err != nil && !errors.Is(err, services.ErrNotFound) {
		return err
	}
	if err := p.publisher.PublishError(ctx, j.TurnID, userMessage); err != nil {
		log.Warn("Failed to publish error frame", "error", err)
	}
	log.Warn("Stale job failed permanently")
	return nil
}
