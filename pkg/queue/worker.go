package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/vibemonitor/rca/ent"
	"github.com/vibemonitor/rca/ent/job"
	"github.com/vibemonitor/rca/pkg/agent"
	"github.com/vibemonitor/rca/pkg/config"
	"github.com/vibemonitor/rca/pkg/events"
	"github.com/vibemonitor/rca/pkg/llm"
	"github.com/vibemonitor/rca/pkg/services"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that claims and processes jobs.
type Worker struct {
	id        string
	podID     string
	client    *ent.Client
	config    *config.QueueConfig
	executor  TurnExecutor
	jobs      *services.JobService
	turns     *services.TurnService
	publisher *events.Publisher
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentJobID  string
	jobsProcessed int
	lastActivity  time.Time
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor TurnExecutor, jobs *services.JobService, turns *services.TurnService, publisher *events.Publisher) *Worker {
	return &Worker{
		id:        id,
		podID:     podID,
		client:    client,
		config:    cfg,
		executor:  executor,
		jobs:      jobs,
		turns:     turns,
		publisher: publisher,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish its current
// job. Safe to call multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentJobID:  w.currentJobID,
		JobsProcessed: w.jobsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoJobsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing job", "error", err)
				w.sleep(time.Second)
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a job, runs it, and finalizes.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// Global capacity check. Best-effort: racy with concurrent workers,
	// bounded by WorkerCount and mitigated by poll jitter.
	running, err := w.client.Job.Query().
		Where(job.StatusEQ(job.StatusRunning)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking running jobs: %w", err)
	}
	if running >= w.config.MaxConcurrentJobs {
		return ErrAtCapacity
	}

	claimed, err := w.claimNextJob(ctx)
	if err != nil {
		return err
	}

	log := slog.With("job_id", claimed.ID, "turn_id", claimed.TurnID, "worker_id", w.id)
	log.Info("Job claimed", "retries", claimed.Retries)

	w.setStatus(WorkerStatusWorking, claimed.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	jobCtx, cancelJob := context.WithTimeout(ctx, w.config.JobTimeout)
	defer cancelJob()

	heartbeatCtx, cancelHeartbeat := context.WithCancel(jobCtx)
	go w.runHeartbeat(heartbeatCtx, claimed.ID)

	result := w.executor.Execute(jobCtx, claimed)
	cancelHeartbeat()

	if result.Err == nil && result.Answer == "" && jobCtx.Err() != nil {
		result = ExecutionResult{Err: fmt.Errorf("job timed out after %v: %w", w.config.JobTimeout, jobCtx.Err())}
	}

	// Terminal writes use a fresh context; the job context may be expired.
	if err := w.finalize(context.WithoutCancel(ctx), claimed, result); err != nil {
		// Leave the job running; the reconciler requeues it once the
		// heartbeat goes stale.
		log.Error("Failed to finalize job", "error", err)
		return err
	}

	w.mu.Lock()
	w.jobsProcessed++
	w.mu.Unlock()

	log.Info("Job processing complete", "failed", result.Err != nil)
	return nil
}

// claimNextJob atomically claims the next queued job using
// FOR UPDATE SKIP LOCKED. Highest priority first, then FIFO; jobs still
// backing off are skipped.
func (w *Worker) claimNextJob(ctx context.Context) (*ent.Job, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	claimed, err := tx.Job.Query().
		Where(
			job.StatusEQ(job.StatusQueued),
			job.Or(job.BackoffUntilIsNil(), job.BackoffUntilLTE(time.Now())),
		).
		Order(ent.Desc(job.FieldPriority), ent.Asc(job.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoJobsAvailable
		}
		return nil, fmt.Errorf("failed to query queued job: %w", err)
	}

	now := time.Now()
	claimed, err = claimed.Update().
		SetStatus(job.StatusRunning).
		SetPodID(w.podID).
		SetStartedAt(now).
		SetLastHeartbeatAt(now).
		ClearBackoffUntil().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return claimed, nil
}

// runHeartbeat periodically refreshes last_heartbeat_at so the reconciler
// can tell a slow job from a dead worker.
func (w *Worker) runHeartbeat(ctx context.Context, jobID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.jobs.Heartbeat(ctx, jobID); err != nil {
				slog.Warn("Heartbeat update failed", "job_id", jobID, "error", err)
			}
		}
	}
}

// finalize classifies the execution outcome and writes terminal state:
// turn first, then the stream's terminal frame, then the job. A crash
// between those writes leaves the job running for the reconciler, and every
// write is conditional, so replays are no-ops.
func (w *Worker) finalize(ctx context.Context, claimed *ent.Job, result ExecutionResult) error {
	log := slog.With("job_id", claimed.ID, "turn_id", claimed.TurnID)

	if result.Err == nil {
		if err := w.turns.CompleteTurn(ctx, claimed.TurnID, result.Answer); err != nil && !errors.Is(err, services.ErrNotFound) {
			return fmt.Errorf("failed to complete turn: %w", err)
		}
		if err := w.publisher.PublishComplete(ctx, claimed.TurnID, result.Answer); err != nil {
			log.Warn("Failed to publish complete frame", "error", err)
		}
		return w.jobs.CompleteJob(ctx, claimed.ID)
	}

	if retryable(result.Err) && claimed.Retries < claimed.MaxRetries {
		if _, err := w.jobs.ScheduleRetry(ctx, claimed.ID, result.Err.Error(), w.config.RetryBackoffBase); err != nil {
			return fmt.Errorf("failed to schedule retry: %w", err)
		}
		if _, err := w.publisher.AppendStatus(ctx, claimed.TurnID, "Retrying after a transient error"); err != nil {
			log.Warn("Failed to record retry status step", "error", err)
		}
		log.Info("Job requeued for retry", "attempt", claimed.Retries+1, "error", result.Err)
		return nil
	}

	userMessage := userFacingError(result.Err, claimed.Retries >= claimed.MaxRetries)
	if err := w.turns.FailTurn(ctx, claimed.TurnID, userMessage); err != nil && !errors.Is(err, services.ErrNotFound) {
		return fmt.Errorf("failed to fail turn: %w", err)
	}
	if err := w.publisher.PublishError(ctx, claimed.TurnID, userMessage); err != nil {
		log.Warn("Failed to publish error frame", "error", err)
	}
	return w.jobs.FailJob(ctx, claimed.ID, result.Err.Error())
}

// retryable classifies an execution error. Protocol failures and stale
// duplicates are permanent; everything else (LLM transport, deadlines,
// internal errors) gets the retry budget.
func retryable(err error) bool {
	return !errors.Is(err, agent.ErrProtocol) && !errors.Is(err, ErrTurnUnavailable)
}

// userFacingError maps an execution error to the message stored on the turn
// and shown to the user. Internal detail stays in the job's error_message.
func userFacingError(err error, exhausted bool) string {
	switch {
	case errors.Is(err, agent.ErrProtocol):
		return "The model did not produce a usable response. Please try rephrasing your message."
	case errors.Is(err, agent.ErrDeadline), errors.Is(err, context.DeadlineExceeded):
		return "The investigation timed out. Please try again."
	case llm.IsRetryable(err) || exhausted:
		return "The analysis failed after multiple attempts. Please try again later."
	default:
		return "The analysis failed due to an internal error."
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, jobID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentJobID = jobID
	w.lastActivity = time.Now()
}
