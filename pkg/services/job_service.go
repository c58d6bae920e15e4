package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vibemonitor/rca/ent"
	"github.com/vibemonitor/rca/ent/job"
	"github.com/vibemonitor/rca/pkg/models"
)

// maxRetryBackoff caps the exponential retry delay.
const maxRetryBackoff = 1 * time.Hour

// JobService manages job enqueue, retry scheduling, and terminal updates.
// Claiming is done by queue workers with FOR UPDATE SKIP LOCKED.
type JobService struct {
	client *ent.Client
}

// NewJobService creates a new JobService
func NewJobService(client *ent.Client) *JobService {
	return &JobService{client: client}
}

// EnqueueJob creates a queued job for a turn. Exactly one job exists per
// turn; a duplicate enqueue returns ErrAlreadyExists.
func (s *JobService) EnqueueJob(httpCtx context.Context, req models.EnqueueJobRequest) (*ent.Job, error) {
	if req.WorkspaceID == "" {
		return nil, NewValidationError("workspace_id", "required")
	}
	if req.TurnID == "" {
		return nil, NewValidationError("turn_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	create := s.client.Job.Create().
		SetID(uuid.New().String()).
		SetWorkspaceID(req.WorkspaceID).
		SetTurnID(req.TurnID).
		SetPriority(req.Priority)
	if req.Source != "" {
		create.SetSource(req.Source)
	}
	if req.RequestedContext != nil {
		create.SetRequestedContext(req.RequestedContext)
	}

	j, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to enqueue job: %w", err)
	}

	return j, nil
}

// GetJob retrieves a job by ID
func (s *JobService) GetJob(ctx context.Context, jobID string) (*ent.Job, error) {
	j, err := s.client.Job.Get(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return j, nil
}

// GetJobByTurn retrieves the job of a turn
func (s *JobService) GetJobByTurn(ctx context.Context, turnID string) (*ent.Job, error) {
	j, err := s.client.Job.Query().
		Where(job.TurnIDEQ(turnID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get job by turn: %w", err)
	}
	return j, nil
}

// CompleteJob marks a running job completed
func (s *JobService) CompleteJob(ctx context.Context, jobID string) error {
	n, err := s.client.Job.Update().
		Where(
			job.IDEQ(jobID),
			job.StatusEQ(job.StatusRunning),
		).
		SetStatus(job.StatusCompleted).
		SetFinishedAt(time.Now()).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to complete job: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// FailJob marks a running job failed permanently
func (s *JobService) FailJob(ctx context.Context, jobID, errorMessage string) error {
	n, err := s.client.Job.Update().
		Where(
			job.IDEQ(jobID),
			job.StatusEQ(job.StatusRunning),
		).
		SetStatus(job.StatusFailed).
		SetErrorMessage(errorMessage).
		SetFinishedAt(time.Now()).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to fail job: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ScheduleRetry requeues a running job after a transient failure.
// Attempt n waits base * 2^n, capped at one hour. Returns the rescheduled
// job, or ErrNotFound if the job was not running (e.g. already requeued by
// the reconciler).
func (s *JobService) ScheduleRetry(ctx context.Context, jobID, errorMessage string, base time.Duration) (*ent.Job, error) {
	j, err := s.client.Job.Get(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get job for retry: %w", err)
	}

	backoff := RetryBackoff(base, j.Retries)
	n, err := s.client.Job.Update().
		Where(
			job.IDEQ(jobID),
			job.StatusEQ(job.StatusRunning),
		).
		SetStatus(job.StatusQueued).
		AddRetries(1).
		SetBackoffUntil(time.Now().Add(backoff)).
		SetErrorMessage(errorMessage).
		ClearPodID().
		ClearLastHeartbeatAt().
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule retry: %w", err)
	}
	if n == 0 {
		return nil, ErrNotFound
	}

	return s.client.Job.Get(ctx, jobID)
}

// Heartbeat refreshes the liveness timestamp of a running job
func (s *JobService) Heartbeat(ctx context.Context, jobID string) error {
	err := s.client.Job.Update().
		Where(
			job.IDEQ(jobID),
			job.StatusEQ(job.StatusRunning),
		).
		SetLastHeartbeatAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to heartbeat job: %w", err)
	}
	return nil
}

// Stats returns a point-in-time count of jobs by status
func (s *JobService) Stats(ctx context.Context) (*models.QueueStats, error) {
	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := s.client.Job.Query().
		GroupBy(job.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to query queue stats: %w", err)
	}

	stats := &models.QueueStats{}
	for _, row := range rows {
		switch job.Status(row.Status) {
		case job.StatusQueued:
			stats.Queued = row.Count
		case job.StatusRunning:
			stats.Running = row.Count
		case job.StatusWaitingInput:
			stats.WaitingInput = row.Count
		case job.StatusCompleted:
			stats.Completed = row.Count
		case job.StatusFailed:
			stats.Failed = row.Count
		}
	}
	return stats, nil
}

// RetryBackoff computes the delay before retry attempt n (zero-based),
// doubling from base and capped at one hour.
func RetryBackoff(base time.Duration, attempt int) time.Duration {
	if base <= 0 {
		base = 60 * time.Second
	}
	backoff := base
	for i := 0; i < attempt; i++ {
		backoff *= 2
		if backoff >= maxRetryBackoff {
			return maxRetryBackoff
		}
	}
	return backoff
}
