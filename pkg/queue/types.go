// Package queue provides the job queue workers: claiming queued jobs from
// the database, running the investigation, and writing terminal state.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/vibemonitor/rca/ent"
)

// Sentinel errors for queue operations.
var (
	// ErrNoJobsAvailable indicates no claimable jobs are in the queue.
	ErrNoJobsAvailable = errors.New("no jobs available")

	// ErrAtCapacity indicates the global concurrent job limit has been reached.
	ErrAtCapacity = errors.New("at capacity")

	// ErrTurnUnavailable indicates the job's turn is already terminal and
	// cannot be executed again (a stale duplicate delivery).
	ErrTurnUnavailable = errors.New("turn already finalized")
)

// TurnExecutor runs the investigation for one claimed job. The executor
// writes the per-step state (TurnSteps, stream frames) progressively; the
// worker handles claiming, heartbeat, and terminal status.
type TurnExecutor interface {
	Execute(ctx context.Context, job *ent.Job) ExecutionResult
}

// ExecutionResult is the terminal outcome of one execution attempt.
type ExecutionResult struct {
	// Answer is the final response text when Err is nil.
	Answer string

	// Err is the engine-level failure, classified by the worker into a
	// retry or a permanent failure.
	Err error
}

// PoolHealth is a point-in-time snapshot of the worker pool.
type PoolHealth struct {
	IsHealthy     bool           `json:"is_healthy"`
	DBReachable   bool           `json:"db_reachable"`
	DBError       string         `json:"db_error,omitempty"`
	PodID         string         `json:"pod_id"`
	ActiveWorkers int            `json:"active_workers"`
	TotalWorkers  int            `json:"total_workers"`
	RunningJobs   int            `json:"running_jobs"`
	MaxConcurrent int            `json:"max_concurrent"`
	QueueDepth    int            `json:"queue_depth"`
	WorkerStats   []WorkerHealth `json:"worker_stats"`
	LastStaleScan time.Time      `json:"last_stale_scan"`
	JobsRequeued  int            `json:"jobs_requeued"`
}

// WorkerHealth is a point-in-time snapshot of a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentJobID  string    `json:"current_job_id,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
