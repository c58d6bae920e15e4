package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/vibemonitor/rca/ent"
	"github.com/vibemonitor/rca/ent/job"
	"github.com/vibemonitor/rca/pkg/config"
	"github.com/vibemonitor/rca/pkg/events"
	"github.com/vibemonitor/rca/pkg/services"
)

// WorkerPool manages a set of queue workers plus the stale-job reconciler.
type WorkerPool struct {
	podID     string
	client    *ent.Client
	config    *config.QueueConfig
	executor  TurnExecutor
	jobs      *services.JobService
	turns     *services.TurnService
	publisher *events.Publisher
	workers   []*Worker
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
	started   bool

	stale staleState
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(podID string, client *ent.Client, cfg *config.QueueConfig, executor TurnExecutor, jobs *services.JobService, turns *services.TurnService, publisher *events.Publisher) *WorkerPool {
	return &WorkerPool{
		podID:     podID,
		client:    client,
		config:    cfg,
		executor:  executor,
		jobs:      jobs,
		turns:     turns,
		publisher: publisher,
		workers:   make([]*Worker, 0, cfg.WorkerCount),
		stopCh:    make(chan struct{}),
	}
}

// Start spawns worker goroutines and the reconciler. Safe to call more
// than once; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "pod_id", p.podID, "worker_count", p.config.WorkerCount)

	// Requeue anything a previous incarnation of this pod left running,
	// before workers start claiming. Non-fatal: the reconciler would
	// catch these later anyway, just slower.
	if err := p.recoverOwnOrphans(ctx); err != nil {
		slog.Error("Startup orphan recovery failed", "error", err)
	}

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.client, p.config, p.executor, p.jobs, p.turns, p.publisher)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runReconciler(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish their
// current jobs (graceful shutdown).
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// QueueDepth returns the number of claimable jobs, for admission
// backpressure and health checks.
func (p *WorkerPool) QueueDepth(ctx context.Context) (int, error) {
	depth, err := p.client.Job.Query().
		Where(job.StatusEQ(job.StatusQueued)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query queue depth: %w", err)
	}
	return depth, nil
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.QueueDepth(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check", "pod_id", p.podID, "error", errQ)
	}

	running, errR := p.client.Job.Query().
		Where(
			job.StatusEQ(job.StatusRunning),
			job.PodIDEQ(p.podID),
		).
		Count(ctx)
	if errR != nil {
		slog.Error("Failed to query running jobs for health check", "pod_id", p.podID, "error", errR)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	dbHealthy := errQ == nil && errR == nil
	isHealthy := len(p.workers) > 0 && running <= p.config.MaxConcurrentJobs && dbHealthy

	p.stale.mu.Lock()
	lastStaleScan := p.stale.lastStaleScan
	jobsRequeued := p.stale.jobsRequeued
	p.stale.mu.Unlock()

	var dbError string
	if errQ != nil {
		dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
	} else if errR != nil {
		dbError = fmt.Sprintf("running jobs query failed: %v", errR)
	}

	return &PoolHealth{
		IsHealthy:     isHealthy,
		DBReachable:   dbHealthy,
		DBError:       dbError,
		PodID:         p.podID,
		ActiveWorkers: activeWorkers,
		TotalWorkers:  len(p.workers),
		RunningJobs:   running,
		MaxConcurrent: p.config.MaxConcurrentJobs,
		QueueDepth:    queueDepth,
		WorkerStats:   workerStats,
		LastStaleScan: lastStaleScan,
		JobsRequeued:  jobsRequeued,
	}
}
