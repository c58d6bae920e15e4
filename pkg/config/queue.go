package config

import "time"

// QueueConfig contains queue and worker pool configuration.
// These values control how jobs are polled, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and claims jobs.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentJobs is the global limit of jobs running across ALL
	// replicas/pods. Enforced by database COUNT(*) check at claim time.
	MaxConcurrentJobs int `yaml:"max_concurrent_jobs"`

	// PollInterval is the base interval for checking queued jobs.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// JobTimeout is the maximum time a single job may run.
	JobTimeout time.Duration `yaml:"job_timeout"`

	// GracefulShutdownTimeout is the max time to wait for active jobs
	// to complete during shutdown. Should match JobTimeout.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// HeartbeatInterval is how often a worker refreshes last_heartbeat_at
	// on its running job.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// StaleCheckInterval is how often the reconciler scans for running
	// jobs with expired heartbeats.
	StaleCheckInterval time.Duration `yaml:"stale_check_interval"`

	// StaleThreshold is how long a running job may go without a heartbeat
	// before the reconciler requeues or fails it.
	StaleThreshold time.Duration `yaml:"stale_threshold"`

	// RetryBackoffBase is the base delay for retry backoff.
	// Attempt n waits RetryBackoffBase * 2^n.
	RetryBackoffBase time.Duration `yaml:"retry_backoff_base"`

	// MaxQueueDepth is the admission threshold: when this many jobs are
	// already queued, new turns are rejected until the backlog drains.
	MaxQueueDepth int `yaml:"max_queue_depth"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             5,
		MaxConcurrentJobs:       10,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		JobTimeout:              5 * time.Minute,
		GracefulShutdownTimeout: 5 * time.Minute,
		HeartbeatInterval:       15 * time.Second,
		StaleCheckInterval:      1 * time.Minute,
		StaleThreshold:          2 * time.Minute,
		RetryBackoffBase:        60 * time.Second,
		MaxQueueDepth:           500,
	}
}
