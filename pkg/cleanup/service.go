// Package cleanup enforces data retention: aged sessions are purged on a
// schedule, and the cascade takes their turns, steps, jobs, feedback, and
// comments with them.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/vibemonitor/rca/pkg/config"
	"github.com/vibemonitor/rca/pkg/services"
)

// Service runs the background retention sweep. Safe to run from multiple
// pods: the purge is one conditional delete, so concurrent sweeps just
// find nothing left to remove.
type Service struct {
	config   *config.RetentionConfig
	sessions *services.SessionService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a cleanup service.
func NewService(cfg *config.RetentionConfig, sessions *services.SessionService) *Service {
	return &Service{config: cfg, sessions: sessions}
}

// Start launches the sweep loop. No-op when retention is disabled or the
// service is already running.
func (s *Service) Start(ctx context.Context) {
	if !s.config.Enabled {
		slog.Info("Retention sweeper disabled")
		return
	}
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Retention sweeper started",
		"max_session_age", s.config.MaxSessionAge,
		"sweep_interval", s.config.SweepInterval)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Retention sweeper stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.sweep(ctx)

	ticker := time.NewTicker(s.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-s.config.MaxSessionAge)
	count, err := s.sessions.PurgeIdleBefore(ctx, cutoff)
	if err != nil {
		slog.Error("Retention: session purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged aged sessions", "count", count, "cutoff", cutoff)
	}
}
