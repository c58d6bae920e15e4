package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vibemonitor/rca/ent"
	"github.com/vibemonitor/rca/ent/llmconfig"
	"github.com/vibemonitor/rca/pkg/config"
	"github.com/vibemonitor/rca/pkg/models"
)

// ResourceTurns is the counted resource for the daily turn quota.
const ResourceTurns = "rca_turns"

// QuotaService enforces the daily per-workspace turn quota.
// Counters are incremented with a single conditional upsert, so concurrent
// admissions can never push a window past its limit.
type QuotaService struct {
	client *ent.Client
	db     *sql.DB
	cfg    *config.QuotaConfig
}

// NewQuotaService creates a new QuotaService.
// db must be the same connection pool backing the ent client.
func NewQuotaService(client *ent.Client, db *sql.DB, cfg *config.QuotaConfig) *QuotaService {
	return &QuotaService{client: client, db: db, cfg: cfg}
}

// ConsumeTurn counts one turn against the workspace's daily window.
// Returns ErrQuotaExceeded when the window is exhausted. Workspaces with an
// enabled BYO-LLM config bypass the quota entirely when configured to.
func (s *QuotaService) ConsumeTurn(ctx context.Context, workspaceID string) error {
	if !s.cfg.Enabled {
		return nil
	}
	if workspaceID == "" {
		return NewValidationError("workspace_id", "required")
	}

	if s.cfg.BypassWithOwnLLM {
		bypass, err := s.hasOwnLLM(ctx, workspaceID)
		if err != nil {
			return err
		}
		if bypass {
			return nil
		}
	}

	now := time.Now().UTC()
	limit := s.cfg.LimitFor(workspaceID)

	// Conditional upsert: the increment only applies while count < limit.
	// No row back means the window is exhausted.
	var count int
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO quota_counters
			(quota_counter_id, workspace_id, resource, window_key, count, limit_value, reset_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 1, $5, $6, $7, $7)
		ON CONFLICT (workspace_id, resource, window_key) DO UPDATE
			SET count = quota_counters.count + 1, updated_at = $7
			WHERE quota_counters.count < quota_counters.limit_value
		RETURNING count`,
		uuid.New().String(), workspaceID, ResourceTurns, WindowKey(now), limit, NextReset(now), now,
	).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrQuotaExceeded
	}
	if err != nil {
		return fmt.Errorf("failed to consume quota: %w", err)
	}

	return nil
}

// Status reports the workspace's standing in the current window without
// consuming anything.
func (s *QuotaService) Status(ctx context.Context, workspaceID string) (*models.QuotaStatus, error) {
	if workspaceID == "" {
		return nil, NewValidationError("workspace_id", "required")
	}

	now := time.Now().UTC()
	limit := s.cfg.LimitFor(workspaceID)
	status := &models.QuotaStatus{
		Resource: ResourceTurns,
		Limit:    limit,
		ResetAt:  NextReset(now),
	}

	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT count FROM quota_counters
		WHERE workspace_id = $1 AND resource = $2 AND window_key = $3`,
		workspaceID, ResourceTurns, WindowKey(now),
	).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return status, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query quota counter: %w", err)
	}

	status.Used = count
	status.Exhausted = count >= limit
	return status, nil
}

// hasOwnLLM reports whether the workspace has an enabled BYO-LLM config.
func (s *QuotaService) hasOwnLLM(ctx context.Context, workspaceID string) (bool, error) {
	exists, err := s.client.LLMConfig.Query().
		Where(
			llmconfig.WorkspaceIDEQ(workspaceID),
			llmconfig.EnabledEQ(true),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check workspace llm config: %w", err)
	}
	return exists, nil
}

// WindowKey returns the UTC day key (YYYY-MM-DD) for a point in time.
func WindowKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// NextReset returns the next UTC midnight after t.
func NextReset(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
}
