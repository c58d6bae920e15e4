package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vibemonitor/rca/ent"
	"github.com/vibemonitor/rca/ent/securityevent"
	"github.com/vibemonitor/rca/pkg/models"
)

// maxPreviewLen caps message previews stored in the audit trail.
const maxPreviewLen = 300

// SecurityService records and lists prompt-guard audit events
type SecurityService struct {
	client *ent.Client
}

// NewSecurityService creates a new SecurityService
func NewSecurityService(client *ent.Client) *SecurityService {
	return &SecurityService{client: client}
}

// RecordEvent writes a guard audit record. The message preview is truncated
// so raw user input never lands in the audit trail in full.
func (s *SecurityService) RecordEvent(httpCtx context.Context, req models.RecordSecurityEventRequest) (*ent.SecurityEvent, error) {
	if req.WorkspaceID == "" {
		return nil, NewValidationError("workspace_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	create := s.client.SecurityEvent.Create().
		SetID(uuid.New().String()).
		SetWorkspaceID(req.WorkspaceID).
		SetEventType(req.EventType).
		SetMessagePreview(truncateRunes(req.MessagePreview, maxPreviewLen))
	if req.UserID != "" {
		create.SetUserID(req.UserID)
	}
	if req.Detail != "" {
		create.SetDetail(req.Detail)
	}

	evt, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record security event: %w", err)
	}
	return evt, nil
}

// ListEvents returns workspace audit records, newest first
func (s *SecurityService) ListEvents(ctx context.Context, workspaceID string, filters models.SecurityEventFilters) (*models.SecurityEventListResponse, error) {
	if workspaceID == "" {
		return nil, NewValidationError("workspace_id", "required")
	}

	query := s.client.SecurityEvent.Query().
		Where(securityevent.WorkspaceIDEQ(workspaceID))

	if filters.EventType != "" {
		query = query.Where(securityevent.EventTypeEQ(securityevent.EventType(filters.EventType)))
	}
	if filters.CreatedAfter != nil {
		query = query.Where(securityevent.CreatedAtGTE(*filters.CreatedAfter))
	}

	totalCount, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count security events: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	events, err := query.
		Order(ent.Desc(securityevent.FieldCreatedAt)).
		Limit(limit).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list security events: %w", err)
	}

	return &models.SecurityEventListResponse{
		Events:     events,
		TotalCount: totalCount,
	}, nil
}

// truncateRunes cuts s to at most n runes.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
