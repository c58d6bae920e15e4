package models

import (
	"time"

	"github.com/vibemonitor/rca/ent"
	"github.com/vibemonitor/rca/ent/securityevent"
)

// RecordSecurityEventRequest contains fields for a guard audit record.
// MessagePreview is truncated to 300 characters by the service.
type RecordSecurityEventRequest struct {
	WorkspaceID    string                  `json:"workspace_id"`
	UserID         string                  `json:"user_id,omitempty"`
	EventType      securityevent.EventType `json:"event_type"`
	MessagePreview string                  `json:"message_preview"`
	Detail         string                  `json:"detail,omitempty"`
}

// SecurityEventFilters filters the audit listing
type SecurityEventFilters struct {
	EventType     string     `json:"event_type,omitempty"`
	CreatedAfter  *time.Time `json:"created_after,omitempty"`
	Limit         int        `json:"limit,omitempty"`
	Offset        int        `json:"offset,omitempty"`
}

// SecurityEventListResponse contains paginated guard audit records
type SecurityEventListResponse struct {
	Events     []*ent.SecurityEvent `json:"events"`
	TotalCount int                  `json:"total_count"`
}

// QuotaStatus reports a workspace's standing for one resource window
type QuotaStatus struct {
	Resource  string    `json:"resource"`
	Used      int       `json:"used"`
	Limit     int       `json:"limit"`
	Exhausted bool      `json:"exhausted"`
	ResetAt   time.Time `json:"reset_at"`
}
