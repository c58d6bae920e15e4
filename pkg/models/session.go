// Package models contains request/response models and business domain types.
package models

import (
	"time"

	"github.com/vibemonitor/rca/ent"
	"github.com/vibemonitor/rca/ent/chatsession"
)

// CreateSessionRequest contains fields for creating a new chat session
type CreateSessionRequest struct {
	WorkspaceID string             `json:"workspace_id"`
	UserID      string             `json:"user_id,omitempty"`
	Origin      chatsession.Origin `json:"origin,omitempty"`
	Title       string             `json:"title,omitempty"`

	// External thread coordinates, required for slack origin
	ExternalChannelID string `json:"external_channel_id,omitempty"`
	ExternalThreadTS  string `json:"external_thread_ts,omitempty"`
}

// SessionFilters contains filtering options for listing sessions
type SessionFilters struct {
	UserID        string     `json:"user_id,omitempty"`
	Origin        string     `json:"origin,omitempty"`
	CreatedAfter  *time.Time `json:"created_after,omitempty"`
	CreatedBefore *time.Time `json:"created_before,omitempty"`
	Limit         int        `json:"limit,omitempty"`
	Offset        int        `json:"offset,omitempty"`
}

// SessionResponse wraps a ChatSession with optional loaded edges
type SessionResponse struct {
	*ent.ChatSession
}

// SessionListResponse contains paginated session list
type SessionListResponse struct {
	Sessions   []*ent.ChatSession `json:"sessions"`
	TotalCount int                `json:"total_count"`
	Limit      int                `json:"limit"`
	Offset     int                `json:"offset"`
}
