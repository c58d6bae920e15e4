package models

import (
	"github.com/vibemonitor/rca/ent"
	"github.com/vibemonitor/rca/ent/turnstep"
)

// CreateTurnRequest contains fields for creating a turn in a session
type CreateTurnRequest struct {
	SessionID   string `json:"session_id"`
	UserMessage string `json:"user_message"`
	UserID      string `json:"user_id,omitempty"`
}

// TurnResponse wraps a ChatTurn with optional loaded edges
type TurnResponse struct {
	*ent.ChatTurn
}

// TurnListResponse contains the ordered turns of a session
type TurnListResponse struct {
	Turns []*ent.ChatTurn `json:"turns"`
}

// AppendStepRequest contains fields for appending a step to a turn.
// Sequence is assigned by the service, never by the caller.
type AppendStepRequest struct {
	TurnID     string              `json:"turn_id"`
	StepType   turnstep.StepType   `json:"step_type"`
	ToolName   string              `json:"tool_name,omitempty"`
	Content    string              `json:"content,omitempty"`
	StepStatus turnstep.StepStatus `json:"step_status,omitempty"`
}

// FeedbackRequest records a thumbs vote on a turn
type FeedbackRequest struct {
	TurnID string `json:"turn_id"`
	UserID string `json:"user_id"`
	Score  int    `json:"score"` // +1 or -1
}

// CommentRequest adds a free-text comment to a turn
type CommentRequest struct {
	TurnID string `json:"turn_id"`
	UserID string `json:"user_id"`
	Body   string `json:"body"`
}
