package models

import (
	"github.com/vibemonitor/rca/ent"
	"github.com/vibemonitor/rca/ent/job"
)

// EnqueueJobRequest contains fields for enqueuing a job for a turn
type EnqueueJobRequest struct {
	WorkspaceID      string         `json:"workspace_id"`
	TurnID           string         `json:"turn_id"`
	Source           job.Source     `json:"source"`
	Priority         int            `json:"priority"`
	RequestedContext map[string]any `json:"requested_context,omitempty"`
}

// JobResponse wraps a Job
type JobResponse struct {
	*ent.Job
}

// QueueStats contains a point-in-time snapshot of queue depth by status
type QueueStats struct {
	Queued       int `json:"queued"`
	Running      int `json:"running"`
	WaitingInput int `json:"waiting_input"`
	Completed    int `json:"completed"`
	Failed       int `json:"failed"`
}
