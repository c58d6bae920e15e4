// Package events provides real-time frame delivery for turn streams via
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// Every frame a stream subscriber sees is backed by one of two sources:
//
//   - A persisted TurnStep. status, thinking, tool_start and tool_end frames
//     are written to turn_steps BEFORE the NOTIFY fires, in the same
//     transaction. Subscribers that reconnect replay the persisted steps and
//     deduplicate live frames by sequence.
//
//   - The turn row itself. complete and error frames carry no sequence and
//     are never stored as steps — they are derived from turn.final_response /
//     turn.error_message and broadcast NOTIFY-only. On replay they are
//     synthesized from the turn row, so a subscriber always observes exactly
//     one terminal frame regardless of how often it reconnects.
//
// A tool call spans two frames over a single step row: tool_start inserts the
// step with step_status=running, tool_end updates that same row with the
// outcome and re-broadcasts under the original sequence.
package events

import (
	"time"

	"github.com/vibemonitor/rca/ent"
	"github.com/vibemonitor/rca/ent/chatturn"
	"github.com/vibemonitor/rca/ent/turnstep"
)

// Frame types carried on turn channels.
const (
	FrameStatus    = "status"
	FrameToolStart = "tool_start"
	FrameToolEnd   = "tool_end"
	FrameThinking  = "thinking"
	FrameComplete  = "complete"
	FrameError     = "error"
)

// Frame is the wire format for a single turn stream event. Step-backed frames
// carry Sequence and StepID; terminal frames (complete, error) carry neither.
type Frame struct {
	Type      string    `json:"type"`
	TurnID    string    `json:"turn_id"`
	Sequence  int       `json:"sequence,omitempty"`
	StepID    string    `json:"step_id,omitempty"`
	ToolName  string    `json:"tool_name,omitempty"`
	Status    string    `json:"status,omitempty"` // tool_end: "completed" or "failed"
	Content   string    `json:"content,omitempty"`
	Truncated bool      `json:"truncated,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Terminal reports whether the frame ends the stream.
func (f Frame) Terminal() bool {
	return f.Type == FrameComplete || f.Type == FrameError
}

// TurnChannel returns the NOTIFY channel name for a turn's stream.
// Format: "turn:{turn_id}"
func TurnChannel(turnID string) string {
	return "turn:" + turnID
}

// StepFrame converts a persisted TurnStep into the frame a live subscriber
// would have received for it. Used for replay on (re)connect.
func StepFrame(step *ent.TurnStep) Frame {
	f := Frame{
		TurnID:    step.TurnID,
		Sequence:  step.Sequence,
		StepID:    step.ID,
		Timestamp: step.CreatedAt,
	}
	if step.Content != nil {
		f.Content = *step.Content
	}

	switch step.StepType {
	case turnstep.StepTypeStatus:
		f.Type = FrameStatus
	case turnstep.StepTypeThinking:
		f.Type = FrameThinking
	case turnstep.StepTypeToolCall:
		if step.ToolName != nil {
			f.ToolName = *step.ToolName
		}
		// A still-running tool call replays as tool_start; a finished one
		// replays as tool_end with the recorded outcome.
		if step.StepStatus == turnstep.StepStatusRunning || step.StepStatus == turnstep.StepStatusPending {
			f.Type = FrameToolStart
			f.Content = ""
		} else {
			f.Type = FrameToolEnd
			f.Status = string(step.StepStatus)
		}
	}
	return f
}

// TerminalFrame derives the terminal frame for a turn from its row.
// Returns false if the turn is still in flight.
func TerminalFrame(turn *ent.ChatTurn) (Frame, bool) {
	switch turn.Status {
	case chatturn.StatusCompleted:
		f := Frame{
			Type:      FrameComplete,
			TurnID:    turn.ID,
			Timestamp: turn.UpdatedAt,
		}
		if turn.FinalResponse != nil {
			f.Content = *turn.FinalResponse
		}
		return f, true
	case chatturn.StatusFailed:
		f := Frame{
			Type:      FrameError,
			TurnID:    turn.ID,
			Timestamp: turn.UpdatedAt,
		}
		if turn.ErrorMessage != nil {
			f.Content = *turn.ErrorMessage
		}
		return f, true
	default:
		return Frame{}, false
	}
}
