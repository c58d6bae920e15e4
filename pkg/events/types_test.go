package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vibemonitor/rca/ent"
	"github.com/vibemonitor/rca/ent/chatturn"
	"github.com/vibemonitor/rca/ent/turnstep"
)

func strPtr(s string) *string { return &s }

func TestTurnChannel(t *testing.T) {
	assert.Equal(t, "turn:abc-123", TurnChannel("abc-123"))
}

func TestStepFrame(t *testing.T) {
	now := time.Now()

	t.Run("status step", func(t *testing.T) {
		f := StepFrame(&ent.TurnStep{
			ID:         "step-1",
			TurnID:     "turn-1",
			StepType:   turnstep.StepTypeStatus,
			Content:    strPtr("Starting analysis"),
			StepStatus: turnstep.StepStatusCompleted,
			Sequence:   1,
			CreatedAt:  now,
		})
		assert.Equal(t, FrameStatus, f.Type)
		assert.Equal(t, "turn-1", f.TurnID)
		assert.Equal(t, 1, f.Sequence)
		assert.Equal(t, "Starting analysis", f.Content)
		assert.False(t, f.Terminal())
	})

	t.Run("thinking step", func(t *testing.T) {
		f := StepFrame(&ent.TurnStep{
			ID:         "step-2",
			TurnID:     "turn-1",
			StepType:   turnstep.StepTypeThinking,
			Content:    strPtr("need latency metrics next"),
			StepStatus: turnstep.StepStatusCompleted,
			Sequence:   3,
			CreatedAt:  now,
		})
		assert.Equal(t, FrameThinking, f.Type)
		assert.Equal(t, "need latency metrics next", f.Content)
	})

	t.Run("running tool call replays as tool_start", func(t *testing.T) {
		f := StepFrame(&ent.TurnStep{
			ID:         "step-3",
			TurnID:     "turn-1",
			StepType:   turnstep.StepTypeToolCall,
			ToolName:   strPtr("logs.errors.grafana"),
			StepStatus: turnstep.StepStatusRunning,
			Sequence:   4,
			CreatedAt:  now,
		})
		assert.Equal(t, FrameToolStart, f.Type)
		assert.Equal(t, "logs.errors.grafana", f.ToolName)
		assert.Empty(t, f.Content)
		assert.Empty(t, f.Status)
	})

	t.Run("finished tool call replays as tool_end", func(t *testing.T) {
		f := StepFrame(&ent.TurnStep{
			ID:         "step-4",
			TurnID:     "turn-1",
			StepType:   turnstep.StepTypeToolCall,
			ToolName:   strPtr("logs.errors.grafana"),
			Content:    strPtr("found 12 errors"),
			StepStatus: turnstep.StepStatusCompleted,
			Sequence:   4,
			CreatedAt:  now,
		})
		assert.Equal(t, FrameToolEnd, f.Type)
		assert.Equal(t, "completed", f.Status)
		assert.Equal(t, "found 12 errors", f.Content)
	})

	t.Run("failed tool call carries failed status", func(t *testing.T) {
		f := StepFrame(&ent.TurnStep{
			ID:         "step-5",
			TurnID:     "turn-1",
			StepType:   turnstep.StepTypeToolCall,
			ToolName:   strPtr("metrics.query.grafana"),
			Content:    strPtr("ERROR: upstream unavailable"),
			StepStatus: turnstep.StepStatusFailed,
			Sequence:   5,
			CreatedAt:  now,
		})
		assert.Equal(t, FrameToolEnd, f.Type)
		assert.Equal(t, "failed", f.Status)
	})
}

func TestTerminalFrame(t *testing.T) {
	now := time.Now()

	t.Run("completed turn yields complete frame", func(t *testing.T) {
		f, ok := TerminalFrame(&ent.ChatTurn{
			ID:            "turn-1",
			Status:        chatturn.StatusCompleted,
			FinalResponse: strPtr("The root cause is connection pool exhaustion."),
			UpdatedAt:     now,
		})
		assert.True(t, ok)
		assert.Equal(t, FrameComplete, f.Type)
		assert.Equal(t, "The root cause is connection pool exhaustion.", f.Content)
		assert.Zero(t, f.Sequence)
		assert.True(t, f.Terminal())
	})

	t.Run("failed turn yields error frame", func(t *testing.T) {
		f, ok := TerminalFrame(&ent.ChatTurn{
			ID:           "turn-2",
			Status:       chatturn.StatusFailed,
			ErrorMessage: strPtr("analysis timed out"),
			UpdatedAt:    now,
		})
		assert.True(t, ok)
		assert.Equal(t, FrameError, f.Type)
		assert.Equal(t, "analysis timed out", f.Content)
	})

	t.Run("in-flight turn has no terminal frame", func(t *testing.T) {
		_, ok := TerminalFrame(&ent.ChatTurn{ID: "turn-3", Status: chatturn.StatusProcessing})
		assert.False(t, ok)
	})
}
