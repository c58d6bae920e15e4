package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// notifyLimit is the safety margin under PostgreSQL's 8000-byte NOTIFY
// payload cap. Payloads over this are broadcast without content; the full
// text is always available from the persisted step or turn row.
const notifyLimit = 7900

// Publisher writes turn stream frames. Step-backed frames are persisted to
// turn_steps and broadcast via NOTIFY in a single transaction (pg_notify is
// transactional — held until COMMIT), so persistence strictly precedes
// publication and both commit atomically. Terminal frames are NOTIFY-only.
//
// Sequence numbers are assigned under a row lock on the turn, which makes
// them gap-free and strictly increasing even with concurrent writers.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a Publisher on the given database handle.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// AppendStatus persists a status step and broadcasts its frame.
func (p *Publisher) AppendStatus(ctx context.Context, turnID, content string) (Frame, error) {
	return p.appendStep(ctx, turnID, FrameStatus, "status", "completed", "", content)
}

// AppendThinking persists a thinking step and broadcasts its frame.
func (p *Publisher) AppendThinking(ctx context.Context, turnID, content string) (Frame, error) {
	return p.appendStep(ctx, turnID, FrameThinking, "thinking", "completed", "", content)
}

// StartToolCall persists a running tool_call step and broadcasts a tool_start
// frame. The returned frame's StepID is passed to FinishToolCall to close out
// the same step.
func (p *Publisher) StartToolCall(ctx context.Context, turnID, toolName string) (Frame, error) {
	return p.appendStep(ctx, turnID, FrameToolStart, "tool_call", "running", toolName, "")
}

// FinishToolCall records the outcome of a tool call on its existing step and
// broadcasts a tool_end frame under the step's original sequence.
// status must be "completed" or "failed".
func (p *Publisher) FinishToolCall(ctx context.Context, turnID, stepID, status, content string) (Frame, error) {
	if status != "completed" && status != "failed" {
		return Frame{}, fmt.Errorf("invalid tool call outcome %q", status)
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return Frame{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var (
		sequence int
		toolName sql.NullString
	)
	err = tx.QueryRowContext(ctx,
		`UPDATE turn_steps SET step_status = $1, content = $2
		 WHERE step_id = $3 AND turn_id = $4 AND step_type = 'tool_call'
		 RETURNING sequence, tool_name`,
		status, content, stepID, turnID,
	).Scan(&sequence, &toolName)
	if err == sql.ErrNoRows {
		return Frame{}, fmt.Errorf("tool call step %s not found for turn %s", stepID, turnID)
	}
	if err != nil {
		return Frame{}, fmt.Errorf("failed to finish tool call step: %w", err)
	}

	frame := Frame{
		Type:      FrameToolEnd,
		TurnID:    turnID,
		Sequence:  sequence,
		StepID:    stepID,
		ToolName:  toolName.String,
		Status:    status,
		Content:   content,
		Timestamp: time.Now(),
	}

	if err := notifyTx(ctx, tx, TurnChannel(turnID), frame); err != nil {
		return Frame{}, err
	}
	if err := tx.Commit(); err != nil {
		return Frame{}, fmt.Errorf("failed to commit step transaction: %w", err)
	}
	return frame, nil
}

// PublishComplete broadcasts the terminal complete frame. The final response
// is already persisted on the turn row, so this is NOTIFY-only.
func (p *Publisher) PublishComplete(ctx context.Context, turnID, finalResponse string) error {
	return p.notifyOnly(ctx, Frame{
		Type:      FrameComplete,
		TurnID:    turnID,
		Content:   finalResponse,
		Timestamp: time.Now(),
	})
}

// PublishError broadcasts the terminal error frame. NOTIFY-only — the error
// is persisted on the turn row.
func (p *Publisher) PublishError(ctx context.Context, turnID, message string) error {
	return p.notifyOnly(ctx, Frame{
		Type:      FrameError,
		TurnID:    turnID,
		Content:   message,
		Timestamp: time.Now(),
	})
}

// appendStep inserts a turn step with the next sequence and broadcasts its
// frame, all in one transaction. The turn row is locked FOR UPDATE so
// concurrent writers serialize on sequence assignment.
func (p *Publisher) appendStep(ctx context.Context, turnID, frameType, stepType, stepStatus, toolName, content string) (Frame, error) {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return Frame{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var lockedID string
	err = tx.QueryRowContext(ctx,
		`SELECT turn_id FROM chat_turns WHERE turn_id = $1 FOR UPDATE`, turnID,
	).Scan(&lockedID)
	if err == sql.ErrNoRows {
		return Frame{}, fmt.Errorf("turn %s not found", turnID)
	}
	if err != nil {
		return Frame{}, fmt.Errorf("failed to lock turn row: %w", err)
	}

	var sequence int
	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(sequence), 0) + 1 FROM turn_steps WHERE turn_id = $1`, turnID,
	).Scan(&sequence)
	if err != nil {
		return Frame{}, fmt.Errorf("failed to compute next sequence: %w", err)
	}

	stepID := uuid.New().String()
	now := time.Now()
	var toolNameArg any
	if toolName != "" {
		toolNameArg = toolName
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO turn_steps (step_id, turn_id, step_type, tool_name, content, step_status, sequence, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		stepID, turnID, stepType, toolNameArg, content, stepStatus, sequence, now,
	)
	if err != nil {
		return Frame{}, fmt.Errorf("failed to persist step: %w", err)
	}

	frame := Frame{
		Type:      frameType,
		TurnID:    turnID,
		Sequence:  sequence,
		StepID:    stepID,
		ToolName:  toolName,
		Timestamp: now,
	}
	if frameType != FrameToolStart {
		frame.Content = content
	}

	if err := notifyTx(ctx, tx, TurnChannel(turnID), frame); err != nil {
		return Frame{}, err
	}
	if err := tx.Commit(); err != nil {
		return Frame{}, fmt.Errorf("failed to commit step transaction: %w", err)
	}
	return frame, nil
}

// notifyOnly broadcasts a frame via NOTIFY without persisting anything.
func (p *Publisher) notifyOnly(ctx context.Context, frame Frame) error {
	payload, err := marshalForNotify(frame)
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", TurnChannel(frame.TurnID), payload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// notifyTx issues pg_notify inside the given transaction.
func notifyTx(ctx context.Context, tx *sql.Tx, channel string, frame Frame) error {
	payload, err := marshalForNotify(frame)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, payload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// marshalForNotify marshals a frame, dropping the content if the payload
// would exceed PostgreSQL's NOTIFY size limit. Receivers of a truncated
// frame fetch the full content from the persisted step or turn row.
func marshalForNotify(frame Frame) (string, error) {
	payload, err := json.Marshal(frame)
	if err != nil {
		return "", fmt.Errorf("failed to marshal frame: %w", err)
	}
	if len(payload) <= notifyLimit {
		return string(payload), nil
	}

	frame.Content = ""
	frame.Truncated = true
	payload, err = json.Marshal(frame)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated frame: %w", err)
	}
	return string(payload), nil
}
