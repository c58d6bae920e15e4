package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vibemonitor/rca/ent"
	"github.com/vibemonitor/rca/ent/chatsession"
	"github.com/vibemonitor/rca/ent/chatturn"
	"github.com/vibemonitor/rca/ent/turnfeedback"
	"github.com/vibemonitor/rca/ent/turnstep"
	"github.com/vibemonitor/rca/pkg/models"
)

// TurnService manages turn lifecycle, steps, feedback, and comments
type TurnService struct {
	client *ent.Client
}

// NewTurnService creates a new TurnService
func NewTurnService(client *ent.Client) *TurnService {
	return &TurnService{client: client}
}

// CreateTurn creates a pending turn in a session. At most one turn per
// session may be in flight; a second submission gets ErrSessionBusy.
func (s *TurnService) CreateTurn(httpCtx context.Context, req models.CreateTurnRequest) (*ent.ChatTurn, error) {
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if req.UserMessage == "" {
		return nil, NewValidationError("user_message", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	inFlight, err := s.client.ChatTurn.Query().
		Where(
			chatturn.SessionIDEQ(req.SessionID),
			chatturn.StatusIn(chatturn.StatusPending, chatturn.StatusProcessing),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check in-flight turns: %w", err)
	}
	if inFlight {
		return nil, ErrSessionBusy
	}

	turn, err := s.client.ChatTurn.Create().
		SetID(uuid.New().String()).
		SetSessionID(req.SessionID).
		SetUserMessage(req.UserMessage).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrNotFound // session does not exist
		}
		return nil, fmt.Errorf("failed to create turn: %w", err)
	}

	return turn, nil
}

// GetTurn retrieves a turn scoped to a workspace via its session
func (s *TurnService) GetTurn(ctx context.Context, workspaceID, turnID string) (*ent.ChatTurn, error) {
	turn, err := s.client.ChatTurn.Query().
		Where(
			chatturn.IDEQ(turnID),
			chatturn.HasSessionWith(chatsession.WorkspaceIDEQ(workspaceID)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get turn: %w", err)
	}
	return turn, nil
}

// ListTurns returns all turns of a session in creation order
func (s *TurnService) ListTurns(ctx context.Context, sessionID string) ([]*ent.ChatTurn, error) {
	turns, err := s.client.ChatTurn.Query().
		Where(chatturn.SessionIDEQ(sessionID)).
		Order(ent.Asc(chatturn.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list turns: %w", err)
	}
	return turns, nil
}

// ListSteps returns the steps of a turn with sequence greater than
// afterSequence, in sequence order. afterSequence=0 returns everything.
func (s *TurnService) ListSteps(ctx context.Context, turnID string, afterSequence int) ([]*ent.TurnStep, error) {
	steps, err := s.client.TurnStep.Query().
		Where(
			turnstep.TurnIDEQ(turnID),
			turnstep.SequenceGT(afterSequence),
		).
		Order(ent.Asc(turnstep.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list steps: %w", err)
	}
	return steps, nil
}

// MarkProcessing transitions a turn from pending to processing.
// Returns false without error if the turn was not pending (already claimed
// or already terminal).
func (s *TurnService) MarkProcessing(ctx context.Context, turnID string) (bool, error) {
	n, err := s.client.ChatTurn.Update().
		Where(
			chatturn.IDEQ(turnID),
			chatturn.StatusEQ(chatturn.StatusPending),
		).
		SetStatus(chatturn.StatusProcessing).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to mark turn processing: %w", err)
	}
	return n > 0, nil
}

// CompleteTurn records the final response and marks the turn completed
func (s *TurnService) CompleteTurn(ctx context.Context, turnID, finalResponse string) error {
	n, err := s.client.ChatTurn.Update().
		Where(
			chatturn.IDEQ(turnID),
			chatturn.StatusEQ(chatturn.StatusProcessing),
		).
		SetStatus(chatturn.StatusCompleted).
		SetFinalResponse(finalResponse).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to complete turn: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// FailTurn marks the turn failed with an error message. Pending turns can
// fail too (admission-time rejections after enqueue).
func (s *TurnService) FailTurn(ctx context.Context, turnID, errorMessage string) error {
	n, err := s.client.ChatTurn.Update().
		Where(
			chatturn.IDEQ(turnID),
			chatturn.StatusIn(chatturn.StatusPending, chatturn.StatusProcessing),
		).
		SetStatus(chatturn.StatusFailed).
		SetErrorMessage(errorMessage).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to fail turn: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// SetFeedback records a thumbs vote on a terminal turn. One row per
// (turn, user); a repeat vote overwrites the score.
func (s *TurnService) SetFeedback(httpCtx context.Context, req models.FeedbackRequest) error {
	if req.TurnID == "" {
		return NewValidationError("turn_id", "required")
	}
	if req.UserID == "" {
		return NewValidationError("user_id", "required")
	}
	if req.Score != 1 && req.Score != -1 {
		return NewValidationError("score", "must be +1 or -1")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	turn, err := s.client.ChatTurn.Get(ctx, req.TurnID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get turn: %w", err)
	}
	if turn.Status != chatturn.StatusCompleted && turn.Status != chatturn.StatusFailed {
		return NewValidationError("turn_id", "turn is still in flight")
	}

	err = s.client.TurnFeedback.Create().
		SetID(uuid.New().String()).
		SetTurnID(req.TurnID).
		SetUserID(req.UserID).
		SetScore(req.Score).
		OnConflictColumns(turnfeedback.FieldTurnID, turnfeedback.FieldUserID).
		Update(func(u *ent.TurnFeedbackUpsert) {
			u.SetScore(req.Score)
			u.SetUpdatedAt(time.Now())
		}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set feedback: %w", err)
	}
	return nil
}

// AddComment appends a free-text comment to a turn
func (s *TurnService) AddComment(httpCtx context.Context, req models.CommentRequest) (*ent.TurnComment, error) {
	if req.TurnID == "" {
		return nil, NewValidationError("turn_id", "required")
	}
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if req.Body == "" {
		return nil, NewValidationError("body", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	comment, err := s.client.TurnComment.Create().
		SetID(uuid.New().String()).
		SetTurnID(req.TurnID).
		SetUserID(req.UserID).
		SetBody(req.Body).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrNotFound // turn does not exist
		}
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}
	return comment, nil
}
