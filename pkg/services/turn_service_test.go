package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vibemonitor/rca/ent/chatturn"
	"github.com/vibemonitor/rca/ent/turnstep"
	"github.com/vibemonitor/rca/pkg/models"
)

func TestTurnService_CreateTurn(t *testing.T) {
	client := setupTestClient(t)
	svc := NewTurnService(client.Client)
	ctx := context.Background()

	createTestSession(t, client.Client, "sess-1", "ws-1")

	turn, err := svc.CreateTurn(ctx, models.CreateTurnRequest{
		SessionID:   "sess-1",
		UserMessage: "Why did checkout fail at 14:02?",
	})
	require.NoError(t, err)
	assert.Equal(t, chatturn.StatusPending, turn.Status)
	assert.Equal(t, "sess-1", turn.SessionID)
}

func TestTurnService_CreateTurn_SessionBusy(t *testing.T) {
	client := setupTestClient(t)
	svc := NewTurnService(client.Client)
	ctx := context.Background()

	createTestSession(t, client.Client, "sess-1", "ws-1")
	createTestTurn(t, client.Client, "turn-1", "sess-1", "first question")

	// The first turn is still pending, so a second submission is rejected.
	_, err := svc.CreateTurn(ctx, models.CreateTurnRequest{
		SessionID:   "sess-1",
		UserMessage: "second question",
	})
	assert.ErrorIs(t, err, ErrSessionBusy)

	// Once the first turn reaches a terminal state, submission works again.
	_, err = client.ChatTurn.UpdateOneID("turn-1").
		SetStatus(chatturn.StatusFailed).
		SetErrorMessage("boom").
		Save(ctx)
	require.NoError(t, err)

	_, err = svc.CreateTurn(ctx, models.CreateTurnRequest{
		SessionID:   "sess-1",
		UserMessage: "second question",
	})
	require.NoError(t, err)
}

func TestTurnService_StatusTransitions(t *testing.T) {
	client := setupTestClient(t)
	svc := NewTurnService(client.Client)
	ctx := context.Background()

	createTestSession(t, client.Client, "sess-1", "ws-1")
	createTestTurn(t, client.Client, "turn-1", "sess-1", "question")

	claimed, err := svc.MarkProcessing(ctx, "turn-1")
	require.NoError(t, err)
	assert.True(t, claimed)

	// A second claim is a no-op.
	claimed, err = svc.MarkProcessing(ctx, "turn-1")
	require.NoError(t, err)
	assert.False(t, claimed)

	require.NoError(t, svc.CompleteTurn(ctx, "turn-1", "Root cause: OOM in checkout-7f9d"))

	turn, err := client.ChatTurn.Get(ctx, "turn-1")
	require.NoError(t, err)
	assert.Equal(t, chatturn.StatusCompleted, turn.Status)
	require.NotNil(t, turn.FinalResponse)
	assert.Contains(t, *turn.FinalResponse, "OOM")

	// Completed turns cannot transition again.
	assert.ErrorIs(t, svc.CompleteTurn(ctx, "turn-1", "other"), ErrNotFound)
	assert.ErrorIs(t, svc.FailTurn(ctx, "turn-1", "late failure"), ErrNotFound)
}

func TestTurnService_FailPendingTurn(t *testing.T) {
	client := setupTestClient(t)
	svc := NewTurnService(client.Client)
	ctx := context.Background()

	createTestSession(t, client.Client, "sess-1", "ws-1")
	createTestTurn(t, client.Client, "turn-1", "sess-1", "question")

	// Admission-time rejection can fail a turn that never started processing.
	require.NoError(t, svc.FailTurn(ctx, "turn-1", "quota exceeded"))

	turn, err := client.ChatTurn.Get(ctx, "turn-1")
	require.NoError(t, err)
	assert.Equal(t, chatturn.StatusFailed, turn.Status)
}

func TestTurnService_GetTurn_WorkspaceScoping(t *testing.T) {
	client := setupTestClient(t)
	svc := NewTurnService(client.Client)
	ctx := context.Background()

	createTestSession(t, client.Client, "sess-1", "ws-1")
	createTestTurn(t, client.Client, "turn-1", "sess-1", "question")

	turn, err := svc.GetTurn(ctx, "ws-1", "turn-1")
	require.NoError(t, err)
	assert.Equal(t, "turn-1", turn.ID)

	_, err = svc.GetTurn(ctx, "ws-2", "turn-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTurnService_ListSteps(t *testing.T) {
	client := setupTestClient(t)
	svc := NewTurnService(client.Client)
	ctx := context.Background()

	createTestSession(t, client.Client, "sess-1", "ws-1")
	createTestTurn(t, client.Client, "turn-1", "sess-1", "question")

	for i := 1; i <= 3; i++ {
		_, err := client.TurnStep.Create().
			SetID(uuid.New().String()).
			SetTurnID("turn-1").
			SetStepType(turnstep.StepTypeStatus).
			SetContent("step").
			SetSequence(i).
			Save(ctx)
		require.NoError(t, err)
	}

	steps, err := svc.ListSteps(ctx, "turn-1", 0)
	require.NoError(t, err)
	require.Len(t, steps, 3)
	for i, step := range steps {
		assert.Equal(t, i+1, step.Sequence)
	}

	// Replay from a cursor.
	steps, err = svc.ListSteps(ctx, "turn-1", 2)
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Equal(t, 3, steps[0].Sequence)
}

func TestTurnService_Feedback(t *testing.T) {
	client := setupTestClient(t)
	svc := NewTurnService(client.Client)
	ctx := context.Background()

	createTestSession(t, client.Client, "sess-1", "ws-1")
	createTestTurn(t, client.Client, "turn-1", "sess-1", "question")

	// In-flight turns reject feedback.
	err := svc.SetFeedback(ctx, models.FeedbackRequest{TurnID: "turn-1", UserID: "user-1", Score: 1})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	_, err = client.ChatTurn.UpdateOneID("turn-1").
		SetStatus(chatturn.StatusCompleted).
		SetFinalResponse("answer").
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.SetFeedback(ctx, models.FeedbackRequest{TurnID: "turn-1", UserID: "user-1", Score: 1}))

	// A repeat vote overwrites instead of duplicating.
	require.NoError(t, svc.SetFeedback(ctx, models.FeedbackRequest{TurnID: "turn-1", UserID: "user-1", Score: -1}))

	all, err := client.TurnFeedback.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, -1, all[0].Score)

	// Invalid scores are rejected.
	err = svc.SetFeedback(ctx, models.FeedbackRequest{TurnID: "turn-1", UserID: "user-1", Score: 5})
	assert.True(t, IsValidationError(err))
}

func TestTurnService_AddComment(t *testing.T) {
	client := setupTestClient(t)
	svc := NewTurnService(client.Client)
	ctx := context.Background()

	createTestSession(t, client.Client, "sess-1", "ws-1")
	createTestTurn(t, client.Client, "turn-1", "sess-1", "question")

	comment, err := svc.AddComment(ctx, models.CommentRequest{
		TurnID: "turn-1",
		UserID: "user-1",
		Body:   "this analysis missed the deploy at 13:58",
	})
	require.NoError(t, err)
	assert.Equal(t, "turn-1", comment.TurnID)

	_, err = svc.AddComment(ctx, models.CommentRequest{
		TurnID: "missing-turn",
		UserID: "user-1",
		Body:   "body",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}
