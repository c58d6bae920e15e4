package api

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibemonitor/rca/ent/chatturn"
	"github.com/vibemonitor/rca/ent/turnfeedback"
)

func TestGetTurnHandler(t *testing.T) {
	ts := newTestServer(t)
	seedTurn(t, ts.client.Client, "1", "ws-1", chatturn.StatusCompleted)

	_, err := ts.publisher.AppendStatus(context.Background(), "turn-1", "Queued")
	require.NoError(t, err)

	rec := ts.do(t, http.MethodGet, "/api/v1/turns/turn-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp TurnDetailResponse
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "turn-1", resp.Turn.ID)
	require.Len(t, resp.Steps, 1)
	assert.Equal(t, 1, resp.Steps[0].Sequence)

	// Foreign workspace reads as not found.
	seedTurn(t, ts.client.Client, "2", "ws-other", chatturn.StatusCompleted)
	rec = ts.do(t, http.MethodGet, "/api/v1/turns/turn-2", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubmitFeedbackHandler(t *testing.T) {
	ts := newTestServer(t)
	seedTurn(t, ts.client.Client, "1", "ws-1", chatturn.StatusCompleted)

	rec := ts.do(t, http.MethodPost, "/api/v1/turns/turn-1/feedback", SubmitFeedbackRequest{
		Score:   1,
		Comment: "clear and correct",
	})
	require.Equal(t, http.StatusNoContent, rec.Code)

	ctx := context.Background()
	fb := ts.client.TurnFeedback.Query().
		Where(turnfeedback.TurnIDEQ("turn-1"), turnfeedback.UserIDEQ("user-1")).
		OnlyX(ctx)
	assert.Equal(t, 1, fb.Score)

	comments := ts.client.TurnComment.Query().CountX(ctx)
	assert.Equal(t, 1, comments)

	// A repeat vote overwrites, not duplicates.
	rec = ts.do(t, http.MethodPost, "/api/v1/turns/turn-1/feedback", SubmitFeedbackRequest{Score: -1})
	require.Equal(t, http.StatusNoContent, rec.Code)

	count := ts.client.TurnFeedback.Query().CountX(ctx)
	assert.Equal(t, 1, count)
	fb = ts.client.TurnFeedback.Query().
		Where(turnfeedback.TurnIDEQ("turn-1"), turnfeedback.UserIDEQ("user-1")).
		OnlyX(ctx)
	assert.Equal(t, -1, fb.Score)
}

func TestSubmitFeedbackHandler_Validation(t *testing.T) {
	ts := newTestServer(t)
	seedTurn(t, ts.client.Client, "1", "ws-1", chatturn.StatusCompleted)

	rec := ts.do(t, http.MethodPost, "/api/v1/turns/turn-1/feedback", SubmitFeedbackRequest{Score: 2})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/v1/turns/turn-1/feedback", SubmitFeedbackRequest{
		Score:   1,
		Comment: strings.Repeat("x", 1001),
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Feedback on an in-flight turn is rejected by the service.
	seedTurn(t, ts.client.Client, "2", "ws-1", chatturn.StatusProcessing)
	rec = ts.do(t, http.MethodPost, "/api/v1/turns/turn-2/feedback", SubmitFeedbackRequest{Score: 1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Foreign turn reads as not found.
	seedTurn(t, ts.client.Client, "3", "ws-other", chatturn.StatusCompleted)
	rec = ts.do(t, http.MethodPost, "/api/v1/turns/turn-3/feedback", SubmitFeedbackRequest{Score: 1})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddCommentHandler(t *testing.T) {
	ts := newTestServer(t)
	seedTurn(t, ts.client.Client, "1", "ws-1", chatturn.StatusCompleted)

	rec := ts.do(t, http.MethodPost, "/api/v1/turns/turn-1/comments", AddCommentRequest{
		Body: "the pool size fix worked",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp CommentResponse
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "turn-1", resp.TurnID)
	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, "the pool size fix worked", resp.Body)

	rec = ts.do(t, http.MethodPost, "/api/v1/turns/turn-1/comments", AddCommentRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/v1/turns/turn-1/comments", AddCommentRequest{
		Body: strings.Repeat("x", 1001),
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQuotaStatusHandler(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/v1/quota", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "rca_turns")
}
