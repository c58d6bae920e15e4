package events

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vibemonitor/rca/ent"
	"github.com/vibemonitor/rca/ent/turnstep"
	"github.com/vibemonitor/rca/pkg/database"
	testdb "github.com/vibemonitor/rca/test/database"
)

// seedTurn creates a session with one pending turn and returns the turn ID.
func seedTurn(t *testing.T, client *database.Client) string {
	t.Helper()
	sessionID := uuid.New().String()
	_, err := client.ChatSession.Create().
		SetID(sessionID).
		SetWorkspaceID(uuid.New().String()).
		Save(t.Context())
	require.NoError(t, err)

	turnID := uuid.New().String()
	_, err = client.ChatTurn.Create().
		SetID(turnID).
		SetSessionID(sessionID).
		SetUserMessage("why is svc api-gw slow?").
		Save(t.Context())
	require.NoError(t, err)
	return turnID
}

func TestPublisher_AppendStatus_AssignsSequence(t *testing.T) {
	client := testdb.NewTestClient(t)
	pub := NewPublisher(client.DB())
	turnID := seedTurn(t, client)

	f1, err := pub.AppendStatus(t.Context(), turnID, "Accepted")
	require.NoError(t, err)
	f2, err := pub.AppendStatus(t.Context(), turnID, "Starting analysis")
	require.NoError(t, err)

	assert.Equal(t, FrameStatus, f1.Type)
	assert.Equal(t, 1, f1.Sequence)
	assert.Equal(t, 2, f2.Sequence)
	assert.NotEmpty(t, f1.StepID)
	assert.Equal(t, "Accepted", f1.Content)

	steps, err := client.TurnStep.Query().
		Where(turnstep.TurnIDEQ(turnID)).
		Order(ent.Asc(turnstep.FieldSequence)).
		All(t.Context())
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, turnstep.StepTypeStatus, steps[0].StepType)
	assert.Equal(t, turnstep.StepStatusCompleted, steps[0].StepStatus)
	assert.Equal(t, "Starting analysis", *steps[1].Content)
}

func TestPublisher_ToolCallLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	pub := NewPublisher(client.DB())
	turnID := seedTurn(t, client)

	start, err := pub.StartToolCall(t.Context(), turnID, "logs.errors.grafana")
	require.NoError(t, err)
	assert.Equal(t, FrameToolStart, start.Type)
	assert.Equal(t, "logs.errors.grafana", start.ToolName)
	assert.Equal(t, 1, start.Sequence)
	assert.Empty(t, start.Content)

	step, err := client.TurnStep.Get(t.Context(), start.StepID)
	require.NoError(t, err)
	assert.Equal(t, turnstep.StepStatusRunning, step.StepStatus)
	assert.Equal(t, "logs.errors.grafana", *step.ToolName)

	end, err := pub.FinishToolCall(t.Context(), turnID, start.StepID, "completed", "found 12 errors")
	require.NoError(t, err)
	assert.Equal(t, FrameToolEnd, end.Type)
	assert.Equal(t, start.Sequence, end.Sequence)
	assert.Equal(t, "logs.errors.grafana", end.ToolName)
	assert.Equal(t, "completed", end.Status)

	step, err = client.TurnStep.Get(t.Context(), start.StepID)
	require.NoError(t, err)
	assert.Equal(t, turnstep.StepStatusCompleted, step.StepStatus)
	assert.Equal(t, "found 12 errors", *step.Content)
}

func TestPublisher_ThinkingInterleavesWithToolCalls(t *testing.T) {
	client := testdb.NewTestClient(t)
	pub := NewPublisher(client.DB())
	turnID := seedTurn(t, client)

	_, err := pub.AppendStatus(t.Context(), turnID, "Starting analysis")
	require.NoError(t, err)
	think, err := pub.AppendThinking(t.Context(), turnID, "check error logs first")
	require.NoError(t, err)
	start, err := pub.StartToolCall(t.Context(), turnID, "logs.search.grafana")
	require.NoError(t, err)

	assert.Equal(t, 2, think.Sequence)
	assert.Equal(t, 3, start.Sequence)
}

func TestPublisher_FinishToolCall_Validation(t *testing.T) {
	client := testdb.NewTestClient(t)
	pub := NewPublisher(client.DB())
	turnID := seedTurn(t, client)

	_, err := pub.FinishToolCall(t.Context(), turnID, uuid.New().String(), "completed", "x")
	assert.ErrorContains(t, err, "not found")

	start, err := pub.StartToolCall(t.Context(), turnID, "logs.errors.datadog")
	require.NoError(t, err)
	_, err = pub.FinishToolCall(t.Context(), turnID, start.StepID, "running", "x")
	assert.ErrorContains(t, err, "invalid tool call outcome")
}

func TestPublisher_AppendStep_UnknownTurn(t *testing.T) {
	client := testdb.NewTestClient(t)
	pub := NewPublisher(client.DB())

	_, err := pub.AppendStatus(t.Context(), uuid.New().String(), "hello")
	assert.ErrorContains(t, err, "not found")
}

func TestMarshalForNotify_DropsOversizedContent(t *testing.T) {
	big := make([]byte, notifyLimit+200)
	for i := range big {
		big[i] = 'a'
	}

	payload, err := marshalForNotify(Frame{
		Type:     FrameComplete,
		TurnID:   "turn-1",
		Sequence: 0,
		Content:  string(big),
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, len(payload), notifyLimit)
	assert.Contains(t, payload, `"truncated":true`)
	assert.NotContains(t, payload, "aaaa")
}
