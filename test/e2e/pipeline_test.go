package e2e

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibemonitor/rca/ent/chatturn"
	"github.com/vibemonitor/rca/ent/job"
	"github.com/vibemonitor/rca/ent/turnstep"
	"github.com/vibemonitor/rca/pkg/api"
	"github.com/vibemonitor/rca/pkg/events"
)

// TestPipeline_DirectAnswer drives a message through the whole stack: HTTP
// admission, queue claim, agent loop against the scripted model, and
// persistence of the final answer.
func TestPipeline_DirectAnswer(t *testing.T) {
	h := newHarness(t)
	h.llm.script(
		llmReply{content: "Thought: no tools are connected, answer directly.\nFinal Answer: The checkout service is healthy."},
	)

	resp := h.sendMessage("is checkout healthy?")
	require.NotEmpty(t, resp.TurnID)
	require.NotEmpty(t, resp.SessionID)

	h.waitTurn(resp.TurnID, chatturn.StatusCompleted)

	rec := h.do(http.MethodGet, "/api/v1/turns/"+resp.TurnID, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var detail api.TurnDetailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	require.NotNil(t, detail.Turn.FinalResponse)
	assert.Equal(t, "The checkout service is healthy.", *detail.Turn.FinalResponse)
	require.NotEmpty(t, detail.Steps)
	assert.Equal(t, turnstep.StepTypeStatus, detail.Steps[0].StepType)

	// The worker that ran the turn must have settled its job.
	j, err := h.client.Job.Query().Where(job.TurnIDEQ(resp.TurnID)).Only(context.Background())
	require.NoError(t, err)
	assert.Equal(t, job.StatusCompleted, j.Status)

	assert.Equal(t, 1, h.llm.callCount())
}

// TestPipeline_ToolLoop connects a Grafana integration backed by a Loki
// stub and scripts the model through one tool call. The observation must
// reach the model's next prompt with credential material already masked,
// and the tool call must be persisted as a step.
func TestPipeline_ToolLoop(t *testing.T) {
	loki := lokiStub(t,
		`level=error msg="upstream timeout after 30s" api_key="sk_live_abcdef1234567890abcdef"`,
		`level=error msg="retry exhausted for payment-gateway"`,
	)

	h := newHarness(t)
	h.connectGrafana(loki.URL)
	h.llm.script(
		llmReply{content: "Thought: search checkout logs for timeouts.\n" +
			"Action: logs.search.grafana\n" +
			`Action Input: {"service": "checkout", "search_term": "timeout"}`},
		llmReply{content: "Thought: the logs show upstream timeouts.\nFinal Answer: Checkout is timing out on its payment gateway upstream."},
	)

	resp := h.sendMessage("why is checkout failing?")
	h.waitTurn(resp.TurnID, chatturn.StatusCompleted)

	rec := h.do(http.MethodGet, "/api/v1/turns/"+resp.TurnID, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var detail api.TurnDetailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	require.NotNil(t, detail.Turn.FinalResponse)
	assert.Contains(t, *detail.Turn.FinalResponse, "payment gateway")

	var toolStep *struct {
		ToolName string
		Content  string
	}
	for _, step := range detail.Steps {
		if step.StepType == turnstep.StepTypeToolCall && step.StepStatus == turnstep.StepStatusCompleted {
			var toolName, content string
			if step.ToolName != nil {
				toolName = *step.ToolName
			}
			if step.Content != nil {
				content = *step.Content
			}
			toolStep = &struct {
				ToolName string
				Content  string
			}{ToolName: toolName, Content: content}
		}
	}
	require.NotNil(t, toolStep, "no completed tool_call step persisted")
	assert.Equal(t, "logs.search.grafana", toolStep.ToolName)
	assert.Contains(t, toolStep.Content, "upstream timeout")

	// The observation fed back to the model carries the log text with the
	// API key scrubbed at the tool boundary.
	require.Equal(t, 2, h.llm.callCount())
	obs := h.llm.lastPrompt()
	assert.Contains(t, obs, "upstream timeout after 30s")
	assert.Contains(t, obs, "__MASKED_API_KEY__")
	assert.NotContains(t, obs, "sk_live_abcdef1234567890abcdef")
	assert.NotContains(t, toolStep.Content, "sk_live_abcdef1234567890abcdef")
}

// TestPipeline_StreamReplay opens the SSE stream after the turn is terminal
// and checks the replay ends with a complete frame carrying the answer.
func TestPipeline_StreamReplay(t *testing.T) {
	h := newHarness(t)
	h.llm.script(
		llmReply{content: "Thought: trivial.\nFinal Answer: All quiet."},
	)

	resp := h.sendMessage("anything on fire?")
	h.waitTurn(resp.TurnID, chatturn.StatusCompleted)

	rec := h.do(http.MethodGet, "/api/v1/turns/"+resp.TurnID+"/stream", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	var frames []events.Frame
	scanner := bufio.NewScanner(rec.Body)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		var f events.Frame
		require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &f))
		frames = append(frames, f)
	}
	require.NoError(t, scanner.Err())

	require.NotEmpty(t, frames)
	assert.Equal(t, events.FrameStatus, frames[0].Type)
	last := frames[len(frames)-1]
	assert.Equal(t, events.FrameComplete, last.Type)
	assert.Equal(t, "All quiet.", last.Content)
	for _, f := range frames {
		assert.Equal(t, resp.TurnID, f.TurnID)
	}
}

// TestPipeline_RetriesTransientModelErrors scripts a 500 from the model
// endpoint before a good reply; the gateway's retry should absorb it
// without failing the turn.
func TestPipeline_RetriesTransientModelErrors(t *testing.T) {
	h := newHarness(t)
	h.llm.script(
		llmReply{status: http.StatusInternalServerError},
		llmReply{content: "Thought: recovered.\nFinal Answer: Transient blip, nothing to see."},
	)

	resp := h.sendMessage("status check")
	h.waitTurn(resp.TurnID, chatturn.StatusCompleted)

	turn, err := h.client.ChatTurn.Get(context.Background(), resp.TurnID)
	require.NoError(t, err)
	require.NotNil(t, turn.FinalResponse)
	assert.Contains(t, *turn.FinalResponse, "Transient blip")
	assert.Equal(t, 2, h.llm.callCount())
}
