package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibemonitor/rca/pkg/config"
	"github.com/vibemonitor/rca/pkg/events"
	"github.com/vibemonitor/rca/pkg/llm"
	"github.com/vibemonitor/rca/pkg/providers"
	"github.com/vibemonitor/rca/pkg/tools"
)

// scriptModel replays a fixed sequence of replies and records the message
// history it was handed on each call.
type scriptModel struct {
	replies []string
	errs    []error
	delay   time.Duration
	calls   int
	history [][]llm.Message
}

func (m *scriptModel) Complete(ctx context.Context, messages []llm.Message, opts llm.Options) (string, error) {
	i := m.calls
	m.calls++
	m.history = append(m.history, messages)
	if m.delay > 0 {
		time.Sleep(m.delay)
	}
	if i < len(m.errs) && m.errs[i] != nil {
		return "", m.errs[i]
	}
	if i >= len(m.replies) {
		return "", fmt.Errorf("unexpected model call %d", i+1)
	}
	return m.replies[i], nil
}

func (m *scriptModel) Model() string { return "test-model" }

// lastUserMessage returns the trailing user message of call i.
func (m *scriptModel) lastUserMessage(t *testing.T, i int) string {
	t.Helper()
	require.Greater(t, len(m.history), i)
	msgs := m.history[i]
	require.NotEmpty(t, msgs)
	last := msgs[len(msgs)-1]
	require.Equal(t, llm.RoleUser, last.Role)
	return last.Content
}

type sinkCall struct {
	kind     string
	toolName string
	status   string
	content  string
}

// recordSink captures emitted frames in order.
type recordSink struct {
	calls []sinkCall
	steps int
	err   error
}

func (s *recordSink) AppendStatus(_ context.Context, _, content string) (events.Frame, error) {
	s.calls = append(s.calls, sinkCall{kind: "status", content: content})
	return events.Frame{}, s.err
}

func (s *recordSink) AppendThinking(_ context.Context, _, content string) (events.Frame, error) {
	s.calls = append(s.calls, sinkCall{kind: "thinking", content: content})
	return events.Frame{}, s.err
}

func (s *recordSink) StartToolCall(_ context.Context, _, toolName string) (events.Frame, error) {
	s.steps++
	s.calls = append(s.calls, sinkCall{kind: "tool_start", toolName: toolName})
	return events.Frame{StepID: fmt.Sprintf("step-%d", s.steps)}, s.err
}

func (s *recordSink) FinishToolCall(_ context.Context, _, stepID, status, content string) (events.Frame, error) {
	s.calls = append(s.calls, sinkCall{kind: "tool_end", toolName: stepID, status: status, content: content})
	return events.Frame{}, s.err
}

func (s *recordSink) kinds() []string {
	out := make([]string, len(s.calls))
	for i, c := range s.calls {
		out[i] = c.kind
	}
	return out
}

// stubProvider serves logs.search with a canned observation.
type stubProvider struct {
	out string
	err error
}

func (p *stubProvider) Name() string                         { return "fake" }
func (p *stubProvider) Capabilities() []providers.Capability { return []providers.Capability{providers.CapLogsSearch} }
func (p *stubProvider) Ping(context.Context) error           { return nil }

func (p *stubProvider) Invoke(_ context.Context, _ providers.Capability, _ providers.Args) (string, error) {
	return p.out, p.err
}

func testToolSet(p providers.Provider) *tools.Set {
	return tools.SetFromProviders([]providers.Provider{p}, config.DefaultAgentConfig())
}

func newTestEngine(sink StepSink, mutate ...func(*config.AgentConfig)) *Engine {
	cfg := config.DefaultAgentConfig()
	for _, m := range mutate {
		m(cfg)
	}
	return NewEngine(cfg, sink)
}

const searchReply = "Thought: Checking recent errors.\nAction: logs.search.fake\nAction Input: {\"service\": \"api-gw\"}"

func TestEngine_FinalAnswerWithoutTools(t *testing.T) {
	sink := &recordSink{}
	model := &scriptModel{replies: []string{
		"Thought: The report alone is conclusive.\nFinal Answer: the deploy at 01:58 broke checkout.",
	}}

	answer, err := newTestEngine(sink).Run(context.Background(), Request{
		TurnID:  "turn-1",
		Message: "checkout is failing",
		Model:   model,
		Tools:   testToolSet(&stubProvider{}),
	})

	require.NoError(t, err)
	assert.Equal(t, "the deploy at 01:58 broke checkout.", answer)
	assert.Equal(t, []string{"status", "thinking"}, sink.kinds())
	assert.Equal(t, "Starting analysis", sink.calls[0].content)

	// System prompt carries the tool manifest and format contract.
	system := model.history[0][0]
	require.Equal(t, llm.RoleSystem, system.Role)
	assert.Contains(t, system.Content, "logs.search.fake")
	assert.Contains(t, system.Content, "Action Input:")
}

func TestEngine_ToolCallFeedsObservationBack(t *testing.T) {
	sink := &recordSink{}
	model := &scriptModel{replies: []string{
		searchReply,
		"Thought: The logs confirm it.\nFinal Answer: `api-gw` cannot reach upstream.",
	}}

	answer, err := newTestEngine(sink).Run(context.Background(), Request{
		TurnID:  "turn-1",
		Message: "api-gw is down",
		Model:   model,
		Tools:   testToolSet(&stubProvider{out: "[api-gw] connection refused"}),
	})

	require.NoError(t, err)
	assert.Equal(t, "`api-gw` cannot reach upstream.", answer)
	assert.Equal(t, []string{"status", "thinking", "tool_start", "tool_end", "thinking"}, sink.kinds())
	assert.Equal(t, "logs.search.fake", sink.calls[2].toolName)
	assert.Equal(t, "completed", sink.calls[3].status)
	assert.Equal(t, "[api-gw] connection refused", sink.calls[3].content)
	assert.Equal(t, "Observation: [api-gw] connection refused", model.lastUserMessage(t, 1))
}

func TestEngine_UnknownToolBecomesObservation(t *testing.T) {
	sink := &recordSink{}
	model := &scriptModel{replies: []string{
		"Thought: Trying a tool.\nAction: metrics.cpu.fake\nAction Input: {}",
		"Thought: Fine.\nFinal Answer: no tool needed.",
	}}

	_, err := newTestEngine(sink).Run(context.Background(), Request{
		TurnID: "turn-1", Message: "m", Model: model,
		Tools: testToolSet(&stubProvider{}),
	})

	require.NoError(t, err)
	// No tool frames for a tool that does not exist.
	assert.Equal(t, []string{"status", "thinking", "thinking"}, sink.kinds())
	obs := model.lastUserMessage(t, 1)
	assert.Contains(t, obs, `ERROR: unknown tool "metrics.cpu.fake"`)
	assert.Contains(t, obs, "logs.search.fake")
}

func TestEngine_ToolErrorAbsorbedAsObservation(t *testing.T) {
	sink := &recordSink{}
	model := &scriptModel{replies: []string{
		searchReply,
		"Thought: The backend is unreachable.\nFinal Answer: grafana is down.",
	}}

	_, err := newTestEngine(sink).Run(context.Background(), Request{
		TurnID: "turn-1", Message: "m", Model: model,
		Tools: testToolSet(&stubProvider{err: errors.New("upstream returned status 502")}),
	})

	require.NoError(t, err)
	assert.Equal(t, "failed", sink.calls[3].status)
	assert.Equal(t, "Observation: ERROR: upstream returned status 502", model.lastUserMessage(t, 1))
}

func TestEngine_MalformedGetsFormatFeedback(t *testing.T) {
	sink := &recordSink{}
	model := &scriptModel{replies: []string{
		"Let me ponder this for a while.",
		"Thought: Focused now.\nFinal Answer: done.",
	}}

	answer, err := newTestEngine(sink).Run(context.Background(), Request{
		TurnID: "turn-1", Message: "m", Model: model,
		Tools: testToolSet(&stubProvider{}),
	})

	require.NoError(t, err)
	assert.Equal(t, "done.", answer)
	assert.Contains(t, model.lastUserMessage(t, 1), "FORMAT ERROR")
}

func TestEngine_ThreeMalformedFailsProtocol(t *testing.T) {
	sink := &recordSink{}
	model := &scriptModel{replies: []string{"nonsense", "more nonsense", "still nonsense"}}

	_, err := newTestEngine(sink).Run(context.Background(), Request{
		TurnID: "turn-1", Message: "m", Model: model,
		Tools: testToolSet(&stubProvider{}),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProtocol)
	assert.Equal(t, 3, model.calls)
}

func TestEngine_MalformedCounterResetsOnRecovery(t *testing.T) {
	sink := &recordSink{}
	model := &scriptModel{replies: []string{
		"nonsense", "more nonsense",
		searchReply,
		"nonsense again",
		"Thought: OK.\nFinal Answer: recovered.",
	}}

	answer, err := newTestEngine(sink).Run(context.Background(), Request{
		TurnID: "turn-1", Message: "m", Model: model,
		Tools: testToolSet(&stubProvider{out: "quiet logs"}),
	})

	require.NoError(t, err)
	assert.Equal(t, "recovered.", answer)
}

func TestEngine_ModelErrorPropagates(t *testing.T) {
	sink := &recordSink{}
	boom := errors.New("api key invalid")
	model := &scriptModel{errs: []error{boom}}

	_, err := newTestEngine(sink).Run(context.Background(), Request{
		TurnID: "turn-1", Message: "m", Model: model,
		Tools: testToolSet(&stubProvider{}),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestEngine_MaxStepsForcesConclusion(t *testing.T) {
	sink := &recordSink{}
	model := &scriptModel{replies: []string{
		searchReply,
		searchReply,
		"Thought: Out of budget.\nFinal Answer: best available hypothesis: upstream outage.",
	}}

	answer, err := newTestEngine(sink, func(c *config.AgentConfig) { c.MaxSteps = 2 }).Run(
		context.Background(), Request{
			TurnID: "turn-1", Message: "m", Model: model,
			Tools: testToolSet(&stubProvider{out: "nothing conclusive"}),
		})

	require.NoError(t, err)
	assert.Equal(t, "best available hypothesis: upstream outage.", answer)
	assert.Equal(t, 3, model.calls)
	assert.Contains(t, model.lastUserMessage(t, 2), "budget is exhausted")
	assert.Equal(t, "Investigation budget reached, concluding", sink.calls[len(sink.calls)-1].content)
}

func TestEngine_WallClockForcesConclusion(t *testing.T) {
	sink := &recordSink{}
	model := &scriptModel{
		delay: 20 * time.Millisecond,
		replies: []string{
			searchReply,
			"Final Answer: concluded under deadline pressure.",
		},
	}

	answer, err := newTestEngine(sink, func(c *config.AgentConfig) { c.WallClock = 10 * time.Millisecond }).Run(
		context.Background(), Request{
			TurnID: "turn-1", Message: "m", Model: model,
			Tools: testToolSet(&stubProvider{out: "ok"}),
		})

	require.NoError(t, err)
	assert.Equal(t, "concluded under deadline pressure.", answer)
	assert.Equal(t, 2, model.calls)
}

func TestEngine_ConsecutiveToolFailuresConcludeEarly(t *testing.T) {
	sink := &recordSink{}
	model := &scriptModel{replies: []string{
		searchReply,
		searchReply,
		"Thought: Tools are unusable.\nFinal Answer: the observability stack itself is down.",
	}}

	answer, err := newTestEngine(sink, func(c *config.AgentConfig) { c.MaxConsecutiveFailures = 2 }).Run(
		context.Background(), Request{
			TurnID: "turn-1", Message: "m", Model: model,
			Tools: testToolSet(&stubProvider{err: errors.New("connect: connection refused")}),
		})

	require.NoError(t, err)
	assert.Equal(t, "the observability stack itself is down.", answer)
	var failed int
	for _, c := range sink.calls {
		if c.kind == "tool_end" && c.status == "failed" {
			failed++
		}
	}
	assert.Equal(t, 2, failed)
}

func TestEngine_ForcedConclusionFailureIsDeadline(t *testing.T) {
	sink := &recordSink{}
	model := &scriptModel{
		replies: []string{searchReply},
		errs:    []error{nil, errors.New("rate limited")},
	}

	_, err := newTestEngine(sink, func(c *config.AgentConfig) { c.MaxSteps = 1 }).Run(
		context.Background(), Request{
			TurnID: "turn-1", Message: "m", Model: model,
			Tools: testToolSet(&stubProvider{out: "ok"}),
		})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDeadline)
}

func TestEngine_ParentCancellationIsNotABudget(t *testing.T) {
	sink := &recordSink{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	model := &scriptModel{replies: []string{"Final Answer: never reached."}}

	_, err := newTestEngine(sink).Run(ctx, Request{
		TurnID: "turn-1", Message: "m", Model: model,
		Tools: testToolSet(&stubProvider{}),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, model.calls)
}

func TestEngine_ToolEndFrameIsSummarized(t *testing.T) {
	long := strings.Repeat("log line about the incident. ", 40)
	sink := &recordSink{}
	model := &scriptModel{replies: []string{
		searchReply,
		"Thought: Enough.\nFinal Answer: done.",
	}}

	_, err := newTestEngine(sink).Run(context.Background(), Request{
		TurnID: "turn-1", Message: "m", Model: model,
		Tools: testToolSet(&stubProvider{out: long}),
	})

	require.NoError(t, err)
	frame := sink.calls[3]
	require.Equal(t, "tool_end", frame.kind)
	assert.Equal(t, toolSummaryLimit, utf8.RuneCountInString(frame.content))
	assert.True(t, strings.HasSuffix(frame.content, "…"))
	// The model still sees the full observation.
	assert.Equal(t, "Observation: "+long, model.lastUserMessage(t, 1))
}

func TestEngine_SinkFailureFailsTurn(t *testing.T) {
	sink := &recordSink{err: errors.New("database is gone")}
	model := &scriptModel{replies: []string{"Final Answer: x."}}

	_, err := newTestEngine(sink).Run(context.Background(), Request{
		TurnID: "turn-1", Message: "m", Model: model,
		Tools: testToolSet(&stubProvider{}),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database is gone")
	assert.Zero(t, model.calls)
}
