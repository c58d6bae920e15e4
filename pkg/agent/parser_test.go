package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponse_ToolCall(t *testing.T) {
	p := ParseResponse(`Thought: The 500s started at 01:58, so recent error logs should show the failing call.
Action: logs.errors.grafana
Action Input: {"service": "checkout", "range": "1h"}`)

	require.True(t, p.HasAction)
	assert.Equal(t, "logs.errors.grafana", p.Action)
	assert.Equal(t, `{"service": "checkout", "range": "1h"}`, p.ActionInput)
	assert.Equal(t, "The 500s started at 01:58, so recent error logs should show the failing call.", p.Thought)
	assert.False(t, p.IsFinalAnswer)
	assert.False(t, p.IsMalformed)
}

func TestParseResponse_FinalAnswer(t *testing.T) {
	p := ParseResponse(`Thought: The evidence is conclusive.
Final Answer: **Root cause**: commit da3c638 switched the verify call from POST to GET.

Next steps:
- revert the method change`)

	require.True(t, p.IsFinalAnswer)
	assert.Contains(t, p.FinalAnswer, "switched the verify call")
	assert.Contains(t, p.FinalAnswer, "revert the method change")
	assert.False(t, p.HasAction)
}

func TestParseResponse_MultilineActionInput(t *testing.T) {
	p := ParseResponse(`Thought: Need the handler source.
Action: code.read.github
Action Input: {
  "repo": "acme/billing",
  "path": "cmd/main.go"
}`)

	require.True(t, p.HasAction)
	assert.Contains(t, p.ActionInput, `"repo": "acme/billing"`)
	assert.Contains(t, p.ActionInput, `"path": "cmd/main.go"`)
}

func TestParseResponse_ActionWinsOverFinalAnswer(t *testing.T) {
	// A real final answer is terminal; a tool call after it means the
	// model was not actually done.
	p := ParseResponse(`Thought: Checking one more thing.
Final Answer: probably the deploy.
Action: code.list_commits.github
Action Input: {"repo": "acme/billing"}`)

	require.True(t, p.HasAction)
	assert.Equal(t, "code.list_commits.github", p.Action)
	assert.False(t, p.IsFinalAnswer)
}

func TestParseResponse_MidlineFinalAnswer(t *testing.T) {
	p := ParseResponse(`Thought: All three pods show the same stack trace. Final Answer: the connection pool is exhausted because the retry loop never releases connections.`)

	require.True(t, p.IsFinalAnswer)
	assert.Equal(t, "the connection pool is exhausted because the retry loop never releases connections.", p.FinalAnswer)
	assert.Equal(t, "All three pods show the same stack trace.", p.Thought)
}

func TestParseResponse_StopsAtHallucinatedObservation(t *testing.T) {
	p := ParseResponse(`Thought: Querying logs.
Action: logs.search.datadog
Action Input: {"service": "checkout"}
Observation: [checkout] connection refused
Thought: That confirms it.
Final Answer: made-up conclusion`)

	require.True(t, p.HasAction)
	assert.Equal(t, "logs.search.datadog", p.Action)
	assert.Equal(t, `{"service": "checkout"}`, p.ActionInput)
	assert.False(t, p.IsFinalAnswer)
}

func TestParseResponse_RecoversMissingActionHeader(t *testing.T) {
	p := ParseResponse(`Thought: Checking metrics.
metrics.latency.grafana
Action Input: {"service": "api-gw"}`)

	require.True(t, p.HasAction)
	assert.Equal(t, "metrics.latency.grafana", p.Action)
}

func TestParseResponse_ActionInputBackticksTrimmed(t *testing.T) {
	p := ParseResponse("Thought: go.\nAction: logs.search.grafana\nAction Input: `{\"service\": \"api-gw\"}`")

	require.True(t, p.HasAction)
	assert.Equal(t, `{"service": "api-gw"}`, p.ActionInput)
}

func TestParseResponse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"thinking only", "Thought: I should look at the logs next."},
		{"no sections", "Let me think about what could cause this."},
		{"action without input", "Thought: querying.\nAction: logs.search.grafana"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParseResponse(tt.text)
			assert.True(t, p.IsMalformed)
			assert.False(t, p.HasAction)
			assert.False(t, p.IsFinalAnswer)
		})
	}
}

func TestParseResponse_BareThoughtHeader(t *testing.T) {
	p := ParseResponse("Thought\nThe pods restarted right after the deploy.\nAction: code.list_commits.github\nAction Input: {}")

	require.True(t, p.HasAction)
	assert.Equal(t, "The pods restarted right after the deploy.", p.Thought)
}

func TestFormatFeedback(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"no sections", "free-form rambling", "did not contain any recognized section"},
		{"action without input", "Thought: x\nAction: logs.search.grafana", "no \"Action Input:\" section"},
		{"thought only", "Thought: I wonder about the cache.", "either call a tool"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParseResponse(tt.text)
			require.True(t, p.IsMalformed)
			feedback := FormatFeedback(p)
			assert.Contains(t, feedback, "FORMAT ERROR")
			assert.Contains(t, feedback, tt.want)
			assert.Contains(t, feedback, "Required format:")
		})
	}
}

func TestForcedAnswer(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"final answer", "Thought: done.\nFinal Answer: the pool is exhausted.", "the pool is exhausted."},
		{"thought fallback", "Thought: most likely the pool, though unconfirmed.", "most likely the pool, though unconfirmed."},
		{"raw text fallback", "  The pool looks exhausted.  ", "The pool looks exhausted."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ForcedAnswer(tt.text))
		})
	}
}
