package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibemonitor/rca/ent/chatturn"
	"github.com/vibemonitor/rca/pkg/events"
)

// syncRecorder is a goroutine-safe ResponseWriter for handlers that keep
// writing while the test inspects the body.
type syncRecorder struct {
	mu     sync.Mutex
	header http.Header
	body   strings.Builder
	status int
}

func newSyncRecorder() *syncRecorder {
	return &syncRecorder{header: make(http.Header)}
}

func (r *syncRecorder) Header() http.Header { return r.header }

func (r *syncRecorder) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.body.Write(p)
}

func (r *syncRecorder) WriteHeader(code int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = code
}

func (r *syncRecorder) Flush() {}

func (r *syncRecorder) Body() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.body.String()
}

// parseFrames decodes every "data:" line of an SSE body.
func parseFrames(t *testing.T, body string) []events.Frame {
	t.Helper()
	var frames []events.Frame
	for _, line := range strings.Split(body, "\n") {
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		var frame events.Frame
		require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &frame))
		frames = append(frames, frame)
	}
	return frames
}

// streamRequest runs the stream endpoint in a goroutine and returns the
// recorder, a cancel for the client connection, and a done channel.
func streamRequest(ts *testServer, turnID string) (*syncRecorder, context.CancelFunc, chan struct{}) {
	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/turns/"+turnID+"/stream", nil).WithContext(ctx)
	req.Header.Set("X-Workspace-ID", "ws-1")
	req.Header.Set("X-Forwarded-User", "user-1")

	rec := newSyncRecorder()
	done := make(chan struct{})
	handler := ts.Handler()
	go func() {
		defer close(done)
		handler.ServeHTTP(rec, req)
	}()
	return rec, cancel, done
}

// waitFor polls until the recorder body contains the marker.
func waitFor(t *testing.T, rec *syncRecorder, marker string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(rec.Body(), marker) {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %q in stream body:\n%s", marker, rec.Body())
}

func waitDone(t *testing.T, done chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("stream handler did not finish")
	}
}

func dispatchFrame(t *testing.T, ts *testServer, frame events.Frame) {
	t.Helper()
	payload, err := json.Marshal(frame)
	require.NoError(t, err)
	ts.bus.Dispatch(events.TurnChannel(frame.TurnID), payload)
}

func TestStreamTurn_TerminalReplay(t *testing.T) {
	ts := newTestServer(t)
	seedTurn(t, ts.client.Client, "1", "ws-1", chatturn.StatusProcessing)

	ctx := context.Background()
	_, err := ts.publisher.AppendStatus(ctx, "turn-1", "Starting analysis")
	require.NoError(t, err)
	_, err = ts.publisher.AppendThinking(ctx, "turn-1", "The latency began with the deploy.")
	require.NoError(t, err)
	require.NoError(t, ts.turnService.CompleteTurn(ctx, "turn-1", "The deploy at 14:02 is the root cause."))

	rec := ts.do(t, http.MethodGet, "/api/v1/turns/turn-1/stream", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	frames := parseFrames(t, rec.Body.String())
	require.Len(t, frames, 3)
	assert.Equal(t, events.FrameStatus, frames[0].Type)
	assert.Equal(t, 1, frames[0].Sequence)
	assert.Equal(t, events.FrameThinking, frames[1].Type)
	assert.Equal(t, 2, frames[1].Sequence)
	assert.Equal(t, events.FrameComplete, frames[2].Type)
	assert.Equal(t, "The deploy at 14:02 is the root cause.", frames[2].Content)
}

func TestStreamTurn_ReconnectReplaysEverything(t *testing.T) {
	ts := newTestServer(t)
	seedTurn(t, ts.client.Client, "1", "ws-1", chatturn.StatusProcessing)

	ctx := context.Background()
	_, err := ts.publisher.AppendStatus(ctx, "turn-1", "Starting analysis")
	require.NoError(t, err)
	require.NoError(t, ts.turnService.CompleteTurn(ctx, "turn-1", "answer"))

	// Two reads of a terminal turn both see the full history and exactly
	// one terminal frame.
	for range 2 {
		rec := ts.do(t, http.MethodGet, "/api/v1/turns/turn-1/stream", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		frames := parseFrames(t, rec.Body.String())
		require.Len(t, frames, 2)
		assert.Equal(t, events.FrameStatus, frames[0].Type)
		assert.Equal(t, events.FrameComplete, frames[1].Type)
	}
}

func TestStreamTurn_LiveFramesAfterReplay(t *testing.T) {
	ts := newTestServer(t)
	seedTurn(t, ts.client.Client, "1", "ws-1", chatturn.StatusProcessing)

	_, err := ts.publisher.AppendStatus(context.Background(), "turn-1", "Starting analysis")
	require.NoError(t, err)

	rec, cancel, done := streamRequest(ts, "turn-1")
	defer cancel()
	waitFor(t, rec, "Starting analysis")

	// A duplicate of the replayed step must be filtered out.
	dispatchFrame(t, ts, events.Frame{
		Type: events.FrameStatus, TurnID: "turn-1", Sequence: 1,
		Content: "Starting analysis", Timestamp: time.Now(),
	})
	dispatchFrame(t, ts, events.Frame{
		Type: events.FrameThinking, TurnID: "turn-1", Sequence: 2,
		Content: "The connection pool is exhausted.", Timestamp: time.Now(),
	})
	dispatchFrame(t, ts, events.Frame{
		Type: events.FrameComplete, TurnID: "turn-1",
		Content: "Raise the pool size.", Timestamp: time.Now(),
	})
	waitDone(t, done)

	frames := parseFrames(t, rec.Body())
	require.Len(t, frames, 3)
	assert.Equal(t, events.FrameStatus, frames[0].Type)
	assert.Equal(t, events.FrameThinking, frames[1].Type)
	assert.Equal(t, events.FrameComplete, frames[2].Type)
}

func TestStreamTurn_ToolEndSharesSequenceWithReplayedStart(t *testing.T) {
	ts := newTestServer(t)
	seedTurn(t, ts.client.Client, "1", "ws-1", chatturn.StatusProcessing)

	// A still-running tool call replays as tool_start under sequence 1.
	start, err := ts.publisher.StartToolCall(context.Background(), "turn-1", "logs.search.grafana")
	require.NoError(t, err)

	rec, cancel, done := streamRequest(ts, "turn-1")
	defer cancel()
	waitFor(t, rec, "logs.search.grafana")

	// The completing tool_end reuses the start's sequence and must pass
	// the duplicate filter.
	dispatchFrame(t, ts, events.Frame{
		Type: events.FrameToolEnd, TurnID: "turn-1", Sequence: start.Sequence,
		StepID: start.StepID, ToolName: "logs.search.grafana",
		Status: "completed", Content: "3 matching entries", Timestamp: time.Now(),
	})
	dispatchFrame(t, ts, events.Frame{
		Type: events.FrameComplete, TurnID: "turn-1",
		Content: "done", Timestamp: time.Now(),
	})
	waitDone(t, done)

	frames := parseFrames(t, rec.Body())
	require.Len(t, frames, 3)
	assert.Equal(t, events.FrameToolStart, frames[0].Type)
	assert.Equal(t, events.FrameToolEnd, frames[1].Type)
	assert.Equal(t, frames[0].Sequence, frames[1].Sequence)
	assert.Equal(t, events.FrameComplete, frames[2].Type)
}

func TestStreamTurn_TruncatedFramesAreRehydrated(t *testing.T) {
	ts := newTestServer(t)
	seedTurn(t, ts.client.Client, "1", "ws-1", chatturn.StatusProcessing)

	ctx := context.Background()
	_, err := ts.publisher.AppendStatus(ctx, "turn-1", "Starting analysis")
	require.NoError(t, err)

	rec, cancel, done := streamRequest(ts, "turn-1")
	defer cancel()
	waitFor(t, rec, "Starting analysis")

	// An oversized thought loses its content in the NOTIFY payload; the
	// stream must refill it from the persisted step.
	thought := strings.Repeat("pool exhaustion cascades. ", 400) + "THOUGHT-TAIL"
	_, err = ts.publisher.AppendThinking(ctx, "turn-1", thought)
	require.NoError(t, err)
	dispatchFrame(t, ts, events.Frame{
		Type: events.FrameThinking, TurnID: "turn-1", Sequence: 2,
		Truncated: true, Timestamp: time.Now(),
	})
	waitFor(t, rec, "THOUGHT-TAIL")

	// Same for a final answer over the payload limit: the complete frame
	// re-derives from the turn row.
	answer := strings.Repeat("raise the connection pool ceiling. ", 300) + "ANSWER-TAIL"
	require.NoError(t, ts.turnService.CompleteTurn(ctx, "turn-1", answer))
	dispatchFrame(t, ts, events.Frame{
		Type: events.FrameComplete, TurnID: "turn-1",
		Truncated: true, Timestamp: time.Now(),
	})
	waitDone(t, done)

	frames := parseFrames(t, rec.Body())
	require.NotEmpty(t, frames)
	last := frames[len(frames)-1]
	assert.Equal(t, events.FrameComplete, last.Type)
	assert.Contains(t, last.Content, "ANSWER-TAIL")
	assert.False(t, last.Truncated)
}

func TestStreamTurn_ClientDisconnect(t *testing.T) {
	ts := newTestServer(t)
	seedTurn(t, ts.client.Client, "1", "ws-1", chatturn.StatusProcessing)

	_, err := ts.publisher.AppendStatus(context.Background(), "turn-1", "Starting analysis")
	require.NoError(t, err)

	rec, cancel, done := streamRequest(ts, "turn-1")
	waitFor(t, rec, "Starting analysis")

	cancel()
	waitDone(t, done)
}

func TestStreamTurn_ForeignTurnIsNotFound(t *testing.T) {
	ts := newTestServer(t)
	seedTurn(t, ts.client.Client, "1", "ws-other", chatturn.StatusCompleted)

	rec := ts.do(t, http.MethodGet, "/api/v1/turns/turn-1/stream", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
