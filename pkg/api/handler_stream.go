package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/vibemonitor/rca/pkg/events"
)

// keepAliveInterval is how often an idle stream gets an SSE comment so
// intermediaries do not close the connection.
const keepAliveInterval = 10 * time.Second

// streamTurnHandler handles GET /api/v1/turns/:id/stream: a server-sent
// event stream of the turn's frames, one JSON object per data line.
//
// A terminal turn replays its persisted steps followed by the terminal
// frame. An in-flight turn subscribes to the turn's channel BEFORE reading
// persisted steps — frames published in between arrive on the subscription
// and are deduplicated by sequence — then forwards live frames until a
// terminal frame closes the stream.
func (s *Server) streamTurnHandler(c *echo.Context) error {
	turnID := c.Param("id")
	if turnID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "turn id is required")
	}

	ctx := c.Request().Context()
	turn, err := s.turnService.GetTurn(ctx, callerIdentity(c).WorkspaceID, turnID)
	if err != nil {
		return mapServiceError(err)
	}

	w := c.Response()
	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	out := &sseWriter{w: w, rc: http.NewResponseController(w)}

	// Terminal turns are pure replay; no subscription needed.
	if frame, terminal := events.TerminalFrame(turn); terminal {
		if _, err := s.replaySteps(c, out, turnID, 0, nil); err != nil {
			return err
		}
		return out.writeFrame(frame)
	}

	sub, err := s.bus.Subscribe(ctx, events.TurnChannel(turnID))
	if err != nil {
		return out.writeFrame(streamErrorFrame(turnID, "stream unavailable"))
	}
	defer s.bus.Unsubscribe(sub)

	// Sequences replayed as a still-running tool_start: the matching live
	// tool_end reuses the same sequence and must not be deduplicated away.
	openTools := make(map[int]struct{})

	lastSeq, err := s.replaySteps(c, out, turnID, 0, openTools)
	if err != nil {
		return err
	}

	// The turn may have gone terminal between the authorization read and the
	// subscribe; the terminal NOTIFY would then already be missed.
	turn, err = s.turnService.GetTurn(ctx, callerIdentity(c).WorkspaceID, turnID)
	if err != nil {
		return out.writeFrame(streamErrorFrame(turnID, "stream unavailable"))
	}
	if frame, terminal := events.TerminalFrame(turn); terminal {
		if _, err := s.replaySteps(c, out, turnID, lastSeq, nil); err != nil {
			return err
		}
		return out.writeFrame(frame)
	}

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-sub.Done():
			if sub.Overflowed() {
				return out.writeFrame(streamErrorFrame(turnID, "stream backpressure"))
			}
			return nil

		case frame := <-sub.Frames():
			if duplicateFrame(frame, lastSeq, openTools) {
				continue
			}
			if frame.Sequence > lastSeq {
				lastSeq = frame.Sequence
			}
			if frame.Type == events.FrameToolStart {
				openTools[frame.Sequence] = struct{}{}
			}
			if frame.Type == events.FrameToolEnd {
				delete(openTools, frame.Sequence)
			}
			if frame.Truncated {
				frame = s.hydrateFrame(ctx, callerIdentity(c).WorkspaceID, frame)
			}
			if err := out.writeFrame(frame); err != nil {
				return nil
			}
			if frame.Terminal() {
				return nil
			}

		case <-keepAlive.C:
			if err := out.writeKeepAlive(); err != nil {
				return nil
			}
		}
	}
}

// hydrateFrame restores the content a NOTIFY payload dropped to fit the
// pg_notify size limit. Terminal frames re-derive from the turn row, step
// frames from their persisted step. On any fetch failure the truncated
// frame goes out as-is rather than stalling the stream.
func (s *Server) hydrateFrame(ctx context.Context, workspaceID string, frame events.Frame) events.Frame {
	if frame.Terminal() {
		turn, err := s.turnService.GetTurn(ctx, workspaceID, frame.TurnID)
		if err != nil {
			return frame
		}
		if full, terminal := events.TerminalFrame(turn); terminal {
			return full
		}
		return frame
	}

	steps, err := s.turnService.ListSteps(ctx, frame.TurnID, frame.Sequence-1)
	if err != nil {
		return frame
	}
	for _, step := range steps {
		if step.Sequence == frame.Sequence {
			return events.StepFrame(step)
		}
	}
	return frame
}

// duplicateFrame reports whether a live frame was already delivered during
// replay. A tool_end completing a tool that was replayed (or forwarded) as
// running shares its sequence with the tool_start and is never a duplicate.
func duplicateFrame(frame events.Frame, lastSeq int, openTools map[int]struct{}) bool {
	if frame.Sequence == 0 || frame.Sequence > lastSeq {
		return false
	}
	if frame.Type == events.FrameToolEnd {
		_, open := openTools[frame.Sequence]
		return !open
	}
	return true
}

// replaySteps emits the persisted steps of a turn with sequence greater than
// afterSeq and returns the highest sequence sent. When openTools is non-nil,
// sequences of steps replayed as a running tool_start are recorded in it.
func (s *Server) replaySteps(c *echo.Context, out *sseWriter, turnID string, afterSeq int, openTools map[int]struct{}) (int, error) {
	steps, err := s.turnService.ListSteps(c.Request().Context(), turnID, afterSeq)
	if err != nil {
		return afterSeq, out.writeFrame(streamErrorFrame(turnID, "stream unavailable"))
	}

	lastSeq := afterSeq
	for _, step := range steps {
		frame := events.StepFrame(step)
		if err := out.writeFrame(frame); err != nil {
			return lastSeq, err
		}
		if openTools != nil && frame.Type == events.FrameToolStart {
			openTools[step.Sequence] = struct{}{}
		}
		lastSeq = step.Sequence
	}
	return lastSeq, nil
}

func streamErrorFrame(turnID, message string) events.Frame {
	return events.Frame{
		Type:      events.FrameError,
		TurnID:    turnID,
		Content:   message,
		Timestamp: time.Now(),
	}
}

// sseWriter frames payloads per the SSE wire format and flushes each write.
type sseWriter struct {
	w  http.ResponseWriter
	rc *http.ResponseController
}

func (s *sseWriter) writeFrame(frame events.Frame) error {
	payload, err := json.Marshal(frame)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.w, "data: %s\n\n", payload); err != nil {
		return err
	}
	return s.rc.Flush()
}

func (s *sseWriter) writeKeepAlive() error {
	if _, err := fmt.Fprint(s.w, ": keep-alive\n\n"); err != nil {
		return err
	}
	return s.rc.Flush()
}
