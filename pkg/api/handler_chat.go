package api

import (
	"errors"
	"log/slog"
	"net/http"
	"unicode/utf8"

	echo "github.com/labstack/echo/v5"

	"github.com/vibemonitor/rca/ent/job"
	"github.com/vibemonitor/rca/pkg/models"
	"github.com/vibemonitor/rca/pkg/services"
)

// maxMessageLen is the admission cap on a chat message, in runes.
const maxMessageLen = 10_000

// sendMessageHandler handles POST /api/v1/chat: the admission path.
// Screens the message, charges quota, creates the turn, and enqueues the
// investigation job. The answer arrives on the turn's stream.
func (s *Server) sendMessageHandler(c *echo.Context) error {
	ctx := c.Request().Context()
	id := callerIdentity(c)

	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Message == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message is required")
	}
	if utf8.RuneCountInString(req.Message) > maxMessageLen {
		return echo.NewHTTPError(http.StatusBadRequest, "message exceeds maximum length of 10,000 characters")
	}

	// Prompt guard. A degraded guard admits (fail-open, recorded as a
	// security event inside the guard); only a block verdict rejects.
	decision := s.guard.Screen(ctx, id.WorkspaceID, id.UserID, req.Message)
	if decision.Blocked {
		return mapServiceError(services.ErrMessageBlocked)
	}

	// Queue backpressure. Rejecting here keeps an over-deep backlog from
	// growing and does not charge the caller's quota.
	if s.pool != nil && s.cfg.Queue.MaxQueueDepth > 0 {
		depth, err := s.pool.QueueDepth(ctx)
		if err != nil {
			return mapServiceError(err)
		}
		if depth >= s.cfg.Queue.MaxQueueDepth {
			return c.JSON(http.StatusTooManyRequests, &QuotaExceededResponse{
				Error:  "quota_exceeded",
				Reason: "capacity",
			})
		}
	}

	// Quota gate. Rejections carry the limit and the window reset time;
	// anything other than an exhausted window surfaces as its own error.
	if err := s.quotaService.ConsumeTurn(ctx, id.WorkspaceID); err != nil {
		if !errors.Is(err, services.ErrQuotaExceeded) {
			return mapServiceError(err)
		}
		if status, statusErr := s.quotaService.Status(ctx, id.WorkspaceID); statusErr == nil {
			resetAt := status.ResetAt
			return c.JSON(http.StatusTooManyRequests, &QuotaExceededResponse{
				Error:   "quota_exceeded",
				Limit:   status.Limit,
				ResetAt: &resetAt,
			})
		}
		return mapServiceError(err)
	}

	// Resolve or create the session.
	sessionID := req.SessionID
	if sessionID != "" {
		if _, err := s.sessionService.GetSession(ctx, id.WorkspaceID, sessionID); err != nil {
			return mapServiceError(err)
		}
	} else {
		session, err := s.sessionService.CreateSession(ctx, models.CreateSessionRequest{
			WorkspaceID: id.WorkspaceID,
			UserID:      id.UserID,
		})
		if err != nil {
			return mapServiceError(err)
		}
		sessionID = session.ID
	}

	turn, err := s.turnService.CreateTurn(ctx, models.CreateTurnRequest{
		SessionID:   sessionID,
		UserMessage: req.Message,
		UserID:      id.UserID,
	})
	if err != nil {
		return mapServiceError(err)
	}

	// First visible step: subscribers connecting before a worker claims the
	// turn still see that it was admitted.
	if _, err := s.publisher.AppendStatus(ctx, turn.ID, "Queued"); err != nil {
		return s.failAdmission(c, turn.ID, "failed to record turn admission", err)
	}

	priority := 0
	if s.cfg.Defaults != nil {
		priority = s.cfg.Defaults.WebPriority
	}
	jobReq := models.EnqueueJobRequest{
		WorkspaceID: id.WorkspaceID,
		TurnID:      turn.ID,
		Source:      job.SourceWeb,
		Priority:    priority,
		RequestedContext: map[string]any{
			"query": req.Message,
			"user":  id.UserID,
		},
	}
	_, err = s.jobs.EnqueueJob(ctx, jobReq)
	if err != nil {
		// One immediate retry absorbs a transient queue hiccup; a second
		// failure fails the turn.
		slog.Warn("Enqueue failed, retrying admission once",
			"turn_id", turn.ID, "error", err)
		_, err = s.jobs.EnqueueJob(ctx, jobReq)
	}
	if err != nil {
		return s.failAdmission(c, turn.ID, "investigation queue is unavailable", err)
	}

	// Title from the first message; a concurrent writer winning is fine.
	if err := s.sessionService.EnsureTitle(ctx, sessionID, req.Message); err != nil {
		slog.Warn("Failed to set session title", "session_id", sessionID, "error", err)
	}

	return c.JSON(http.StatusAccepted, &SendMessageResponse{
		TurnID:    turn.ID,
		SessionID: sessionID,
	})
}

// failAdmission marks a freshly created turn failed after a post-creation
// admission step broke, and surfaces a transport failure to the caller.
func (s *Server) failAdmission(c *echo.Context, turnID, userMessage string, cause error) error {
	slog.Error("Chat admission failed after turn creation",
		"turn_id", turnID, "error", cause)
	if err := s.turnService.FailTurn(c.Request().Context(), turnID, userMessage); err != nil {
		slog.Error("Failed to mark turn failed", "turn_id", turnID, "error", err)
	}
	return echo.NewHTTPError(http.StatusServiceUnavailable, userMessage)
}
