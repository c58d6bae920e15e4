package api

import (
	"net/http"
	"unicode/utf8"

	echo "github.com/labstack/echo/v5"

	"github.com/vibemonitor/rca/pkg/models"
)

// maxCommentLen caps feedback comments and standalone turn comments, in runes.
const maxCommentLen = 1000

// getTurnHandler handles GET /api/v1/turns/:id.
func (s *Server) getTurnHandler(c *echo.Context) error {
	turnID := c.Param("id")
	if turnID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "turn id is required")
	}

	ctx := c.Request().Context()
	turn, err := s.turnService.GetTurn(ctx, callerIdentity(c).WorkspaceID, turnID)
	if err != nil {
		return mapServiceError(err)
	}

	steps, err := s.turnService.ListSteps(ctx, turnID, 0)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &TurnDetailResponse{Turn: turn, Steps: steps})
}

// submitFeedbackHandler handles POST /api/v1/turns/:id/feedback.
func (s *Server) submitFeedbackHandler(c *echo.Context) error {
	turnID := c.Param("id")
	if turnID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "turn id is required")
	}

	var req SubmitFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Score != 1 && req.Score != -1 {
		return echo.NewHTTPError(http.StatusBadRequest, "score must be +1 or -1")
	}
	if utf8.RuneCountInString(req.Comment) > maxCommentLen {
		return echo.NewHTTPError(http.StatusBadRequest, "comment exceeds maximum length of 1,000 characters")
	}

	ctx := c.Request().Context()
	id := callerIdentity(c)

	// Scope check: a foreign turn reads as not found.
	if _, err := s.turnService.GetTurn(ctx, id.WorkspaceID, turnID); err != nil {
		return mapServiceError(err)
	}

	if err := s.turnService.SetFeedback(ctx, models.FeedbackRequest{
		TurnID: turnID,
		UserID: id.UserID,
		Score:  req.Score,
	}); err != nil {
		return mapServiceError(err)
	}

	if req.Comment != "" {
		if _, err := s.turnService.AddComment(ctx, models.CommentRequest{
			TurnID: turnID,
			UserID: id.UserID,
			Body:   req.Comment,
		}); err != nil {
			return mapServiceError(err)
		}
	}

	return c.NoContent(http.StatusNoContent)
}

// addCommentHandler handles POST /api/v1/turns/:id/comments.
func (s *Server) addCommentHandler(c *echo.Context) error {
	turnID := c.Param("id")
	if turnID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "turn id is required")
	}

	var req AddCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Body == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "body is required")
	}
	if utf8.RuneCountInString(req.Body) > maxCommentLen {
		return echo.NewHTTPError(http.StatusBadRequest, "body exceeds maximum length of 1,000 characters")
	}

	ctx := c.Request().Context()
	id := callerIdentity(c)

	if _, err := s.turnService.GetTurn(ctx, id.WorkspaceID, turnID); err != nil {
		return mapServiceError(err)
	}

	comment, err := s.turnService.AddComment(ctx, models.CommentRequest{
		TurnID: turnID,
		UserID: id.UserID,
		Body:   req.Body,
	})
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, &CommentResponse{
		ID:        comment.ID,
		TurnID:    comment.TurnID,
		UserID:    comment.UserID,
		Body:      comment.Body,
		CreatedAt: comment.CreatedAt,
	})
}

// quotaStatusHandler handles GET /api/v1/quota.
func (s *Server) quotaStatusHandler(c *echo.Context) error {
	status, err := s.quotaService.Status(c.Request().Context(), callerIdentity(c).WorkspaceID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, status)
}
