package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/vibemonitor/rca/ent/integration"
	"github.com/vibemonitor/rca/pkg/models"
)

// listIntegrationsHandler handles GET /api/v1/integrations.
func (s *Server) listIntegrationsHandler(c *echo.Context) error {
	id := callerIdentity(c)
	integs, err := s.integrationService.ListIntegrations(c.Request().Context(), id.WorkspaceID)
	if err != nil {
		return mapServiceError(err)
	}
	resp := make([]models.IntegrationResponse, 0, len(integs))
	for _, integ := range integs {
		resp = append(resp, models.IntegrationResponse{Integration: integ})
	}
	return c.JSON(http.StatusOK, resp)
}

// createIntegrationHandler handles POST /api/v1/integrations. Credentials
// arrive in the body, are encrypted at rest, and never serialize back out.
func (s *Server) createIntegrationHandler(c *echo.Context) error {
	id := callerIdentity(c)

	var req models.CreateIntegrationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.WorkspaceID = id.WorkspaceID

	integ, err := s.integrationService.CreateIntegration(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, models.IntegrationResponse{Integration: integ})
}

// getIntegrationHandler handles GET /api/v1/integrations/:id.
func (s *Server) getIntegrationHandler(c *echo.Context) error {
	id := callerIdentity(c)
	integ, err := s.integrationService.GetIntegration(c.Request().Context(), id.WorkspaceID, c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, models.IntegrationResponse{Integration: integ})
}

// checkIntegrationHandler handles POST /api/v1/integrations/:id/health-check:
// an on-demand probe of the integration's backend. The probe result is
// persisted on the integration row either way.
func (s *Server) checkIntegrationHandler(c *echo.Context) error {
	ctx := c.Request().Context()
	id := callerIdentity(c)

	integ, err := s.integrationService.GetIntegration(ctx, id.WorkspaceID, c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}

	status := integration.HealthStatusHealthy
	if err := s.registry.CheckHealth(ctx, integ); err != nil {
		status = integration.HealthStatusUnhealthy
	}
	return c.JSON(http.StatusOK, map[string]string{
		"integration_id": integ.ID,
		"health_status":  string(status),
	})
}

// deleteIntegrationHandler handles DELETE /api/v1/integrations/:id.
func (s *Server) deleteIntegrationHandler(c *echo.Context) error {
	id := callerIdentity(c)
	if err := s.integrationService.DeleteIntegration(c.Request().Context(), id.WorkspaceID, c.Param("id")); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// getLLMConfigHandler handles GET /api/v1/llm-config.
func (s *Server) getLLMConfigHandler(c *echo.Context) error {
	id := callerIdentity(c)
	cfg, err := s.integrationService.GetLLMConfig(c.Request().Context(), id.WorkspaceID)
	if err != nil {
		return mapServiceError(err)
	}
	if cfg == nil {
		return echo.NewHTTPError(http.StatusNotFound, "no llm config for workspace")
	}
	return c.JSON(http.StatusOK, models.LLMConfigResponse{LLMConfig: cfg})
}

// upsertLLMConfigHandler handles PUT /api/v1/llm-config: bring-your-own
// model settings for the workspace. The API key is write-only.
func (s *Server) upsertLLMConfigHandler(c *echo.Context) error {
	id := callerIdentity(c)

	var req models.UpsertLLMConfigRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.WorkspaceID = id.WorkspaceID

	cfg, err := s.integrationService.UpsertLLMConfig(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, models.LLMConfigResponse{LLMConfig: cfg})
}

// deleteLLMConfigHandler handles DELETE /api/v1/llm-config. The workspace
// falls back to the platform model on its next turn.
func (s *Server) deleteLLMConfigHandler(c *echo.Context) error {
	id := callerIdentity(c)
	if err := s.integrationService.DeleteLLMConfig(c.Request().Context(), id.WorkspaceID); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
