// Package api exposes the HTTP surface of the RCA core: chat admission,
// turn streaming, session and turn management, workspace settings
// (integrations, BYO-LLM config) and the health endpoint.
package api

import (
	"context"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/vibemonitor/rca/ent"
	"github.com/vibemonitor/rca/pkg/config"
	"github.com/vibemonitor/rca/pkg/database"
	"github.com/vibemonitor/rca/pkg/events"
	"github.com/vibemonitor/rca/pkg/guard"
	"github.com/vibemonitor/rca/pkg/models"
	"github.com/vibemonitor/rca/pkg/providers"
	"github.com/vibemonitor/rca/pkg/queue"
	"github.com/vibemonitor/rca/pkg/services"
)

// jobEnqueuer is the part of the job service the admission path uses.
type jobEnqueuer interface {
	EnqueueJob(ctx context.Context, req models.EnqueueJobRequest) (*ent.Job, error)
}

// Server holds the handler dependencies and the route table.
type Server struct {
	cfg *config.Config
	db  *database.Client

	sessionService     *services.SessionService
	turnService        *services.TurnService
	jobs               jobEnqueuer
	quotaService       *services.QuotaService
	integrationService *services.IntegrationService
	guard              *guard.Guard
	registry           *providers.Registry

	publisher *events.Publisher
	bus       *events.Bus
	listener  *events.NotifyListener
	pool      *queue.WorkerPool

	authn Authenticator
}

// Deps are the collaborators a Server needs. All fields are required except
// Authn, which defaults to HeaderAuthenticator.
type Deps struct {
	Config *config.Config
	DB     *database.Client

	Sessions     *services.SessionService
	Turns        *services.TurnService
	Jobs         *services.JobService
	Quota        *services.QuotaService
	Integrations *services.IntegrationService
	Guard        *guard.Guard
	Registry     *providers.Registry

	Publisher *events.Publisher
	Bus       *events.Bus
	Listener  *events.NotifyListener
	Pool      *queue.WorkerPool

	Authn Authenticator
}

// NewServer creates an API server.
func NewServer(deps Deps) *Server {
	authn := deps.Authn
	if authn == nil {
		authn = HeaderAuthenticator{}
	}
	return &Server{
		cfg:                deps.Config,
		db:                 deps.DB,
		sessionService:     deps.Sessions,
		turnService:        deps.Turns,
		jobs:               deps.Jobs,
		quotaService:       deps.Quota,
		integrationService: deps.Integrations,
		guard:              deps.Guard,
		registry:           deps.Registry,
		publisher:          deps.Publisher,
		bus:                deps.Bus,
		listener:           deps.Listener,
		pool:               deps.Pool,
		authn:              authn,
	}
}

// Handler builds the route table and returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	e := echo.New()
	e.Use(securityHeaders())
	if s.cfg != nil && len(s.cfg.AllowedOrigins) > 0 {
		e.Use(corsOrigins(s.cfg.AllowedOrigins))
	}

	e.GET("/health", s.healthHandler)

	v1 := e.Group("/api/v1")
	v1.Use(requireIdentity(s.authn))

	v1.POST("/chat", s.sendMessageHandler)

	v1.GET("/sessions", s.listSessionsHandler)
	v1.GET("/sessions/:id", s.getSessionHandler)
	v1.PATCH("/sessions/:id", s.updateSessionHandler)
	v1.DELETE("/sessions/:id", s.deleteSessionHandler)
	v1.GET("/sessions/:id/turns", s.listSessionTurnsHandler)

	v1.GET("/turns/:id", s.getTurnHandler)
	v1.GET("/turns/:id/stream", s.streamTurnHandler)
	v1.POST("/turns/:id/feedback", s.submitFeedbackHandler)
	v1.POST("/turns/:id/comments", s.addCommentHandler)

	v1.GET("/integrations", s.listIntegrationsHandler)
	v1.POST("/integrations", s.createIntegrationHandler)
	v1.GET("/integrations/:id", s.getIntegrationHandler)
	v1.POST("/integrations/:id/health-check", s.checkIntegrationHandler)
	v1.DELETE("/integrations/:id", s.deleteIntegrationHandler)

	v1.GET("/llm-config", s.getLLMConfigHandler)
	v1.PUT("/llm-config", s.upsertLLMConfigHandler)
	v1.DELETE("/llm-config", s.deleteLLMConfigHandler)

	v1.GET("/quota", s.quotaStatusHandler)

	return e
}
