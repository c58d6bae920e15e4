// Package e2e exercises the whole pipeline against a real PostgreSQL
// schema: a chat request admitted through the HTTP API, claimed from the
// job queue by a worker, driven through the investigation loop against a
// scripted OpenAI-compatible endpoint, and observed back through the turn
// and stream endpoints.
package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vibemonitor/rca/ent/chatturn"
	"github.com/vibemonitor/rca/ent/integration"
	"github.com/vibemonitor/rca/pkg/agent"
	"github.com/vibemonitor/rca/pkg/api"
	"github.com/vibemonitor/rca/pkg/config"
	"github.com/vibemonitor/rca/pkg/database"
	"github.com/vibemonitor/rca/pkg/events"
	"github.com/vibemonitor/rca/pkg/guard"
	"github.com/vibemonitor/rca/pkg/llm"
	"github.com/vibemonitor/rca/pkg/models"
	"github.com/vibemonitor/rca/pkg/providers"
	"github.com/vibemonitor/rca/pkg/providers/credentials"
	"github.com/vibemonitor/rca/pkg/queue"
	"github.com/vibemonitor/rca/pkg/services"
	"github.com/vibemonitor/rca/pkg/tools"
	testdb "github.com/vibemonitor/rca/test/database"
)

const (
	testWorkspace = "ws-e2e"
	testUser      = "user-e2e"
)

// llmReply is one scripted completion: either a body or an HTTP error.
type llmReply struct {
	content string
	status  int // non-zero means respond with this error status instead
}

// llmStub serves an OpenAI-compatible /chat/completions endpoint from a
// script, in call order. Calls past the end of the script get a 500, which
// surfaces as a turn failure rather than a hang.
type llmStub struct {
	mu      sync.Mutex
	replies []llmReply
	calls   int
	// prompts records the last user-role content of each request, for
	// asserting that observations flowed back into the conversation.
	prompts []string
}

func (s *llmStub) script(replies ...llmReply) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies = append(s.replies, replies...)
}

func (s *llmStub) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *llmStub) lastPrompt() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.prompts) == 0 {
		return ""
	}
	return s.prompts[len(s.prompts)-1]
}

func (s *llmStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var req struct {
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	body, _ := io.ReadAll(r.Body)
	_ = json.Unmarshal(body, &req)
	if n := len(req.Messages); n > 0 {
		s.prompts = append(s.prompts, req.Messages[n-1].Content)
	}

	call := s.calls
	s.calls++
	if call >= len(s.replies) {
		http.Error(w, `{"error":{"message":"script exhausted"}}`, http.StatusInternalServerError)
		return
	}
	reply := s.replies[call]
	if reply.status != 0 {
		http.Error(w, `{"error":{"message":"scripted failure"}}`, reply.status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"id":     "cmpl-e2e",
		"object": "chat.completion",
		"choices": []map[string]any{
			{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": reply.content},
			},
		},
	})
}

// harness is the fully wired system under test.
type harness struct {
	t   *testing.T
	cfg *config.Config

	client       *database.Client
	llm          *llmStub
	integrations *services.IntegrationService
	handler      http.Handler
}

// newHarness wires every component over a dedicated PostgreSQL schema with
// budgets tightened for test speed. The worker pool, NOTIFY listener, and
// retention-free config mirror production wiring in cmd/rca.
func newHarness(t *testing.T, mutate ...func(*config.Config)) *harness {
	t.Helper()

	shared := testdb.NewSharedTestDB(t)
	client := shared.NewClient(t)

	stub := &llmStub{}
	llmServer := httptest.NewServer(stub)
	t.Cleanup(llmServer.Close)

	t.Setenv("E2E_PLATFORM_LLM_KEY", "test-platform-key")

	cfg := &config.Config{
		Defaults: &config.Defaults{WebPriority: 5},
		Queue:    config.DefaultQueueConfig(),
		Agent:    config.DefaultAgentConfig(),
		Guard:    &config.GuardConfig{Enabled: false},
		Quota:    &config.QuotaConfig{Enabled: false},
		LLM: &config.LLMConfig{
			Platform: &config.PlatformLLMConfig{
				Model:     "test-model",
				BaseURL:   llmServer.URL,
				APIKeyEnv: "E2E_PLATFORM_LLM_KEY",
			},
			RequestTimeout: 5 * time.Second,
			MaxRetries:     2,
		},
	}
	cfg.Queue.WorkerCount = 2
	cfg.Queue.PollInterval = 50 * time.Millisecond
	cfg.Queue.PollIntervalJitter = 10 * time.Millisecond
	cfg.Agent.WallClock = 30 * time.Second
	cfg.Agent.ToolTimeout = 5 * time.Second
	for _, m := range mutate {
		m(cfg)
	}

	cipher, err := credentials.NewCipher(bytes.Repeat([]byte("k"), 32))
	require.NoError(t, err)

	integrations := services.NewIntegrationService(client.Client, cipher, cfg.LLM)
	sessions := services.NewSessionService(client.Client)
	turns := services.NewTurnService(client.Client)
	jobs := services.NewJobService(client.Client)
	quota := services.NewQuotaService(client.Client, client.DB(), cfg.Quota)
	security := services.NewSecurityService(client.Client)

	gateway := llm.NewGateway(cfg.LLM, integrations)
	publisher := events.NewPublisher(client.DB())

	bus := events.NewBus()
	listener := events.NewNotifyListener(shared.ConnString(), bus)
	require.NoError(t, listener.Start(context.Background()))
	t.Cleanup(func() { listener.Stop(context.Background()) })
	bus.SetListener(listener)

	registry := providers.NewRegistry(integrations)
	builder := tools.NewBuilder(registry, cfg.Agent)
	engine := agent.NewEngine(cfg.Agent, publisher)
	runner := queue.NewRunner(turns, gateway, builder, engine)

	pool := queue.NewWorkerPool("e2e-pod", client.Client, cfg.Queue, runner, jobs, turns, publisher)
	require.NoError(t, pool.Start(context.Background()))
	t.Cleanup(pool.Stop)

	srv := api.NewServer(api.Deps{
		Config:       cfg,
		DB:           client,
		Sessions:     sessions,
		Turns:        turns,
		Jobs:         jobs,
		Quota:        quota,
		Integrations: integrations,
		Guard:        guard.New(cfg.Guard, gateway, security),
		Registry:     registry,
		Publisher:    publisher,
		Bus:          bus,
		Listener:     listener,
		Pool:         pool,
	})

	return &harness{
		t:            t,
		cfg:          cfg,
		client:       client,
		llm:          stub,
		integrations: integrations,
		handler:      srv.Handler(),
	}
}

// do performs an authenticated request against the API.
func (h *harness) do(method, target string, body any) *httptest.ResponseRecorder {
	h.t.Helper()
	var rd io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(h.t, err)
		rd = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, target, rd)
	if rd != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Workspace-ID", testWorkspace)
	req.Header.Set("X-Forwarded-User", testUser)

	rec := httptest.NewRecorder()
	h.handler.ServeHTTP(rec, req)
	return rec
}

// sendMessage admits a turn and returns its IDs.
func (h *harness) sendMessage(message string) api.SendMessageResponse {
	h.t.Helper()
	rec := h.do(http.MethodPost, "/api/v1/chat", api.SendMessageRequest{Message: message})
	require.Equal(h.t, http.StatusAccepted, rec.Code, rec.Body.String())

	var resp api.SendMessageResponse
	require.NoError(h.t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

// waitTurn polls until the turn reaches the given status.
func (h *harness) waitTurn(turnID string, status chatturn.Status) {
	h.t.Helper()
	require.Eventually(h.t, func() bool {
		turn, err := h.client.ChatTurn.Get(context.Background(), turnID)
		return err == nil && turn.Status == status
	}, 15*time.Second, 50*time.Millisecond, "turn %s never reached %s", turnID, status)
}

// connectGrafana registers a Grafana integration whose base URL points at
// the given stub.
func (h *harness) connectGrafana(baseURL string) {
	h.t.Helper()
	_, err := h.integrations.CreateIntegration(context.Background(), models.CreateIntegrationRequest{
		WorkspaceID: testWorkspace,
		Provider:    integration.ProviderGrafana,
		Name:        "grafana",
		Credentials: map[string]string{"api_token": "glsa_e2e_token"},
		Settings: map[string]any{
			"base_url":            baseURL,
			"loki_datasource_uid": "loki-e2e",
		},
	})
	require.NoError(h.t, err)
}

// lokiStub serves Grafana's Loki datasource proxy with fixed log lines.
func lokiStub(t *testing.T, lines ...string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/datasources/proxy/uid/loki-e2e/loki/api/v1/query_range", func(w http.ResponseWriter, r *http.Request) {
		values := make([][2]string, 0, len(lines))
		ts := time.Now().Add(-time.Minute)
		for i, line := range lines {
			values = append(values, [2]string{
				strconv.FormatInt(ts.Add(time.Duration(i)*time.Second).UnixNano(), 10), line,
			})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "success",
			"data": map[string]any{
				"resultType": "streams",
				"result": []map[string]any{
					{"stream": map[string]string{"job": "checkout"}, "values": values},
				},
			},
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}
