package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vibemonitor/rca/ent"
	"github.com/vibemonitor/rca/ent/chatturn"
	"github.com/vibemonitor/rca/pkg/config"
	"github.com/vibemonitor/rca/pkg/database"
	"github.com/vibemonitor/rca/pkg/events"
	"github.com/vibemonitor/rca/pkg/guard"
	"github.com/vibemonitor/rca/pkg/llm"
	"github.com/vibemonitor/rca/pkg/providers"
	"github.com/vibemonitor/rca/pkg/providers/credentials"
	"github.com/vibemonitor/rca/pkg/queue"
	"github.com/vibemonitor/rca/pkg/services"
	testdb "github.com/vibemonitor/rca/test/database"
)

type testServer struct {
	*Server
	client *database.Client
}

// newTestServer wires a Server over a per-test database with real services.
// The guard starts disabled and the worker pool is constructed but not
// started; tests mutate the config or swap the guard as needed.
func newTestServer(t *testing.T, mutate ...func(*config.Config)) *testServer {
	t.Helper()
	client := testdb.NewTestClient(t)

	cfg := &config.Config{
		Defaults: &config.Defaults{WebPriority: 5},
		Queue:    config.DefaultQueueConfig(),
		Guard:    &config.GuardConfig{Enabled: false},
		Quota:    config.DefaultQuotaConfig(),
		LLM:      config.DefaultLLMConfig(),
	}
	for _, m := range mutate {
		m(cfg)
	}

	publisher := events.NewPublisher(client.DB())
	jobs := services.NewJobService(client.Client)
	turns := services.NewTurnService(client.Client)
	cipher, err := credentials.NewCipher(bytes.Repeat([]byte("k"), 32))
	require.NoError(t, err)
	integrations := services.NewIntegrationService(client.Client, cipher, cfg.LLM)

	srv := NewServer(Deps{
		Config:       cfg,
		DB:           client,
		Sessions:     services.NewSessionService(client.Client),
		Turns:        turns,
		Jobs:         jobs,
		Quota:        services.NewQuotaService(client.Client, client.DB(), cfg.Quota),
		Integrations: integrations,
		Guard:        guard.New(cfg.Guard, nil, nil),
		Registry:     providers.NewRegistry(integrations),
		Publisher:    publisher,
		Bus:          events.NewBus(),
		Pool:         queue.NewWorkerPool("test-pod", client.Client, cfg.Queue, nil, jobs, turns, publisher),
	})
	return &testServer{Server: srv, client: client}
}

// do performs a request as user-1 in ws-1 and returns the recorder.
func (ts *testServer) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, target, rd)
	if rd != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Workspace-ID", "ws-1")
	req.Header.Set("X-Forwarded-User", "user-1")

	rec := httptest.NewRecorder()
	ts.Handler().ServeHTTP(rec, req)
	return rec
}

// seedTurn creates a session and a turn in the given status.
func seedTurn(t *testing.T, client *ent.Client, suffix, workspaceID string, status chatturn.Status) *ent.ChatTurn {
	t.Helper()
	ctx := context.Background()

	_, err := client.ChatSession.Create().
		SetID("sess-" + suffix).
		SetWorkspaceID(workspaceID).
		Save(ctx)
	require.NoError(t, err)

	create := client.ChatTurn.Create().
		SetID("turn-" + suffix).
		SetSessionID("sess-" + suffix).
		SetUserMessage("why is checkout failing?").
		SetStatus(status)
	switch status {
	case chatturn.StatusCompleted:
		create.SetFinalResponse("The **payment-db** connection pool was exhausted.")
	case chatturn.StatusFailed:
		create.SetErrorMessage("The analysis timed out.")
	}

	turn, err := create.Save(ctx)
	require.NoError(t, err)
	return turn
}

// decodeJSON unmarshals a response body into out.
func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

// blockingGateway is a guard gateway whose classifier always answers
// "false" (injection detected).
type blockingGateway struct{}

func (blockingGateway) PlatformModel(string) (*llm.ResolvedModel, error) {
	return &llm.ResolvedModel{Platform: true}, nil
}

func (blockingGateway) Complete(context.Context, llm.ChatModel, []llm.Message, llm.Options) (string, error) {
	return "false", nil
}
