package queue

import (
	"crypto/rand"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibemonitor/rca/ent"
	"github.com/vibemonitor/rca/ent/chatturn"
	"github.com/vibemonitor/rca/ent/job"
	"github.com/vibemonitor/rca/ent/turnstep"
	"github.com/vibemonitor/rca/pkg/agent"
	"github.com/vibemonitor/rca/pkg/config"
	"github.com/vibemonitor/rca/pkg/database"
	"github.com/vibemonitor/rca/pkg/events"
	"github.com/vibemonitor/rca/pkg/llm"
	"github.com/vibemonitor/rca/pkg/providers"
	"github.com/vibemonitor/rca/pkg/providers/credentials"
	"github.com/vibemonitor/rca/pkg/services"
	"github.com/vibemonitor/rca/pkg/tools"
	testdb "github.com/vibemonitor/rca/test/database"
)

// newChatServer serves an OpenAI-compatible chat completion endpoint that
// replays scripted replies in order.
func newChatServer(t *testing.T, replies ...string) *httptest.Server {
	t.Helper()
	var n int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		if n >= len(replies) {
			http.Error(w, "no scripted reply left", http.StatusInternalServerError)
			return
		}
		reply := replies[n]
		n++
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": reply}},
			},
		})
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestRunner(t *testing.T, client *database.Client, chatURL string) *Runner {
	t.Helper()
	t.Setenv("TEST_PLATFORM_LLM_KEY", "test-key")

	llmCfg := config.DefaultLLMConfig()
	llmCfg.Platform = &config.PlatformLLMConfig{
		Model:     "test-model",
		BaseURL:   chatURL,
		APIKeyEnv: "TEST_PLATFORM_LLM_KEY",
	}
	llmCfg.RequestTimeout = 5 * time.Second

	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	cipher, err := credentials.NewCipher(key)
	require.NoError(t, err)

	turns := services.NewTurnService(client.Client)
	integrations := services.NewIntegrationService(client.Client, cipher, llmCfg)
	gateway := llm.NewGateway(llmCfg, integrations)
	builder := tools.NewBuilder(providers.NewRegistry(integrations), config.DefaultAgentConfig())
	engine := agent.NewEngine(config.DefaultAgentConfig(), events.NewPublisher(client.DB()))

	return NewRunner(turns, gateway, builder, engine)
}

func TestRunner_ExecuteCompletesTurn(t *testing.T) {
	client := testdb.NewTestClient(t)
	server := newChatServer(t,
		"Thought: No integrations are connected, so I reason from the report.\nFinal Answer: **most likely cause**: the 01:58 deploy.")
	runner := newTestRunner(t, client, server.URL)

	j := seedJob(t, client.Client, "run", job.StatusRunning)

	result := runner.Execute(t.Context(), j)

	require.NoError(t, result.Err)
	assert.Equal(t, "**most likely cause**: the 01:58 deploy.", result.Answer)

	// The executor moved the turn to processing and persisted steps.
	turn := client.ChatTurn.GetX(t.Context(), j.TurnID)
	assert.Equal(t, chatturn.StatusProcessing, turn.Status)

	steps := client.TurnStep.Query().
		Where(turnstep.TurnIDEQ(j.TurnID)).
		Order(ent.Asc(turnstep.FieldSequence)).
		AllX(t.Context())
	require.NotEmpty(t, steps)
	assert.Equal(t, turnstep.StepTypeStatus, steps[0].StepType)
}

func TestRunner_ExecuteProcessingTurnIsRetry(t *testing.T) {
	client := testdb.NewTestClient(t)
	server := newChatServer(t, "Final Answer: retried fine.")
	runner := newTestRunner(t, client, server.URL)

	j := seedJob(t, client.Client, "retry", job.StatusRunning)
	markTurnProcessing(t, client.Client, j.TurnID)

	result := runner.Execute(t.Context(), j)
	require.NoError(t, result.Err)
	assert.Equal(t, "retried fine.", result.Answer)
}

func TestRunner_ExecuteCompletedTurnReturnsStoredAnswer(t *testing.T) {
	client := testdb.NewTestClient(t)
	runner := newTestRunner(t, client, "http://unused.invalid")

	j := seedJob(t, client.Client, "dup", job.StatusRunning)
	markTurnProcessing(t, client.Client, j.TurnID)
	require.NoError(t, services.NewTurnService(client.Client).CompleteTurn(t.Context(), j.TurnID, "already answered"))

	result := runner.Execute(t.Context(), j)
	require.NoError(t, result.Err)
	assert.Equal(t, "already answered", result.Answer)
}

func TestRunner_ExecuteFailedTurnIsUnavailable(t *testing.T) {
	client := testdb.NewTestClient(t)
	runner := newTestRunner(t, client, "http://unused.invalid")

	j := seedJob(t, client.Client, "gone", job.StatusRunning)
	markTurnProcessing(t, client.Client, j.TurnID)
	require.NoError(t, services.NewTurnService(client.Client).FailTurn(t.Context(), j.TurnID, "earlier failure"))

	result := runner.Execute(t.Context(), j)
	require.Error(t, result.Err)
	assert.ErrorIs(t, result.Err, ErrTurnUnavailable)
}

func TestRunner_ExecuteMissingTurn(t *testing.T) {
	client := testdb.NewTestClient(t)
	runner := newTestRunner(t, client, "http://unused.invalid")

	// Point the job at another workspace's scope; the turn lookup is
	// workspace-bounded and must miss.
	j := seedJob(t, client.Client, "orphan", job.StatusRunning)
	j.WorkspaceID = "ws-other"

	result := runner.Execute(t.Context(), j)
	require.Error(t, result.Err)
	assert.ErrorIs(t, result.Err, services.ErrNotFound)
}
