package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vibemonitor/rca/pkg/config"
)

// fakeModel scripts a sequence of completion outcomes.
type fakeModel struct {
	responses []fakeResponse
	calls     int
}

type fakeResponse struct {
	text string
	err  error
}

func (m *fakeModel) Model() string { return "fake-model" }

func (m *fakeModel) Complete(ctx context.Context, messages []Message, opts Options) (string, error) {
	if m.calls >= len(m.responses) {
		return "", errors.New("fakeModel: no scripted response left")
	}
	r := m.responses[m.calls]
	m.calls++
	return r.text, r.err
}

func testGateway() *Gateway {
	cfg := config.DefaultLLMConfig()
	cfg.RequestTimeout = time.Second
	return &Gateway{cfg: cfg}
}

func TestGateway_Complete_RetriesTransientErrors(t *testing.T) {
	model := &fakeModel{responses: []fakeResponse{
		{err: &StatusError{Status: 429, Err: errors.New("rate limited")}},
		{err: &StatusError{Status: 503, Err: errors.New("overloaded")}},
		{text: "the root cause is X"},
	}}

	out, err := testGateway().Complete(t.Context(), model, []Message{{Role: RoleUser, Content: "hi"}}, Options{})
	require.NoError(t, err)
	assert.Equal(t, "the root cause is X", out)
	assert.Equal(t, 3, model.calls)
}

func TestGateway_Complete_PermanentErrorFailsFast(t *testing.T) {
	model := &fakeModel{responses: []fakeResponse{
		{err: &StatusError{Status: 401, Err: errors.New("invalid key")}},
		{text: "never reached"},
	}}

	_, err := testGateway().Complete(t.Context(), model, nil, Options{})
	require.Error(t, err)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 401, statusErr.Status)
	assert.Equal(t, 1, model.calls)
}

func TestGateway_Complete_ExhaustsRetryBudget(t *testing.T) {
	transient := fakeResponse{err: &StatusError{Status: 500, Err: errors.New("boom")}}
	model := &fakeModel{responses: []fakeResponse{transient, transient, transient, transient}}

	_, err := testGateway().Complete(t.Context(), model, nil, Options{})
	require.Error(t, err)
	// MaxRetries bounds total attempts.
	assert.Equal(t, config.DefaultLLMConfig().MaxRetries, model.calls)
}

func TestGateway_PlatformModel(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		cfg := config.DefaultLLMConfig()
		g := &Gateway{cfg: cfg}
		_, err := g.PlatformModel("")
		assert.ErrorContains(t, err, "api key is not set")
	})

	t.Run("configured", func(t *testing.T) {
		cfg := config.DefaultLLMConfig()
		g := &Gateway{cfg: cfg, platformKey: "test-key"}

		resolved, err := g.PlatformModel("")
		require.NoError(t, err)
		assert.True(t, resolved.Platform)
		assert.Equal(t, cfg.Platform.Model, resolved.Model())
	})

	t.Run("model override", func(t *testing.T) {
		cfg := config.DefaultLLMConfig()
		g := &Gateway{cfg: cfg, platformKey: "test-key"}

		resolved, err := g.PlatformModel("llama-3.1-8b-instant")
		require.NoError(t, err)
		assert.Equal(t, "llama-3.1-8b-instant", resolved.Model())
	})

	t.Run("unconfigured platform", func(t *testing.T) {
		g := &Gateway{cfg: &config.LLMConfig{MaxRetries: 3, RequestTimeout: time.Second}}
		_, err := g.PlatformModel("")
		assert.ErrorContains(t, err, "not configured")
	})
}

func TestNewGateway_ReadsKeyFromEnv(t *testing.T) {
	t.Setenv("PLATFORM_LLM_API_KEY", "env-key")
	g := NewGateway(config.DefaultLLMConfig(), nil)
	assert.Equal(t, "env-key", g.platformKey)
}
