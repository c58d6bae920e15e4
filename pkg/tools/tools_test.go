package tools

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vibemonitor/rca/pkg/config"
	"github.com/vibemonitor/rca/pkg/providers"
)

// fakeProvider is a scriptable backend for tool tests.
type fakeProvider struct {
	name string
	caps []providers.Capability

	lastCapability providers.Capability
	lastArgs       providers.Args
	out            string
	err            error
	block          bool
}

func (f *fakeProvider) Name() string                       { return f.name }
func (f *fakeProvider) Capabilities() []providers.Capability { return f.caps }
func (f *fakeProvider) Ping(ctx context.Context) error     { return nil }

func (f *fakeProvider) Invoke(ctx context.Context, capability providers.Capability, args providers.Args) (string, error) {
	f.lastCapability = capability
	f.lastArgs = args
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.out, f.err
}

func buildSet(provs ...providers.Provider) *Set {
	return SetFromProviders(provs, config.DefaultAgentConfig())
}

func TestBuilder_NamesToolsPerCapabilityAndProvider(t *testing.T) {
	set := buildSet(
		&fakeProvider{name: "grafana", caps: []providers.Capability{providers.CapLogsSearch, providers.CapLogsErrors}},
		&fakeProvider{name: "datadog", caps: []providers.Capability{providers.CapLogsSearch}},
		&fakeProvider{name: "github", caps: []providers.Capability{providers.CapCodeRead}},
	)

	assert.Equal(t, []string{
		"code.read.github",
		"logs.errors.grafana",
		"logs.search.datadog",
		"logs.search.grafana",
	}, set.Names())

	tool, ok := set.Get("logs.search.datadog")
	require.True(t, ok)
	assert.Contains(t, tool.Description, "datadog")
	assert.Contains(t, tool.InputSchema(), `"service"`)

	_, ok = set.Get("logs.search.newrelic")
	assert.False(t, ok)
}

func TestBuilder_SkipsUnknownCapability(t *testing.T) {
	set := buildSet(&fakeProvider{name: "x", caps: []providers.Capability{providers.Capability("traces.search")}})
	assert.True(t, set.Empty())
}

func TestTool_InvokePassesValidatedArgs(t *testing.T) {
	p := &fakeProvider{name: "grafana", caps: []providers.Capability{providers.CapLogsSearch}, out: "Found 3 log entries"}
	set := buildSet(p)
	tool, _ := set.Get("logs.search.grafana")

	res := tool.Invoke(context.Background(), `{"service":"api-gw","search_term":"timeout"}`)
	assert.False(t, res.IsError)
	assert.Equal(t, "Found 3 log entries", res.Content)
	assert.Equal(t, providers.CapLogsSearch, p.lastCapability)
	assert.Equal(t, "api-gw", p.lastArgs.String("service"))
	assert.Equal(t, "timeout", p.lastArgs.String("search_term"))
}

func TestTool_InvokeRejectsBadInput(t *testing.T) {
	p := &fakeProvider{name: "grafana", caps: []providers.Capability{providers.CapLogsSearch}}
	set := buildSet(p)
	tool, _ := set.Get("logs.search.grafana")

	t.Run("not JSON", func(t *testing.T) {
		res := tool.Invoke(context.Background(), `logs please`)
		assert.True(t, res.IsError)
		assert.Equal(t, "ERROR: invalid arguments: input is not valid JSON", res.Content)
	})

	t.Run("missing required field", func(t *testing.T) {
		res := tool.Invoke(context.Background(), `{"search_term":"timeout"}`)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content, "ERROR: invalid arguments:")
		assert.Contains(t, res.Content, "service")
	})

	t.Run("wrong type", func(t *testing.T) {
		res := tool.Invoke(context.Background(), `{"service":42}`)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content, "ERROR: invalid arguments:")
	})

	t.Run("not an object", func(t *testing.T) {
		res := tool.Invoke(context.Background(), `["api-gw"]`)
		assert.True(t, res.IsError)
	})
}

func TestTool_InvokeEmptyInputDefaultsToEmptyObject(t *testing.T) {
	p := &fakeProvider{name: "github", caps: []providers.Capability{providers.CapCodeListRepos}, out: "Repositories in acme:"}
	set := buildSet(p)
	tool, _ := set.Get("code.list_repos.github")

	res := tool.Invoke(context.Background(), "")
	assert.False(t, res.IsError)
	assert.Equal(t, "Repositories in acme:", res.Content)
}

func TestTool_InvokeMapsAdapterErrorToObservation(t *testing.T) {
	p := &fakeProvider{
		name: "datadog",
		caps: []providers.Capability{providers.CapLogsErrors},
		err:  errors.New("datadog returned\n  status 503"),
	}
	set := buildSet(p)
	tool, _ := set.Get("logs.errors.datadog")

	res := tool.Invoke(context.Background(), `{"service":"api-gw"}`)
	assert.True(t, res.IsError)
	assert.Equal(t, "ERROR: datadog returned status 503", res.Content)
}

func TestTool_InvokeTimeout(t *testing.T) {
	p := &fakeProvider{name: "grafana", caps: []providers.Capability{providers.CapLogsErrors}, block: true}
	cfg := config.DefaultAgentConfig()
	cfg.ToolTimeout = 20 * time.Millisecond
	set := SetFromProviders([]providers.Provider{p}, cfg)
	tool, _ := set.Get("logs.errors.grafana")

	res := tool.Invoke(context.Background(), `{"service":"api-gw"}`)
	assert.True(t, res.IsError)
	assert.Equal(t, "ERROR: timeout after 0s", res.Content)
}

func TestTool_InvokeParentCancellationIsNotATimeout(t *testing.T) {
	p := &fakeProvider{name: "grafana", caps: []providers.Capability{providers.CapLogsErrors}, block: true}
	set := buildSet(p)
	tool, _ := set.Get("logs.errors.grafana")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := tool.Invoke(ctx, `{"service":"api-gw"}`)
	assert.True(t, res.IsError)
	assert.NotContains(t, res.Content, "timeout after")
}

func TestTool_InvokeMasksSecretsInObservation(t *testing.T) {
	p := &fakeProvider{
		name: "grafana",
		caps: []providers.Capability{providers.CapLogsSearch},
		out:  `2026-08-26 10:00:01 auth retry with api_key="sk_live_abcdef1234567890abcdef" failed`,
	}
	set := buildSet(p)
	tool, _ := set.Get("logs.search.grafana")

	res := tool.Invoke(context.Background(), `{"service":"api-gw","search_term":"auth"}`)
	assert.False(t, res.IsError)
	assert.NotContains(t, res.Content, "sk_live_abcdef1234567890abcdef")
	assert.Contains(t, res.Content, "__MASKED_API_KEY__")
}

func TestTool_InvokeMaskingDisabled(t *testing.T) {
	out := `api_key="sk_live_abcdef1234567890abcdef"`
	p := &fakeProvider{name: "grafana", caps: []providers.Capability{providers.CapLogsSearch}, out: out}
	cfg := config.DefaultAgentConfig()
	cfg.Masking.Enabled = false
	set := SetFromProviders([]providers.Provider{p}, cfg)
	tool, _ := set.Get("logs.search.grafana")

	res := tool.Invoke(context.Background(), `{"service":"api-gw","search_term":"auth"}`)
	assert.Equal(t, out, res.Content)
}

func TestTruncateObservation(t *testing.T) {
	t.Run("under limit untouched", func(t *testing.T) {
		assert.Equal(t, "short", truncateObservation("short", 100))
	})

	t.Run("over limit cut with marker", func(t *testing.T) {
		out := truncateObservation(strings.Repeat("a", 200), 100)
		assert.Len(t, out, 100+len(truncationMarker))
		assert.True(t, strings.HasSuffix(out, truncationMarker))
	})

	t.Run("respects rune boundaries", func(t *testing.T) {
		// "é" is two bytes; an odd limit would otherwise split it.
		out := truncateObservation(strings.Repeat("é", 100), 7)
		assert.True(t, strings.HasSuffix(out, truncationMarker))
		assert.True(t, strings.HasPrefix(out, "ééé"))
		for _, r := range out {
			assert.NotEqual(t, '�', r)
		}
	})
}

func TestTool_InvokeTruncatesLongObservation(t *testing.T) {
	p := &fakeProvider{
		name: "grafana",
		caps: []providers.Capability{providers.CapLogsErrors},
		out:  strings.Repeat("x", 10000),
	}
	set := buildSet(p)
	tool, _ := set.Get("logs.errors.grafana")

	res := tool.Invoke(context.Background(), `{"service":"api-gw"}`)
	assert.False(t, res.IsError)
	assert.True(t, strings.HasSuffix(res.Content, truncationMarker))
	assert.Len(t, res.Content, config.DefaultAgentConfig().ObservationLimit+len(truncationMarker))
}
