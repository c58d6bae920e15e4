package prompt

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibemonitor/rca/pkg/config"
	"github.com/vibemonitor/rca/pkg/providers"
	"github.com/vibemonitor/rca/pkg/tools"
)

type fakeProvider struct {
	name string
	caps []providers.Capability
}

func (p *fakeProvider) Name() string                         { return p.name }
func (p *fakeProvider) Capabilities() []providers.Capability { return p.caps }
func (p *fakeProvider) Ping(context.Context) error           { return nil }

func (p *fakeProvider) Invoke(context.Context, providers.Capability, providers.Args) (string, error) {
	return "", nil
}

func testSet(provs ...providers.Provider) *tools.Set {
	return tools.SetFromProviders(provs, config.DefaultAgentConfig())
}

func TestSystem(t *testing.T) {
	set := testSet(
		&fakeProvider{name: "grafana", caps: []providers.Capability{providers.CapLogsSearch}},
		&fakeProvider{name: "github", caps: []providers.Capability{providers.CapCodeRead}},
	)

	got := System(set)

	assert.Contains(t, got, "Site Reliability Engineer")
	assert.Contains(t, got, "## AVAILABLE TOOLS")
	assert.Contains(t, got, "logs.search.grafana")
	assert.Contains(t, got, "code.read.github")
	assert.Contains(t, got, "## RESPONSE FORMAT")
	assert.Contains(t, got, "Final Answer:")
	assert.Contains(t, got, `Stop after Action Input`)
}

func TestToolManifest(t *testing.T) {
	set := testSet(
		&fakeProvider{name: "grafana", caps: []providers.Capability{providers.CapLogsSearch, providers.CapMetricsLatency}},
	)

	got := ToolManifest(set)
	lines := strings.Split(got, "\n")

	// Numbered in stable name order, parameters pulled from the schema.
	require.True(t, strings.HasPrefix(lines[0], "1. **logs.search.grafana**:"))
	assert.Contains(t, got, "2. **metrics.latency.grafana**:")
	assert.Contains(t, got, "Parameters:")
	assert.Contains(t, got, "service (string, required)")
}

func TestToolManifest_Empty(t *testing.T) {
	got := ToolManifest(testSet())
	assert.Contains(t, got, "No tools are available")
}

func TestForcedConclusion(t *testing.T) {
	got := ForcedConclusion()
	assert.Contains(t, got, "budget is exhausted")
	assert.Contains(t, got, "Final Answer:")
	assert.Contains(t, got, "Do not request any more tools")
}

func TestObservation(t *testing.T) {
	assert.Equal(t, "Observation: ERROR: timeout after 20s", Observation("ERROR: timeout after 20s"))
}
