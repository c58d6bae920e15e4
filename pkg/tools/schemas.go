package tools

import (
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/vibemonitor/rca/pkg/providers"
)

// capabilitySpec fixes the input schema and the description template for
// one capability. The description gets the provider's display name so the
// agent can tell logs.search.grafana from logs.search.datadog.
type capabilitySpec struct {
	description string // fmt template, %s = provider name
	schema      string
}

var capabilitySpecs = map[providers.Capability]capabilitySpec{
	providers.CapLogsSearch: {
		description: "Search the logs of a service via %s. Optionally filter by a search term and a time range.",
		schema: `{
			"type": "object",
			"properties": {
				"service": {"type": "string", "description": "Service name to search logs for"},
				"search_term": {"type": "string", "description": "Substring or phrase to filter log messages by"},
				"start": {"type": "string", "description": "Range start: RFC3339 or relative like now-1h (default now-1h)"},
				"end": {"type": "string", "description": "Range end: RFC3339 or now (default now)"}
			},
			"required": ["service"]
		}`,
	},
	providers.CapLogsErrors: {
		description: "Fetch recent error-level logs of a service via %s.",
		schema: `{
			"type": "object",
			"properties": {
				"service": {"type": "string", "description": "Service name to fetch error logs for"},
				"start": {"type": "string", "description": "Range start: RFC3339 or relative like now-1h"},
				"end": {"type": "string", "description": "Range end: RFC3339 or now"}
			},
			"required": ["service"]
		}`,
	},
	providers.CapMetricsQuery: {
		description: "Run a raw metrics query against %s, in the backend's native query language.",
		schema: `{
			"type": "object",
			"properties": {
				"query": {"type": "string", "description": "Query expression in the backend's native language"},
				"start": {"type": "string", "description": "Range start: RFC3339 or relative like now-1h"},
				"end": {"type": "string", "description": "Range end: RFC3339 or now"}
			},
			"required": ["query"]
		}`,
	},
	providers.CapMetricsCPU: {
		description: "Get CPU usage of a service over a time range via %s.",
		schema:      serviceRangeSchema,
	},
	providers.CapMetricsMemory: {
		description: "Get memory usage of a service over a time range via %s.",
		schema:      serviceRangeSchema,
	},
	providers.CapMetricsLatency: {
		description: "Get HTTP request latency of a service via %s, at a configurable percentile.",
		schema: `{
			"type": "object",
			"properties": {
				"service": {"type": "string", "description": "Service name"},
				"percentile": {"type": "number", "minimum": 0.5, "maximum": 0.999, "description": "Latency percentile as a fraction, e.g. 0.99"},
				"start": {"type": "string", "description": "Range start: RFC3339 or relative like now-1h"},
				"end": {"type": "string", "description": "Range end: RFC3339 or now"}
			},
			"required": ["service"]
		}`,
	},
	providers.CapCodeRead: {
		description: "Read a file from a repository via %s.",
		schema: `{
			"type": "object",
			"properties": {
				"repo": {"type": "string", "description": "Repository name (without the org prefix)"},
				"path": {"type": "string", "description": "File path within the repository"},
				"ref": {"type": "string", "description": "Branch, tag, or commit SHA (default: default branch)"}
			},
			"required": ["repo", "path"]
		}`,
	},
	providers.CapCodeSearch: {
		description: "Search source code via %s. Scope to one repository or the whole organization.",
		schema: `{
			"type": "object",
			"properties": {
				"query": {"type": "string", "description": "Code search query, e.g. a function or symbol name"},
				"repo": {"type": "string", "description": "Restrict the search to one repository"}
			},
			"required": ["query"]
		}`,
	},
	providers.CapCodeListCommits: {
		description: "List recent commits of a repository via %s, optionally restricted to a path.",
		schema: `{
			"type": "object",
			"properties": {
				"repo": {"type": "string", "description": "Repository name"},
				"path": {"type": "string", "description": "Only commits touching this path"}
			},
			"required": ["repo"]
		}`,
	},
	providers.CapCodeListRepos: {
		description: "List the repositories visible in the organization via %s.",
		schema:      `{"type": "object", "properties": {}}`,
	},
}

const serviceRangeSchema = `{
	"type": "object",
	"properties": {
		"service": {"type": "string", "description": "Service name"},
		"start": {"type": "string", "description": "Range start: RFC3339 or relative like now-1h"},
		"end": {"type": "string", "description": "Range end: RFC3339 or now"}
	},
	"required": ["service"]
}`

// compiledSchemas holds one compiled schema per capability, built once at
// startup. A malformed schema here is a programming error.
var compiledSchemas = func() map[providers.Capability]*jsonschema.Schema {
	out := make(map[providers.Capability]*jsonschema.Schema, len(capabilitySpecs))
	for cap, spec := range capabilitySpecs {
		out[cap] = jsonschema.MustCompileString(string(cap)+".schema.json", spec.schema)
	}
	return out
}()
