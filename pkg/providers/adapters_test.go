package providers

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundTripFunc lets tests serve canned responses to adapters that talk to
// fixed API hosts.
type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// capturedRequest records what an adapter sent, with the body drained at
// round-trip time so tests can inspect it after the call returns.
type capturedRequest struct {
	*http.Request
	Body string
}

func cannedClient(t *testing.T, handler func(*http.Request) (int, string)) (*http.Client, *[]capturedRequest) {
	t.Helper()
	var seen []capturedRequest
	client := &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		var reqBody []byte
		if req.Body != nil {
			reqBody, _ = io.ReadAll(req.Body)
		}
		seen = append(seen, capturedRequest{Request: req, Body: string(reqBody)})
		status, body := handler(req)
		return &http.Response{
			StatusCode: status,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     make(http.Header),
			Request:    req,
		}, nil
	})}
	return client, &seen
}

func TestDatadog_LogsSearch(t *testing.T) {
	client, seen := cannedClient(t, func(req *http.Request) (int, string) {
		return http.StatusOK, `{"data":[
			{"attributes":{"service":"checkout","timestamp":"2023-11-14T22:13:20Z","message":"payment declined"}},
			{"attributes":{"service":"checkout","timestamp":"2023-11-14T22:13:21Z","message":"retrying payment"}}
		]}`
	})

	d, err := NewDatadog(nil, map[string]string{"api_key": "k", "app_key": "a"}, client)
	require.NoError(t, err)

	out, err := d.Invoke(context.Background(), CapLogsSearch, Args{"service": "checkout", "search_term": "payment"})
	require.NoError(t, err)
	assert.Contains(t, out, "Found 2 log entries:")
	assert.Contains(t, out, "[checkout] [1700000000] payment declined")

	require.Len(t, *seen, 1)
	req := (*seen)[0]
	assert.Equal(t, "api.datadoghq.com", req.URL.Host)
	assert.Equal(t, "/api/v2/logs/events/search", req.URL.Path)
	assert.Equal(t, "k", req.Header.Get("DD-API-KEY"))
	assert.Equal(t, "a", req.Header.Get("DD-APPLICATION-KEY"))
	assert.Contains(t, req.Body, `service:checkout \"payment\"`)
	assert.Contains(t, req.Body, `"sort":"-timestamp"`)
}

func TestDatadog_MetricsCPU(t *testing.T) {
	client, seen := cannedClient(t, func(req *http.Request) (int, string) {
		return http.StatusOK, `{"series":[
			{"scope":"service:checkout","pointlist":[[1700000000000,55.0],[1700000060000,65.0]]}
		]}`
	})

	d, err := NewDatadog(map[string]any{"site": "datadoghq.eu"},
		map[string]string{"api_key": "k", "app_key": "a"}, client)
	require.NoError(t, err)

	out, err := d.Invoke(context.Background(), CapMetricsCPU, Args{"service": "checkout"})
	require.NoError(t, err)
	assert.Contains(t, out, "Metrics for 'cpu usage (%)':")
	assert.Contains(t, out, "Latest: 65.00")
	assert.Contains(t, out, "Average: 60.00")
	assert.Contains(t, out, "Data points: 2")

	req := (*seen)[0]
	assert.Equal(t, "api.datadoghq.eu", req.URL.Host)
	assert.Contains(t, req.URL.Query().Get("query"), "system.cpu.user{service:checkout}")
}

func TestDatadog_MissingCredentials(t *testing.T) {
	_, err := NewDatadog(nil, map[string]string{"api_key": "k"}, http.DefaultClient)
	assert.ErrorContains(t, err, "missing api_key or app_key")
}

func TestDatadog_UpstreamError(t *testing.T) {
	client, _ := cannedClient(t, func(req *http.Request) (int, string) {
		return http.StatusForbidden, `{"errors":["Forbidden"]}`
	})
	d, err := NewDatadog(nil, map[string]string{"api_key": "k", "app_key": "a"}, client)
	require.NoError(t, err)

	_, err = d.Invoke(context.Background(), CapLogsErrors, Args{"service": "checkout"})
	assert.ErrorContains(t, err, "status 403")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGitHub_ReadFile(t *testing.T) {
	client, seen := cannedClient(t, func(req *http.Request) (int, string) {
		return http.StatusOK, "package main\n\nfunc main() {}\n"
	})

	g, err := NewGitHub(map[string]any{"org": "acme"}, map[string]string{"token": "ghp_x"}, client)
	require.NoError(t, err)

	out, err := g.Invoke(context.Background(), CapCodeRead, Args{
		"repo": "billing", "path": "cmd/main.go", "ref": "release-1.2",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Contents of billing/cmd/main.go:")
	assert.Contains(t, out, "func main() {}")

	req := (*seen)[0]
	assert.Equal(t, "/repos/acme/billing/contents/cmd/main.go", req.URL.Path)
	assert.Equal(t, "release-1.2", req.URL.Query().Get("ref"))
	assert.Equal(t, "application/vnd.github.raw+json", req.Header.Get("Accept"))
	assert.Equal(t, "Bearer ghp_x", req.Header.Get("Authorization"))
	assert.Equal(t, "2022-11-28", req.Header.Get("X-GitHub-Api-Version"))
}

func TestGitHub_ReadFileTruncatesLargeContent(t *testing.T) {
	client, _ := cannedClient(t, func(req *http.Request) (int, string) {
		return http.StatusOK, strings.Repeat("x", githubReadLimit+100)
	})
	g, err := NewGitHub(map[string]any{"org": "acme"}, map[string]string{"token": "t"}, client)
	require.NoError(t, err)

	out, err := g.Invoke(context.Background(), CapCodeRead, Args{"repo": "r", "path": "big.txt"})
	require.NoError(t, err)
	assert.Contains(t, out, "…(file truncated)")
}

func TestGitHub_SearchCode(t *testing.T) {
	client, seen := cannedClient(t, func(req *http.Request) (int, string) {
		return http.StatusOK, `{"total_count":42,"items":[
			{"path":"internal/payments/charge.go","repository":{"full_name":"acme/billing"}},
			{"path":"internal/payments/refund.go","repository":{"full_name":"acme/billing"}}
		]}`
	})
	g, err := NewGitHub(map[string]any{"org": "acme"}, map[string]string{"token": "t"}, client)
	require.NoError(t, err)

	out, err := g.Invoke(context.Background(), CapCodeSearch, Args{"query": "ChargeCard", "repo": "billing"})
	require.NoError(t, err)
	assert.Contains(t, out, `Found 42 matches for "ChargeCard" (showing 2):`)
	assert.Contains(t, out, "- acme/billing: internal/payments/charge.go")

	q := (*seen)[0].URL.Query().Get("q")
	assert.Equal(t, "ChargeCard repo:acme/billing", q)
}

func TestGitHub_SearchCodeScopesToOrgWithoutRepo(t *testing.T) {
	client, seen := cannedClient(t, func(req *http.Request) (int, string) {
		return http.StatusOK, `{"total_count":0,"items":[]}`
	})
	g, err := NewGitHub(map[string]any{"org": "acme"}, map[string]string{"token": "t"}, client)
	require.NoError(t, err)

	out, err := g.Invoke(context.Background(), CapCodeSearch, Args{"query": "ChargeCard"})
	require.NoError(t, err)
	assert.Contains(t, out, `No code matches for "ChargeCard".`)
	assert.Equal(t, "ChargeCard org:acme", (*seen)[0].URL.Query().Get("q"))
}

func TestGitHub_ListCommits(t *testing.T) {
	client, seen := cannedClient(t, func(req *http.Request) (int, string) {
		return http.StatusOK, `[
			{"sha":"abc1234def5678","commit":{"message":"Fix idempotency key reuse\n\nDetails.","author":{"name":"Dana","date":"2023-11-14T10:00:00Z"}}}
		]`
	})
	g, err := NewGitHub(map[string]any{"org": "acme"}, map[string]string{"token": "t"}, client)
	require.NoError(t, err)

	out, err := g.Invoke(context.Background(), CapCodeListCommits, Args{"repo": "billing", "path": "internal/payments"})
	require.NoError(t, err)
	assert.Contains(t, out, "Recent commits in billing:")
	assert.Contains(t, out, "- abc1234 Fix idempotency key reuse (Dana, 2023-11-14)")

	req := (*seen)[0]
	assert.Equal(t, "/repos/acme/billing/commits", req.URL.Path)
	assert.Equal(t, "internal/payments", req.URL.Query().Get("path"))
}

func TestGitHub_RequiredArgs(t *testing.T) {
	g, err := NewGitHub(map[string]any{"org": "acme"}, map[string]string{"token": "t"}, http.DefaultClient)
	require.NoError(t, err)

	_, err = g.Invoke(context.Background(), CapCodeRead, Args{"repo": "billing"})
	assert.ErrorContains(t, err, "repo and path are required")

	_, err = g.Invoke(context.Background(), CapCodeListCommits, Args{})
	assert.ErrorContains(t, err, "repo is required")

	_, err = g.Invoke(context.Background(), CapCodeSearch, Args{})
	assert.ErrorContains(t, err, "query is required")
}

func TestNewRelic_MetricsLatency(t *testing.T) {
	client, seen := cannedClient(t, func(req *http.Request) (int, string) {
		return http.StatusOK, `{"data":{"actor":{"account":{"nrql":{"results":[
			{"beginTimeSeconds":1700000000,"endTimeSeconds":1700000060,"percentile.duration":120.5},
			{"beginTimeSeconds":1700000060,"endTimeSeconds":1700000120,"percentile.duration":240.0}
		]}}}}}`
	})

	n, err := NewNewRelic(map[string]any{"account_id": float64(1234567)},
		map[string]string{"api_key": "NRAK-x"}, client)
	require.NoError(t, err)

	out, err := n.Invoke(context.Background(), CapMetricsLatency, Args{"service": "checkout", "percentile": 0.95})
	require.NoError(t, err)
	assert.Contains(t, out, "Metrics for 'http latency p95 (ms)':")
	assert.Contains(t, out, "Latest: 240.00")
	assert.Contains(t, out, "Max: 240.00")
	assert.Contains(t, out, "Min: 120.50")

	req := (*seen)[0]
	assert.Equal(t, "api.newrelic.com", req.URL.Host)
	assert.Equal(t, "NRAK-x", req.Header.Get("API-Key"))
	assert.Contains(t, req.Body, "account(id: 1234567)")
	assert.Contains(t, req.Body, "percentile(duration, 95)")
}

func TestNewRelic_LogsEscapeQuotes(t *testing.T) {
	client, seen := cannedClient(t, func(req *http.Request) (int, string) {
		return http.StatusOK, `{"data":{"actor":{"account":{"nrql":{"results":[
			{"timestamp":1700000000000,"message":"cache miss"}
		]}}}}}`
	})
	n, err := NewNewRelic(map[string]any{"account_id": float64(1)},
		map[string]string{"api_key": "k"}, client)
	require.NoError(t, err)

	out, err := n.Invoke(context.Background(), CapLogsSearch, Args{
		"service": "o'brien-svc", "search_term": "cache",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "[o'brien-svc] [1700000000] cache miss")

	// The literal passes through NRQL escaping, strconv.Quote, and JSON
	// encoding, so the single quote ends up behind four backslashes.
	assert.Contains(t, (*seen)[0].Body, `o\\\\'brien-svc`)
}

func TestNewRelic_QueryErrorSurfaced(t *testing.T) {
	client, _ := cannedClient(t, func(req *http.Request) (int, string) {
		return http.StatusOK, `{"errors":[{"message":"NRQL Syntax Error"}]}`
	})
	n, err := NewNewRelic(map[string]any{"account_id": float64(1)},
		map[string]string{"api_key": "k"}, client)
	require.NoError(t, err)

	_, err = n.Invoke(context.Background(), CapLogsErrors, Args{"service": "checkout"})
	assert.ErrorContains(t, err, "NRQL Syntax Error")
}

func TestNewRelic_EURegionEndpoint(t *testing.T) {
	client, seen := cannedClient(t, func(req *http.Request) (int, string) {
		return http.StatusOK, `{"data":{"actor":{"account":{"nrql":{"results":[]}}}}}`
	})
	n, err := NewNewRelic(map[string]any{"account_id": float64(1), "region": "eu"},
		map[string]string{"api_key": "k"}, client)
	require.NoError(t, err)

	require.NoError(t, n.Ping(context.Background()))
	assert.Equal(t, "api.eu.newrelic.com", (*seen)[0].URL.Host)
}
