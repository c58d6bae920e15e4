package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGrafanaTestServer(t *testing.T) (*httptest.Server, *http.Request) {
	t.Helper()
	var captured http.Request

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = *r
		switch {
		case r.URL.Path == "/api/datasources/proxy/uid/loki-uid/loki/api/v1/query_range":
			_, _ = w.Write([]byte(`{"data":{"result":[
				{"stream":{"job":"api-gw"},"values":[["1700000000000000000","connection refused"]]}
			]}}`))
		case r.URL.Path == "/api/datasources/proxy/uid/prom-uid/api/v1/query_range":
			_, _ = w.Write([]byte(`{"data":{"result":[
				{"metric":{"job":"api-gw"},"values":[[1700000000,"12.5"],[1700000060,"42.0"]]}
			]}}`))
		case r.URL.Path == "/api/health":
			_, _ = w.Write([]byte(`{"database":"ok"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &captured
}

func newTestGrafana(t *testing.T, baseURL string) *Grafana {
	t.Helper()
	g, err := NewGrafana(
		map[string]any{
			"base_url":                  baseURL,
			"loki_datasource_uid":       "loki-uid",
			"prometheus_datasource_uid": "prom-uid",
		},
		map[string]string{"api_token": "glsa_test"},
		http.DefaultClient,
	)
	require.NoError(t, err)
	return g
}

func TestGrafana_Capabilities(t *testing.T) {
	g := newTestGrafana(t, "http://grafana.local")
	assert.ElementsMatch(t, []Capability{
		CapLogsSearch, CapLogsErrors, CapMetricsQuery, CapMetricsCPU, CapMetricsMemory, CapMetricsLatency,
	}, g.Capabilities())

	logsOnly, err := NewGrafana(
		map[string]any{"base_url": "http://g", "loki_datasource_uid": "l"},
		nil, http.DefaultClient)
	require.NoError(t, err)
	assert.ElementsMatch(t, []Capability{CapLogsSearch, CapLogsErrors}, logsOnly.Capabilities())

	_, err = NewGrafana(map[string]any{}, nil, http.DefaultClient)
	assert.ErrorContains(t, err, "missing base_url")
}

func TestGrafana_LogsSearch(t *testing.T) {
	srv, captured := newGrafanaTestServer(t)
	g := newTestGrafana(t, srv.URL)

	out, err := g.Invoke(context.Background(), CapLogsSearch, Args{
		"service":     "api-gw",
		"search_term": "refused",
		"start":       "now-1h",
	})
	require.NoError(t, err)
	assert.Contains(t, out, `[api-gw] [1700000000] connection refused`)

	assert.Equal(t, "Bearer glsa_test", captured.Header.Get("Authorization"))
	assert.Equal(t, `{job="api-gw"} |= "refused"`, captured.URL.Query().Get("query"))
	assert.Equal(t, "backward", captured.URL.Query().Get("direction"))
}

func TestGrafana_ErrorLogsQuery(t *testing.T) {
	srv, captured := newGrafanaTestServer(t)
	g := newTestGrafana(t, srv.URL)

	_, err := g.Invoke(context.Background(), CapLogsErrors, Args{"service": "api-gw"})
	require.NoError(t, err)
	assert.Contains(t, captured.URL.Query().Get("query"), "(?i)(error|exception|fatal|panic)")
}

func TestGrafana_MetricsLatency(t *testing.T) {
	srv, captured := newGrafanaTestServer(t)
	g := newTestGrafana(t, srv.URL)

	out, err := g.Invoke(context.Background(), CapMetricsLatency, Args{"service": "api-gw", "percentile": 0.95})
	require.NoError(t, err)
	assert.Contains(t, out, "http latency p95 (ms)")
	assert.Contains(t, out, "Latest: 42.00")
	assert.Contains(t, captured.URL.Query().Get("query"), "histogram_quantile(0.95")
}

func TestGrafana_MetricsQueryRequiresExpression(t *testing.T) {
	srv, _ := newGrafanaTestServer(t)
	g := newTestGrafana(t, srv.URL)

	_, err := g.Invoke(context.Background(), CapMetricsQuery, Args{})
	assert.ErrorContains(t, err, "expression is empty")
}

func TestGrafana_UnsupportedCapability(t *testing.T) {
	g := newTestGrafana(t, "http://grafana.local")
	_, err := g.Invoke(context.Background(), CapCodeRead, Args{})
	assert.ErrorContains(t, err, "does not serve capability")
}

func TestGrafana_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	g := newTestGrafana(t, srv.URL)
	_, err := g.Invoke(context.Background(), CapLogsErrors, Args{"service": "api-gw"})
	assert.ErrorContains(t, err, "status 502")
	assert.NotErrorIs(t, err, ErrUnauthorized)
}

func TestGrafana_RejectedTokenIsUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	g := newTestGrafana(t, srv.URL)
	_, err := g.Invoke(context.Background(), CapLogsSearch, Args{"service": "api-gw"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGrafana_Ping(t *testing.T) {
	srv, _ := newGrafanaTestServer(t)
	assert.NoError(t, newTestGrafana(t, srv.URL).Ping(context.Background()))
}
