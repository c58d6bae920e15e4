package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Grafana serves logs through a Loki datasource and metrics through a
// Prometheus datasource, both via Grafana's datasource proxy API.
//
// Settings: base_url, loki_datasource_uid, prometheus_datasource_uid.
// Credentials: api_token (service account token with Viewer role).
type Grafana struct {
	baseURL string
	token   string
	lokiUID string
	promUID string
	client  *http.Client
}

// NewGrafana builds the adapter from integration settings and decrypted
// credentials.
func NewGrafana(settings map[string]any, creds map[string]string, client *http.Client) (*Grafana, error) {
	baseURL, _ := settings["base_url"].(string)
	if baseURL == "" {
		return nil, fmt.Errorf("grafana integration is missing base_url")
	}
	lokiUID, _ := settings["loki_datasource_uid"].(string)
	promUID, _ := settings["prometheus_datasource_uid"].(string)
	return &Grafana{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   creds["api_token"],
		lokiUID: lokiUID,
		promUID: promUID,
		client:  client,
	}, nil
}

func (g *Grafana) Name() string { return "grafana" }

// Capabilities depend on which datasources are configured.
func (g *Grafana) Capabilities() []Capability {
	var caps []Capability
	if g.lokiUID != "" {
		caps = append(caps, CapLogsSearch, CapLogsErrors)
	}
	if g.promUID != "" {
		caps = append(caps, CapMetricsQuery, CapMetricsCPU, CapMetricsMemory, CapMetricsLatency)
	}
	return caps
}

func (g *Grafana) Invoke(ctx context.Context, capability Capability, args Args) (string, error) {
	switch capability {
	case CapLogsSearch:
		service := args.String("service")
		query := fmt.Sprintf("{job=%q}", service)
		if term := args.String("search_term"); term != "" {
			query += fmt.Sprintf(" |= %q", term)
		}
		return g.queryLoki(ctx, query, args)
	case CapLogsErrors:
		query := fmt.Sprintf("{job=%q} |~ `(?i)(error|exception|fatal|panic)`", args.String("service"))
		return g.queryLoki(ctx, query, args)
	case CapMetricsQuery:
		return g.queryProm(ctx, args.String("query"), "query result", args)
	case CapMetricsCPU:
		expr := fmt.Sprintf(`rate(process_cpu_seconds_total{job=%q}[5m]) * 100`, args.String("service"))
		return g.queryProm(ctx, expr, "cpu usage (%)", args)
	case CapMetricsMemory:
		expr := fmt.Sprintf(`process_resident_memory_bytes{job=%q} / 1024 / 1024`, args.String("service"))
		return g.queryProm(ctx, expr, "memory usage (MiB)", args)
	case CapMetricsLatency:
		p := args.Float("percentile", 0.99)
		expr := fmt.Sprintf(
			`histogram_quantile(%g, sum by (le, job) (rate(http_request_duration_seconds_bucket{job=%q}[5m]))) * 1000`,
			p, args.String("service"))
		return g.queryProm(ctx, expr, fmt.Sprintf("http latency p%g (ms)", p*100), args)
	default:
		return "", errUnsupportedCapability(g.Name(), capability)
	}
}

// Ping hits Grafana's health endpoint.
func (g *Grafana) Ping(ctx context.Context) error {
	body, err := g.get(ctx, g.baseURL+"/api/health", nil)
	if err != nil {
		return err
	}
	_ = body
	return nil
}

// queryLoki runs a LogQL range query through the Loki datasource proxy.
func (g *Grafana) queryLoki(ctx context.Context, logql string, args Args) (string, error) {
	start, end := parseTimeRange(args.String("start"), args.String("end"))

	endpoint := fmt.Sprintf("%s/api/datasources/proxy/uid/%s/loki/api/v1/query_range", g.baseURL, g.lokiUID)
	params := url.Values{
		"query":     {logql},
		"start":     {strconv.FormatInt(start.UnixNano(), 10)},
		"end":       {strconv.FormatInt(end.UnixNano(), 10)},
		"limit":     {strconv.Itoa(logFormatLimit)},
		"direction": {"backward"},
	}

	body, err := g.get(ctx, endpoint, params)
	if err != nil {
		return "", err
	}

	var resp struct {
		Data struct {
			Result []struct {
				Stream map[string]string `json:"stream"`
				Values [][2]string       `json:"values"`
			} `json:"result"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to parse loki response: %w", err)
	}

	var entries []LogEntry
	for _, stream := range resp.Data.Result {
		for _, v := range stream.Values {
			ns, _ := strconv.ParseInt(v[0], 10, 64)
			entries = append(entries, LogEntry{
				Service:   stream.Stream["job"],
				Timestamp: time.Unix(0, ns),
				Message:   v[1],
			})
		}
	}
	return formatLogs(entries), nil
}

// queryProm runs a PromQL range query through the Prometheus datasource proxy.
func (g *Grafana) queryProm(ctx context.Context, expr, metricName string, args Args) (string, error) {
	if expr == "" {
		return "", fmt.Errorf("metrics query expression is empty")
	}
	start, end := parseTimeRange(args.String("start"), args.String("end"))

	endpoint := fmt.Sprintf("%s/api/datasources/proxy/uid/%s/api/v1/query_range", g.baseURL, g.promUID)
	params := url.Values{
		"query": {expr},
		"start": {strconv.FormatInt(start.Unix(), 10)},
		"end":   {strconv.FormatInt(end.Unix(), 10)},
		"step":  {"60"},
	}

	body, err := g.get(ctx, endpoint, params)
	if err != nil {
		return "", err
	}

	var resp struct {
		Data struct {
			Result []struct {
				Metric map[string]string `json:"metric"`
				Values [][2]any          `json:"values"`
			} `json:"result"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to parse prometheus response: %w", err)
	}

	series := make([]MetricSeries, 0, len(resp.Data.Result))
	for _, r := range resp.Data.Result {
		s := MetricSeries{Service: r.Metric["job"]}
		for _, v := range r.Values {
			if str, ok := v[1].(string); ok {
				if f, err := strconv.ParseFloat(str, 64); err == nil {
					s.Values = append(s.Values, f)
				}
			}
		}
		series = append(series, s)
	}
	return formatMetrics(metricName, series), nil
}

func (g *Grafana) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if g.token != "" {
		req.Header.Set("Authorization", "Bearer "+g.token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("grafana request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read grafana response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, statusError("grafana", resp.StatusCode)
	}
	return body, nil
}
