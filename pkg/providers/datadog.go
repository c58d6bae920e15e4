package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Datadog serves logs via the v2 log search API and metrics via the v1
// timeseries query API.
//
// Settings: site (e.g. "datadoghq.com", "datadoghq.eu").
// Credentials: api_key, app_key.
type Datadog struct {
	site   string
	apiKey string
	appKey string
	client *http.Client
}

// NewDatadog builds the adapter from integration settings and decrypted
// credentials.
func NewDatadog(settings map[string]any, creds map[string]string, client *http.Client) (*Datadog, error) {
	site, _ := settings["site"].(string)
	if site == "" {
		site = "datadoghq.com"
	}
	if creds["api_key"] == "" || creds["app_key"] == "" {
		return nil, fmt.Errorf("datadog integration is missing api_key or app_key")
	}
	return &Datadog{site: site, apiKey: creds["api_key"], appKey: creds["app_key"], client: client}, nil
}

func (d *Datadog) Name() string { return "datadog" }

func (d *Datadog) Capabilities() []Capability {
	return []Capability{CapLogsSearch, CapLogsErrors, CapMetricsQuery, CapMetricsCPU, CapMetricsMemory, CapMetricsLatency}
}

func (d *Datadog) Invoke(ctx context.Context, capability Capability, args Args) (string, error) {
	service := args.String("service")
	switch capability {
	case CapLogsSearch:
		query := fmt.Sprintf("service:%s", service)
		if term := args.String("search_term"); term != "" {
			query += fmt.Sprintf(" %q", term)
		}
		return d.searchLogs(ctx, query, args)
	case CapLogsErrors:
		return d.searchLogs(ctx, fmt.Sprintf("service:%s status:error", service), args)
	case CapMetricsQuery:
		return d.queryMetrics(ctx, args.String("query"), "query result", args)
	case CapMetricsCPU:
		expr := fmt.Sprintf("avg:system.cpu.user{service:%s} by {service}", service)
		return d.queryMetrics(ctx, expr, "cpu usage (%)", args)
	case CapMetricsMemory:
		expr := fmt.Sprintf("avg:system.mem.used{service:%s} by {service} / 1048576", service)
		return d.queryMetrics(ctx, expr, "memory usage (MiB)", args)
	case CapMetricsLatency:
		p := args.Float("percentile", 0.99)
		expr := fmt.Sprintf("p%d:trace.http.request.duration{service:%s} by {service}", int(p*100), service)
		return d.queryMetrics(ctx, expr, fmt.Sprintf("http latency p%g", p*100), args)
	default:
		return "", errUnsupportedCapability(d.Name(), capability)
	}
}

// Ping validates the API key pair.
func (d *Datadog) Ping(ctx context.Context) error {
	_, err := d.do(ctx, http.MethodGet, fmt.Sprintf("https://api.%s/api/v1/validate", d.site), nil)
	return err
}

func (d *Datadog) searchLogs(ctx context.Context, query string, args Args) (string, error) {
	start, end := parseTimeRange(args.String("start"), args.String("end"))

	reqBody, err := json.Marshal(map[string]any{
		"filter": map[string]string{
			"query": query,
			"from":  start.UTC().Format(time.RFC3339),
			"to":    end.UTC().Format(time.RFC3339),
		},
		"sort": "-timestamp",
		"page": map[string]int{"limit": logFormatLimit},
	})
	if err != nil {
		return "", err
	}

	body, err := d.do(ctx, http.MethodPost, fmt.Sprintf("https://api.%s/api/v2/logs/events/search", d.site), reqBody)
	if err != nil {
		return "", err
	}

	var resp struct {
		Data []struct {
			Attributes struct {
				Service   string    `json:"service"`
				Timestamp time.Time `json:"timestamp"`
				Message   string    `json:"message"`
			} `json:"attributes"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to parse datadog log response: %w", err)
	}

	entries := make([]LogEntry, 0, len(resp.Data))
	for _, item := range resp.Data {
		entries = append(entries, LogEntry{
			Service:   item.Attributes.Service,
			Timestamp: item.Attributes.Timestamp,
			Message:   item.Attributes.Message,
		})
	}
	return formatLogs(entries), nil
}

func (d *Datadog) queryMetrics(ctx context.Context, expr, metricName string, args Args) (string, error) {
	if expr == "" {
		return "", fmt.Errorf("metrics query expression is empty")
	}
	start, end := parseTimeRange(args.String("start"), args.String("end"))

	endpoint := fmt.Sprintf("https://api.%s/api/v1/query?%s", d.site, url.Values{
		"from":  {strconv.FormatInt(start.Unix(), 10)},
		"to":    {strconv.FormatInt(end.Unix(), 10)},
		"query": {expr},
	}.Encode())

	body, err := d.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}

	var resp struct {
		Series []struct {
			Scope     string       `json:"scope"`
			Pointlist [][2]float64 `json:"pointlist"`
		} `json:"series"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to parse datadog metrics response: %w", err)
	}

	series := make([]MetricSeries, 0, len(resp.Series))
	for _, s := range resp.Series {
		ms := MetricSeries{Service: s.Scope}
		for _, point := range s.Pointlist {
			ms.Values = append(ms.Values, point[1])
		}
		series = append(series, ms)
	}
	return formatMetrics(metricName, series), nil
}

func (d *Datadog) do(ctx context.Context, method, endpoint string, reqBody []byte) ([]byte, error) {
	var bodyReader io.Reader
	if reqBody != nil {
		bodyReader = bytes.NewReader(reqBody)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("DD-API-KEY", d.apiKey)
	req.Header.Set("DD-APPLICATION-KEY", d.appKey)

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("datadog request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read datadog response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, statusError("datadog", resp.StatusCode)
	}
	return body, nil
}
