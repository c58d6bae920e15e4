package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// NewRelic serves logs and metrics through NRQL queries against the
// NerdGraph API.
//
// Settings: account_id, region ("us" or "eu").
// Credentials: api_key (user key).
type NewRelic struct {
	accountID int
	endpoint  string
	apiKey    string
	client    *http.Client
}

// NewNewRelic builds the adapter from integration settings and decrypted
// credentials.
func NewNewRelic(settings map[string]any, creds map[string]string, client *http.Client) (*NewRelic, error) {
	accountID := int(Args(settings).Float("account_id", 0))
	if accountID == 0 {
		return nil, fmt.Errorf("newrelic integration is missing account_id")
	}
	if creds["api_key"] == "" {
		return nil, fmt.Errorf("newrelic integration is missing api_key")
	}

	endpoint := "https://api.newrelic.com/graphql"
	if region, _ := settings["region"].(string); region == "eu" {
		endpoint = "https://api.eu.newrelic.com/graphql"
	}
	return &NewRelic{accountID: accountID, endpoint: endpoint, apiKey: creds["api_key"], client: client}, nil
}

func (n *NewRelic) Name() string { return "newrelic" }

func (n *NewRelic) Capabilities() []Capability {
	return []Capability{CapLogsSearch, CapLogsErrors, CapMetricsQuery, CapMetricsCPU, CapMetricsMemory, CapMetricsLatency}
}

func (n *NewRelic) Invoke(ctx context.Context, capability Capability, args Args) (string, error) {
	service := nrqlEscape(args.String("service"))
	since := nrqlSince(args.String("start"))

	switch capability {
	case CapLogsSearch:
		nrql := fmt.Sprintf("SELECT timestamp, message FROM Log WHERE service.name = '%s'", service)
		if term := args.String("search_term"); term != "" {
			nrql += fmt.Sprintf(" AND message LIKE '%%%s%%'", nrqlEscape(term))
		}
		nrql += fmt.Sprintf(" %s LIMIT %d", since, logFormatLimit)
		return n.queryLogs(ctx, nrql, service)
	case CapLogsErrors:
		nrql := fmt.Sprintf(
			"SELECT timestamp, message FROM Log WHERE service.name = '%s' AND level IN ('error','fatal') %s LIMIT %d",
			service, since, logFormatLimit)
		return n.queryLogs(ctx, nrql, service)
	case CapMetricsQuery:
		nrql := args.String("query")
		if nrql == "" {
			return "", fmt.Errorf("metrics query expression is empty")
		}
		return n.queryMetrics(ctx, nrql, "query result", service)
	case CapMetricsCPU:
		nrql := fmt.Sprintf(
			"SELECT average(apm.service.cpu.usertime.utilization) * 100 FROM Metric WHERE appName = '%s' %s TIMESERIES",
			service, since)
		return n.queryMetrics(ctx, nrql, "cpu usage (%)", service)
	case CapMetricsMemory:
		nrql := fmt.Sprintf(
			"SELECT average(apm.service.memory.physical) FROM Metric WHERE appName = '%s' %s TIMESERIES",
			service, since)
		return n.queryMetrics(ctx, nrql, "memory usage (MB)", service)
	case CapMetricsLatency:
		p := int(args.Float("percentile", 0.99) * 100)
		nrql := fmt.Sprintf(
			"SELECT percentile(duration, %d) * 1000 FROM Transaction WHERE appName = '%s' %s TIMESERIES",
			p, service, since)
		return n.queryMetrics(ctx, nrql, fmt.Sprintf("http latency p%d (ms)", p), service)
	default:
		return "", errUnsupportedCapability(n.Name(), capability)
	}
}

// Ping runs a trivial NRQL query to validate the key and account.
func (n *NewRelic) Ping(ctx context.Context) error {
	_, err := n.nrql(ctx, "SELECT count(*) FROM Log SINCE 1 minute ago")
	return err
}

func (n *NewRelic) queryLogs(ctx context.Context, nrql, service string) (string, error) {
	results, err := n.nrql(ctx, nrql)
	if err != nil {
		return "", err
	}

	entries := make([]LogEntry, 0, len(results))
	for _, row := range results {
		entry := LogEntry{Service: service}
		if ts, ok := row["timestamp"].(float64); ok {
			entry.Timestamp = time.UnixMilli(int64(ts))
		}
		if msg, ok := row["message"].(string); ok {
			entry.Message = msg
		}
		entries = append(entries, entry)
	}
	return formatLogs(entries), nil
}

func (n *NewRelic) queryMetrics(ctx context.Context, nrql, label, service string) (string, error) {
	results, err := n.nrql(ctx, nrql)
	if err != nil {
		return "", err
	}

	// TIMESERIES rows carry one numeric aggregate each; collect them into
	// a single series per query.
	series := MetricSeries{Service: service}
	for _, row := range results {
		for key, val := range row {
			if key == "timestamp" || key == "beginTimeSeconds" || key == "endTimeSeconds" {
				continue
			}
			if f, ok := val.(float64); ok {
				series.Values = append(series.Values, f)
				break
			}
		}
	}
	return formatMetrics(label, []MetricSeries{series}), nil
}

// nrql runs one NRQL query through NerdGraph and returns the result rows.
func (n *NewRelic) nrql(ctx context.Context, query string) ([]map[string]any, error) {
	gql := fmt.Sprintf(
		`{ actor { account(id: %d) { nrql(query: %s) { results } } } }`,
		n.accountID, strconv.Quote(query))

	reqBody, err := json.Marshal(map[string]string{"query": gql})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("API-Key", n.apiKey)

	resp, err := n.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("newrelic request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read newrelic response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, statusError("newrelic", resp.StatusCode)
	}

	var parsed struct {
		Data struct {
			Actor struct {
				Account struct {
					NRQL struct {
						Results []map[string]any `json:"results"`
					} `json:"nrql"`
				} `json:"account"`
			} `json:"actor"`
		} `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse newrelic response: %w", err)
	}
	if len(parsed.Errors) > 0 {
		return nil, fmt.Errorf("newrelic query failed: %s", parsed.Errors[0].Message)
	}
	return parsed.Data.Actor.Account.NRQL.Results, nil
}

// nrqlSince converts a relative start expression to a SINCE clause.
func nrqlSince(start string) string {
	startTime, _ := parseTimeRange(start, "")
	minutes := int(time.Since(startTime).Minutes())
	if minutes < 1 {
		minutes = 60
	}
	return fmt.Sprintf("SINCE %d minutes ago", minutes)
}

// nrqlEscape guards single-quoted NRQL string literals.
func nrqlEscape(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, `\`, `\\`), "'", `\'`)
}
