package providers

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatLogs(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "No logs found for the specified criteria.", formatLogs(nil))
	})

	t.Run("entries", func(t *testing.T) {
		ts := time.Unix(1700000000, 0)
		out := formatLogs([]LogEntry{
			{Service: "api-gw", Timestamp: ts, Message: "connection timeout\n"},
			{Timestamp: ts, Message: "pool exhausted"},
		})
		assert.Contains(t, out, "Found 2 log entries:")
		assert.Contains(t, out, "[api-gw] [1700000000] connection timeout")
		assert.Contains(t, out, "[unknown] [1700000000] pool exhausted")
		assert.NotContains(t, out, "More logs may be available")
	})

	t.Run("truncates past the limit", func(t *testing.T) {
		entries := make([]LogEntry, logFormatLimit+10)
		for i := range entries {
			entries[i] = LogEntry{Service: "svc", Message: fmt.Sprintf("line %d", i)}
		}
		out := formatLogs(entries)
		assert.Contains(t, out, fmt.Sprintf("Found %d log entries:", logFormatLimit))
		assert.Contains(t, out, "More logs may be available")
		assert.NotContains(t, out, fmt.Sprintf("line %d", logFormatLimit))
	})
}

func TestFormatMetrics(t *testing.T) {
	t.Run("no data", func(t *testing.T) {
		assert.Equal(t, "No metrics data found for the specified criteria.", formatMetrics("cpu", nil))
		assert.Equal(t, "No metrics data found for the specified criteria.",
			formatMetrics("cpu", []MetricSeries{{Service: "svc"}}))
	})

	t.Run("statistics", func(t *testing.T) {
		out := formatMetrics("cpu usage (%)", []MetricSeries{
			{Service: "api-gw", Values: []float64{10, 30, 20}},
		})
		assert.True(t, strings.HasPrefix(out, "Metrics for 'cpu usage (%)':"))
		assert.Contains(t, out, "Service: api-gw")
		assert.Contains(t, out, "Latest: 20.00")
		assert.Contains(t, out, "Average: 20.00")
		assert.Contains(t, out, "Max: 30.00")
		assert.Contains(t, out, "Min: 10.00")
		assert.Contains(t, out, "Data points: 3")
	})
}

func TestParseTimeRange(t *testing.T) {
	now := time.Now()

	t.Run("defaults to last hour", func(t *testing.T) {
		start, end := parseTimeRange("", "")
		assert.WithinDuration(t, now, end, 2*time.Second)
		assert.WithinDuration(t, now.Add(-time.Hour), start, 2*time.Second)
	})

	t.Run("relative expressions", func(t *testing.T) {
		start, end := parseTimeRange("now-30m", "now")
		assert.WithinDuration(t, now.Add(-30*time.Minute), start, 2*time.Second)
		assert.WithinDuration(t, now, end, 2*time.Second)
	})

	t.Run("day suffix", func(t *testing.T) {
		start, _ := parseTimeRange("now-2d", "")
		assert.WithinDuration(t, now.Add(-48*time.Hour), start, 2*time.Second)
	})

	t.Run("rfc3339", func(t *testing.T) {
		start, _ := parseTimeRange("2024-05-01T00:00:00Z", "")
		assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), start)
	})

	t.Run("inverted range falls back", func(t *testing.T) {
		start, end := parseTimeRange("now", "now-1h")
		assert.True(t, start.Before(end))
	})

	t.Run("garbage falls back", func(t *testing.T) {
		start, end := parseTimeRange("yesterday-ish", "")
		assert.WithinDuration(t, end.Add(-time.Hour), start, 2*time.Second)
	})
}
