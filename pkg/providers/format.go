package providers

import (
	"fmt"
	"strings"
	"time"
)

// logFormatLimit caps how many log lines go into one observation.
const logFormatLimit = 50

// LogEntry is one normalized log line from any backend.
type LogEntry struct {
	Service   string
	Timestamp time.Time
	Message   string
}

// MetricSeries is one normalized time series from any backend.
type MetricSeries struct {
	Service string
	Values  []float64
}

// formatLogs renders log entries as a bounded text block the agent can read.
func formatLogs(entries []LogEntry) string {
	if len(entries) == 0 {
		return "No logs found for the specified criteria."
	}

	shown := entries
	truncated := false
	if len(shown) > logFormatLimit {
		shown = shown[:logFormatLimit]
		truncated = true
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d log entries:\n\n", len(shown))
	for _, e := range shown {
		service := e.Service
		if service == "" {
			service = "unknown"
		}
		fmt.Fprintf(&b, "[%s] [%d] %s\n", service, e.Timestamp.Unix(), strings.TrimRight(e.Message, "\n"))
	}
	if truncated {
		fmt.Fprintf(&b, "\n(Showing first %d entries. More logs may be available.)", logFormatLimit)
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatMetrics renders metric series as per-service summary statistics.
func formatMetrics(metricName string, series []MetricSeries) string {
	if metricName == "" {
		metricName = "metric"
	}

	blocks := make([]string, 0, len(series))
	for _, s := range series {
		if len(s.Values) == 0 {
			continue
		}
		service := s.Service
		if service == "" {
			service = "unknown"
		}

		latest := s.Values[len(s.Values)-1]
		minVal, maxVal, sum := s.Values[0], s.Values[0], 0.0
		for _, v := range s.Values {
			if v < minVal {
				minVal = v
			}
			if v > maxVal {
				maxVal = v
			}
			sum += v
		}
		avg := sum / float64(len(s.Values))

		blocks = append(blocks, fmt.Sprintf(
			"Service: %s\n  Latest: %.2f\n  Average: %.2f\n  Max: %.2f\n  Min: %.2f\n  Data points: %d",
			service, latest, avg, maxVal, minVal, len(s.Values)))
	}

	if len(blocks) == 0 {
		return "No metrics data found for the specified criteria."
	}
	return fmt.Sprintf("Metrics for '%s':\n\n%s", metricName, strings.Join(blocks, "\n\n"))
}
