package providers

import (
	"strconv"
	"strings"
	"time"
)

// defaultLookback is the time window used when a tool call gives no range.
const defaultLookback = time.Hour

// parseTimeRange resolves the relative time expressions tool calls use
// ("now", "now-1h", "now-2d") or RFC3339 timestamps into a concrete window.
// Unparseable or missing values fall back to the last hour.
func parseTimeRange(start, end string) (time.Time, time.Time) {
	now := time.Now()
	endTime := parseTimeExpr(end, now, now)
	startTime := parseTimeExpr(start, now, endTime.Add(-defaultLookback))
	if !startTime.Before(endTime) {
		startTime = endTime.Add(-defaultLookback)
	}
	return startTime, endTime
}

func parseTimeExpr(expr string, now, fallback time.Time) time.Time {
	expr = strings.TrimSpace(expr)
	switch {
	case expr == "":
		return fallback
	case expr == "now":
		return now
	case strings.HasPrefix(expr, "now-"):
		if d, ok := parseLookback(expr[len("now-"):]); ok {
			return now.Add(-d)
		}
		return fallback
	default:
		if t, err := time.Parse(time.RFC3339, expr); err == nil {
			return t
		}
		return fallback
	}
}

// parseLookback handles Go durations plus the "d" (day) suffix Grafana-style
// expressions use.
func parseLookback(s string) (time.Duration, bool) {
	if strings.HasSuffix(s, "d") {
		if days, err := strconv.Atoi(strings.TrimSuffix(s, "d")); err == nil && days > 0 {
			return time.Duration(days) * 24 * time.Hour, true
		}
		return 0, false
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, false
	}
	return d, true
}
