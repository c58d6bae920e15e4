package database

import (
	"context"
	"time"
)

// PoolSnapshot captures connectivity and pool pressure at one point in time.
// WaitCount growing between snapshots means callers are queueing for
// connections and MaxOpen is too low for the load.
type PoolSnapshot struct {
	Reachable   bool
	PingLatency time.Duration
	Open        int
	InUse       int
	Idle        int
	WaitCount   int64
	MaxOpen     int
}

// Snapshot pings the database and reads the pool counters. The counters are
// populated even when the ping fails so a readiness probe can report pool
// state alongside the error.
func (c *Client) Snapshot(ctx context.Context) (PoolSnapshot, error) {
	start := time.Now()
	err := c.db.PingContext(ctx)

	stats := c.db.Stats()
	snap := PoolSnapshot{
		Reachable:   err == nil,
		PingLatency: time.Since(start),
		Open:        stats.OpenConnections,
		InUse:       stats.InUse,
		Idle:        stats.Idle,
		WaitCount:   stats.WaitCount,
		MaxOpen:     stats.MaxOpenConnections,
	}
	return snap, err
}
