package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
)

const (
	// opPollInterval bounds WaitForNotification so queued LISTEN/UNLISTEN
	// ops are picked up promptly.
	opPollInterval = 100 * time.Millisecond

	redialBaseDelay = time.Second
	redialMaxDelay  = 30 * time.Second
)

// listenOp is a LISTEN or UNLISTEN statement queued for the receive loop.
// The loop is the only goroutine that touches the pgx connection, so channel
// changes travel through opCh instead of executing directly; a concurrent
// Exec against a connection blocked in WaitForNotification fails with
// "conn busy".
type listenOp struct {
	stmt string
	done chan error
}

// NotifyListener bridges PostgreSQL NOTIFY into the in-process Bus. It holds
// one dedicated connection for LISTEN; pooled connections cannot carry
// subscriptions because a LISTEN registration dies with the session that
// issued it.
type NotifyListener struct {
	dsn string
	bus *Bus

	// active is the set of channels that should be LISTENed; redial replays
	// it onto the fresh connection.
	mu     sync.RWMutex
	active map[string]struct{}

	opCh chan listenOp

	// started covers Start..Stop; connected additionally drops during a
	// reconnect window, so Running reports the link state, not the lifecycle.
	started   atomic.Bool
	connected atomic.Bool

	stop context.CancelFunc
	done chan struct{}
}

func NewNotifyListener(dsn string, bus *Bus) *NotifyListener {
	return &NotifyListener{
		dsn:    dsn,
		bus:    bus,
		active: make(map[string]struct{}),
		opCh:   make(chan listenOp, 16),
	}
}

// Start dials the dedicated LISTEN connection and hands it to the receive
// loop, which owns it from then on.
func (l *NotifyListener) Start(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.dsn)
	if err != nil {
		return fmt.Errorf("dial LISTEN connection: %w", err)
	}

	loopCtx, cancel := context.WithCancel(ctx)
	l.stop = cancel
	l.done = make(chan struct{})
	l.started.Store(true)
	l.connected.Store(true)

	go func() {
		defer close(l.done)
		l.run(loopCtx, conn)
	}()

	slog.Info("NotifyListener started")
	return nil
}

// Running reports whether notifications are currently flowing. False before
// Start, after Stop, and while a lost connection is being redialed.
func (l *NotifyListener) Running() bool {
	return l.connected.Load()
}

// Subscribe issues LISTEN for a channel. Idempotent per channel.
func (l *NotifyListener) Subscribe(ctx context.Context, channel string) error {
	l.mu.RLock()
	_, ok := l.active[channel]
	l.mu.RUnlock()
	if ok {
		return nil
	}

	if !l.started.Load() {
		return fmt.Errorf("notify listener is not running")
	}
	if err := l.submit(ctx, "LISTEN "+pgx.Identifier{channel}.Sanitize()); err != nil {
		return fmt.Errorf("LISTEN %s: %w", channel, err)
	}

	l.mu.Lock()
	l.active[channel] = struct{}{}
	l.mu.Unlock()
	slog.Debug("Subscribed to NOTIFY channel", "channel", channel)
	return nil
}

// Unsubscribe issues UNLISTEN for a channel previously subscribed.
func (l *NotifyListener) Unsubscribe(ctx context.Context, channel string) error {
	l.mu.RLock()
	_, ok := l.active[channel]
	l.mu.RUnlock()
	if !ok || !l.started.Load() {
		return nil
	}

	if err := l.submit(ctx, "UNLISTEN "+pgx.Identifier{channel}.Sanitize()); err != nil {
		return fmt.Errorf("UNLISTEN %s: %w", channel, err)
	}

	l.mu.Lock()
	delete(l.active, channel)
	l.mu.Unlock()
	return nil
}

// submit queues a statement for the receive loop and waits for its result.
// During a reconnect window the op stays queued and executes on the fresh
// connection, so callers should bound ctx.
func (l *NotifyListener) submit(ctx context.Context, stmt string) error {
	op := listenOp{stmt: stmt, done: make(chan error, 1)}

	select {
	case l.opCh <- op:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-op.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run is the receive loop. It is the sole owner of the pgx connection:
// it executes queued ops, waits for notifications, redials on link loss,
// and closes the connection when the loop context is cancelled.
func (l *NotifyListener) run(ctx context.Context, conn *pgx.Conn) {
	defer func() {
		if conn != nil {
			_ = conn.Close(context.Background())
		}
	}()

	for {
		if ctx.Err() != nil {
			return
		}

		if conn == nil {
			conn = l.redial(ctx)
			if conn == nil {
				return
			}
		}

		l.applyOps(ctx, conn)

		waitCtx, cancel := context.WithTimeout(ctx, opPollInterval)
		notification, err := conn.WaitForNotification(waitCtx)
		cancel()

		switch {
		case err == nil:
			l.bus.Dispatch(notification.Channel, []byte(notification.Payload))
		case ctx.Err() != nil:
			return
		case waitCtx.Err() != nil:
			// Idle tick; loop back for queued ops.
		default:
			slog.Error("NOTIFY receive error, redialing", "error", err)
			_ = conn.Close(ctx)
			conn = nil
			l.connected.Store(false)
		}
	}
}

// applyOps executes every queued LISTEN/UNLISTEN statement and answers its
// submitter.
func (l *NotifyListener) applyOps(ctx context.Context, conn *pgx.Conn) {
	for {
		select {
		case op := <-l.opCh:
			_, err := conn.Exec(ctx, op.stmt)
			op.done <- err
		default:
			return
		}
	}
}

// redial reconnects with exponential backoff and replays the active channel
// set onto the new connection. Returns nil only when ctx is cancelled.
func (l *NotifyListener) redial(ctx context.Context) *pgx.Conn {
	delay := redialBaseDelay
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(delay):
		}

		conn, err := pgx.Connect(ctx, l.dsn)
		if err != nil {
			slog.Error("LISTEN redial failed", "error", err, "retry_in", delay)
			delay = min(delay*2, redialMaxDelay)
			continue
		}

		l.mu.RLock()
		for ch := range l.active {
			if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{ch}.Sanitize()); err != nil {
				slog.Error("Re-LISTEN after redial failed", "channel", ch, "error", err)
			}
		}
		l.mu.RUnlock()

		l.connected.Store(true)
		slog.Info("NotifyListener reconnected")
		return conn
	}
}

// Stop cancels the receive loop and waits for it to close the connection.
// The wait is bounded by ctx.
func (l *NotifyListener) Stop(ctx context.Context) {
	l.started.Store(false)
	l.connected.Store(false)

	if l.stop != nil {
		l.stop()
	}
	if l.done != nil {
		select {
		case <-l.done:
		case <-ctx.Done():
		}
	}
}
