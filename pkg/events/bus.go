package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// subscriptionBuffer is the per-subscriber frame buffer. A subscriber that
// falls further behind than this is cut off rather than allowed to stall the
// dispatch loop; it can reconnect and replay from the persisted steps.
const subscriptionBuffer = 64

// listenTimeout bounds how long a LISTEN command may block when subscribing
// to a new PG channel. Without this, a stalled connection would block the
// subscribing goroutine indefinitely.
const listenTimeout = 10 * time.Second

// Subscription is one subscriber's view of a turn channel. Frames are read
// from Frames(); Done() fires when the subscription is torn down, either by
// Unsubscribe or because the subscriber overflowed its buffer.
type Subscription struct {
	channel    string
	frames     chan Frame
	done       chan struct{}
	closeOnce  sync.Once
	overflowed atomic.Bool
}

// Frames returns the channel live frames are delivered on.
func (s *Subscription) Frames() <-chan Frame { return s.frames }

// Done returns a channel closed when the subscription ends.
func (s *Subscription) Done() <-chan struct{} { return s.done }

// Overflowed reports whether the subscription was cut off for falling behind.
func (s *Subscription) Overflowed() bool { return s.overflowed.Load() }

func (s *Subscription) close() {
	s.closeOnce.Do(func() { close(s.done) })
}

// Bus fans NOTIFY payloads out to local in-process subscribers. Each Go
// process (pod) has one Bus instance; the NotifyListener feeds it frames
// arriving from any pod's Publisher.
type Bus struct {
	mu   sync.RWMutex
	subs map[string]map[*Subscription]struct{}

	// NotifyListener for dynamic LISTEN/UNLISTEN (set after construction).
	listener   *NotifyListener
	listenerMu sync.RWMutex
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[string]map[*Subscription]struct{})}
}

// SetListener sets the NotifyListener for dynamic LISTEN/UNLISTEN.
// Called once during startup after both Bus and NotifyListener are created.
func (b *Bus) SetListener(l *NotifyListener) {
	b.listenerMu.Lock()
	defer b.listenerMu.Unlock()
	b.listener = l
}

// Subscribe registers a new subscriber for a channel and starts LISTEN if it
// is the first one. LISTEN completes before Subscribe returns — this
// guarantees that a replay started afterwards runs with LISTEN already
// active, closing the gap where frames published between replay and LISTEN
// would be lost.
func (b *Bus) Subscribe(ctx context.Context, channel string) (*Subscription, error) {
	sub := &Subscription{
		channel: channel,
		frames:  make(chan Frame, subscriptionBuffer),
		done:    make(chan struct{}),
	}

	b.mu.Lock()
	needsListen := false
	if _, exists := b.subs[channel]; !exists {
		b.subs[channel] = make(map[*Subscription]struct{})
		needsListen = true
	}
	b.subs[channel][sub] = struct{}{}
	b.mu.Unlock()

	if needsListen {
		b.listenerMu.RLock()
		l := b.listener
		b.listenerMu.RUnlock()
		if l != nil {
			listenCtx, cancel := context.WithTimeout(ctx, listenTimeout)
			defer cancel()
			if err := l.Subscribe(listenCtx, channel); err != nil {
				slog.Error("Failed to LISTEN on channel", "channel", channel, "error", err)
				b.teardownChannel(channel)
				return nil, fmt.Errorf("LISTEN on channel %s: %w", channel, err)
			}
		}
	}

	return sub, nil
}

// Unsubscribe removes a subscriber and stops LISTEN if it was the last one.
func (b *Bus) Unsubscribe(sub *Subscription) {
	b.mu.Lock()
	if set, exists := b.subs[sub.channel]; exists {
		delete(set, sub)
		if len(set) == 0 {
			delete(b.subs, sub.channel)
			b.stopListen(sub.channel)
		}
	}
	b.mu.Unlock()

	sub.close()
}

// stopListen issues UNLISTEN asynchronously. The goroutine re-checks b.subs
// before the UNLISTEN to prevent a race where a rapid unsubscribe/resubscribe
// cycle would drop an active LISTEN:
//
//	subscribe   → LISTEN active
//	unsubscribe → goroutine: UNLISTEN (deferred)
//	resubscribe → channel re-added to b.subs
//	goroutine   → sees resubscribed → skips UNLISTEN
//
// Callers hold b.mu.
func (b *Bus) stopListen(channel string) {
	b.listenerMu.RLock()
	l := b.listener
	b.listenerMu.RUnlock()
	if l == nil {
		return
	}
	go func() {
		b.mu.RLock()
		_, resubscribed := b.subs[channel]
		b.mu.RUnlock()
		if resubscribed {
			return
		}
		if err := l.Unsubscribe(context.Background(), channel); err != nil {
			slog.Error("Failed to UNLISTEN channel", "channel", channel, "error", err)
		}
	}()
}

// teardownChannel removes ALL subscribers from a channel after a LISTEN
// failure. Between creating the channel entry and LISTEN completing, other
// goroutines may have subscribed and, seeing the entry, skipped LISTEN —
// those subscriptions would be silently dead. They are closed here so their
// readers observe Done and can fall back to polling.
func (b *Bus) teardownChannel(channel string) {
	b.mu.Lock()
	set := b.subs[channel]
	delete(b.subs, channel)
	b.mu.Unlock()

	for sub := range set {
		sub.close()
	}
}

// Dispatch decodes a NOTIFY payload and fans it out to local subscribers of
// the channel. Called only from the NotifyListener receive loop, which is a
// single goroutine — subscription teardown on overflow relies on that.
func (b *Bus) Dispatch(channel string, payload []byte) {
	var frame Frame
	if err := json.Unmarshal(payload, &frame); err != nil {
		slog.Warn("Discarding malformed NOTIFY payload", "channel", channel, "error", err)
		return
	}

	b.mu.RLock()
	set := b.subs[channel]
	subs := make([]*Subscription, 0, len(set))
	for sub := range set {
		subs = append(subs, sub)
	}
	b.mu.RUnlock()

	for _, sub := range subs {
		select {
		case <-sub.done:
			continue
		case sub.frames <- frame:
		default:
			// Subscriber fell behind. Cut it off rather than block the
			// dispatch loop; the reader sees Done + Overflowed and reports
			// backpressure to its client.
			sub.overflowed.Store(true)
			slog.Warn("Dropping slow stream subscriber", "channel", channel)
			b.Unsubscribe(sub)
		}
	}
}

// subscriberCount returns the number of subscribers for a channel.
// Unexported — used by tests to poll instead of sleeping.
func (b *Bus) subscriberCount(channel string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[channel])
}
