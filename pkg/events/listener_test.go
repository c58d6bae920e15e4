package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testdb "github.com/vibemonitor/rca/test/database"
)

// TestNotifyListener_EndToEnd exercises the full delivery path: a Publisher
// writing through one connection pool, NOTIFY crossing PostgreSQL, and the
// dedicated LISTEN connection dispatching frames into the Bus.
func TestNotifyListener_EndToEnd(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	client := shared.NewClient(t)

	bus := NewBus()
	listener := NewNotifyListener(shared.ConnString(), bus)
	require.NoError(t, listener.Start(t.Context()))
	t.Cleanup(func() { listener.Stop(t.Context()) })
	bus.SetListener(listener)

	pub := NewPublisher(client.DB())
	turnID := seedTurn(t, client)

	sub, err := bus.Subscribe(t.Context(), TurnChannel(turnID))
	require.NoError(t, err)
	defer bus.Unsubscribe(sub)

	published, err := pub.AppendStatus(t.Context(), turnID, "Starting analysis")
	require.NoError(t, err)

	f := recvFrame(t, sub)
	assert.Equal(t, FrameStatus, f.Type)
	assert.Equal(t, published.Sequence, f.Sequence)
	assert.Equal(t, published.StepID, f.StepID)
	assert.Equal(t, "Starting analysis", f.Content)

	// Terminal frame is NOTIFY-only yet crosses the same path.
	require.NoError(t, pub.PublishError(t.Context(), turnID, "analysis timed out"))
	f = recvFrame(t, sub)
	assert.Equal(t, FrameError, f.Type)
	assert.True(t, f.Terminal())
}

// TestNotifyListener_CrossPoolDelivery simulates two pods: a publisher on one
// connection pool and a subscriber pod whose listener uses a separate
// dedicated connection.
func TestNotifyListener_CrossPoolDelivery(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	publisherClient := shared.NewClient(t)
	subscriberClient := shared.NewClient(t)
	_ = subscriberClient // subscriber pod's pool; LISTEN uses its own conn

	bus := NewBus()
	listener := NewNotifyListener(shared.ConnString(), bus)
	require.NoError(t, listener.Start(t.Context()))
	t.Cleanup(func() { listener.Stop(t.Context()) })
	bus.SetListener(listener)

	pub := NewPublisher(publisherClient.DB())
	turnID := seedTurn(t, publisherClient)

	sub, err := bus.Subscribe(t.Context(), TurnChannel(turnID))
	require.NoError(t, err)
	defer bus.Unsubscribe(sub)

	for i, content := range []string{"Accepted", "Starting analysis", "Consulting logs"} {
		frame, err := pub.AppendStatus(t.Context(), turnID, content)
		require.NoError(t, err)
		require.Equal(t, i+1, frame.Sequence)
	}

	for want := 1; want <= 3; want++ {
		f := recvFrame(t, sub)
		assert.Equal(t, want, f.Sequence, "frames must arrive in persisted order")
	}
}

// TestNotifyListener_UnsubscribeStopsDelivery verifies that after the last
// subscriber leaves, the channel is UNLISTENed and re-subscribing works.
func TestNotifyListener_UnsubscribeStopsDelivery(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	client := shared.NewClient(t)

	bus := NewBus()
	listener := NewNotifyListener(shared.ConnString(), bus)
	require.NoError(t, listener.Start(t.Context()))
	t.Cleanup(func() { listener.Stop(t.Context()) })
	bus.SetListener(listener)

	pub := NewPublisher(client.DB())
	turnID := seedTurn(t, client)
	ch := TurnChannel(turnID)

	sub, err := bus.Subscribe(t.Context(), ch)
	require.NoError(t, err)
	bus.Unsubscribe(sub)

	// The UNLISTEN is asynchronous; wait until it lands.
	require.Eventually(t, func() bool {
		listener.mu.RLock()
		defer listener.mu.RUnlock()
		_, ok := listener.active[ch]
		return !ok
	}, 5*time.Second, 50*time.Millisecond)

	// A fresh subscription re-establishes LISTEN and receives frames again.
	sub2, err := bus.Subscribe(t.Context(), ch)
	require.NoError(t, err)
	defer bus.Unsubscribe(sub2)

	_, err = pub.AppendStatus(t.Context(), turnID, "back again")
	require.NoError(t, err)
	f := recvFrame(t, sub2)
	assert.Equal(t, "back again", f.Content)
}

// TestNotifyListener_RedialsAfterConnectionLoss kills the dedicated LISTEN
// backend server-side and verifies the listener reports the outage, redials,
// replays its LISTEN set, and delivery resumes.
func TestNotifyListener_RedialsAfterConnectionLoss(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	client := shared.NewClient(t)

	bus := NewBus()
	listener := NewNotifyListener(shared.ConnString(), bus)
	require.NoError(t, listener.Start(t.Context()))
	t.Cleanup(func() { listener.Stop(t.Context()) })
	bus.SetListener(listener)

	pub := NewPublisher(client.DB())
	turnID := seedTurn(t, client)

	sub, err := bus.Subscribe(t.Context(), TurnChannel(turnID))
	require.NoError(t, err)
	defer bus.Unsubscribe(sub)

	first, err := pub.AppendStatus(t.Context(), turnID, "before the drop")
	require.NoError(t, err)
	assert.Equal(t, first.Content, recvFrame(t, sub).Content)

	// Terminate the LISTEN session from a pooled connection. The listener's
	// backend is the only one whose last statement is a LISTEN.
	_, err = client.DB().ExecContext(t.Context(),
		`SELECT pg_terminate_backend(pid) FROM pg_stat_activity
		 WHERE pid <> pg_backend_pid() AND query ILIKE 'listen %'`)
	require.NoError(t, err)

	require.Eventually(t, func() bool { return !listener.Running() },
		5*time.Second, 25*time.Millisecond, "listener should notice the dropped connection")
	require.Eventually(t, listener.Running,
		15*time.Second, 100*time.Millisecond, "listener should redial")

	_, err = pub.AppendStatus(t.Context(), turnID, "after the redial")
	require.NoError(t, err)
	assert.Equal(t, "after the redial", recvFrame(t, sub).Content)
}
