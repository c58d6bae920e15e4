package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMarshal(t *testing.T, frame Frame) []byte {
	t.Helper()
	data, err := json.Marshal(frame)
	require.NoError(t, err)
	return data
}

func recvFrame(t *testing.T, sub *Subscription) Frame {
	t.Helper()
	select {
	case f := <-sub.Frames():
		return f
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for frame")
		return Frame{}
	}
}

func TestBus_SubscribeAndDispatch(t *testing.T) {
	bus := NewBus()
	sub, err := bus.Subscribe(t.Context(), TurnChannel("t1"))
	require.NoError(t, err)
	defer bus.Unsubscribe(sub)

	bus.Dispatch(TurnChannel("t1"), mustMarshal(t, Frame{
		Type: FrameStatus, TurnID: "t1", Sequence: 1, Content: "Starting analysis",
	}))

	f := recvFrame(t, sub)
	assert.Equal(t, FrameStatus, f.Type)
	assert.Equal(t, 1, f.Sequence)
	assert.Equal(t, "Starting analysis", f.Content)
}

func TestBus_DispatchOnlyMatchingChannel(t *testing.T) {
	bus := NewBus()
	sub, err := bus.Subscribe(t.Context(), TurnChannel("t1"))
	require.NoError(t, err)
	defer bus.Unsubscribe(sub)

	bus.Dispatch(TurnChannel("other"), mustMarshal(t, Frame{Type: FrameStatus, TurnID: "other", Sequence: 1}))

	select {
	case f := <-sub.Frames():
		t.Fatalf("unexpected frame delivered: %+v", f)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestBus_MalformedPayloadIsDiscarded(t *testing.T) {
	bus := NewBus()
	sub, err := bus.Subscribe(t.Context(), TurnChannel("t1"))
	require.NoError(t, err)
	defer bus.Unsubscribe(sub)

	bus.Dispatch(TurnChannel("t1"), []byte("{not json"))

	select {
	case f := <-sub.Frames():
		t.Fatalf("unexpected frame delivered: %+v", f)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus()
	ch := TurnChannel("t1")
	sub, err := bus.Subscribe(t.Context(), ch)
	require.NoError(t, err)
	assert.Equal(t, 1, bus.subscriberCount(ch))

	bus.Unsubscribe(sub)
	assert.Equal(t, 0, bus.subscriberCount(ch))

	select {
	case <-sub.Done():
	default:
		t.Fatal("Done should be closed after Unsubscribe")
	}
	assert.False(t, sub.Overflowed())
}

func TestBus_SlowSubscriberIsCutOff(t *testing.T) {
	bus := NewBus()
	ch := TurnChannel("t1")
	sub, err := bus.Subscribe(t.Context(), ch)
	require.NoError(t, err)

	fast, err := bus.Subscribe(t.Context(), ch)
	require.NoError(t, err)
	defer bus.Unsubscribe(fast)
	go func() {
		for range fast.Frames() {
		}
	}()

	// Never read from sub — fill its buffer past capacity.
	for i := 1; i <= subscriptionBuffer+1; i++ {
		bus.Dispatch(ch, mustMarshal(t, Frame{Type: FrameStatus, TurnID: "t1", Sequence: i}))
	}

	select {
	case <-sub.Done():
	case <-time.After(time.Second):
		t.Fatal("slow subscriber was not cut off")
	}
	assert.True(t, sub.Overflowed())
	assert.Equal(t, 1, bus.subscriberCount(ch))
}

func TestBus_MultipleSubscribersReceiveSameFrame(t *testing.T) {
	bus := NewBus()
	ch := TurnChannel("t1")
	sub1, err := bus.Subscribe(t.Context(), ch)
	require.NoError(t, err)
	defer bus.Unsubscribe(sub1)
	sub2, err := bus.Subscribe(t.Context(), ch)
	require.NoError(t, err)
	defer bus.Unsubscribe(sub2)

	bus.Dispatch(ch, mustMarshal(t, Frame{Type: FrameComplete, TurnID: "t1", Content: "done"}))

	f1 := recvFrame(t, sub1)
	f2 := recvFrame(t, sub2)
	assert.Equal(t, f1, f2)
	assert.True(t, f1.Terminal())
}
