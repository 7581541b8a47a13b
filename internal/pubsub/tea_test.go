package pubsub

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListenCmd_ReturnsEventAsMsg(t *testing.T) {
	broker := NewBroker[string]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := broker.Subscribe(ctx)
	broker.Publish(CreatedEvent, "entry")

	msg := ListenCmd(ctx, ch)()
	event, ok := msg.(Event[string])
	require.True(t, ok, "msg should be Event[string]")
	require.Equal(t, "entry", event.Payload)
}

func TestListenCmd_NilOnClosedChannel(t *testing.T) {
	ch := make(chan Event[string])
	close(ch)
	require.Nil(t, ListenCmd(context.Background(), ch)())
}

func TestListenCmd_NilOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ch := make(chan Event[string])
	require.Nil(t, ListenCmd(ctx, ch)())
}

func TestContinuousListener_DeliversInOrder(t *testing.T) {
	broker := NewBroker[int]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listener := NewContinuousListener(ctx, broker)
	for i := 1; i <= 3; i++ {
		broker.Publish(UpdatedEvent, i)
	}

	for want := 1; want <= 3; want++ {
		event, ok := listener.Listen()().(Event[int])
		require.True(t, ok)
		require.Equal(t, want, event.Payload)
	}
}
