package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestHub_PublishReachesOnlyAccountSubscribers(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	alice, cancelAlice := hub.Subscribe("alice")
	defer cancelAlice()
	bob, cancelBob := hub.Subscribe("bob")
	defer cancelBob()

	err := hub.Publish(context.Background(), Event{Type: EventSignedIn, AccountID: "alice"})
	require.NoError(t, err)

	select {
	case e := <-alice:
		assert.Equal(t, EventSignedIn, e.Type)
		assert.Equal(t, "alice", e.AccountID)
	case <-time.After(time.Second):
		t.Fatal("alice did not receive the event")
	}

	select {
	case e := <-bob:
		t.Fatalf("bob received unexpected event %+v", e)
	default:
	}
}

func TestHub_CancelClosesChannelAndIsIdempotent(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	ch, cancel := hub.Subscribe("alice")
	assert.Equal(t, 1, hub.Subscribers("alice"))

	cancel()
	cancel()

	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, hub.Subscribers("alice"))
}

func TestHub_PublishDoesNotBlockOnFullSubscriber(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	_, cancel := hub.Subscribe("alice")
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < subscriberBuffer*3; i++ {
			_ = hub.Publish(context.Background(), Event{Type: EventSignedOut, AccountID: "alice"})
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}
}

func TestHub_CloseEndsSubscriptions(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe("alice")

	hub.Close()
	_, open := <-ch
	assert.False(t, open)

	// cancel after close must not panic
	cancel()

	late, lateCancel := hub.Subscribe("alice")
	defer lateCancel()
	_, open = <-late
	assert.False(t, open)
}
