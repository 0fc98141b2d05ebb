package realtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesSubscriber(t *testing.T) {
	hub := NewHub()

	events, cancel := hub.Subscribe("reviews")
	defer cancel()

	hub.Publish(Event{Table: "reviews", Action: ActionInsert, ID: "r1"})

	select {
	case event := <-events:
		assert.Equal(t, "reviews", event.Table)
		assert.Equal(t, ActionInsert, event.Action)
		assert.Equal(t, "r1", event.ID)
	case <-time.After(time.Second):
		t.Fatal("expected event, got none")
	}
}

func TestHub_TableIsolation(t *testing.T) {
	hub := NewHub()

	events, cancel := hub.Subscribe("polls")
	defer cancel()

	hub.Publish(Event{Table: "reviews", Action: ActionInsert, ID: "r1"})

	select {
	case event := <-events:
		t.Fatalf("unexpected event for other table: %+v", event)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_CancelStopsDelivery(t *testing.T) {
	hub := NewHub()

	_, cancel := hub.Subscribe("vendors")
	require.Equal(t, 1, hub.SubscriberCount("vendors"))

	cancel()
	assert.Equal(t, 0, hub.SubscriberCount("vendors"))

	// publishing with no subscribers must not panic or block
	hub.Publish(Event{Table: "vendors", Action: ActionUpdate, ID: "v1"})
}

func TestHub_PublishNeverBlocks(t *testing.T) {
	hub := NewHub()

	_, cancel := hub.Subscribe("poll_votes")
	defer cancel()

	// overflow the subscriber buffer without draining it
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			hub.Publish(Event{Table: "poll_votes", Action: ActionInsert})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a full subscriber")
	}
}

func TestHub_MultipleSubscribers(t *testing.T) {
	hub := NewHub()

	first, cancelFirst := hub.Subscribe("polls")
	defer cancelFirst()
	second, cancelSecond := hub.Subscribe("polls")
	defer cancelSecond()

	hub.Publish(Event{Table: "polls", Action: ActionDelete, ID: "p1"})

	for _, events := range []<-chan Event{first, second} {
		select {
		case event := <-events:
			assert.Equal(t, "p1", event.ID)
		case <-time.After(time.Second):
			t.Fatal("subscriber missed the event")
		}
	}
}
