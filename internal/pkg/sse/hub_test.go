package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubPublishDelivers(t *testing.T) {
	h := NewHub()

	ch, cleanup := h.Subscribe(AdminStream)
	defer cleanup()

	h.Publish(AdminStream, Event{Stream: AdminStream, Event: "attendanceMarked", Data: "x"})

	select {
	case ev := <-ch:
		assert.Equal(t, "attendanceMarked", ev.Event)
	default:
		t.Fatal("expected event to be delivered")
	}
}

func TestHubFullChannelDoesNotBlock(t *testing.T) {
	h := NewHub()

	ch, cleanup := h.Subscribe("emp-1")
	defer cleanup()

	// Fill the buffer and then publish once more; the extra event is
	// dropped instead of blocking the publisher.
	for i := 0; i < cap(ch)+5; i++ {
		h.Publish("emp-1", Event{Stream: "emp-1", Event: "newLeave"})
	}

	assert.Equal(t, cap(ch), len(ch))
}

func TestHubCleanupRemovesSubscriber(t *testing.T) {
	h := NewHub()

	_, cleanup := h.Subscribe("emp-2")
	require.Equal(t, 1, h.SubscriberCount("emp-2"))

	cleanup()
	assert.Equal(t, 0, h.SubscriberCount("emp-2"))
}

func TestHubPublishToMany(t *testing.T) {
	h := NewHub()

	adminCh, adminCleanup := h.Subscribe(AdminStream)
	defer adminCleanup()
	empCh, empCleanup := h.Subscribe("emp-3")
	defer empCleanup()

	h.PublishToMany([]string{AdminStream, "emp-3"}, Event{Event: "leaveStatusChanged"})

	assert.Equal(t, 1, len(adminCh))
	assert.Equal(t, 1, len(empCh))
	ev := <-empCh
	assert.Equal(t, "emp-3", ev.Stream)
}
