package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk-priority/internal/events"
)

type recordingRelayer struct {
	mu   sync.Mutex
	keys []string
	err  error
}

func (r *recordingRelayer) Relay(_ context.Context, e events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys = append(r.keys, e.TicketKey)
	return r.err
}

func (r *recordingRelayer) seen() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.keys...)
}

func TestRelayWorker_RelaysDispatchedEvents(t *testing.T) {
	relayer := &recordingRelayer{err: errors.New("ignored")}
	w := NewRelayWorker(relayer, nil, 8)
	d := events.NewInMemoryDispatcher(nil)
	w.RegisterHandlers(d, events.EventTicketPriorityAssigned)
	w.Start()

	ctx := context.Background()
	require.NoError(t, d.Publish(ctx, events.NewEvent(events.EventTicketPriorityAssigned, "TCK-1", nil)))
	require.NoError(t, d.Publish(ctx, events.NewEvent(events.EventTicketPriorityAssigned, "TCK-2", nil)))

	stopCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	require.NoError(t, w.Stop(stopCtx))
	assert.Equal(t, []string{"TCK-1", "TCK-2"}, relayer.seen())

	// events after Stop are dropped without panicking
	require.NoError(t, d.Publish(ctx, events.NewEvent(events.EventTicketPriorityAssigned, "TCK-3", nil)))
	assert.Len(t, relayer.seen(), 2)
	require.NoError(t, w.Stop(stopCtx))
}

func TestRelayWorker_DropsWhenQueueFull(t *testing.T) {
	relayer := &recordingRelayer{}
	w := NewRelayWorker(relayer, nil, 1)

	ctx := context.Background()
	require.NoError(t, w.enqueue(ctx, events.NewEvent(events.EventTicketPriorityAssigned, "TCK-1", nil)))
	require.NoError(t, w.enqueue(ctx, events.NewEvent(events.EventTicketPriorityAssigned, "TCK-2", nil)))

	w.Start()
	stopCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	require.NoError(t, w.Stop(stopCtx))
	assert.Equal(t, []string{"TCK-1"}, relayer.seen())
}
