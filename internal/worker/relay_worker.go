package worker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-priority/internal/events"
)

const (
	defaultQueueSize    = 256
	defaultRelayTimeout = 5 * time.Second
)

// Relayer delivers a single event to an external sink.
type Relayer interface {
	Relay(ctx context.Context, event events.Event) error
}

// RelayWorker moves dispatched events onto a queue and relays them from a
// background goroutine, so request handlers never wait on the broker.
type RelayWorker struct {
	relayer Relayer
	logger  *zap.Logger
	timeout time.Duration

	mu     sync.RWMutex
	queue  chan events.Event
	closed bool
	done   chan struct{}
}

// NewRelayWorker builds a worker with a bounded queue. A full queue drops events.
func NewRelayWorker(relayer Relayer, logger *zap.Logger, queueSize int) *RelayWorker {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RelayWorker{
		relayer: relayer,
		logger:  logger,
		timeout: defaultRelayTimeout,
		queue:   make(chan events.Event, queueSize),
		done:    make(chan struct{}),
	}
}

// RegisterHandlers subscribes the worker to the given event types.
func (w *RelayWorker) RegisterHandlers(dispatcher events.Dispatcher, types ...events.EventType) {
	if dispatcher == nil {
		return
	}
	for _, t := range types {
		dispatcher.Subscribe(t, w.enqueue)
	}
}

func (w *RelayWorker) enqueue(_ context.Context, event events.Event) error {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		w.logger.Warn("relay worker stopped, dropping event", zap.String("event_id", event.ID))
		return nil
	}
	select {
	case w.queue <- event:
	default:
		w.logger.Warn("relay queue full, dropping event",
			zap.String("event_id", event.ID),
			zap.String("event_type", string(event.Type)))
	}
	return nil
}

// Start drains the queue until Stop is called.
func (w *RelayWorker) Start() {
	go func() {
		defer close(w.done)
		for event := range w.queue {
			w.relay(event)
		}
	}()
}

func (w *RelayWorker) relay(event events.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()
	if err := w.relayer.Relay(ctx, event); err != nil {
		w.logger.Warn("event relay failed",
			zap.String("event_id", event.ID),
			zap.String("event_type", string(event.Type)),
			zap.Error(err))
	}
}

// Stop closes the queue and waits for queued events to be relayed or ctx to expire.
func (w *RelayWorker) Stop(ctx context.Context) error {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.queue)
	}
	w.mu.Unlock()

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
