package notify

import (
	"context"
	"log/slog"
	"sync"

	"appointment-booking/internal/infra/metrics"
	"appointment-booking/internal/usecase/shared"
)

// Delivery status label values for booking_notifications_total.
const (
	StatusQueued  = "queued"
	StatusDropped = "dropped"
	StatusSent    = "sent"
	StatusFailed  = "failed"
)

// Sink delivers one event to the outside world.
type Sink interface {
	Deliver(ctx context.Context, event shared.BookingEvent) error
}

// Dispatcher is a shared.Notifier backed by a bounded queue and a single
// worker. Notify never blocks: when the queue is full the event is dropped.
type Dispatcher struct {
	sink  Sink
	queue chan shared.BookingEvent

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

var _ shared.Notifier = (*Dispatcher)(nil)

func NewDispatcher(sink Sink, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 1
	}
	return &Dispatcher{
		sink:  sink,
		queue: make(chan shared.BookingEvent, queueSize),
		done:  make(chan struct{}),
	}
}

func (d *Dispatcher) Notify(event shared.BookingEvent) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	kind := string(event.Kind)
	if d.closed {
		metrics.RecordNotification(kind, StatusDropped)
		slog.Warn("notification dropped after shutdown", "event", kind, "booking_id", event.Booking.ID)
		return
	}

	select {
	case d.queue <- event:
		metrics.RecordNotification(kind, StatusQueued)
	default:
		metrics.RecordNotification(kind, StatusDropped)
		slog.Warn("notification queue full, event dropped", "event", kind, "booking_id", event.Booking.ID)
	}
}

// Start runs the worker until Stop drains the queue. ctx is handed to the sink.
func (d *Dispatcher) Start(ctx context.Context) {
	go func() {
		defer close(d.done)
		for event := range d.queue {
			d.deliver(ctx, event)
		}
	}()
}

// Stop closes the queue and waits for queued events to be delivered, or for
// ctx to expire.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) deliver(ctx context.Context, event shared.BookingEvent) {
	kind := string(event.Kind)
	if err := d.sink.Deliver(ctx, event); err != nil {
		metrics.RecordNotification(kind, StatusFailed)
		slog.Error("failed to deliver notification",
			"event", kind,
			"booking_id", event.Booking.ID,
			"error", err.Error())
		return
	}
	metrics.RecordNotification(kind, StatusSent)
}
