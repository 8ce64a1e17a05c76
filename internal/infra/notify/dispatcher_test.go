//go:build unit

package notify_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"appointment-booking/internal/infra/metrics"
	"appointment-booking/internal/infra/notify"
	"appointment-booking/internal/usecase/shared"
	"appointment-booking/tests/common/builder"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	mu      sync.Mutex
	events  []shared.BookingEvent
	release chan struct{}
	err     error
}

func (s *recordingSink) Deliver(_ context.Context, event shared.BookingEvent) error {
	if s.release != nil {
		<-s.release
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return s.err
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

func admittedEvent() shared.BookingEvent {
	b := builder.NewBookingBuilder().MustBuildDomain()
	return shared.BookingEvent{Kind: shared.EventBookingAdmitted, Booking: b.Snapshot(), OccurredAt: b.CreatedAt()}
}

func TestDispatcher_DeliversQueuedEventsBeforeStop(t *testing.T) {
	metrics.NotificationsTotal.Reset()
	sink := &recordingSink{}
	d := notify.NewDispatcher(sink, 8)
	d.Start(context.Background())

	for range 3 {
		d.Notify(admittedEvent())
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Stop(ctx))

	assert.Equal(t, 3, sink.count())
	assert.Equal(t, float64(3), testutil.ToFloat64(metrics.NotificationsTotal.WithLabelValues("booking.admitted", notify.StatusSent)))
}

func TestDispatcher_DropsWhenQueueIsFull(t *testing.T) {
	metrics.NotificationsTotal.Reset()
	sink := &recordingSink{release: make(chan struct{})}
	d := notify.NewDispatcher(sink, 1)
	d.Start(context.Background())

	// The worker holds at most one event while blocked in the sink and the
	// queue holds one more; everything else must be dropped without blocking.
	done := make(chan struct{})
	go func() {
		for range 10 {
			d.Notify(admittedEvent())
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked on a full queue")
	}

	close(sink.release)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Stop(ctx))

	delivered := sink.count()
	assert.GreaterOrEqual(t, delivered, 1)
	assert.LessOrEqual(t, delivered, 2)
	assert.Equal(t, float64(10-delivered), testutil.ToFloat64(metrics.NotificationsTotal.WithLabelValues("booking.admitted", notify.StatusDropped)))
}

func TestDispatcher_SinkFailureIsCounted(t *testing.T) {
	metrics.NotificationsTotal.Reset()
	sink := &recordingSink{err: errors.New("smtp unavailable")}
	d := notify.NewDispatcher(sink, 4)
	d.Start(context.Background())

	d.Notify(admittedEvent())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Stop(ctx))

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.NotificationsTotal.WithLabelValues("booking.admitted", notify.StatusFailed)))
}

func TestDispatcher_NotifyAfterStopIsDropped(t *testing.T) {
	sink := &recordingSink{}
	d := notify.NewDispatcher(sink, 4)
	d.Start(context.Background())
	require.NoError(t, d.Stop(context.Background()))

	assert.NotPanics(t, func() { d.Notify(admittedEvent()) })
	assert.Equal(t, 0, sink.count())
}

func TestLogSink_Deliver(t *testing.T) {
	var buf bytes.Buffer
	sink := notify.NewLogSink(slog.New(slog.NewJSONHandler(&buf, nil)))
	event := admittedEvent()

	require.NoError(t, sink.Deliver(context.Background(), event))

	out := buf.String()
	assert.Contains(t, out, `"event":"booking.admitted"`)
	assert.Contains(t, out, event.Booking.ID.String())
	assert.Contains(t, out, `"slot":"10:00"`)
}
