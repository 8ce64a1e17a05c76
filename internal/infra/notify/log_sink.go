package notify

import (
	"context"
	"log/slog"

	"appointment-booking/internal/usecase/shared"
)

// LogSink writes events to a structured logger. It stands in for e-mail or
// calendar delivery, which this service does not perform.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Deliver(ctx context.Context, event shared.BookingEvent) error {
	b := event.Booking
	s.logger.InfoContext(ctx, "booking notification",
		"event", string(event.Kind),
		"booking_id", b.ID,
		"email", b.Email,
		"date", b.Date,
		"slot", b.Slot,
		"status", b.Status.String(),
		"occurred_at", event.OccurredAt)
	return nil
}
