package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/portosolutions/tv-mounting/internal/booking"
	"github.com/portosolutions/tv-mounting/pkg/logging"
)

const bookingAggregate = "booking"

// Publisher emits each confirmed booking as one immutable queue message.
// It is a booking.ConfirmationSink.
type Publisher struct {
	queue  Queue
	logger *logging.Logger
}

// NewPublisher creates a queue-backed publisher.
func NewPublisher(queue Queue, logger *logging.Logger) *Publisher {
	if queue == nil {
		panic("events: queue cannot be nil")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Publisher{queue: queue, logger: logger}
}

func (p *Publisher) Name() string { return "queue" }

func (p *Publisher) Deliver(ctx context.Context, c booking.Confirmation) error {
	env, err := NewEnvelope(bookingAggregate, c.SessionID, NewBookingConfirmedV1(c))
	if err != nil {
		return err
	}
	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("events: marshal envelope: %w", err)
	}
	if err := p.queue.Send(ctx, env.EventType, string(body)); err != nil {
		return fmt.Errorf("events: publish booking confirmed: %w", err)
	}
	p.logger.Debug("booking confirmation published", "event_id", env.EventID, "booking_id", c.BookingID)
	return nil
}

var _ booking.ConfirmationSink = (*Publisher)(nil)
