package booking

import (
	"context"
	"errors"
	"hash/fnv"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/portosolutions/tv-mounting/internal/availability"
	"github.com/portosolutions/tv-mounting/internal/observability/metrics"
	"github.com/portosolutions/tv-mounting/pkg/logging"
)

var bookingTracer = otel.Tracer("tvmount.internal.booking")

// AvailabilitySource produces a fresh availability sequence for a session.
type AvailabilitySource interface {
	Generate(now time.Time) availability.Days
}

// Service owns booking sessions: it generates availability when a session
// starts, reduces events against it, and hands confirmations to the sink.
type Service struct {
	store   SessionStore
	source  AvailabilitySource
	sink    ConfirmationSink
	metrics *metrics.BookingMetrics
	logger  *logging.Logger
	now     func() time.Time
	newID   func() string

	// Events for one session are applied one at a time within this process.
	locks [32]sync.Mutex
}

// Option customizes a Service.
type Option func(*Service)

// WithSink sets the confirmation sink. The default only logs.
func WithSink(sink ConfirmationSink) Option {
	return func(s *Service) {
		if sink != nil {
			s.sink = sink
		}
	}
}

// WithMetrics attaches Prometheus metrics.
func WithMetrics(m *metrics.BookingMetrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides session and booking id generation.
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// NewService constructs a booking service.
func NewService(store SessionStore, source AvailabilitySource, logger *logging.Logger, opts ...Option) *Service {
	if store == nil {
		panic("booking: session store required")
	}
	if source == nil {
		panic("booking: availability source required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	s := &Service{
		store:  store,
		source: source,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
	s.sink = NewLogSink(logger)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) stripe(id string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return &s.locks[h.Sum32()%uint32(len(s.locks))]
}

func (s *Service) lock(id string) func() {
	mu := s.stripe(id)
	mu.Lock()
	return mu.Unlock
}

func (s *Service) generate(now time.Time) availability.Days {
	days := s.source.Generate(now)
	for _, d := range days {
		s.metrics.ObserveSlots(len(d.Slots))
	}
	return days
}

// Start opens a new session with freshly generated availability.
func (s *Service) Start(ctx context.Context) (*Session, error) {
	ctx, span := bookingTracer.Start(ctx, "booking.start")
	defer span.End()

	now := s.now().UTC()
	session := &Session{
		ID:           s.newID(),
		CreatedAt:    now,
		UpdatedAt:    now,
		Availability: s.generate(now),
		State:        InitialState(),
	}
	span.SetAttributes(
		attribute.String("booking.session_id", session.ID),
		attribute.Int("booking.available_days", len(session.Availability)),
	)

	if err := s.store.Save(ctx, session); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "save session")
		return nil, err
	}
	s.metrics.ObserveSession("started")
	s.logger.Info("booking session started", "session_id", session.ID, "available_days", len(session.Availability))
	return session, nil
}

// Get loads a session.
func (s *Service) Get(ctx context.Context, id string) (*Session, error) {
	return s.store.Get(ctx, id)
}

// Apply reduces evt against the session. Inert events return the unchanged
// session with Transition.Applied=false and a nil error.
func (s *Service) Apply(ctx context.Context, id string, evt Event) (*Session, Transition, error) {
	ctx, span := bookingTracer.Start(ctx, "booking.apply")
	defer span.End()
	span.SetAttributes(
		attribute.String("booking.session_id", id),
		attribute.String("booking.event", string(evt.Type)),
	)

	if !evt.Valid() {
		return nil, Transition{}, ErrUnknownEvent
	}

	session, tr, err := s.reduce(ctx, id, evt)
	if err != nil {
		if !errors.Is(err, ErrSessionNotFound) {
			span.RecordError(err)
			span.SetStatus(codes.Error, "apply event")
		}
		return nil, Transition{}, err
	}
	span.SetAttributes(attribute.Bool("booking.applied", tr.Applied))

	// The session lock is released before delivery.
	if tr.Confirmed && session.Confirmation != nil {
		s.metrics.ObserveConfirmation()
		s.deliver(ctx, *session.Confirmation)
	}
	return session, tr, nil
}

// reduce loads, transitions and saves the session under its lock.
func (s *Service) reduce(ctx context.Context, id string, evt Event) (*Session, Transition, error) {
	unlock := s.lock(id)
	defer unlock()

	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, Transition{}, err
	}

	tr := Reduce(session.State, session.Availability, evt)
	s.metrics.ObserveTransition(string(evt.Type), tr.Applied)
	if !tr.Applied {
		s.logger.Debug("booking event rejected", "session_id", id, "event", evt.Type, "reason", tr.Reason)
		return session, tr, nil
	}

	now := s.now().UTC()
	session.State = tr.State
	session.UpdatedAt = now

	switch {
	case tr.Restarted:
		session.Availability = s.generate(now)
		session.Confirmation = nil
		s.metrics.ObserveSession("restarted")
	case tr.Confirmed:
		c := newConfirmation(s.newID(), session.ID, session.State.Draft, now)
		session.Confirmation = &c
	}

	if err := s.store.Save(ctx, session); err != nil {
		return nil, Transition{}, err
	}
	return session, tr, nil
}

// deliver hands the confirmation downstream. Failures are logged and counted;
// the local confirmation stands regardless.
func (s *Service) deliver(ctx context.Context, c Confirmation) {
	err := s.sink.Deliver(ctx, c)
	if err == nil {
		return
	}
	errs := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	}
	for _, e := range errs {
		name := s.sink.Name()
		var sinkErr *SinkError
		if errors.As(e, &sinkErr) {
			name = sinkErr.Sink
		}
		s.metrics.ObserveSinkFailure(name)
	}
	s.logger.Error("confirmation delivery failed", "booking_id", c.BookingID, "session_id", c.SessionID, "error", err)
}

// Abandon discards a session that was never (or already) confirmed.
func (s *Service) Abandon(ctx context.Context, id string) error {
	ctx, span := bookingTracer.Start(ctx, "booking.abandon")
	defer span.End()
	span.SetAttributes(attribute.String("booking.session_id", id))

	unlock := s.lock(id)
	defer unlock()

	if err := s.store.Delete(ctx, id); err != nil {
		span.RecordError(err)
		return err
	}
	s.metrics.ObserveSession("abandoned")
	s.logger.Info("booking session abandoned", "session_id", id)
	return nil
}
