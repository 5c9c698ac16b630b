package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/portosolutions/tv-mounting/pkg/logging"
)

// ConfirmationSink receives each confirmed booking exactly once per submit.
// Implementations forward it to whatever downstream system persists or acts on it.
type ConfirmationSink interface {
	Name() string
	Deliver(ctx context.Context, c Confirmation) error
}

// LogSink records confirmations in the structured log.
type LogSink struct {
	logger *logging.Logger
}

// NewLogSink creates a log-only sink.
func NewLogSink(logger *logging.Logger) *LogSink {
	if logger == nil {
		logger = logging.Default()
	}
	return &LogSink{logger: logger}
}

func (s *LogSink) Name() string { return "log" }

func (s *LogSink) Deliver(ctx context.Context, c Confirmation) error {
	s.logger.Info("booking submitted",
		"booking_id", c.BookingID,
		"session_id", c.SessionID,
		"date", c.Date,
		"time", c.Time,
		"wall_type", c.WallType,
		"tv_size", c.TVSize,
	)
	return nil
}

// SinkError reports which sink failed.
type SinkError struct {
	Sink string
	Err  error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("booking: sink %s: %v", e.Sink, e.Err)
}

func (e *SinkError) Unwrap() error { return e.Err }

// MultiSink fans a confirmation out to every sink, continuing past failures.
type MultiSink []ConfirmationSink

func (m MultiSink) Name() string { return "multi" }

// Deliver returns the joined *SinkError values of every failed sink.
func (m MultiSink) Deliver(ctx context.Context, c Confirmation) error {
	var errs []error
	for _, sink := range m {
		if sink == nil {
			continue
		}
		if err := sink.Deliver(ctx, c); err != nil {
			errs = append(errs, &SinkError{Sink: sink.Name(), Err: err})
		}
	}
	return errors.Join(errs...)
}
