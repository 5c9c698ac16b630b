package booking

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/portosolutions/tv-mounting/internal/availability"
)

// EventType identifies a user interaction with the booking form.
type EventType string

const (
	EventSelectDate EventType = "select_date"
	EventSelectTime EventType = "select_time"
	EventAdvance    EventType = "advance"
	EventEditField  EventType = "edit_field"
	EventGoBack     EventType = "go_back"
	EventSubmit     EventType = "submit"
	EventRestart    EventType = "restart"
)

// Event is one discrete interaction. Only the fields relevant to Type are read.
type Event struct {
	Type  EventType `json:"type"`
	Date  string    `json:"date,omitempty"`
	Time  string    `json:"time,omitempty"`
	Field Field     `json:"field,omitempty"`
	Value string    `json:"value,omitempty"`
}

// Valid reports whether the event type is known.
func (e Event) Valid() bool {
	switch e.Type {
	case EventSelectDate, EventSelectTime, EventAdvance, EventEditField, EventGoBack, EventSubmit, EventRestart:
		return true
	}
	return false
}

// ParseEvent decodes a JSON event and rejects unknown types.
func ParseEvent(data []byte) (Event, error) {
	var evt Event
	if err := json.Unmarshal(data, &evt); err != nil {
		return Event{}, fmt.Errorf("booking: decode event: %w", err)
	}
	evt.Type = EventType(strings.TrimSpace(string(evt.Type)))
	if !evt.Valid() {
		return Event{}, fmt.Errorf("%w: %q", ErrUnknownEvent, evt.Type)
	}
	return evt, nil
}

// Reasons reported for inert transitions.
const (
	ReasonWrongStep       = "event not accepted in current step"
	ReasonUnknownDate     = "date is not available"
	ReasonNoDate          = "select a date first"
	ReasonUnknownSlot     = "time is not available on the selected date"
	ReasonIncomplete      = "date and time must both be selected"
	ReasonUnknownField    = "field cannot be edited"
	ReasonMissingRequired = "required fields are missing"
	ReasonUnknownEvent    = "unknown event"
)

// Transition is the outcome of reducing one event.
type Transition struct {
	State   State
	Applied bool
	Reason  string
	// Confirmed is set when this transition entered StepConfirmed.
	Confirmed bool
	// Restarted is set when the caller must regenerate availability.
	Restarted bool
}

func inert(s State, reason string) Transition {
	return Transition{State: s, Reason: reason}
}

// CanAdvance reports whether the step-one "Continue" control is enabled.
func CanAdvance(s State) bool {
	return s.Step == StepSelectingDateTime && s.Draft.SelectedDate != "" && s.Draft.SelectedTime != ""
}

// CanSubmit reports whether the step-two "Confirm Booking" control is enabled.
func CanSubmit(s State) bool {
	return s.Step == StepEnteringDetails && len(s.Draft.MissingFields()) == 0
}

// Reduce applies evt to s against the session's availability. Rejected events
// leave the state untouched and report Applied=false; they are never errors.
func Reduce(s State, days availability.Days, evt Event) Transition {
	switch evt.Type {
	case EventSelectDate:
		if s.Step != StepSelectingDateTime {
			return inert(s, ReasonWrongStep)
		}
		if _, ok := days.Find(evt.Date); !ok {
			return inert(s, ReasonUnknownDate)
		}
		s.Draft.SelectedDate = evt.Date
		s.Draft.SelectedTime = ""
		return Transition{State: s, Applied: true}

	case EventSelectTime:
		if s.Step != StepSelectingDateTime {
			return inert(s, ReasonWrongStep)
		}
		if s.Draft.SelectedDate == "" {
			return inert(s, ReasonNoDate)
		}
		day, ok := days.Find(s.Draft.SelectedDate)
		if !ok || !day.HasSlot(evt.Time) {
			return inert(s, ReasonUnknownSlot)
		}
		s.Draft.SelectedTime = evt.Time
		return Transition{State: s, Applied: true}

	case EventAdvance:
		if s.Step != StepSelectingDateTime {
			return inert(s, ReasonWrongStep)
		}
		if !CanAdvance(s) {
			return inert(s, ReasonIncomplete)
		}
		s.Step = StepEnteringDetails
		return Transition{State: s, Applied: true}

	case EventEditField:
		if s.Step != StepEnteringDetails {
			return inert(s, ReasonWrongStep)
		}
		draft, ok := s.Draft.withField(evt.Field, evt.Value)
		if !ok {
			return inert(s, ReasonUnknownField)
		}
		s.Draft = draft
		return Transition{State: s, Applied: true}

	case EventGoBack:
		if s.Step != StepEnteringDetails {
			return inert(s, ReasonWrongStep)
		}
		s.Step = StepSelectingDateTime
		return Transition{State: s, Applied: true}

	case EventSubmit:
		if s.Step != StepEnteringDetails {
			return inert(s, ReasonWrongStep)
		}
		if !CanSubmit(s) {
			return inert(s, ReasonMissingRequired)
		}
		s.Step = StepConfirmed
		s.Submitted = true
		return Transition{State: s, Applied: true, Confirmed: true}

	case EventRestart:
		if s.Step != StepConfirmed {
			return inert(s, ReasonWrongStep)
		}
		return Transition{State: InitialState(), Applied: true, Restarted: true}
	}
	return inert(s, ReasonUnknownEvent)
}
