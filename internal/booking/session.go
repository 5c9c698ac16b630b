package booking

import (
	"time"

	"github.com/portosolutions/tv-mounting/internal/availability"
)

// Session is one visitor's booking wizard: the availability generated when it
// started plus the current state. Sessions are independent of one another.
type Session struct {
	ID           string            `json:"id"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	Availability availability.Days `json:"availability"`
	State        State             `json:"state"`
	Confirmation *Confirmation     `json:"confirmation,omitempty"`
}

// View is the client-facing projection of a session, including the gating
// predicates that drive the form controls.
type View struct {
	SessionID    string            `json:"session_id"`
	Step         Step              `json:"step"`
	Draft        Draft             `json:"draft"`
	Submitted    bool              `json:"submitted"`
	Availability availability.Days `json:"availability"`
	Slots        []string          `json:"slots"`
	CanAdvance   bool              `json:"can_advance"`
	CanSubmit    bool              `json:"can_submit"`
	Missing      []Field           `json:"missing_fields,omitempty"`
	WallTypes    []WallType        `json:"wall_types"`
	Confirmation *Confirmation     `json:"confirmation,omitempty"`
}

// View builds the projection for s.
func (s *Session) View() View {
	v := View{
		SessionID:    s.ID,
		Step:         s.State.Step,
		Draft:        s.State.Draft,
		Submitted:    s.State.Submitted,
		Availability: s.Availability,
		Slots:        []string{},
		CanAdvance:   CanAdvance(s.State),
		CanSubmit:    CanSubmit(s.State),
		WallTypes:    WallTypes,
		Confirmation: s.Confirmation,
	}
	if day, ok := s.Availability.Find(s.State.Draft.SelectedDate); ok {
		v.Slots = day.Slots
	}
	if s.State.Step == StepEnteringDetails {
		v.Missing = s.State.Draft.MissingFields()
	}
	return v
}
