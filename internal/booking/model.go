package booking

import (
	"strings"
	"time"

	"github.com/portosolutions/tv-mounting/internal/availability"
)

// Step is the wizard position of a booking session.
type Step string

const (
	StepSelectingDateTime Step = "selecting_date_time"
	StepEnteringDetails   Step = "entering_details"
	StepConfirmed         Step = "confirmed"
)

// WallType is the mounting surface the technician should prepare for.
type WallType string

const (
	WallDrywall  WallType = "drywall"
	WallBrick    WallType = "brick"
	WallConcrete WallType = "concrete"
	WallStone    WallType = "stone"
	WallOther    WallType = "other"
)

// WallTypes lists the accepted wall types in display order.
var WallTypes = []WallType{WallDrywall, WallBrick, WallConcrete, WallStone, WallOther}

// Valid reports whether w is one of the enumerated wall types.
func (w WallType) Valid() bool {
	for _, known := range WallTypes {
		if w == known {
			return true
		}
	}
	return false
}

// Field names a single editable draft field.
type Field string

const (
	FieldName           Field = "name"
	FieldEmail          Field = "email"
	FieldPhone          Field = "phone"
	FieldAddress        Field = "address"
	FieldTVSize         Field = "tv_size"
	FieldWallType       Field = "wall_type"
	FieldAdditionalInfo Field = "additional_info"
)

// RequiredFields must all be non-empty before a draft can be submitted.
var RequiredFields = []Field{FieldName, FieldEmail, FieldPhone, FieldAddress, FieldTVSize, FieldWallType}

// Draft holds in-progress booking details.
type Draft struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Address        string   `json:"address"`
	TVSize         string   `json:"tv_size"`
	WallType       WallType `json:"wall_type"`
	AdditionalInfo string   `json:"additional_info"`
	SelectedDate   string   `json:"selected_date,omitempty"`
	SelectedTime   string   `json:"selected_time,omitempty"`
}

// NewDraft returns an empty draft with the form's default wall type.
func NewDraft() Draft {
	return Draft{WallType: WallDrywall}
}

// Value returns the current value of field.
func (d Draft) Value(field Field) (string, bool) {
	switch field {
	case FieldName:
		return d.Name, true
	case FieldEmail:
		return d.Email, true
	case FieldPhone:
		return d.Phone, true
	case FieldAddress:
		return d.Address, true
	case FieldTVSize:
		return d.TVSize, true
	case FieldWallType:
		return string(d.WallType), true
	case FieldAdditionalInfo:
		return d.AdditionalInfo, true
	default:
		return "", false
	}
}

// withField returns a copy of d with field set to value. ok is false when
// the field is unknown or the value is not acceptable for it.
func (d Draft) withField(field Field, value string) (Draft, bool) {
	switch field {
	case FieldName:
		d.Name = value
	case FieldEmail:
		d.Email = value
	case FieldPhone:
		d.Phone = value
	case FieldAddress:
		d.Address = value
	case FieldTVSize:
		d.TVSize = value
	case FieldWallType:
		wt := WallType(strings.ToLower(strings.TrimSpace(value)))
		if value != "" && !wt.Valid() {
			return d, false
		}
		d.WallType = wt
	case FieldAdditionalInfo:
		d.AdditionalInfo = value
	default:
		return d, false
	}
	return d, true
}

// MissingFields lists required fields that are still blank.
func (d Draft) MissingFields() []Field {
	var missing []Field
	for _, f := range RequiredFields {
		if v, _ := d.Value(f); v == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

// State is the full booking wizard state.
type State struct {
	Step      Step  `json:"step"`
	Draft     Draft `json:"draft"`
	Submitted bool  `json:"submitted"`
}

// InitialState is the state of a freshly mounted booking form.
func InitialState() State {
	return State{Step: StepSelectingDateTime, Draft: NewDraft()}
}

// Confirmation is the immutable record emitted when a booking is submitted.
type Confirmation struct {
	BookingID      string    `json:"booking_id"`
	SessionID      string    `json:"session_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	TVSize         string    `json:"tv_size"`
	WallType       WallType  `json:"wall_type"`
	AdditionalInfo string    `json:"additional_info"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	ConfirmedAt    time.Time `json:"confirmed_at"`
}

// Appointment renders the chosen slot the way the confirmation screen does,
// e.g. "Tuesday, June 10, 2025 at 9:00 AM".
func (c Confirmation) Appointment() string {
	day, err := time.Parse(availability.DateLayout, c.Date)
	if err != nil {
		return c.Date + " at " + c.Time
	}
	return day.Format("Monday, January 2, 2006") + " at " + c.Time
}

func newConfirmation(bookingID, sessionID string, d Draft, at time.Time) Confirmation {
	return Confirmation{
		BookingID:      bookingID,
		SessionID:      sessionID,
		Name:           d.Name,
		Email:          d.Email,
		Phone:          d.Phone,
		Address:        d.Address,
		TVSize:         d.TVSize,
		WallType:       d.WallType,
		AdditionalInfo: d.AdditionalInfo,
		Date:           d.SelectedDate,
		Time:           d.SelectedTime,
		ConfirmedAt:    at.UTC(),
	}
}
