package leads

import (
	"net/mail"
	"strings"
	"time"
)

// ServiceInterest is the contact form's "service needed" choice.
type ServiceInterest string

const (
	ServiceStandard   ServiceInterest = "standard"
	ServicePremium    ServiceInterest = "premium"
	ServiceCustom     ServiceInterest = "custom"
	ServiceCommercial ServiceInterest = "commercial"
	ServiceOther      ServiceInterest = "other"
)

// ServiceInterests lists the accepted values in form order.
var ServiceInterests = []ServiceInterest{ServiceStandard, ServicePremium, ServiceCustom, ServiceCommercial, ServiceOther}

// Label is the human readable option text.
func (s ServiceInterest) Label() string {
	switch s {
	case ServiceStandard:
		return "Standard TV Mounting"
	case ServicePremium:
		return "Premium TV Mounting"
	case ServiceCustom:
		return "Custom Solution"
	case ServiceCommercial:
		return "Commercial Installation"
	case ServiceOther:
		return "Other / Not Sure"
	default:
		return string(s)
	}
}

func (s ServiceInterest) valid() bool {
	for _, known := range ServiceInterests {
		if s == known {
			return true
		}
	}
	return false
}

// Lead is a quote request from the contact form.
type Lead struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone,omitempty"`
	Service   ServiceInterest `json:"service"`
	Message   string          `json:"message,omitempty"`
	Source    string          `json:"source"`
	CreatedAt time.Time       `json:"created_at"`
}

// CreateLeadRequest represents the request body for creating a lead
type CreateLeadRequest struct {
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Phone   string          `json:"phone"`
	Service ServiceInterest `json:"service"`
	Message string          `json:"message"`
	Source  string          `json:"source"`
}

// Normalize trims input and applies the form defaults.
func (r *CreateLeadRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Message = strings.TrimSpace(r.Message)
	r.Service = ServiceInterest(strings.ToLower(strings.TrimSpace(string(r.Service))))
	if r.Service == "" {
		r.Service = ServiceStandard
	}
	if r.Source = strings.TrimSpace(r.Source); r.Source == "" {
		r.Source = "contact_form"
	}
}

// Validate validates the create lead request. Name and email are required
// on the form; phone and message are optional.
func (r *CreateLeadRequest) Validate() error {
	if r.Name == "" {
		return ErrInvalidName
	}
	if r.Email == "" {
		return ErrInvalidEmail
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return ErrInvalidEmail
	}
	if !r.Service.valid() {
		return ErrUnknownService
	}
	return nil
}
