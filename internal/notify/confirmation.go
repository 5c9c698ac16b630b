package notify

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/portosolutions/tv-mounting/internal/booking"
	"github.com/portosolutions/tv-mounting/pkg/logging"
)

// ConfirmationNotifier emails the customer (and optionally the operator
// inbox) when a booking is confirmed. It is a booking.ConfirmationSink.
type ConfirmationNotifier struct {
	email         EmailSender
	businessName  string
	operatorEmail string
	logger        *logging.Logger
}

// NotifierConfig configures ConfirmationNotifier.
type NotifierConfig struct {
	BusinessName  string
	OperatorEmail string
}

// NewConfirmationNotifier creates a notifier. A nil sender falls back to the stub.
func NewConfirmationNotifier(email EmailSender, cfg NotifierConfig, logger *logging.Logger) *ConfirmationNotifier {
	if logger == nil {
		logger = logging.Default()
	}
	if email == nil {
		email = NewStubEmailSender(logger)
	}
	if cfg.BusinessName == "" {
		cfg.BusinessName = DefaultFromName
	}
	return &ConfirmationNotifier{
		email:         email,
		businessName:  cfg.BusinessName,
		operatorEmail: strings.TrimSpace(cfg.OperatorEmail),
		logger:        logger,
	}
}

func (n *ConfirmationNotifier) Name() string { return "email" }

// Deliver sends the customer confirmation, then the operator copy.
func (n *ConfirmationNotifier) Deliver(ctx context.Context, c booking.Confirmation) error {
	var errs []error
	if err := n.email.Send(ctx, CustomerConfirmationEmail(c, n.businessName)); err != nil {
		errs = append(errs, fmt.Errorf("notify: customer confirmation: %w", err))
	}
	if n.operatorEmail != "" {
		if err := n.email.Send(ctx, OperatorBookingEmail(c, n.operatorEmail)); err != nil {
			errs = append(errs, fmt.Errorf("notify: operator notification: %w", err))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	n.logger.Debug("booking confirmation emailed", "booking_id", c.BookingID)
	return nil
}

// CustomerConfirmationEmail builds the email the customer receives.
func CustomerConfirmationEmail(c booking.Confirmation, businessName string) EmailMessage {
	appointment := c.Appointment()

	var text strings.Builder
	fmt.Fprintf(&text, "Hi %s,\n\n", c.Name)
	fmt.Fprintf(&text, "Your TV mounting service has been scheduled for %s.\n\n", appointment)
	fmt.Fprintf(&text, "Address: %s\n", c.Address)
	fmt.Fprintf(&text, "TV size: %s\"\n", c.TVSize)
	fmt.Fprintf(&text, "Wall type: %s\n", c.WallType)
	if c.AdditionalInfo != "" {
		fmt.Fprintf(&text, "Notes: %s\n", c.AdditionalInfo)
	}
	fmt.Fprintf(&text, "\nOur technician will contact you before the appointment.\n\n%s\n", businessName)

	var body strings.Builder
	fmt.Fprintf(&body, "<p>Hi %s,</p>", html.EscapeString(c.Name))
	fmt.Fprintf(&body, "<p>Your TV mounting service has been scheduled for <strong>%s</strong>.</p>", html.EscapeString(appointment))
	body.WriteString("<ul>")
	fmt.Fprintf(&body, "<li>Address: %s</li>", html.EscapeString(c.Address))
	fmt.Fprintf(&body, "<li>TV size: %s&quot;</li>", html.EscapeString(c.TVSize))
	fmt.Fprintf(&body, "<li>Wall type: %s</li>", html.EscapeString(string(c.WallType)))
	if c.AdditionalInfo != "" {
		fmt.Fprintf(&body, "<li>Notes: %s</li>", html.EscapeString(c.AdditionalInfo))
	}
	body.WriteString("</ul>")
	fmt.Fprintf(&body, "<p>Our technician will contact you before the appointment.</p><p>%s</p>", html.EscapeString(businessName))

	return EmailMessage{
		To:      c.Email,
		ToName:  c.Name,
		Subject: "Booking Confirmed: " + appointment,
		Body:    text.String(),
		HTML:    body.String(),
	}
}

// OperatorBookingEmail builds the internal notification for a new booking.
func OperatorBookingEmail(c booking.Confirmation, to string) EmailMessage {
	var text strings.Builder
	fmt.Fprintf(&text, "New booking %s\n\n", c.BookingID)
	fmt.Fprintf(&text, "When: %s\n", c.Appointment())
	fmt.Fprintf(&text, "Customer: %s <%s>, %s\n", c.Name, c.Email, c.Phone)
	fmt.Fprintf(&text, "Address: %s\n", c.Address)
	fmt.Fprintf(&text, "TV: %s\" on %s\n", c.TVSize, c.WallType)
	if c.AdditionalInfo != "" {
		fmt.Fprintf(&text, "Notes: %s\n", c.AdditionalInfo)
	}
	return EmailMessage{
		To:      to,
		Subject: fmt.Sprintf("New booking: %s (%s %s)", c.Name, c.Date, c.Time),
		Body:    text.String(),
	}
}

var _ booking.ConfirmationSink = (*ConfirmationNotifier)(nil)
