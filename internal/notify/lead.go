package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/portosolutions/tv-mounting/internal/leads"
	"github.com/portosolutions/tv-mounting/pkg/logging"
)

// LeadNotifier forwards contact form submissions to the operator inbox.
type LeadNotifier struct {
	email         EmailSender
	operatorEmail string
	logger        *logging.Logger
}

// NewLeadNotifier creates a notifier. With no operator address configured
// leads are only logged.
func NewLeadNotifier(email EmailSender, operatorEmail string, logger *logging.Logger) *LeadNotifier {
	if logger == nil {
		logger = logging.Default()
	}
	if email == nil {
		email = NewStubEmailSender(logger)
	}
	return &LeadNotifier{email: email, operatorEmail: strings.TrimSpace(operatorEmail), logger: logger}
}

func (n *LeadNotifier) NotifyLead(ctx context.Context, lead *leads.Lead) error {
	if n.operatorEmail == "" {
		n.logger.Info("lead received; no operator email configured", "lead_id", lead.ID)
		return nil
	}
	if err := n.email.Send(ctx, OperatorLeadEmail(lead, n.operatorEmail)); err != nil {
		return fmt.Errorf("notify: lead %s: %w", lead.ID, err)
	}
	return nil
}

// OperatorLeadEmail builds the operator copy of a quote request. Replies go
// to the visitor.
func OperatorLeadEmail(lead *leads.Lead, to string) EmailMessage {
	var text strings.Builder
	fmt.Fprintf(&text, "New quote request %s\n\n", lead.ID)
	fmt.Fprintf(&text, "From: %s <%s>\n", lead.Name, lead.Email)
	if lead.Phone != "" {
		fmt.Fprintf(&text, "Phone: %s\n", lead.Phone)
	}
	fmt.Fprintf(&text, "Service: %s\n", lead.Service.Label())
	if lead.Message != "" {
		fmt.Fprintf(&text, "\n%s\n", lead.Message)
	}
	return EmailMessage{
		To:      to,
		ReplyTo: lead.Email,
		Subject: fmt.Sprintf("New quote request: %s (%s)", lead.Name, lead.Service.Label()),
		Body:    text.String(),
	}
}

var _ leads.Notifier = (*LeadNotifier)(nil)
