package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portosolutions/tv-mounting/internal/leads"
	"github.com/portosolutions/tv-mounting/pkg/logging"
)

func sampleLead() *leads.Lead {
	return &leads.Lead{
		ID:        "lead-1",
		Name:      "Michael Rodriguez",
		Email:     "michael@example.com",
		Phone:     "555-0199",
		Service:   leads.ServiceCommercial,
		Message:   "Six TVs in a restaurant.",
		Source:    "contact_form",
		CreatedAt: time.Date(2025, 6, 9, 10, 0, 0, 0, time.UTC),
	}
}

func TestLeadNotifier_SendsOperatorEmail(t *testing.T) {
	sender := &captureSender{}
	n := NewLeadNotifier(sender, " ops@example.com ", logging.Discard())

	require.NoError(t, n.NotifyLead(context.Background(), sampleLead()))
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, "ops@example.com", msg.To)
	assert.Equal(t, "michael@example.com", msg.ReplyTo)
	assert.Equal(t, "New quote request: Michael Rodriguez (Commercial Installation)", msg.Subject)
	assert.Contains(t, msg.Body, "Phone: 555-0199")
	assert.Contains(t, msg.Body, "Six TVs in a restaurant.")
}

func TestLeadNotifier_NoOperatorEmail(t *testing.T) {
	sender := &captureSender{}
	n := NewLeadNotifier(sender, "", logging.Discard())

	require.NoError(t, n.NotifyLead(context.Background(), sampleLead()))
	assert.Empty(t, sender.sent)
}

func TestLeadNotifier_SendFailure(t *testing.T) {
	sender := &captureSender{fail: map[string]error{"ops@example.com": errors.New("rejected")}}
	n := NewLeadNotifier(sender, "ops@example.com", logging.Discard())

	err := n.NotifyLead(context.Background(), sampleLead())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lead-1")
}

func TestSESSender_ReplyTo(t *testing.T) {
	client := &fakeSES{}
	sender := NewSESSender(client, SESConfig{FromEmail: "book@example.com"}, logging.Discard())
	require.NoError(t, sender.Send(context.Background(), OperatorLeadEmail(sampleLead(), "ops@example.com")))
	assert.Equal(t, []string{"michael@example.com"}, client.input.ReplyToAddresses)
}
