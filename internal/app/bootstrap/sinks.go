package bootstrap

import (
	"github.com/portosolutions/tv-mounting/internal/booking"
	appconfig "github.com/portosolutions/tv-mounting/internal/config"
	"github.com/portosolutions/tv-mounting/internal/events"
	"github.com/portosolutions/tv-mounting/internal/notify"
	"github.com/portosolutions/tv-mounting/pkg/logging"
)

// Email provider preferences accepted by EMAIL_PROVIDER.
const (
	EmailProviderAuto     = "auto"
	EmailProviderSendGrid = "sendgrid"
	EmailProviderSES      = "ses"
	EmailProviderStub     = "stub"
)

// BuildEmailSender selects an email provider. ses may be nil when AWS is
// not configured. The second return value names the chosen provider.
func BuildEmailSender(cfg *appconfig.Config, ses notify.SESClient, logger *logging.Logger) (notify.EmailSender, string) {
	sendgrid := func() notify.EmailSender {
		if s := notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.SendGridFromEmail,
			FromName:  cfg.SendGridFromName,
		}, logger); s != nil {
			return s
		}
		return nil
	}
	sesSender := func() notify.EmailSender {
		if cfg.SendGridFromEmail == "" {
			return nil
		}
		if s := notify.NewSESSender(ses, notify.SESConfig{
			FromEmail: cfg.SendGridFromEmail,
			FromName:  cfg.SendGridFromName,
		}, logger); s != nil {
			return s
		}
		return nil
	}

	switch cfg.EmailProvider {
	case EmailProviderSendGrid:
		if s := sendgrid(); s != nil {
			return s, EmailProviderSendGrid
		}
	case EmailProviderSES:
		if s := sesSender(); s != nil {
			return s, EmailProviderSES
		}
	case EmailProviderStub:
	default:
		if s := sendgrid(); s != nil {
			return s, EmailProviderSendGrid
		}
		if s := sesSender(); s != nil {
			return s, EmailProviderSES
		}
	}
	return notify.NewStubEmailSender(logger), EmailProviderStub
}

// BuildBookingQueue returns the queue confirmed bookings are published to,
// or nil when publishing is disabled.
func BuildBookingQueue(cfg *appconfig.Config, client events.SQSAPI) events.Queue {
	switch {
	case cfg.UseMemoryBookingQueue:
		return events.NewMemoryQueue(0)
	case cfg.BookingQueueURL != "" && client != nil:
		return events.NewSQSQueue(client, cfg.BookingQueueURL)
	default:
		return nil
	}
}

// BuildConfirmationSink fans confirmations out to the log, email and
// (when configured) queue sinks.
func BuildConfirmationSink(cfg *appconfig.Config, email notify.EmailSender, queue events.Queue, logger *logging.Logger) booking.MultiSink {
	sinks := booking.MultiSink{
		booking.NewLogSink(logger),
		notify.NewConfirmationNotifier(email, notify.NotifierConfig{
			BusinessName:  cfg.BusinessName,
			OperatorEmail: cfg.OperatorEmail,
		}, logger),
	}
	if queue != nil {
		sinks = append(sinks, events.NewPublisher(queue, logger))
	}
	return sinks
}
