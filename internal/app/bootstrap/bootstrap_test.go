package bootstrap

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portosolutions/tv-mounting/internal/booking"
	appconfig "github.com/portosolutions/tv-mounting/internal/config"
	"github.com/portosolutions/tv-mounting/internal/events"
	"github.com/portosolutions/tv-mounting/internal/notify"
	"github.com/portosolutions/tv-mounting/pkg/logging"
)

func TestBuildSessionStore_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := &appconfig.Config{RedisAddr: mr.Addr(), SessionTTL: time.Hour}

	store, client := BuildSessionStore(context.Background(), cfg, logging.Discard())
	require.NotNil(t, client)
	t.Cleanup(func() { _ = client.Close() })
	assert.IsType(t, &booking.RedisStore{}, store)
}

func TestBuildSessionStore_FallsBackToMemory(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	cfg := &appconfig.Config{RedisAddr: addr, SessionTTL: time.Hour}
	store, client := BuildSessionStore(context.Background(), cfg, logging.Discard())
	assert.Nil(t, client)
	assert.IsType(t, &booking.InMemoryStore{}, store)
}

func TestBuildSessionStore_MemoryRequested(t *testing.T) {
	cfg := &appconfig.Config{UseMemorySessions: true, RedisAddr: "unused:6379", SessionTTL: time.Hour}
	store, client := BuildSessionStore(context.Background(), cfg, logging.Discard())
	assert.Nil(t, client)
	assert.IsType(t, &booking.InMemoryStore{}, store)
}

func TestBuildRedisClient_Disabled(t *testing.T) {
	assert.Nil(t, BuildRedisClient(context.Background(), &appconfig.Config{}, nil, false))
	assert.Nil(t, BuildRedisClient(context.Background(), nil, nil, false))
}

func TestBuildGenerator(t *testing.T) {
	cfg := &appconfig.Config{
		BookingWindowDays:    14,
		BookingSlotRetention: 1,
		BookingExcludedDays:  "sunday",
		BookingTimezone:      "UTC",
		BookingRandomSeed:    42,
	}
	gen, err := BuildGenerator(cfg)
	require.NoError(t, err)

	days := gen.Generate(time.Date(2025, 6, 9, 10, 0, 0, 0, time.UTC))
	require.Len(t, days, 12)
	for _, d := range days {
		assert.Len(t, d.Slots, 5)
	}

	cfg.BookingWindowDays = 0
	_, err = BuildGenerator(cfg)
	assert.Error(t, err)
}

type nopSES struct{}

func (nopSES) SendEmail(context.Context, *sesv2.SendEmailInput, ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	return &sesv2.SendEmailOutput{}, nil
}

func TestBuildEmailSender(t *testing.T) {
	tests := []struct {
		name     string
		cfg      appconfig.Config
		ses      notify.SESClient
		provider string
	}{
		{"auto prefers sendgrid", appconfig.Config{EmailProvider: "auto", SendGridAPIKey: "key", SendGridFromEmail: "a@b.c"}, nopSES{}, EmailProviderSendGrid},
		{"auto falls back to ses", appconfig.Config{EmailProvider: "auto", SendGridFromEmail: "a@b.c"}, nopSES{}, EmailProviderSES},
		{"auto without credentials", appconfig.Config{EmailProvider: "auto"}, nil, EmailProviderStub},
		{"ses requested", appconfig.Config{EmailProvider: "ses", SendGridAPIKey: "key", SendGridFromEmail: "a@b.c"}, nopSES{}, EmailProviderSES},
		{"ses without client", appconfig.Config{EmailProvider: "ses", SendGridFromEmail: "a@b.c"}, nil, EmailProviderStub},
		{"sendgrid without key", appconfig.Config{EmailProvider: "sendgrid"}, nopSES{}, EmailProviderStub},
		{"stub forced", appconfig.Config{EmailProvider: "stub", SendGridAPIKey: "key"}, nopSES{}, EmailProviderStub},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender, provider := BuildEmailSender(&tt.cfg, tt.ses, logging.Discard())
			require.NotNil(t, sender)
			assert.Equal(t, tt.provider, provider)
		})
	}
}

type nopSQS struct{}

func (nopSQS) SendMessage(context.Context, *sqs.SendMessageInput, ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	return &sqs.SendMessageOutput{}, nil
}

func TestBuildBookingQueue(t *testing.T) {
	assert.Nil(t, BuildBookingQueue(&appconfig.Config{}, nopSQS{}))
	assert.Nil(t, BuildBookingQueue(&appconfig.Config{BookingQueueURL: "http://q"}, nil))
	assert.IsType(t, &events.SQSQueue{}, BuildBookingQueue(&appconfig.Config{BookingQueueURL: "http://q"}, nopSQS{}))
	assert.IsType(t, &events.MemoryQueue{}, BuildBookingQueue(&appconfig.Config{UseMemoryBookingQueue: true}, nil))
}

func TestBuildConfirmationSink(t *testing.T) {
	cfg := &appconfig.Config{BusinessName: "Porto Solutions TV Mounting"}
	logger := logging.Discard()

	sinks := BuildConfirmationSink(cfg, notify.NewStubEmailSender(logger), nil, logger)
	require.Len(t, sinks, 2)
	assert.Equal(t, "log", sinks[0].Name())
	assert.Equal(t, "email", sinks[1].Name())

	queue := events.NewMemoryQueue(1)
	sinks = BuildConfirmationSink(cfg, nil, queue, logger)
	require.Len(t, sinks, 3)
	assert.Equal(t, "queue", sinks[2].Name())

	require.NoError(t, sinks.Deliver(context.Background(), booking.Confirmation{
		BookingID: "bk-1", SessionID: "s-1", Email: "ana@example.com", Date: "2025-06-10", Time: "9:00 AM",
	}))
	assert.Len(t, queue.Drain(), 1)
}
