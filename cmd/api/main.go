package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/portosolutions/tv-mounting/cmd/mainconfig"
	"github.com/portosolutions/tv-mounting/internal/api/router"
	"github.com/portosolutions/tv-mounting/internal/app/bootstrap"
	"github.com/portosolutions/tv-mounting/internal/booking"
	appconfig "github.com/portosolutions/tv-mounting/internal/config"
	"github.com/portosolutions/tv-mounting/internal/events"
	httpmiddleware "github.com/portosolutions/tv-mounting/internal/http/middleware"
	"github.com/portosolutions/tv-mounting/internal/leads"
	"github.com/portosolutions/tv-mounting/internal/notify"
	"github.com/portosolutions/tv-mounting/internal/observability/metrics"
	"github.com/portosolutions/tv-mounting/internal/site"
	"github.com/portosolutions/tv-mounting/pkg/logging"
)

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting tv-mounting API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := setup(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      app.handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go app.limiter.Run(ctx)
	if app.sessions != nil {
		go app.sessions.Run(ctx, time.Minute)
	}
	if app.queue != nil {
		go app.queue.Consume(ctx, func(m events.Message) {
			logger.Info("booking event consumed", "event_type", m.EventType, "bytes", len(m.Body))
		})
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		logger.Error("server error", "error", err)
		os.Exit(1)
	case <-ctx.Done():
	}

	logger.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}

type application struct {
	handler  http.Handler
	limiter  *httpmiddleware.RateLimiter
	sessions *booking.InMemoryStore
	queue    *events.MemoryQueue
	redis    *redis.Client
}

func (a *application) Close() {
	if a.redis != nil {
		_ = a.redis.Close()
	}
}

// setup wires every dependency behind the HTTP handler.
func setup(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) (*application, error) {
	generator, err := bootstrap.BuildGenerator(cfg)
	if err != nil {
		return nil, err
	}
	store, redisClient := bootstrap.BuildSessionStore(ctx, cfg, logger)

	metricsHandler, bookingMetrics := setupMetrics()

	ses, sqsClient := setupAWS(ctx, cfg, logger)
	email, provider := bootstrap.BuildEmailSender(cfg, ses, logger)
	logger.Info("confirmation email provider selected", "provider", provider)

	queue := bootstrap.BuildBookingQueue(cfg, sqsClient)
	sink := bootstrap.BuildConfirmationSink(cfg, email, queue, logger)

	service := booking.NewService(store, generator, logger,
		booking.WithSink(sink),
		booking.WithMetrics(bookingMetrics),
	)

	leadsHandler := leads.NewHandler(
		leads.NewInMemoryRepository(leads.DefaultMaxLeads),
		notify.NewLeadNotifier(email, cfg.OperatorEmail, logger),
		logger,
	)

	siteHandler, err := site.NewHandler(site.DefaultContent(), logger)
	if err != nil {
		return nil, err
	}

	limiter := httpmiddleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	var ready router.ReadyFunc
	if redisClient != nil {
		ready = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
	}

	handler := router.New(&router.Config{
		Logger:             logger,
		BookingHandler:     booking.NewHandler(service, logger),
		LeadsHandler:       leadsHandler,
		SiteHandler:        siteHandler,
		MetricsHandler:     metricsHandler,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimiter:        limiter,
		Ready:              ready,
	})
	app := &application{handler: handler, limiter: limiter, redis: redisClient}
	if mem, ok := store.(*booking.InMemoryStore); ok {
		app.sessions = mem
	}
	if mq, ok := queue.(*events.MemoryQueue); ok {
		app.queue = mq
	}
	return app, nil
}

// setupMetrics builds a private registry with Go runtime collectors and the
// booking metrics.
func setupMetrics() (http.Handler, *metrics.BookingMetrics) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}), metrics.NewBookingMetrics(reg)
}

// setupAWS returns nil clients when neither SES nor SQS is needed.
func setupAWS(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) (notify.SESClient, events.SQSAPI) {
	wantSES := cfg.EmailProvider == bootstrap.EmailProviderSES ||
		(cfg.EmailProvider == bootstrap.EmailProviderAuto && cfg.SendGridAPIKey == "" && cfg.SendGridFromEmail != "")
	wantSQS := cfg.BookingQueueURL != "" && !cfg.UseMemoryBookingQueue
	if !wantSES && !wantSQS {
		return nil, nil
	}

	awsCfg, err := mainconfig.LoadAWSConfig(ctx, cfg)
	if err != nil {
		logger.Warn("failed to load AWS config; SES and SQS disabled", "error", err)
		return nil, nil
	}

	var ses notify.SESClient
	var sqsClient events.SQSAPI
	if wantSES {
		ses = mainconfig.NewSESClient(awsCfg, cfg)
	}
	if wantSQS {
		sqsClient = mainconfig.NewSQSClient(awsCfg, cfg)
	}
	return ses, sqsClient
}
