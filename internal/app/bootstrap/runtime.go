package bootstrap

import (
	"context"
	"crypto/tls"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/portosolutions/tv-mounting/internal/availability"
	"github.com/portosolutions/tv-mounting/internal/booking"
	appconfig "github.com/portosolutions/tv-mounting/internal/config"
	"github.com/portosolutions/tv-mounting/pkg/logging"
)

// BuildRedisClient returns a configured Redis client or nil when disabled.
// When verify is true, a ping is issued and failures return nil.
func BuildRedisClient(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger, verify bool) *redis.Client {
	if cfg == nil || strings.TrimSpace(cfg.RedisAddr) == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}

	opts := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(opts)
	if !verify {
		return client
	}
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis not available", "addr", cfg.RedisAddr, "error", err)
		_ = client.Close()
		return nil
	}
	return client
}

// BuildSessionStore picks Redis when reachable and falls back to memory.
// The returned client is nil for the memory store and must be closed by
// the caller otherwise.
func BuildSessionStore(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) (booking.SessionStore, *redis.Client) {
	if logger == nil {
		logger = logging.Default()
	}
	if !cfg.UseMemorySessions {
		if client := BuildRedisClient(ctx, cfg, logger, true); client != nil {
			logger.Info("booking sessions stored in redis", "addr", cfg.RedisAddr, "ttl", cfg.SessionTTL.String())
			return booking.NewRedisStore(client, cfg.SessionTTL), client
		}
		logger.Warn("falling back to in-memory booking sessions")
	}
	return booking.NewInMemoryStore(cfg.SessionTTL), nil
}

// BuildGenerator assembles the availability generator from BOOKING_* settings.
func BuildGenerator(cfg *appconfig.Config) (*availability.Generator, error) {
	genCfg, err := cfg.AvailabilityConfig()
	if err != nil {
		return nil, err
	}
	return availability.NewGenerator(genCfg, availability.NewRandomSource(cfg.BookingRandomSeed))
}
