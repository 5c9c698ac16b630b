package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/portosolutions/tv-mounting/internal/availability"
)

// Config holds application configuration
type Config struct {
	Port               string
	Env                string
	PublicBaseURL      string
	LogLevel           string
	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int
	ShutdownTimeout    time.Duration

	// Booking sessions
	UseMemorySessions bool
	SessionTTL        time.Duration
	RedisAddr         string
	RedisPassword     string
	RedisTLS          bool

	// Availability generation
	BookingWindowDays     int
	BookingSlotRetention  float64
	BookingExcludedDays   string
	BookingSlots          string
	BookingTimezone       string
	BookingRandomSeed     uint64
	BusinessName          string
	OperatorEmail         string
	BookingQueueURL       string
	UseMemoryBookingQueue bool

	// Email
	EmailProvider     string
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string

	// AWS
	AWSRegion           string
	AWSAccessKeyID      string
	AWSSecretAccessKey  string
	AWSEndpointOverride string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		PublicBaseURL:      getEnv("PUBLIC_BASE_URL", ""),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", ","),
		RateLimitRPS:       getEnvAsFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:     getEnvAsInt("RATE_LIMIT_BURST", 20),
		ShutdownTimeout:    getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),

		UseMemorySessions: getEnvAsBool("USE_MEMORY_SESSIONS", false),
		SessionTTL:        getEnvAsDuration("BOOKING_SESSION_TTL", 2*time.Hour),
		RedisAddr:         getEnv("REDIS_ADDR", "redis:6379"),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisTLS:          getEnvAsBool("REDIS_TLS", false),

		BookingWindowDays:     getEnvAsInt("BOOKING_WINDOW_DAYS", availability.DefaultWindowDays),
		BookingSlotRetention:  getEnvAsFloat("BOOKING_SLOT_RETENTION", availability.DefaultRetainProbability),
		BookingExcludedDays:   getEnv("BOOKING_EXCLUDED_WEEKDAYS", "sunday"),
		BookingSlots:          getEnv("BOOKING_SLOTS", ""),
		BookingTimezone:       getEnv("BOOKING_TIMEZONE", "UTC"),
		BookingRandomSeed:     uint64(getEnvAsInt("BOOKING_RANDOM_SEED", 0)),
		BusinessName:          getEnv("BUSINESS_NAME", "Porto Solutions TV Mounting"),
		OperatorEmail:         getEnv("OPERATOR_EMAIL", ""),
		BookingQueueURL:       getEnv("BOOKING_QUEUE_URL", ""),
		UseMemoryBookingQueue: getEnvAsBool("USE_MEMORY_BOOKING_QUEUE", false),

		EmailProvider:     strings.ToLower(strings.TrimSpace(getEnv("EMAIL_PROVIDER", "auto"))),
		SendGridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		SendGridFromEmail: getEnv("SENDGRID_FROM_EMAIL", ""),
		SendGridFromName:  getEnv("SENDGRID_FROM_NAME", "Porto Solutions TV Mounting"),

		AWSRegion:           getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:      getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey:  getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AWSEndpointOverride: getEnv("AWS_ENDPOINT_OVERRIDE", ""),
	}
}

// AvailabilityConfig builds the generator settings from the BOOKING_* keys.
func (c *Config) AvailabilityConfig() (availability.Config, error) {
	cfg := availability.DefaultConfig()
	cfg.WindowDays = c.BookingWindowDays
	cfg.RetainProbability = c.BookingSlotRetention

	excluded, err := ParseWeekdays(c.BookingExcludedDays)
	if err != nil {
		return availability.Config{}, err
	}
	cfg.ExcludedWeekdays = excluded

	if slots := splitList(c.BookingSlots, ","); len(slots) > 0 {
		cfg.Slots = slots
	}

	loc, err := time.LoadLocation(strings.TrimSpace(c.BookingTimezone))
	if err != nil {
		return availability.Config{}, fmt.Errorf("config: BOOKING_TIMEZONE %q: %w", c.BookingTimezone, err)
	}
	cfg.Location = loc

	if err := cfg.Validate(); err != nil {
		return availability.Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday,
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
}

// ParseWeekdays parses a comma-separated weekday list ("sunday,sat").
// "none" or an empty string yields no exclusions.
func ParseWeekdays(raw string) ([]time.Weekday, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "none") {
		return []time.Weekday{}, nil
	}
	var out []time.Weekday
	for _, name := range splitList(raw, ",") {
		day, ok := weekdayNames[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("config: unknown weekday %q", name)
		}
		out = append(out, day)
	}
	return out, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, err := strconv.ParseFloat(getEnv(key, ""), 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsList(key, sep string) []string {
	return splitList(getEnv(key, ""), sep)
}

func splitList(raw, sep string) []string {
	var out []string
	for _, part := range strings.Split(raw, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
