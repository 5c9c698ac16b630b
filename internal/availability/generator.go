// Package availability simulates bookable installation slots. Nothing here
// reflects real staffing or calendar data.
package availability

import (
	"fmt"
	"time"
)

// DateLayout is the ISO 8601 calendar date format used for Day.Date.
const DateLayout = "2006-01-02"

// CanonicalSlots is the fixed, ordered list of installation start times.
var CanonicalSlots = []string{"9:00 AM", "11:00 AM", "1:00 PM", "3:00 PM", "5:00 PM"}

const (
	DefaultWindowDays        = 14
	DefaultRetainProbability = 0.7
)

// Day is one bookable calendar date and the slots retained for it.
type Day struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// HasSlot reports whether slot is offered on this day.
func (d Day) HasSlot(slot string) bool {
	for _, s := range d.Slots {
		if s == slot {
			return true
		}
	}
	return false
}

// Days is an ordered availability sequence.
type Days []Day

// Find returns the entry for date, if present.
func (ds Days) Find(date string) (Day, bool) {
	for _, d := range ds {
		if d.Date == date {
			return d, true
		}
	}
	return Day{}, false
}

// Config controls the shape of generated availability.
type Config struct {
	WindowDays        int
	ExcludedWeekdays  []time.Weekday
	Slots             []string
	RetainProbability float64
	// Location decides which calendar day "now" falls on. Nil means UTC.
	Location *time.Location
}

// DefaultConfig mirrors the original site: two weeks ahead, no Sundays, 70% of slots kept.
func DefaultConfig() Config {
	return Config{
		WindowDays:        DefaultWindowDays,
		ExcludedWeekdays:  []time.Weekday{time.Sunday},
		Slots:             append([]string(nil), CanonicalSlots...),
		RetainProbability: DefaultRetainProbability,
		Location:          time.UTC,
	}
}

// Validate checks the config for values the generator cannot honor.
func (c Config) Validate() error {
	if c.WindowDays < 1 {
		return fmt.Errorf("%w: window days must be positive, got %d", ErrInvalidConfig, c.WindowDays)
	}
	if c.RetainProbability < 0 || c.RetainProbability > 1 {
		return fmt.Errorf("%w: retain probability %v outside [0,1]", ErrInvalidConfig, c.RetainProbability)
	}
	if len(c.Slots) == 0 {
		return fmt.Errorf("%w: at least one slot is required", ErrInvalidConfig)
	}
	seen := make(map[string]struct{}, len(c.Slots))
	for _, s := range c.Slots {
		if s == "" {
			return fmt.Errorf("%w: empty slot label", ErrInvalidConfig)
		}
		if _, dup := seen[s]; dup {
			return fmt.Errorf("%w: duplicate slot %q", ErrInvalidConfig, s)
		}
		seen[s] = struct{}{}
	}
	excluded := make(map[time.Weekday]struct{}, len(c.ExcludedWeekdays))
	for _, w := range c.ExcludedWeekdays {
		if w < time.Sunday || w > time.Saturday {
			return fmt.Errorf("%w: unknown weekday %d", ErrInvalidConfig, w)
		}
		excluded[w] = struct{}{}
	}
	if len(excluded) == 7 {
		return fmt.Errorf("%w: every weekday is excluded", ErrInvalidConfig)
	}
	return nil
}

func (c Config) excluded(day time.Weekday) bool {
	for _, w := range c.ExcludedWeekdays {
		if w == day {
			return true
		}
	}
	return false
}

// Generator produces availability sequences.
type Generator struct {
	cfg    Config
	random RandomSource
}

// NewGenerator validates cfg and returns a generator. A nil random source
// falls back to a randomly seeded one.
func NewGenerator(cfg Config, random RandomSource) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if random == nil {
		random = NewRandomSource(0)
	}
	cfg.Slots = append([]string(nil), cfg.Slots...)
	return &Generator{cfg: cfg, random: random}, nil
}

// Config returns a copy of the generator configuration.
func (g *Generator) Config() Config {
	cfg := g.cfg
	cfg.Slots = append([]string(nil), g.cfg.Slots...)
	cfg.ExcludedWeekdays = append([]time.Weekday(nil), g.cfg.ExcludedWeekdays...)
	return cfg
}

// Generate returns the days following now (exclusive) up to the window,
// skipping excluded weekdays. Each slot is kept independently.
func (g *Generator) Generate(now time.Time) Days {
	local := now.In(g.cfg.Location)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, g.cfg.Location)

	days := make(Days, 0, g.cfg.WindowDays)
	for i := 1; i <= g.cfg.WindowDays; i++ {
		date := today.AddDate(0, 0, i)
		if g.cfg.excluded(date.Weekday()) {
			continue
		}
		slots := make([]string, 0, len(g.cfg.Slots))
		for _, slot := range g.cfg.Slots {
			if g.random.Retain(g.cfg.RetainProbability) {
				slots = append(slots, slot)
			}
		}
		days = append(days, Day{Date: date.Format(DateLayout), Slots: slots})
	}
	return days
}
