package availability

import "errors"

// ErrInvalidConfig is returned when a generator configuration cannot produce a schedule.
var ErrInvalidConfig = errors.New("availability: invalid config")
