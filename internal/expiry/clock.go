// internal/expiry/clock.go
package expiry

import "time"

// Clock supplies the reference "now" used for classification.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time {
	return c.At
}

// Today returns the clock's current calendar date at midnight UTC.
func Today(c Clock) time.Time {
	return Midnight(c.Now())
}
