// internal/expiry/classify.go
package expiry

import "time"

type Tier string

const (
	TierExpired  Tier = "expired"
	TierCritical Tier = "critical"
	TierWarning  Tier = "warning"
	TierFresh    Tier = "fresh"
)

// Upper bounds (inclusive) of the non-expired tiers, in days.
const (
	CriticalMaxDays = 3
	WarningMaxDays  = 7
)

const secondsPerDay = 24 * 60 * 60

type Status struct {
	DaysLeft int  `json:"days_left"`
	Tier     Tier `json:"tier"`
}

func (s Status) Expired() bool {
	return s.Tier == TierExpired
}

// Classify compares calendar dates only; time of day on either input is ignored.
// Classify(d, r).DaysLeft is not guaranteed to mirror Classify(r, d).DaysLeft.
func Classify(expiryDate, referenceDate time.Time) Status {
	days := DaysBetween(referenceDate, expiryDate)
	return Status{DaysLeft: days, Tier: TierFor(days)}
}

// DaysBetween counts whole calendar days from `from` to `to`.
func DaysBetween(from, to time.Time) int {
	secs := Midnight(to).Unix() - Midnight(from).Unix()
	return int(secs / secondsPerDay)
}

func TierFor(daysLeft int) Tier {
	switch {
	case daysLeft < 0:
		return TierExpired
	case daysLeft <= CriticalMaxDays:
		return TierCritical
	case daysLeft <= WarningMaxDays:
		return TierWarning
	default:
		return TierFresh
	}
}
