package expiry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseStorage(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func TestClassifyTierBoundaries(t *testing.T) {
	ref := date(t, "2024-12-01")

	cases := []struct {
		expiry   string
		daysLeft int
		tier     Tier
	}{
		{"2024-11-30", -1, TierExpired},
		{"2024-12-01", 0, TierCritical},
		{"2024-12-04", 3, TierCritical},
		{"2024-12-05", 4, TierWarning},
		{"2024-12-08", 7, TierWarning},
		{"2024-12-09", 8, TierFresh},
	}

	for _, tc := range cases {
		t.Run(tc.expiry, func(t *testing.T) {
			status := Classify(date(t, tc.expiry), ref)
			assert.Equal(t, tc.daysLeft, status.DaysLeft)
			assert.Equal(t, tc.tier, status.Tier)
		})
	}
}

func TestClassifySameDayIsZero(t *testing.T) {
	for _, s := range []string{"1900-02-28", "2000-02-29", "2024-12-31", "9999-12-31"} {
		d := date(t, s)
		assert.Equal(t, 0, Classify(d, d).DaysLeft, s)
	}
}

func TestClassifyIgnoresTimeOfDay(t *testing.T) {
	expiry := time.Date(2024, 12, 5, 0, 0, 0, 0, time.UTC)
	lateRef := time.Date(2024, 12, 1, 23, 59, 59, 0, time.UTC)
	earlyRef := time.Date(2024, 12, 1, 0, 0, 1, 0, time.UTC)

	assert.Equal(t, 4, Classify(expiry, lateRef).DaysLeft)
	assert.Equal(t, 4, Classify(expiry, earlyRef).DaysLeft)
	assert.Equal(t, TierWarning, Classify(expiry, lateRef).Tier)
}

func TestClassifyUsesWallDateOfReference(t *testing.T) {
	tz := time.FixedZone("UTC+9", 9*60*60)
	// 2024-12-02 01:00 in UTC+9 is still 2024-12-01 in UTC.
	ref := time.Date(2024, 12, 2, 1, 0, 0, 0, tz)
	assert.Equal(t, 3, Classify(date(t, "2024-12-05"), ref).DaysLeft)
}

func TestClassifyFarApart(t *testing.T) {
	status := Classify(date(t, "2500-01-01"), date(t, "1900-01-01"))
	assert.Equal(t, 219146, status.DaysLeft)
	assert.Equal(t, TierFresh, status.Tier)
	assert.True(t, Classify(date(t, "1900-01-01"), date(t, "2500-01-01")).Expired())
}

func TestTierFor(t *testing.T) {
	assert.Equal(t, TierExpired, TierFor(-365))
	assert.Equal(t, TierCritical, TierFor(CriticalMaxDays))
	assert.Equal(t, TierWarning, TierFor(CriticalMaxDays+1))
	assert.Equal(t, TierWarning, TierFor(WarningMaxDays))
	assert.Equal(t, TierFresh, TierFor(WarningMaxDays+1))
}
