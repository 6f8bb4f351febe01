package clock

import "time"

// Stamp is a single observation of the current time in the configured
// attendance timezone.
type Stamp struct {
	// Display is the 12-hour wall-clock time shown to employees, e.g. "09:05:00 AM".
	Display string
	// Instant is the absolute UTC timestamp. All elapsed-time arithmetic uses
	// this value, never the display string.
	Instant time.Time
	// BusinessDay is midnight of the current calendar day in the configured
	// timezone. It keys attendance records, so "today" is the same on every
	// host regardless of the host's own timezone.
	BusinessDay time.Time
}

// Clock derives business-day boundaries and display timestamps in one fixed
// civil timezone.
type Clock interface {
	Now() Stamp
	BusinessDayOf(t time.Time) time.Time
}

type localDayClock struct {
	loc   *time.Location
	nowFn func() time.Time
}

func New(loc *time.Location) Clock {
	return &localDayClock{loc: loc, nowFn: time.Now}
}

// NewFixed returns a Clock whose Now always observes the given instant.
// Intended for tests.
func NewFixed(loc *time.Location, instant time.Time) Clock {
	return &localDayClock{loc: loc, nowFn: func() time.Time { return instant }}
}

func (c *localDayClock) Now() Stamp {
	now := c.nowFn().UTC()
	local := now.In(c.loc)
	return Stamp{
		Display:     local.Format("03:04:05 PM"),
		Instant:     now,
		BusinessDay: c.BusinessDayOf(now),
	}
}

// BusinessDayOf truncates an instant to midnight of its calendar day in the
// configured timezone.
func (c *localDayClock) BusinessDayOf(t time.Time) time.Time {
	local := t.In(c.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, c.loc)
}
