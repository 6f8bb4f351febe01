package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Kathmandu's UTC+5:45 offset catches day-boundary mistakes that whole-hour
// zones hide.
var npt = time.FixedZone("NPT", 5*3600+45*60)

func TestNow_FormatsDisplayTime(t *testing.T) {
	// 05:00 UTC is 10:45 AM in Kathmandu
	instant := time.Date(2024, 3, 10, 5, 0, 0, 0, time.UTC)
	c := NewFixed(npt, instant)

	stamp := c.Now()

	assert.Equal(t, "10:45:00 AM", stamp.Display)
	assert.Equal(t, instant, stamp.Instant)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, npt), stamp.BusinessDay)
}

func TestNow_AfternoonDisplay(t *testing.T) {
	// 11:20:05 UTC is 05:05:05 PM in Kathmandu
	instant := time.Date(2024, 3, 10, 11, 20, 5, 0, time.UTC)
	c := NewFixed(npt, instant)

	assert.Equal(t, "05:05:05 PM", c.Now().Display)
}

func TestNow_DayRollsOverBeforeUTC(t *testing.T) {
	// 18:30 UTC on March 10 is already 00:15 on March 11 in Kathmandu.
	instant := time.Date(2024, 3, 10, 18, 30, 0, 0, time.UTC)
	c := NewFixed(npt, instant)

	stamp := c.Now()

	assert.Equal(t, "12:15:00 AM", stamp.Display)
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, npt), stamp.BusinessDay)
}

func TestBusinessDayOf_IndependentOfInstantZone(t *testing.T) {
	c := New(npt)

	utcInstant := time.Date(2024, 3, 10, 18, 30, 0, 0, time.UTC)
	nyInstant := utcInstant.In(time.FixedZone("EST", -5*3600))

	// The same instant yields the same business day no matter which zone
	// the host happens to express it in.
	assert.True(t, c.BusinessDayOf(utcInstant).Equal(c.BusinessDayOf(nyInstant)))
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, npt), c.BusinessDayOf(utcInstant))
}

func TestBusinessDayOf_MidnightBoundary(t *testing.T) {
	c := New(npt)

	// One second before Kathmandu midnight
	before := time.Date(2024, 3, 10, 18, 14, 59, 0, time.UTC)
	// Exactly Kathmandu midnight
	at := time.Date(2024, 3, 10, 18, 15, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, npt), c.BusinessDayOf(before))
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, npt), c.BusinessDayOf(at))
}
