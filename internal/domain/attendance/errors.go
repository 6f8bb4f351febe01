package attendance

import (
	"errors"
	"fmt"
)

// Attendance domain errors
var (
	// Check-in errors
	ErrAlreadyCheckedIn = errors.New("already checked in today, only one check-in allowed per day")
	ErrDuplicateCheckIn = errors.New("another check-in for this day was recorded concurrently")
	ErrOutOfRange       = errors.New("you are outside the office range")

	// Check-out errors
	ErrNoCheckInFound    = errors.New("no check-in record found for today, please check in first")
	ErrAlreadyCheckedOut = errors.New("already checked out today")
	ErrCheckoutConflict  = errors.New("record was already checked out by a concurrent request")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)

// OutOfRangeError reports a rejected geofence check together with the
// measured distance so callers can render it. It matches ErrOutOfRange
// under errors.Is.
type OutOfRangeError struct {
	DistanceMeters float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("you are outside the office range (%d m from office)", int(e.DistanceMeters+0.5))
}

func (e *OutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}
