package attendance

import (
	"context"
)

// AttendanceService is the check-in/check-out state machine. It holds no
// persistent state of its own; every decision is made against the repository
// snapshot plus the current time.
type AttendanceService interface {
	// CheckIn validates geofence and state, then atomically creates today's
	// record. On ErrAlreadyCheckedIn the existing record is returned
	// alongside the error for client display.
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut validates geofence and state, computes total hours and the
	// final status, and applies all three fields in one conditional update.
	// On ErrAlreadyCheckedOut the existing record is returned alongside the
	// error.
	CheckOut(ctx context.Context, req CheckOutRequest) (CheckOutResponse, error)

	// TodayStatus returns the employee's record for the given date (today
	// when the date is empty), or nil when none exists.
	TodayStatus(ctx context.Context, req TodayStatusRequest) (*AttendanceResponse, error)

	// ListByDate returns all records for one business day, newest first.
	ListByDate(ctx context.Context, date string) ([]AttendanceResponse, error)
}
