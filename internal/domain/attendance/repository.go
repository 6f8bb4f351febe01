package attendance

import (
	"context"
	"time"
)

// AttendanceRepository owns attendance persistence. The two mutating methods
// carry the concurrency guarantees the state machine relies on: CreateCheckIn
// is a single atomic insert protected by the UNIQUE (employee_id, date) key,
// and ApplyCheckOut is conditional on the record not being checked out yet.
type AttendanceRepository interface {
	// GetByEmployeeAndDate returns the record for one employee on one
	// business day, or nil when none exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// CreateCheckIn inserts a fresh record with check-in data. A concurrent
	// insert for the same (employee, day) loses with ErrDuplicateCheckIn.
	CreateCheckIn(ctx context.Context, att Attendance) (Attendance, error)

	// ApplyCheckOut sets check-out data, total hours and status on an open
	// record. Fails with ErrAttendanceNotFound if the id no longer exists
	// and ErrCheckoutConflict if a check-out was applied concurrently.
	ApplyCheckOut(ctx context.Context, id string, checkOut CheckEvent, totalHours float64, status Status) (Attendance, error)

	// ListByDate returns records for one business day, optionally filtered
	// to a single employee, newest check-in first.
	ListByDate(ctx context.Context, date time.Time, employeeID *string) ([]Attendance, error)

	// QueryRange returns records with Date in [start, end], optionally
	// filtered by employee ids, ordered by date ascending then employee.
	QueryRange(ctx context.Context, start, end time.Time, employeeIDs []string) ([]Attendance, error)
}
