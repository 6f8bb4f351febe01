package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusHalfDay Status = "half-day"
	StatusAbsent  Status = "absent"
)

// Location is an immutable snapshot of where a check event happened.
type Location struct {
	Lat                float64
	Lng                float64
	DistanceFromOffice int
	WithinRange        bool
}

// CheckEvent records one side of an attendance record. Time is the 12-hour
// display string in the office timezone; At is the absolute instant used for
// all hour arithmetic.
type CheckEvent struct {
	Time     string
	At       time.Time
	Location Location
}

// Attendance is one employee's record for one business day. At most one
// record exists per (EmployeeID, Date); CheckOut is only ever set when
// CheckIn is present.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckIn    *CheckEvent
	CheckOut   *CheckEvent
	TotalHours float64
	Status     Status
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName       *string
	EmployeeDepartment *string
}
