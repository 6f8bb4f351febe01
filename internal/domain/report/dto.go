package report

import (
	"github.com/synthbit-group/attendance-backend-go/internal/domain/attendance"
	"github.com/synthbit-group/attendance-backend-go/internal/domain/employee"
	"github.com/synthbit-group/attendance-backend-go/internal/pkg/validator"
)

type AttendanceReportRequest struct {
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Department *string `json:"department,omitempty"`
}

func (r *AttendanceReportRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if validator.IsEmpty(r.StartDate) || !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if validator.IsEmpty(r.EndDate) || !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DayCell is one employee's attendance on one date. A missing record reports
// as absent with zero hours.
type DayCell struct {
	CheckIn  string            `json:"check_in"`
	CheckOut string            `json:"check_out"`
	Hours    float64           `json:"hours"`
	Status   attendance.Status `json:"status"`
}

type EmployeeSummary struct {
	TotalDays   int     `json:"total_days"`
	PresentDays int     `json:"present_days"`
	AbsentDays  int     `json:"absent_days"`
	TotalHours  float64 `json:"total_hours"`
}

type EmployeeReport struct {
	Employee   employee.EmployeeResponse `json:"employee"`
	Attendance map[string]DayCell        `json:"attendance"`
	Summary    EmployeeSummary           `json:"summary"`
}

type AttendanceReport struct {
	StartDate      string           `json:"start_date"`
	EndDate        string           `json:"end_date"`
	Dates          []string         `json:"dates"`
	Employees      []EmployeeReport `json:"employees"`
	TotalEmployees int              `json:"total_employees"`
}
