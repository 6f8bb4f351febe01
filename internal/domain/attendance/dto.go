package attendance

import (
	"time"

	"github.com/synthbit-group/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CheckInRequest struct {
	Phone     string  `json:"phone"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

func (r *CheckInRequest) Validate() error {
	return validateCheckRequest(r.Phone, r.Latitude, r.Longitude)
}

type CheckOutRequest struct {
	Phone     string  `json:"phone"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

func (r *CheckOutRequest) Validate() error {
	return validateCheckRequest(r.Phone, r.Latitude, r.Longitude)
}

func validateCheckRequest(phone string, lat, lng float64) error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone is required",
		})
	} else if !validator.IsValidPhoneNumber(phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone must be 10-13 digits",
		})
	}

	if lat < -90 || lat > 90 {
		errs = append(errs, validator.ValidationError{
			Field:   "lat",
			Message: "lat must be between -90 and 90",
		})
	}

	if lng < -180 || lng > 180 {
		errs = append(errs, validator.ValidationError{
			Field:   "lng",
			Message: "lng must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TodayStatusRequest struct {
	Phone string `json:"phone"`
	Date  string `json:"date"`
}

func (r *TodayStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone is required",
		})
	}

	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LocationResponse struct {
	Lat                float64 `json:"lat"`
	Lng                float64 `json:"lng"`
	DistanceFromOffice int     `json:"distance_from_office"`
	WithinRange        bool    `json:"within_range"`
}

type CheckEventResponse struct {
	Time     string           `json:"time"`
	At       string           `json:"at"`
	Location LocationResponse `json:"location"`
}

type AttendanceResponse struct {
	ID                 string              `json:"id"`
	EmployeeID         string              `json:"employee_id"`
	EmployeeName       *string             `json:"employee_name,omitempty"`
	EmployeeDepartment *string             `json:"employee_department,omitempty"`
	Date               string              `json:"date"`
	CheckIn            *CheckEventResponse `json:"check_in,omitempty"`
	CheckOut           *CheckEventResponse `json:"check_out,omitempty"`
	TotalHours         float64             `json:"total_hours"`
	Status             Status              `json:"status"`
	Notes              *string             `json:"notes,omitempty"`
}

// CheckOutResponse echoes the updated record plus the computed hours so the
// client can render both without a second round trip.
type CheckOutResponse struct {
	Attendance AttendanceResponse `json:"attendance"`
	TotalHours float64            `json:"total_hours"`
}

func newCheckEventResponse(e *CheckEvent) *CheckEventResponse {
	if e == nil {
		return nil
	}
	return &CheckEventResponse{
		Time: e.Time,
		At:   e.At.UTC().Format(time.RFC3339),
		Location: LocationResponse{
			Lat:                e.Location.Lat,
			Lng:                e.Location.Lng,
			DistanceFromOffice: e.Location.DistanceFromOffice,
			WithinRange:        e.Location.WithinRange,
		},
	}
}

func NewAttendanceResponse(att Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:                 att.ID,
		EmployeeID:         att.EmployeeID,
		EmployeeName:       att.EmployeeName,
		EmployeeDepartment: att.EmployeeDepartment,
		Date:               att.Date.Format("2006-01-02"),
		CheckIn:            newCheckEventResponse(att.CheckIn),
		CheckOut:           newCheckEventResponse(att.CheckOut),
		TotalHours:         att.TotalHours,
		Status:             att.Status,
		Notes:              att.Notes,
	}
}
