package response

import (
	"errors"
	"net/http"

	"github.com/synthbit-group/attendance-backend-go/internal/domain/attendance"
	"github.com/synthbit-group/attendance-backend-go/internal/domain/auth"
	"github.com/synthbit-group/attendance-backend-go/internal/domain/employee"
	"github.com/synthbit-group/attendance-backend-go/internal/domain/user"
	"github.com/synthbit-group/attendance-backend-go/internal/pkg/geo"
	"github.com/synthbit-group/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrPhoneExists):
		Conflict(w, "Phone number already registered")

	// Attendance domain errors
	case errors.Is(err, geo.ErrInvalidCoordinate):
		BadRequest(w, "Invalid coordinates", nil)
	case errors.Is(err, attendance.ErrOutOfRange):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrNoCheckInFound):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrDuplicateCheckIn):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrCheckoutConflict):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
