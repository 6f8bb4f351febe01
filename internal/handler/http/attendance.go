package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/synthbit-group/attendance-backend-go/internal/domain/attendance"
	"github.com/synthbit-group/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	TodayStatus(w http.ResponseWriter, r *http.Request)
	ListByDate(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode check-in request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.CheckIn(r.Context(), req)
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyCheckedIn) {
			// The existing record rides along so the kiosk can show the
			// earlier check-in time.
			response.BadRequestWithData(w, err.Error(), result)
			return
		}
		writeAttendanceError(w, err)
		return
	}

	response.Created(w, "Checked in successfully", result)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode check-out request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.CheckOut(r.Context(), req)
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyCheckedOut) {
			response.BadRequestWithData(w, err.Error(), result.Attendance)
			return
		}
		writeAttendanceError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out successfully", result)
}

// TodayStatus implements AttendanceHandler.
func (h *attendanceHandlerImpl) TodayStatus(w http.ResponseWriter, r *http.Request) {
	req := attendance.TodayStatusRequest{
		Phone: r.URL.Query().Get("phone"),
		Date:  r.URL.Query().Get("date"),
	}

	result, err := h.attendanceService.TodayStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// result is nil when no record exists for that day
	response.Success(w, result)
}

// ListByDate implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListByDate(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.ListByDate(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// writeAttendanceError adds the measured distance to geofence rejections;
// everything else goes through the shared mapping.
func writeAttendanceError(w http.ResponseWriter, err error) {
	var outOfRange *attendance.OutOfRangeError
	if errors.As(err, &outOfRange) {
		response.BadRequest(w, outOfRange.Error(), map[string]string{
			"distance": strconv.Itoa(int(outOfRange.DistanceMeters + 0.5)),
		})
		return
	}

	response.HandleError(w, err)
}
