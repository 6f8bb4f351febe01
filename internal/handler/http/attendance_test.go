package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synthbit-group/attendance-backend-go/internal/domain/attendance"
	"github.com/synthbit-group/attendance-backend-go/internal/domain/employee"
)

// fakeAttendanceService returns canned results so handler tests exercise the
// HTTP mapping without a database.
type fakeAttendanceService struct {
	checkInResult  attendance.AttendanceResponse
	checkInErr     error
	checkOutResult attendance.CheckOutResponse
	checkOutErr    error
	statusResult   *attendance.AttendanceResponse
	statusErr      error
	listResult     []attendance.AttendanceResponse
	listErr        error
}

func (s *fakeAttendanceService) CheckIn(context.Context, attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	return s.checkInResult, s.checkInErr
}

func (s *fakeAttendanceService) CheckOut(context.Context, attendance.CheckOutRequest) (attendance.CheckOutResponse, error) {
	return s.checkOutResult, s.checkOutErr
}

func (s *fakeAttendanceService) TodayStatus(context.Context, attendance.TodayStatusRequest) (*attendance.AttendanceResponse, error) {
	return s.statusResult, s.statusErr
}

func (s *fakeAttendanceService) ListByDate(context.Context, string) ([]attendance.AttendanceResponse, error) {
	return s.listResult, s.listErr
}

func checkInBody(t *testing.T) *bytes.Reader {
	t.Helper()
	body, err := json.Marshal(attendance.CheckInRequest{
		Phone:     "9800000001",
		Latitude:  27.7172,
		Longitude: 85.324,
	})
	require.NoError(t, err)
	return bytes.NewReader(body)
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestAttendanceHandler_CheckIn_Success(t *testing.T) {
	svc := &fakeAttendanceService{
		checkInResult: attendance.AttendanceResponse{
			ID:         "att-1",
			EmployeeID: "emp-1",
			Date:       "2024-03-11",
			Status:     attendance.StatusPresent,
		},
	}
	handler := NewAttendanceHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/check-in", checkInBody(t))
	w := httptest.NewRecorder()

	handler.CheckIn(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	resp := decodeEnvelope(t, w)
	assert.True(t, resp["success"].(bool))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "att-1", data["id"])
}

func TestAttendanceHandler_CheckIn_InvalidJSON(t *testing.T) {
	handler := NewAttendanceHandler(&fakeAttendanceService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/check-in", bytes.NewReader([]byte("invalid json")))
	w := httptest.NewRecorder()

	handler.CheckIn(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAttendanceHandler_CheckIn_OutOfRange(t *testing.T) {
	svc := &fakeAttendanceService{
		checkInErr: &attendance.OutOfRangeError{DistanceMeters: 157.3},
	}
	handler := NewAttendanceHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/check-in", checkInBody(t))
	w := httptest.NewRecorder()

	handler.CheckIn(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeEnvelope(t, w)
	assert.False(t, resp["success"].(bool))
	errDetail := resp["error"].(map[string]interface{})
	details := errDetail["details"].(map[string]interface{})
	assert.Equal(t, "157", details["distance"])
}

func TestAttendanceHandler_CheckIn_AlreadyCheckedIn_IncludesRecord(t *testing.T) {
	svc := &fakeAttendanceService{
		checkInResult: attendance.AttendanceResponse{ID: "att-1", Date: "2024-03-11"},
		checkInErr:    attendance.ErrAlreadyCheckedIn,
	}
	handler := NewAttendanceHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/check-in", checkInBody(t))
	w := httptest.NewRecorder()

	handler.CheckIn(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeEnvelope(t, w)
	assert.False(t, resp["success"].(bool))
	errDetail := resp["error"].(map[string]interface{})
	record := errDetail["data"].(map[string]interface{})
	assert.Equal(t, "att-1", record["id"])
}

func TestAttendanceHandler_CheckIn_EmployeeNotFound(t *testing.T) {
	handler := NewAttendanceHandler(&fakeAttendanceService{checkInErr: employee.ErrEmployeeNotFound})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/check-in", checkInBody(t))
	w := httptest.NewRecorder()

	handler.CheckIn(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAttendanceHandler_CheckOut_Success(t *testing.T) {
	svc := &fakeAttendanceService{
		checkOutResult: attendance.CheckOutResponse{
			Attendance: attendance.AttendanceResponse{ID: "att-1", Status: attendance.StatusPresent},
			TotalHours: 8.5,
		},
	}
	handler := NewAttendanceHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/check-out", checkInBody(t))
	w := httptest.NewRecorder()

	handler.CheckOut(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeEnvelope(t, w)
	assert.True(t, resp["success"].(bool))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, 8.5, data["total_hours"])
}

func TestAttendanceHandler_CheckOut_NoCheckIn(t *testing.T) {
	handler := NewAttendanceHandler(&fakeAttendanceService{checkOutErr: attendance.ErrNoCheckInFound})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/check-out", checkInBody(t))
	w := httptest.NewRecorder()

	handler.CheckOut(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeEnvelope(t, w)
	assert.False(t, resp["success"].(bool))
}

func TestAttendanceHandler_TodayStatus_NoRecord(t *testing.T) {
	handler := NewAttendanceHandler(&fakeAttendanceService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance/status?phone=9800000001", nil)
	w := httptest.NewRecorder()

	handler.TodayStatus(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeEnvelope(t, w)
	assert.True(t, resp["success"].(bool))
	assert.Nil(t, resp["data"])
}

func TestAttendanceHandler_ListByDate_Success(t *testing.T) {
	svc := &fakeAttendanceService{
		listResult: []attendance.AttendanceResponse{
			{ID: "att-1", Date: "2024-03-11"},
			{ID: "att-2", Date: "2024-03-11"},
		},
	}
	handler := NewAttendanceHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance?date=2024-03-11", nil)
	w := httptest.NewRecorder()

	handler.ListByDate(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeEnvelope(t, w)
	data := resp["data"].([]interface{})
	assert.Len(t, data, 2)
}
