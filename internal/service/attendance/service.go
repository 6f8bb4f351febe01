package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"github.com/synthbit-group/attendance-backend-go/internal/domain/attendance"
	"github.com/synthbit-group/attendance-backend-go/internal/domain/employee"
	"github.com/synthbit-group/attendance-backend-go/internal/pkg/clock"
	"github.com/synthbit-group/attendance-backend-go/internal/pkg/geo"
)

// AttendanceServiceImpl drives the per-day attendance state machine:
// NONE -> CHECKED_IN -> CHECKED_OUT, terminal for the day. It decides
// transitions from repository snapshots and the clock and never mutates
// anything itself; both writes go through the repository's atomic
// operations.
type AttendanceServiceImpl struct {
	attendanceRepo   attendance.AttendanceRepository
	employeeRepo     employee.EmployeeRepository
	geoValidator     *geo.Validator
	clock            clock.Clock
	halfDayThreshold float64
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	geoValidator *geo.Validator,
	clk clock.Clock,
	halfDayThreshold float64,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo:   attendanceRepo,
		employeeRepo:     employeeRepo,
		geoValidator:     geoValidator,
		clock:            clk,
		halfDayThreshold: halfDayThreshold,
	}
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.employeeRepo.GetByPhone(ctx, req.Phone)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// Geofence before any state lookup: an out-of-range request must never
	// touch the record.
	distance, err := s.geoValidator.DistanceFromOffice(geo.Point{Lat: req.Latitude, Lng: req.Longitude})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !s.geoValidator.IsWithinRange(distance) {
		return attendance.AttendanceResponse{}, &attendance.OutOfRangeError{DistanceMeters: distance}
	}

	now := s.clock.Now()

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, now.BusinessDay)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to look up today's attendance: %w", err)
	}
	if existing != nil {
		// The existing record goes back with the error so the kiosk can
		// show when the employee already checked in.
		return attendance.NewAttendanceResponse(*existing), attendance.ErrAlreadyCheckedIn
	}

	record := attendance.Attendance{
		EmployeeID: emp.ID,
		Date:       now.BusinessDay,
		CheckIn: &attendance.CheckEvent{
			Time:     now.Display,
			At:       now.Instant,
			Location: locationSnapshot(req.Latitude, req.Longitude, distance),
		},
		TotalHours: 0,
		Status:     attendance.StatusPresent,
	}

	created, err := s.attendanceRepo.CreateCheckIn(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	created.EmployeeName = &emp.Name
	created.EmployeeDepartment = &emp.Department

	return attendance.NewAttendanceResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.CheckOutResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckOutResponse{}, err
	}

	emp, err := s.employeeRepo.GetByPhone(ctx, req.Phone)
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}

	distance, err := s.geoValidator.DistanceFromOffice(geo.Point{Lat: req.Latitude, Lng: req.Longitude})
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}
	if !s.geoValidator.IsWithinRange(distance) {
		return attendance.CheckOutResponse{}, &attendance.OutOfRangeError{DistanceMeters: distance}
	}

	now := s.clock.Now()

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, now.BusinessDay)
	if err != nil {
		return attendance.CheckOutResponse{}, fmt.Errorf("failed to look up today's attendance: %w", err)
	}
	// A record without a check-in should not exist, but it is handled the
	// same as no record at all.
	if existing == nil || existing.CheckIn == nil {
		return attendance.CheckOutResponse{}, attendance.ErrNoCheckInFound
	}
	if existing.CheckOut != nil {
		return attendance.CheckOutResponse{
			Attendance: attendance.NewAttendanceResponse(*existing),
		}, attendance.ErrAlreadyCheckedOut
	}

	totalHours := elapsedHours(existing.CheckIn.At, now.Instant)
	status := attendance.StatusPresent
	if totalHours < s.halfDayThreshold {
		status = attendance.StatusHalfDay
	}

	checkOut := attendance.CheckEvent{
		Time:     now.Display,
		At:       now.Instant,
		Location: locationSnapshot(req.Latitude, req.Longitude, distance),
	}

	updated, err := s.attendanceRepo.ApplyCheckOut(ctx, existing.ID, checkOut, totalHours, status)
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}

	return attendance.CheckOutResponse{
		Attendance: attendance.NewAttendanceResponse(updated),
		TotalHours: totalHours,
	}, nil
}

// TodayStatus implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) TodayStatus(ctx context.Context, req attendance.TodayStatusRequest) (*attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.employeeRepo.GetByPhone(ctx, req.Phone)
	if err != nil {
		return nil, err
	}

	day, err := s.resolveDay(req.Date)
	if err != nil {
		return nil, err
	}

	record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to look up attendance: %w", err)
	}
	if record == nil {
		return nil, nil
	}

	resp := attendance.NewAttendanceResponse(*record)
	return &resp, nil
}

// ListByDate implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListByDate(ctx context.Context, date string) ([]attendance.AttendanceResponse, error) {
	day, err := s.resolveDay(date)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListByDate(ctx, day, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	result := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		result = append(result, attendance.NewAttendanceResponse(record))
	}

	return result, nil
}

func (s *AttendanceServiceImpl) resolveDay(date string) (time.Time, error) {
	if date == "" {
		return s.clock.Now().BusinessDay, nil
	}
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return parsed, nil
}

func locationSnapshot(lat, lng, distanceMeters float64) attendance.Location {
	return attendance.Location{
		Lat:                lat,
		Lng:                lng,
		DistanceFromOffice: int(math.Round(distanceMeters)),
		WithinRange:        true,
	}
}

// elapsedHours computes the worked hours between two instants, rounded
// half-up to two decimal places. Check-in and check-out are assumed to fall
// within a single 24-hour span, so a negative difference means the check-out
// instant rolled past a day boundary and is corrected by one day.
func elapsedHours(checkIn, checkOut time.Time) float64 {
	hours := checkOut.Sub(checkIn).Hours()
	if hours < 0 {
		hours += 24
	}
	rounded, _ := decimal.NewFromFloat(hours).Round(2).Float64()
	return rounded
}
