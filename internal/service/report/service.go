package report

import (
	"context"
	"fmt"
	"time"

	"github.com/synthbit-group/attendance-backend-go/internal/domain/attendance"
	"github.com/synthbit-group/attendance-backend-go/internal/domain/employee"
	"github.com/synthbit-group/attendance-backend-go/internal/domain/report"
)

// ReportServiceImpl is a read-side batch consumer of the attendance store.
// Absence is derived here, not stored: any (employee, date) pair in range
// without a record reports as absent with zero hours, regardless of when the
// employee was created.
type ReportServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewReportService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) report.ReportService {
	return &ReportServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// BuildAttendanceReport implements report.ReportService.
func (s *ReportServiceImpl) BuildAttendanceReport(ctx context.Context, req report.AttendanceReportRequest) (report.AttendanceReport, error) {
	if err := req.Validate(); err != nil {
		return report.AttendanceReport{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	employees, err := s.employeeRepo.List(ctx, employee.ListFilter{
		ActiveOnly: true,
		Department: req.Department,
	})
	if err != nil {
		return report.AttendanceReport{}, fmt.Errorf("failed to list employees: %w", err)
	}

	records, err := s.attendanceRepo.QueryRange(ctx, start, end, nil)
	if err != nil {
		return report.AttendanceReport{}, fmt.Errorf("failed to query attendance range: %w", err)
	}

	// Index records by (employee, date); records for employees outside the
	// filtered roster are skipped.
	byEmployee := make(map[string]map[string]attendance.Attendance, len(employees))
	for _, emp := range employees {
		byEmployee[emp.ID] = make(map[string]attendance.Attendance)
	}
	for _, record := range records {
		cells, ok := byEmployee[record.EmployeeID]
		if !ok {
			continue
		}
		cells[record.Date.Format("2006-01-02")] = record
	}

	dates := enumerateDates(start, end)

	result := report.AttendanceReport{
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Dates:          dates,
		Employees:      make([]report.EmployeeReport, 0, len(employees)),
		TotalEmployees: len(employees),
	}

	for _, emp := range employees {
		entry := report.EmployeeReport{
			Employee:   employee.NewEmployeeResponse(emp),
			Attendance: make(map[string]report.DayCell, len(dates)),
			Summary:    report.EmployeeSummary{TotalDays: len(dates)},
		}

		for _, dateStr := range dates {
			record, ok := byEmployee[emp.ID][dateStr]
			if !ok {
				entry.Attendance[dateStr] = report.DayCell{
					CheckIn:  "-",
					CheckOut: "-",
					Hours:    0,
					Status:   attendance.StatusAbsent,
				}
				entry.Summary.AbsentDays++
				continue
			}

			cell := report.DayCell{
				CheckIn:  "-",
				CheckOut: "-",
				Hours:    record.TotalHours,
				Status:   record.Status,
			}
			if record.CheckIn != nil {
				cell.CheckIn = record.CheckIn.Time
			}
			if record.CheckOut != nil {
				cell.CheckOut = record.CheckOut.Time
			}
			entry.Attendance[dateStr] = cell

			entry.Summary.PresentDays++
			entry.Summary.TotalHours += record.TotalHours
		}

		result.Employees = append(result.Employees, entry)
	}

	return result, nil
}

func enumerateDates(start, end time.Time) []string {
	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format("2006-01-02"))
	}
	return dates
}
