package report

import "context"

type ReportService interface {
	// BuildAttendanceReport folds the active roster and the stored records
	// for a date range into a per-employee, per-date attendance matrix.
	BuildAttendanceReport(ctx context.Context, req AttendanceReportRequest) (AttendanceReport, error)
}
