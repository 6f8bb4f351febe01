package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/synthbit-group/attendance-backend-go/internal/domain/attendance"
	"github.com/synthbit-group/attendance-backend-go/internal/pkg/clock"
)

// AttendanceJobs holds read-only maintenance jobs over the attendance store.
// Records are never mutated here; the check-in/check-out flow is the only
// writer.
type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	clock          clock.Clock
}

func NewAttendanceJobs(attendanceRepo attendance.AttendanceRepository, clk clock.Clock) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		clock:          clk,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("daily_attendance_summary", 1*time.Hour, j.LogDailySummary)
}

// LogDailySummary logs the prior business day's attendance totals shortly
// after the day rolls over.
func (j *AttendanceJobs) LogDailySummary(ctx context.Context) error {
	now := j.clock.Now()

	// Only run in the first hour of the business day
	if now.Instant.In(now.BusinessDay.Location()).Hour() != 0 {
		return nil
	}

	yesterday := now.BusinessDay.AddDate(0, 0, -1)

	records, err := j.attendanceRepo.ListByDate(ctx, yesterday, nil)
	if err != nil {
		return err
	}

	var present, halfDay, openSessions int
	var totalHours float64
	for _, record := range records {
		switch record.Status {
		case attendance.StatusHalfDay:
			halfDay++
		default:
			present++
		}
		if record.CheckOut == nil {
			openSessions++
		}
		totalHours += record.TotalHours
	}

	slog.Info("Daily attendance summary",
		"date", yesterday.Format("2006-01-02"),
		"records", len(records),
		"present", present,
		"half_day", halfDay,
		"open_sessions", openSessions,
		"total_hours", totalHours,
	)

	return nil
}
