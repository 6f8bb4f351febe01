package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/synthbit-group/attendance-backend-go/internal/domain/attendance"
	"github.com/synthbit-group/attendance-backend-go/internal/pkg/database"
)

const uniqueViolationCode = "23505"

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.date,
	a.check_in_time, a.check_in_at, a.check_in_lat, a.check_in_lng,
	a.check_in_distance_m, a.check_in_within_range,
	a.check_out_time, a.check_out_at, a.check_out_lat, a.check_out_lng,
	a.check_out_distance_m, a.check_out_within_range,
	a.total_hours, a.status, a.notes, a.created_at, a.updated_at,
	e.name AS employee_name, e.department AS employee_department
`

type attendanceRow struct {
	checkInTime      *string
	checkInAt        *time.Time
	checkInLat       *float64
	checkInLng       *float64
	checkInDistance  *int
	checkInWithin    *bool
	checkOutTime     *string
	checkOutAt       *time.Time
	checkOutLat      *float64
	checkOutLng      *float64
	checkOutDistance *int
	checkOutWithin   *bool
}

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	var r attendanceRow

	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.Date,
		&r.checkInTime, &r.checkInAt, &r.checkInLat, &r.checkInLng,
		&r.checkInDistance, &r.checkInWithin,
		&r.checkOutTime, &r.checkOutAt, &r.checkOutLat, &r.checkOutLng,
		&r.checkOutDistance, &r.checkOutWithin,
		&att.TotalHours, &att.Status, &att.Notes, &att.CreatedAt, &att.UpdatedAt,
		&att.EmployeeName, &att.EmployeeDepartment,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}

	if r.checkInAt != nil {
		att.CheckIn = &attendance.CheckEvent{
			Time: deref(r.checkInTime),
			At:   r.checkInAt.UTC(),
			Location: attendance.Location{
				Lat:                derefFloat(r.checkInLat),
				Lng:                derefFloat(r.checkInLng),
				DistanceFromOffice: derefInt(r.checkInDistance),
				WithinRange:        derefBool(r.checkInWithin),
			},
		}
	}
	if r.checkOutAt != nil {
		att.CheckOut = &attendance.CheckEvent{
			Time: deref(r.checkOutTime),
			At:   r.checkOutAt.UTC(),
			Location: attendance.Location{
				Lat:                derefFloat(r.checkOutLat),
				Lng:                derefFloat(r.checkOutLng),
				DistanceFromOffice: derefInt(r.checkOutDistance),
				WithinRange:        derefBool(r.checkOutWithin),
			},
		}
	}

	return att, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefFloat(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func derefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}

func derefBool(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1
		  AND a.date = $2::date
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date.Format("2006-01-02")))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No record for that employee and day
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &att, nil
}

// CreateCheckIn implements attendance.AttendanceRepository. The UNIQUE
// (employee_id, date) constraint makes this the single point where two
// concurrent check-ins are serialized; the loser gets ErrDuplicateCheckIn.
func (a *attendanceRepository) CreateCheckIn(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	if att.CheckIn == nil {
		return attendance.Attendance{}, fmt.Errorf("check-in data is required")
	}

	query := `
		INSERT INTO attendances (
			employee_id, date,
			check_in_time, check_in_at, check_in_lat, check_in_lng,
			check_in_distance_m, check_in_within_range,
			total_hours, status, notes
		) VALUES (
			$1, $2::date, $3, $4, $5, $6, $7, $8, $9, $10, $11
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.EmployeeID,
		att.Date.Format("2006-01-02"),
		att.CheckIn.Time,
		att.CheckIn.At,
		att.CheckIn.Location.Lat,
		att.CheckIn.Location.Lng,
		att.CheckIn.Location.DistanceFromOffice,
		att.CheckIn.Location.WithinRange,
		att.TotalHours,
		att.Status,
		att.Notes,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return attendance.Attendance{}, attendance.ErrDuplicateCheckIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// ApplyCheckOut implements attendance.AttendanceRepository. The update is
// conditional on check_out_at still being NULL so a concurrent second
// check-out fails instead of silently overwriting the first.
func (a *attendanceRepository) ApplyCheckOut(ctx context.Context, id string, checkOut attendance.CheckEvent, totalHours float64, status attendance.Status) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances SET
			check_out_time = $2,
			check_out_at = $3,
			check_out_lat = $4,
			check_out_lng = $5,
			check_out_distance_m = $6,
			check_out_within_range = $7,
			total_hours = $8,
			status = $9,
			updated_at = NOW()
		WHERE id = $1
		  AND check_out_at IS NULL
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		id,
		checkOut.Time,
		checkOut.At,
		checkOut.Location.Lat,
		checkOut.Location.Lng,
		checkOut.Location.DistanceFromOffice,
		checkOut.Location.WithinRange,
		totalHours,
		status,
	).Scan(&updatedID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Either the record is gone or it lost the race to a
			// concurrent check-out; re-read to tell the two apart.
			existing, getErr := a.getByID(ctx, id)
			if getErr != nil {
				return attendance.Attendance{}, getErr
			}
			if existing == nil {
				return attendance.Attendance{}, attendance.ErrAttendanceNotFound
			}
			return attendance.Attendance{}, attendance.ErrCheckoutConflict
		}
		return attendance.Attendance{}, fmt.Errorf("failed to apply check-out: %w", err)
	}

	updated, err := a.getByID(ctx, updatedID)
	if err != nil {
		return attendance.Attendance{}, err
	}
	if updated == nil {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}

	return *updated, nil
}

func (a *attendanceRepository) getByID(ctx context.Context, id string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by id: %w", err)
	}

	return &att, nil
}

// ListByDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByDate(ctx context.Context, date time.Time, employeeID *string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.date = $1::date
	`
	args := []interface{}{date.Format("2006-01-02")}

	if employeeID != nil {
		query += ` AND a.employee_id = $2`
		args = append(args, *employeeID)
	}
	query += ` ORDER BY a.check_in_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by date: %w", err)
	}
	defer rows.Close()

	return collectAttendances(rows)
}

// QueryRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) QueryRange(ctx context.Context, start, end time.Time, employeeIDs []string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.date >= $1::date
		  AND a.date <= $2::date
	`
	args := []interface{}{start.Format("2006-01-02"), end.Format("2006-01-02")}

	if len(employeeIDs) > 0 {
		query += ` AND a.employee_id = ANY($3)`
		args = append(args, employeeIDs)
	}
	query += ` ORDER BY a.date ASC, e.name ASC, a.employee_id ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance range: %w", err)
	}
	defer rows.Close()

	return collectAttendances(rows)
}

func collectAttendances(rows pgx.Rows) ([]attendance.Attendance, error) {
	var result []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		result = append(result, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance rows: %w", err)
	}
	return result, nil
}
