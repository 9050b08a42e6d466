package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/attendance"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, employee_id, date, shift, status, check_in, check_out,
	total_hours, notes, marked_by, created_at, updated_at
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.Date, &a.Shift, &a.Status,
		&a.CheckIn, &a.CheckOut, &a.TotalHours, &a.Notes, &a.MarkedBy,
		&a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

// Upsert implements attendance.AttendanceRepository. The unique index on
// (employee_id, date) makes the conflict branch replace status, shift, notes
// and marked_by while keeping the existing check_in/check_out/total_hours
// unless the caller supplies them.
func (r *attendanceRepository) Upsert(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	if att.ID == "" {
		att.ID = uuid.New().String()
	}
	att.Date = attendance.Day(att.Date)

	query := `
		INSERT INTO attendances (id, employee_id, date, shift, status, check_in, check_out, total_hours, notes, marked_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			shift = EXCLUDED.shift,
			status = EXCLUDED.status,
			notes = EXCLUDED.notes,
			marked_by = EXCLUDED.marked_by,
			check_in = COALESCE(EXCLUDED.check_in, attendances.check_in),
			check_out = COALESCE(EXCLUDED.check_out, attendances.check_out),
			total_hours = CASE WHEN EXCLUDED.total_hours > 0 THEN EXCLUDED.total_hours ELSE attendances.total_hours END,
			updated_at = NOW()
		RETURNING ` + attendanceColumns

	stored, err := scanAttendance(q.QueryRow(ctx, query,
		att.ID,
		att.EmployeeID,
		att.Date,
		att.Shift,
		att.Status,
		att.CheckIn,
		att.CheckOut,
		att.TotalHours,
		att.Notes,
		att.MarkedBy,
	))
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return stored, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository. A missing
// record is not an error; the day simply has no attendance yet.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanAttendance(q.QueryRow(ctx,
		`SELECT `+attendanceColumns+` FROM attendances WHERE employee_id = $1 AND date = $2`,
		employeeID, attendance.Day(date),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}

	return &a, nil
}

// ListForDay implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListForDay(ctx context.Context, day time.Time) ([]attendance.Attendance, error) {
	return r.queryAttendances(ctx,
		`SELECT `+attendanceColumns+` FROM attendances WHERE date = $1 ORDER BY created_at ASC`,
		attendance.Day(day),
	)
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string, rangeStart, rangeEnd time.Time) ([]attendance.Attendance, error) {
	return r.queryAttendances(ctx,
		`SELECT `+attendanceColumns+` FROM attendances
		 WHERE employee_id = $1 AND date >= $2 AND date <= $3
		 ORDER BY date DESC`,
		employeeID, attendance.Day(rangeStart), attendance.Day(rangeEnd),
	)
}

func (r *attendanceRepository) queryAttendances(ctx context.Context, query string, args ...any) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}

	return records, rows.Err()
}
