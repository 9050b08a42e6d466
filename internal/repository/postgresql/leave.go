package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/leave"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

// Employee name and email are denormalized into every read through a join
// so listings never need a second round trip.
const leaveColumns = `
	l.id, l.employee_id, e.name, e.email,
	l.start_date, l.end_date, l.reason, l.type, l.status,
	l.approved_by, l.notes, l.created_at, l.updated_at
`

const leaveFrom = ` FROM leaves l JOIN employees e ON e.id = l.employee_id `

func scanLeave(row pgx.Row) (leave.Leave, error) {
	var l leave.Leave
	err := row.Scan(
		&l.ID, &l.EmployeeID, &l.EmployeeName, &l.EmployeeEmail,
		&l.StartDate, &l.EndDate, &l.Reason, &l.Type, &l.Status,
		&l.ApprovedBy, &l.Notes, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

func (r *leaveRepository) queryLeaves(ctx context.Context, query string, args ...any) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaves: %w", err)
	}
	defer rows.Close()

	var leaves []leave.Leave
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave: %w", err)
		}
		leaves = append(leaves, l)
	}

	return leaves, rows.Err()
}

// Create implements leave.LeaveRepository.
func (r *leaveRepository) Create(ctx context.Context, newLeave leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	if newLeave.ID == "" {
		newLeave.ID = uuid.New().String()
	}

	query := `
		INSERT INTO leaves (id, employee_id, start_date, end_date, reason, type, status, approved_by, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newLeave.ID,
		newLeave.EmployeeID,
		newLeave.StartDate,
		newLeave.EndDate,
		newLeave.Reason,
		newLeave.Type,
		newLeave.Status,
		newLeave.ApprovedBy,
		newLeave.Notes,
	).Scan(&newLeave.CreatedAt, &newLeave.UpdatedAt)

	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to create leave: %w", err)
	}

	return newLeave, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepository) GetByID(ctx context.Context, id string) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	l, err := scanLeave(q.QueryRow(ctx, `SELECT `+leaveColumns+leaveFrom+` WHERE l.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to get leave by id: %w", err)
	}

	return l, nil
}

// List implements leave.LeaveRepository.
func (r *leaveRepository) List(ctx context.Context) ([]leave.Leave, error) {
	return r.queryLeaves(ctx, `SELECT `+leaveColumns+leaveFrom+` ORDER BY l.created_at DESC`)
}

// ListByEmployee implements leave.LeaveRepository.
func (r *leaveRepository) ListByEmployee(ctx context.Context, employeeID string) ([]leave.Leave, error) {
	return r.queryLeaves(ctx,
		`SELECT `+leaveColumns+leaveFrom+` WHERE l.employee_id = $1 ORDER BY l.created_at DESC`,
		employeeID,
	)
}

// ListByStatus implements leave.LeaveRepository.
func (r *leaveRepository) ListByStatus(ctx context.Context, status leave.LeaveStatus) ([]leave.Leave, error) {
	return r.queryLeaves(ctx,
		`SELECT `+leaveColumns+leaveFrom+` WHERE l.status = $1 ORDER BY l.created_at DESC`,
		status,
	)
}

// ListOverlapping implements leave.LeaveRepository. Interval intersection on
// inclusive dates: start_date <= rangeEnd AND end_date >= rangeStart.
func (r *leaveRepository) ListOverlapping(ctx context.Context, rangeStart, rangeEnd time.Time, employeeID *string, status *leave.LeaveStatus) ([]leave.Leave, error) {
	query := `SELECT ` + leaveColumns + leaveFrom + ` WHERE l.start_date <= $1 AND l.end_date >= $2`
	args := []any{rangeEnd, rangeStart}

	if employeeID != nil {
		args = append(args, *employeeID)
		query += fmt.Sprintf(" AND l.employee_id = $%d", len(args))
	}
	if status != nil {
		args = append(args, *status)
		query += fmt.Sprintf(" AND l.status = $%d", len(args))
	}

	query += ` ORDER BY l.start_date ASC, l.created_at ASC`

	return r.queryLeaves(ctx, query, args...)
}

// Update implements leave.LeaveRepository.
func (r *leaveRepository) Update(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leaves SET
			start_date = $2, end_date = $3, reason = $4, type = $5,
			status = $6, approved_by = $7, notes = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		l.ID, l.StartDate, l.EndDate, l.Reason, l.Type, l.Status, l.ApprovedBy, l.Notes,
	).Scan(&l.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to update leave: %w", err)
	}

	return l, nil
}

// Delete implements leave.LeaveRepository.
func (r *leaveRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leaves WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete leave: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}

	return nil
}
