package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hrcore/leave-backend-go/internal/domain/leave"
	"github.com/hrcore/leave-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

const leaveColumns = `
	id, employee_id, type, start_date, end_date, half_day, hours,
	status, reason, resolved_by, approved_at, created_at, updated_at
`

func scanLeave(row pgx.Row) (leave.Leave, error) {
	var l leave.Leave
	err := row.Scan(
		&l.ID, &l.EmployeeID, &l.Type, &l.StartDate, &l.EndDate, &l.HalfDay, &l.Hours,
		&l.Status, &l.Reason, &l.ResolvedBy, &l.ApprovedAt, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

func (r *leaveRepositoryImpl) Create(ctx context.Context, newLeave leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leaves (
			id, employee_id, type, start_date, end_date, half_day, hours,
			status, reason, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	newLeave.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		newLeave.ID, newLeave.EmployeeID, newLeave.Type, newLeave.StartDate, newLeave.EndDate,
		newLeave.HalfDay, newLeave.Hours, newLeave.Status, newLeave.Reason,
	).Scan(&newLeave.CreatedAt, &newLeave.UpdatedAt)
	if err != nil {
		return leave.Leave{}, err
	}

	return newLeave, nil
}

func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + ` FROM leaves WHERE id = $1`

	l, err := scanLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, err
	}
	return l, nil
}

func (r *leaveRepositoryImpl) ResolvePending(ctx context.Context, id string, status leave.LeaveStatus, resolvedBy string, approvedAt *time.Time) error {
	q := GetQuerier(ctx, r.db)

	// The status guard makes the transition race-safe: a concurrent
	// resolution that committed first flips the row out of pending, so this
	// update matches zero rows instead of resolving the leave twice.
	query := `
		UPDATE leaves
		SET status = $1, resolved_by = $2, approved_at = $3, updated_at = NOW()
		WHERE id = $4 AND status = 'pending'
	`

	commandTag, err := q.Exec(ctx, query, status, resolvedBy, approvedAt, id)
	if err != nil {
		return fmt.Errorf("failed to update status for leave %s: %w", id, err)
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrLeaveNotPending
	}
	return nil
}

func (r *leaveRepositoryImpl) List(ctx context.Context, filter leave.ListFilter) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + ` FROM leaves WHERE 1=1`
	args := []interface{}{}

	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		query += fmt.Sprintf(" AND employee_id = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.FromDate != nil {
		args = append(args, *filter.FromDate)
		query += fmt.Sprintf(" AND start_date >= $%d", len(args))
	}
	if filter.ToDate != nil {
		args = append(args, *filter.ToDate)
		query += fmt.Sprintf(" AND start_date <= $%d", len(args))
	}

	query += " ORDER BY created_at DESC"

	limit := filter.Limit
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	args = append(args, limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leaves []leave.Leave
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, l)
	}
	return leaves, rows.Err()
}
