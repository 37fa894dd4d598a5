package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/lakbayhr/ems-backend-go/internal/domain/leave"
	"github.com/lakbayhr/ems-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

const leaveColumns = `l.id, l.employee_id, l.leave_type, l.start_date, l.end_date, l.days,
	l.reason, l.status, l.reviewed_by, l.reviewed_at, l.created_at, l.updated_at,
	e.first_name || ' ' || e.last_name AS employee_name, e.employee_code`

const leaveJoins = `
	FROM leave_requests l
	JOIN employees e ON l.employee_id = e.id`

func scanLeave(row pgx.Row) (leave.LeaveRequest, error) {
	var l leave.LeaveRequest
	err := row.Scan(
		&l.ID,
		&l.EmployeeID,
		&l.LeaveType,
		&l.StartDate,
		&l.EndDate,
		&l.Days,
		&l.Reason,
		&l.Status,
		&l.ReviewedBy,
		&l.ReviewedAt,
		&l.CreatedAt,
		&l.UpdatedAt,
		&l.EmployeeName,
		&l.EmployeeCode,
	)
	return l, err
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (employee_id, leave_type, start_date, end_date, days, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		req.EmployeeID,
		req.LeaveType,
		req.StartDate,
		req.EndDate,
		req.Days,
		req.Reason,
		req.Status,
	).Scan(&id)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return r.GetByID(ctx, id)
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanLeave(q.QueryRow(ctx, `SELECT `+leaveColumns+leaveJoins+` WHERE l.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}

	return found, nil
}

// List implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != "" {
		where = append(where, fmt.Sprintf("l.employee_id = $%d", argPos))
		args = append(args, filter.EmployeeID)
		argPos++
	}
	if filter.Status != "" {
		where = append(where, fmt.Sprintf("l.status = $%d", argPos))
		args = append(args, filter.Status)
		argPos++
	}
	if filter.From != nil {
		where = append(where, fmt.Sprintf("l.end_date >= $%d", argPos))
		args = append(args, *filter.From)
		argPos++
	}
	if filter.To != nil {
		where = append(where, fmt.Sprintf("l.start_date <= $%d", argPos))
		args = append(args, *filter.To)
		argPos++
	}

	whereClause := " WHERE " + strings.Join(where, " AND ")

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*)`+leaveJoins+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	listQuery := `SELECT ` + leaveColumns + leaveJoins + whereClause +
		fmt.Sprintf(" ORDER BY l.created_at DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

// UpdateStatus implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.LeaveStatus, reviewerID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE leave_requests
		SET status = $1, reviewed_by = $2, reviewed_at = NOW(), updated_at = NOW()
		WHERE id = $3
	`, status, reviewerID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}

// HasOverlapping implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM leave_requests
			WHERE employee_id = $1
			  AND status != 'rejected'
			  AND start_date <= $3
			  AND end_date >= $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, start, end).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
