package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/lakbayhr/ems-backend-go/internal/domain/attendance"
	"github.com/lakbayhr/ems-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `a.id, a.employee_id, a.date, a.time_in, a.time_out, a.status,
	a.overtime_hours, a.notes, a.created_at, a.updated_at,
	e.first_name || ' ' || e.last_name AS employee_name, e.employee_code`

const attendanceJoins = `
	FROM attendances a
	JOIN employees e ON a.employee_id = e.id`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID,
		&a.EmployeeID,
		&a.Date,
		&a.TimeIn,
		&a.TimeOut,
		&a.Status,
		&a.OvertimeHours,
		&a.Notes,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.EmployeeName,
		&a.EmployeeCode,
	)
	return a, err
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (employee_id, date, time_in, time_out, status, overtime_hours, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		att.EmployeeID,
		att.Date,
		att.TimeIn,
		att.TimeOut,
		att.Status,
		att.OvertimeHours,
		att.Notes,
	).Scan(&id)
	if err != nil {
		if strings.Contains(err.Error(), "uk_attendances_employee_date") {
			return attendance.Attendance{}, attendance.ErrAttendanceExists
		}
		return attendance.Attendance{}, err
	}

	return r.GetByID(ctx, id)
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanAttendance(q.QueryRow(ctx, `SELECT `+attendanceColumns+attendanceJoins+` WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, err
	}

	return found, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanAttendance(q.QueryRow(ctx,
		`SELECT `+attendanceColumns+attendanceJoins+` WHERE a.employee_id = $1 AND a.date = $2`,
		employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, err
	}

	return found, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != "" {
		where = append(where, fmt.Sprintf("a.employee_id = $%d", argPos))
		args = append(args, filter.EmployeeID)
		argPos++
	}
	if filter.From != nil {
		where = append(where, fmt.Sprintf("a.date >= $%d", argPos))
		args = append(args, *filter.From)
		argPos++
	}
	if filter.To != nil {
		where = append(where, fmt.Sprintf("a.date <= $%d", argPos))
		args = append(args, *filter.To)
		argPos++
	}
	if filter.Status != "" {
		where = append(where, fmt.Sprintf("a.status = $%d", argPos))
		args = append(args, filter.Status)
		argPos++
	}

	whereClause := " WHERE " + strings.Join(where, " AND ")

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*)`+attendanceJoins+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	listQuery := `SELECT ` + attendanceColumns + attendanceJoins + whereClause +
		fmt.Sprintf(" ORDER BY a.date DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET time_in = $1, time_out = $2, status = $3, overtime_hours = $4, notes = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		att.TimeIn,
		att.TimeOut,
		att.Status,
		att.OvertimeHours,
		att.Notes,
		att.ID,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, err
	}

	return r.GetByID(ctx, id)
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// SumOvertimeHours implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) SumOvertimeHours(ctx context.Context, employeeID string, from, to time.Time) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(overtime_hours), 0)
		FROM attendances
		WHERE employee_id = $1 AND date >= $2 AND date <= $3
	`

	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, employeeID, from, to).Scan(&total); err != nil {
		return decimal.Zero, err
	}

	return total, nil
}
