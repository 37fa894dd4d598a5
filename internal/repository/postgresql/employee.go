package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/lakbayhr/ems-backend-go/internal/domain/employee"
	"github.com/lakbayhr/ems-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `e.id, e.employee_code, e.first_name, e.last_name, e.email, e.phone_number,
	e.address, e.dob, e.marital_status, e.department_id, e.position_id, e.hire_date,
	e.base_salary, e.allowance, e.status, e.photo_url, e.created_at, e.updated_at, e.deleted_at,
	d.name AS department_name, p.title AS position_name`

const employeeJoins = `
	FROM employees e
	LEFT JOIN departments d ON e.department_id = d.id
	LEFT JOIN positions p ON e.position_id = p.id`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID,
		&e.EmployeeCode,
		&e.FirstName,
		&e.LastName,
		&e.Email,
		&e.PhoneNumber,
		&e.Address,
		&e.DOB,
		&e.MaritalStatus,
		&e.DepartmentID,
		&e.PositionID,
		&e.HireDate,
		&e.BaseSalary,
		&e.Allowance,
		&e.Status,
		&e.PhotoURL,
		&e.CreatedAt,
		&e.UpdatedAt,
		&e.DeletedAt,
		&e.DepartmentName,
		&e.PositionName,
	)
	return e, err
}

func mapEmployeeConstraintErr(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "uk_employees_code"):
		return employee.ErrEmployeeCodeExists
	case strings.Contains(msg, "uk_employees_email"):
		return employee.ErrEmailExists
	}
	return err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			employee_code, first_name, last_name, email, phone_number, address, dob,
			marital_status, department_id, position_id, hire_date, base_salary,
			allowance, status, photo_url
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		emp.EmployeeCode,
		emp.FirstName,
		emp.LastName,
		emp.Email,
		emp.PhoneNumber,
		emp.Address,
		emp.DOB,
		emp.MaritalStatus,
		emp.DepartmentID,
		emp.PositionID,
		emp.HireDate,
		emp.BaseSalary,
		emp.Allowance,
		emp.Status,
		emp.PhotoURL,
	).Scan(&id)
	if err != nil {
		return employee.Employee{}, mapEmployeeConstraintErr(err)
	}

	return r.GetByID(ctx, id)
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + employeeJoins + ` WHERE e.id = $1 AND e.deleted_at IS NULL`

	found, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	return found, nil
}

// GetByCode implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + employeeJoins + ` WHERE e.employee_code = $1 AND e.deleted_at IS NULL`

	found, err := scanEmployee(q.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	return found, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"e.deleted_at IS NULL"}
	args := []interface{}{}
	argPos := 1

	if filter.Search != "" {
		where = append(where, fmt.Sprintf(
			"(e.first_name ILIKE $%d OR e.last_name ILIKE $%d OR e.employee_code ILIKE $%d)",
			argPos, argPos, argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}
	if filter.DepartmentID != "" {
		where = append(where, fmt.Sprintf("e.department_id = $%d", argPos))
		args = append(args, filter.DepartmentID)
		argPos++
	}
	if filter.Status != "" {
		where = append(where, fmt.Sprintf("e.status = $%d", argPos))
		args = append(args, filter.Status)
		argPos++
	}

	whereClause := " WHERE " + strings.Join(where, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*)` + employeeJoins + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	listQuery := `SELECT ` + employeeColumns + employeeJoins + whereClause +
		fmt.Sprintf(" ORDER BY e.employee_code LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET first_name = $1, last_name = $2, email = $3, phone_number = $4, address = $5,
			dob = $6, marital_status = $7, department_id = $8, position_id = $9,
			hire_date = $10, base_salary = $11, allowance = $12, status = $13,
			photo_url = $14, updated_at = NOW()
		WHERE id = $15 AND deleted_at IS NULL
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		emp.FirstName,
		emp.LastName,
		emp.Email,
		emp.PhoneNumber,
		emp.Address,
		emp.DOB,
		emp.MaritalStatus,
		emp.DepartmentID,
		emp.PositionID,
		emp.HireDate,
		emp.BaseSalary,
		emp.Allowance,
		emp.Status,
		emp.PhotoURL,
		emp.ID,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, mapEmployeeConstraintErr(err)
	}

	return r.GetByID(ctx, id)
}

// SoftDelete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE employees SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// NextEmployeeCode implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) NextEmployeeCode(ctx context.Context) (string, error) {
	q := GetQuerier(ctx, r.db)

	// Codes are EMP-NNNN, zero padded, strictly increasing.
	query := `
		SELECT COALESCE(MAX(CAST(SUBSTRING(employee_code FROM 5) AS INTEGER)), 0)
		FROM employees
		WHERE employee_code ~ '^EMP-\d+$'
	`

	var maxSeq int
	if err := q.QueryRow(ctx, query).Scan(&maxSeq); err != nil {
		return "", err
	}

	return fmt.Sprintf("EMP-%04d", maxSeq+1), nil
}
