package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/lakbayhr/ems-backend-go/internal/domain/payroll"
	"github.com/lakbayhr/ems-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const payrollColumns = `pr.id, pr.employee_id, pr.payroll_period, pr.pay_date,
	pr.base_salary, pr.overtime_pay, pr.holiday_pay, pr.allowance, pr.bonus,
	pr.philhealth, pr.sss, pr.pagibig, pr.withholding_tax,
	pr.total_earnings, pr.total_deductions, pr.net_pay,
	pr.status, pr.is_locked, pr.created_at, pr.updated_at,
	e.first_name || ' ' || e.last_name AS employee_name, e.employee_code,
	d.name AS department_name, po.title AS position_name`

const payrollJoins = `
	FROM payrolls pr
	JOIN employees e ON pr.employee_id = e.id
	LEFT JOIN departments d ON e.department_id = d.id
	LEFT JOIN positions po ON e.position_id = po.id`

func scanPayroll(row pgx.Row) (payroll.Payroll, error) {
	var p payroll.Payroll
	err := row.Scan(
		&p.ID,
		&p.EmployeeID,
		&p.PayrollPeriod,
		&p.PayDate,
		&p.BaseSalary,
		&p.OvertimePay,
		&p.HolidayPay,
		&p.Allowance,
		&p.Bonus,
		&p.PhilHealth,
		&p.SSS,
		&p.PagIbig,
		&p.WithholdingTax,
		&p.TotalEarnings,
		&p.TotalDeductions,
		&p.NetPay,
		&p.Status,
		&p.IsLocked,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.EmployeeName,
		&p.EmployeeCode,
		&p.DepartmentName,
		&p.PositionName,
	)
	return p, err
}

// Create implements payroll.PayrollRepository. A unique constraint over
// (employee_id, payroll_period) makes the duplicate check race-proof.
func (r *payrollRepositoryImpl) Create(ctx context.Context, record payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payrolls (
			employee_id, payroll_period, pay_date,
			base_salary, overtime_pay, holiday_pay, allowance, bonus,
			philhealth, sss, pagibig, withholding_tax,
			total_earnings, total_deductions, net_pay,
			status, is_locked
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		record.EmployeeID,
		record.PayrollPeriod,
		record.PayDate,
		record.BaseSalary,
		record.OvertimePay,
		record.HolidayPay,
		record.Allowance,
		record.Bonus,
		record.PhilHealth,
		record.SSS,
		record.PagIbig,
		record.WithholdingTax,
		record.TotalEarnings,
		record.TotalDeductions,
		record.NetPay,
		record.Status,
		record.IsLocked,
	).Scan(&id)
	if err != nil {
		if strings.Contains(err.Error(), "uk_payrolls_employee_period") {
			return payroll.Payroll{}, payroll.ErrPayrollAlreadyExists
		}
		return payroll.Payroll{}, err
	}

	return r.GetByID(ctx, id)
}

// CreateItem implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) CreateItem(ctx context.Context, item payroll.PayrollItem) (payroll.PayrollItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_items (payroll_id, deduction_type_id, item_type, description, amount)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, payroll_id, deduction_type_id, item_type, description, amount, created_at
	`

	var created payroll.PayrollItem
	err := q.QueryRow(ctx, query,
		item.PayrollID,
		item.DeductionTypeID,
		item.ItemType,
		item.Description,
		item.Amount,
	).Scan(
		&created.ID,
		&created.PayrollID,
		&created.DeductionTypeID,
		&created.ItemType,
		&created.Description,
		&created.Amount,
		&created.CreatedAt,
	)
	if err != nil {
		return payroll.PayrollItem{}, err
	}

	return created, nil
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanPayroll(q.QueryRow(ctx, `SELECT `+payrollColumns+payrollJoins+` WHERE pr.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, err
	}

	return found, nil
}

// GetByEmployeeAndPeriod implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByEmployeeAndPeriod(ctx context.Context, employeeID, period string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanPayroll(q.QueryRow(ctx,
		`SELECT `+payrollColumns+payrollJoins+` WHERE pr.employee_id = $1 AND pr.payroll_period = $2`,
		employeeID, period))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, err
	}

	return found, nil
}

// List implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.Payroll, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != "" {
		where = append(where, fmt.Sprintf("pr.employee_id = $%d", argPos))
		args = append(args, filter.EmployeeID)
		argPos++
	}
	if filter.PayrollPeriod != "" {
		where = append(where, fmt.Sprintf("pr.payroll_period = $%d", argPos))
		args = append(args, filter.PayrollPeriod)
		argPos++
	}
	if filter.Status != "" {
		where = append(where, fmt.Sprintf("pr.status = $%d", argPos))
		args = append(args, filter.Status)
		argPos++
	}

	whereClause := " WHERE " + strings.Join(where, " AND ")

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*)`+payrollJoins+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	listQuery := `SELECT ` + payrollColumns + payrollJoins + whereClause +
		fmt.Sprintf(" ORDER BY pr.payroll_period DESC, e.employee_code LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []payroll.Payroll
	for rows.Next() {
		p, err := scanPayroll(rows)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// ListItems implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListItems(ctx context.Context, payrollID string) ([]payroll.PayrollItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, payroll_id, deduction_type_id, item_type, description, amount, created_at
		FROM payroll_items
		WHERE payroll_id = $1
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, payrollID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []payroll.PayrollItem
	for rows.Next() {
		var it payroll.PayrollItem
		if err := rows.Scan(
			&it.ID,
			&it.PayrollID,
			&it.DeductionTypeID,
			&it.ItemType,
			&it.Description,
			&it.Amount,
			&it.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// UpdateStatus implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) UpdateStatus(ctx context.Context, id string, status payroll.PayrollStatus) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE payrolls SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}
	return nil
}

// SetLocked implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) SetLocked(ctx context.Context, id string, locked bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE payrolls SET is_locked = $1, updated_at = NOW() WHERE id = $2`, locked, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}
	return nil
}

// Delete implements payroll.PayrollRepository. Items cascade at the DB level.
func (r *payrollRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payrolls WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}
	return nil
}

// GetPeriodSummary implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetPeriodSummary(ctx context.Context, period string) (payroll.PeriodSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*),
			   COALESCE(SUM(total_earnings), 0),
			   COALESCE(SUM(total_deductions), 0),
			   COALESCE(SUM(net_pay), 0)
		FROM payrolls
		WHERE payroll_period = $1
	`

	summary := payroll.PeriodSummary{PayrollPeriod: period}
	err := q.QueryRow(ctx, query, period).Scan(
		&summary.EmployeeCount,
		&summary.TotalEarnings,
		&summary.TotalDeductions,
		&summary.TotalNetPay,
	)
	if err != nil {
		return payroll.PeriodSummary{}, err
	}

	return summary, nil
}

// CreateDeductionType implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) CreateDeductionType(ctx context.Context, dt payroll.DeductionType) (payroll.DeductionType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO deduction_types (name, description)
		VALUES ($1, $2)
		RETURNING id, name, description, created_at
	`

	var created payroll.DeductionType
	err := q.QueryRow(ctx, query, dt.Name, dt.Description).Scan(
		&created.ID, &created.Name, &created.Description, &created.CreatedAt,
	)
	if err != nil {
		return payroll.DeductionType{}, err
	}

	return created, nil
}

// GetDeductionTypeByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetDeductionTypeByID(ctx context.Context, id string) (payroll.DeductionType, error) {
	q := GetQuerier(ctx, r.db)

	var found payroll.DeductionType
	err := q.QueryRow(ctx, `SELECT id, name, description, created_at FROM deduction_types WHERE id = $1`, id).Scan(
		&found.ID, &found.Name, &found.Description, &found.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.DeductionType{}, payroll.ErrDeductionTypeNotFound
		}
		return payroll.DeductionType{}, err
	}

	return found, nil
}

// ListDeductionTypes implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListDeductionTypes(ctx context.Context) ([]payroll.DeductionType, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, description, created_at FROM deduction_types ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []payroll.DeductionType
	for rows.Next() {
		var dt payroll.DeductionType
		if err := rows.Scan(&dt.ID, &dt.Name, &dt.Description, &dt.CreatedAt); err != nil {
			return nil, err
		}
		types = append(types, dt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return types, nil
}
