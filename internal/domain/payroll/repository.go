package payroll

import "context"

// PayrollRepository defines data access for payroll records and their items.
// Create relies on a DB unique constraint over (employee_id, payroll_period);
// a violation surfaces as ErrPayrollAlreadyExists so concurrent runs for the
// same employee and period can never both insert.
type PayrollRepository interface {
	Create(ctx context.Context, record Payroll) (Payroll, error)
	CreateItem(ctx context.Context, item PayrollItem) (PayrollItem, error)

	GetByID(ctx context.Context, id string) (Payroll, error)
	GetByEmployeeAndPeriod(ctx context.Context, employeeID, period string) (Payroll, error)
	List(ctx context.Context, filter PayrollFilter) ([]Payroll, int64, error)
	ListItems(ctx context.Context, payrollID string) ([]PayrollItem, error)

	UpdateStatus(ctx context.Context, id string, status PayrollStatus) error
	SetLocked(ctx context.Context, id string, locked bool) error
	Delete(ctx context.Context, id string) error

	GetPeriodSummary(ctx context.Context, period string) (PeriodSummary, error)

	CreateDeductionType(ctx context.Context, dt DeductionType) (DeductionType, error)
	GetDeductionTypeByID(ctx context.Context, id string) (DeductionType, error)
	ListDeductionTypes(ctx context.Context) ([]DeductionType, error)
}
