package payroll

import "context"

// PayrollService orchestrates payroll runs and downstream workflow actions.
type PayrollService interface {
	// ProcessPayroll executes one run for one employee and period: it either
	// creates the full payroll record with all its items or fails with no
	// state change.
	ProcessPayroll(ctx context.Context, req ProcessPayrollRequest) (PayrollResponse, error)

	// CheckDuplicate is the read-only pre-check callers invoke before
	// processing.
	CheckDuplicate(ctx context.Context, employeeID, period string) (CheckDuplicateResponse, error)

	GetPayroll(ctx context.Context, id string) (PayrollResponse, error)
	GetPayrollByEmployeePeriod(ctx context.Context, employeeID, period string) (PayrollResponse, error)
	ListPayrolls(ctx context.Context, filter PayrollFilter) (ListPayrollResponse, error)
	UpdateStatus(ctx context.Context, req UpdatePayrollStatusRequest) (PayrollResponse, error)

	// SetLock toggles the immutability flag; unlocking is a privileged action.
	SetLock(ctx context.Context, id string, locked bool) error
	DeletePayroll(ctx context.Context, id string) error

	GetPeriodSummary(ctx context.Context, period string) (PeriodSummaryResponse, error)
	GeneratePayslipPDF(ctx context.Context, id string) ([]byte, error)

	CreateDeductionType(ctx context.Context, req CreateDeductionTypeRequest) (DeductionTypeResponse, error)
	ListDeductionTypes(ctx context.Context) ([]DeductionTypeResponse, error)
}
