package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollStatus enum
type PayrollStatus string

const (
	PayrollStatusDraft     PayrollStatus = "draft"
	PayrollStatusProcessed PayrollStatus = "processed"
	PayrollStatusApproved  PayrollStatus = "approved"
	PayrollStatusPaid      PayrollStatus = "paid"
)

// ItemType enum
type ItemType string

const (
	ItemTypeEarning   ItemType = "earning"
	ItemTypeDeduction ItemType = "deduction"
)

// Payroll is one processed run for one employee and one YYYY-MM period.
// A successful run locks the record: monetary fields stay immutable until an
// explicit privileged unlock.
type Payroll struct {
	ID            string
	EmployeeID    string
	PayrollPeriod string
	PayDate       time.Time

	BaseSalary     decimal.Decimal
	OvertimePay    decimal.Decimal
	HolidayPay     decimal.Decimal
	Allowance      decimal.Decimal
	Bonus          decimal.Decimal
	PhilHealth     decimal.Decimal
	SSS            decimal.Decimal
	PagIbig        decimal.Decimal
	WithholdingTax decimal.Decimal

	TotalEarnings   decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal

	Status   PayrollStatus
	IsLocked bool

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields for payslip rendering and listings
	EmployeeName   *string
	EmployeeCode   *string
	DepartmentName *string
	PositionName   *string
}

// PayrollItem is an ad hoc earning/deduction line attached during a run.
// Items are created as a side effect of processing and never mutated.
type PayrollItem struct {
	ID              string
	PayrollID       string
	DeductionTypeID *string
	ItemType        ItemType
	Description     string
	Amount          decimal.Decimal
	CreatedAt       time.Time
}

// DeductionType classifies custom deduction items (loans, tardiness, etc.).
type DeductionType struct {
	ID          string
	Name        string
	Description *string
	CreatedAt   time.Time
}

// PeriodSummary aggregates a period across all processed employees.
type PeriodSummary struct {
	PayrollPeriod   string
	EmployeeCount   int
	TotalEarnings   decimal.Decimal
	TotalDeductions decimal.Decimal
	TotalNetPay     decimal.Decimal
}
