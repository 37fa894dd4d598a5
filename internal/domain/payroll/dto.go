package payroll

import (
	"github.com/lakbayhr/ems-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== PROCESSING DTOs ==========

type CustomDeductionInput struct {
	DeductionTypeID *string         `json:"deduction_type_id,omitempty"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
}

type ProcessPayrollRequest struct {
	EmployeeID       string                 `json:"employee_id"`
	PayrollPeriod    string                 `json:"payroll_period"`
	HolidayPay       decimal.Decimal        `json:"holiday_pay"`
	Bonus            decimal.Decimal        `json:"bonus"`
	PayDate          *string                `json:"pay_date,omitempty"`
	CustomDeductions []CustomDeductionInput `json:"custom_deductions,omitempty"`
}

func (r *ProcessPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID == "" {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !validator.IsValidPayrollPeriod(r.PayrollPeriod) {
		errs = append(errs, validator.ValidationError{Field: "payroll_period", Message: "must be in YYYY-MM format"})
	}
	if r.HolidayPay.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "holiday_pay", Message: "must be non-negative"})
	}
	if r.Bonus.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "bonus", Message: "must be non-negative"})
	}
	if r.PayDate != nil {
		if _, ok := validator.IsValidDate(*r.PayDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "pay_date", Message: "must be in YYYY-MM-DD format"})
		}
	}
	for _, cd := range r.CustomDeductions {
		if cd.Description == "" {
			errs = append(errs, validator.ValidationError{Field: "custom_deductions.description", Message: "is required"})
		}
		if cd.Amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "custom_deductions.amount", Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePayrollStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"` // "approved" or "paid"
}

func (r *UpdatePayrollStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, []string{string(PayrollStatusApproved), string(PayrollStatusPaid)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'approved' or 'paid'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== RESPONSE DTOs ==========

type PayrollItemResponse struct {
	ID              string          `json:"id"`
	DeductionTypeID *string         `json:"deduction_type_id,omitempty"`
	ItemType        string          `json:"item_type"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
}

type PayrollResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   string  `json:"employee_name,omitempty"`
	EmployeeCode   string  `json:"employee_code,omitempty"`
	DepartmentName *string `json:"department_name,omitempty"`
	PositionName   *string `json:"position_name,omitempty"`
	PayrollPeriod  string  `json:"payroll_period"`
	PayDate        string  `json:"pay_date"`

	BaseSalary     decimal.Decimal `json:"base_salary"`
	OvertimePay    decimal.Decimal `json:"overtime_pay"`
	HolidayPay     decimal.Decimal `json:"holiday_pay"`
	Allowance      decimal.Decimal `json:"allowance"`
	Bonus          decimal.Decimal `json:"bonus"`
	PhilHealth     decimal.Decimal `json:"philhealth"`
	SSS            decimal.Decimal `json:"sss"`
	PagIbig        decimal.Decimal `json:"pagibig"`
	WithholdingTax decimal.Decimal `json:"withholding_tax"`

	TotalEarnings   decimal.Decimal `json:"total_earnings"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetPay          decimal.Decimal `json:"net_pay"`

	Status   string                `json:"status"`
	IsLocked bool                  `json:"is_locked"`
	Items    []PayrollItemResponse `json:"items,omitempty"`
}

type CheckDuplicateResponse struct {
	Exists  bool             `json:"exists"`
	Payroll *PayrollResponse `json:"payroll,omitempty"`
}

type PayrollFilter struct {
	EmployeeID    string
	PayrollPeriod string
	Status        string
	Page          int
	Limit         int
}

type ListPayrollResponse struct {
	Data       []PayrollResponse `json:"data"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}

type PeriodSummaryResponse struct {
	PayrollPeriod   string          `json:"payroll_period"`
	EmployeeCount   int             `json:"employee_count"`
	TotalEarnings   decimal.Decimal `json:"total_earnings"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalNetPay     decimal.Decimal `json:"total_net_pay"`
}

type CreateDeductionTypeRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

func (r *CreateDeductionTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DeductionTypeResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}
