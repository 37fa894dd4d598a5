package payroll

import "errors"

var (
	ErrPayrollNotFound       = errors.New("payroll record not found")
	ErrPayrollAlreadyExists  = errors.New("payroll already exists for this employee and period")
	ErrInvalidPayrollPeriod  = errors.New("invalid payroll period, expected YYYY-MM")
	ErrEmployeeHasNoSalary   = errors.New("employee has no base salary configured")
	ErrPayrollLocked         = errors.New("payroll record is locked")
	ErrInvalidStatusChange   = errors.New("invalid payroll status transition")
	ErrDeductionTypeNotFound = errors.New("deduction type not found")
)
