package validator

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// Payroll period wire format is exactly YYYY-MM.
var payrollPeriodRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// IsValidPayrollPeriod reports whether s is a YYYY-MM calendar month.
func IsValidPayrollPeriod(s string) bool {
	return payrollPeriodRegex.MatchString(s)
}

// PeriodBounds resolves a YYYY-MM period to its first and last day inclusive.
// The period string gets "-01" appended internally to anchor the month.
func PeriodBounds(period string) (time.Time, time.Time, bool) {
	start, err := time.Parse("2006-01-02", period+"-01")
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end := start.AddDate(0, 1, -1)
	return start, end, true
}

var employeeCodeRegex = regexp.MustCompile(`^EMP-\d{4,}$`)

func IsValidEmployeeCode(code string) bool {
	return employeeCodeRegex.MatchString(code)
}

// IsNonNegativeAmount checks a monetary amount is >= 0.
func IsNonNegativeAmount(amount decimal.Decimal) bool {
	return !amount.IsNegative()
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// IsValidDateTime checks if a string is a valid ISO8601 timestamp.
func IsValidDateTime(dateTimeStr string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, dateTimeStr)
	if err == nil {
		return t, true
	}

	t, err = time.Parse(time.RFC3339Nano, dateTimeStr)
	if err == nil {
		return t, true
	}

	return time.Time{}, false
}
