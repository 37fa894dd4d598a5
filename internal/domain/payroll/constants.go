package payroll

import "github.com/shopspring/decimal"

// Working-calendar assumptions behind the hourly rate derivation.
const (
	WorkHoursPerDay     = 8
	WorkingDaysPerMonth = 22
)

var (
	// MonthlyWorkHours is the divisor for the hourly rate: 8 h x 22 days.
	MonthlyWorkHours = decimal.NewFromInt(WorkHoursPerDay * WorkingDaysPerMonth)

	// OvertimeRateMultiplier applies on top of the hourly rate.
	OvertimeRateMultiplier = decimal.NewFromFloat(1.25)

	// Holiday pay multipliers on the daily rate.
	RegularHolidayMultiplier = decimal.NewFromFloat(2.0)
	SpecialHolidayMultiplier = decimal.NewFromFloat(1.3)
)

// CurrencyPlaces is the fixed scale for persisted monetary amounts.
const CurrencyPlaces = 2
