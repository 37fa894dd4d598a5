package payroll

import "github.com/shopspring/decimal"

var twelve = decimal.NewFromInt(12)

// annualTaxTable holds the graduated TRAIN-law brackets over ANNUAL income.
// Value is the marginal rate, Base the tax owed at the bracket floor and
// ExcessOver the floor itself.
var annualTaxTable = BracketTable{
	Brackets: []Bracket{
		{Min: d("0"), Max: d("250000"), Value: d("0")},
		{Min: d("250000.01"), Max: d("400000"), Value: d("0.20"), ExcessOver: d("250000")},
		{Min: d("400000.01"), Max: d("800000"), Value: d("0.25"), Base: d("30000"), ExcessOver: d("400000")},
		{Min: d("800000.01"), Max: d("2000000"), Value: d("0.30"), Base: d("130000"), ExcessOver: d("800000")},
		{Min: d("2000000.01"), Max: d("8000000"), Value: d("0.32"), Base: d("490000"), ExcessOver: d("2000000")},
		{Min: d("8000000.01"), Open: true, Value: d("0.35"), Base: d("2410000"), ExcessOver: d("8000000")},
	},
}

// WithholdingTax computes the monthly BIR withholding amount for the given
// monthly income: annualize, apply the graduated table, divide back by 12.
func WithholdingTax(monthlyIncome decimal.Decimal) decimal.Decimal {
	annual := monthlyIncome.Mul(twelve)
	b := annualTaxTable.Find(annual)
	annualTax := b.Base.Add(annual.Sub(b.ExcessOver).Mul(b.Value))
	return annualTax.Div(twelve)
}

// ThirteenthMonthPay is the mandated year-end benefit. No proration: the full
// monthly base salary is paid out.
func ThirteenthMonthPay(baseSalary decimal.Decimal) decimal.Decimal {
	return baseSalary
}

// HolidayPay returns the premium for one holiday worked: the daily rate
// times 2.0 on regular holidays or 1.3 on special non-working days.
func HolidayPay(baseSalary decimal.Decimal, regularHoliday bool) decimal.Decimal {
	daily := baseSalary.Div(decimal.NewFromInt(WorkingDaysPerMonth))
	if regularHoliday {
		return daily.Mul(RegularHolidayMultiplier)
	}
	return daily.Mul(SpecialHolidayMultiplier)
}

// HourlyRate derives the hourly rate from a monthly base salary.
func HourlyRate(baseSalary decimal.Decimal) decimal.Decimal {
	return baseSalary.Div(MonthlyWorkHours)
}

// OvertimePay prices the summed overtime hours at the premium hourly rate.
func OvertimePay(baseSalary, overtimeHours decimal.Decimal) decimal.Decimal {
	return overtimeHours.Mul(HourlyRate(baseSalary).Mul(OvertimeRateMultiplier))
}
