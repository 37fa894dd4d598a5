package payroll

import "github.com/shopspring/decimal"

// Statutory contribution calculators. All of them are total functions over
// non-negative monthly amounts: out-of-range inputs clamp to the nearest
// bracket and no calculator ever returns an error. Results are raw figures;
// rounding to currency precision happens where the payroll record is built.

var two = decimal.NewFromInt(2)

// philHealthTable maps monthly income to the TOTAL PhilHealth premium.
// Fractional values are rates on income, whole values are fixed peso amounts.
var philHealthTable = BracketTable{
	Brackets: []Bracket{
		{Min: d("0"), Max: d("10000"), Value: d("0.01")},
		{Min: d("10000.01"), Max: d("80000"), Value: d("0.02")},
		{Min: d("80000.01"), Open: true, Value: d("1600")},
	},
}

// PhilHealthContribution returns the employee share (half of the premium)
// for the given monthly income.
func PhilHealthContribution(monthlyIncome decimal.Decimal) decimal.Decimal {
	b := philHealthTable.Find(monthlyIncome)
	total := b.Value
	if b.Value.LessThan(decimal.NewFromInt(1)) {
		total = monthlyIncome.Mul(b.Value)
	}
	return total.Div(two)
}

// sssTable is the employee-share contribution schedule. Salaries above the
// top row fall through to the table default of P500.
var sssTable = BracketTable{
	Brackets: []Bracket{
		{Min: d("0"), Max: d("4249.99"), Value: d("170")},
		{Min: d("4250"), Max: d("4749.99"), Value: d("180")},
		{Min: d("4750"), Max: d("5249.99"), Value: d("190")},
		{Min: d("5250"), Max: d("5749.99"), Value: d("200")},
		{Min: d("5750"), Max: d("6249.99"), Value: d("210")},
		{Min: d("6250"), Max: d("6749.99"), Value: d("220")},
		{Min: d("6750"), Max: d("7249.99"), Value: d("230")},
		{Min: d("7250"), Max: d("7749.99"), Value: d("240")},
		{Min: d("7750"), Max: d("8249.99"), Value: d("250")},
		{Min: d("8250"), Max: d("8749.99"), Value: d("260")},
		{Min: d("8750"), Max: d("9249.99"), Value: d("270")},
		{Min: d("9250"), Max: d("9749.99"), Value: d("280")},
		{Min: d("9750"), Max: d("10249.99"), Value: d("290")},
		{Min: d("10250"), Max: d("10749.99"), Value: d("300")},
		{Min: d("10750"), Max: d("11249.99"), Value: d("310")},
		{Min: d("11250"), Max: d("11749.99"), Value: d("320")},
		{Min: d("11750"), Max: d("12249.99"), Value: d("330")},
		{Min: d("12250"), Max: d("12749.99"), Value: d("340")},
		{Min: d("12750"), Max: d("13249.99"), Value: d("350")},
		{Min: d("13250"), Max: d("13749.99"), Value: d("360")},
		{Min: d("13750"), Max: d("14249.99"), Value: d("370")},
		{Min: d("14250"), Max: d("14749.99"), Value: d("380")},
		{Min: d("14750"), Max: d("15249.99"), Value: d("390")},
		{Min: d("15250"), Max: d("15749.99"), Value: d("400")},
		{Min: d("15750"), Max: d("16249.99"), Value: d("410")},
		{Min: d("16250"), Max: d("16749.99"), Value: d("420")},
		{Min: d("16750"), Max: d("17249.99"), Value: d("430")},
		{Min: d("17250"), Max: d("17749.99"), Value: d("440")},
		{Min: d("17750"), Max: d("18249.99"), Value: d("450")},
		{Min: d("18250"), Max: d("18749.99"), Value: d("460")},
		{Min: d("18750"), Max: d("19249.99"), Value: d("470")},
		{Min: d("19250"), Max: d("19749.99"), Value: d("480")},
		{Min: d("19750"), Max: d("20249.99"), Value: d("490")},
		{Min: d("20250"), Max: d("20749.99"), Value: d("500")},
	},
	Default: Bracket{Value: d("500")},
}

// SSSContribution returns the employee-share SSS contribution for the given
// monthly salary.
func SSSContribution(monthlySalary decimal.Decimal) decimal.Decimal {
	return sssTable.Find(monthlySalary).Value
}

// pagIbigTable: 1% of salary up to P1,500, 2% above. The employee share is
// deliberately uncapped, a known deviation from the statutory ceiling.
var pagIbigTable = BracketTable{
	Brackets: []Bracket{
		{Min: d("0"), Max: d("1500"), Value: d("0.01")},
		{Min: d("1500.01"), Open: true, Value: d("0.02")},
	},
}

// PagIbigContribution returns the employee-share Pag-IBIG contribution for
// the given monthly salary.
func PagIbigContribution(monthlySalary decimal.Decimal) decimal.Decimal {
	return monthlySalary.Mul(pagIbigTable.Find(monthlySalary).Value)
}
