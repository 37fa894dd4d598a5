package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithholdingTax(t *testing.T) {
	cases := []struct {
		name    string
		monthly string
		want    string // rounded to currency precision
	}{
		{"below annual 250k pays nothing", "20000", "0"},
		{"exactly at the 250k edge pays nothing", "20833.25", "0"},     // annual 249,999
		{"20% bracket", "25000", "833.33"},                             // annual 300k -> 10k/12
		{"400k bracket upper edge", "33333.33", "2500"},                // annual 399,999.96
		{"25% bracket canonical case", "50000", "6666.67"},             // annual 600k -> 80k/12
		{"30% bracket", "100000", "20833.33"},                          // annual 1.2M -> 250k/12
		{"32% bracket", "250000", "67500"},                             // annual 3M -> 810k/12
		{"35% bracket", "1000000", "317500"},                           // annual 12M -> 3.81M/12
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := WithholdingTax(d(tc.monthly)).Round(CurrencyPlaces)
			assert.True(t, got.Equal(d(tc.want)), "got %s, want %s", got, tc.want)
		})
	}
}

func TestWithholdingTaxIsTotal(t *testing.T) {
	// No error paths: any non-negative income yields a non-negative amount.
	for _, income := range []string{"0", "0.01", "20833.33", "999999999"} {
		got := WithholdingTax(d(income))
		assert.False(t, got.IsNegative(), "income %s", income)
	}
}

func TestThirteenthMonthPay(t *testing.T) {
	// Pass-through of the monthly base salary, no proration.
	got := ThirteenthMonthPay(d("42500"))
	assert.True(t, got.Equal(d("42500")))
}

func TestHolidayPay(t *testing.T) {
	// Daily rate is base/22; regular holidays pay double, special days 1.3x.
	regular := HolidayPay(d("22000"), true)
	assert.True(t, regular.Equal(d("2000")), "got %s", regular)

	special := HolidayPay(d("22000"), false)
	assert.True(t, special.Equal(d("1300")), "got %s", special)
}

func TestOvertimePay(t *testing.T) {
	// base 30000 -> hourly 30000/176 = 170.4545..., OT rate x1.25 =
	// 213.068..., 10 hours -> 2130.68 at currency precision.
	got := OvertimePay(d("30000"), d("10")).Round(CurrencyPlaces)
	assert.True(t, got.Equal(d("2130.68")), "got %s", got)

	assert.True(t, OvertimePay(d("30000"), d("0")).IsZero())
}

func TestHourlyRateUsesNamedCalendarConstants(t *testing.T) {
	// 8 hours x 22 working days = 176 divisor.
	assert.True(t, MonthlyWorkHours.Equal(d("176")))
	got := HourlyRate(d("17600"))
	assert.True(t, got.Equal(d("100")), "got %s", got)
}
