package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhilHealthContribution(t *testing.T) {
	cases := []struct {
		name   string
		income string
		want   string
	}{
		{"zero income", "0", "0"},
		{"first tier is half of 1%", "8000", "40"},
		{"first tier upper edge", "10000", "50"},
		{"second tier lower edge", "10000.01", "100.0001"},
		{"second tier is half of 2%", "50000", "500"},
		{"second tier upper edge", "80000", "800"},
		{"fixed tier is half of 1600", "80000.01", "800"},
		{"fixed tier high income", "250000", "800"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PhilHealthContribution(d(tc.income))
			assert.True(t, got.Equal(d(tc.want)), "got %s, want %s", got, tc.want)
		})
	}
}

func TestSSSContribution(t *testing.T) {
	cases := []struct {
		name   string
		salary string
		want   string
	}{
		{"zero salary bottom bracket", "0", "170"},
		{"just below first boundary", "4249.99", "170"},
		{"exactly 4250 resolves to second bracket", "4250", "180"},
		{"mid table", "12500", "340"},
		{"top bracket lower edge", "20250", "500"},
		{"top bracket upper edge", "20749.99", "500"},
		{"above table returns ceiling", "20750", "500"},
		{"well above table returns ceiling", "25000", "500"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SSSContribution(d(tc.salary))
			assert.True(t, got.Equal(d(tc.want)), "got %s, want %s", got, tc.want)
		})
	}
}

func TestPagIbigContribution(t *testing.T) {
	cases := []struct {
		name   string
		salary string
		want   string
	}{
		{"one percent tier", "1000", "10"},
		{"boundary stays at one percent", "1500", "15"},
		{"crossing boundary doubles the rate", "1500.01", "30.0002"},
		{"two percent tier", "30000", "600"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PagIbigContribution(d(tc.salary))
			assert.True(t, got.Equal(d(tc.want)), "got %s, want %s", got, tc.want)
		})
	}
}

func TestPagIbigHasNoCeiling(t *testing.T) {
	// The employee share is deliberately uncapped; 2% applies to the full
	// salary no matter how large.
	got := PagIbigContribution(d("1000000"))
	assert.True(t, got.Equal(d("20000")), "got %s", got)
}
