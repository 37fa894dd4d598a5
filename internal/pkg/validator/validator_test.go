package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidPayrollPeriod(t *testing.T) {
	cases := []struct {
		period string
		want   bool
	}{
		{"2025-01", true},
		{"2025-12", true},
		{"2025-00", false},
		{"2025-13", false},
		{"2025-1", false},
		{"2025-01-01", false},
		{"202501", false},
		{"", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, IsValidPayrollPeriod(tc.period), tc.period)
	}
}

func TestPeriodBounds(t *testing.T) {
	start, end, ok := PeriodBounds("2025-02")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), end)

	// Leap year February
	_, end, ok = PeriodBounds("2024-02")
	require.True(t, ok)
	assert.Equal(t, 29, end.Day())

	// 31-day month
	_, end, ok = PeriodBounds("2025-07")
	require.True(t, ok)
	assert.Equal(t, 31, end.Day())

	_, _, ok = PeriodBounds("not-a-period")
	assert.False(t, ok)
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("hr@lakbayhr.ph"))
	assert.False(t, IsValidEmail("not-an-email"))
}

func TestIsValidEmployeeCode(t *testing.T) {
	assert.True(t, IsValidEmployeeCode("EMP-0001"))
	assert.True(t, IsValidEmployeeCode("EMP-20250001"))
	assert.False(t, IsValidEmployeeCode("0001"))
	assert.False(t, IsValidEmployeeCode("EMP-12"))
}
