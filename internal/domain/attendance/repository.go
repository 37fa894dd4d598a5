package attendance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type AttendanceFilter struct {
	EmployeeID string
	From       *time.Time
	To         *time.Time
	Status     string
	Page       int
	Limit      int
}

type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Attendance, error)
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)
	Update(ctx context.Context, att Attendance) (Attendance, error)
	Delete(ctx context.Context, id string) error

	// SumOvertimeHours aggregates overtime over [from, to] inclusive for one
	// employee. Payroll calls this with the period's month boundaries.
	SumOvertimeHours(ctx context.Context, employeeID string, from, to time.Time) (decimal.Decimal, error)
}
