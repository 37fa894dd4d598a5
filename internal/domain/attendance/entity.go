package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusAbsent  AttendanceStatus = "absent"
	StatusLate    AttendanceStatus = "late"
	StatusOnLeave AttendanceStatus = "on_leave"
)

// Attendance is one record per employee per calendar date. OvertimeHours is
// the figure payroll aggregates over the period month.
type Attendance struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	TimeIn        *time.Time
	TimeOut       *time.Time
	Status        AttendanceStatus
	OvertimeHours decimal.Decimal
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}
