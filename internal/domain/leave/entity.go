package leave

import "time"

type LeaveType string

const (
	TypeVacation  LeaveType = "vacation"
	TypeSick      LeaveType = "sick"
	TypeEmergency LeaveType = "emergency"
	TypeMaternity LeaveType = "maternity"
	TypePaternity LeaveType = "paternity"
	TypeUnpaid    LeaveType = "unpaid"
)

type LeaveStatus string

const (
	StatusPending  LeaveStatus = "pending"
	StatusApproved LeaveStatus = "approved"
	StatusRejected LeaveStatus = "rejected"
)

// LeaveRequest covers an inclusive date range; Days is derived from the
// range at filing time.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	LeaveType  LeaveType
	StartDate  time.Time
	EndDate    time.Time
	Days       int
	Reason     string
	Status     LeaveStatus
	ReviewedBy *string
	ReviewedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}
