package leave

import (
	"context"
	"time"
)

type LeaveFilter struct {
	EmployeeID string
	Status     string
	From       *time.Time
	To         *time.Time
	Page       int
	Limit      int
}

type LeaveRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context, filter LeaveFilter) ([]LeaveRequest, int64, error)
	UpdateStatus(ctx context.Context, id string, status LeaveStatus, reviewerID string) error
	HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error)
}
