package leave

import "context"

type LeaveService interface {
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	GetByID(ctx context.Context, id string) (LeaveResponse, error)
	List(ctx context.Context, filter LeaveFilter) (ListLeaveResponse, error)
	Review(ctx context.Context, req ReviewLeaveRequest, reviewerID string) (LeaveResponse, error)
}
