package attendance

import "context"

type AttendanceService interface {
	Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)
	GetByID(ctx context.Context, id string) (AttendanceResponse, error)
	List(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
	Update(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)
	Delete(ctx context.Context, id string) error
}
