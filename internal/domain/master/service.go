package master

import "context"

type MasterService interface {
	CreateDepartment(ctx context.Context, req UpsertDepartmentRequest) (DepartmentResponse, error)
	ListDepartments(ctx context.Context) ([]DepartmentResponse, error)
	UpdateDepartment(ctx context.Context, req UpsertDepartmentRequest) (DepartmentResponse, error)
	DeleteDepartment(ctx context.Context, id string) error

	CreatePosition(ctx context.Context, req UpsertPositionRequest) (PositionResponse, error)
	ListPositions(ctx context.Context) ([]PositionResponse, error)
	UpdatePosition(ctx context.Context, req UpsertPositionRequest) (PositionResponse, error)
	DeletePosition(ctx context.Context, id string) error
}
