package master

import "context"

type DepartmentRepository interface {
	Create(ctx context.Context, d Department) (Department, error)
	GetByID(ctx context.Context, id string) (Department, error)
	List(ctx context.Context) ([]Department, error)
	Update(ctx context.Context, d Department) (Department, error)
	Delete(ctx context.Context, id string) error
}

type PositionRepository interface {
	Create(ctx context.Context, p Position) (Position, error)
	GetByID(ctx context.Context, id string) (Position, error)
	List(ctx context.Context) ([]Position, error)
	Update(ctx context.Context, p Position) (Position, error)
	Delete(ctx context.Context, id string) error
}
