package employee

import "context"

type EmployeeFilter struct {
	Search       string
	DepartmentID string
	Status       string
	Page         int
	Limit        int
}

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByCode(ctx context.Context, code string) (Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
	Update(ctx context.Context, emp Employee) (Employee, error)
	SoftDelete(ctx context.Context, id string) error

	// NextEmployeeCode issues the next sequential EMP-XXXX code.
	NextEmployeeCode(ctx context.Context) (string, error)
}
