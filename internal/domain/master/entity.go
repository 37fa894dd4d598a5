package master

import "time"

type Department struct {
	ID          string
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Position struct {
	ID           string
	DepartmentID *string
	Title        string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	DepartmentName *string
}
