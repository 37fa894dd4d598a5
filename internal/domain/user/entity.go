package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
	RoleEmployee Role = "employee"
)

type User struct {
	ID           string
	Email        string
	PasswordHash *string
	GoogleID     *string
	Role         Role
	EmployeeID   *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
