package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type MaritalStatus string

const (
	MaritalSingle   MaritalStatus = "single"
	MaritalMarried  MaritalStatus = "married"
	MaritalDivorced MaritalStatus = "divorced"
	MaritalWidowed  MaritalStatus = "widowed"
	MaritalOther    MaritalStatus = "other"
)

type EmploymentStatus string

const (
	EmploymentActive   EmploymentStatus = "active"
	EmploymentOnLeave  EmploymentStatus = "on_leave"
	EmploymentResigned EmploymentStatus = "resigned"
)

// Employee is the HR master record. The payroll engine only reads
// BaseSalary, Allowance and MaritalStatus from it.
type Employee struct {
	ID            string
	EmployeeCode  string
	FirstName     string
	LastName      string
	Email         string
	PhoneNumber   *string
	Address       *string
	DOB           *time.Time
	MaritalStatus MaritalStatus
	DepartmentID  *string
	PositionID    *string
	HireDate      time.Time
	BaseSalary    *decimal.Decimal
	Allowance     decimal.Decimal
	Status        EmploymentStatus
	PhotoURL      *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time

	// Joined fields
	DepartmentName *string
	PositionName   *string
}

// FullName renders "First Last" for payslips and listings.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
