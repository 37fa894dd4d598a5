package employee

import (
	"github.com/lakbayhr/ems-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	FirstName     string           `json:"first_name"`
	LastName      string           `json:"last_name"`
	Email         string           `json:"email"`
	PhoneNumber   *string          `json:"phone_number,omitempty"`
	Address       *string          `json:"address,omitempty"`
	DOB           *string          `json:"dob,omitempty"`
	MaritalStatus string           `json:"marital_status"`
	DepartmentID  *string          `json:"department_id,omitempty"`
	PositionID    *string          `json:"position_id,omitempty"`
	HireDate      string           `json:"hire_date"`
	BaseSalary    *decimal.Decimal `json:"base_salary,omitempty"`
	Allowance     *decimal.Decimal `json:"allowance,omitempty"`
}

var maritalStatuses = []string{
	string(MaritalSingle), string(MaritalMarried), string(MaritalDivorced),
	string(MaritalWidowed), string(MaritalOther),
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email"})
	}
	if !validator.IsInSlice(r.MaritalStatus, maritalStatuses) {
		errs = append(errs, validator.ValidationError{Field: "marital_status", Message: "must be one of single, married, divorced, widowed, other"})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be in YYYY-MM-DD format"})
	}
	if r.DOB != nil {
		if _, ok := validator.IsValidDate(*r.DOB); !ok {
			errs = append(errs, validator.ValidationError{Field: "dob", Message: "must be in YYYY-MM-DD format"})
		}
	}
	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}
	if r.Allowance != nil && r.Allowance.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "allowance", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID            string           `json:"-"`
	FirstName     *string          `json:"first_name,omitempty"`
	LastName      *string          `json:"last_name,omitempty"`
	Email         *string          `json:"email,omitempty"`
	PhoneNumber   *string          `json:"phone_number,omitempty"`
	Address       *string          `json:"address,omitempty"`
	MaritalStatus *string          `json:"marital_status,omitempty"`
	DepartmentID  *string          `json:"department_id,omitempty"`
	PositionID    *string          `json:"position_id,omitempty"`
	BaseSalary    *decimal.Decimal `json:"base_salary,omitempty"`
	Allowance     *decimal.Decimal `json:"allowance,omitempty"`
	Status        *string          `json:"status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email"})
	}
	if r.MaritalStatus != nil && !validator.IsInSlice(*r.MaritalStatus, maritalStatuses) {
		errs = append(errs, validator.ValidationError{Field: "marital_status", Message: "must be one of single, married, divorced, widowed, other"})
	}
	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}
	if r.Allowance != nil && r.Allowance.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "allowance", Message: "must be non-negative"})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{
		string(EmploymentActive), string(EmploymentOnLeave), string(EmploymentResigned),
	}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of active, on_leave, resigned"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID             string           `json:"id"`
	EmployeeCode   string           `json:"employee_code"`
	FirstName      string           `json:"first_name"`
	LastName       string           `json:"last_name"`
	Email          string           `json:"email"`
	PhoneNumber    *string          `json:"phone_number,omitempty"`
	Address        *string          `json:"address,omitempty"`
	DOB            *string          `json:"dob,omitempty"`
	MaritalStatus  string           `json:"marital_status"`
	DepartmentID   *string          `json:"department_id,omitempty"`
	DepartmentName *string          `json:"department_name,omitempty"`
	PositionID     *string          `json:"position_id,omitempty"`
	PositionName   *string          `json:"position_name,omitempty"`
	HireDate       string           `json:"hire_date"`
	BaseSalary     *decimal.Decimal `json:"base_salary,omitempty"`
	Allowance      decimal.Decimal  `json:"allowance"`
	Status         string           `json:"status"`
	PhotoURL       *string          `json:"photo_url,omitempty"`
}

type ListEmployeeResponse struct {
	Data       []EmployeeResponse `json:"data"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}
