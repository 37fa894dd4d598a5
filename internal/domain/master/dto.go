package master

import "github.com/lakbayhr/ems-backend-go/internal/pkg/validator"

type UpsertDepartmentRequest struct {
	ID          string  `json:"-"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

func (r *UpsertDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpsertPositionRequest struct {
	ID           string  `json:"-"`
	Title        string  `json:"title"`
	DepartmentID *string `json:"department_id,omitempty"`
}

func (r *UpsertPositionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DepartmentResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

type PositionResponse struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	DepartmentID   *string `json:"department_id,omitempty"`
	DepartmentName *string `json:"department_name,omitempty"`
}
