package recruitment

import "github.com/lakbayhr/ems-backend-go/internal/pkg/validator"

type UpsertJobPostingRequest struct {
	ID           string  `json:"-"`
	Title        string  `json:"title"`
	DepartmentID *string `json:"department_id,omitempty"`
	Description  string  `json:"description"`
	Status       *string `json:"status,omitempty"`
}

func (r *UpsertJobPostingRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "is required"})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{string(JobOpen), string(JobClosed)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'open' or 'closed'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateApplicantRequest struct {
	JobPostingID string  `json:"job_posting_id"`
	FullName     string  `json:"full_name"`
	Email        string  `json:"email"`
	PhoneNumber  *string `json:"phone_number,omitempty"`
}

func (r *CreateApplicantRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.JobPostingID == "" {
		errs = append(errs, validator.ValidationError{Field: "job_posting_id", Message: "is required"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateApplicantStatusRequest struct {
	ID     string  `json:"-"`
	Status string  `json:"status"`
	Notes  *string `json:"notes,omitempty"`
}

func (r *UpdateApplicantStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, []string{
		string(ApplicantApplied), string(ApplicantInterview),
		string(ApplicantHired), string(ApplicantRejected),
	}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of applied, interview, hired, rejected"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type JobPostingResponse struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	DepartmentID   *string `json:"department_id,omitempty"`
	DepartmentName *string `json:"department_name,omitempty"`
	Description    string  `json:"description"`
	Status         string  `json:"status"`
	ApplicantCount int     `json:"applicant_count"`
}

type ApplicantResponse struct {
	ID           string  `json:"id"`
	JobPostingID string  `json:"job_posting_id"`
	JobTitle     *string `json:"job_title,omitempty"`
	FullName     string  `json:"full_name"`
	Email        string  `json:"email"`
	PhoneNumber  *string `json:"phone_number,omitempty"`
	ResumeURL    *string `json:"resume_url,omitempty"`
	Status       string  `json:"status"`
	Notes        *string `json:"notes,omitempty"`
}
