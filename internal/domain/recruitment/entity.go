package recruitment

import "time"

type JobStatus string

const (
	JobOpen   JobStatus = "open"
	JobClosed JobStatus = "closed"
)

type JobPosting struct {
	ID           string
	Title        string
	DepartmentID *string
	Description  string
	Status       JobStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	DepartmentName *string
	ApplicantCount int
}

type ApplicantStatus string

const (
	ApplicantApplied   ApplicantStatus = "applied"
	ApplicantInterview ApplicantStatus = "interview"
	ApplicantHired     ApplicantStatus = "hired"
	ApplicantRejected  ApplicantStatus = "rejected"
)

type Applicant struct {
	ID           string
	JobPostingID string
	FullName     string
	Email        string
	PhoneNumber  *string
	ResumeURL    *string
	Status       ApplicantStatus
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	JobTitle *string
}
