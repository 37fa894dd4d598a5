package recruitment

import "context"

type JobPostingRepository interface {
	Create(ctx context.Context, job JobPosting) (JobPosting, error)
	GetByID(ctx context.Context, id string) (JobPosting, error)
	List(ctx context.Context, openOnly bool) ([]JobPosting, error)
	Update(ctx context.Context, job JobPosting) (JobPosting, error)
	Delete(ctx context.Context, id string) error
}

type ApplicantRepository interface {
	Create(ctx context.Context, a Applicant) (Applicant, error)
	GetByID(ctx context.Context, id string) (Applicant, error)
	ListByJob(ctx context.Context, jobPostingID string) ([]Applicant, error)
	UpdateStatus(ctx context.Context, id string, status ApplicantStatus, notes *string) error
	SetResumeURL(ctx context.Context, id string, resumeURL string) error
}
