package recruitment

import (
	"context"
	"io"
)

type RecruitmentService interface {
	CreateJobPosting(ctx context.Context, req UpsertJobPostingRequest) (JobPostingResponse, error)
	GetJobPosting(ctx context.Context, id string) (JobPostingResponse, error)
	ListJobPostings(ctx context.Context, openOnly bool) ([]JobPostingResponse, error)
	UpdateJobPosting(ctx context.Context, req UpsertJobPostingRequest) (JobPostingResponse, error)
	DeleteJobPosting(ctx context.Context, id string) error

	CreateApplicant(ctx context.Context, req CreateApplicantRequest) (ApplicantResponse, error)
	GetApplicant(ctx context.Context, id string) (ApplicantResponse, error)
	ListApplicants(ctx context.Context, jobPostingID string) ([]ApplicantResponse, error)
	UpdateApplicantStatus(ctx context.Context, req UpdateApplicantStatusRequest) (ApplicantResponse, error)

	// UploadResume stores the file and attaches its URL to the applicant.
	UploadResume(ctx context.Context, applicantID string, file io.Reader, filename, contentType string) (ApplicantResponse, error)
}
