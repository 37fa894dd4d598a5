package recruitment

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/lakbayhr/ems-backend-go/internal/domain/recruitment"
	"github.com/lakbayhr/ems-backend-go/internal/pkg/email"
	"github.com/lakbayhr/ems-backend-go/internal/pkg/storage"
)

type RecruitmentServiceImpl struct {
	jobPostingRepository recruitment.JobPostingRepository
	applicantRepository  recruitment.ApplicantRepository
	fileStorage          storage.FileStorage
	emailService         email.EmailService
}

func NewRecruitmentService(jobPostingRepository recruitment.JobPostingRepository, applicantRepository recruitment.ApplicantRepository, fileStorage storage.FileStorage, emailService email.EmailService) recruitment.RecruitmentService {
	return &RecruitmentServiceImpl{
		jobPostingRepository: jobPostingRepository,
		applicantRepository:  applicantRepository,
		fileStorage:          fileStorage,
		emailService:         emailService,
	}
}

// CreateJobPosting implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) CreateJobPosting(ctx context.Context, req recruitment.UpsertJobPostingRequest) (recruitment.JobPostingResponse, error) {
	if err := req.Validate(); err != nil {
		return recruitment.JobPostingResponse{}, err
	}

	job := recruitment.JobPosting{
		Title:        req.Title,
		DepartmentID: req.DepartmentID,
		Description:  req.Description,
		Status:       recruitment.JobOpen,
	}
	if req.Status != nil {
		job.Status = recruitment.JobStatus(*req.Status)
	}

	created, err := s.jobPostingRepository.Create(ctx, job)
	if err != nil {
		return recruitment.JobPostingResponse{}, err
	}

	return toJobPostingResponse(created), nil
}

// GetJobPosting implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) GetJobPosting(ctx context.Context, id string) (recruitment.JobPostingResponse, error) {
	job, err := s.jobPostingRepository.GetByID(ctx, id)
	if err != nil {
		return recruitment.JobPostingResponse{}, err
	}
	return toJobPostingResponse(job), nil
}

// ListJobPostings implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) ListJobPostings(ctx context.Context, openOnly bool) ([]recruitment.JobPostingResponse, error) {
	postings, err := s.jobPostingRepository.List(ctx, openOnly)
	if err != nil {
		return nil, err
	}

	resp := make([]recruitment.JobPostingResponse, 0, len(postings))
	for _, job := range postings {
		resp = append(resp, toJobPostingResponse(job))
	}
	return resp, nil
}

// UpdateJobPosting implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) UpdateJobPosting(ctx context.Context, req recruitment.UpsertJobPostingRequest) (recruitment.JobPostingResponse, error) {
	if err := req.Validate(); err != nil {
		return recruitment.JobPostingResponse{}, err
	}

	job, err := s.jobPostingRepository.GetByID(ctx, req.ID)
	if err != nil {
		return recruitment.JobPostingResponse{}, err
	}

	job.Title = req.Title
	job.DepartmentID = req.DepartmentID
	job.Description = req.Description
	if req.Status != nil {
		job.Status = recruitment.JobStatus(*req.Status)
	}

	updated, err := s.jobPostingRepository.Update(ctx, job)
	if err != nil {
		return recruitment.JobPostingResponse{}, err
	}

	return toJobPostingResponse(updated), nil
}

// DeleteJobPosting implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) DeleteJobPosting(ctx context.Context, id string) error {
	return s.jobPostingRepository.Delete(ctx, id)
}

// CreateApplicant implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) CreateApplicant(ctx context.Context, req recruitment.CreateApplicantRequest) (recruitment.ApplicantResponse, error) {
	if err := req.Validate(); err != nil {
		return recruitment.ApplicantResponse{}, err
	}

	job, err := s.jobPostingRepository.GetByID(ctx, req.JobPostingID)
	if err != nil {
		return recruitment.ApplicantResponse{}, err
	}
	if job.Status != recruitment.JobOpen {
		return recruitment.ApplicantResponse{}, recruitment.ErrJobPostingClosed
	}

	created, err := s.applicantRepository.Create(ctx, recruitment.Applicant{
		JobPostingID: req.JobPostingID,
		FullName:     req.FullName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		Status:       recruitment.ApplicantApplied,
	})
	if err != nil {
		return recruitment.ApplicantResponse{}, err
	}

	return toApplicantResponse(created), nil
}

// GetApplicant implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) GetApplicant(ctx context.Context, id string) (recruitment.ApplicantResponse, error) {
	a, err := s.applicantRepository.GetByID(ctx, id)
	if err != nil {
		return recruitment.ApplicantResponse{}, err
	}
	return toApplicantResponse(a), nil
}

// ListApplicants implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) ListApplicants(ctx context.Context, jobPostingID string) ([]recruitment.ApplicantResponse, error) {
	applicants, err := s.applicantRepository.ListByJob(ctx, jobPostingID)
	if err != nil {
		return nil, err
	}

	resp := make([]recruitment.ApplicantResponse, 0, len(applicants))
	for _, a := range applicants {
		resp = append(resp, toApplicantResponse(a))
	}
	return resp, nil
}

// UpdateApplicantStatus implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) UpdateApplicantStatus(ctx context.Context, req recruitment.UpdateApplicantStatusRequest) (recruitment.ApplicantResponse, error) {
	if err := req.Validate(); err != nil {
		return recruitment.ApplicantResponse{}, err
	}

	if err := s.applicantRepository.UpdateStatus(ctx, req.ID, recruitment.ApplicantStatus(req.Status), req.Notes); err != nil {
		return recruitment.ApplicantResponse{}, err
	}

	updated, err := s.applicantRepository.GetByID(ctx, req.ID)
	if err != nil {
		return recruitment.ApplicantResponse{}, err
	}

	// Email is best effort; the status change is already committed.
	jobTitle := ""
	if updated.JobTitle != nil {
		jobTitle = *updated.JobTitle
	}
	notes := ""
	if updated.Notes != nil {
		notes = *updated.Notes
	}
	if err := s.emailService.SendApplicantStatus(updated.Email, updated.FullName, jobTitle, string(updated.Status), notes); err != nil {
		slog.Error("Failed to send applicant status email", "applicant_id", updated.ID, "error", err)
	}

	return toApplicantResponse(updated), nil
}

// UploadResume implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) UploadResume(ctx context.Context, applicantID string, file io.Reader, filename, contentType string) (recruitment.ApplicantResponse, error) {
	if _, err := s.applicantRepository.GetByID(ctx, applicantID); err != nil {
		return recruitment.ApplicantResponse{}, err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	path := fmt.Sprintf("resumes/%s/%s%s", applicantID, uuid.NewString(), ext)

	stored, err := s.fileStorage.Upload(ctx, file, path, contentType)
	if err != nil {
		return recruitment.ApplicantResponse{}, fmt.Errorf("failed to store resume: %w", err)
	}

	url, err := s.fileStorage.GetURL(ctx, stored, 0)
	if err != nil {
		return recruitment.ApplicantResponse{}, err
	}

	if err := s.applicantRepository.SetResumeURL(ctx, applicantID, url); err != nil {
		return recruitment.ApplicantResponse{}, err
	}

	updated, err := s.applicantRepository.GetByID(ctx, applicantID)
	if err != nil {
		return recruitment.ApplicantResponse{}, err
	}

	return toApplicantResponse(updated), nil
}

func toJobPostingResponse(job recruitment.JobPosting) recruitment.JobPostingResponse {
	return recruitment.JobPostingResponse{
		ID:             job.ID,
		Title:          job.Title,
		DepartmentID:   job.DepartmentID,
		DepartmentName: job.DepartmentName,
		Description:    job.Description,
		Status:         string(job.Status),
		ApplicantCount: job.ApplicantCount,
	}
}

func toApplicantResponse(a recruitment.Applicant) recruitment.ApplicantResponse {
	return recruitment.ApplicantResponse{
		ID:           a.ID,
		JobPostingID: a.JobPostingID,
		JobTitle:     a.JobTitle,
		FullName:     a.FullName,
		Email:        a.Email,
		PhoneNumber:  a.PhoneNumber,
		ResumeURL:    a.ResumeURL,
		Status:       string(a.Status),
		Notes:        a.Notes,
	}
}
