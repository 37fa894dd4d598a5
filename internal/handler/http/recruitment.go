package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lakbayhr/ems-backend-go/internal/domain/recruitment"
	"github.com/lakbayhr/ems-backend-go/internal/handler/http/response"
)

// Resume uploads are capped at 5 MB.
const maxResumeSize = 5 << 20

type RecruitmentHandler interface {
	CreateJobPosting(w http.ResponseWriter, r *http.Request)
	GetJobPosting(w http.ResponseWriter, r *http.Request)
	ListJobPostings(w http.ResponseWriter, r *http.Request)
	UpdateJobPosting(w http.ResponseWriter, r *http.Request)
	DeleteJobPosting(w http.ResponseWriter, r *http.Request)

	CreateApplicant(w http.ResponseWriter, r *http.Request)
	GetApplicant(w http.ResponseWriter, r *http.Request)
	ListApplicants(w http.ResponseWriter, r *http.Request)
	UpdateApplicantStatus(w http.ResponseWriter, r *http.Request)
	UploadResume(w http.ResponseWriter, r *http.Request)
}

type recruitmentHandlerImpl struct {
	recruitmentService recruitment.RecruitmentService
}

func NewRecruitmentHandler(recruitmentService recruitment.RecruitmentService) RecruitmentHandler {
	return &recruitmentHandlerImpl{recruitmentService: recruitmentService}
}

func (h *recruitmentHandlerImpl) CreateJobPosting(w http.ResponseWriter, r *http.Request) {
	var req recruitment.UpsertJobPostingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.recruitmentService.CreateJobPosting(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Job posting created", result)
}

func (h *recruitmentHandlerImpl) GetJobPosting(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Job posting ID is required", nil)
		return
	}

	result, err := h.recruitmentService.GetJobPosting(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *recruitmentHandlerImpl) ListJobPostings(w http.ResponseWriter, r *http.Request) {
	openOnly := r.URL.Query().Get("open_only") == "true"

	result, err := h.recruitmentService.ListJobPostings(r.Context(), openOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *recruitmentHandlerImpl) UpdateJobPosting(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Job posting ID is required", nil)
		return
	}

	var req recruitment.UpsertJobPostingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.recruitmentService.UpdateJobPosting(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job posting updated", result)
}

func (h *recruitmentHandlerImpl) DeleteJobPosting(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Job posting ID is required", nil)
		return
	}

	if err := h.recruitmentService.DeleteJobPosting(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job posting deleted", nil)
}

func (h *recruitmentHandlerImpl) CreateApplicant(w http.ResponseWriter, r *http.Request) {
	var req recruitment.CreateApplicantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.recruitmentService.CreateApplicant(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Application received", result)
}

func (h *recruitmentHandlerImpl) GetApplicant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Applicant ID is required", nil)
		return
	}

	result, err := h.recruitmentService.GetApplicant(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *recruitmentHandlerImpl) ListApplicants(w http.ResponseWriter, r *http.Request) {
	jobPostingID := r.URL.Query().Get("job_posting_id")

	result, err := h.recruitmentService.ListApplicants(r.Context(), jobPostingID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *recruitmentHandlerImpl) UpdateApplicantStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Applicant ID is required", nil)
		return
	}

	var req recruitment.UpdateApplicantStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.recruitmentService.UpdateApplicantStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Applicant status updated", result)
}

func (h *recruitmentHandlerImpl) UploadResume(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Applicant ID is required", nil)
		return
	}

	if err := r.ParseMultipartForm(maxResumeSize); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		response.BadRequest(w, "Resume file is required", nil)
		return
	}
	defer file.Close()

	if header.Size > maxResumeSize {
		response.BadRequest(w, "Resume file exceeds the 5 MB limit", nil)
		return
	}

	result, err := h.recruitmentService.UploadResume(r.Context(), id, file, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Resume uploaded", result)
}
