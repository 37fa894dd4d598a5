package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lakbayhr/ems-backend-go/internal/domain/announcement"
	"github.com/lakbayhr/ems-backend-go/internal/handler/http/response"
)

type AnnouncementHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type announcementHandlerImpl struct {
	announcementService announcement.AnnouncementService
}

func NewAnnouncementHandler(announcementService announcement.AnnouncementService) AnnouncementHandler {
	return &announcementHandlerImpl{announcementService: announcementService}
}

func (h *announcementHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Invalid token")
		return
	}
	createdBy, _ := claims["user_id"].(string)
	if createdBy == "" {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req announcement.UpsertAnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.announcementService.Create(r.Context(), req, createdBy)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Announcement created", result)
}

func (h *announcementHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Announcement ID is required", nil)
		return
	}

	result, err := h.announcementService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *announcementHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	publishedOnly := r.URL.Query().Get("published_only") == "true"

	result, err := h.announcementService.List(r.Context(), publishedOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *announcementHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Announcement ID is required", nil)
		return
	}

	var req announcement.UpsertAnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.announcementService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Announcement updated", result)
}

func (h *announcementHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Announcement ID is required", nil)
		return
	}

	if err := h.announcementService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Announcement deleted", nil)
}
