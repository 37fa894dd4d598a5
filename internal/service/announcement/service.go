package announcement

import (
	"context"
	"time"

	"github.com/lakbayhr/ems-backend-go/internal/domain/announcement"
)

type AnnouncementServiceImpl struct {
	announcementRepository announcement.AnnouncementRepository
}

func NewAnnouncementService(announcementRepository announcement.AnnouncementRepository) announcement.AnnouncementService {
	return &AnnouncementServiceImpl{announcementRepository: announcementRepository}
}

// Create implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) Create(ctx context.Context, req announcement.UpsertAnnouncementRequest, createdBy string) (announcement.AnnouncementResponse, error) {
	if err := req.Validate(); err != nil {
		return announcement.AnnouncementResponse{}, err
	}

	a := announcement.Announcement{
		Title:     req.Title,
		Body:      req.Body,
		CreatedBy: createdBy,
	}
	if req.Publish {
		now := time.Now()
		a.PublishedAt = &now
	}

	created, err := s.announcementRepository.Create(ctx, a)
	if err != nil {
		return announcement.AnnouncementResponse{}, err
	}

	return toAnnouncementResponse(created), nil
}

// GetByID implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) GetByID(ctx context.Context, id string) (announcement.AnnouncementResponse, error) {
	a, err := s.announcementRepository.GetByID(ctx, id)
	if err != nil {
		return announcement.AnnouncementResponse{}, err
	}
	return toAnnouncementResponse(a), nil
}

// List implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) List(ctx context.Context, publishedOnly bool) ([]announcement.AnnouncementResponse, error) {
	announcements, err := s.announcementRepository.List(ctx, publishedOnly)
	if err != nil {
		return nil, err
	}

	resp := make([]announcement.AnnouncementResponse, 0, len(announcements))
	for _, a := range announcements {
		resp = append(resp, toAnnouncementResponse(a))
	}
	return resp, nil
}

// Update implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) Update(ctx context.Context, req announcement.UpsertAnnouncementRequest) (announcement.AnnouncementResponse, error) {
	if err := req.Validate(); err != nil {
		return announcement.AnnouncementResponse{}, err
	}

	a, err := s.announcementRepository.GetByID(ctx, req.ID)
	if err != nil {
		return announcement.AnnouncementResponse{}, err
	}

	a.Title = req.Title
	a.Body = req.Body
	if req.Publish && a.PublishedAt == nil {
		now := time.Now()
		a.PublishedAt = &now
	}
	if !req.Publish {
		a.PublishedAt = nil
	}

	updated, err := s.announcementRepository.Update(ctx, a)
	if err != nil {
		return announcement.AnnouncementResponse{}, err
	}

	return toAnnouncementResponse(updated), nil
}

// Delete implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) Delete(ctx context.Context, id string) error {
	return s.announcementRepository.Delete(ctx, id)
}

func toAnnouncementResponse(a announcement.Announcement) announcement.AnnouncementResponse {
	resp := announcement.AnnouncementResponse{
		ID:        a.ID,
		Title:     a.Title,
		Body:      a.Body,
		CreatedBy: a.CreatedBy,
	}
	if a.PublishedAt != nil {
		at := a.PublishedAt.Format(time.RFC3339)
		resp.PublishedAt = &at
	}
	return resp
}
