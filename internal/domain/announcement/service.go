package announcement

import "context"

type AnnouncementService interface {
	Create(ctx context.Context, req UpsertAnnouncementRequest, createdBy string) (AnnouncementResponse, error)
	GetByID(ctx context.Context, id string) (AnnouncementResponse, error)
	List(ctx context.Context, publishedOnly bool) ([]AnnouncementResponse, error)
	Update(ctx context.Context, req UpsertAnnouncementRequest) (AnnouncementResponse, error)
	Delete(ctx context.Context, id string) error
}
